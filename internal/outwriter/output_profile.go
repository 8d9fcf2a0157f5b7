package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/datascope/datascope/internal/contract"
	"github.com/datascope/datascope/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// topCorrelationsShown bounds the pair list in the text rendering.
const topCorrelationsShown = 10

// WriteProfileResults outputs a profile report, dispatching based on the output format configured.
func WriteProfileResults(report schema.ProfileReport, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeProfileJSONResults(report, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeProfileCSVResults(report, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable tables
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeProfileTables(report, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeProfileJSONResults handles opening the file and calling the JSON writer.
func writeProfileJSONResults(report schema.ProfileReport, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		type JSONProfileResult struct {
			Grade string `json:"grade"`
			schema.ProfileReport
		}
		return writeJSON(w, JSONProfileResult{
			Grade:         contract.GetPlainLabel(report.Overview.QualityScore),
			ProfileReport: report,
		})
	}, "Wrote JSON")
}

// writeProfileCSVResults writes the per-column overview in CSV format.
func writeProfileCSVResults(report schema.ProfileReport, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"column", "type", "intent", "missing", "missing_ratio", "unique", "entropy"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, col := range report.Overview.ColumnList {
				dist := report.Distributions[col.Name]
				rec := []string{
					col.Name,
					string(col.Type),
					string(col.Intent),
					fmt.Sprintf(intFmt, col.Missing),
					fmtFloat(dist.MissingRatio),
					fmt.Sprintf(intFmt, col.Unique),
					fmtFloat(dist.Entropy),
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeProfileTables generates and writes the human-readable tables.
func writeProfileTables(report schema.ProfileReport, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	label := contract.GetPlainLabel(report.Overview.QualityScore)
	if cfg.UseColors {
		label = contract.GetColorLabel(report.Overview.QualityScore)
	}
	if _, err := fmt.Fprintf(writer, "Rows: %d  Columns: %d  Quality: %s (%s)  Completeness: %s%%\n",
		report.Overview.Rows, report.Overview.Columns,
		fmtFloat(report.Overview.QualityScore), label,
		fmtFloat(report.Overview.Completeness)); err != nil {
		return err
	}

	if err := writeColumnTable(report, cfg, fmtFloat, intFmt, writer); err != nil {
		return err
	}
	if err := writeIssueTable(report.DataQuality, cfg, writer); err != nil {
		return err
	}
	if err := writeCorrelationTable(report.Correlations, fmtFloat, writer); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Profile completed in %v. Run backend: %s\n", duration, cfg.RunBackend); err != nil {
		return err
	}
	return nil
}

// writeColumnTable renders the per-column overview.
func writeColumnTable(report schema.ProfileReport, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Column", "Type", "Intent", "Missing", "Unique", "Entropy"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := GetMaxTableNameWidth(cfg)
	var data [][]string
	for _, col := range report.Overview.ColumnList {
		dist := report.Distributions[col.Name]
		data = append(data, []string{
			truncateName(col.Name, nameWidth),
			string(col.Type),
			string(col.Intent),
			fmt.Sprintf(intFmt, col.Missing),
			fmt.Sprintf(intFmt, col.Unique),
			fmtFloat(dist.Entropy),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeIssueTable renders the audit findings, if any.
func writeIssueTable(quality schema.QualityReport, cfg *contract.Config, writer io.Writer) error {
	if len(quality.Issues) == 0 {
		_, err := fmt.Fprintln(writer, "No data quality issues found")
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Column", "Issue", "Severity", "Detail"})

	var data [][]string
	for _, issue := range quality.Issues {
		severity := string(issue.Severity)
		if cfg.UseColors {
			severity = contract.GetSeverityLabel(issue.Severity)
		}
		data = append(data, []string{
			issue.Column,
			string(issue.Type),
			severity,
			issue.Detail,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeCorrelationTable renders the strongest pairs, if a matrix exists.
func writeCorrelationTable(result schema.CorrelationResult, fmtFloat func(float64) string, writer io.Writer) error {
	if result.Message != "" {
		_, err := fmt.Fprintln(writer, result.Message)
		return err
	}
	if len(result.Pairs) == 0 {
		return nil
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Column 1", "Column 2", "Correlation", "Strength"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	limit := min(len(result.Pairs), topCorrelationsShown)
	var data [][]string
	for i, pair := range result.Pairs[:limit] {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			pair.Column1,
			pair.Column2,
			fmtFloat(pair.Correlation),
			string(pair.Strength),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
