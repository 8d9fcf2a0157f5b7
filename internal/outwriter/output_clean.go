package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/datascope/datascope/internal/contract"
	"github.com/datascope/datascope/schema"

	"github.com/olekukonko/tablewriter"
)

// WriteCleanResults outputs a cleansing summary, dispatching based on the output format configured.
func WriteCleanResults(summary schema.CleanSummary, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, summary)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeCleanCSVResults(summary, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCleanTable(summary, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeCleanCSVResults writes the audit log entries in CSV format.
func writeCleanCSVResults(summary schema.CleanSummary, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"timestamp", "action", "reason", "count", "affected_columns"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, entry := range summary.Logs {
				rec := []string{
					entry.Timestamp.Format(time.RFC3339),
					entry.Action,
					entry.Reason,
					fmt.Sprintf("%d", entry.Count),
					strings.Join(entry.AffectedColumns, "|"),
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeCleanTable generates and writes the human-readable summary.
func writeCleanTable(summary schema.CleanSummary, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	beforeLabel := contract.GetPlainLabel(summary.BeforeQualityScore)
	afterLabel := contract.GetPlainLabel(summary.AfterQualityScore)
	if cfg.UseColors {
		beforeLabel = contract.GetColorLabel(summary.BeforeQualityScore)
		afterLabel = contract.GetColorLabel(summary.AfterQualityScore)
	}

	if _, err := fmt.Fprintf(writer, "Rows: %d -> %d  Quality: %s (%s) -> %s (%s)\n",
		summary.OriginalRows, summary.FinalRows,
		fmtFloat(summary.BeforeQualityScore), beforeLabel,
		fmtFloat(summary.AfterQualityScore), afterLabel); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Duplicates dropped: %d  Missing filled: %d  Outliers capped: %d  Text standardized: %d\n",
		summary.DroppedDuplicates, summary.FilledMissing,
		summary.OutliersCapped, summary.TextStandardized); err != nil {
		return err
	}

	if !summary.SchemaValidation.IsValid {
		for _, msg := range summary.SchemaValidation.Errors {
			if _, err := fmt.Fprintf(writer, "Schema: %s\n", msg); err != nil {
				return err
			}
		}
	}

	if len(summary.Logs) > 0 {
		table := tablewriter.NewWriter(writer)
		table.Header([]string{"Action", "Count", "Columns", "Reason"})

		var data [][]string
		for _, entry := range summary.Logs {
			data = append(data, []string{
				entry.Action,
				fmt.Sprintf("%d", entry.Count),
				strings.Join(entry.AffectedColumns, ", "),
				entry.Reason,
			})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(writer, "Clean completed in %v. Run backend: %s\n", duration, cfg.RunBackend)
	return err
}

// WriteCleanedRecords exports the cleaned rows to the given path, as CSV or
// JSON depending on the file extension. Columns keep their declared order.
func WriteCleanedRecords(records []schema.Record, ts schema.TableSchema, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return writeWithFile(path, func(w io.Writer) error {
			return writeCSVWithHeader(w, ts.ColumnNames(), func(csvWriter *csv.Writer) error {
				for _, r := range records {
					row := make([]string, 0, len(ts.Columns))
					for _, col := range ts.Columns {
						row = append(row, formatCell(r[col.Name]))
					}
					if err := csvWriter.Write(row); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote cleaned CSV")
	case ".json":
		return writeWithFile(path, func(w io.Writer) error {
			return writeJSON(w, records)
		}, "Wrote cleaned JSON")
	default:
		return fmt.Errorf("unsupported cleaned-file format %q (expected .csv or .json)", filepath.Ext(path))
	}
}
