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

// WriteRunResults outputs the run history, dispatching based on the output format configured.
func WriteRunResults(runs []schema.RunRecord, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, runs)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"run_id", "kind", "dataset", "rows", "columns", "quality_score", "duration_ms", "created_at"}
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				for _, run := range runs {
					rec := []string{
						strconv.FormatInt(run.RunID, 10),
						run.Kind,
						run.Dataset,
						strconv.Itoa(run.Rows),
						strconv.Itoa(run.Columns),
						fmtFloat(run.QualityScore),
						strconv.FormatInt(run.DurationMs, 10),
						run.CreatedAt.Format(time.RFC3339),
					}
					if err := csvWriter.Write(rec); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRunTable(runs, cfg, fmtFloat, w)
		}, "Wrote table")
	}
}

// writeRunTable generates and writes the human-readable run history.
func writeRunTable(runs []schema.RunRecord, cfg *contract.Config, fmtFloat func(float64) string, writer io.Writer) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(writer, "No runs recorded")
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Run", "Kind", "Dataset", "Rows", "Cols", "Score", "Grade", "When"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, run := range runs {
		grade := contract.GetPlainLabel(run.QualityScore)
		if cfg.UseColors {
			grade = contract.GetColorLabel(run.QualityScore)
		}
		data = append(data, []string{
			strconv.FormatInt(run.RunID, 10),
			run.Kind,
			run.Dataset,
			strconv.Itoa(run.Rows),
			strconv.Itoa(run.Columns),
			fmtFloat(run.QualityScore),
			grade,
			run.CreatedAt.Format(time.RFC3339),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// WriteRunStatus prints the state of the run store.
func WriteRunStatus(status schema.RunStatus, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, status)
		}, "Wrote JSON")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if _, err := fmt.Fprintf(w, "Backend: %s  Connected: %t  Runs: %d\n",
				status.Backend, status.Connected, status.TotalRuns); err != nil {
				return err
			}
			if status.TotalRuns > 0 {
				if _, err := fmt.Fprintf(w, "First run: %s  Last run: %s\n",
					status.FirstRunTime.Format(time.RFC3339),
					status.LastRunTime.Format(time.RFC3339)); err != nil {
					return err
				}
			}
			return nil
		}, "Wrote status")
	}
}
