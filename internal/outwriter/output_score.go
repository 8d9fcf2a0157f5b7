package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/datascope/datascope/internal/contract"
	"github.com/datascope/datascope/schema"
)

// WriteScoreResult outputs the composite quality score, dispatching based on the output format configured.
func WriteScoreResult(score float64, rows, cols int, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, struct {
				Score   float64 `json:"score"`
				Grade   string  `json:"grade"`
				Rows    int     `json:"rows"`
				Columns int     `json:"columns"`
			}{score, contract.GetPlainLabel(score), rows, cols})
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"score", "grade", "rows", "columns"}
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				return csvWriter.Write([]string{
					fmtFloat(score),
					contract.GetPlainLabel(score),
					strconv.Itoa(rows),
					strconv.Itoa(cols),
				})
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			grade := contract.GetPlainLabel(score)
			if cfg.UseColors {
				grade = contract.GetColorLabel(score)
			}
			if _, err := fmt.Fprintf(w, "Quality: %s (%s)  Rows: %d  Columns: %d\n",
				fmtFloat(score), grade, rows, cols); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "Score completed in %v. Run backend: %s\n", duration, cfg.RunBackend)
			return err
		}, "Wrote score")
	}
}
