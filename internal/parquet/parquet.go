// Package parquet provides data structures and functions for exporting run
// history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/datascope/datascope/schema"
	"github.com/parquet-go/parquet-go"
)

// RunExport represents a single recorded invocation.
// This struct maps to the datascope_runs database table.
type RunExport struct {
	// RunID is the unique identifier for this run
	RunID int64 `parquet:"run_id,snappy"`

	// Kind is the command that produced the run (profile, clean or score)
	Kind string `parquet:"kind,snappy"`

	// Dataset is the input path the run was executed against
	Dataset string `parquet:"dataset,snappy"`

	// RowCount is the number of rows in the dataset
	RowCount int32 `parquet:"row_count,snappy"`

	// ColumnCount is the number of columns in the dataset
	ColumnCount int32 `parquet:"column_count,snappy"`

	// QualityScore is the composite quality score on the 0-100 scale
	QualityScore float64 `parquet:"quality_score,snappy"`

	// DurationMs is the duration of the run in milliseconds
	DurationMs int64 `parquet:"duration_ms,snappy"`

	// Summary contains the JSON-encoded result payload (nullable)
	Summary *string `parquet:"summary,optional,snappy"`

	// CreatedAt is when the run was recorded (stored as TIMESTAMP with nanosecond precision)
	CreatedAt time.Time `parquet:"created_at,snappy"`
}

// WriteRunsParquet writes a slice of RunExport structs to a Parquet file.
func WriteRunsParquet(data []RunExport, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the RunExport struct tags
	writer := parquet.NewGenericWriter[RunExport](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertRunRecords converts schema.RunRecord to RunExport for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []RunExport {
	result := make([]RunExport, len(records))
	for i, record := range records {
		var summary *string
		if record.Summary != "" {
			s := record.Summary
			summary = &s
		}
		result[i] = RunExport{
			RunID:        record.RunID,
			Kind:         record.Kind,
			Dataset:      record.Dataset,
			RowCount:     int32(record.Rows),
			ColumnCount:  int32(record.Columns),
			QualityScore: record.QualityScore,
			DurationMs:   record.DurationMs,
			Summary:      summary,
			CreatedAt:    record.CreatedAt,
		}
	}
	return result
}
