package runstore

import (
	"errors"
	"fmt"

	"github.com/datascope/datascope/internal/parquet"
)

// ExecuteRunExport performs the actual export of run history to a Parquet file.
func ExecuteRunExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the run store
	store := Manager.GetRunStore()
	if store == nil {
		return errors.New("run store is not initialized")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get run store status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no run history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total runs: %d\n", status.TotalRuns)

	// Retrieve all runs
	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}

	// Convert to Parquet format and write
	exports := parquet.ConvertRunRecords(runs)
	if err := parquet.WriteRunsParquet(exports, outputFile); err != nil {
		return fmt.Errorf("failed to write run history: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(exports), outputFile)

	return nil
}
