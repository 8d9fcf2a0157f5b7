package cmd

import (
	"fmt"

	"github.com/datascope/datascope/internal/contract"
	"github.com/datascope/datascope/internal/outwriter"
	"github.com/datascope/datascope/internal/runstore"
	"github.com/datascope/datascope/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runsCmd is the parent for run history management.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Manage the persisted run history.",
	Long: `Manage the run history recorded by profile, clean and score.

Every tracked invocation stores its dataset, dimensions, quality score and
duration in the configured backend (sqlite by default). Use the subcommands
to list, inspect, export or clear that history.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// runsSetup prepares the persistence layer for runs subcommands. Unlike
// sharedSetup it does not require a dataset argument.
func runsSetup(_ *cobra.Command, _ []string) error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(viper.GetString("run-backend"))
	if backend == "" {
		backend = schema.NoneBackend
	}
	connStr := viper.GetString("run-db-connect")
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.RunBackend = backend
	cfg.RunDBConnect = connStr
	cfg.OutputFile = viper.GetString("output-file")
	cfg.Output = schema.OutputMode(viper.GetString("output"))
	cfg.Precision = viper.GetInt("precision")
	colors, err := contract.ParseBoolString(viper.GetString("color"))
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if err := runstore.InitStore(cfg.RunBackend, cfg.RunDBConnect); err != nil {
		return fmt.Errorf("failed to initialize persistence: %w", err)
	}

	return nil
}

// runsMigrateSetup resolves backend settings without opening the store,
// since golang-migrate manages its own connection.
func runsMigrateSetup(_ *cobra.Command, _ []string) error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(viper.GetString("run-backend"))
	if backend == "" {
		backend = schema.NoneBackend
	}
	connStr := viper.GetString("run-db-connect")
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetRunDBFilePath()
	}

	cfg.RunBackend = backend
	cfg.RunDBConnect = connStr

	return nil
}

// runsListCmd prints all recorded runs.
var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all recorded runs, newest first.",
	Long: `List all recorded runs, newest first.

Examples:
  # Show run history as a table
  datascope runs list

  # Dump run history as JSON
  datascope runs list --output json`,
	PreRunE: runsSetup,
	Run: func(_ *cobra.Command, _ []string) {
		store := runstore.Manager.GetRunStore()
		if store == nil {
			contract.LogFatal("Run tracking is disabled", fmt.Errorf("backend is none"))
		}
		runs, err := store.GetAllRuns()
		if err != nil {
			contract.LogFatal("Cannot list runs", err)
		}
		if err := outwriter.WriteRunResults(runs, cfg); err != nil {
			contract.LogFatal("Cannot write runs", err)
		}
	},
}

// runsStatusCmd summarizes the persistence backend.
var runsStatusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Show backend connectivity and run counts.",
	PreRunE: runsSetup,
	Run: func(_ *cobra.Command, _ []string) {
		store := runstore.Manager.GetRunStore()
		if store == nil {
			contract.LogFatal("Run tracking is disabled", fmt.Errorf("backend is none"))
		}
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Cannot get run status", err)
		}
		if err := outwriter.WriteRunStatus(status, cfg); err != nil {
			contract.LogFatal("Cannot write run status", err)
		}
	},
}

// runsClearCmd deletes all recorded runs.
var runsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded runs.",
	Long: `Delete all recorded runs.

For sqlite this removes the database file entirely. For mysql and
postgresql the runs table is dropped and recreated on the next run.`,
	PreRunE: runsMigrateSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runstore.ClearRuns(cfg.RunBackend, runstore.GetRunDBFilePath(), cfg.RunDBConnect); err != nil {
			contract.LogFatal("Cannot clear runs", err)
		}
		fmt.Println("Run history cleared.")
	},
}

// runsExportCmd writes the run history to a Parquet file.
var runsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export run history to a Parquet file.",
	Long: `Export run history to a Parquet file.

Examples:
  # Export all runs for analysis in DuckDB, pandas, Spark, etc.
  datascope runs export --output-file runs.parquet`,
	PreRunE: runsSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runstore.ExecuteRunExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Cannot export runs", err)
		}
	},
}

// runsMigrateCmd applies schema migrations to the run database.
var runsMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply schema migrations to the run database.",
	Long: `Apply schema migrations to the run database.

Examples:
  # Migrate to the latest version
  datascope runs migrate

  # Roll back everything
  datascope runs migrate --target-version 0`,
	PreRunE: runsMigrateSetup,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := runstore.MigrateRuns(cfg.RunBackend, cfg.RunDBConnect, targetVersion); err != nil {
			contract.LogFatal("Cannot migrate run database", err)
		}
	},
}
