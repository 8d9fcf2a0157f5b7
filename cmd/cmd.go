// Package cmd defines the command-line interface for datascope.
package cmd

import (
	"github.com/datascope/datascope/internal/contract"
	"github.com/datascope/datascope/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(runsCmd)

	// Add the runs subcommands to the parent runs command
	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsStatusCmd)
	runsCmd.AddCommand(runsClearCmd)
	runsCmd.AddCommand(runsExportCmd)
	runsCmd.AddCommand(runsMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("schema-file", "", "Path to a JSON schema file (inferred from the data if omitted)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("run-backend", string(schema.SQLiteBackend), "Run tracking backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("run-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of cleanCmd to Viper
	cleanCmd.Flags().Bool("drop-duplicates", true, "Remove duplicate rows")
	cleanCmd.Flags().Bool("fill-missing", true, "Fill missing values with medians or placeholders")
	cleanCmd.Flags().Bool("cap-outliers", true, "Clamp numeric outliers to the Tukey fences")
	cleanCmd.Flags().Bool("standardize-text", true, "Trim surrounding whitespace from text values")
	cleanCmd.Flags().Bool("validate-schema", true, "Compare declared columns against the actual data")
	cleanCmd.Flags().Bool("detect-intent", true, "Report the semantic intent detected for each column")
	cleanCmd.Flags().String("protect", "", "Comma-separated column names exempt from per-column mutations")
	cleanCmd.Flags().String("cleaned-file", "", "Optional path to write the cleaned rows to (.csv or .json)")
	if err := viper.BindPFlags(cleanCmd.Flags()); err != nil {
		contract.LogFatal("Error binding clean flags", err)
	}

	// Bind all flags of runsMigrateCmd to Viper
	runsMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(runsMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding runs migrate flags", err)
	}
}
