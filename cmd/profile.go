package cmd

import (
	"github.com/datascope/datascope/core"
	"github.com/datascope/datascope/internal/contract"
	"github.com/spf13/cobra"
)

// profileCmd performs the full statistical profiling pass.
var profileCmd = &cobra.Command{
	Use:   "profile <dataset>",
	Short: "Show distributions, intents, correlations and quality issues.",
	Long: `Perform a full statistical profile of a tabular dataset.

Analyzes every column of the dataset to compute summary statistics, helping you:
- Understand value distributions, quartiles and histograms per column
- Detect the semantic intent of each column (identifier, categorical, ...)
- Find strongly correlated numeric column pairs
- Locate outliers with the Tukey fence method
- Surface data quality issues like null spikes and constant columns

The composite quality score (0-100) summarizes missing cells, duplicate
rows and outliers in a single number.

Examples:
  # Profile a CSV file
  datascope profile orders.csv

  # Profile with a declared schema instead of inference
  datascope profile orders.csv --schema-file orders-schema.json

  # Export findings to JSON for downstream tooling
  datascope profile orders.csv --output json --output-file report.json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteProfile(rootCtx, cfg, runManager); err != nil {
			contract.LogFatal("Cannot run profile", err)
		}
	},
}
