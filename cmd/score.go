package cmd

import (
	"github.com/datascope/datascope/core"
	"github.com/datascope/datascope/internal/contract"
	"github.com/spf13/cobra"
)

// scoreCmd computes just the composite quality score.
var scoreCmd = &cobra.Command{
	Use:   "score <dataset>",
	Short: "Print the composite quality score (0-100).",
	Long: `Compute the composite quality score for a tabular dataset.

The score starts at 100 and is penalized for missing cells, duplicate rows
and numeric outliers. It is the same number reported by 'profile' and
'clean', without the rest of the analysis.

Useful for:
- CI/CD gating on dataset quality
- Quick checks before and after an ETL step
- Tracking quality over time via the run history

Examples:
  # Print the score as text
  datascope score orders.csv

  # Machine-readable output for scripting
  datascope score orders.csv --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScore(rootCtx, cfg, runManager); err != nil {
			contract.LogFatal("Cannot run score", err)
		}
	},
}
