package cmd

import (
	"github.com/datascope/datascope/core"
	"github.com/datascope/datascope/internal/contract"
	"github.com/spf13/cobra"
)

// cleanCmd runs the auto-cleansing pipeline.
var cleanCmd = &cobra.Command{
	Use:   "clean <dataset>",
	Short: "Fix duplicates, missing values, stray whitespace and outliers.",
	Long: `Run the cleansing pipeline on a tabular dataset and report what changed.

The pipeline applies corrective stages in a fixed order:
- Validate the declared schema against the actual data
- Detect the semantic intent of each column
- Drop duplicate rows (first occurrence wins)
- Fill missing values (median for numeric, placeholders for text)
- Trim surrounding whitespace from text values
- Cap numeric outliers to the Tukey fences

Every stage can be toggled off, and columns listed in --protect are exempt
from per-column mutations. The before/after quality scores show the effect
of the run.

Examples:
  # Clean with all stages enabled
  datascope clean orders.csv

  # Keep outliers, only dedupe and fill
  datascope clean orders.csv --cap-outliers=false

  # Protect audit columns and write cleaned rows out
  datascope clean orders.csv --protect created_at,user_id --cleaned-file cleaned.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteClean(rootCtx, cfg, runManager); err != nil {
			contract.LogFatal("Cannot run clean", err)
		}
	},
}
