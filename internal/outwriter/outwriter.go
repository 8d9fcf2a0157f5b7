// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"github.com/datascope/datascope/internal/contract"
	"github.com/datascope/datascope/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the command layer.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteProfile prints a profile report using the configured output format.
func (ow *OutWriter) WriteProfile(report schema.ProfileReport, cfg *contract.Config, duration time.Duration) error {
	return WriteProfileResults(report, cfg, duration)
}

// WriteClean prints a cleansing summary using the configured output format.
func (ow *OutWriter) WriteClean(summary schema.CleanSummary, cfg *contract.Config, duration time.Duration) error {
	return WriteCleanResults(summary, cfg, duration)
}

// WriteRuns prints the recorded run history using the configured output format.
func (ow *OutWriter) WriteRuns(runs []schema.RunRecord, cfg *contract.Config) error {
	return WriteRunResults(runs, cfg)
}

// GetMaxTableNameWidth calculates the maximum width for column names in table
// output based on terminal width.
func GetMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the type, intent, missing and unique columns plus
	// borders, separators and padding.
	baseWidth := 55

	available := termWidth - baseWidth
	if available < 12 {
		// Minimum reasonable name width
		return 12
	}
	if available > 50 {
		// Maximum name width to prevent overly wide tables
		return 50
	}
	return available
}
