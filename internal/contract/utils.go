package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/datascope/datascope/schema"
	"github.com/fatih/color"
)

// Quality grade label constants.
const (
	ExcellentValue = "Excellent" // Excellent quality
	GoodValue      = "Good"      // Good quality
	FairValue      = "Fair"      // Fair quality
	PoorValue      = "Poor"      // Poor quality
)

// Color variables for console output.
var (
	ExcellentColor = color.New(color.FgGreen, color.Bold) // excellentColor signals a healthy dataset.
	GoodColor      = color.New(color.FgCyan)              // goodColor signals minor defects only.
	FairColor      = color.New(color.FgYellow)            // fairColor signals caution.
	PoorColor      = color.New(color.FgRed, color.Bold)   // poorColor signals serious defects.

	HighSeverityColor   = color.New(color.FgRed, color.Bold) // highSeverityColor for blocking issues.
	MediumSeverityColor = color.New(color.FgYellow)          // mediumSeverityColor for notable issues.
	LowSeverityColor    = color.New(color.FgCyan)            // lowSeverityColor for informational issues.
)

// GetPlainLabel returns a plain text grade for a quality score. This is the
// core logic used for CSV, JSON, and table printing.
func GetPlainLabel(score float64) string {
	switch {
	case score >= 90:
		return ExcellentValue
	case score >= 75:
		return GoodValue
	case score >= 50:
		return FairValue
	default:
		return PoorValue
	}
}

// GetColorLabel returns a colored grade for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(score float64) string {
	text := GetPlainLabel(score)

	switch text {
	case ExcellentValue:
		return ExcellentColor.Sprint(text)
	case GoodValue:
		return GoodColor.Sprint(text)
	case FairValue:
		return FairColor.Sprint(text)
	default: // "Poor"
		return PoorColor.Sprint(text)
	}
}

// GetSeverityLabel returns a colored severity label for issue tables.
func GetSeverityLabel(severity schema.IssueSeverity) string {
	text := strings.ToUpper(string(severity))
	switch severity {
	case schema.HighSeverity:
		return HighSeverityColor.Sprint(text)
	case schema.MediumSeverity:
		return MediumSeverityColor.Sprint(text)
	default:
		return LowSeverityColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetRunDBFilePath returns the path to the SQLite DB file for run storage.
func GetRunDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".datascope_runs.db"
	}
	return filepath.Join(homeDir, ".datascope_runs.db")
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
