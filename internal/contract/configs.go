package contract

import (
	"fmt"
	"strings"

	"github.com/datascope/datascope/schema"
)

// Default values for configuration.
const (
	DefaultPrecision = 2
	MinPrecision     = 1
	MaxPrecision     = 4
)

// Config holds the runtime configuration for a dataset command.
// This struct remains the "final, validated" config.
type Config struct {
	InputPath  string
	SchemaFile string

	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	RunBackend   schema.DatabaseBackend
	RunDBConnect string // Please use env var as this is plaintext

	Clean       schema.CleanOptions
	CleanedFile string
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Clean.ProtectedColumns != nil {
		clone.Clean.ProtectedColumns = make([]string, len(c.Clean.ProtectedColumns))
		copy(clone.Clean.ProtectedColumns, c.Clean.ProtectedColumns)
	}
	return &clone
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InputPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	SchemaFile   string `mapstructure:"schema-file"`
	Output       string `mapstructure:"output"`
	OutputFile   string `mapstructure:"output-file"`
	Precision    int    `mapstructure:"precision"`
	Width        int    `mapstructure:"width"`
	Color        string `mapstructure:"color"`
	RunBackend   string `mapstructure:"run-backend"`
	RunDBConnect string `mapstructure:"run-db-connect"`

	// --- Fields from cleanCmd.Flags() ---
	DropDuplicates  bool   `mapstructure:"drop-duplicates"`
	FillMissing     bool   `mapstructure:"fill-missing"`
	CapOutliers     bool   `mapstructure:"cap-outliers"`
	StandardizeText bool   `mapstructure:"standardize-text"`
	ValidateSchema  bool   `mapstructure:"validate-schema"`
	DetectIntent    bool   `mapstructure:"detect-intent"`
	Protect         string `mapstructure:"protect"`
	CleanedFile     string `mapstructure:"cleaned-file"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	processCleanOptions(cfg, input)
	return nil
}

// validateSimpleInputs processes and validates all non-backend fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.InputPath = input.InputPathStr
	cfg.SchemaFile = input.SchemaFile
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.CleanedFile = input.CleanedFile

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Precision Validation ---
	if input.Precision < MinPrecision || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between %d and %d (received %d)",
			MinPrecision, MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	// --- 2. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", input.Output)
	}

	return nil
}

// validateBackendConfig validates the run store backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.RunBackend = schema.DatabaseBackend(strings.ToLower(input.RunBackend))
	if _, ok := schema.ValidBackends[cfg.RunBackend]; !ok {
		return fmt.Errorf("invalid run backend '%s'. must be sqlite, mysql, postgresql, none", input.RunBackend)
	}
	cfg.RunDBConnect = input.RunDBConnect
	return ValidateDatabaseConnectionString(cfg.RunBackend, cfg.RunDBConnect)
}

// processCleanOptions maps the clean stage toggles and the protected column
// list onto schema.CleanOptions.
func processCleanOptions(cfg *Config, input *ConfigRawInput) {
	cfg.Clean = schema.CleanOptions{
		DropDuplicates:  input.DropDuplicates,
		FillMissing:     input.FillMissing,
		CapOutliers:     input.CapOutliers,
		StandardizeText: input.StandardizeText,
		ValidateSchema:  input.ValidateSchema,
		DetectIntent:    input.DetectIntent,
	}

	cfg.Clean.ProtectedColumns = SplitColumnList(input.Protect)
}

// SplitColumnList parses a comma-separated list of column names, dropping
// surrounding whitespace and empty entries.
func SplitColumnList(raw string) []string {
	var cols []string
	for part := range strings.SplitSeq(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			cols = append(cols, trimmed)
		}
	}
	return cols
}

// ValidateDatabaseConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("run-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("run-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}
