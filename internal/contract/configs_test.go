package contract

import (
	"testing"

	"github.com/datascope/datascope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRawInput() *ConfigRawInput {
	return &ConfigRawInput{
		InputPathStr:    "data.csv",
		Output:          "text",
		Precision:       2,
		Color:           "yes",
		RunBackend:      "sqlite",
		DropDuplicates:  true,
		FillMissing:     true,
		CapOutliers:     true,
		StandardizeText: true,
		ValidateSchema:  true,
		DetectIntent:    true,
	}
}

// TestProcessAndValidate checks the happy path populates the final config.
func TestProcessAndValidate(t *testing.T) {
	input := validRawInput()
	input.Protect = "id, email ,"

	var cfg Config
	require.NoError(t, ProcessAndValidate(&cfg, input))

	assert.Equal(t, "data.csv", cfg.InputPath)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, 2, cfg.Precision)
	assert.True(t, cfg.UseColors)
	assert.Equal(t, schema.SQLiteBackend, cfg.RunBackend)
	assert.True(t, cfg.Clean.DropDuplicates)
	assert.Equal(t, []string{"id", "email"}, cfg.Clean.ProtectedColumns)
}

// TestProcessAndValidateRejects enumerates the validation failures.
func TestProcessAndValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConfigRawInput)
	}{
		{"precision too low", func(i *ConfigRawInput) { i.Precision = 0 }},
		{"precision too high", func(i *ConfigRawInput) { i.Precision = 9 }},
		{"unknown output mode", func(i *ConfigRawInput) { i.Output = "xml" }},
		{"unknown backend", func(i *ConfigRawInput) { i.RunBackend = "oracle" }},
		{"bad color flag", func(i *ConfigRawInput) { i.Color = "maybe" }},
		{"mysql without connection string", func(i *ConfigRawInput) { i.RunBackend = "mysql" }},
		{"postgresql without connection string", func(i *ConfigRawInput) { i.RunBackend = "postgresql" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRawInput()
			tt.mutate(input)
			assert.Error(t, ProcessAndValidate(&Config{}, input))
		})
	}
}

// TestProcessAndValidateCaseInsensitive accepts mixed-case mode names.
func TestProcessAndValidateCaseInsensitive(t *testing.T) {
	input := validRawInput()
	input.Output = "JSON"
	input.RunBackend = "SQLite"

	var cfg Config
	require.NoError(t, ProcessAndValidate(&cfg, input))
	assert.Equal(t, schema.JSONOut, cfg.Output)
	assert.Equal(t, schema.SQLiteBackend, cfg.RunBackend)
}

// TestValidateDatabaseConnectionString covers the per-backend format rules.
func TestValidateDatabaseConnectionString(t *testing.T) {
	tests := []struct {
		name    string
		backend schema.DatabaseBackend
		connStr string
		wantErr bool
	}{
		{"sqlite needs nothing", schema.SQLiteBackend, "", false},
		{"none needs nothing", schema.NoneBackend, "", false},
		{"valid mysql", schema.MySQLBackend, "user:pass@tcp(localhost:3306)/datascope", false},
		{"mysql missing tcp", schema.MySQLBackend, "user:pass@localhost/datascope", true},
		{"mysql empty", schema.MySQLBackend, "", true},
		{"valid postgresql", schema.PostgreSQLBackend, "host=localhost dbname=datascope user=u", false},
		{"postgresql missing dbname", schema.PostgreSQLBackend, "host=localhost user=u", true},
		{"postgresql empty", schema.PostgreSQLBackend, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatabaseConnectionString(tt.backend, tt.connStr)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
