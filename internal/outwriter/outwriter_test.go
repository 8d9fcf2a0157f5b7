package outwriter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/datascope/datascope/internal/contract"
	"github.com/datascope/datascope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *contract.Config {
	return &contract.Config{
		Output:     schema.TextOut,
		Precision:  2,
		Width:      120,
		RunBackend: schema.NoneBackend,
	}
}

func sampleReport() schema.ProfileReport {
	return schema.ProfileReport{
		Overview: schema.Overview{
			Rows:         4,
			Columns:      2,
			QualityScore: 87.5,
			Completeness: 100,
			ColumnList: []schema.ColumnOverview{
				{Name: "id", Type: schema.IntegerType, Intent: schema.IdentifierIntent, Unique: 4},
				{Name: "city", Type: schema.StringType, Intent: schema.CategoricalIntent, Unique: 2},
			},
		},
		Distributions: map[string]schema.DistributionSummary{
			"id":   {Kind: schema.NumericKind},
			"city": {Kind: schema.CategoricalKind, Entropy: 1.0},
		},
		Correlations: schema.CorrelationResult{Message: "not enough numeric columns for correlation"},
		Outliers:     map[string]schema.OutlierSummary{},
		DataQuality: schema.QualityReport{
			Issues: []schema.QualityIssue{
				{Column: "city", Type: schema.ConstantColumnIssue, Severity: schema.MediumSeverity, Detail: "detail"},
			},
			SeverityCounts: map[schema.IssueSeverity]int{schema.MediumSeverity: 1},
		},
	}
}

// TestWriteProfileTables renders the overview, columns and issues as text.
func TestWriteProfileTables(t *testing.T) {
	var buf bytes.Buffer
	fmtFloat, intFmt := createFormatters(2)

	err := writeProfileTables(sampleReport(), testConfig(), fmtFloat, intFmt, time.Second, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Rows: 4")
	assert.Contains(t, out, "87.50")
	assert.Contains(t, out, "Good")
	assert.Contains(t, out, "city")
	assert.Contains(t, out, "constant_column")
	assert.Contains(t, out, "not enough numeric columns")
}

// TestWriteProfileJSON writes a parseable document with the grade attached.
func TestWriteProfileJSON(t *testing.T) {
	cfg := testConfig()
	cfg.Output = schema.JSONOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "report.json")

	require.NoError(t, WriteProfileResults(sampleReport(), cfg, time.Second))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Good", decoded["grade"])
	assert.Contains(t, decoded, "overview")
}

// TestWriteProfileCSV writes one row per column.
func TestWriteProfileCSV(t *testing.T) {
	cfg := testConfig()
	cfg.Output = schema.CSVOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "report.csv")

	require.NoError(t, WriteProfileResults(sampleReport(), cfg, time.Second))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3) // header + 2 columns
	assert.Contains(t, lines[0], "column,type,intent")
}

// TestWriteCleanTable renders the before/after summary and the audit log.
func TestWriteCleanTable(t *testing.T) {
	summary := schema.CleanSummary{
		OriginalRows:       6,
		FinalRows:          5,
		DroppedDuplicates:  1,
		BeforeQualityScore: 82.5,
		AfterQualityScore:  100,
		Logs: []schema.CleanLog{
			{Action: schema.DeduplicationAction, Reason: "removed duplicate rows", Count: 1},
		},
		SchemaValidation: schema.SchemaValidation{IsValid: true},
	}

	var buf bytes.Buffer
	fmtFloat, _ := createFormatters(1)
	require.NoError(t, writeCleanTable(summary, testConfig(), fmtFloat, time.Second, &buf))

	out := buf.String()
	assert.Contains(t, out, "Rows: 6 -> 5")
	assert.Contains(t, out, schema.DeduplicationAction)
	assert.Contains(t, out, "82.5")
}

// TestWriteCleanedRecordsCSV exports rows in declared column order.
func TestWriteCleanedRecordsCSV(t *testing.T) {
	ts := schema.TableSchema{Columns: []schema.Column{
		{Name: "id", Type: schema.IntegerType},
		{Name: "name", Type: schema.StringType},
	}}
	records := []schema.Record{
		{"id": 1, "name": "a"},
		{"id": 2, "name": nil},
	}

	path := filepath.Join(t.TempDir(), "cleaned.csv")
	require.NoError(t, WriteCleanedRecords(records, ts, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,name", lines[0])
	assert.Equal(t, "1,a", lines[1])
	assert.Equal(t, "2,", lines[2])
}

// TestWriteCleanedRecordsRejectsFormat refuses unknown extensions.
func TestWriteCleanedRecordsRejectsFormat(t *testing.T) {
	err := WriteCleanedRecords(nil, schema.TableSchema{}, "out.parquet")
	assert.Error(t, err)
}

// TestWriteRunTable renders the history and the empty message.
func TestWriteRunTable(t *testing.T) {
	runs := []schema.RunRecord{
		{RunID: 1, Kind: schema.ProfileRunKind, Dataset: "d.csv", Rows: 10, Columns: 3, QualityScore: 95, CreatedAt: time.Now()},
	}

	var buf bytes.Buffer
	fmtFloat, _ := createFormatters(2)
	require.NoError(t, writeRunTable(runs, testConfig(), fmtFloat, &buf))
	assert.Contains(t, buf.String(), "d.csv")

	buf.Reset()
	require.NoError(t, writeRunTable(nil, testConfig(), fmtFloat, &buf))
	assert.Contains(t, buf.String(), "No runs recorded")
}

// TestGetMaxTableNameWidth respects the override and the clamps.
func TestGetMaxTableNameWidth(t *testing.T) {
	cfg := testConfig()

	cfg.Width = 200
	assert.Equal(t, 50, GetMaxTableNameWidth(cfg))

	cfg.Width = 40
	assert.Equal(t, 12, GetMaxTableNameWidth(cfg))

	cfg.Width = 100
	assert.Equal(t, 45, GetMaxTableNameWidth(cfg))
}

// TestTruncateName keeps short names and prefixes long ones.
func TestTruncateName(t *testing.T) {
	assert.Equal(t, "short", truncateName("short", 12))
	truncated := truncateName("a_very_long_column_name_indeed", 12)
	assert.Len(t, truncated, 12)
	assert.True(t, strings.HasPrefix(truncated, "..."))
}

// TestFormatCell renders cell values for CSV export.
func TestFormatCell(t *testing.T) {
	assert.Equal(t, "", formatCell(nil))
	assert.Equal(t, "x", formatCell("x"))
	assert.Equal(t, "true", formatCell(true))
	assert.Equal(t, "2.5", formatCell(2.5))
	assert.Equal(t, "7", formatCell(7))
}
