package core

import (
	"fmt"
	"testing"

	"github.com/datascope/datascope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAuditNullSpike flags a column with a majority of missing values.
func TestAuditNullSpike(t *testing.T) {
	ts := schema.TableSchema{Columns: []schema.Column{
		{Name: "email", Type: schema.StringType},
	}}
	records := make([]schema.Record, 0, 10)
	for i := range 10 {
		if i < 6 {
			records = append(records, schema.Record{"email": nil})
		} else {
			records = append(records, schema.Record{"email": fmt.Sprintf("u%d@x.io", i)})
		}
	}

	report := Audit(records, ts)

	require.Len(t, report.Issues, 1)
	issue := report.Issues[0]
	assert.Equal(t, "email", issue.Column)
	assert.Equal(t, schema.NullSpikeIssue, issue.Type)
	assert.Equal(t, schema.HighSeverity, issue.Severity)
	assert.Equal(t, 1, report.SeverityCounts[schema.HighSeverity])
}

// TestAuditNullSpikeBoundary checks exactly half missing does not fire; the
// rule is strictly greater than.
func TestAuditNullSpikeBoundary(t *testing.T) {
	ts := schema.TableSchema{Columns: []schema.Column{
		{Name: "v", Type: schema.StringType},
	}}
	records := []schema.Record{
		{"v": nil}, {"v": nil}, {"v": "a"}, {"v": "b"},
	}

	report := Audit(records, ts)
	assert.Empty(t, report.Issues)
}

// TestAuditConstantColumn flags a column with exactly one distinct value.
func TestAuditConstantColumn(t *testing.T) {
	ts := schema.TableSchema{Columns: []schema.Column{
		{Name: "status", Type: schema.StringType},
	}}
	records := []schema.Record{
		{"status": "active"}, {"status": "active"}, {"status": "active"},
	}

	report := Audit(records, ts)

	require.Len(t, report.Issues, 1)
	assert.Equal(t, schema.ConstantColumnIssue, report.Issues[0].Type)
	assert.Equal(t, schema.MediumSeverity, report.Issues[0].Severity)
}

// TestAuditConstantColumnAllNull ensures an all-null column is a null spike,
// not a constant column: the constant rule needs at least one value.
func TestAuditConstantColumnAllNull(t *testing.T) {
	ts := schema.TableSchema{Columns: []schema.Column{
		{Name: "v", Type: schema.StringType},
	}}
	records := []schema.Record{{"v": nil}, {"v": nil}}

	report := Audit(records, ts)

	require.Len(t, report.Issues, 1)
	assert.Equal(t, schema.NullSpikeIssue, report.Issues[0].Type)
}

// TestAuditHighCardinality flags a string column where nearly every value is
// distinct, given enough rows to judge.
func TestAuditHighCardinality(t *testing.T) {
	ts := schema.TableSchema{Columns: []schema.Column{
		{Name: "token", Type: schema.StringType},
	}}
	records := make([]schema.Record, 0, 12)
	for i := range 12 {
		records = append(records, schema.Record{"token": fmt.Sprintf("tok-%d", i)})
	}

	report := Audit(records, ts)

	require.Len(t, report.Issues, 1)
	assert.Equal(t, schema.HighCardinalityIssue, report.Issues[0].Type)
	assert.Equal(t, schema.LowSeverity, report.Issues[0].Severity)
}

// TestAuditHighCardinalitySkipsSmallColumns checks the minimum row guard:
// ten or fewer values are never enough to call a column high cardinality.
func TestAuditHighCardinalitySkipsSmallColumns(t *testing.T) {
	ts := schema.TableSchema{Columns: []schema.Column{
		{Name: "token", Type: schema.StringType},
	}}
	records := make([]schema.Record, 0, 10)
	for i := range 10 {
		records = append(records, schema.Record{"token": fmt.Sprintf("tok-%d", i)})
	}

	report := Audit(records, ts)
	assert.Empty(t, report.Issues)
}

// TestAuditHighCardinalityIgnoresNumeric ensures the rule only applies to
// string columns; unique numeric columns are normal.
func TestAuditHighCardinalityIgnoresNumeric(t *testing.T) {
	ts := schema.TableSchema{Columns: []schema.Column{
		{Name: "id", Type: schema.IntegerType},
	}}
	records := make([]schema.Record, 0, 20)
	for i := range 20 {
		records = append(records, schema.Record{"id": i})
	}

	report := Audit(records, ts)
	assert.Empty(t, report.Issues)
}

// TestAuditMultipleIssues checks independent rules firing across columns and
// the severity rollup.
func TestAuditMultipleIssues(t *testing.T) {
	ts := schema.TableSchema{Columns: []schema.Column{
		{Name: "mostly_null", Type: schema.StringType},
		{Name: "constant", Type: schema.StringType},
		{Name: "fine", Type: schema.StringType},
	}}
	records := make([]schema.Record, 0, 5)
	for i := range 5 {
		r := schema.Record{"constant": "same", "fine": fmt.Sprintf("v%d", i%2)}
		if i < 2 {
			r["mostly_null"] = fmt.Sprintf("rare%d", i)
		} else {
			r["mostly_null"] = nil
		}
		records = append(records, r)
	}

	report := Audit(records, ts)

	require.Len(t, report.Issues, 2)
	assert.Equal(t, 1, report.SeverityCounts[schema.HighSeverity])
	assert.Equal(t, 1, report.SeverityCounts[schema.MediumSeverity])
	assert.Zero(t, report.SeverityCounts[schema.LowSeverity])
}

// TestAuditEmptyDataset returns a clean report for no rows.
func TestAuditEmptyDataset(t *testing.T) {
	ts := schema.TableSchema{Columns: []schema.Column{
		{Name: "v", Type: schema.StringType},
	}}
	report := Audit([]schema.Record{}, ts)

	assert.Empty(t, report.Issues)
	assert.Empty(t, report.SeverityCounts)
}
