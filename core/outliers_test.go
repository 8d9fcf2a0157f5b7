package core

import (
	"testing"

	"github.com/datascope/datascope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDetectOutliers checks the Tukey-fence census on a hand-computed
// column: quartiles 2 and 4, fences at -1 and 7.
func TestDetectOutliers(t *testing.T) {
	ts := schema.TableSchema{Columns: []schema.Column{
		{Name: "x", Type: schema.FloatType},
	}}
	records := []schema.Record{
		{"x": 1.0}, {"x": 2.0}, {"x": 3.0}, {"x": 4.0}, {"x": 100.0},
	}

	results := DetectOutliers(records, ts)

	require.Contains(t, results, "x")
	summary := results["x"]
	assert.Equal(t, 1, summary.Count)
	assert.InDelta(t, 20.0, summary.Percentage, 0.001)
	assert.InDelta(t, -1.0, summary.LowerBound, 0.001)
	assert.InDelta(t, 7.0, summary.UpperBound, 0.001)
	assert.Equal(t, []float64{100.0}, summary.Sample)
}

// TestDetectOutliersSmallColumn ensures columns below the minimum sample
// size are omitted rather than reported with unstable fences.
func TestDetectOutliersSmallColumn(t *testing.T) {
	ts := schema.TableSchema{Columns: []schema.Column{
		{Name: "x", Type: schema.FloatType},
	}}
	records := []schema.Record{
		{"x": 1.0}, {"x": 2.0}, {"x": 1000.0},
	}

	results := DetectOutliers(records, ts)
	assert.NotContains(t, results, "x")
}

// TestDetectOutliersSampleOrder checks the sample keeps row order and stops
// at the display limit while the count keeps going.
func TestDetectOutliersSampleOrder(t *testing.T) {
	ts := schema.TableSchema{Columns: []schema.Column{
		{Name: "x", Type: schema.FloatType},
	}}
	records := make([]schema.Record, 0, 36)
	for i := 1; i <= 29; i++ {
		records = append(records, schema.Record{"x": float64(i)})
	}
	for i := range 7 {
		records = append(records, schema.Record{"x": float64(1000 + i)})
	}

	results := DetectOutliers(records, ts)
	require.Contains(t, results, "x")
	summary := results["x"]

	assert.Equal(t, 7, summary.Count)
	assert.Equal(t, []float64{1000, 1001, 1002, 1003, 1004}, summary.Sample)
}

// TestDetectOutliersNoOutliers reports a zero-count summary, not an absent
// entry, for a well-behaved column.
func TestDetectOutliersNoOutliers(t *testing.T) {
	ts := schema.TableSchema{Columns: []schema.Column{
		{Name: "x", Type: schema.FloatType},
	}}
	records := []schema.Record{
		{"x": 1.0}, {"x": 2.0}, {"x": 3.0}, {"x": 4.0}, {"x": 5.0},
	}

	results := DetectOutliers(records, ts)
	require.Contains(t, results, "x")
	assert.Equal(t, 0, results["x"].Count)
	assert.Empty(t, results["x"].Sample)
}
