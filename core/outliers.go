package core

import (
	"github.com/datascope/datascope/schema"
)

// minOutlierSample is the smallest column size with a stable enough IQR for
// outlier detection; smaller columns are skipped.
const minOutlierSample = 5

// outlierSampleLimit bounds the offending values kept for display.
const outlierSampleLimit = 5

// DetectOutliers runs a Tukey-fence census over every declared numeric
// column. Columns with fewer than minOutlierSample coercible values are
// omitted from the result.
func DetectOutliers(records []schema.Record, ts schema.TableSchema) map[string]schema.OutlierSummary {
	results := make(map[string]schema.OutlierSummary)
	for _, col := range ts.NumericColumns() {
		values := numericValues(records, col.Name)
		if len(values) < minOutlierSample {
			continue
		}
		results[col.Name] = censusOutliers(values)
	}
	return results
}

// censusOutliers counts and samples the values outside the 1.5*IQR fences.
// The sample preserves row order.
func censusOutliers(values []float64) schema.OutlierSummary {
	sorted := sortedCopy(values)
	_, _, lower, upper := tukeyFences(sorted)

	var sample []float64
	count := 0
	for _, v := range values {
		if v < lower || v > upper {
			count++
			if len(sample) < outlierSampleLimit {
				sample = append(sample, v)
			}
		}
	}

	return schema.OutlierSummary{
		Count:      count,
		Percentage: round2(float64(count) / float64(len(values)) * 100),
		LowerBound: round2(lower),
		UpperBound: round2(upper),
		Sample:     sample,
	}
}
