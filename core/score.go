package core

import (
	"github.com/datascope/datascope/schema"
)

// Penalty weights for the quality score. Missing cells dominate, duplicate
// rows weigh half, outlier cells a fifth.
const (
	missingWeight   = 100.0
	duplicateWeight = 50.0
	outlierWeight   = 20.0
)

// Score computes a single 0-100 defect score for a dataset snapshot, rounded
// to one decimal. It starts at 100 and subtracts three independent penalties
// for missing cells, duplicate rows and outlier cells, then clamps to
// [0, 100]. The penalties are additive and uncapped before the clamp, so
// pathological inputs can drive the intermediate value deeply negative; the
// clamp saturates them at 0.
//
// An empty dataset scores 0: there is no data to certify, which is not the
// same as a perfect dataset.
func Score(records []schema.Record, ts schema.TableSchema) float64 {
	rows := len(records)
	cols := len(ts.Columns)
	if rows == 0 || cols == 0 {
		return 0
	}

	totalCells := rows * cols

	missingCells := 0
	for _, r := range records {
		for _, c := range ts.Columns {
			if IsMissing(r[c.Name]) {
				missingCells++
			}
		}
	}

	duplicateRows := 0
	seen := make(map[string]struct{}, rows)
	for _, r := range records {
		sig := rowSignature(r)
		if _, ok := seen[sig]; ok {
			duplicateRows++
			continue
		}
		seen[sig] = struct{}{}
	}

	// Outlier cells are counted across every numeric column, with no
	// intent-based exclusion.
	outlierCells := 0
	for _, c := range ts.NumericColumns() {
		outlierCells += countOutliers(numericValues(records, c.Name))
	}

	score := 100.0
	score -= float64(missingCells) / float64(totalCells) * missingWeight
	score -= float64(duplicateRows) / float64(rows) * duplicateWeight
	score -= float64(outlierCells) / float64(totalCells) * outlierWeight

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return round1(score)
}

// countOutliers counts values outside the Tukey fences. Columns with fewer
// than minOutlierSample values are skipped: too small for a stable IQR.
func countOutliers(values []float64) int {
	if len(values) < minOutlierSample {
		return 0
	}
	sorted := sortedCopy(values)
	_, _, lower, upper := tukeyFences(sorted)

	count := 0
	for _, v := range values {
		if v < lower || v > upper {
			count++
		}
	}
	return count
}
