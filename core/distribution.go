package core

import (
	"math"
	"sort"
	"time"

	"github.com/datascope/datascope/schema"
)

// Histogram bin policy: Freedman-Diaconis width, bin count clamped to a
// displayable range.
const (
	minHistogramBins = 5
	maxHistogramBins = 50
)

// topValueLimit caps the value_counts map exposed in summaries. Entropy is
// still computed over the full distribution.
const topValueLimit = 20

// AnalyzeDistribution produces the per-column statistical summary,
// dispatching on the declared type: numeric columns get a histogram and
// moment statistics, date columns a temporal range, everything else a
// frequency table with entropy.
func AnalyzeDistribution(records []schema.Record, col schema.Column) schema.DistributionSummary {
	values := columnValues(records, col.Name)
	rows := len(records)

	distinct, nonNull := distinctNonNull(values)
	missing := rows - nonNull

	summary := schema.DistributionSummary{
		MissingCount: missing,
		UniqueCount:  distinct,
	}
	if rows > 0 {
		summary.MissingRatio = round2(float64(missing) / float64(rows))
	}
	if nonNull > 0 {
		summary.UniqueRatio = round2(float64(distinct) / float64(nonNull))
	}

	switch {
	case col.Type.IsNumeric():
		summary.Kind = schema.NumericKind
		nums := numericValues(records, col.Name)
		if len(nums) > 0 {
			stats := numericStatistics(nums)
			summary.Statistics = &stats
			hist := buildHistogram(nums)
			summary.Histogram = &hist
		}
	case col.Type.IsDate():
		summary.Kind = schema.TemporalKind
		if t := temporalStatistics(values); t != nil {
			summary.Temporal = t
		}
	default:
		summary.Kind = schema.CategoricalKind
		fillCategorical(&summary, values)
	}

	return summary
}

// numericStatistics computes descriptive statistics over the non-missing
// coercible values of a numeric column. Std is the population standard
// deviation (divide by n); skewness and kurtosis are population moments with
// no bias correction, kurtosis reported as excess.
func numericStatistics(values []float64) schema.NumericStats {
	sorted := sortedCopy(values)
	n := float64(len(sorted))

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	mean := sum / n

	var variance float64
	for _, v := range sorted {
		d := v - mean
		variance += d * d
	}
	variance /= n
	std := math.Sqrt(variance)

	// Floor sigma to keep the standardized moments finite on zero-variance
	// columns; the numerators are zero there anyway.
	sigma := math.Max(std, sigmaFloor)
	var m3, m4 float64
	for _, v := range sorted {
		z := (v - mean) / sigma
		m3 += z * z * z
		m4 += z * z * z * z
	}
	skewness := m3 / n
	kurtosis := m4/n - 3

	return schema.NumericStats{
		Min:      round2(sorted[0]),
		Max:      round2(sorted[len(sorted)-1]),
		Mean:     round2(mean),
		Median:   round2(nearestRank(sorted, 0.5)),
		Std:      round2(std),
		Q1:       round2(nearestRank(sorted, 0.25)),
		Q3:       round2(nearestRank(sorted, 0.75)),
		Skewness: round3(skewness),
		Kurtosis: round3(kurtosis),
	}
}

// buildHistogram bins values into equal-width bins across [min, max]. The
// bin count comes from the Freedman-Diaconis width 2*IQR/n^(1/3), falling
// back to a tenth of the range when the IQR collapses; the edges themselves
// are evenly spaced, not FD-spaced.
func buildHistogram(values []float64) schema.Histogram {
	sorted := sortedCopy(values)
	n := len(sorted)
	minV, maxV := sorted[0], sorted[n-1]
	span := maxV - minV

	q1 := nearestRank(sorted, 0.25)
	q3 := nearestRank(sorted, 0.75)
	iqr := q3 - q1

	binWidth := 2 * iqr / math.Cbrt(float64(n))
	if iqr == 0 {
		binWidth = span / 10
	}

	binCount := minHistogramBins
	if binWidth > 0 {
		binCount = int(math.Ceil(span / binWidth))
	}
	if binCount < minHistogramBins {
		binCount = minHistogramBins
	}
	if binCount > maxHistogramBins {
		binCount = maxHistogramBins
	}

	step := span / float64(binCount)
	edges := make([]float64, binCount+1)
	for i := range edges {
		edges[i] = round2(minV + float64(i)*step)
	}

	counts := make([]int, binCount)
	for _, v := range values {
		idx := binCount - 1
		if step > 0 {
			idx = int((v - minV) / step)
			if idx >= binCount {
				idx = binCount - 1
			}
		}
		counts[idx]++
	}

	return schema.Histogram{Counts: counts, BinEdges: edges}
}

// fillCategorical populates the frequency table, modal value and Shannon
// entropy of a categorical column. Entropy is computed in bits over the full
// empirical distribution even though the exposed counts are capped.
func fillCategorical(summary *schema.DistributionSummary, values []any) {
	freq := make(map[string]int)
	total := 0
	for _, v := range values {
		if IsMissing(v) {
			continue
		}
		freq[valueString(v)]++
		total++
	}
	if total == 0 {
		return
	}

	var entropy float64
	for _, count := range freq {
		p := float64(count) / float64(total)
		entropy -= p * math.Log2(p)
	}
	summary.Entropy = round3(entropy)

	// Rank values by count descending, ties broken by value for
	// deterministic reports.
	type vc struct {
		value string
		count int
	}
	ranked := make([]vc, 0, len(freq))
	for v, c := range freq {
		ranked = append(ranked, vc{v, c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].value < ranked[j].value
	})

	summary.TopValue = ranked[0].value
	summary.TopFrequency = ranked[0].count

	limit := len(ranked)
	if limit > topValueLimit {
		limit = topValueLimit
	}
	counts := make(map[string]int, limit)
	for _, entry := range ranked[:limit] {
		counts[entry.value] = entry.count
	}
	summary.ValueCounts = counts
}

// dateLayouts are the formats accepted when summarizing a date column.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// temporalStatistics summarizes a date column over its parseable values.
// Unparseable cells are filtered out; a column with none returns nil.
func temporalStatistics(values []any) *schema.TemporalStats {
	var parsed []time.Time
	for _, v := range values {
		if IsMissing(v) {
			continue
		}
		s := valueString(v)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				parsed = append(parsed, t)
				break
			}
		}
	}
	if len(parsed) == 0 {
		return nil
	}

	minT, maxT := parsed[0], parsed[0]
	for _, t := range parsed[1:] {
		if t.Before(minT) {
			minT = t
		}
		if t.After(maxT) {
			maxT = t
		}
	}

	return &schema.TemporalStats{
		Count:     len(parsed),
		Min:       minT.Format(time.RFC3339),
		Max:       maxT.Format(time.RFC3339),
		RangeDays: int(maxT.Sub(minT).Hours() / 24),
	}
}
