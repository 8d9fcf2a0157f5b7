package core

import (
	"math"
	"sort"

	"github.com/datascope/datascope/schema"
)

// Strength thresholds on the absolute Pearson coefficient.
const (
	strongThreshold   = 0.7
	moderateThreshold = 0.4
)

// insufficientColumnsMessage explains an absent matrix; it is a degraded
// result, not an error.
const insufficientColumnsMessage = "not enough numeric columns for correlation"

// Correlate computes the full symmetric Pearson correlation matrix over the
// declared numeric columns, plus a flat upper-triangle pair list sorted by
// descending absolute correlation. Rows where either value fails numeric
// coercion are dropped from that pair only, independently per pair.
func Correlate(records []schema.Record, ts schema.TableSchema) schema.CorrelationResult {
	numeric := ts.NumericColumns()
	if len(numeric) < 2 {
		return schema.CorrelationResult{Message: insufficientColumnsMessage}
	}

	names := make([]string, len(numeric))
	for i, c := range numeric {
		names[i] = c.Name
	}

	matrix := make(map[string]map[string]float64, len(names))
	for _, name := range names {
		matrix[name] = make(map[string]float64, len(names))
		matrix[name][name] = 1.0
	}

	var pairs []schema.CorrelationPair
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			r := pearson(records, names[i], names[j])
			matrix[names[i]][names[j]] = r
			matrix[names[j]][names[i]] = r
			pairs = append(pairs, schema.CorrelationPair{
				Column1:     names[i],
				Column2:     names[j],
				Correlation: r,
				Strength:    classifyStrength(r),
			})
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return math.Abs(pairs[i].Correlation) > math.Abs(pairs[j].Correlation)
	})

	return schema.CorrelationResult{
		Columns: names,
		Matrix:  matrix,
		Pairs:   pairs,
	}
}

// pearson computes the product-moment coefficient over the rows where both
// columns coerce to numbers. A zero-variance column yields 0: the
// denominator is guarded, not NaN.
func pearson(records []schema.Record, a, b string) float64 {
	var xs, ys []float64
	for _, r := range records {
		x, okX := AsFloat(r[a])
		y, okY := AsFloat(r[b])
		if IsMissing(r[a]) || IsMissing(r[b]) || !okX || !okY {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	n := float64(len(xs))
	if n == 0 {
		return 0
	}

	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	denom := math.Sqrt(varX * varY)
	if denom < sigmaFloor {
		return 0
	}
	return round3(cov / denom)
}

func classifyStrength(r float64) schema.CorrelationStrength {
	abs := math.Abs(r)
	switch {
	case abs > strongThreshold:
		return schema.StrongCorrelation
	case abs > moderateThreshold:
		return schema.ModerateCorrelation
	default:
		return schema.WeakCorrelation
	}
}
