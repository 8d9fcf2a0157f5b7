// Package core implements dataset profiling and automatic cleansing. All
// functions are pure computations over in-memory records: no I/O, no
// configuration, no shared state across calls.
package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/datascope/datascope/schema"
)

// sigmaFloor guards moment computations against division by a near-zero
// standard deviation.
const sigmaFloor = 1e-9

// IsMissing reports whether a cell counts as missing: nil or the empty
// string.
func IsMissing(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

// AsFloat coerces a cell to a finite float64. Strings are parsed after
// trimming; booleans map to 1 and 0. NaN and infinities are rejected so a
// single bad cell never poisons a column computation.
func AsFloat(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint:
		f = float64(x)
	case uint64:
		f = float64(x)
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// valueString renders a cell in canonical string form, normalizing number
// formatting so 2 and 2.0 compare equal in frequency tables and row
// signatures.
func valueString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	default:
		return fmt.Sprint(x)
	}
}

// rowSignature builds a canonical form of a full record for duplicate
// detection: keys sorted, number formatting normalized, missing cells marked.
// This makes equality independent of map iteration order and of how a number
// happened to be spelled in the source.
func rowSignature(r schema.Record) string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('\x1f')
		v := r[k]
		if IsMissing(v) {
			b.WriteByte('\x00')
		} else {
			b.WriteString(valueString(v))
		}
		b.WriteByte('\x1e')
	}
	return b.String()
}

// columnValues extracts a column from all records, preserving row order.
// Absent keys yield nil.
func columnValues(records []schema.Record, name string) []any {
	values := make([]any, len(records))
	for i, r := range records {
		values[i] = r[name]
	}
	return values
}

// numericValues extracts the non-missing, coercible values of a column in
// row order. Cells that fail numeric coercion are filtered out, not fatal.
func numericValues(records []schema.Record, name string) []float64 {
	var out []float64
	for _, r := range records {
		v := r[name]
		if IsMissing(v) {
			continue
		}
		if f, ok := AsFloat(v); ok {
			out = append(out, f)
		}
	}
	return out
}

// sortedCopy returns an ascending copy, leaving the input untouched.
func sortedCopy(values []float64) []float64 {
	cp := make([]float64, len(values))
	copy(cp, values)
	sort.Float64s(cp)
	return cp
}

// nearestRank returns the p-quantile of an ascending slice using the
// nearest-rank method sorted[floor(n*p)], with no interpolation.
func nearestRank(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	idx := int(float64(n) * p)
	if idx >= n {
		idx = n - 1
	}
	return sorted[idx]
}

// tukeyFences returns the Q1/Q3 quartiles and the 1.5*IQR outlier bounds of
// an ascending slice.
func tukeyFences(sorted []float64) (q1, q3, lower, upper float64) {
	q1 = nearestRank(sorted, 0.25)
	q3 = nearestRank(sorted, 0.75)
	iqr := q3 - q1
	return q1, q3, q1 - 1.5*iqr, q3 + 1.5*iqr
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// round2 rounds to two decimal places, the precision used for statistics.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round3 rounds to three decimal places, the precision used for entropy,
// shape measures and correlations.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// distinctNonNull counts the distinct canonical string forms of the
// non-missing values and how many non-missing values there are.
func distinctNonNull(values []any) (distinct, nonNull int) {
	seen := make(map[string]struct{})
	for _, v := range values {
		if IsMissing(v) {
			continue
		}
		nonNull++
		seen[valueString(v)] = struct{}{}
	}
	return len(seen), nonNull
}
