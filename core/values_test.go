package core

import (
	"testing"

	"github.com/datascope/datascope/schema"
	"github.com/stretchr/testify/assert"
)

// TestIsMissing pins the missing-cell definition: nil and empty string only.
func TestIsMissing(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected bool
	}{
		{"nil", nil, true},
		{"empty string", "", true},
		{"whitespace is present", " ", false},
		{"zero is present", 0, false},
		{"false is present", false, false},
		{"text", "x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsMissing(tt.value))
		})
	}
}

// TestAsFloat covers the coercion table and the finite-value guard.
func TestAsFloat(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected float64
		ok       bool
	}{
		{"float64", 2.5, 2.5, true},
		{"int", 7, 7.0, true},
		{"numeric string", "3.25", 3.25, true},
		{"padded numeric string", "  42 ", 42.0, true},
		{"bool true", true, 1.0, true},
		{"bool false", false, 0.0, true},
		{"word", "abc", 0, false},
		{"nan string rejected", "NaN", 0, false},
		{"inf string rejected", "Inf", 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := AsFloat(tt.value)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.expected, v, 0.001)
			}
		})
	}
}

// TestRowSignature checks canonical equality: key order never matters and
// numeric spelling is normalized.
func TestRowSignature(t *testing.T) {
	a := schema.Record{"x": 1, "y": "v"}
	b := schema.Record{"y": "v", "x": 1.0}
	c := schema.Record{"x": 2, "y": "v"}

	assert.Equal(t, rowSignature(a), rowSignature(b))
	assert.NotEqual(t, rowSignature(a), rowSignature(c))
}

// TestRowSignatureMissing distinguishes a missing cell from the literal
// strings that could collide with a marker.
func TestRowSignatureMissing(t *testing.T) {
	missing := schema.Record{"x": nil}
	empty := schema.Record{"x": ""}
	present := schema.Record{"x": "nil"}

	assert.Equal(t, rowSignature(missing), rowSignature(empty))
	assert.NotEqual(t, rowSignature(missing), rowSignature(present))
}

// TestRounding pins the three precision helpers.
func TestRounding(t *testing.T) {
	assert.InDelta(t, 1.2, round1(1.24), 1e-9)
	assert.InDelta(t, 2.72, round2(2.718), 1e-9)
	assert.InDelta(t, 3.142, round3(3.14159), 1e-9)
}

// TestDistinctNonNull counts canonical distinct values across mixed types.
func TestDistinctNonNull(t *testing.T) {
	distinct, nonNull := distinctNonNull([]any{1, 1.0, "1", "2", nil, ""})

	assert.Equal(t, 2, distinct) // 1 and 2, spellings collapsed
	assert.Equal(t, 4, nonNull)
}

// TestNumericValues filters missing and non-coercible cells in row order.
func TestNumericValues(t *testing.T) {
	records := []schema.Record{
		{"v": 3}, {"v": nil}, {"v": "4.5"}, {"v": "oops"}, {"v": 1},
	}

	assert.Equal(t, []float64{3, 4.5, 1}, numericValues(records, "v"))
}
