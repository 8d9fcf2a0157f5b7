package core

import (
	"strings"

	"github.com/datascope/datascope/schema"
)

// Classification thresholds.
const (
	identifierUniqueRatio  = 0.9
	categoricalUniqueRatio = 0.1
	categoricalMaxUnique   = 20
	textUniqueRatio        = 0.5
)

// columnFacts are the precomputed features an intent rule may inspect.
type columnFacts struct {
	name        string // lower-cased column name
	declared    schema.ColumnType
	nonNull     int
	distinct    int
	uniqueRatio float64 // distinct / nonNull
	values      map[string]struct{}
}

// intentRule pairs a label with its predicate. Rules are evaluated top-down
// with first-match-wins semantics, which keeps the precedence auditable and
// testable per rule.
type intentRule struct {
	label schema.ColumnIntent
	match func(f *columnFacts) bool
}

var intentRules = []intentRule{
	{schema.TemporalIntent, func(f *columnFacts) bool {
		for _, hint := range []string{"date", "time", "created", "updated"} {
			if strings.Contains(f.name, hint) {
				return true
			}
		}
		return false
	}},
	{schema.IdentifierIntent, func(f *columnFacts) bool {
		looksLikeID := f.name == "id" || strings.HasSuffix(f.name, "_id") || strings.HasSuffix(f.name, "id")
		return looksLikeID && f.uniqueRatio > identifierUniqueRatio
	}},
	{schema.BinaryFlagIntent, func(f *columnFacts) bool {
		if f.declared.IsBoolean() {
			return true
		}
		if f.distinct != 2 {
			return false
		}
		for v := range f.values {
			switch strings.ToLower(v) {
			case "true", "false", "yes", "no", "1", "0":
				return true
			}
		}
		return false
	}},
	{schema.CategoricalIntent, func(f *columnFacts) bool {
		return f.declared.IsString() &&
			(f.uniqueRatio < categoricalUniqueRatio || f.distinct < categoricalMaxUnique)
	}},
	{schema.QuantitativeIntent, func(f *columnFacts) bool {
		return f.declared.IsNumeric()
	}},
	{schema.TextAnalysisIntent, func(f *columnFacts) bool {
		return f.declared.IsString() && f.uniqueRatio > textUniqueRatio
	}},
}

// ClassifyIntent assigns a semantic role to a column from its name, raw
// values and declared type. A column with zero non-null values is always
// unknown, short-circuiting every rule.
func ClassifyIntent(name string, values []any, declared schema.ColumnType) schema.ColumnIntent {
	facts := buildColumnFacts(name, values, declared)
	if facts.nonNull == 0 {
		return schema.UnknownIntent
	}
	for _, rule := range intentRules {
		if rule.match(facts) {
			return rule.label
		}
	}
	return schema.DescriptiveIntent
}

func buildColumnFacts(name string, values []any, declared schema.ColumnType) *columnFacts {
	facts := &columnFacts{
		name:     strings.ToLower(name),
		declared: declared,
		values:   make(map[string]struct{}),
	}
	for _, v := range values {
		if IsMissing(v) {
			continue
		}
		facts.nonNull++
		facts.values[valueString(v)] = struct{}{}
	}
	facts.distinct = len(facts.values)
	if facts.nonNull > 0 {
		facts.uniqueRatio = float64(facts.distinct) / float64(facts.nonNull)
	}
	return facts
}
