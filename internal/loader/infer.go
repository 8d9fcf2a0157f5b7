package loader

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/datascope/datascope/schema"
)

// inferSampleLimit bounds how many rows the inference scans per column.
const inferSampleLimit = 1000

// dateFormats accepted during inference.
var dateFormats = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
}

// InferSchema derives a table schema from the records by majority vote over
// the non-missing values of each column. Columns with no observed values
// default to string. Column order follows the first record, with later-only
// columns appended alphabetically.
func InferSchema(records []schema.Record) (schema.TableSchema, error) {
	if len(records) == 0 {
		return schema.TableSchema{}, fmt.Errorf("cannot infer a schema from zero records")
	}

	names := columnOrder(records)
	columns := make([]schema.Column, 0, len(names))
	for _, name := range names {
		columns = append(columns, schema.Column{
			Name: name,
			Type: inferColumnType(records, name),
		})
	}
	return schema.TableSchema{Columns: columns}, nil
}

// columnOrder keeps the first record's key set stable by sorting it, then
// appends any columns that only appear in later rows.
func columnOrder(records []schema.Record) []string {
	var names []string
	seen := make(map[string]struct{})

	first := make([]string, 0, len(records[0]))
	for name := range records[0] {
		first = append(first, name)
	}
	sort.Strings(first)
	for _, name := range first {
		names = append(names, name)
		seen[name] = struct{}{}
	}

	var extra []string
	for _, r := range records[1:] {
		for name := range r {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				extra = append(extra, name)
			}
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}

// inferColumnType tallies a vote per observed value and picks the winner.
// Integer loses to float as soon as one fractional value appears; any
// unclassifiable value makes the column string.
func inferColumnType(records []schema.Record, name string) schema.ColumnType {
	votes := make(map[schema.ColumnType]int)
	scanned := 0
	for _, r := range records {
		v := r[name]
		if v == nil || v == "" {
			continue
		}
		votes[inferValueType(v)]++
		if scanned++; scanned >= inferSampleLimit {
			break
		}
	}
	if scanned == 0 {
		return schema.StringType
	}

	// A single string vote poisons the column: mixed content cannot be
	// trusted as numeric or date.
	if votes[schema.StringType] > 0 {
		return schema.StringType
	}
	if votes[schema.DateType] == scanned {
		return schema.DateType
	}
	if votes[schema.BooleanType] == scanned {
		return schema.BooleanType
	}
	if votes[schema.IntegerType]+votes[schema.FloatType] == scanned {
		if votes[schema.FloatType] > 0 {
			return schema.FloatType
		}
		return schema.IntegerType
	}
	return schema.StringType
}

// inferValueType classifies a single cell.
func inferValueType(v any) schema.ColumnType {
	switch x := v.(type) {
	case bool:
		return schema.BooleanType
	case float64:
		if x == float64(int64(x)) {
			return schema.IntegerType
		}
		return schema.FloatType
	case int, int64:
		return schema.IntegerType
	case string:
		return inferStringType(x)
	default:
		return schema.StringType
	}
}

// inferStringType classifies a raw CSV cell: integer, then float, then date,
// then boolean, falling back to string.
func inferStringType(s string) schema.ColumnType {
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return schema.IntegerType
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return schema.FloatType
	}
	if isDateString(s) {
		return schema.DateType
	}
	switch s {
	case "true", "false", "True", "False":
		return schema.BooleanType
	}
	return schema.StringType
}

func isDateString(s string) bool {
	for _, format := range dateFormats {
		if _, err := time.Parse(format, s); err == nil {
			return true
		}
	}
	return false
}
