// Package schema has the dataset model, report types and shared constants
// for all parts of datascope.
package schema

// Record is a single row of a dataset: a mapping from column name to a
// scalar value (string, float64, bool) or nil when the cell is absent.
type Record map[string]any

// Column declares the name and type of one dataset column. The schema is
// supplied by the caller and treated as authoritative; the core never
// re-infers types from raw values.
type Column struct {
	Name string     `json:"name"`
	Type ColumnType `json:"type"`
}

// TableSchema is the externally supplied column declaration for a dataset.
type TableSchema struct {
	Columns []Column `json:"columns"`
}

// ColumnNames returns the declared column names in declaration order.
func (s TableSchema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// Lookup returns the declared column with the given name, if any.
func (s TableSchema) Lookup(name string) (Column, bool) {
	for _, c := range s.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// NumericColumns returns the declared columns whose type is numeric.
func (s TableSchema) NumericColumns() []Column {
	var cols []Column
	for _, c := range s.Columns {
		if c.Type.IsNumeric() {
			cols = append(cols, c)
		}
	}
	return cols
}
