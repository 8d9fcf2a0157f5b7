package schema

// Custom string types for type safety.
type (
	// ColumnType is the declared type of a dataset column.
	ColumnType string

	// ColumnIntent is the heuristically assigned semantic role of a column.
	ColumnIntent string

	// IssueType identifies a data quality rule.
	IssueType string

	// IssueSeverity ranks data quality issues.
	IssueSeverity string

	// CorrelationStrength buckets the absolute Pearson coefficient.
	CorrelationStrength string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for run tracking.
	DatabaseBackend string
)

// All column types accepted in a table schema. Number, integer and float are
// interchangeable aliases for numeric data; string and text for textual data.
const (
	NumberType  ColumnType = "number"
	IntegerType ColumnType = "integer"
	FloatType   ColumnType = "float"
	BooleanType ColumnType = "boolean"
	StringType  ColumnType = "string"
	TextType    ColumnType = "text"
	DateType    ColumnType = "date"
)

// IsNumeric reports whether the column type holds numeric data.
func (t ColumnType) IsNumeric() bool {
	return t == NumberType || t == IntegerType || t == FloatType
}

// IsString reports whether the column type holds textual data.
func (t ColumnType) IsString() bool {
	return t == StringType || t == TextType
}

// IsBoolean reports whether the column type holds boolean data.
func (t ColumnType) IsBoolean() bool {
	return t == BooleanType
}

// IsDate reports whether the column type holds date data.
func (t ColumnType) IsDate() bool {
	return t == DateType
}

// All column intents, in classification precedence order.
const (
	TemporalIntent     ColumnIntent = "temporal"
	IdentifierIntent   ColumnIntent = "identifier"
	BinaryFlagIntent   ColumnIntent = "binary_flag"
	CategoricalIntent  ColumnIntent = "categorical"
	QuantitativeIntent ColumnIntent = "quantitative"
	TextAnalysisIntent ColumnIntent = "text_analysis"
	DescriptiveIntent  ColumnIntent = "descriptive"

	// UnknownIntent is assigned to columns with no non-null values.
	UnknownIntent ColumnIntent = "unknown"
)

// All data quality issue types.
const (
	NullSpikeIssue       IssueType = "null_spike"
	ConstantColumnIssue  IssueType = "constant_column"
	HighCardinalityIssue IssueType = "high_cardinality"
)

// All issue severities.
const (
	HighSeverity   IssueSeverity = "high"
	MediumSeverity IssueSeverity = "medium"
	LowSeverity    IssueSeverity = "low"
)

// All correlation strengths.
const (
	StrongCorrelation   CorrelationStrength = "strong"
	ModerateCorrelation CorrelationStrength = "moderate"
	WeakCorrelation     CorrelationStrength = "weak"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	JSONOut OutputMode = "json"
	CSVOut  OutputMode = "csv"
)

// All run store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// Cleansing action names recorded in the audit log.
const (
	IntentDetectionAction  = "Intent Detection"
	SchemaValidationAction = "Schema Validation"
	DeduplicationAction    = "Deduplication"
	ImputationAction       = "Imputation"
	StandardizationAction  = "Standardization"
	OutlierCappingAction   = "Outlier Capping"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	JSONOut: {},
	CSVOut:  {},
}

// ValidBackends lists all valid run store backends.
var ValidBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
