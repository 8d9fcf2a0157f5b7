package schema

// ProfileReport is the full statistical profile of a dataset. It is derived
// purely from the records and schema; identical inputs produce identical
// reports.
type ProfileReport struct {
	Overview      Overview                       `json:"overview"`
	Distributions map[string]DistributionSummary `json:"distributions"`
	Correlations  CorrelationResult              `json:"correlations"`
	Outliers      map[string]OutlierSummary      `json:"outliers"`
	DataQuality   QualityReport                  `json:"dataQuality"`
}

// Overview captures the dataset shape and headline quality figures.
type Overview struct {
	Rows         int              `json:"rows"`
	Columns      int              `json:"columns"`
	QualityScore float64          `json:"qualityScore"`
	Completeness float64          `json:"completeness"`
	ColumnList   []ColumnOverview `json:"columnList"`
}

// ColumnOverview is the per-column line item of the overview.
type ColumnOverview struct {
	Name    string       `json:"name"`
	Type    ColumnType   `json:"type"`
	Intent  ColumnIntent `json:"intent"`
	Missing int          `json:"missing"`
	Unique  int          `json:"unique"`
}

// DistributionSummary describes the value distribution of one column.
// Numeric columns carry Histogram and Statistics; categorical columns carry
// ValueCounts and Entropy; date columns carry Temporal. Missing and unique
// counts are populated for every kind.
type DistributionSummary struct {
	Kind         string         `json:"kind"`
	MissingCount int            `json:"missingCount"`
	MissingRatio float64        `json:"missingRatio"`
	UniqueCount  int            `json:"uniqueCount"`
	UniqueRatio  float64        `json:"uniqueRatio"`
	Histogram    *Histogram     `json:"histogram,omitempty"`
	Statistics   *NumericStats  `json:"statistics,omitempty"`
	ValueCounts  map[string]int `json:"value_counts,omitempty"`
	TopValue     string         `json:"topValue,omitempty"`
	TopFrequency int            `json:"topFrequency,omitempty"`
	Entropy      float64        `json:"entropy,omitempty"`
	Temporal     *TemporalStats `json:"temporal,omitempty"`
}

// Distribution summary kinds.
const (
	NumericKind     = "numeric"
	CategoricalKind = "categorical"
	TemporalKind    = "temporal"
)

// Histogram holds equal-width bin counts across [min, max].
type Histogram struct {
	Counts   []int     `json:"counts"`
	BinEdges []float64 `json:"bin_edges"`
}

// NumericStats are the descriptive statistics of a numeric column.
// Quartiles use the nearest-rank method; Std is the population standard
// deviation; Kurtosis is excess kurtosis.
type NumericStats struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	Std      float64 `json:"std"`
	Q1       float64 `json:"q1"`
	Q3       float64 `json:"q3"`
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"`
}

// TemporalStats summarize a date column over its parseable values.
type TemporalStats struct {
	Count     int    `json:"count"`
	Min       string `json:"min"`
	Max       string `json:"max"`
	RangeDays int    `json:"range_days"`
}

// CorrelationResult holds the pairwise Pearson analysis of the numeric
// columns. When fewer than two numeric columns exist, Message explains why
// the matrix is absent; this is a degraded result, not an error.
type CorrelationResult struct {
	Message string                        `json:"message,omitempty"`
	Columns []string                      `json:"columns,omitempty"`
	Matrix  map[string]map[string]float64 `json:"matrix,omitempty"`
	Pairs   []CorrelationPair             `json:"correlations,omitempty"`
}

// CorrelationPair is one upper-triangle entry of the correlation matrix.
type CorrelationPair struct {
	Column1     string              `json:"column1"`
	Column2     string              `json:"column2"`
	Correlation float64             `json:"correlation"`
	Strength    CorrelationStrength `json:"strength"`
}

// OutlierSummary is the Tukey-fence outlier census of one numeric column.
type OutlierSummary struct {
	Count      int       `json:"count"`
	Percentage float64   `json:"percentage"`
	LowerBound float64   `json:"lowerBound"`
	UpperBound float64   `json:"upperBound"`
	Sample     []float64 `json:"sample,omitempty"`
}

// QualityIssue is one rule violation found by the data quality audit.
type QualityIssue struct {
	Column   string        `json:"column"`
	Type     IssueType     `json:"type"`
	Severity IssueSeverity `json:"severity"`
	Detail   string        `json:"detail"`
}

// QualityReport lists all audit findings plus a severity-bucketed summary.
type QualityReport struct {
	Issues         []QualityIssue        `json:"issues"`
	SeverityCounts map[IssueSeverity]int `json:"severityCounts"`
}
