package schema

import "time"

// CleanOptions toggles the stages of the cleansing pipeline. Protected
// columns are exempt from every per-column mutation (fill, standardize, cap)
// but not from row-level deduplication.
type CleanOptions struct {
	DropDuplicates   bool     `json:"dropDuplicates"`
	FillMissing      bool     `json:"fillMissing"`
	CapOutliers      bool     `json:"capOutliers"`
	StandardizeText  bool     `json:"standardizeText"`
	ValidateSchema   bool     `json:"validateSchema"`
	DetectIntent     bool     `json:"detectIntent"`
	ProtectedColumns []string `json:"protectedColumns,omitempty"`
}

// DefaultCleanOptions returns options with every stage enabled.
func DefaultCleanOptions() CleanOptions {
	return CleanOptions{
		DropDuplicates:  true,
		FillMissing:     true,
		CapOutliers:     true,
		StandardizeText: true,
		ValidateSchema:  true,
		DetectIntent:    true,
	}
}

// IsProtected reports whether the named column is exempt from per-column
// mutations.
func (o CleanOptions) IsProtected(name string) bool {
	for _, p := range o.ProtectedColumns {
		if p == name {
			return true
		}
	}
	return false
}

// CleanLog is one entry of the append-only cleansing audit trail. Each
// corrective category that fired produces exactly one entry summarizing its
// aggregate effect.
type CleanLog struct {
	Timestamp       time.Time `json:"timestamp"`
	Action          string    `json:"action"`
	Reason          string    `json:"reason"`
	Count           int       `json:"count"`
	AffectedColumns []string  `json:"affectedColumns,omitempty"`
}

// SchemaValidation records the declared-vs-actual column comparison.
type SchemaValidation struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// CleanSummary is the audit record of one cleansing run. FinalRows is never
// greater than OriginalRows: cleansing removes or rewrites rows, never adds.
type CleanSummary struct {
	OriginalRows       int                     `json:"originalRows"`
	FinalRows          int                     `json:"finalRows"`
	DroppedDuplicates  int                     `json:"droppedDuplicates"`
	FilledMissing      int                     `json:"filledMissing"`
	OutliersCapped     int                     `json:"outliersCapped"`
	TextStandardized   int                     `json:"textStandardized"`
	BeforeQualityScore float64                 `json:"beforeQualityScore"`
	AfterQualityScore  float64                 `json:"afterQualityScore"`
	Logs               []CleanLog              `json:"logs"`
	Intents            map[string]ColumnIntent `json:"intents"`
	SchemaValidation   SchemaValidation        `json:"schemaValidation"`
}

// RunRecord is one persisted invocation of profile, clean or score. The
// summary payload is stored as an opaque JSON blob.
type RunRecord struct {
	RunID        int64     `json:"run_id"`
	Kind         string    `json:"kind"`
	Dataset      string    `json:"dataset"`
	Rows         int       `json:"rows"`
	Columns      int       `json:"columns"`
	QualityScore float64   `json:"quality_score"`
	DurationMs   int64     `json:"duration_ms"`
	Summary      string    `json:"summary,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// RunStatus describes the state of the run store.
type RunStatus struct {
	Backend      string    `json:"backend"`
	Connected    bool      `json:"connected"`
	TotalRuns    int64     `json:"total_runs"`
	LastRunTime  time.Time `json:"last_run_time"`
	FirstRunTime time.Time `json:"first_run_time"`
}

// Run kinds recorded in the run store.
const (
	ProfileRunKind = "profile"
	CleanRunKind   = "clean"
	ScoreRunKind   = "score"
)
