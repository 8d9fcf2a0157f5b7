package core

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/datascope/datascope/schema"
)

// Fill values for non-numeric imputation. Categorical columns get the
// conventional NA token; free-form text gets a readable placeholder.
const (
	categoricalFillValue = "NA"
	defaultFillValue     = "Unknown"
)

// Clean runs the automatic cleansing pipeline over a dataset snapshot and
// returns the cleaned rows plus an audit summary. The input records are never
// mutated; every stage operates on a deep copy.
//
// Stage order is fixed: score before, schema validation, intent detection,
// deduplication, the per-column pass (imputation, text standardization,
// outlier capping), score after. Disabled stages are skipped without
// disturbing the order. Protected columns are exempt from per-column
// mutations only; deduplication still sees them.
func Clean(records []schema.Record, ts schema.TableSchema, opts schema.CleanOptions) ([]schema.Record, schema.CleanSummary) {
	summary := schema.CleanSummary{
		OriginalRows:     len(records),
		Logs:             []schema.CleanLog{},
		SchemaValidation: schema.SchemaValidation{IsValid: true},
	}
	if len(records) == 0 {
		return []schema.Record{}, summary
	}

	working := copyRecords(records)
	summary.BeforeQualityScore = Score(working, ts)

	if opts.ValidateSchema {
		summary.SchemaValidation = validateSchema(working[0], ts)
		if n := len(summary.SchemaValidation.Errors); n > 0 {
			appendLog(&summary, schema.SchemaValidationAction,
				"declared schema does not match observed columns", n, nil)
		}
	}

	// Intents drive imputation and capping decisions, so they are computed
	// even when the detection stage itself is disabled; the stage toggle only
	// controls whether they are reported.
	intents := detectIntents(working, ts)
	if opts.DetectIntent {
		summary.Intents = intents
		appendLog(&summary, schema.IntentDetectionAction,
			"classified semantic role of each column", len(intents), ts.ColumnNames())
	}

	if opts.DropDuplicates {
		var dropped int
		working, dropped = dropDuplicates(working)
		summary.DroppedDuplicates = dropped
		if dropped > 0 {
			appendLog(&summary, schema.DeduplicationAction,
				"removed rows with identical canonical form, keeping first occurrence", dropped, nil)
		}
	}

	if opts.FillMissing {
		filled, cols := fillMissing(working, ts, opts, intents)
		summary.FilledMissing = filled
		if filled > 0 {
			appendLog(&summary, schema.ImputationAction,
				"filled missing cells with median or placeholder values", filled, cols)
		}
	}

	if opts.StandardizeText {
		trimmed, cols := standardizeText(working, ts, opts)
		summary.TextStandardized = trimmed
		if trimmed > 0 {
			appendLog(&summary, schema.StandardizationAction,
				"trimmed surrounding whitespace from text cells", trimmed, cols)
		}
	}

	if opts.CapOutliers {
		capped, cols := capOutliers(working, ts, opts, intents)
		summary.OutliersCapped = capped
		if capped > 0 {
			appendLog(&summary, schema.OutlierCappingAction,
				"clamped values outside the Tukey fences to the nearer bound", capped, cols)
		}
	}

	summary.FinalRows = len(working)
	summary.AfterQualityScore = Score(working, ts)
	return working, summary
}

func copyRecords(records []schema.Record) []schema.Record {
	out := make([]schema.Record, len(records))
	for i, r := range records {
		cp := make(schema.Record, len(r))
		for k, v := range r {
			cp[k] = v
		}
		out[i] = cp
	}
	return out
}

func appendLog(summary *schema.CleanSummary, action, reason string, count int, cols []string) {
	summary.Logs = append(summary.Logs, schema.CleanLog{
		Timestamp:       time.Now().UTC(),
		Action:          action,
		Reason:          reason,
		Count:           count,
		AffectedColumns: cols,
	})
}

// validateSchema compares the first record's keys against the declared
// columns. Validation reports mismatches without blocking the pipeline.
func validateSchema(first schema.Record, ts schema.TableSchema) schema.SchemaValidation {
	var errs []string
	declared := make(map[string]struct{}, len(ts.Columns))
	for _, c := range ts.Columns {
		declared[c.Name] = struct{}{}
		if _, ok := first[c.Name]; !ok {
			errs = append(errs, fmt.Sprintf("declared column %q is absent from the data", c.Name))
		}
	}

	extra := make([]string, 0)
	for k := range first {
		if _, ok := declared[k]; !ok {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	for _, k := range extra {
		errs = append(errs, fmt.Sprintf("column %q is not declared in the schema", k))
	}

	return schema.SchemaValidation{IsValid: len(errs) == 0, Errors: errs}
}

func detectIntents(records []schema.Record, ts schema.TableSchema) map[string]schema.ColumnIntent {
	intents := make(map[string]schema.ColumnIntent, len(ts.Columns))
	for _, col := range ts.Columns {
		intents[col.Name] = ClassifyIntent(col.Name, columnValues(records, col.Name), col.Type)
	}
	return intents
}

// dropDuplicates removes rows whose canonical signature was already seen,
// keeping the first occurrence and preserving row order.
func dropDuplicates(records []schema.Record) ([]schema.Record, int) {
	seen := make(map[string]struct{}, len(records))
	kept := records[:0]
	dropped := 0
	for _, r := range records {
		sig := rowSignature(r)
		if _, ok := seen[sig]; ok {
			dropped++
			continue
		}
		seen[sig] = struct{}{}
		kept = append(kept, r)
	}
	return kept, dropped
}

// fillMissing imputes missing cells in place. Numeric columns use the median
// of the currently observed values and are skipped entirely when no value was
// observed; other columns get a placeholder chosen by intent.
func fillMissing(records []schema.Record, ts schema.TableSchema, opts schema.CleanOptions, intents map[string]schema.ColumnIntent) (int, []string) {
	filled := 0
	var affected []string
	for _, col := range ts.Columns {
		if opts.IsProtected(col.Name) {
			continue
		}

		var fill any
		if col.Type.IsNumeric() {
			observed := numericValues(records, col.Name)
			if len(observed) == 0 {
				continue
			}
			fill = nearestRank(sortedCopy(observed), 0.5)
		} else if intents[col.Name] == schema.CategoricalIntent {
			fill = categoricalFillValue
		} else {
			fill = defaultFillValue
		}

		changed := 0
		for _, r := range records {
			if IsMissing(r[col.Name]) {
				r[col.Name] = fill
				changed++
			}
		}
		if changed > 0 {
			filled += changed
			affected = append(affected, col.Name)
		}
	}
	return filled, affected
}

// standardizeText trims surrounding whitespace from string cells of the
// declared textual columns, counting only the cells that actually changed.
func standardizeText(records []schema.Record, ts schema.TableSchema, opts schema.CleanOptions) (int, []string) {
	trimmed := 0
	var affected []string
	for _, col := range ts.Columns {
		if !col.Type.IsString() || opts.IsProtected(col.Name) {
			continue
		}
		changed := 0
		for _, r := range records {
			s, ok := r[col.Name].(string)
			if !ok {
				continue
			}
			if t := strings.TrimSpace(s); t != s {
				r[col.Name] = t
				changed++
			}
		}
		if changed > 0 {
			trimmed += changed
			affected = append(affected, col.Name)
		}
	}
	return trimmed, affected
}

// capOutliers clamps numeric values outside the Tukey fences to the nearer
// bound. Identifier columns are skipped: an outlying ID is not noise, and
// rewriting it would corrupt a key. Columns below the minimum sample size are
// skipped for the same reason detection skips them.
func capOutliers(records []schema.Record, ts schema.TableSchema, opts schema.CleanOptions, intents map[string]schema.ColumnIntent) (int, []string) {
	capped := 0
	var affected []string
	for _, col := range ts.NumericColumns() {
		if opts.IsProtected(col.Name) || intents[col.Name] == schema.IdentifierIntent {
			continue
		}
		values := numericValues(records, col.Name)
		if len(values) < minOutlierSample {
			continue
		}
		_, _, lower, upper := tukeyFences(sortedCopy(values))

		changed := 0
		for _, r := range records {
			v := r[col.Name]
			if IsMissing(v) {
				continue
			}
			f, ok := AsFloat(v)
			if !ok {
				continue
			}
			if f < lower {
				r[col.Name] = lower
				changed++
			} else if f > upper {
				r[col.Name] = upper
				changed++
			}
		}
		if changed > 0 {
			capped += changed
			affected = append(affected, col.Name)
		}
	}
	return capped, affected
}
