package core

import (
	"context"
	"encoding/json"
	"time"

	"github.com/datascope/datascope/internal/contract"
	"github.com/datascope/datascope/internal/loader"
	"github.com/datascope/datascope/internal/outwriter"
	"github.com/datascope/datascope/schema"
)

// ExecuteProfile runs the full profiling pass and prints results.
// It serves as the main entry point for the 'profile' command.
func ExecuteProfile(_ context.Context, cfg *contract.Config, mgr contract.RunStoreManager) error {
	start := time.Now()
	records, ts, err := loadInput(cfg)
	if err != nil {
		return err
	}

	report := Profile(records, ts)
	duration := time.Since(start)

	recordRun(mgr, cfg, schema.ProfileRunKind, report.Overview.Rows, report.Overview.Columns,
		report.Overview.QualityScore, duration, report.Overview)

	return outwriter.WriteProfileResults(report, cfg, duration)
}

// ExecuteClean runs the cleansing pipeline and prints the audit summary.
// It serves as the main entry point for the 'clean' command.
func ExecuteClean(_ context.Context, cfg *contract.Config, mgr contract.RunStoreManager) error {
	start := time.Now()
	records, ts, err := loadInput(cfg)
	if err != nil {
		return err
	}

	cleaned, summary := Clean(records, ts, cfg.Clean)
	duration := time.Since(start)

	if cfg.CleanedFile != "" {
		if err := outwriter.WriteCleanedRecords(cleaned, ts, cfg.CleanedFile); err != nil {
			return err
		}
	}

	recordRun(mgr, cfg, schema.CleanRunKind, summary.FinalRows, len(ts.Columns),
		summary.AfterQualityScore, duration, summary)

	return outwriter.WriteCleanResults(summary, cfg, duration)
}

// ExecuteScore computes the composite quality score and prints it.
// It serves as the main entry point for the 'score' command.
func ExecuteScore(_ context.Context, cfg *contract.Config, mgr contract.RunStoreManager) error {
	start := time.Now()
	records, ts, err := loadInput(cfg)
	if err != nil {
		return err
	}

	score := Score(records, ts)
	duration := time.Since(start)

	recordRun(mgr, cfg, schema.ScoreRunKind, len(records), len(ts.Columns), score, duration, nil)

	return outwriter.WriteScoreResult(score, len(records), len(ts.Columns), cfg, duration)
}

// loadInput reads the dataset and resolves its schema, declared or inferred.
func loadInput(cfg *contract.Config) ([]schema.Record, schema.TableSchema, error) {
	records, err := loader.Load(cfg.InputPath)
	if err != nil {
		return nil, schema.TableSchema{}, err
	}
	ts, err := loader.Resolve(records, cfg.SchemaFile)
	if err != nil {
		return nil, schema.TableSchema{}, err
	}
	return records, ts, nil
}

// recordRun persists the invocation if a run store is configured.
func recordRun(mgr contract.RunStoreManager, cfg *contract.Config, kind string, rows, cols int,
	score float64, duration time.Duration, payload any) {
	if mgr == nil {
		return
	}
	store := mgr.GetRunStore()
	if store == nil {
		return
	}

	var summary string
	if payload != nil {
		data, err := json.Marshal(payload)
		if err == nil {
			summary = string(data)
		}
	}

	if _, err := store.RecordRun(schema.RunRecord{
		Kind:         kind,
		Dataset:      cfg.InputPath,
		Rows:         rows,
		Columns:      cols,
		QualityScore: score,
		DurationMs:   duration.Milliseconds(),
		Summary:      summary,
		CreatedAt:    time.Now(),
	}); err != nil {
		contract.LogWarn("Could not record run", err)
	}
}
