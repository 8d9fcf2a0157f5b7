package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/datascope/datascope/core"
	"github.com/datascope/datascope/internal/contract"
	"github.com/datascope/datascope/internal/loader"
	"github.com/datascope/datascope/internal/outwriter"
	"github.com/datascope/datascope/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.RunStoreManager
}

// loadDataset resolves the request path and schema into records and a table schema.
func (h *toolHandler) loadDataset(request mcp.CallToolRequest) ([]schema.Record, schema.TableSchema, *contract.Config, error) {
	cfg := h.baseCfg.Clone()
	cfg.InputPath = request.GetString("path", "")
	if sf := request.GetString("schema_file", ""); sf != "" {
		cfg.SchemaFile = sf
	}

	records, err := loader.Load(cfg.InputPath)
	if err != nil {
		return nil, schema.TableSchema{}, nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	ts, err := loader.Resolve(records, cfg.SchemaFile)
	if err != nil {
		return nil, schema.TableSchema{}, nil, fmt.Errorf("failed to resolve schema: %w", err)
	}

	return records, ts, cfg, nil
}

// recordRun persists the invocation if a run store is configured.
func (h *toolHandler) recordRun(kind, dataset string, rows, cols int, score float64, started time.Time, payload any) {
	if h.mgr == nil {
		return
	}
	store := h.mgr.GetRunStore()
	if store == nil {
		return
	}

	summary, _ := json.Marshal(payload)
	_, _ = store.RecordRun(schema.RunRecord{
		Kind:         kind,
		Dataset:      dataset,
		Rows:         rows,
		Columns:      cols,
		QualityScore: score,
		DurationMs:   time.Since(started).Milliseconds(),
		Summary:      string(summary),
		CreatedAt:    time.Now(),
	})
}

func (h *toolHandler) handleProfileDataset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	started := time.Now()
	records, ts, cfg, err := h.loadDataset(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	report := core.Profile(records, ts)
	h.recordRun(schema.ProfileRunKind, cfg.InputPath, report.Overview.Rows, report.Overview.Columns,
		report.Overview.QualityScore, started, report.Overview)

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleCleanDataset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	started := time.Now()
	records, ts, cfg, err := h.loadDataset(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := schema.DefaultCleanOptions()
	opts.DropDuplicates = request.GetBool("drop_duplicates", true)
	opts.FillMissing = request.GetBool("fill_missing", true)
	opts.CapOutliers = request.GetBool("cap_outliers", true)
	opts.StandardizeText = request.GetBool("standardize_text", true)
	opts.ProtectedColumns = nil
	if protect := request.GetString("protect", ""); protect != "" {
		opts.ProtectedColumns = contract.SplitColumnList(protect)
	}

	cleaned, summary := core.Clean(records, ts, opts)

	if cleanedFile := request.GetString("cleaned_file", ""); cleanedFile != "" {
		if err := outwriter.WriteCleanedRecords(cleaned, ts, cleanedFile); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to write cleaned rows: %v", err)), nil
		}
	}

	h.recordRun(schema.CleanRunKind, cfg.InputPath, summary.FinalRows, len(ts.Columns),
		summary.AfterQualityScore, started, summary)

	jsonData, _ := json.MarshalIndent(summary, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleScoreDataset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	started := time.Now()
	records, ts, cfg, err := h.loadDataset(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	score := core.Score(records, ts)
	result := struct {
		Score   float64 `json:"score"`
		Grade   string  `json:"grade"`
		Rows    int     `json:"rows"`
		Columns int     `json:"columns"`
	}{
		Score:   score,
		Grade:   contract.GetPlainLabel(score),
		Rows:    len(records),
		Columns: len(ts.Columns),
	}

	h.recordRun(schema.ScoreRunKind, cfg.InputPath, result.Rows, result.Columns, score, started, result)

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
