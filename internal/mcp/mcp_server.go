// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/datascope/datascope/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Datascope MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.RunStoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Datascope Profiling Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: profile_dataset ---
	s.AddTool(mcp.NewTool("profile_dataset",
		mcp.WithDescription("Profile a dataset: distributions, column intents, correlations, outliers and data quality issues."),
		mcp.WithString("path", mcp.Description("Path to the dataset file (.csv or .json)."), mcp.Required()),
		mcp.WithString("schema_file", mcp.Description("Path to a JSON schema file (inferred from the data if not specified).")),
	), h.handleProfileDataset)

	// --- 2. Tool: clean_dataset ---
	s.AddTool(mcp.NewTool("clean_dataset",
		mcp.WithDescription("Run the cleansing pipeline on a dataset and report what changed."),
		mcp.WithString("path", mcp.Description("Path to the dataset file (.csv or .json)."), mcp.Required()),
		mcp.WithString("schema_file", mcp.Description("Path to a JSON schema file (inferred from the data if not specified).")),
		mcp.WithBoolean("drop_duplicates", mcp.Description("Remove duplicate rows. Defaults to true.")),
		mcp.WithBoolean("fill_missing", mcp.Description("Fill missing values with medians or placeholders. Defaults to true.")),
		mcp.WithBoolean("cap_outliers", mcp.Description("Clamp numeric outliers to the Tukey fences. Defaults to true.")),
		mcp.WithBoolean("standardize_text", mcp.Description("Trim surrounding whitespace from text values. Defaults to true.")),
		mcp.WithString("protect", mcp.Description("Comma-separated column names exempt from per-column mutations.")),
		mcp.WithString("cleaned_file", mcp.Description("Optional path to write the cleaned rows to (.csv or .json).")),
	), h.handleCleanDataset)

	// --- 3. Tool: score_dataset ---
	s.AddTool(mcp.NewTool("score_dataset",
		mcp.WithDescription("Compute the composite quality score (0-100) for a dataset."),
		mcp.WithString("path", mcp.Description("Path to the dataset file (.csv or .json)."), mcp.Required()),
		mcp.WithString("schema_file", mcp.Description("Path to a JSON schema file (inferred from the data if not specified).")),
	), h.handleScoreDataset)

	return s
}

// StartMCPServer starts the Datascope MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.RunStoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
