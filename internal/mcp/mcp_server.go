// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/roastcurve/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the roast curve MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Roast Curve Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{baseCfg: baseCfg}

	// --- 1. Tool: analyze_recordings ---
	s.AddTool(mcp.NewTool("analyze_recordings",
		mcp.WithDescription("Align roast logs on a shared time grid and detect turning point, yellowing, first crack and drop with label layout."),
		mcp.WithString("paths", mcp.Description("Comma-separated log files or folders (CSV, XLSX, Parquet)."), mcp.Required()),
		mcp.WithString("view", mcp.Description("What to return. Defaults to 'annotations'."), mcp.Enum(viewAnnotations, viewKeyPoints, viewSeries)),
		mcp.WithString("exclude", mcp.Description("Comma-separated exclude patterns.")),
		mcp.WithString("hidden", mcp.Description("Comma-separated recording IDs whose annotations are marked invisible.")),
		mcp.WithNumber("pad", mcp.Description("Seconds added after the longest recording.")),
		mcp.WithNumber("tolerance", mcp.Description("Largest distance in seconds between a sample and its grid slot.")),
	), h.handleAnalyzeRecordings)

	// --- 2. Tool: compute_label_offset ---
	s.AddTool(mcp.NewTool("compute_label_offset",
		mcp.WithDescription("Compute the label offset and annotation of one key point without reading any file."),
		mcp.WithString("event", mcp.Description("Key point event."), mcp.Required(),
			mcp.Enum("turningPoint", "yellowing", "firstEvent", "endPoint")),
		mcp.WithNumber("index", mcp.Description("Grid slot of the key point."), mcp.Required()),
		mcp.WithNumber("value", mcp.Description("Primary value at the key point."), mcp.Required()),
		mcp.WithNumber("total", mcp.Description("Number of usable recordings in the batch.")),
		mcp.WithNumber("recording_index", mcp.Description("Position of the recording among usable recordings.")),
		mcp.WithNumber("slots", mcp.Description("Number of grid slots on the chart.")),
	), h.handleComputeLabelOffset)

	return s
}

// StartMCPServer starts the roast curve MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
