package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/huangsam/roastcurve/core"
	"github.com/huangsam/roastcurve/internal/contract"
	"github.com/huangsam/roastcurve/internal/ingest"
	"github.com/huangsam/roastcurve/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// Views of analyze_recordings.
const (
	viewAnnotations = "annotations"
	viewKeyPoints   = "keypoints"
	viewSeries      = "series"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// keyPointsView is the compact per-recording answer of the keypoints view.
type keyPointsView struct {
	ID        string           `json:"id"`
	Color     string           `json:"color"`
	KeyPoints schema.KeyPoints `json:"keyPoints"`
}

func (h *toolHandler) handleAnalyzeRecordings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Paths = splitList(request.GetString("paths", ""))
	if len(cfg.Paths) == 0 {
		return mcp.NewToolResultError("paths is required"), nil
	}
	if ex := request.GetString("exclude", ""); ex != "" {
		cfg.Excludes = splitList(ex)
	}

	pad := request.GetInt("pad", cfg.Grid.Pad)
	tolerance := request.GetFloat("tolerance", cfg.Grid.Tolerance)
	if err := contract.RevalidateGrid(cfg, pad, tolerance); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid grid parameters: %v", err)), nil
	}

	result, err := core.GetBatchResult(ctx, cfg, ingest.NewReaderFromConfig(cfg))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}
	for _, id := range splitList(request.GetString("hidden", "")) {
		result.Annotations = core.SetVisibility(result.Annotations, id, false)
	}

	var payload any
	switch view := request.GetString("view", viewAnnotations); view {
	case viewAnnotations:
		payload = struct {
			BatchID      string                    `json:"batchId"`
			NoUsableData bool                      `json:"noUsableData"`
			Slots        int                       `json:"slots"`
			Annotations  []schema.AnnotationSet    `json:"annotations"`
			Warnings     []schema.RecordingWarning `json:"warnings"`
		}{result.BatchID, result.NoUsableData, len(result.Times), result.Annotations, result.Warnings}
	case viewKeyPoints:
		rows := make([]keyPointsView, 0, len(result.Recordings))
		for _, rec := range result.Recordings {
			rows = append(rows, keyPointsView{ID: rec.ID, Color: rec.Color, KeyPoints: rec.KeyPoints})
		}
		payload = rows
	case viewSeries:
		payload = result
	default:
		return mcp.NewToolResultError(fmt.Sprintf("invalid view '%s'", view)), nil
	}

	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleComputeLabelOffset(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	ev, err := contract.ParseEvent(request.GetString("event", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	cfg.Probe = contract.LayoutProbe{
		Event:          ev,
		Index:          request.GetInt("index", 0),
		Value:          request.GetFloat("value", 0),
		Total:          request.GetInt("total", 1),
		RecordingIndex: request.GetInt("recording_index", 0),
	}
	if cfg.Probe.Index < 0 || cfg.Probe.Total < 0 || cfg.Probe.RecordingIndex < 0 {
		return mcp.NewToolResultError("index, total and recording_index must not be negative"), nil
	}
	if slots := request.GetInt("slots", 0); slots > 0 {
		cfg.Geometry.SlotCount = slots
	}

	set, err := core.ComputeProbe(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("layout failed: %v", err)), nil
	}
	jsonData, _ := json.MarshalIndent(set, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func splitList(s string) []string {
	var out []string
	for p := range strings.SplitSeq(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
