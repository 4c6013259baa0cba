package outwriter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/roastcurve/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyPointRows(t *testing.T) {
	rows := keyPointRows(sampleResult())
	require.Len(t, rows, 2)

	assert.Equal(t, schema.TurningPoint, rows[0].Event)
	assert.Equal(t, "TP", rows[0].Code)
	assert.Equal(t, "00:01", rows[0].Clock)
	require.NotNil(t, rows[0].Secondary)
	assert.Equal(t, -59.0, *rows[0].Secondary)

	assert.Equal(t, schema.EndPoint, rows[1].Event)
	assert.Equal(t, 3, rows[1].Slot)
	assert.Nil(t, rows[1].Secondary)
}

func TestWriteKeyPointCSV(t *testing.T) {
	fmtFloat, _ := createFormatters(1)
	var buf bytes.Buffer
	require.NoError(t, writeKeyPointCSV(&buf, sampleResult(), fmtFloat))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "recording,recording_index,event,time,slot,value,secondary", lines[0])
	assert.Equal(t, "ethiopia.csv,0,TP,00:01,1,198.0,-59.0", lines[1])
	assert.Equal(t, "ethiopia.csv,0,OUT,00:03,3,120.0,", lines[2])
}

func TestWriteKeyPointTable(t *testing.T) {
	cfg := testConfig(schema.TextOut, "")
	cfg.Detail = true
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	require.NoError(t, writeKeyPointTable(sampleResult(), cfg, fmtFloat, intFmt, time.Second, &buf))
	out := buf.String()
	assert.Contains(t, out, "00:01 @ 198.0")
	assert.Contains(t, out, "00:03 @ 120.0")
	assert.Contains(t, strings.ToUpper(out), "MALFORMED")
	assert.Contains(t, out, "Detected key points for 1 recordings")
}

func TestWriteKeyPointResultsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keypoints.json")
	require.NoError(t, WriteKeyPointResults(sampleResult(), testConfig(schema.JSONOut, path), 0))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var rows []keyPointRow
	require.NoError(t, json.Unmarshal(content, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "ethiopia.csv", rows[0].RecordingID)
}

func TestFormatKeyPointCell(t *testing.T) {
	fmtFloat, _ := createFormatters(1)
	assert.Equal(t, "-", formatKeyPointCell(nil, fmtFloat))
	assert.Equal(t, "05:12 @ 160.4", formatKeyPointCell(&schema.KeyPoint{Time: 312, Value: 160.4}, fmtFloat))
}
