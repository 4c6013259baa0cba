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

func TestWriteSeriesCSV(t *testing.T) {
	fmtFloat, _ := createFormatters(1)
	var buf bytes.Buffer
	require.NoError(t, writeSeriesCSV(&buf, sampleResult(), fmtFloat))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5) // header + 4 slots
	assert.Equal(t, "slot,time,ethiopia.csv:primary,ethiopia.csv:secondary", lines[0])
	assert.Equal(t, "0,00:00,200.0,", lines[1])
	assert.Equal(t, "1,00:01,198.0,-59.0", lines[2])
	assert.Equal(t, "2,00:02,,", lines[3])
}

func TestWriteSeriesTable(t *testing.T) {
	cfg := testConfig(schema.TextOut, "")
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	require.NoError(t, writeSeriesTable(sampleResult(), cfg, fmtFloat, time.Second, &buf))
	out := buf.String()
	assert.Contains(t, out, "00:00")
	assert.NotContains(t, out, "00:01") // only tick slots without detail
	assert.Contains(t, out, "Aligned 1 recordings on 4 slots")

	cfg.Detail = true
	buf.Reset()
	require.NoError(t, writeSeriesTable(sampleResult(), cfg, fmtFloat, time.Second, &buf))
	assert.Contains(t, buf.String(), "00:03")
	assert.Contains(t, buf.String(), "-25.0")
}

func TestWriteSeriesResultsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.json")
	require.NoError(t, WriteSeriesResults(sampleResult(), testConfig(schema.JSONOut, path), 0))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var out schema.BatchResult
	require.NoError(t, json.Unmarshal(content, &out))
	require.Len(t, out.Recordings, 1)
	assert.Len(t, out.Recordings[0].Series.Primary, 4)
	assert.Nil(t, out.Recordings[0].Series.Primary[2])
	assert.Equal(t, []string{"00:00", "00:01", "00:02", "00:03"}, out.Times)
}

func TestWriteSeriesResultsParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.parquet")
	require.NoError(t, WriteSeriesResults(sampleResult(), testConfig(schema.ParquetOut, path), 0))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestFormatSlot(t *testing.T) {
	fmtFloat, _ := createFormatters(1)
	values := []*float64{fp(1), nil}
	assert.Equal(t, "1.0", formatSlot(values, 0, fmtFloat))
	assert.Equal(t, "", formatSlot(values, 1, fmtFloat))
	assert.Equal(t, "", formatSlot(values, 5, fmtFloat))
}
