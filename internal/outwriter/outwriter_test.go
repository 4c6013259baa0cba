package outwriter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/roastcurve/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutWriterJSON(t *testing.T) {
	ow := NewOutWriter()
	result := sampleResult()
	dir := t.TempDir()

	tests := []struct {
		name  string
		write func(path string) error
		check func(t *testing.T, raw []byte)
	}{
		{
			name: "analysis",
			write: func(path string) error {
				return ow.WriteAnalysis(result, testConfig(schema.JSONOut, path), time.Second)
			},
			check: func(t *testing.T, raw []byte) {
				var out analysisOutput
				require.NoError(t, json.Unmarshal(raw, &out))
				assert.Equal(t, "batch-1", out.BatchID)
				assert.Len(t, out.Annotations, 2)
			},
		},
		{
			name: "series",
			write: func(path string) error {
				return ow.WriteSeries(result, testConfig(schema.JSONOut, path), time.Second)
			},
			check: func(t *testing.T, raw []byte) {
				var out schema.BatchResult
				require.NoError(t, json.Unmarshal(raw, &out))
				require.Len(t, out.Recordings, 1)
				assert.Nil(t, out.Recordings[0].Series.Primary[2])
			},
		},
		{
			name: "keypoints",
			write: func(path string) error {
				return ow.WriteKeyPoints(result, testConfig(schema.JSONOut, path), time.Second)
			},
			check: func(t *testing.T, raw []byte) {
				var rows []keyPointRow
				require.NoError(t, json.Unmarshal(raw, &rows))
				require.Len(t, rows, 2)
				assert.Equal(t, "TP", rows[0].Code)
			},
		},
		{
			name: "layout",
			write: func(path string) error {
				return ow.WriteLayout(result.Annotations[0], testConfig(schema.JSONOut, path))
			},
			check: func(t *testing.T, raw []byte) {
				var set schema.AnnotationSet
				require.NoError(t, json.Unmarshal(raw, &set))
				assert.Equal(t, "TP:ethiopia.csv", set.Key.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".json")
			require.NoError(t, tt.write(path))
			raw, err := os.ReadFile(path)
			require.NoError(t, err)
			tt.check(t, raw)
		})
	}
}

func TestOutWriterParquet(t *testing.T) {
	ow := NewOutWriter()
	result := sampleResult()
	dir := t.TempDir()

	writes := map[string]func(path string) error{
		"analysis": func(path string) error {
			return ow.WriteAnalysis(result, testConfig(schema.ParquetOut, path), 0)
		},
		"series": func(path string) error {
			return ow.WriteSeries(result, testConfig(schema.ParquetOut, path), 0)
		},
		"keypoints": func(path string) error {
			return ow.WriteKeyPoints(result, testConfig(schema.ParquetOut, path), 0)
		},
		"layout": func(path string) error {
			return ow.WriteLayout(result.Annotations[1], testConfig(schema.ParquetOut, path))
		},
	}
	for name, write := range writes {
		path := filepath.Join(dir, name+".parquet")
		require.NoError(t, write(path), name)
		info, err := os.Stat(path)
		require.NoError(t, err, name)
		assert.Positive(t, info.Size(), name)
	}
}
