// Package ingest reads roast logs into recordings. It is the parsing
// collaborator of the pipeline: every format reports its samples and the
// largest elapsed time in one pass.
package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/huangsam/roastcurve/internal/contract"
	"github.com/huangsam/roastcurve/schema"
)

// Supported file extensions.
const (
	extCSV     = ".csv"
	extTXT     = ".txt"
	extXLSX    = ".xlsx"
	extXLSM    = ".xlsm"
	extParquet = ".parquet"
)

// Reader reads CSV, Excel and Parquet roast logs.
type Reader struct {
	mapping schema.FieldMapping
	forced  bool
}

var _ contract.RecordingReader = &Reader{}

// NewReader returns a Reader. When forced is false, column positions are
// discovered from header keywords and mapping is only the fallback.
func NewReader(mapping schema.FieldMapping, forced bool) *Reader {
	return &Reader{mapping: mapping, forced: forced}
}

// NewReaderFromConfig returns a Reader for the configured columns.
func NewReaderFromConfig(cfg *contract.Config) *Reader {
	return NewReader(cfg.Mapping, cfg.MappingSet)
}

// Supports reports whether the file extension is a known log format.
func (r *Reader) Supports(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case extCSV, extTXT, extXLSX, extXLSM, extParquet:
		return true
	default:
		return false
	}
}

// ReadRecording parses one file. The recording ID is the base file name.
func (r *Reader) ReadRecording(ctx context.Context, path string) (schema.Recording, error) {
	if err := ctx.Err(); err != nil {
		return schema.Recording{}, err
	}

	var (
		rec schema.Recording
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case extCSV, extTXT:
		rec, err = r.readCSV(path)
	case extXLSX, extXLSM:
		rec, err = r.readXLSX(path)
	case extParquet:
		rec, err = readParquet(path)
	default:
		return schema.Recording{}, fmt.Errorf("unsupported file type: %s", path)
	}
	if err != nil {
		return schema.Recording{}, err
	}
	rec.ID = filepath.Base(path)
	rec.Path = path
	return rec, nil
}
