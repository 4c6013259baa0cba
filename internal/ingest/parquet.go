package ingest

import (
	"fmt"

	"github.com/huangsam/roastcurve/internal/parquet"
	"github.com/huangsam/roastcurve/schema"
)

// readParquet reads a recording stored with the parquet.SampleRow layout.
// Rows are passed through untouched; sanitizing happens in the batch.
func readParquet(path string) (schema.Recording, error) {
	rows, err := parquet.ReadSamples(path)
	if err != nil {
		return schema.Recording{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var rec schema.Recording
	rec.Samples = make([]schema.RawSample, 0, len(rows))
	for _, row := range rows {
		s := schema.RawSample{Seconds: row.Seconds, Primary: row.Primary}
		if row.Secondary != nil {
			s.Secondary = schema.Float(*row.Secondary)
		}
		rec.Samples = append(rec.Samples, s)
		if row.Seconds > rec.MaxSeconds {
			rec.MaxSeconds = row.Seconds
		}
	}
	return rec, nil
}
