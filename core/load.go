package core

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/huangsam/roastcurve/core/algo"
	"github.com/huangsam/roastcurve/internal/contract"
	"github.com/huangsam/roastcurve/schema"
	"golang.org/x/sync/errgroup"
)

// LoadRecordings reads every path with at most workers reads in flight.
// Recordings come back in ranked path order, each with an ID unique in the
// batch. A file that cannot be read becomes a warning; only cancellation of
// ctx fails the whole load.
func LoadRecordings(ctx context.Context, reader contract.RecordingReader, paths []string, workers int) ([]schema.Recording, []schema.RecordingWarning, error) {
	ranked := algo.RankRecordings(paths)
	ids := recordingIDs(ranked)
	recs := make([]schema.Recording, len(ranked))
	errs := make([]error, len(ranked))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, path := range ranked {
		g.Go(func() error {
			rec, err := reader.ReadRecording(gctx, path)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				errs[i] = err // each goroutine owns index i
				return nil
			}
			if rec.ID == "" || ids[i] != filepath.Base(path) {
				rec.ID = ids[i]
			}
			recs[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	out := make([]schema.Recording, 0, len(ranked))
	var warnings []schema.RecordingWarning
	for i := range ranked {
		if errs[i] != nil {
			warnings = append(warnings, schema.RecordingWarning{
				RecordingID: ids[i],
				Kind:        schema.WarnUnreadable,
				Message:     errs[i].Error(),
			})
			continue
		}
		out = append(out, recs[i])
	}
	return out, warnings, nil
}

// recordingIDs names each path by its base name. Paths sharing a base name
// are named relative to their common parent directory instead, and any name
// still taken gets a numeric suffix.
func recordingIDs(paths []string) []string {
	groups := make(map[string][]int, len(paths))
	for i, path := range paths {
		base := filepath.Base(path)
		groups[base] = append(groups[base], i)
	}

	ids := make([]string, len(paths))
	for base, idx := range groups {
		if len(idx) == 1 {
			ids[idx[0]] = base
			continue
		}
		dirs := make([]string, len(idx))
		for k, i := range idx {
			dirs[k] = filepath.Dir(filepath.Clean(paths[i]))
		}
		root := commonDir(dirs)
		for _, i := range idx {
			id := filepath.Clean(paths[i])
			if rel, err := filepath.Rel(root, id); err == nil {
				id = rel
			}
			ids[i] = filepath.ToSlash(id)
		}
	}

	seen := make(map[string]int, len(ids))
	for i, id := range ids {
		seen[id]++
		if n := seen[id]; n > 1 {
			ids[i] = fmt.Sprintf("%s#%d", id, n)
		}
	}
	return ids
}

// commonDir returns the deepest directory containing every dir.
func commonDir(dirs []string) string {
	parts := strings.Split(dirs[0], string(filepath.Separator))
	for _, dir := range dirs[1:] {
		other := strings.Split(dir, string(filepath.Separator))
		n := 0
		for n < len(parts) && n < len(other) && parts[n] == other[n] {
			n++
		}
		parts = parts[:n]
	}
	if len(parts) == 1 && parts[0] == "" {
		return string(filepath.Separator)
	}
	return strings.Join(parts, string(filepath.Separator))
}
