package ingest

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/huangsam/roastcurve/internal/contract"
)

// ExpandPaths turns files and directories into a list of readable log files.
// Directories are walked recursively and keep only supported files; files
// named explicitly are kept even with an unknown extension so the reader can
// report them. Excluded and duplicate paths are dropped.
func ExpandPaths(paths []string, excludes []string, reader contract.RecordingReader) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	add := func(p string) {
		clean := filepath.Clean(p)
		if _, ok := seen[clean]; ok {
			return
		}
		if contract.ShouldIgnore(filepath.ToSlash(clean), excludes) {
			return
		}
		seen[clean] = struct{}{}
		out = append(out, clean)
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", p, err)
		}
		if !info.IsDir() {
			add(p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != p && contract.ShouldIgnore(filepath.ToSlash(path)+"/", excludes) {
					return filepath.SkipDir
				}
				return nil
			}
			if reader.Supports(path) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("cannot walk %s: %w", p, err)
		}
	}
	return out, nil
}
