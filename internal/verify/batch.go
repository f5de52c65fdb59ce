// Package verify implements the slot-consistency verification engine.
package verify

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jmallari/slotshift/internal/modtree"
	"github.com/jmallari/slotshift/internal/types"
)

// Batch verifies every immediate subdirectory of root. Subdirectories whose
// names carry no slot token are recorded as skipped, not failed. Results are
// keyed by subdirectory name, not completion order, so bounded parallelism is
// safe.
func Batch(ctx context.Context, root string, opts Options, parallelism int) (*types.BatchReport, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, &modtree.NotADirectoryError{Path: root, Cause: err}
	}
	var subdirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			subdirs = append(subdirs, entry.Name())
		}
	}
	sort.Strings(subdirs)

	report := &types.BatchReport{
		Root:    root,
		Entries: make([]types.BatchEntry, len(subdirs)),
	}
	if parallelism < 1 {
		parallelism = 1
	}
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for i, name := range subdirs {
		i, name := i, name
		g.Go(func() error {
			modReport, err := Mod(filepath.Join(root, name), opts)
			if err != nil {
				var slotErr *modtree.SlotNotFoundError
				if errors.As(err, &slotErr) {
					report.Entries[i] = types.BatchEntry{
						Name:       name,
						Skipped:    true,
						SkipReason: "not a single-slot mod (no slot token in name)",
					}
					return nil
				}
				return fmt.Errorf("failed to verify %s: %w", name, err)
			}
			report.Entries[i] = types.BatchEntry{Name: name, Report: modReport}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	runnable, clear := 0, true
	for _, entry := range report.Entries {
		if entry.Skipped {
			continue
		}
		runnable++
		if !entry.Report.AllClear {
			clear = false
		}
	}
	switch {
	case runnable == 0:
		report.Outcome = types.BatchInconclusive
	case clear:
		report.Outcome = types.BatchAllClear
	default:
		report.Outcome = types.BatchIssues
	}
	return report, nil
}
