// Package rename builds and applies non-destructive slot rename plans.
package rename

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Apply materializes the plan by copying every entry into the target root.
// The source tree is never written to. An existing target is refused, and a
// failed apply removes the partial target so no half-renamed tree survives.
func (p *Plan) Apply() error {
	if _, err := os.Stat(p.TargetRoot); err == nil {
		return fmt.Errorf("target %s already exists; refusing to overwrite", p.TargetRoot)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat target %s: %w", p.TargetRoot, err)
	}
	if err := p.apply(); err != nil {
		_ = os.RemoveAll(p.TargetRoot)
		return err
	}
	return nil
}

func (p *Plan) apply() error {
	if err := os.MkdirAll(p.TargetRoot, 0o755); err != nil {
		return fmt.Errorf("failed to create target root: %w", err)
	}
	for _, entry := range p.Entries {
		dst := filepath.Join(p.TargetRoot, filepath.FromSlash(entry.NewRel))
		if entry.IsDir {
			if err := os.MkdirAll(dst, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", entry.NewRel, err)
			}
			continue
		}
		src := filepath.Join(p.SourceRoot, filepath.FromSlash(entry.OldRel))
		if err := copyFile(src, dst); err != nil {
			return fmt.Errorf("failed to copy %s: %w", entry.OldRel, err)
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
