// Package modtree walks mod directory trees and extracts slot tokens from names.
package modtree

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// Tree is the set of all directories and files under a root path, held as
// root-relative slash paths in stable traversal order. The order is used for
// deterministic iteration only, not semantic ranking.
type Tree struct {
	Root  string
	Dirs  []string
	Files []string
}

// Collect walks root and returns its directory and file listings. The root
// itself is not included. A non-directory root is a structural error.
func Collect(root string) (*Tree, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, &NotADirectoryError{Path: root, Cause: err}
	}
	if !info.IsDir() {
		return nil, &NotADirectoryError{Path: root}
	}
	tree := &Tree{Root: root}
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == root {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			tree.Dirs = append(tree.Dirs, rel)
		} else {
			tree.Files = append(tree.Files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return tree, nil
}

// FindFirstFile returns the relative path of the first file named base, in
// traversal order.
func (t *Tree) FindFirstFile(base string) (string, bool) {
	for _, f := range t.Files {
		if path.Base(f) == base {
			return f, true
		}
	}
	return "", false
}

// HasRootFile reports whether a file named base sits directly at the tree
// root, not somewhere deeper.
func (t *Tree) HasRootFile(base string) bool {
	for _, f := range t.Files {
		if f == base {
			return true
		}
	}
	return false
}

// Abs returns the absolute path of a root-relative entry.
func (t *Tree) Abs(rel string) string {
	return filepath.Join(t.Root, filepath.FromSlash(rel))
}
