// Package observability provides formatted output utilities for verification
// reports and rename plans.
package observability

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// PrintTree recursively prints the names of subdirectories and files under
// root. Children sort with extensionless entries first, then by extension and
// name, so sibling directories group ahead of files.
func (p *Printer) PrintTree(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%q: can't pretty-print a non-directory", filepath.Base(root))
	}
	// The root is the one node the recursion never visits.
	if _, err := fmt.Fprintln(p.out, filepath.Base(root)); err != nil {
		return err
	}
	return p.printTreeLevel(root, 1)
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printTreeLevel(dir string, level int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return treeSortKey(entries[i].Name()) < treeSortKey(entries[j].Name())
	})

	indent := strings.Repeat(" ", 4*(level-1))
	for i, entry := range entries {
		marker := "|-- "
		if i+1 == len(entries) {
			marker = "L__ "
		}
		fmt.Fprintf(p.out, "%s%s%s\n", indent, marker, entry.Name())
		if entry.IsDir() {
			if err := p.printTreeLevel(filepath.Join(dir, entry.Name()), level+1); err != nil {
				return err
			}
		}
	}
	return nil
}

func treeSortKey(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return " " + name
	}
	return ext + name
}
