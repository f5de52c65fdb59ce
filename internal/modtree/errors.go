// Package modtree walks mod directory trees and extracts slot tokens from names.
package modtree

import "fmt"

// SlotNotFoundError reports a name carrying no recognizable slot token.
// It is the one non-recoverable precondition for a single-mod verification
// run; batch verification catches it and records the subdirectory as skipped.
type SlotNotFoundError struct {
	Name string
}

func (e *SlotNotFoundError) Error() string {
	return fmt.Sprintf("%q: no slot number in this name; put 'C0X' or 'c0X' (where X is the slot number) somewhere in the directory name", e.Name)
}

// NotADirectoryError reports that a directory was required but the path is
// not one. Always fatal for the operation that needed it.
type NotADirectoryError struct {
	Path  string
	Cause error
}

func (e *NotADirectoryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%q: not a walkable directory: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("%q: not a walkable directory", e.Path)
}

func (e *NotADirectoryError) Unwrap() error {
	return e.Cause
}
