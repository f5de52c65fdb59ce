// Package vocab loads the reference bank of known fighter codes from the
// community internals spreadsheet.
package vocab

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	// spreadsheetGlob matches any revision of the internals spreadsheet;
	// filename sort picks the latest.
	spreadsheetGlob = "*Internal Numbers and Codes*.xlsx"
	// codeColumnPrefix is the stable prefix of the fighter-code column
	// header. The full header is a sentence; matching the prefix keeps the
	// loader working across spreadsheet revisions.
	codeColumnPrefix = "Character/Fighter Codes"
)

// ErrNotAvailable signals that no internals spreadsheet was found. Callers
// skip the spelling check rather than failing the run.
var ErrNotAvailable = errors.New("fighter-code spreadsheet not available")

// Bank is a read-only set of canonical fighter-code strings.
type Bank struct {
	codes []string
	index map[string]struct{}
}

// NewBank builds a bank from a fixed code list, preserving order.
func NewBank(codes []string) *Bank {
	index := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		index[code] = struct{}{}
	}
	return &Bank{codes: codes, index: index}
}

// Codes returns the codes in load order, for deterministic matching.
func (b *Bank) Codes() []string {
	return b.codes
}

// Contains reports whether code is a known fighter code.
func (b *Bank) Contains(code string) bool {
	_, ok := b.index[code]
	return ok
}

// Len returns the number of known codes.
func (b *Bank) Len() int {
	return len(b.codes)
}

// Load finds the most recent internals spreadsheet in dir and reads the
// fighter-code column. The directory is an explicit parameter; the loader
// never consults the process working directory on its own.
func Load(dir string) (*Bank, error) {
	matches, err := filepath.Glob(filepath.Join(dir, spreadsheetGlob))
	if err != nil {
		return nil, fmt.Errorf("failed to search %s for spreadsheet: %w", dir, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNotAvailable, dir)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(matches)))
	return loadSpreadsheet(matches[0])
}

func loadSpreadsheet(path string) (*Bank, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("spreadsheet %s is empty", path)
	}

	col := -1
	for i, header := range rows[0] {
		if strings.HasPrefix(header, codeColumnPrefix) {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("spreadsheet %s has no %q column", path, codeColumnPrefix)
	}

	var codes []string
	for _, row := range rows[1:] {
		if col >= len(row) {
			continue
		}
		if code := strings.TrimSpace(row[col]); code != "" {
			codes = append(codes, code)
		}
	}
	return NewBank(codes), nil
}
