// Package modtree walks mod directory trees and extracts slot tokens from names.
package modtree

import (
	"fmt"
	"regexp"
)

var (
	// slotTokenPattern matches a slot token: c or C, the fixed tens digit 0,
	// then the slot digit 0-7.
	slotTokenPattern = regexp.MustCompile(`[cC]0([0-7])`)
	// slotReplacePattern captures the letter so a substitution preserves its case.
	slotReplacePattern = regexp.MustCompile(`([cC])0[0-7]`)
)

// ExtractSlot returns the slot number from the first (leftmost) slot token in
// name. Names with several tokens are not detected; callers are expected to
// keep one unambiguous token in the name.
func ExtractSlot(name string) (int, error) {
	m := slotTokenPattern.FindStringSubmatch(name)
	if m == nil {
		return 0, &SlotNotFoundError{Name: name}
	}
	return int(m[1][0] - '0'), nil
}

// ReplaceSlot substitutes every slot token in name with newSlot, preserving
// the letter case of the matched c/C. A substitution that produces an
// identical name is an error: it means there was nothing to change.
func ReplaceSlot(name string, newSlot int) (string, error) {
	renamed := slotReplacePattern.ReplaceAllString(name, fmt.Sprintf("${1}0%d", newSlot))
	if renamed == name {
		return "", fmt.Errorf("%q: replacing slot with %d leaves the name unchanged", name, newSlot)
	}
	return renamed, nil
}
