// Package modtree walks mod directory trees and extracts slot tokens from names.
package modtree

import (
	"fmt"
	"regexp"
)

// digitRunPattern matches maximal runs of consecutive digits. A numeral is
// "standalone" when its digit run is exactly the numeral, which is what keeps
// '_001' in texture names from registering as slot 00 or 01.
var digitRunPattern = regexp.MustCompile(`[0-9]+`)

// ContainsStandalone reports whether token occurs in s as a standalone
// numeral, i.e. a maximal digit run equal to token.
func ContainsStandalone(s, token string) bool {
	for _, run := range digitRunPattern.FindAllString(s, -1) {
		if run == token {
			return true
		}
	}
	return false
}

// SlotNumerals returns every standalone two-digit numeral in the 00-07 range
// found in s, in order of occurrence.
func SlotNumerals(s string) []int {
	var slots []int
	for _, run := range digitRunPattern.FindAllString(s, -1) {
		if len(run) == 2 && run[0] == '0' && run[1] >= '0' && run[1] <= '7' {
			slots = append(slots, int(run[1]-'0'))
		}
	}
	return slots
}

// PaddedNumeral formats a slot or index value as its zero-padded two-digit
// token, e.g. 5 -> "05", 13 -> "13". Index values past 99 keep all digits.
func PaddedNumeral(n int) string {
	return fmt.Sprintf("%02d", n)
}

// ReplaceStandalone rewrites every standalone occurrence of oldToken in s
// with newToken, leaving every other numeral untouched.
func ReplaceStandalone(s, oldToken, newToken string) string {
	return digitRunPattern.ReplaceAllStringFunc(s, func(run string) string {
		if run == oldToken {
			return newToken
		}
		return run
	})
}
