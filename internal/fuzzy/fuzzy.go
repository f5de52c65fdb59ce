// Package fuzzy implements the character-multiset similarity heuristic used
// to flag likely fighter-code misspellings.
package fuzzy

import "sort"

// DefaultThreshold is the similarity score a bank entry must reach to count
// as a match.
const DefaultThreshold = 0.75

// Similarity scores how alike two strings are, from 0 (no characters in
// common) to 1 (anagrams). The longer string is picked with a strict length
// comparison, the shared character multiset is counted, and the tally is
// divided by the longer length. The result is symmetric in its arguments.
func Similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	var long, short []rune
	if len(ra) > len(rb) {
		long, short = ra, rb
	} else {
		short, long = ra, rb
	}
	if len(long) == 0 {
		return 0
	}
	longCounts := runeCounts(long)
	shortCounts := runeCounts(short)
	common := 0
	for r, n := range shortCounts {
		if m := longCounts[r]; m < n {
			common += m
		} else {
			common += n
		}
	}
	return float64(common) / float64(len(long))
}

func runeCounts(rs []rune) map[rune]int {
	counts := make(map[rune]int, len(rs))
	for _, r := range rs {
		counts[r]++
	}
	return counts
}

// Matches returns the bank entries whose similarity to element reaches
// threshold, best score first. Entries with equal scores keep their bank
// order.
func Matches(element string, bank []string, threshold float64) []string {
	type scored struct {
		entry string
		score float64
	}
	var hits []scored
	for _, entry := range bank {
		if s := Similarity(element, entry); s >= threshold {
			hits = append(hits, scored{entry: entry, score: s})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})
	matches := make([]string, len(hits))
	for i, h := range hits {
		matches[i] = h.entry
	}
	return matches
}
