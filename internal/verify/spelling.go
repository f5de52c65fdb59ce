// Package verify implements the slot-consistency verification engine.
package verify

import (
	"fmt"
	"strings"

	"github.com/jmallari/slotshift/internal/fuzzy"
	"github.com/jmallari/slotshift/internal/types"
)

// knownNonCodes are ordinary mod-layout words and sidecar extensions that sit
// close enough to real fighter codes to trip the fuzzy matcher; they are
// never reported as misspellings.
var knownNonCodes = map[string]struct{}{
	"append":  {},
	"bank":    {},
	"body":    {},
	"camera":  {},
	"chara":   {},
	"common":  {},
	"config":  {},
	"effect":  {},
	"fighter": {},
	"model":   {},
	"motion":  {},
	"msg":     {},
	"name":    {},
	"param":   {},
	"replace": {},
	"sound":   {},
	"trail":   {},
	"ui":      {},
	"vc":      {},
	"se":      {},
	"ef":      {},

	"bntx":      {},
	"eff":       {},
	"json":      {},
	"msbt":      {},
	"nus3audio": {},
	"nus3bank":  {},
	"nutexb":    {},
	"prc":       {},
	"prcx":      {},
	"prcxml":    {},
	"xmsbt":     {},
}

func isWordSeparator(r rune) bool {
	return r == '_' || r == '.' || r == '/'
}

// checkSpelling tokenizes every discovered name and value and fuzzy-matches
// unknown words against the fighter-code bank. Suggestions are informational
// only; they never affect the overall verdict.
func checkSpelling(ctx *runContext) ([]types.Finding, error) {
	if ctx.opts.Bank == nil {
		return []types.Finding{{
			Status:  types.StatusWarning,
			Source:  types.SourceSpelling,
			Message: "fighter-code vocabulary not available; spelling check skipped",
		}}, nil
	}

	var findings []types.Finding
	for _, word := range collectWords(ctx) {
		matches := fuzzy.Matches(word, ctx.opts.Bank.Codes(), ctx.opts.threshold())
		if len(matches) > 0 {
			findings = append(findings, types.Finding{
				Status:  types.StatusWarning,
				Source:  types.SourceSpelling,
				Message: fmt.Sprintf("%q is not a known fighter code; did you mean %s?", word, strings.Join(matches, ", ")),
			})
		}
	}
	if len(findings) == 0 {
		findings = append(findings, types.Finding{
			Status:  types.StatusSuccess,
			Source:  types.SourceSpelling,
			Message: "no suspected fighter-code misspellings",
		})
	}
	return findings, nil
}

// collectWords gathers the deduplicated candidate words of a run in
// first-seen order: path segments, manifest keys and values, sidecar labels
// and text. Tokens carrying digits are slot artifacts handled by the other
// checkers, not words.
func collectWords(ctx *runContext) []string {
	seen := make(map[string]struct{})
	var words []string
	add := func(s string) {
		for _, token := range strings.FieldsFunc(s, isWordSeparator) {
			token = strings.ToLower(token)
			if token == "" || strings.ContainsAny(token, "0123456789") {
				continue
			}
			if _, ok := knownNonCodes[token]; ok {
				continue
			}
			if ctx.opts.Bank.Contains(token) {
				continue
			}
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			words = append(words, token)
		}
	}

	for _, dir := range ctx.tree.Dirs {
		add(dir)
	}
	for _, file := range ctx.tree.Files {
		add(file)
	}
	if ctx.manifest != nil {
		for _, key := range ctx.manifest.Keys() {
			add(key)
			for _, file := range ctx.manifest.NewDirFiles[key] {
				add(file)
			}
		}
	}
	if ctx.labels != nil {
		for _, entry := range ctx.labels.Entries {
			add(entry.Label)
			add(entry.Text)
		}
	}
	for _, text := range ctx.indexTexts {
		add(text)
	}
	return words
}
