// Package verify implements the slot-consistency verification engine.
package verify

import (
	"fmt"
	"path"

	"github.com/jmallari/slotshift/internal/modtree"
	"github.com/jmallari/slotshift/internal/types"
)

// checkPathNames cross-checks every directory and file name carrying a
// standalone 00-07 numeral against the declared slot. Directory mismatches
// take precedence: they fail the check and suppress the file pass for the
// run.
func checkPathNames(ctx *runContext) ([]types.Finding, error) {
	token := modtree.PaddedNumeral(ctx.slot)

	if badDirs := namesWithForeignSlot(ctx.tree.Dirs, ctx.slot); len(badDirs) > 0 {
		return []types.Finding{{
			Status:  types.StatusFailure,
			Source:  types.SourcePathNames,
			Message: fmt.Sprintf("directories carry a slot numeral other than %s", token),
			Paths:   badDirs,
		}}, nil
	}

	// Unrelated victory-screen and music assets carry their own numerals, so
	// some hits here are expected false positives.
	if badFiles := namesWithForeignSlot(ctx.tree.Files, ctx.slot); len(badFiles) > 0 {
		return []types.Finding{{
			Status:  types.StatusFailure,
			Source:  types.SourcePathNames,
			Message: fmt.Sprintf("files carry a slot numeral other than %s (victory-screen/music assets can be false positives)", token),
			Paths:   badFiles,
		}}, nil
	}

	return []types.Finding{{
		Status:  types.StatusSuccess,
		Source:  types.SourcePathNames,
		Message: fmt.Sprintf("all slot-numbered directory and file names match %s", token),
	}}, nil
}

// namesWithForeignSlot returns the entries whose base name contains a
// standalone 00-07 numeral different from slot, as relative paths.
func namesWithForeignSlot(entries []string, slot int) []string {
	var offending []string
	for _, rel := range entries {
		for _, numeral := range modtree.SlotNumerals(path.Base(rel)) {
			if numeral != slot {
				offending = append(offending, rel)
				break
			}
		}
	}
	return offending
}
