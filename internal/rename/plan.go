// Package rename builds and applies non-destructive slot rename plans: the
// source tree is duplicated under a re-slotted name, never edited in place.
package rename

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/jmallari/slotshift/internal/modtree"
)

// DefaultExclusions lists subtrees whose slot numbers must not change: item
// textures always live in c00, and Kirby copy-ability caps track Kirby's own
// costumes, not the fighter being re-slotted.
var DefaultExclusions = []string{
	"item",
	"fighter/kirby/model/copy_*_cap",
}

// Entry is one planned path in the target tree.
type Entry struct {
	OldRel  string
	NewRel  string
	IsDir   bool
	Renamed bool
}

// Plan is the full set of planned writes for one rename run. Nothing touches
// the filesystem until Apply.
type Plan struct {
	SourceRoot string
	TargetRoot string
	OldSlot    int
	NewSlot    int
	Entries    []Entry
}

// BuildPlan walks the mod rooted at root and plans its duplication onto
// newSlot. The root name supplies the current slot and the target root name.
// Exclusion patterns are relative directory paths (path.Match syntax); a
// matched directory and everything under it keep their names.
func BuildPlan(root string, newSlot int, exclusions []string) (*Plan, error) {
	if newSlot < 0 || newSlot > 7 {
		return nil, fmt.Errorf("new slot %d out of range; slots run 0-7", newSlot)
	}
	rootName := filepath.Base(root)
	oldSlot, err := modtree.ExtractSlot(rootName)
	if err != nil {
		return nil, err
	}
	if newSlot == oldSlot {
		return nil, fmt.Errorf("mod %q is already on slot %d", rootName, newSlot)
	}
	newName, err := modtree.ReplaceSlot(rootName, newSlot)
	if err != nil {
		return nil, err
	}
	tree, err := modtree.Collect(root)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		SourceRoot: root,
		TargetRoot: filepath.Join(filepath.Dir(root), newName),
		OldSlot:    oldSlot,
		NewSlot:    newSlot,
	}
	oldToken := modtree.PaddedNumeral(oldSlot)
	newToken := modtree.PaddedNumeral(newSlot)

	// dirMap tracks where each source directory lands in the target tree;
	// exclusion is inherited by everything below a matched directory.
	dirMap := map[string]string{"": ""}
	excludedDirs := map[string]bool{"": false}
	for _, dir := range tree.Dirs {
		parent := parentOf(dir)
		base := path.Base(dir)
		excluded := excludedDirs[parent] || matchesAny(exclusions, dir)
		newBase := base
		if !excluded {
			newBase = modtree.ReplaceStandalone(base, oldToken, newToken)
		}
		newRel := path.Join(dirMap[parent], newBase)
		dirMap[dir] = newRel
		excludedDirs[dir] = excluded
		plan.Entries = append(plan.Entries, Entry{
			OldRel:  dir,
			NewRel:  newRel,
			IsDir:   true,
			Renamed: newBase != base,
		})
	}
	for _, file := range tree.Files {
		parent := parentOf(file)
		base := path.Base(file)
		newBase := base
		if !excludedDirs[parent] {
			newBase = modtree.ReplaceStandalone(base, oldToken, newToken)
		}
		plan.Entries = append(plan.Entries, Entry{
			OldRel:  file,
			NewRel:  path.Join(dirMap[parent], newBase),
			Renamed: newBase != base,
		})
	}
	return plan, nil
}

// Renamed returns only the entries whose name actually changes.
func (p *Plan) Renamed() []Entry {
	var renamed []Entry
	for _, e := range p.Entries {
		if e.Renamed {
			renamed = append(renamed, e)
		}
	}
	return renamed
}

func parentOf(rel string) string {
	parent := path.Dir(rel)
	if parent == "." {
		return ""
	}
	return parent
}

func matchesAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if ok, err := path.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}
