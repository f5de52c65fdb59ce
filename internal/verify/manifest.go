// Package verify implements the slot-consistency verification engine.
package verify

import (
	"fmt"

	"github.com/jmallari/slotshift/internal/manifest"
	"github.com/jmallari/slotshift/internal/modtree"
	"github.com/jmallari/slotshift/internal/types"
)

// checkManifest validates the slot declarations in config.json when one sits
// at the mod root. An absent manifest is silent; a malformed one is fatal for
// the run. The wrong-slot path condition stays a warning on purpose: default
// textures legitimately get shared across slots.
func checkManifest(ctx *runContext) ([]types.Finding, error) {
	if !ctx.tree.HasRootFile(manifest.FileName) {
		return nil, nil
	}
	doc, err := manifest.Load(ctx.tree.Abs(manifest.FileName))
	if err != nil {
		return nil, err
	}
	ctx.manifest = doc

	token := modtree.PaddedNumeral(ctx.slot)
	var correctKeys []string
	for _, key := range doc.Keys() {
		if modtree.ContainsStandalone(key, token) {
			correctKeys = append(correctKeys, key)
		}
	}
	if len(correctKeys) == 0 {
		return []types.Finding{{
			Status:  types.StatusFailure,
			Source:  types.SourceManifest,
			Message: fmt.Sprintf("config.json declares no new-dir-files key for slot %s", token),
		}}, nil
	}

	var findings []types.Finding
	if len(correctKeys) > 1 {
		findings = append(findings, types.Finding{
			Status:  types.StatusWarning,
			Source:  types.SourceManifest,
			Message: fmt.Sprintf("config.json declares %d keys for slot %s; shared manifests are unusual but not wrong", len(correctKeys), token),
			Paths:   correctKeys,
		})
	}
	for _, key := range correctKeys {
		for _, file := range doc.NewDirFiles[key] {
			if wrongSlotPath(file, ctx.slot) {
				findings = append(findings, types.Finding{
					Status:  types.StatusWarning,
					Source:  types.SourceManifest,
					Message: fmt.Sprintf("file declared under %q does not look slot-%s specific", key, token),
					Paths:   []string{file},
				})
			}
		}
	}
	findings = append(findings, types.Finding{
		Status:  types.StatusSuccess,
		Source:  types.SourceManifest,
		Message: fmt.Sprintf("config.json declares slot %s under %d key(s)", token, len(correctKeys)),
	})
	return findings, nil
}

// wrongSlotPath flags a declared file that lacks the slot numeral or carries
// a different one.
func wrongSlotPath(file string, slot int) bool {
	if !modtree.ContainsStandalone(file, modtree.PaddedNumeral(slot)) {
		return true
	}
	for _, numeral := range modtree.SlotNumerals(file) {
		if numeral != slot {
			return true
		}
	}
	return false
}
