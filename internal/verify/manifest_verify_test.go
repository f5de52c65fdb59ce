package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmallari/slotshift/internal/types"
)

func TestCheckManifest_NoSlotKeyIsFailure(t *testing.T) {
	root := newMod(t, "mod_c03")
	addFile(t, root, "config.json", `{"new-dir-files": {
		"fighter/falcon/c05": ["body_c05.nutexb"],
		"fighter/falcon/c00": []
	}}`)

	report, err := Mod(root, Options{})
	require.NoError(t, err)

	require.True(t, report.HasFailure(types.SourceManifest))
	assert.False(t, report.AllClear)
}

func TestCheckManifest_MultipleSlotKeysIsWarning(t *testing.T) {
	root := newMod(t, "mod_c03")
	addFile(t, root, "config.json", `{"new-dir-files": {
		"fighter/falcon/c03": ["body_c03.nutexb"],
		"sound/bank/fighter/se_falcon_c03": []
	}}`)

	report, err := Mod(root, Options{})
	require.NoError(t, err)

	assert.False(t, report.HasFailure(types.SourceManifest))
	findings := report.FindingsFor(types.SourceManifest)
	require.NotEmpty(t, findings)
	assert.Equal(t, types.StatusWarning, findings[0].Status)
	assert.ElementsMatch(t, []string{"fighter/falcon/c03", "sound/bank/fighter/se_falcon_c03"}, findings[0].Paths)
}

func TestCheckManifest_WrongSlotPathsAreLenient(t *testing.T) {
	root := newMod(t, "mod_c03")
	addFile(t, root, "config.json", `{"new-dir-files": {
		"fighter/falcon/c03": ["body_c03.nutexb", "shared.nutexb", "body_c05.nutexb"]
	}}`)

	report, err := Mod(root, Options{})
	require.NoError(t, err)

	// Shared or differently slotted paths warn but never fail.
	assert.False(t, report.HasFailure(types.SourceManifest))
	assert.True(t, report.AllClear)
	var warned []string
	for _, f := range report.FindingsFor(types.SourceManifest) {
		if f.Status == types.StatusWarning {
			warned = append(warned, f.Paths...)
		}
	}
	assert.ElementsMatch(t, []string{"shared.nutexb", "body_c05.nutexb"}, warned)
}

func TestCheckManifest_AbsentManifestIsSilent(t *testing.T) {
	root := newMod(t, "mod_c03")

	report, err := Mod(root, Options{})
	require.NoError(t, err)
	assert.Empty(t, report.FindingsFor(types.SourceManifest))
}

func TestCheckManifest_NestedManifestDoesNotCount(t *testing.T) {
	root := newMod(t, "mod_c03")
	addFile(t, root, "nested/config.json", `{"new-dir-files": {"fighter/falcon/c05": []}}`)

	report, err := Mod(root, Options{})
	require.NoError(t, err)
	// Only a root-level config.json triggers the checker.
	assert.Empty(t, report.FindingsFor(types.SourceManifest))
}
