package verify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmallari/slotshift/internal/types"
	"github.com/jmallari/slotshift/internal/vocab"
)

func spellingWarnings(report *types.VerificationReport) []string {
	var messages []string
	for _, f := range report.FindingsFor(types.SourceSpelling) {
		if f.Status == types.StatusWarning {
			messages = append(messages, f.Message)
		}
	}
	return messages
}

func TestCheckSpelling_SuggestsCloseCodes(t *testing.T) {
	root := newMod(t, "mod_c03")
	addDir(t, root, "fighter/kopa/model/body/c03")

	bank := vocab.NewBank([]string{"koopa", "mario", "falcon"})
	report, err := Mod(root, Options{Bank: bank})
	require.NoError(t, err)

	warnings := spellingWarnings(report)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], `"kopa"`)
	assert.Contains(t, warnings[0], "koopa")
	// Suggestions never affect the verdict.
	assert.True(t, report.AllClear)
}

func TestCheckSpelling_KnownCodesAndLayoutWordsPass(t *testing.T) {
	root := newMod(t, "mod_c03")
	addDir(t, root, "fighter/koopa/model/body/c03")
	addFile(t, root, "sound/bank/fighter/se_koopa_c03.nus3audio", "x")

	bank := vocab.NewBank([]string{"koopa"})
	report, err := Mod(root, Options{Bank: bank})
	require.NoError(t, err)
	assert.Empty(t, spellingWarnings(report))
}

func TestCheckSpelling_SkippedWithoutBank(t *testing.T) {
	root := newMod(t, "mod_c03")
	addDir(t, root, "fighter/kopa")

	report, err := Mod(root, Options{})
	require.NoError(t, err)

	warnings := spellingWarnings(report)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "skipped")
	assert.True(t, report.AllClear)
}

func TestCheckSpelling_CoversManifestAndLabels(t *testing.T) {
	root := newMod(t, "mod_c03")
	addFile(t, root, "config.json", `{"new-dir-files": {"fighter/kopa/c03": ["kopa_body_c03.nutexb"]}}`)
	addFile(t, root, "ui/message/msg_name.xmsbt", `<?xml version="1.0" encoding="utf-8"?>
<xmsbt>
  <entry label="nam_chr1_03_marioo"><text>Plumber</text></entry>
</xmsbt>`)

	bank := vocab.NewBank([]string{"koopa", "mario"})
	report, err := Mod(root, Options{Bank: bank})
	require.NoError(t, err)

	joined := strings.Join(spellingWarnings(report), "\n")
	assert.Contains(t, joined, `"kopa"`)
	assert.Contains(t, joined, `"marioo"`)
}

func TestCollectWords_DeduplicatesAndSkipsDigitTokens(t *testing.T) {
	root := newMod(t, "mod_c03")
	addDir(t, root, "fighter/kopa/c03")
	addFile(t, root, "fighter/kopa/c03/kopa_001.nutexb", "x")

	bank := vocab.NewBank([]string{"koopa"})
	report, err := Mod(root, Options{Bank: bank})
	require.NoError(t, err)

	// "kopa" appears in several names but is suggested once; "c03" and "001"
	// never become words.
	warnings := spellingWarnings(report)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], `"kopa"`)
}
