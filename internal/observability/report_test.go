package observability

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmallari/slotshift/internal/rename"
	"github.com/jmallari/slotshift/internal/types"
)

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &types.VerificationReport{
		RunID:   uuid.New(),
		ModName: "falcon_mod_c03",
		Slot:    3,
		Findings: []types.Finding{
			{Status: types.StatusFailure, Source: types.SourcePathNames,
				Message: "directories carry a different slot number", Paths: []string{"fighter/captain/model/body/c02"}},
			{Status: types.StatusWarning, Source: types.SourceSpelling,
				Message: `"captin": did you mean "captain"?`},
		},
		AllClear: false,
	}
	p.PrintReport(report)

	out := buf.String()
	assert.Contains(t, out, "VERIFICATION REPORT")
	assert.Contains(t, out, "falcon_mod_c03")
	assert.Contains(t, out, "Slot:  c03")
	assert.Contains(t, out, "PATH NAMES")
	assert.Contains(t, out, "fighter/captain/model/body/c02")
	assert.Contains(t, out, "SPELLING")
	assert.Contains(t, out, "ISSUES FOUND")
	assert.NotContains(t, out, "ALL CLEAR")
}

func TestPrintReport_AllClear(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintReport(&types.VerificationReport{
		RunID:    uuid.New(),
		ModName:  "mod_c00",
		AllClear: true,
	})
	assert.Contains(t, buf.String(), "ALL CLEAR")
}

func TestPrintReport_TruncatesLongPathLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	paths := make([]string, maxPathsToShow+3)
	for i := range paths {
		paths[i] = "some/dir/c02"
	}
	p.PrintReport(&types.VerificationReport{
		RunID:   uuid.New(),
		ModName: "mod_c03",
		Slot:    3,
		Findings: []types.Finding{
			{Status: types.StatusWarning, Source: types.SourceManifest, Message: "paths with wrong slot", Paths: paths},
		},
	})
	assert.Contains(t, buf.String(), "... and 3 more")
}

func TestPrintReport_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintReport(nil)
	assert.Empty(t, buf.String())
}

func TestPrintBatchReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBatchReport(&types.BatchReport{
		Root: "/mods",
		Entries: []types.BatchEntry{
			{Name: "cool_mod", Skipped: true, SkipReason: "no slot token in name"},
			{Name: "good_c03", Report: &types.VerificationReport{AllClear: true}},
			{Name: "bad_c04", Report: &types.VerificationReport{}},
		},
		Outcome: types.BatchIssues,
	})

	out := buf.String()
	assert.Contains(t, out, "BATCH VERIFICATION")
	assert.Contains(t, out, "cool_mod: skipped (no slot token in name)")
	assert.Contains(t, out, "good_c03: all clear")
	assert.Contains(t, out, "bad_c04: issues found")
	assert.Contains(t, out, "SOME MODS HAVE ISSUES")
}

func TestPrintBatchReport_Inconclusive(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBatchReport(&types.BatchReport{Root: "/mods", Outcome: types.BatchInconclusive})
	assert.Contains(t, buf.String(), "NO VERIFIABLE MODS FOUND")
}

func TestPrintRenamePlan(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	plan := &rename.Plan{
		SourceRoot: "/mods/falcon_c03",
		TargetRoot: "/mods/falcon_c05",
		OldSlot:    3,
		NewSlot:    5,
		Entries: []rename.Entry{
			{OldRel: "fighter", NewRel: "fighter", IsDir: true},
			{OldRel: "fighter/captain/model/body/c03", NewRel: "fighter/captain/model/body/c05", IsDir: true, Renamed: true},
		},
	}
	p.PrintRenamePlan(plan)

	out := buf.String()
	assert.Contains(t, out, "RENAME PLAN")
	assert.Contains(t, out, "2 total, 1 renamed")
	assert.Contains(t, out, "fighter/captain/model/body/c03 -> fighter/captain/model/body/c05")
	require.NotContains(t, out, "fighter -> fighter")
}
