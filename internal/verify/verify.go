// Package verify implements the slot-consistency verification engine: a set
// of independent source checkers cross-validating every slot indicator in a
// mod tree against the slot declared in the tree's own name.
package verify

import (
	"path/filepath"

	"github.com/google/uuid"

	"github.com/jmallari/slotshift/internal/fuzzy"
	"github.com/jmallari/slotshift/internal/manifest"
	"github.com/jmallari/slotshift/internal/modtree"
	"github.com/jmallari/slotshift/internal/sidecar"
	"github.com/jmallari/slotshift/internal/types"
	"github.com/jmallari/slotshift/internal/vocab"
)

// Options configures a verification run.
type Options struct {
	// Bank is the known fighter-code vocabulary. Nil skips the spelling
	// cross-check entirely.
	Bank *vocab.Bank
	// Threshold is the fuzzy-match threshold for spelling suggestions; zero
	// means fuzzy.DefaultThreshold.
	Threshold float64
}

func (o Options) threshold() float64 {
	if o.Threshold == 0 {
		return fuzzy.DefaultThreshold
	}
	return o.Threshold
}

// runContext carries the artifacts shared between the checker steps of one
// run. Later steps reuse what earlier steps loaded (the spelling check reads
// the manifest and sidecar content) but never mutate it.
type runContext struct {
	slot       int
	tree       *modtree.Tree
	manifest   *manifest.Document // nil when config.json is absent
	labels     *sidecar.LabelDocument
	indexTexts []string
	opts       Options
}

type checkerStep struct {
	source types.Source
	run    func(*runContext) ([]types.Finding, error)
}

// checkerSteps is the fixed checker order; the report is a pure fold over it.
var checkerSteps = []checkerStep{
	{types.SourcePathNames, checkPathNames},
	{types.SourceManifest, checkManifest},
	{types.SourceSidecar, checkSidecar},
	{types.SourceSpelling, checkSpelling},
}

// Mod verifies the mod tree rooted at root. The root's own name must carry a
// slot token; that failure propagates rather than becoming a finding. All
// other missing artifacts degrade to warnings or silence per checker.
func Mod(root string, opts Options) (*types.VerificationReport, error) {
	slot, err := modtree.ExtractSlot(filepath.Base(root))
	if err != nil {
		return nil, err
	}
	tree, err := modtree.Collect(root)
	if err != nil {
		return nil, err
	}

	ctx := &runContext{slot: slot, tree: tree, opts: opts}
	report := &types.VerificationReport{
		RunID:   uuid.New(),
		ModName: filepath.Base(root),
		Slot:    slot,
	}
	for _, step := range checkerSteps {
		findings, err := step.run(ctx)
		if err != nil {
			return nil, err
		}
		report.Findings = append(report.Findings, findings...)
	}

	// Spelling suggestions never count against the verdict.
	report.AllClear = !report.HasFailure(types.SourcePathNames) &&
		!report.HasFailure(types.SourceManifest) &&
		!report.HasFailure(types.SourceSidecar)
	return report, nil
}
