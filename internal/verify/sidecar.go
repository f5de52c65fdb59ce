// Package verify implements the slot-consistency verification engine.
package verify

import (
	"fmt"

	"github.com/jmallari/slotshift/internal/modtree"
	"github.com/jmallari/slotshift/internal/sidecar"
	"github.com/jmallari/slotshift/internal/types"
)

// checkSidecar correlates the msg_name.xmsbt labels with the slot-to-index
// mapping in ui_chara_db.prcxml. The index value defaults to 0 when a
// readable index document lacks the slot's edit, but to the slot itself when
// no index document exists at all.
func checkSidecar(ctx *runContext) ([]types.Finding, error) {
	labelRel, hasLabels := ctx.tree.FindFirstFile(sidecar.LabelDocumentName)
	if !hasLabels {
		if binRel, hasBinary := ctx.tree.FindFirstFile(sidecar.BinaryLabelName); hasBinary {
			return []types.Finding{{
				Status:  types.StatusWarning,
				Source:  types.SourceSidecar,
				Message: "msg_name.msbt present but not readable; cannot verify name text",
				Paths:   []string{binRel},
			}}, nil
		}
		return nil, nil
	}

	labels, err := sidecar.ParseLabelDocument(ctx.tree.Abs(labelRel))
	if err != nil {
		return nil, err
	}
	ctx.labels = labels

	var findings []types.Finding
	indexValue := ctx.slot
	if indexRel, ok := ctx.tree.FindFirstFile(sidecar.IndexDocumentName); ok {
		indexDoc, err := sidecar.ParseIndexDocument(ctx.tree.Abs(indexRel))
		if err != nil {
			return nil, err
		}
		ctx.indexTexts = indexDoc.Texts()
		if value, ok := indexDoc.IndexFor(ctx.slot); ok {
			indexValue = value
		} else {
			indexValue = 0
			findings = append(findings, types.Finding{
				Status:  types.StatusWarning,
				Source:  types.SourceSidecar,
				Message: fmt.Sprintf("ui_chara_db.prcxml has no n0%d_index edit; assuming default index 0", ctx.slot),
			})
		}
	} else if binRel, ok := findBinaryIndex(ctx.tree); ok {
		findings = append(findings, types.Finding{
			Status:  types.StatusWarning,
			Source:  types.SourceSidecar,
			Message: "binary param file present but not readable; cannot verify index",
			Paths:   []string{binRel},
		})
	} else {
		findings = append(findings, types.Finding{
			Status:  types.StatusWarning,
			Source:  types.SourceSidecar,
			Message: fmt.Sprintf("no index document found despite msg_name.xmsbt; assuming index %s", modtree.PaddedNumeral(ctx.slot)),
		})
	}

	token := modtree.PaddedNumeral(indexValue)
	var correct, wrong []string
	for _, entry := range labels.Entries {
		if modtree.ContainsStandalone(entry.Label, token) {
			correct = append(correct, entry.Label)
		} else {
			wrong = append(wrong, entry.Label)
		}
	}
	if len(wrong) > 0 {
		findings = append(findings, types.Finding{
			Status:  types.StatusWarning,
			Source:  types.SourceSidecar,
			Message: fmt.Sprintf("labels without the %s index token", token),
			Paths:   wrong,
		})
	}
	if len(correct) == 0 {
		findings = append(findings, types.Finding{
			Status:  types.StatusFailure,
			Source:  types.SourceSidecar,
			Message: fmt.Sprintf("no label carries the expected index token %q", token),
		})
	} else {
		findings = append(findings, types.Finding{
			Status:  types.StatusSuccess,
			Source:  types.SourceSidecar,
			Message: fmt.Sprintf("%d label(s) carry index token %q", len(correct), token),
		})
	}
	return findings, nil
}

func findBinaryIndex(tree *modtree.Tree) (string, bool) {
	if rel, ok := tree.FindFirstFile(sidecar.BinaryIndexName); ok {
		return rel, true
	}
	return tree.FindFirstFile(sidecar.BinaryIndexXName)
}
