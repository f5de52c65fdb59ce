package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindingsFor(t *testing.T) {
	report := &VerificationReport{
		Findings: []Finding{
			{Status: StatusSuccess, Source: SourcePathNames, Message: "a"},
			{Status: StatusWarning, Source: SourceManifest, Message: "b"},
			{Status: StatusFailure, Source: SourcePathNames, Message: "c"},
		},
	}

	pathFindings := report.FindingsFor(SourcePathNames)
	assert.Len(t, pathFindings, 2)
	assert.Equal(t, "a", pathFindings[0].Message)
	assert.Equal(t, "c", pathFindings[1].Message)

	assert.Empty(t, report.FindingsFor(SourceSpelling))
}

func TestHasFailure(t *testing.T) {
	report := &VerificationReport{
		Findings: []Finding{
			{Status: StatusWarning, Source: SourceSidecar},
			{Status: StatusFailure, Source: SourceManifest},
		},
	}

	assert.True(t, report.HasFailure(SourceManifest))
	assert.False(t, report.HasFailure(SourceSidecar), "warnings are not failures")
	assert.False(t, report.HasFailure(SourcePathNames))
}
