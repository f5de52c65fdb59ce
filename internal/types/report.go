// Package types provides type definitions for structured data used throughout the slotshift system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/google/uuid"

// Status classifies a single verification finding.
type Status string

// Finding statuses, from harmless to blocking.
const (
	StatusSuccess Status = "success"
	StatusWarning Status = "warning"
	StatusFailure Status = "failure"
)

// Source identifies which checker produced a finding.
type Source string

// Checker sources in report order.
const (
	SourcePathNames Source = "path-names"
	SourceManifest  Source = "manifest"
	SourceSidecar   Source = "sidecar"
	SourceSpelling  Source = "spelling"
)

// Finding represents one verification outcome: a status, the checker that
// produced it, a human-readable message, and optionally the offending paths
// or values.
type Finding struct {
	Status  Status   `json:"status"`
	Source  Source   `json:"source"`
	Message string   `json:"message"`
	Paths   []string `json:"paths,omitempty"`
}

// VerificationReport aggregates every finding from one run over a single mod
// tree. AllClear covers only the failure-bearing sources; spelling suggestions
// never affect it.
type VerificationReport struct {
	RunID    uuid.UUID `json:"run_id"`
	ModName  string    `json:"mod_name"`
	Slot     int       `json:"slot"`
	Findings []Finding `json:"findings"`
	AllClear bool      `json:"all_clear"`
}

// FindingsFor returns the findings produced by one checker, in report order.
func (r *VerificationReport) FindingsFor(source Source) []Finding {
	var findings []Finding
	for _, f := range r.Findings {
		if f.Source == source {
			findings = append(findings, f)
		}
	}
	return findings
}

// HasFailure reports whether a checker produced at least one FAILURE finding.
func (r *VerificationReport) HasFailure(source Source) bool {
	for _, f := range r.Findings {
		if f.Source == source && f.Status == StatusFailure {
			return true
		}
	}
	return false
}
