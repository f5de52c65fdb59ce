// Package types provides type definitions for structured data used throughout the slotshift system.
package types

// BatchOutcome is the aggregate verdict of a batch verification run.
type BatchOutcome string

// Batch outcomes. A batch with zero runnable subdirectories is inconclusive,
// not vacuously clear.
const (
	BatchAllClear     BatchOutcome = "all_clear"
	BatchIssues       BatchOutcome = "issues"
	BatchInconclusive BatchOutcome = "inconclusive"
)

// BatchEntry is the result for one immediate subdirectory of the batch root.
// A subdirectory without a slot token in its name is recorded as skipped
// rather than failing the whole batch.
type BatchEntry struct {
	Name       string              `json:"name"`
	Skipped    bool                `json:"skipped"`
	SkipReason string              `json:"skip_reason,omitempty"`
	Report     *VerificationReport `json:"report,omitempty"`
}

// BatchReport aggregates per-subdirectory results, keyed and ordered by
// subdirectory name.
type BatchReport struct {
	Root    string       `json:"root"`
	Entries []BatchEntry `json:"entries"`
	Outcome BatchOutcome `json:"outcome"`
}
