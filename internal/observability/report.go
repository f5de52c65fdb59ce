// Package observability provides formatted output utilities for verification
// reports and rename plans.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jmallari/slotshift/internal/rename"
	"github.com/jmallari/slotshift/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxPathsToShow is the default number of offending paths to display
	maxPathsToShow = 8
)

// Printer handles formatted output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBanner(text string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, text)
	fmt.Fprintf(p.out, "└%s┘\n", border)
}

var sourceTitles = map[types.Source]string{
	types.SourcePathNames: "PATH NAMES",
	types.SourceManifest:  "MANIFEST",
	types.SourceSidecar:   "SIDECAR",
	types.SourceSpelling:  "SPELLING",
}

var reportOrder = []types.Source{
	types.SourcePathNames,
	types.SourceManifest,
	types.SourceSidecar,
	types.SourceSpelling,
}

func statusBadge(status types.Status) string {
	switch status {
	case types.StatusSuccess:
		return "✅"
	case types.StatusWarning:
		return "⚠"
	default:
		return "❌"
	}
}

// PrintReport outputs a full verification report, one section per checker.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintReport(report *types.VerificationReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Mod:   %s\n", report.ModName))
	sb.WriteString(fmt.Sprintf("Slot:  c%02d\n", report.Slot))
	sb.WriteString(fmt.Sprintf("Run:   %s", report.RunID))
	p.printBox("VERIFICATION REPORT", sb.String())

	for _, source := range reportOrder {
		findings := report.FindingsFor(source)
		if len(findings) == 0 {
			continue
		}
		fmt.Fprintf(p.out, "\n%s\n", sourceTitles[source])
		for _, f := range findings {
			fmt.Fprintf(p.out, "  %s %s\n", statusBadge(f.Status), f.Message)
			count := min(len(f.Paths), maxPathsToShow)
			for i := 0; i < count; i++ {
				fmt.Fprintf(p.out, "      - %s\n", f.Paths[i])
			}
			if len(f.Paths) > maxPathsToShow {
				fmt.Fprintf(p.out, "      ... and %d more\n", len(f.Paths)-maxPathsToShow)
			}
		}
	}

	fmt.Fprintln(p.out)
	if report.AllClear {
		p.printBanner("✅ ALL CLEAR")
	} else {
		p.printBanner("❌ ISSUES FOUND")
	}
}

// PrintBatchReport outputs a per-subdirectory summary followed by the
// aggregate outcome.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintBatchReport(report *types.BatchReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Root:  %s\n", report.Root))
	sb.WriteString(fmt.Sprintf("Mods:  %d", len(report.Entries)))
	p.printBox("BATCH VERIFICATION", sb.String())
	fmt.Fprintln(p.out)

	for _, entry := range report.Entries {
		if entry.Skipped {
			fmt.Fprintf(p.out, "  ~ %s: skipped (%s)\n", entry.Name, entry.SkipReason)
			continue
		}
		if entry.Report.AllClear {
			fmt.Fprintf(p.out, "  ✅ %s: all clear\n", entry.Name)
		} else {
			fmt.Fprintf(p.out, "  ❌ %s: issues found\n", entry.Name)
		}
	}

	fmt.Fprintln(p.out)
	switch report.Outcome {
	case types.BatchAllClear:
		p.printBanner("✅ ALL MODS CLEAR")
	case types.BatchIssues:
		p.printBanner("❌ SOME MODS HAVE ISSUES")
	default:
		p.printBanner("⚠ NO VERIFIABLE MODS FOUND")
	}
}

// PrintRenamePlan outputs the planned duplication before it is applied.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRenamePlan(plan *rename.Plan) {
	if plan == nil {
		return
	}

	renamed := plan.Renamed()
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From:  %s\n", plan.SourceRoot))
	sb.WriteString(fmt.Sprintf("To:    %s\n", plan.TargetRoot))
	sb.WriteString(fmt.Sprintf("Slot:  c%02d → c%02d\n", plan.OldSlot, plan.NewSlot))
	sb.WriteString(fmt.Sprintf("Paths: %d total, %d renamed", len(plan.Entries), len(renamed)))
	p.printBox("RENAME PLAN", sb.String())

	if len(renamed) == 0 {
		return
	}
	fmt.Fprintln(p.out)
	for _, e := range renamed {
		fmt.Fprintf(p.out, "  %s -> %s\n", e.OldRel, e.NewRel)
	}
}
