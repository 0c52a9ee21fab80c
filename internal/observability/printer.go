// Package observability provides progress and summary output for the validate-workflows CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jonathan/workflow-validator/internal/types"
)

// Printer writes per-file progress and the final batch summary
type Printer struct {
	out io.Writer

	okStyle     lipgloss.Style
	failStyle   lipgloss.Style
	headerStyle lipgloss.Style
}

// NewPrinter creates a new Printer that writes to the given writer.
// Colors are only emitted when out is a terminal.
func NewPrinter(out io.Writer) *Printer {
	if out == nil {
		out = io.Discard
	}
	renderer := lipgloss.NewRenderer(out)
	return &Printer{
		out:         out,
		okStyle:     renderer.NewStyle().Foreground(lipgloss.Color("#5FAF5F")),
		failStyle:   renderer.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		headerStyle: renderer.NewStyle().Bold(true),
	}
}

// PrintChecking announces the file about to be checked.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintChecking(path string) {
	fmt.Fprintf(p.out, "Validating %s\n", path)
}

// PrintFileResult prints the verdict for a single file.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintFileResult(res types.FileResult) {
	if res.Passed {
		fmt.Fprintf(p.out, "  %s\n", p.okStyle.Render("ok"))
		return
	}
	fmt.Fprintf(p.out, "  %s\n", p.failStyle.Render("FAILED"))
}

// PrintSummary prints the failed files in input order followed by the final
// verdict, or a single success line when nothing failed.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSummary(result *types.BatchResult) {
	failed := result.Failed()
	if len(failed) == 0 {
		fmt.Fprintf(p.out, "%s\n", p.okStyle.Render(
			fmt.Sprintf("All workflow files validated properly (%d checked)", result.Total())))
		return
	}

	var sb strings.Builder
	sb.WriteString(p.headerStyle.Render("The following workflow files failed validation:"))
	sb.WriteString("\n")
	for _, path := range failed {
		sb.WriteString(fmt.Sprintf(" - %s\n", path))
	}
	fmt.Fprint(p.out, sb.String())
	fmt.Fprintf(p.out, "%s\n", p.failStyle.Render(
		fmt.Sprintf("Validation failed for %d of %d workflow file(s)", len(failed), result.Total())))
}
