// Package report renders the reconciliation report.
//
// The layout follows the original table: an ordinal column, the
// snippet name, a flag summary and the source file name, under an
// underlined header. Styling is disabled automatically when stdout is
// not a terminal.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/custodia-labs/snipper-cli/internal/core/domain"
	"github.com/custodia-labs/snipper-cli/internal/core/ports/driving"
)

const spacer = "    "

// Renderer writes reconciliation reports to a writer.
type Renderer struct {
	w      io.Writer
	styled bool

	header  lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

// New creates a renderer writing to w. Styling is applied only when
// colour is requested and w is a terminal.
func New(w io.Writer, colour bool) *Renderer {
	styled := false
	if f, ok := w.(*os.File); ok {
		styled = colour && term.IsTerminal(int(f.Fd()))
	}
	return &Renderer{
		w:       w,
		styled:  styled,
		header:  lipgloss.NewStyle().Underline(true),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		muted:   lipgloss.NewStyle().Faint(true),
	}
}

// Render writes the snippet table followed by any diagnostics.
func (r *Renderer) Render(result *driving.RunResult) {
	r.renderTable(result.Snippets)
	r.renderDiagnostics(result.Diagnostics)
}

// renderTable prints one row per snippet, columns padded to fit the
// widest cell.
func (r *Renderer) renderTable(snippets []domain.Snippet) {
	const (
		nameHeading = "Snippet name:"
		flagHeading = "Flags:"
		fileHeading = "Source file:"
	)

	countWidth := len(fmt.Sprintf("%d.:", len(snippets)))
	nameWidth := len(nameHeading)
	flagWidth := len(flagHeading)

	for _, snip := range snippets {
		if len(snip.Name) > nameWidth {
			nameWidth = len(snip.Name)
		}
	}
	if len(flagSummary(domain.Snippet{})) > flagWidth {
		flagWidth = len(flagSummary(domain.Snippet{}))
	}

	header := fmt.Sprintf("%-*s%s%-*s%s%-*s%s%s",
		countWidth, "", spacer,
		nameWidth, nameHeading, spacer,
		flagWidth, flagHeading, spacer,
		fileHeading)
	fmt.Fprintln(r.w, r.style(r.header, header))

	for i, snip := range snippets {
		fileName := ""
		if snip.SourceFile != "" {
			fileName = filepath.Base(snip.SourceFile)
		}
		fmt.Fprintf(r.w, "%-*s%s%-*s%s%-*s%s%s\n",
			countWidth, fmt.Sprintf("%d.:", i+1), spacer,
			nameWidth, snip.Name, spacer,
			flagWidth, flagSummary(snip), spacer,
			fileName)
	}

	fmt.Fprintf(r.w, "\nTotal: %d snippets\n", len(snippets))
}

// renderDiagnostics prints collected diagnostics after the table.
func (r *Renderer) renderDiagnostics(diags []domain.Diagnostic) {
	if len(diags) == 0 {
		return
	}

	fmt.Fprintln(r.w)
	for _, diag := range diags {
		line := fmt.Sprintf("[%s] %s", strings.ToUpper(string(diag.Severity)), diag.Message)
		switch diag.Severity {
		case domain.SeverityError:
			line = r.style(r.failure, line)
		case domain.SeverityWarning:
			line = r.style(r.warning, line)
		case domain.SeverityInfo:
			line = r.style(r.muted, line)
		}
		fmt.Fprintln(r.w, line)
	}
}

// RenderExtract writes the per-snippet outcomes of the write phase.
func (r *Renderer) RenderExtract(report *driving.ExtractReport) {
	written := 0
	for _, outcome := range report.Outcomes {
		switch outcome.Status {
		case driving.ExtractWritten:
			written++
			fmt.Fprintf(r.w, "wrote %s\n", outcome.Path)
		case driving.ExtractInactiveKept:
			fmt.Fprintln(r.w, r.style(r.muted, fmt.Sprintf("kept %s (%v)", outcome.Path, outcome.Err)))
		case driving.ExtractNoSource:
			fmt.Fprintln(r.w, r.style(r.warning, fmt.Sprintf("skipped %s: %v", outcome.Name, outcome.Err)))
		case driving.ExtractFailed:
			fmt.Fprintln(r.w, r.style(r.failure, fmt.Sprintf("failed %s: %v", outcome.Name, outcome.Err)))
		}
	}
	fmt.Fprintf(r.w, "\nExtracted %d of %d snippets\n", written, len(report.Outcomes))
}

// flagSummary compacts the four flags into fixed-width letters, e.g.
// "S-FA" for a snippet found in source, materialised and active.
func flagSummary(snip domain.Snippet) string {
	letter := func(set bool, r byte) byte {
		if set {
			return r
		}
		return '-'
	}
	return string([]byte{
		letter(snip.FoundInSource, 'S'),
		letter(snip.FoundInDocument, 'D'),
		letter(snip.Materialized, 'F'),
		letter(snip.Active, 'A'),
	})
}

// style applies st when styling is enabled.
func (r *Renderer) style(st lipgloss.Style, s string) string {
	if !r.styled {
		return s
	}
	return st.Render(s)
}
