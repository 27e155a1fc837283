package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/custodia-labs/blast-util/internal/core/ports/driven"
)

// Ensure ConsoleReporter implements the interface.
var _ driven.Reporter = (*ConsoleReporter)(nil)

// ConsoleReporter prints pipeline progress lines.
// Lines are styled only when the writer is a terminal.
type ConsoleReporter struct {
	w      io.Writer
	styled bool

	progress lipgloss.Style
	path     lipgloss.Style
	done     lipgloss.Style
}

// NewConsoleReporter creates a reporter writing to w.
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{
		w:        w,
		styled:   isTerminal(w),
		progress: lipgloss.NewStyle().Foreground(lipgloss.Color("#89B4FA")),
		path:     lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		done: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A6E3A1")),
	}
}

// Searching announces the query about to be submitted.
func (r *ConsoleReporter) Searching(sequenceID string) {
	r.println(r.progress, fmt.Sprintf("Running BLAST for sequence %s...", sequenceID))
}

// Writing announces the store a query's rows are written to.
func (r *ConsoleReporter) Writing(storePath string) {
	r.println(r.path, fmt.Sprintf("Writing results to %s...", storePath))
}

// Done announces the end of the run.
func (r *ConsoleReporter) Done() {
	r.println(r.done, "Done.")
}

func (r *ConsoleReporter) println(style lipgloss.Style, line string) {
	if r.styled {
		line = style.Render(line)
	}
	fmt.Fprintln(r.w, line)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
