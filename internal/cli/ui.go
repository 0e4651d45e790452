package cli

import (
	"fmt"
	"os"

	"github.com/RMcDOttawa/goAzcamVatt"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// IsNonInteractive reports whether prompts should be skipped and defaults used.
func IsNonInteractive() bool {
	if nonInteractive {
		return true
	}
	if _, ok := os.LookupEnv("VATTFOCUS_NON_INTERACTIVE"); ok {
		return true
	}
	return !hasTTY()
}

// IsInteractive reports whether the session can prompt for user input.
func IsInteractive() bool {
	return !IsNonInteractive()
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// renderOutcome formats the one-line summary printed after a focus run
func renderOutcome(outcome goAzcamVatt.RunOutcome, start float64, final float64, positionKnown bool) string {
	label, style := outcomeDescriptor(outcome)
	line := style.Render(label)
	if positionKnown {
		line += " " + mutedStyle.Render(fmt.Sprintf("start %.3f, now %.3f", start, final))
	}
	return line
}

func outcomeDescriptor(outcome goAzcamVatt.RunOutcome) (string, lipgloss.Style) {
	switch outcome {
	case goAzcamVatt.RunCompleted:
		return "OK focus sequence completed", successStyle
	case goAzcamVatt.RunAborted:
		return "ABORTED focus sequence aborted", warningStyle
	case goAzcamVatt.RunRejected:
		return "REJECTED focus parameters not usable", warningStyle
	case goAzcamVatt.RunFaulted:
		return "FAULT focus sequence failed", errorStyle
	default:
		return "focus sequence not started", mutedStyle
	}
}
