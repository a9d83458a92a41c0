// Package terminal renders status output for the wrangler commands: styled
// one-line messages plus a spinner for long-running remote calls.
package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	workingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// Out and ErrOut are the message destinations; tests swap them for buffers.
var (
	Out    io.Writer = os.Stdout
	ErrOut io.Writer = os.Stderr
)

// Message prints an unstyled line.
func Message(text string) {
	fmt.Fprintln(Out, text)
}

// Working announces the start of a longer operation.
func Working(text string) {
	fmt.Fprintln(Out, workingStyle.Render(fmt.Sprintf("%s %s", EmojiSwirl, text)))
}

// Success reports a completed operation.
func Success(text string) {
	fmt.Fprintln(Out, successStyle.Render(fmt.Sprintf("%s %s", EmojiSparkles, text)))
}

// Warn prints a warning line to stderr.
func Warn(text string) {
	fmt.Fprintln(ErrOut, warnStyle.Render(fmt.Sprintf("%s %s", EmojiWarn, text)))
}
