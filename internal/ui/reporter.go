// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Colored status output

package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the colors used for status lines
type Styles struct {
	Info    lipgloss.Style
	Accent  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles returns the bright ANSI palette bound to a renderer
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Info:    r.NewStyle().Foreground(lipgloss.Color("12")),
		Accent:  r.NewStyle().Foreground(lipgloss.Color("14")),
		Success: r.NewStyle().Foreground(lipgloss.Color("10")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("9")),
		Warning: r.NewStyle().Foreground(lipgloss.Color("11")),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Reporter prints user-facing build status
type Reporter struct {
	out    io.Writer
	styles Styles
}

// NewReporter creates a reporter whose color profile follows out
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{
		out:    out,
		styles: NewStyles(lipgloss.NewRenderer(out)),
	}
}

// Building announces the project being built
func (r *Reporter) Building(project string) {
	fmt.Fprintf(r.out, "\n%s %s\n", r.styles.Info.Render("Building"), r.styles.Accent.Render(project))
}

// Launched reports the exit code and duration of the build tool
func (r *Reporter) Launched(tool string, exitCode int32, duration string) {
	code := r.styles.Success
	if exitCode != 0 {
		code = r.styles.Error
	}
	fmt.Fprintf(r.out, "%s returned: %s after %s\n",
		tool, code.Render(fmt.Sprint(exitCode)), r.styles.Accent.Render(duration))
}

// Copying announces a publish copy
func (r *Reporter) Copying(src, dst string) {
	fmt.Fprintf(r.out, "%s %s %s %s\n", r.styles.Muted.Render("Copying"), src, r.styles.Muted.Render("to"), dst)
}

// CopyFailed reports a non-fatal publish error
func (r *Reporter) CopyFailed(err error) {
	fmt.Fprintln(r.out, r.styles.Error.Render(err.Error()))
}

// Failure prints a terminal failure message
func (r *Reporter) Failure(msg string) {
	fmt.Fprintf(r.out, "\n%s\n", r.styles.Error.Render(msg))
}

// Detail prints supporting text under a failure, such as an install guide
func (r *Reporter) Detail(msg string) {
	fmt.Fprintln(r.out, r.styles.Muted.Render(msg))
}

// PressKey prompts before waiting for a keypress
func (r *Reporter) PressKey() {
	fmt.Fprint(r.out, r.styles.Warning.Render("Press any key to exit"))
}

// Success prints a terminal success message
func (r *Reporter) Success(msg string) {
	fmt.Fprintf(r.out, "\n%s\n", r.styles.Success.Render(msg))
}

// Closing announces the delay before a temporary console closes
func (r *Reporter) Closing() {
	fmt.Fprintln(r.out, r.styles.Muted.Render("Closing..."))
}
