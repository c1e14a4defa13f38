// Package output renders command results for terminals, pipes and
// machine consumers.
//
// Output adapts to environment:
//   - Terminal: Styled output with colors
//   - Piped/Scripted: Markdown format
//   - JSON: Machine-readable format
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// OutputMode selects how results are rendered.
type OutputMode string

// Output modes.
const (
	ModeAuto     OutputMode = "auto"
	ModeText     OutputMode = "text"
	ModeMarkdown OutputMode = "markdown"
	ModeJSON     OutputMode = "json"
)

// Mode converts a user-supplied format name into an OutputMode.
// Unknown names fall back to ModeAuto.
func Mode(s string) OutputMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text":
		return ModeText
	case "markdown", "md":
		return ModeMarkdown
	case "json":
		return ModeJSON
	default:
		return ModeAuto
	}
}

// Renderer writes results to an output and an error stream.
type Renderer struct {
	out      io.Writer
	errOut   io.Writer
	mode     OutputMode
	isTTY    bool
	errTTY   bool
	styles   Styles
	errStyle Styles
}

// NewRenderer creates a renderer, detecting whether out and errOut are terminals.
func NewRenderer(out, errOut io.Writer, mode OutputMode) *Renderer {
	return newRenderer(out, errOut, isTerminal(out), isTerminal(errOut), mode)
}

// NewRendererWithTTY creates a renderer with an explicit TTY state for both
// streams. Used by tests.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode OutputMode) *Renderer {
	return newRenderer(out, errOut, isTTY, isTTY, mode)
}

func newRenderer(out, errOut io.Writer, isTTY, errTTY bool, mode OutputMode) *Renderer {
	return &Renderer{
		out:      out,
		errOut:   errOut,
		mode:     mode,
		isTTY:    isTTY,
		errTTY:   errTTY,
		styles:   NewStyles(lipglossRenderer(out, isTTY)),
		errStyle: NewStyles(lipglossRenderer(errOut, errTTY)),
	}
}

// lipglossRenderer returns a lipgloss renderer for w. Non-terminals get the
// Ascii profile so no escape codes are written.
func lipglossRenderer(w io.Writer, tty bool) *lipgloss.Renderer {
	if !tty {
		return lipgloss.NewRenderer(w, termenv.WithProfile(termenv.Ascii))
	}
	return lipgloss.NewRenderer(w)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// EffectiveMode resolves ModeAuto: text on a terminal, markdown otherwise.
func (r *Renderer) EffectiveMode() OutputMode {
	if r.mode != ModeAuto && r.mode != "" {
		return r.mode
	}
	if r.isTTY {
		return ModeText
	}
	return ModeMarkdown
}

// IsTTY reports whether the output stream is a terminal.
func (r *Renderer) IsTTY() bool { return r.isTTY }

// Styles returns the styles for the output stream.
func (r *Renderer) Styles() Styles { return r.styles }

// Out returns the output stream.
func (r *Renderer) Out() io.Writer { return r.out }

// Println writes a line to the output stream.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Printf writes formatted text to the output stream.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}

// Success writes a success line to the output stream.
func (r *Renderer) Success(msg string) {
	if r.EffectiveMode() == ModeMarkdown {
		r.Println("**" + msg + "**")
		return
	}
	r.Println(r.styles.Success.Render("✓ " + msg))
}

// Warning writes a warning line to the output stream.
func (r *Renderer) Warning(msg string) {
	r.Println(r.styles.Warning.Render(msg))
}

// Error writes msg to the error stream. The text is written unchanged;
// color is only added when the error stream is a terminal.
func (r *Renderer) Error(msg string) {
	if r.errTTY {
		msg = r.errStyle.Error.Render(msg)
	}
	_, _ = fmt.Fprintln(r.errOut, msg)
}

// JSON writes v as indented JSON to the output stream.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
