// Package output renders command results in text, markdown, or JSON.
// Mode "auto" picks text on a terminal and markdown when piped, so
// scripted consumers get stable output without extra flags.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Mode selects the output format.
type Mode string

const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// ValidModes lists the accepted output mode names.
func ValidModes() []string {
	return []string{string(ModeAuto), string(ModeText), string(ModeMarkdown), string(ModeJSON)}
}

// Renderer writes formatted output for CLI commands.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styles Styles
}

// NewRenderer creates a renderer. An empty mode behaves like auto.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	return &Renderer{out: out, errOut: errOut, mode: mode, styles: DefaultStyles()}
}

// EffectiveMode resolves auto to a concrete mode based on whether stdout
// is a terminal.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if f, ok := r.out.(*os.File); ok {
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			return ModeText
		}
	}
	return ModeMarkdown
}

// Styles returns the lipgloss styles for text mode.
func (r *Renderer) Styles() Styles { return r.styles }

// Out returns the destination writer.
func (r *Renderer) Out() io.Writer { return r.out }

// Println writes a line to the output stream.
func (r *Renderer) Println(a ...any) {
	fmt.Fprintln(r.out, a...)
}

// Printf writes formatted text to the output stream.
func (r *Renderer) Printf(format string, a ...any) {
	fmt.Fprintf(r.out, format, a...)
}

// Errorf writes formatted text to the error stream.
func (r *Renderer) Errorf(format string, a ...any) {
	fmt.Fprintf(r.errOut, format, a...)
}

// Header writes a section heading. Text mode styles it, markdown mode
// emits the matching number of hashes.
func (r *Renderer) Header(level int, text string) {
	switch r.EffectiveMode() {
	case ModeMarkdown:
		for i := 0; i < level; i++ {
			fmt.Fprint(r.out, "#")
		}
		fmt.Fprintf(r.out, " %s\n\n", text)
	default:
		style := r.styles.Header1
		if level > 1 {
			style = r.styles.Header2
		}
		fmt.Fprintln(r.out, style.Render(text))
	}
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
