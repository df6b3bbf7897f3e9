// Package output renders command results in text, markdown, or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Mode selects the output format.
type Mode string

const (
	// ModeAuto picks text on a terminal and markdown otherwise.
	ModeAuto Mode = "auto"
	// ModeText renders styled plain text.
	ModeText Mode = "text"
	// ModeMarkdown renders pipe-friendly markdown.
	ModeMarkdown Mode = "markdown"
	// ModeJSON renders machine-readable JSON.
	ModeJSON Mode = "json"
)

// ParseMode validates a mode string. The empty string maps to ModeAuto.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeAuto:
		return ModeAuto, nil
	case ModeText, ModeMarkdown, ModeJSON:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("invalid output mode %q (want auto, text, markdown or json)", s)
	}
}

// Renderer writes command output to out and diagnostics to errOut.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styles *Styles
}

// NewRenderer builds a renderer. ModeAuto resolves against out at
// construction time.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	r := &Renderer{out: out, errOut: errOut, mode: mode}
	if r.mode == ModeAuto || r.mode == "" {
		if isTerminal(out) {
			r.mode = ModeText
		} else {
			r.mode = ModeMarkdown
		}
	}
	if r.mode == ModeText && isTerminal(out) {
		r.styles = defaultStyles()
	} else {
		r.styles = plainStyles()
	}
	return r
}

// EffectiveMode reports the resolved mode after auto-detection.
func (r *Renderer) EffectiveMode() Mode { return r.mode }

// Styles returns the active style set.
func (r *Renderer) Styles() *Styles { return r.styles }

// Writer returns the destination writer for primary output.
func (r *Renderer) Writer() io.Writer { return r.out }

func (r *Renderer) Println(a ...any) {
	fmt.Fprintln(r.out, a...)
}

func (r *Renderer) Printf(format string, a ...any) {
	fmt.Fprintf(r.out, format, a...)
}

// Success prints a confirmation line styled green in text mode.
func (r *Renderer) Success(format string, a ...any) {
	r.Println(r.styles.Success.Render(fmt.Sprintf(format, a...)))
}

// Errorf prints an error line to the error stream.
func (r *Renderer) Errorf(format string, a ...any) {
	fmt.Fprintln(r.errOut, r.styles.Error.Render(fmt.Sprintf(format, a...)))
}

// JSON writes v as indented JSON to the output stream.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
