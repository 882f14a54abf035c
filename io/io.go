// Package argio holds the terminal plumbing used by the argparse package:
// the output/diagnostic writers, colour capability detection, ANSI styles and
// a small levelled logger for diagnostics.
package argio

import (
	stdio "io"
	"os"
	"runtime"
	"strings"
)

// platformIO is implemented per OS in io_unix.go and io_windows.go
type platformIO interface {
	isTerminal(*os.File) bool
	termSize(*os.File) (width, height int, ok bool)
	enableVirtualTerminal() bool
	vtEnabled() bool
}

// IOManager centralizes the streams help and diagnostics are written to,
// together with the terminal capabilities that decide whether they are styled.
type IOManager struct {
	out stdio.Writer
	err stdio.Writer

	forceColor bool
	noColor    bool

	p platformIO
}

// New returns a manager bound to process stdout/stderr.
func New() *IOManager {
	return &IOManager{out: os.Stdout, err: os.Stderr, p: newPlatformIO()}
}

// WithOut sets the standard output writer and returns the manager for chaining.
func (m *IOManager) WithOut(w stdio.Writer) *IOManager { m.out = w; return m }

// WithErr sets the diagnostic writer and returns the manager for chaining.
func (m *IOManager) WithErr(w stdio.Writer) *IOManager { m.err = w; return m }

// ForceColor forces color output on, regardless of environment.
func (m *IOManager) ForceColor() *IOManager { m.forceColor = true; m.noColor = false; return m }

// NoColor disables color output, regardless of environment.
func (m *IOManager) NoColor() *IOManager { m.noColor = true; m.forceColor = false; return m }

// ColorAuto uses environment heuristics to determine color support.
func (m *IOManager) ColorAuto() *IOManager { m.noColor = false; m.forceColor = false; return m }

// Out returns the configured standard output writer.
func (m *IOManager) Out() stdio.Writer { return m.out }

// Err returns the configured diagnostic writer.
func (m *IOManager) Err() stdio.Writer { return m.err }

// IsTTY reports whether the output writer is a terminal. Writers that are not
// *os.File (buffers in tests, pipes wrapped by callers) never are.
func (m *IOManager) IsTTY() bool { return m.isTerminal(m.out) }

func (m *IOManager) isTerminal(w stdio.Writer) bool {
	f, ok := w.(*os.File)
	return ok && m.p.isTerminal(f)
}

// Width returns the terminal width used to wrap help text.
func (m *IOManager) Width() int {
	if f, ok := m.out.(*os.File); ok {
		if w, _, ok := m.p.termSize(f); ok && w > 0 {
			return w
		}
	}
	if w, _ := fallbackTermSizeFromEnv(); w > 0 {
		return w
	}
	return 80
}

// SupportsColor reports whether ANSI sequences should be emitted on the
// output writer.
func (m *IOManager) SupportsColor() bool { return m.colorLevel(m.out) > 0 }

// ColorLevel returns 0 for none, 1 for basic, 2 for 256 colors, and 3 for
// truecolor, as seen by the output writer.
func (m *IOManager) ColorLevel() int { return m.colorLevel(m.out) }

// ErrColorLevel is ColorLevel for the diagnostic writer, which may be
// redirected while the output is a terminal.
func (m *IOManager) ErrColorLevel() int { return m.colorLevel(m.err) }

func (m *IOManager) colorLevel(w stdio.Writer) int {
	if m.noColor || os.Getenv("NO_COLOR") != "" {
		return 0
	}
	if !m.forceColor && os.Getenv("FORCE_COLOR") == "" {
		if !m.isTerminal(w) {
			return 0
		}
		if goos() == "windows" {
			if !m.p.vtEnabled() {
				return 0
			}
		} else if t := os.Getenv("TERM"); t == "" || t == "dumb" {
			return 0
		}
	}
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return 3
	}
	if strings.Contains(os.Getenv("TERM"), "256color") {
		return 2
	}
	return 1
}

// EnableVirtualTerminal tries to enable ANSI processing on Windows consoles
func (m *IOManager) EnableVirtualTerminal() bool { return m.p.enableVirtualTerminal() }

// Bold returns s in bold when color is supported; otherwise s unchanged.
func (m *IOManager) Bold(s string) string { return NewStyle().Bold().Sprint(m, s) }

// Faint returns s in faint intensity when supported; otherwise s unchanged.
func (m *IOManager) Faint(s string) string { return NewStyle().Faint().Sprint(m, s) }

func goos() string {
	if v := os.Getenv("ARGPARSE_GOOS"); v != "" {
		return v
	}
	return runtime.GOOS
}
