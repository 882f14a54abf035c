package argparse

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

const helpLabel = "-h, --help"

// PrintHelp writes the help text to the parser's output stream.
func (p *Parser) PrintHelp() { p.WriteHelp(p.io.Out()) }

// WriteHelp renders usage, the description and both argument listings.
func (p *Parser) WriteHelp(w io.Writer) {
	var sb strings.Builder

	sb.WriteString("Usage: " + p.usage() + "\n")
	if p.description != "" {
		sb.WriteString("\n" + p.description + "\n")
	}

	var positionals, optionals []*Entry
	for i := range p.entries {
		if e := &p.entries[i]; e.IsPositional() {
			positionals = append(positionals, e)
		} else {
			optionals = append(optionals, e)
		}
	}

	width := runewidth.StringWidth(helpLabel)
	for _, e := range p.entries {
		width = max(width, runewidth.StringWidth(entryLabel(&e)))
	}
	width += 2
	lw := lineWriter{sb: &sb, col: width, wrap: p.io.Width() - 2 - width}

	if len(positionals) > 0 {
		sb.WriteString("\n" + p.io.Bold("positional arguments:") + "\n")
		for _, e := range positionals {
			lw.line(entryLabel(e), p.entryHelp(e))
		}
	}

	sb.WriteString("\n" + p.io.Bold("optional arguments:") + "\n")
	lw.line(helpLabel, "show this help message and exit")
	for _, e := range optionals {
		lw.line(entryLabel(e), p.entryHelp(e))
	}

	fmt.Fprint(w, sb.String())
}

// usage builds "prog [-h] <optionals> <positionals>".
func (p *Parser) usage() string {
	parts := []string{p.prog, "[-h]"}
	for i := range p.entries {
		e := &p.entries[i]
		if e.IsPositional() {
			continue
		}
		flag := e.Short
		if flag == "" {
			flag = e.Long
		}
		if e.hasAction() {
			parts = append(parts, "["+flag+"]")
		} else {
			parts = append(parts, "["+flag+" "+e.nargsUsage()+"]")
		}
	}
	for i := range p.entries {
		if e := &p.entries[i]; e.IsPositional() {
			parts = append(parts, e.nargsUsage())
		}
	}
	return strings.Join(parts, " ")
}

func entryLabel(e *Entry) string {
	if e.IsPositional() {
		return e.Positional
	}
	names := make([]string, 0, 2)
	if e.Short != "" {
		names = append(names, e.Short)
	}
	if e.Long != "" {
		names = append(names, e.Long)
	}
	return strings.Join(names, ", ")
}

// entryHelp joins the help text with the choice and default annotations,
// which are dimmed on colour terminals.
func (p *Parser) entryHelp(e *Entry) string {
	parts := make([]string, 0, 3)
	if e.Help != "" {
		parts = append(parts, e.Help)
	}
	if e.hasChoices() {
		parts = append(parts, p.io.Faint("(choose from "+e.Choices.String()+")"))
	}
	if !e.Default.IsNone() {
		parts = append(parts, p.io.Faint("(default: "+e.Default.String()+")"))
	}
	return strings.Join(parts, " ")
}

// minWrap keeps help readable when the terminal is very narrow.
const minWrap = 20

// lineWriter lays out "  label<pad>help" rows, wrapping help on word
// boundaries into the help column. Widths are display columns.
type lineWriter struct {
	sb   *strings.Builder
	col  int
	wrap int
}

func (lw lineWriter) line(label, help string) {
	lw.sb.WriteString("  " + label)
	if help == "" {
		lw.sb.WriteByte('\n')
		return
	}
	lw.sb.WriteString(strings.Repeat(" ", lw.col-runewidth.StringWidth(label)))

	wrapped := wordwrap.String(help, max(lw.wrap, minWrap))
	lw.sb.WriteString(strings.ReplaceAll(wrapped, "\n", "\n"+strings.Repeat(" ", 2+lw.col)))
	lw.sb.WriteByte('\n')
}
