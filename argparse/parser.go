// Package argparse declares command-line arguments through a fluent builder
// and parses an argument vector into a typed result keyed by destination.
//
// Declarations mirror the scripting-language argparse module: positional
// and optional arguments, multiplicity ("nargs"), store actions, choices,
// defaults and const values.
//
//	p := argparse.New(argparse.WithDescription("greeter"))
//	p.Argument().Positional("name").Help("who to greet").Commit()
//	p.Argument().Short("-c").Long("--count").Type(argparse.KindInt).Default(argparse.Int(1)).Commit()
//	res, err := p.Parse(os.Args)
//
// By default any failure prints the help text and "[error]: <message>" and
// exits with status 1. WithErrorMode(ModeReturn) returns an *Error instead.
package argparse

import (
	"os"
	"path/filepath"

	argio "github.com/dzonerzy/go-argparse/io"
)

// ErrorMode chooses what a failure does after it has been reported.
type ErrorMode int

const (
	// ModeExit terminates the process with the mapped exit code.
	ModeExit ErrorMode = iota
	// ModeReturn hands the *Error back to the caller.
	ModeReturn
)

// Option configures a Parser.
type Option func(*Parser)

// WithErrorMode selects exit or return behaviour for failures.
func WithErrorMode(m ErrorMode) Option { return func(p *Parser) { p.mode = m } }

// WithIO routes help and diagnostics through io.
func WithIO(io *argio.IOManager) Option {
	return func(p *Parser) {
		if io != nil {
			p.io = io
		}
	}
}

// WithExitFunc replaces os.Exit, mainly for tests and embedding.
func WithExitFunc(fn func(int)) Option {
	return func(p *Parser) {
		if fn != nil {
			p.exit = fn
		}
	}
}

// WithDescription sets the text printed under the usage line.
func WithDescription(text string) Option { return func(p *Parser) { p.description = text } }

// WithProg fixes the program name shown in usage. Without it the base name
// of the first element of the parsed vector is used.
func WithProg(name string) Option { return func(p *Parser) { p.prog = name; p.progSet = true } }

// WithSuggestions toggles "did you mean" hints on unrecognized flags.
func WithSuggestions(enabled bool) Option { return func(p *Parser) { p.suggest = enabled } }

// Parser is the argument registry plus parse entry points. It is not safe
// for concurrent use; sequential parses are independent.
type Parser struct {
	prog        string
	progSet     bool
	description string

	entries     []Entry
	shorts      map[string]struct{}
	longs       map[string]struct{}
	positionals map[string]struct{}

	mode      ErrorMode
	io        *argio.IOManager
	logger    *argio.Logger
	exit      func(int)
	exitCodes *ExitCodeManager
	suggest   bool
}

// New creates an empty parser.
func New(opts ...Option) *Parser {
	p := &Parser{
		prog:        filepath.Base(os.Args[0]),
		shorts:      make(map[string]struct{}),
		longs:       make(map[string]struct{}),
		positionals: make(map[string]struct{}),
		io:          argio.New(),
		exit:        os.Exit,
		exitCodes:   newExitCodeManager(),
		suggest:     true,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.io.IsTTY() {
		p.io.EnableVirtualTerminal()
	}
	p.logger = argio.NewLogger(p.io)
	return p
}

// ExitCodes exposes the exit-code mapping used in ModeExit.
func (p *Parser) ExitCodes() *ExitCodeManager { return p.exitCodes }

// IO returns the parser's IO manager.
func (p *Parser) IO() *argio.IOManager { return p.io }

// Prog returns the program name used in usage.
func (p *Parser) Prog() string { return p.prog }

// Entries returns a copy of the committed declarations in order.
func (p *Parser) Entries() []Entry { return append([]Entry(nil), p.entries...) }

func (p *Parser) taken(names map[string]struct{}, name string) bool {
	_, ok := names[name]
	return ok
}

func (p *Parser) register(e Entry) {
	if e.Short != "" {
		p.shorts[e.shortKey()] = struct{}{}
	}
	if e.Long != "" {
		p.longs[e.longKey()] = struct{}{}
	}
	if e.Positional != "" {
		p.positionals[e.Positional] = struct{}{}
	}
	p.entries = append(p.entries, e)
}

// fail is the single reporting routine: help to the output stream, the
// message to the diagnostic stream, then exit or return per mode.
func (p *Parser) fail(err *Error) error {
	p.WriteHelp(p.io.Out())
	p.logger.Error("%s", err.Error())
	if p.mode == ModeExit {
		p.exit(p.exitCodes.Resolve(err))
	}
	return err
}

// Parse consumes args (args[0] is the program name) and returns the
// resolved arguments. Only arguments that were matched, defaulted or
// resolved from an action appear in the result.
func (p *Parser) Parse(args []string) (*Result, error) {
	if !p.progSet && len(args) > 0 && args[0] != "" {
		p.prog = filepath.Base(args[0])
	}

	c := newConsumer(p, args)
	if err := c.run(); err != nil {
		return nil, err
	}
	if err := c.finalize(); err != nil {
		return nil, err
	}
	return c.result(), nil
}

// ParseStrings is Parse with every value rendered as its display string.
func (p *Parser) ParseStrings(args []string) (map[string]string, error) {
	res, err := p.Parse(args)
	if err != nil {
		return nil, err
	}
	return res.Strings(), nil
}
