package argparse

import (
	"strings"

	"github.com/dzonerzy/go-argparse/internal/intern"
)

// EntryBuilder accumulates one argument declaration. Every call validates
// immediately; the first failure is reported through the parser and sticks,
// so later calls are ignored and Commit returns it without registering
// anything.
type EntryBuilder struct {
	parser    *Parser
	entry     Entry
	err       *Error
	committed bool
}

// Argument starts a new declaration.
func (p *Parser) Argument() *EntryBuilder {
	return &EntryBuilder{parser: p}
}

// AddArgument declares a long string option with a string default.
func (p *Parser) AddArgument(long, def, help string) error {
	return p.Argument().Long(long).Default(String(def)).Help(help).Commit()
}

// Err returns the builder's sticky error, if any.
func (b *EntryBuilder) Err() error {
	if b.err == nil {
		return nil
	}
	return b.err
}

func (b *EntryBuilder) fail(t ErrorType, format string, args ...any) *EntryBuilder {
	if b.err != nil {
		return b
	}
	b.err = newError(t, b.name(), format, args...)
	b.parser.fail(b.err)
	return b
}

// name identifies the declaration in messages before a key exists.
func (b *EntryBuilder) name() string {
	switch {
	case b.entry.Positional != "":
		return b.entry.Positional
	case b.entry.Long != "":
		return b.entry.Long
	case b.entry.Short != "":
		return b.entry.Short
	}
	return b.entry.Dest
}

// agree records k as the entry's kind, or fails if a different kind was
// already established by Type, Default, Const or Choices.
func (b *EntryBuilder) agree(k Kind, what string) bool {
	k = k.Elem()
	if k == KindNone {
		return true
	}
	if b.entry.Kind == KindNone {
		b.entry.Kind = k
		return true
	}
	if b.entry.Kind != k {
		b.fail(ErrorTypeKindMismatch, "argument %s: %s of kind %s conflicts with kind %s",
			b.name(), what, k, b.entry.Kind)
		return false
	}
	return true
}

// Short sets the single-dash flag, e.g. "-v".
func (b *EntryBuilder) Short(name string) *EntryBuilder {
	if b.err != nil {
		return b
	}
	switch {
	case len(name) < 2 || name[0] != '-' || name[1] == '-':
		return b.fail(ErrorTypeInvalidOption, "invalid option string %s", name)
	case b.entry.Positional != "":
		return b.fail(ErrorTypeInvalidOption, "invalid option string %s: argument %s is positional", name, b.entry.Positional)
	case b.entry.Short != "":
		return b.fail(ErrorTypeInvalidOption, "short option supplied twice: %s", name)
	case name == "-h" || b.parser.taken(b.parser.shorts, name[1:]):
		return b.fail(ErrorTypeConflictingOption, "conflicting option string %s", name)
	}
	b.entry.Short = name
	return b
}

// Long sets the double-dash flag, e.g. "--verbose".
func (b *EntryBuilder) Long(name string) *EntryBuilder {
	if b.err != nil {
		return b
	}
	switch {
	case len(name) < 3 || !strings.HasPrefix(name, "--"):
		return b.fail(ErrorTypeInvalidOption, "invalid option string %s", name)
	case b.entry.Positional != "":
		return b.fail(ErrorTypeInvalidOption, "invalid option string %s: argument %s is positional", name, b.entry.Positional)
	case b.entry.Long != "":
		return b.fail(ErrorTypeInvalidOption, "long option supplied twice: %s", name)
	case name == "--help" || b.parser.taken(b.parser.longs, name[2:]):
		return b.fail(ErrorTypeConflictingOption, "conflicting option string %s", name)
	}
	b.entry.Long = name
	return b
}

// Positional makes the entry a required positional argument.
func (b *EntryBuilder) Positional(name string) *EntryBuilder {
	if b.err != nil {
		return b
	}
	switch {
	case name == "" || name[0] == '-':
		return b.fail(ErrorTypeInvalidOption, "invalid positional string %q: must not start with a character -", name)
	case b.entry.Short != "" || b.entry.Long != "":
		return b.fail(ErrorTypeInvalidOption, "invalid positional string %s: argument already has option strings", name)
	case b.entry.Positional != "":
		return b.fail(ErrorTypeInvalidOption, "positional name supplied twice: %s", name)
	case b.entry.Dest != "":
		return b.fail(ErrorTypeInvalidOption, "dest supplied twice for positional argument %s", name)
	case b.parser.taken(b.parser.positionals, name):
		return b.fail(ErrorTypeConflictingOption, "conflicting positional string %s", name)
	}
	b.entry.Positional = name
	return b
}

// Dest renames the result key. Not allowed on positionals, whose name is
// already the key.
func (b *EntryBuilder) Dest(key string) *EntryBuilder {
	if b.err != nil {
		return b
	}
	switch {
	case b.entry.Positional != "":
		return b.fail(ErrorTypeInvalidOption, "dest supplied twice for positional argument %s", b.entry.Positional)
	case key == "":
		return b.fail(ErrorTypeMissingDest, "dest must not be empty")
	}
	b.entry.Dest = key
	return b
}

// Default sets the value used when the argument does not appear.
func (b *EntryBuilder) Default(v Value) *EntryBuilder {
	if b.err != nil || !b.agree(v.Kind(), "default") {
		return b
	}
	b.entry.Default = v
	return b
}

// Const sets the value used by nargs "?" without a token and by
// store_const. One of those must already be declared.
func (b *EntryBuilder) Const(v Value) *EntryBuilder {
	if b.err != nil {
		return b
	}
	if b.entry.Nargs != NargsOptional && b.entry.Action != ActionStoreConst {
		return b.fail(ErrorTypeInvalidConst, "argument %s: nargs must be '?' or action=store_const to supply const", b.name())
	}
	if !b.agree(v.Kind(), "const") {
		return b
	}
	b.entry.Const = v
	return b
}

// Help sets the text shown next to the argument in help output.
func (b *EntryBuilder) Help(text string) *EntryBuilder {
	if b.err != nil {
		return b
	}
	b.entry.Help = text
	return b
}

// Nargs sets a variable multiplicity: "?", "*" or "+".
func (b *EntryBuilder) Nargs(spec string) *EntryBuilder {
	if b.err != nil {
		return b
	}
	if b.entry.hasAction() {
		return b.fail(ErrorTypeInvalidNargs, "argument %s: nargs cannot be combined with action %s", b.name(), b.entry.Action)
	}
	mode, ok := parseNargs(spec)
	if !ok {
		return b.fail(ErrorTypeInvalidNargs, "argument %s: %q does not match nargs", b.name(), spec)
	}
	b.entry.Nargs, b.entry.N = mode, 0
	return b
}

// NargsN makes the argument take exactly n tokens.
func (b *EntryBuilder) NargsN(n int) *EntryBuilder {
	if b.err != nil {
		return b
	}
	if b.entry.hasAction() {
		return b.fail(ErrorTypeInvalidNargs, "argument %s: nargs cannot be combined with action %s", b.name(), b.entry.Action)
	}
	if n <= 0 {
		return b.fail(ErrorTypeInvalidNargs, "argument %s: nargs for store actions must be > 0", b.name())
	}
	b.entry.Nargs, b.entry.N = NargsN, n
	return b
}

// Action sets store_true, store_false or store_const. It may be set once
// and excludes nargs and choices.
func (b *EntryBuilder) Action(name string) *EntryBuilder {
	if b.err != nil {
		return b
	}
	switch {
	case b.entry.hasAction():
		return b.fail(ErrorTypeInvalidAction, "argument %s: set action once", b.name())
	case b.entry.hasNargs():
		return b.fail(ErrorTypeInvalidAction, "argument %s: action cannot be combined with nargs", b.name())
	case b.entry.hasChoices():
		return b.fail(ErrorTypeInvalidAction, "argument %s: action cannot be combined with choices", b.name())
	}
	a, ok := parseAction(name)
	if !ok {
		return b.fail(ErrorTypeInvalidAction, "set action error: unknown action %s", name)
	}
	b.entry.Action = a
	return b
}

// Choices restricts accepted values. A scalar is taken as a one-element
// set; None clears the set.
func (b *EntryBuilder) Choices(v Value) *EntryBuilder {
	if b.err != nil {
		return b
	}
	if !v.IsArray() && !v.IsNone() {
		v = fromScalars([]Value{v})
	}
	if v.Len() > 0 && b.entry.hasAction() {
		return b.fail(ErrorTypeInvalidAction, "argument %s: choices cannot be combined with action %s", b.name(), b.entry.Action)
	}
	if !b.agree(v.Kind(), "choices") {
		return b
	}
	b.entry.Choices = v
	return b
}

// Type declares the scalar kind tokens are coerced to.
func (b *EntryBuilder) Type(k Kind) *EntryBuilder {
	if b.err != nil {
		return b
	}
	if k == KindNone || k.IsArray() {
		return b.fail(ErrorTypeKindMismatch, "argument %s: type must be a scalar kind, got %s", b.name(), k)
	}
	b.agree(k, "type")
	return b
}

// Commit validates the declaration, derives the destination key and
// registers the entry with the parser.
func (b *EntryBuilder) Commit() error {
	if b.err != nil {
		return b.err
	}
	if b.committed {
		b.fail(ErrorTypeInvalidOption, "argument %s committed twice", b.name())
		return b.err
	}

	e := b.entry
	if e.Dest == "" {
		switch {
		case e.Positional != "":
			e.Dest = e.Positional
		case e.Long != "":
			e.Dest = e.longKey()
		case e.Short != "":
			e.Dest = e.shortKey()
		}
	}
	if e.Dest == "" {
		b.fail(ErrorTypeMissingDest, "required positional argument: argument has no name")
		return b.err
	}
	if e.Action == ActionStoreConst && e.Const.IsNone() {
		b.fail(ErrorTypeMissingConst, "argument %s: required positional argument: 'const'", e.Dest)
		return b.err
	}

	// Another builder may have claimed a name since the call that set it.
	p := b.parser
	switch {
	case e.Short != "" && p.taken(p.shorts, e.shortKey()):
		b.fail(ErrorTypeConflictingOption, "conflicting option string %s", e.Short)
		return b.err
	case e.Long != "" && p.taken(p.longs, e.longKey()):
		b.fail(ErrorTypeConflictingOption, "conflicting option string %s", e.Long)
		return b.err
	case e.Positional != "" && p.taken(p.positionals, e.Positional):
		b.fail(ErrorTypeConflictingOption, "conflicting positional string %s", e.Positional)
		return b.err
	}

	e.Short = intern.Intern(e.Short)
	e.Long = intern.Intern(e.Long)
	e.Positional = intern.Intern(e.Positional)
	e.Dest = intern.Intern(e.Dest)
	e.Required = e.IsPositional()

	p.register(e)
	b.committed = true
	return nil
}
