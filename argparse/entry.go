package argparse

import "strings"

// NargsMode is an argument's multiplicity policy.
type NargsMode int

const (
	NargsNone       NargsMode = iota // exactly one token
	NargsN                           // exactly N tokens
	NargsZeroOrMore                  // "*"
	NargsOneOrMore                   // "+"
	NargsOptional                    // "?"
)

// String returns the nargs spelling, "N" for a fixed count.
func (n NargsMode) String() string {
	switch n {
	case NargsN:
		return "N"
	case NargsZeroOrMore:
		return "*"
	case NargsOneOrMore:
		return "+"
	case NargsOptional:
		return "?"
	default:
		return ""
	}
}

// Action fills an argument from the flag's presence alone.
type Action int

const (
	ActionNone Action = iota
	ActionStoreTrue
	ActionStoreFalse
	ActionStoreConst
)

// String returns the action name as accepted by EntryBuilder.Action.
func (a Action) String() string {
	switch a {
	case ActionStoreTrue:
		return "store_true"
	case ActionStoreFalse:
		return "store_false"
	case ActionStoreConst:
		return "store_const"
	default:
		return ""
	}
}

func parseAction(s string) (Action, bool) {
	switch s {
	case "store_true":
		return ActionStoreTrue, true
	case "store_false":
		return ActionStoreFalse, true
	case "store_const":
		return ActionStoreConst, true
	}
	return ActionNone, false
}

func parseNargs(s string) (NargsMode, bool) {
	switch s {
	case "?":
		return NargsOptional, true
	case "*":
		return NargsZeroOrMore, true
	case "+":
		return NargsOneOrMore, true
	}
	return NargsNone, false
}

// Entry is the frozen declaration of one argument. Flag names are kept as
// declared ("-v", "--verbose"); the parser looks them up without prefix.
type Entry struct {
	Short      string
	Long       string
	Positional string
	Dest       string
	Kind       Kind // scalar kind, or KindNone when undeclared
	Nargs      NargsMode
	N          int // count for NargsN
	Action     Action
	Default    Value
	Const      Value
	Choices    Value // array value, or None
	Help       string
	Required   bool // true iff positional
}

// IsPositional reports whether the entry binds bare tokens.
func (e *Entry) IsPositional() bool { return e.Positional != "" }

func (e *Entry) hasNargs() bool { return e.Nargs != NargsNone }

func (e *Entry) hasAction() bool { return e.Action != ActionNone }

func (e *Entry) hasChoices() bool { return e.Choices.Len() > 0 }

func (e *Entry) shortKey() string {
	if e.Short == "" {
		return ""
	}
	return e.Short[1:]
}

func (e *Entry) longKey() string {
	if e.Long == "" {
		return ""
	}
	return e.Long[2:]
}

// metavar is the placeholder shown in usage for one value.
func (e *Entry) metavar() string {
	if e.IsPositional() {
		return e.Positional
	}
	return strings.ToUpper(e.Dest)
}

// nargsUsage renders the value part of a usage fragment.
func (e *Entry) nargsUsage() string {
	mv := e.metavar()
	switch e.Nargs {
	case NargsOptional:
		return "[" + mv + "]"
	case NargsZeroOrMore:
		return "[" + mv + " ...]"
	case NargsOneOrMore:
		return mv + " [" + mv + " ...]"
	case NargsN:
		out := mv
		for i := 1; i < e.N; i++ {
			out += " " + mv
		}
		return out
	}
	return mv
}
