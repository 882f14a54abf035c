package argparse

import (
	"strings"

	"github.com/dzonerzy/go-argparse/internal/fuzzy"
	"github.com/dzonerzy/go-argparse/internal/pool"
)

// valueRuns holds the coerced scalars of a multi-token argument until they
// are packed into an array Value.
var valueRuns = pool.NewSlicePool[Value](8)

// suggestDistance bounds the edit distance of "did you mean" hints.
const suggestDistance = 2

// slot is the per-parse state of one entry.
type slot struct {
	filled bool
	value  Value
}

// consumer walks one argument vector against a parser's frozen entries.
type consumer struct {
	p    *Parser
	args []string

	// order holds entry indices, positionals first, each group in
	// declaration order. The lookup tables below map to entry indices.
	order      []int
	shorts     map[string]int
	longs      map[string]int
	positional []int
	cursor     int // next positional in c.positional

	slots []slot // by entry index
}

func newConsumer(p *Parser, args []string) *consumer {
	c := &consumer{
		p:      p,
		args:   args,
		shorts: make(map[string]int),
		longs:  make(map[string]int),
		slots:  make([]slot, len(p.entries)),
	}
	c.partition()
	return c
}

// partition orders positionals before optionals without disturbing the
// declaration order inside either group, then builds the lookup tables.
func (c *consumer) partition() {
	entries := c.p.entries
	c.order = make([]int, 0, len(entries))
	for i := range entries {
		if entries[i].IsPositional() {
			c.order = append(c.order, i)
		}
	}
	for i := range entries {
		if !entries[i].IsPositional() {
			c.order = append(c.order, i)
		}
	}

	for _, i := range c.order {
		e := &entries[i]
		if e.IsPositional() {
			c.positional = append(c.positional, i)
			continue
		}
		if e.Short != "" {
			c.shorts[e.shortKey()] = i
		}
		if e.Long != "" {
			c.longs[e.longKey()] = i
		}
	}
}

func isFlag(tok string) bool { return strings.HasPrefix(tok, "-") }

func (c *consumer) fill(i int, v Value) {
	c.slots[i] = slot{filled: true, value: v}
}

// run consumes every token after the program name. The first failure
// stops it.
func (c *consumer) run() error {
	for pos := 1; pos < len(c.args); {
		tok := c.args[pos]

		if tok == "--help" || tok == "-h" {
			c.p.WriteHelp(c.p.io.Out())
			c.p.exit(c.p.exitCodes.Resolve(nil))
			return ErrHelpShown
		}

		var (
			n   int
			err error
		)
		if isFlag(tok) {
			n, err = c.optional(pos)
		} else {
			n, err = c.positionalToken(pos)
		}
		if err != nil {
			return err
		}
		pos += n
	}
	return nil
}

// positionalToken binds the bare token at pos to the next positional entry
// and reports how many tokens were consumed.
func (c *consumer) positionalToken(pos int) (int, error) {
	entries := c.p.entries
	for c.cursor < len(c.positional) && entries[c.positional[c.cursor]].hasAction() {
		c.cursor++
	}
	if c.cursor >= len(c.positional) {
		return 0, c.p.fail(errUnrecognized(c.args[pos]))
	}

	i := c.positional[c.cursor]
	e := &entries[i]

	var (
		v   Value
		n   = 1
		err error
	)
	if e.hasNargs() {
		v, n, err = c.nargs(e, pos)
	} else {
		v, err = c.single(e, c.args[pos])
	}
	if err != nil {
		return 0, err
	}

	c.fill(i, v)
	c.cursor++
	return n, nil
}

// optional resolves the flag at pos and reports how many tokens, the flag
// included, were consumed.
func (c *consumer) optional(pos int) (int, error) {
	tok := c.args[pos]
	var (
		name  string
		i     int
		found bool
	)
	if strings.HasPrefix(tok, "--") {
		name = tok[2:]
		i, found = c.longs[name]
	} else {
		name = tok[1:]
		i, found = c.shorts[name]
	}
	if !found {
		return 0, c.p.fail(c.unrecognized(tok, name))
	}

	e := &c.p.entries[i]
	switch {
	case e.hasAction():
		c.fill(i, actionValue(e))
		return 1, nil

	case e.hasNargs():
		v, n, err := c.nargs(e, pos+1)
		if err != nil {
			return 0, err
		}
		c.fill(i, v)
		return 1 + n, nil
	}

	if pos+1 >= len(c.args) {
		return 0, c.p.fail(errRequired(name))
	}
	v, err := c.single(e, c.args[pos+1])
	if err != nil {
		return 0, err
	}
	c.fill(i, v)
	return 2, nil
}

// unrecognized builds the error for an unknown flag, with a hint drawn from
// the same namespace when suggestions are on.
func (c *consumer) unrecognized(tok, name string) *Error {
	err := errUnrecognized(name)
	if !c.p.suggest {
		return err
	}
	table, prefix := c.shorts, "-"
	if strings.HasPrefix(tok, "--") {
		table, prefix = c.longs, "--"
	}
	candidates := make([]string, 0, len(table))
	for k := range table {
		candidates = append(candidates, k)
	}
	if best := fuzzy.Suggest(name, candidates, suggestDistance); best != "" {
		err.Suggestion = prefix + best
	}
	return err
}

// single coerces one token and checks it against the choice set.
func (c *consumer) single(e *Entry, tok string) (Value, error) {
	v := coerce(tok, e.Kind)
	if e.hasChoices() && !e.Choices.Contains(v) {
		return None(), c.p.fail(errInvalidChoice(e.Dest, v))
	}
	return v, nil
}

// nargs gathers the tokens of a multi-value argument starting at start and
// reports how many were consumed. A run ends at the first token that looks
// like a flag, negative numbers included.
func (c *consumer) nargs(e *Entry, start int) (Value, int, error) {
	args := c.args

	if e.Nargs == NargsOptional {
		if start >= len(args) || isFlag(args[start]) {
			return e.Const, 0, nil
		}
		v, err := c.single(e, args[start])
		return v, 1, err
	}

	if e.Nargs == NargsN || e.Nargs == NargsOneOrMore {
		if start >= len(args) || isFlag(args[start]) {
			return None(), 0, c.p.fail(errRequired(e.Dest))
		}
	}

	toks := pool.GetTokens()
	defer pool.PutTokens(toks)
	for j := start; j < len(args) && !isFlag(args[j]); j++ {
		if e.Nargs == NargsN && len(*toks) == e.N {
			break
		}
		*toks = append(*toks, args[j])
	}
	if e.Nargs == NargsN && len(*toks) < e.N {
		return None(), 0, c.p.fail(errRequired(e.Dest))
	}

	run := valueRuns.Get()
	defer valueRuns.Put(run)
	for _, tok := range *toks {
		v, err := c.single(e, tok)
		if err != nil {
			return None(), 0, err
		}
		*run = append(*run, v)
	}
	return fromScalars(*run), len(*toks), nil
}

// actionValue is what a store action puts in the result.
func actionValue(e *Entry) Value {
	switch e.Action {
	case ActionStoreTrue:
		return Bool(true)
	case ActionStoreFalse:
		return Bool(false)
	case ActionStoreConst:
		return e.Const
	}
	return None()
}
