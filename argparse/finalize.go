package argparse

// finalize resolves entries the token stream left unfilled, in partition
// order, failing on the first positional that cannot be resolved.
func (c *consumer) finalize() error {
	for _, i := range c.order {
		if c.slots[i].filled {
			continue
		}
		e := &c.p.entries[i]

		if e.IsPositional() {
			switch {
			case e.Nargs == NargsOptional || e.Nargs == NargsZeroOrMore:
				c.fill(i, e.Default)
			case e.hasAction():
				c.fill(i, actionValue(e))
			default:
				return c.p.fail(errRequired(e.Dest))
			}
			continue
		}

		switch {
		case !e.Default.IsNone():
			c.fill(i, e.Default)
		case e.Action == ActionStoreTrue:
			c.fill(i, Bool(false))
		case e.Action == ActionStoreFalse:
			c.fill(i, Bool(true))
		}
		// An unmatched store_const option stays out of the result.
	}
	return nil
}

func (c *consumer) result() *Result {
	values := make(map[string]Value, len(c.slots))
	for _, i := range c.order {
		if s := c.slots[i]; s.filled {
			values[c.p.entries[i].Dest] = s.value
		}
	}
	return &Result{values: values}
}
