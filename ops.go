package colr

import "github.com/lixenwraith/colr/ansi"

// The string-like operations work on the rendered form: the chain is
// rendered once, the ansi package re-tokenizes the result, and the
// outcome is wrapped back into a chain holding one raw segment. A raw
// segment carries its codes inside the text, so re-rendering it passes
// them through unchanged.

// raw wraps an already-rendered string so it survives further chaining
func raw(s string) *Colr {
	return &Colr{segments: []Segment{{text: s}}}
}

// CharAt returns the i-th visible character with its active codes and
// a closing reset, as a new chain.
func (c *Colr) CharAt(i int) (*Colr, error) {
	if c.err != nil {
		return nil, c.err
	}
	s, err := ansi.CharAt(c.String(), i)
	if err != nil {
		return nil, err
	}
	return raw(s), nil
}

// Slice returns the visible-index range [start, end) with styling
// preserved, as a new chain. Bounds follow slice semantics: start and
// end must satisfy 0 <= start <= end <= VisibleLength.
func (c *Colr) Slice(start, end int) (*Colr, error) {
	if c.err != nil {
		return nil, c.err
	}
	s, err := ansi.Slice(c.String(), start, end)
	if err != nil {
		return nil, err
	}
	return raw(s), nil
}

// PadRight left-justifies the chain to width visible columns. Fill
// characters carry no styling.
func (c *Colr) PadRight(width int, fill rune) *Colr {
	if c.err != nil {
		return c
	}
	return raw(ansi.PadRight(c.String(), width, fill))
}

// PadLeft right-justifies the chain to width visible columns.
func (c *Colr) PadLeft(width int, fill rune) *Colr {
	if c.err != nil {
		return c
	}
	return raw(ansi.PadLeft(c.String(), width, fill))
}

// Center centers the chain in width visible columns, favoring the
// right side for an odd margin.
func (c *Colr) Center(width int, fill rune) *Colr {
	if c.err != nil {
		return c
	}
	return raw(ansi.Center(c.String(), width, fill))
}

// TrimLeft removes leading visible characters in cutset. Codes
// adjacent to surviving text are preserved; codes swallowed by the
// removed run are dropped with it. Empty cutset means whitespace.
func (c *Colr) TrimLeft(cutset string) *Colr {
	if c.err != nil {
		return c
	}
	return raw(ansi.TrimLeft(c.String(), cutset))
}

// TrimRight removes trailing visible characters in cutset.
func (c *Colr) TrimRight(cutset string) *Colr {
	if c.err != nil {
		return c
	}
	return raw(ansi.TrimRight(c.String(), cutset))
}

// Trim removes leading and trailing visible characters in cutset.
func (c *Colr) Trim(cutset string) *Colr {
	if c.err != nil {
		return c
	}
	return raw(ansi.Trim(c.String(), cutset))
}

// DisplayWidth returns the chain's terminal cell width, counting wide
// runes as two columns.
func (c *Colr) DisplayWidth() int {
	return ansi.DisplayWidth(c.String())
}
