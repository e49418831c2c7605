package colr

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/lixenwraith/colr/ansi"
)

// Colr is an ordered chain of styled segments. Chain methods validate
// their specifiers, append a segment, and return the same handle, so a
// Colr is built sequentially by a single owner and is not safe for
// concurrent mutation. The first specifier error sticks to the chain
// and short-circuits later appends; check Err before trusting output.
type Colr struct {
	segments []Segment
	err      error
}

// New returns an empty chain.
func New() *Colr {
	return &Colr{}
}

// Text returns a chain holding one unstyled segment.
func Text(text string) *Colr {
	return New().Plain(text)
}

// Styled returns a chain holding one segment colored by fore, back and
// style specifiers. Any of the three may be empty.
func Styled(text, fore, back, style string) *Colr {
	return New().Color(text, fore, back, style)
}

// Err returns the first specifier error recorded on the chain.
func (c *Colr) Err() error {
	return c.err
}

// fail records the chain's first error
func (c *Colr) fail(err error) *Colr {
	if c.err == nil {
		c.err = err
	}
	return c
}

// Append adds one segment from already-resolved specs.
func (c *Colr) Append(text string, specs ...Spec) *Colr {
	if c.err != nil {
		return c
	}
	c.segments = append(c.segments, Segment{specs: specs, text: text})
	return c
}

// Plain appends unstyled text.
func (c *Colr) Plain(text string) *Colr {
	return c.Append(text)
}

// Color appends text styled by string specifiers. Empty specifiers are
// skipped; passing empty text sets the style for whichever later
// segment carries text.
func (c *Colr) Color(text, fore, back, style string) *Colr {
	if c.err != nil {
		return c
	}
	var specs []Spec
	if fore != "" {
		sp, err := Resolve(Fore, fore)
		if err != nil {
			return c.fail(err)
		}
		specs = append(specs, sp)
	}
	if back != "" {
		sp, err := Resolve(Back, back)
		if err != nil {
			return c.fail(err)
		}
		specs = append(specs, sp)
	}
	if style != "" {
		sp, err := ResolveStyle(style)
		if err != nil {
			return c.fail(err)
		}
		specs = append(specs, sp)
	}
	return c.Append(text, specs...)
}

// Apply appends a bare layer spec with no text, setting the color for
// whichever later segment carries text.
func (c *Colr) Apply(layer Layer, spec string) *Colr {
	if c.err != nil {
		return c
	}
	sp, err := Resolve(layer, spec)
	if err != nil {
		return c.fail(err)
	}
	return c.Append("", sp)
}

// Fore appends text with a foreground color specifier.
func (c *Colr) Fore(text, spec string) *Colr {
	return c.Color(text, spec, "", "")
}

// Back appends text with a background color specifier.
func (c *Colr) Back(text, spec string) *Colr {
	return c.Color(text, "", spec, "")
}

// Style appends text with a style specifier.
func (c *Colr) Style(text, name string) *Colr {
	return c.Color(text, "", "", name)
}

// Hex appends text with a hex foreground color.
func (c *Colr) Hex(text, hex string) *Colr {
	if c.err != nil {
		return c
	}
	v, err := Hex(hex)
	if err != nil {
		return c.fail(err)
	}
	return c.Append(text, ForeSpec(v))
}

// HexBack appends text with a hex background color.
func (c *Colr) HexBack(text, hex string) *Colr {
	if c.err != nil {
		return c
	}
	v, err := Hex(hex)
	if err != nil {
		return c.fail(err)
	}
	return c.Append(text, BackSpec(v))
}

// Ext appends text with an extended palette foreground index.
func (c *Colr) Ext(text string, n int) *Colr {
	if c.err != nil {
		return c
	}
	v, err := Extended(n)
	if err != nil {
		return c.fail(err)
	}
	return c.Append(text, ForeSpec(v))
}

// ExtBack appends text with an extended palette background index.
func (c *Colr) ExtBack(text string, n int) *Colr {
	if c.err != nil {
		return c
	}
	v, err := Extended(n)
	if err != nil {
		return c.fail(err)
	}
	return c.Append(text, BackSpec(v))
}

// RGB appends text with a true color foreground.
func (c *Colr) RGB(text string, r, g, b int) *Colr {
	if c.err != nil {
		return c
	}
	v, err := RGB(r, g, b)
	if err != nil {
		return c.fail(err)
	}
	return c.Append(text, ForeSpec(v))
}

// RGBBack appends text with a true color background.
func (c *Colr) RGBBack(text string, r, g, b int) *Colr {
	if c.err != nil {
		return c
	}
	v, err := RGB(r, g, b)
	if err != nil {
		return c.fail(err)
	}
	return c.Append(text, BackSpec(v))
}

// Reset appends a bare reset-all segment.
func (c *Colr) Reset() *Colr {
	return c.Append("", StyleSpec(StyleResetAll))
}

// Render walks the segments into one escape-annotated string under the
// given config, or returns the chain's sticky error.
func (c *Colr) Render(cfg RenderConfig) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	var b strings.Builder
	open := false
	for _, seg := range c.segments {
		open = seg.render(&b, cfg, open)
	}
	return b.String(), nil
}

// String renders under the TrueColor config. A chain carrying an error
// renders as empty; equality, ordering and Hash are all defined over
// this rendering.
func (c *Colr) String() string {
	s, err := c.Render(TrueColor)
	if err != nil {
		return ""
	}
	return s
}

// Stripped returns the rendered text with all escape codes removed.
func (c *Colr) Stripped() string {
	return ansi.Strip(c.String())
}

// VisibleLength counts visible characters across all segments.
func (c *Colr) VisibleLength() int {
	return ansi.VisibleLength(c.String())
}

// Len is shorthand for VisibleLength.
func (c *Colr) Len() int {
	return c.VisibleLength()
}

// Segments returns a copy of the chain's segment list for iteration.
func (c *Colr) Segments() []Segment {
	out := make([]Segment, len(c.segments))
	copy(out, c.segments)
	return out
}

// Text returns the segment's text.
func (s Segment) Text() string {
	return s.text
}

// Specs returns a copy of the segment's resolved specs.
func (s Segment) Specs() []Spec {
	out := make([]Spec, len(s.specs))
	copy(out, s.specs)
	return out
}

// Equal compares fully rendered bytes, so two structurally different
// chains rendering identically are equal.
func (c *Colr) Equal(other *Colr) bool {
	return c.String() == other.String()
}

// Compare orders chains by their stripped text, returning -1, 0 or 1.
func (c *Colr) Compare(other *Colr) int {
	return strings.Compare(c.Stripped(), other.Stripped())
}

// Less reports whether c orders before other by stripped text.
func (c *Colr) Less(other *Colr) bool {
	return c.Compare(other) < 0
}

// Hash returns an FNV-1a hash of the rendered bytes, consistent with
// Equal.
func (c *Colr) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(c.String()))
	return h.Sum64()
}

// Copy returns an independent chain with the same segments and error.
func (c *Colr) Copy() *Colr {
	return &Colr{segments: c.Segments(), err: c.err}
}

// Repeat appends n-1 further copies of the current segment list, so
// the chain renders its full sequence n times. Zero empties the chain;
// a negative count records ErrTypeMismatch.
func (c *Colr) Repeat(n int) *Colr {
	if c.err != nil {
		return c
	}
	if n < 0 {
		return c.fail(fmt.Errorf("repeat count %d: %w", n, ErrTypeMismatch))
	}
	if n == 0 {
		c.segments = nil
		return c
	}
	base := c.Segments()
	for i := 1; i < n; i++ {
		c.segments = append(c.segments, base...)
	}
	return c
}

// Concat appends the segments of other chains, strings, or stringable
// values. Unsupported part types record ErrTypeMismatch.
func (c *Colr) Concat(parts ...any) *Colr {
	for _, p := range parts {
		if c.err != nil {
			return c
		}
		other, err := toColr(p)
		if err != nil {
			return c.fail(err)
		}
		if other.err != nil {
			return c.fail(other.err)
		}
		c.segments = append(c.segments, other.segments...)
	}
	return c
}

// Join interleaves sep between parts and returns a new chain. One
// level of slice arguments is flattened, so Join(", ", parts) and
// Join(", ", a, b, c) behave alike. Non-chain parts are converted the
// same way Concat converts them.
func Join(sep any, parts ...any) *Colr {
	flat := make([]any, 0, len(parts))
	for _, p := range parts {
		switch v := p.(type) {
		case []any:
			flat = append(flat, v...)
		case []*Colr:
			for _, e := range v {
				flat = append(flat, e)
			}
		case []string:
			for _, e := range v {
				flat = append(flat, e)
			}
		default:
			flat = append(flat, p)
		}
	}
	out := New()
	for i, p := range flat {
		if i > 0 {
			out.Concat(sep)
		}
		out.Concat(p)
	}
	return out
}

// toColr converts a join/concat part to a chain
func toColr(p any) (*Colr, error) {
	switch v := p.(type) {
	case *Colr:
		return v, nil
	case Colr:
		return &v, nil
	case string:
		return Text(v), nil
	case []byte:
		return Text(string(v)), nil
	case rune:
		return Text(string(v)), nil
	case fmt.Stringer:
		return Text(v.String()), nil
	case int, int8, int16, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, bool:
		return Text(fmt.Sprint(v)), nil
	default:
		return nil, fmt.Errorf("cannot join %T: %w", p, ErrTypeMismatch)
	}
}
