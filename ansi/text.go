package ansi

import (
	"errors"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ErrIndexOutOfRange reports indexing or slicing beyond the visible
// length of a string.
var ErrIndexOutOfRange = errors.New("index out of range for visible text")

// Cutset is the default character set for the trim operations.
const Cutset = " \t\n"

// Strip removes every escape sequence, leaving only visible text.
func Strip(s string) string {
	toks := Tokens(s)
	if len(toks) == 1 && toks[0].Kind == Text {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, tok := range toks {
		if tok.Kind == Text {
			b.WriteString(tok.Raw)
		}
	}
	return b.String()
}

// VisibleLength counts the characters of s, excluding escape sequences.
func VisibleLength(s string) int {
	n := 0
	sc := NewScanner(s)
	for {
		tok, ok := sc.Next()
		if !ok {
			return n
		}
		if tok.Kind == Text {
			for range tok.Raw {
				n++
			}
		}
	}
}

// DisplayWidth returns the terminal cell width of the visible text,
// accounting for wide and combining runes.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(Strip(s))
}

// sgrState tracks which SGR codes are active at a point in the input:
// the most recent unreset fore and back codes plus accumulated styles,
// in application order. Only the documented SGR subset is modeled; a
// combined sequence like ESC[1;31m is classified by its first
// parameter.
type sgrState struct {
	codes  []string // raw active codes in application order
	layers []Kind   // parallel: layer marker, reusing Kind values below
}

// layer markers for sgrState bookkeeping
const (
	layerFore Kind = iota
	layerBack
	layerStyle
)

func (st *sgrState) apply(tok Token) {
	if tok.Kind != SGR {
		return
	}
	if tok.IsReset() {
		st.codes = st.codes[:0]
		st.layers = st.layers[:0]
		return
	}
	p := tok.Params[0]
	switch {
	case p == 39:
		st.drop(layerFore)
	case p == 49:
		st.drop(layerBack)
	case (p >= 30 && p <= 38) || (p >= 90 && p <= 97):
		st.drop(layerFore)
		st.push(tok.Raw, layerFore)
	case (p >= 40 && p <= 48) || (p >= 100 && p <= 107):
		st.drop(layerBack)
		st.push(tok.Raw, layerBack)
	default:
		st.push(tok.Raw, layerStyle)
	}
}

func (st *sgrState) push(raw string, layer Kind) {
	// Re-applying an identical style is a no-op
	for i, c := range st.codes {
		if st.layers[i] == layerStyle && layer == layerStyle && c == raw {
			return
		}
	}
	st.codes = append(st.codes, raw)
	st.layers = append(st.layers, layer)
}

func (st *sgrState) drop(layer Kind) {
	for i := 0; i < len(st.codes); {
		if st.layers[i] == layer {
			st.codes = append(st.codes[:i], st.codes[i+1:]...)
			st.layers = append(st.layers[:i], st.layers[i+1:]...)
			continue
		}
		i++
	}
}

func (st *sgrState) hasActive() bool {
	return len(st.codes) > 0
}

func (st *sgrState) active() string {
	return strings.Join(st.codes, "")
}

// CharAt locates the i-th visible character and returns it together
// with every SGR code active at that position, closed by a reset when
// any code is active. Returns ErrIndexOutOfRange when i is negative or
// beyond the last visible character.
func CharAt(s string, i int) (string, error) {
	if i < 0 {
		return "", ErrIndexOutOfRange
	}
	var st sgrState
	pos := 0
	sc := NewScanner(s)
	for {
		tok, ok := sc.Next()
		if !ok {
			break
		}
		if tok.Kind != Text {
			st.apply(tok)
			continue
		}
		for _, r := range tok.Raw {
			if pos == i {
				if !st.hasActive() {
					return string(r), nil
				}
				return st.active() + string(r) + Reset, nil
			}
			pos++
		}
	}
	return "", ErrIndexOutOfRange
}

// Slice extracts the visible range [start, end), carrying the codes
// active at start, including codes embedded inside the range verbatim,
// and closing with a reset only when the slice ends with an open code.
// Bounds follow Go slice rules over the visible length. Code-only
// input is returned unchanged.
func Slice(s string, start, end int) (string, error) {
	vis := VisibleLength(s)
	if vis == 0 {
		return s, nil
	}
	if start < 0 || end < start || end > vis {
		return "", ErrIndexOutOfRange
	}
	if start == end {
		return "", nil
	}

	var b strings.Builder
	var st sgrState
	pos := 0
	emitting := false
	sc := NewScanner(s)
scan:
	for {
		tok, ok := sc.Next()
		if !ok {
			break
		}
		if tok.Kind != Text {
			st.apply(tok)
			// Codes between the start boundary and the first included
			// character fold into the active prefix instead of being
			// emitted twice.
			if emitting {
				b.WriteString(tok.Raw)
			}
			continue
		}
		for _, r := range tok.Raw {
			if pos >= start {
				if !emitting {
					b.WriteString(st.active())
					emitting = true
				}
				b.WriteRune(r)
			}
			pos++
			if pos >= end {
				break scan
			}
		}
	}
	if st.hasActive() {
		b.WriteString(Reset)
	}
	return b.String(), nil
}

// openAtEnd reports whether any SGR code is still active at the end of s.
func openAtEnd(s string) bool {
	var st sgrState
	sc := NewScanner(s)
	for {
		tok, ok := sc.Next()
		if !ok {
			return st.hasActive()
		}
		st.apply(tok)
	}
}

// PadRight left-justifies the visible text in a field of the given
// width, appending unstyled fill characters after any trailing codes.
// When the string ends inside an open code span a reset is emitted
// first so the padding carries no styling. Strings with no visible
// characters are returned unchanged.
func PadRight(s string, width int, fill rune) string {
	vis := VisibleLength(s)
	if vis == 0 || vis >= width {
		return s
	}
	pad := strings.Repeat(string(fill), width-vis)
	if openAtEnd(s) {
		return s + Reset + pad
	}
	return s + pad
}

// PadLeft right-justifies the visible text, prepending unstyled fill
// characters ahead of any leading codes.
func PadLeft(s string, width int, fill rune) string {
	vis := VisibleLength(s)
	if vis == 0 || vis >= width {
		return s
	}
	return strings.Repeat(string(fill), width-vis) + s
}

// Center pads on both sides, favoring the right side with the odd
// fill character.
func Center(s string, width int, fill rune) string {
	vis := VisibleLength(s)
	if vis == 0 || vis >= width {
		return s
	}
	margin := width - vis
	left := margin / 2
	out := strings.Repeat(string(fill), left) + s
	if openAtEnd(s) {
		out += Reset
	}
	return out + strings.Repeat(string(fill), margin-left)
}

// TrimLeft removes leading characters in cutset from the visible text.
// Codes swallowed by the removed region are dropped with it; codes
// directly adjacent to the surviving text stay in place. An empty
// cutset means the default Cutset.
func TrimLeft(s, cutset string) string {
	if cutset == "" {
		cutset = Cutset
	}
	toks := Tokens(s)
	if !hasVisible(toks) {
		return s
	}

	// Locate the first run with a surviving character
	idx := -1
	var kept string
	removedInRun := false
	for i, tok := range toks {
		if tok.Kind != Text {
			continue
		}
		trimmed := strings.TrimLeft(tok.Raw, cutset)
		if trimmed == "" {
			continue
		}
		idx = i
		kept = trimmed
		removedInRun = len(trimmed) != len(tok.Raw)
		break
	}
	if idx == -1 {
		return ""
	}

	// Walk backward from the surviving run, keeping only the code
	// tokens that touch it with no removed character in between
	var prefix []string
	removedSeen := removedInRun
	for i := idx - 1; i >= 0; i-- {
		if toks[i].Kind == Text {
			removedSeen = true
			continue
		}
		if !removedSeen {
			prefix = append([]string{toks[i].Raw}, prefix...)
		}
	}

	var b strings.Builder
	for _, p := range prefix {
		b.WriteString(p)
	}
	b.WriteString(kept)
	for _, tok := range toks[idx+1:] {
		b.WriteString(tok.Raw)
	}
	return b.String()
}

// TrimRight removes trailing characters in cutset from the visible
// text, mirroring TrimLeft's code handling.
func TrimRight(s, cutset string) string {
	if cutset == "" {
		cutset = Cutset
	}
	toks := Tokens(s)
	if !hasVisible(toks) {
		return s
	}

	idx := -1
	var kept string
	removedInRun := false
	for i := len(toks) - 1; i >= 0; i-- {
		if toks[i].Kind != Text {
			continue
		}
		trimmed := strings.TrimRight(toks[i].Raw, cutset)
		if trimmed == "" {
			continue
		}
		idx = i
		kept = trimmed
		removedInRun = len(trimmed) != len(toks[i].Raw)
		break
	}
	if idx == -1 {
		return ""
	}

	var b strings.Builder
	for _, tok := range toks[:idx] {
		b.WriteString(tok.Raw)
	}
	b.WriteString(kept)
	removedSeen := removedInRun
	for _, tok := range toks[idx+1:] {
		if tok.Kind == Text {
			removedSeen = true
			continue
		}
		if !removedSeen {
			b.WriteString(tok.Raw)
		}
	}
	return b.String()
}

// Trim removes characters in cutset from both visible boundaries.
func Trim(s, cutset string) string {
	return TrimRight(TrimLeft(s, cutset), cutset)
}

func hasVisible(toks []Token) bool {
	for _, tok := range toks {
		if tok.Kind == Text && tok.Raw != "" {
			return true
		}
	}
	return false
}
