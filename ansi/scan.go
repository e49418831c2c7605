package ansi

// Kind distinguishes token categories produced by the Scanner
type Kind uint8

const (
	Text    Kind = iota // visible text run
	SGR                 // color/style sequence, final 'm'
	Cursor              // cursor movement, position save/restore, modes
	Erase               // erase display/line, final 'J' or 'K'
	Unknown             // well-formed CSI with an unrecognized final
)

// Token is one contiguous span of input: either a run of visible text
// or a complete escape sequence. Tokens cover the input with no gaps
// or overlaps.
type Token struct {
	Kind   Kind
	Raw    string // exact input bytes for this span
	Params []int  // SGR parameters; nil for other kinds
	Final  byte   // final letter for non-text tokens
	Start  int    // byte offset of the span start
	End    int    // byte offset one past the span end
}

// IsCode returns true for any non-text token
func (t Token) IsCode() bool {
	return t.Kind != Text
}

// IsReset returns true for an SGR token that resets all attributes
// (ESC[0m or ESC[m).
func (t Token) IsReset() bool {
	if t.Kind != SGR {
		return false
	}
	for _, p := range t.Params {
		if p != 0 {
			return false
		}
	}
	return true
}

// Scanner splits a string into text runs and escape sequences.
// Malformed or unterminated sequences are treated as literal text, so
// scanning never fails on arbitrary input. A Scanner is restartable
// via Reset and is not safe for concurrent use.
type Scanner struct {
	src string
	pos int
}

// NewScanner returns a Scanner positioned at the start of s.
func NewScanner(s string) *Scanner {
	return &Scanner{src: s}
}

// Reset rewinds the scanner to the start of its input.
func (s *Scanner) Reset() {
	s.pos = 0
}

// Next returns the following token. The second result is false once
// the input is exhausted.
func (s *Scanner) Next() (Token, bool) {
	if s.pos >= len(s.src) {
		return Token{}, false
	}
	start := s.pos
	for i := start; i < len(s.src); i++ {
		if s.src[i] != 0x1b {
			continue
		}
		tok, ok := parseCSI(s.src, i)
		if !ok {
			// Unterminated or malformed sequence, keep as text
			continue
		}
		if i > start {
			s.pos = i
			return Token{Kind: Text, Raw: s.src[start:i], Start: start, End: i}, true
		}
		s.pos = tok.End
		return tok, true
	}
	s.pos = len(s.src)
	return Token{Kind: Text, Raw: s.src[start:], Start: start, End: len(s.src)}, true
}

// Tokens scans s to completion and returns every token.
func Tokens(s string) []Token {
	sc := NewScanner(s)
	var out []Token
	for {
		tok, ok := sc.Next()
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}

// parseCSI attempts to parse a complete CSI sequence starting at the
// ESC byte at offset i.
func parseCSI(src string, i int) (Token, bool) {
	j := i + 1
	if j >= len(src) || src[j] != '[' {
		return Token{}, false
	}
	j++
	private := false
	if j < len(src) {
		switch src[j] {
		case '?', '<', '=', '>':
			private = true
			j++
		}
	}
	paramStart := j
	for j < len(src) && (src[j] == ';' || (src[j] >= '0' && src[j] <= '9')) {
		j++
	}
	if j >= len(src) {
		return Token{}, false
	}
	final := src[j]
	if final < 0x40 || final > 0x7e {
		return Token{}, false
	}
	tok := Token{
		Raw:   src[i : j+1],
		Final: final,
		Start: i,
		End:   j + 1,
	}
	switch {
	case final == 'm':
		if private {
			tok.Kind = Unknown
			return tok, true
		}
		tok.Kind = SGR
		tok.Params = parseParams(src[paramStart:j])
	case final == 'J' || final == 'K':
		tok.Kind = Erase
	case final >= 'A' && final <= 'H', final == 'f', final == 's', final == 'u',
		final == 'S', final == 'T':
		tok.Kind = Cursor
	case private && (final == 'h' || final == 'l'):
		// Mode set/reset, e.g. cursor show/hide ?25h/?25l
		tok.Kind = Cursor
	default:
		tok.Kind = Unknown
	}
	return tok, true
}

// parseParams splits ";"-joined SGR parameters. Empty input and empty
// fields mean 0, matching terminal behavior.
func parseParams(s string) []int {
	if s == "" {
		return []int{0}
	}
	params := make([]int, 0, 4)
	n := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ';' {
			params = append(params, n)
			n = 0
			continue
		}
		n = n*10 + int(s[i]-'0')
	}
	return params
}
