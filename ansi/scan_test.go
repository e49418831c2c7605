package ansi

import (
	"reflect"
	"testing"
)

func TestScannerMixedInput(t *testing.T) {
	input := "\x1b[31mred\x1b[0m plain"
	toks := Tokens(input)

	want := []struct {
		kind Kind
		raw  string
	}{
		{SGR, "\x1b[31m"},
		{Text, "red"},
		{SGR, "\x1b[0m"},
		{Text, " plain"},
	}
	if len(toks) != len(want) {
		t.Fatalf("Expected %d tokens, got %d: %#v", len(want), len(toks), toks)
	}
	for i, w := range want {
		if toks[i].Kind != w.kind || toks[i].Raw != w.raw {
			t.Errorf("Token %d: expected kind %d raw %q, got kind %d raw %q",
				i, w.kind, w.raw, toks[i].Kind, toks[i].Raw)
		}
	}
}

// TestScannerCoverage verifies tokens tile the input with no gaps or
// overlaps.
func TestScannerCoverage(t *testing.T) {
	inputs := []string{
		"",
		"plain text only",
		"\x1b[1m\x1b[34mbold blue\x1b[0m",
		"a\x1b[2Jb\x1b[?25lc",
		"broken \x1b[12 tail",
		"\x1b[31m",
	}
	for _, input := range inputs {
		toks := Tokens(input)
		pos := 0
		rebuilt := ""
		for _, tok := range toks {
			if tok.Start != pos {
				t.Errorf("Input %q: token %q starts at %d, expected %d", input, tok.Raw, tok.Start, pos)
			}
			pos = tok.End
			rebuilt += tok.Raw
		}
		if pos != len(input) || rebuilt != input {
			t.Errorf("Input %q: tokens do not cover input, rebuilt %q", input, rebuilt)
		}
	}
}

func TestScannerClassification(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  Kind
		final byte
	}{
		{"Cursor up", "\x1b[2A", Cursor, 'A'},
		{"Cursor position", "\x1b[10;20H", Cursor, 'H'},
		{"Cursor hide", "\x1b[?25l", Cursor, 'l'},
		{"Position save", "\x1b[s", Cursor, 's'},
		{"Scroll up", "\x1b[3S", Cursor, 'S'},
		{"Erase display", "\x1b[2J", Erase, 'J'},
		{"Erase line", "\x1b[K", Erase, 'K'},
		{"Unknown final", "\x1b[3z", Unknown, 'z'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := Tokens(tt.input)
			if len(toks) != 1 {
				t.Fatalf("Expected 1 token, got %d", len(toks))
			}
			if toks[0].Kind != tt.kind {
				t.Errorf("Expected kind %d, got %d", tt.kind, toks[0].Kind)
			}
			if toks[0].Final != tt.final {
				t.Errorf("Expected final %q, got %q", tt.final, toks[0].Final)
			}
		})
	}
}

func TestScannerSGRParams(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		params []int
		reset  bool
	}{
		{"Single", "\x1b[31m", []int{31}, false},
		{"Empty means reset", "\x1b[m", []int{0}, true},
		{"Explicit reset", "\x1b[0m", []int{0}, true},
		{"Extended", "\x1b[38;5;200m", []int{38, 5, 200}, false},
		{"True color", "\x1b[48;2;10;20;30m", []int{48, 2, 10, 20, 30}, false},
		{"Combined", "\x1b[1;31m", []int{1, 31}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := Tokens(tt.input)
			if len(toks) != 1 || toks[0].Kind != SGR {
				t.Fatalf("Expected single SGR token, got %#v", toks)
			}
			if !reflect.DeepEqual(toks[0].Params, tt.params) {
				t.Errorf("Expected params %v, got %v", tt.params, toks[0].Params)
			}
			if toks[0].IsReset() != tt.reset {
				t.Errorf("Expected IsReset %v", tt.reset)
			}
		})
	}
}

// TestScannerMalformed verifies malformed sequences pass through as
// literal text instead of failing.
func TestScannerMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Unterminated CSI", "\x1b[31"},
		{"Bare escape", "before\x1bafter"},
		{"Escape at end", "text\x1b"},
		{"CSI at end", "text\x1b["},
		{"Control final out of range", "\x1b[31\x01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := Tokens(tt.input)
			for _, tok := range toks {
				if tok.IsCode() {
					t.Errorf("Expected only text tokens, got %#v", tok)
				}
			}
			if got := Strip(tt.input); got != tt.input {
				t.Errorf("Expected malformed input to survive Strip, got %q", got)
			}
		})
	}
}

func TestScannerRestart(t *testing.T) {
	sc := NewScanner("\x1b[1mhi\x1b[0m")
	var first []Token
	for {
		tok, ok := sc.Next()
		if !ok {
			break
		}
		first = append(first, tok)
	}
	sc.Reset()
	var second []Token
	for {
		tok, ok := sc.Next()
		if !ok {
			break
		}
		second = append(second, tok)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical token streams after Reset, got %#v vs %#v", first, second)
	}
}
