package ansi

import (
	"errors"
	"strings"
	"testing"
)

const (
	blue  = "\x1b[34m"
	red   = "\x1b[31m"
	bgRed = "\x1b[41m"
	bold  = "\x1b[1m"
)

func styled(code, text string) string {
	return code + text + Reset
}

func TestStrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Plain", "hello", "hello"},
		{"Empty", "", ""},
		{"Styled", styled(blue, "test"), "test"},
		{"Multiple codes", bold + blue + "ab" + Reset + "cd", "abcd"},
		{"Code only", blue + Reset, ""},
		{"Cursor codes", "a" + MoveUp(2) + "b" + EraseLine(EraseAll) + "c", "abc"},
		{"Malformed survives", "keep \x1b[12 this", "keep \x1b[12 this"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Strip(tt.input); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestVisibleLength(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"Plain", "hello", 5},
		{"Styled", styled(blue, "hello"), 5},
		{"Multibyte", styled(red, "héllo"), 5},
		{"Code only", blue, 0},
		{"Empty", "", 0},
		{"Nested styles", bold + blue + "ab" + Reset, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VisibleLength(tt.input); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

// Stripping must never change the visible length.
func TestVisibleLengthStripInvariant(t *testing.T) {
	inputs := []string{
		styled(blue, "test"),
		bold + "a" + blue + "b" + Reset + "c",
		"plain",
		blue + bgRed,
	}
	for _, s := range inputs {
		if VisibleLength(Strip(s)) != VisibleLength(s) {
			t.Errorf("Strip changed visible length for %q", s)
		}
	}
}

func TestDisplayWidth(t *testing.T) {
	if got := DisplayWidth(styled(blue, "abc")); got != 3 {
		t.Errorf("Expected width 3, got %d", got)
	}
	// CJK runes occupy two cells
	if got := DisplayWidth(styled(blue, "世界")); got != 4 {
		t.Errorf("Expected width 4, got %d", got)
	}
}

func TestCharAt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		index int
		want  string
	}{
		{"Plain", "test", 1, "e"},
		{"Styled", styled(blue, "test"), 1, blue + "e" + Reset},
		{"First", styled(blue, "test"), 0, blue + "t" + Reset},
		{"Last", styled(blue, "test"), 3, blue + "t" + Reset},
		{"After reset", styled(blue, "ab") + "cd", 2, "c"},
		{"Layered", bold + blue + "xy" + Reset, 1, bold + blue + "y" + Reset},
		{"Fore replaced", red + "a" + blue + "b" + Reset, 1, blue + "b" + Reset},
		{"Back kept with fore", bgRed + red + "ab" + Reset, 0, bgRed + red + "a" + Reset},
		{"Multibyte", styled(blue, "héllo"), 1, blue + "é" + Reset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CharAt(tt.input, tt.index)
			if err != nil {
				t.Fatalf("CharAt returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCharAtOutOfRange(t *testing.T) {
	for _, index := range []int{-1, 4, 100} {
		if _, err := CharAt(styled(blue, "test"), index); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Expected ErrIndexOutOfRange for index %d, got %v", index, err)
		}
	}
}

func TestSlice(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		start, end int
		want       string
	}{
		{"Plain middle", "test", 1, 3, "es"},
		{"Styled middle", styled(blue, "test"), 1, 3, blue + "es" + Reset},
		{"Styled full", styled(blue, "test"), 0, 4, blue + "test" + Reset},
		{"Empty range", styled(blue, "test"), 2, 2, ""},
		{"Crossing reset", styled(blue, "ab") + "cd", 1, 3, blue + "b" + Reset + "c"},
		{"Starts after reset", styled(blue, "ab") + "cd", 2, 4, "cd"},
		{"Embedded code kept", "a" + red + "bc", 0, 3, "a" + red + "bc" + Reset},
		{"Code only input unchanged", blue + Reset, 0, 0, blue + Reset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Slice(tt.input, tt.start, tt.end)
			if err != nil {
				t.Fatalf("Slice returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSliceBounds(t *testing.T) {
	input := styled(blue, "test")
	cases := []struct{ start, end int }{
		{-1, 2}, {2, 1}, {0, 5},
	}
	for _, c := range cases {
		if _, err := Slice(input, c.start, c.end); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Expected ErrIndexOutOfRange for [%d:%d], got %v", c.start, c.end, err)
		}
	}
}

// Slicing a styled string then stripping must equal slicing the
// stripped string.
func TestSliceStripProperty(t *testing.T) {
	input := bold + "ab" + blue + "cdef" + Reset + "gh"
	plain := Strip(input)
	for start := 0; start <= len(plain); start++ {
		for end := start; end <= len(plain); end++ {
			got, err := Slice(input, start, end)
			if err != nil {
				t.Fatalf("Slice(%d,%d) returned error: %v", start, end, err)
			}
			if Strip(got) != plain[start:end] {
				t.Errorf("Slice(%d,%d): expected visible %q, got %q", start, end, plain[start:end], Strip(got))
			}
		}
	}
}

func TestPadRight(t *testing.T) {
	in := styled(blue, "Hello")
	got := PadRight(in, 10, ' ')
	if got != in+"     " {
		t.Errorf("Expected padding after the reset, got %q", got)
	}
	if VisibleLength(got) != 10 {
		t.Errorf("Expected visible length 10, got %d", VisibleLength(got))
	}
}

func TestPadRightOpenCode(t *testing.T) {
	got := PadRight(blue+"hi", 4, '.')
	if got != blue+"hi"+Reset+".." {
		t.Errorf("Expected reset before padding, got %q", got)
	}
}

func TestPadLeft(t *testing.T) {
	in := styled(blue, "Hi")
	got := PadLeft(in, 5, ' ')
	if got != "   "+in {
		t.Errorf("Expected padding before leading code, got %q", got)
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"Even margin", styled(blue, "ab"), 6, "  " + styled(blue, "ab") + "  "},
		{"Odd margin favors right", styled(blue, "a"), 4, " " + styled(blue, "a") + "  "},
		{"Plain", "ab", 4, " ab "},
		{"Wider than field", "abcdef", 3, "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Center(tt.input, tt.width, ' '); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

// Justify operations leave code-only strings alone and never emit a
// reset for them.
func TestJustifyCodeOnly(t *testing.T) {
	in := blue + bgRed
	if got := PadRight(in, 10, ' '); got != in {
		t.Errorf("PadRight changed code-only input: %q", got)
	}
	if got := PadLeft(in, 10, ' '); got != in {
		t.Errorf("PadLeft changed code-only input: %q", got)
	}
	if got := Center(in, 10, ' '); got != in {
		t.Errorf("Center changed code-only input: %q", got)
	}
}

func TestTrim(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string, string) string
		in   string
		cut  string
		want string
	}{
		{"Plain left", TrimLeft, "  hi", "", "hi"},
		{"Plain right", TrimRight, "hi  ", "", "hi"},
		{"Plain both", Trim, "  hi  ", "", "hi"},
		{"Code adjacent to text kept", TrimLeft, "  " + blue + "hi", "", blue + "hi"},
		{"Code swallowed on left", TrimLeft, blue + "  hi", "", "hi"},
		{"Trailing reset kept", TrimRight, styled(blue, "hi") + "  ", "", styled(blue, "hi")},
		{"Reset after spaces dropped", TrimRight, blue + "hi " + Reset, "", blue + "hi"},
		{"Interior codes untouched", Trim, " a" + red + "b ", "", "a" + red + "b"},
		{"Custom cutset", Trim, "xxhixx", "x", "hi"},
		{"Nothing to trim", Trim, styled(blue, "hi"), "", styled(blue, "hi")},
		{"All removable", Trim, "  \t", "", ""},
		{"Code only unchanged", Trim, blue + Reset, "", blue + Reset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in, tt.cut); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestControlChain(t *testing.T) {
	got := NewControl().
		CursorHide().
		MovePos(5, 10).
		EraseLine(EraseAll).
		Text("done").
		CursorShow().
		String()
	want := CursorHide + "\x1b[5;10H" + "\x1b[2K" + "done" + CursorShow
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestControlWriteTo(t *testing.T) {
	var sb strings.Builder
	c := NewControl().MoveUp(2).CarriageReturn()
	if _, err := c.WriteTo(&sb); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "\x1b[2A\r" {
		t.Errorf("Unexpected output %q", sb.String())
	}
	if c.String() != "" {
		t.Error("Expected chain to be cleared after WriteTo")
	}
}

func TestEraseSequences(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"Display to end", EraseDisplay(EraseToEnd), "\x1b[0J"},
		{"Display all", EraseDisplay(EraseAll), "\x1b[2J"},
		{"Display scrollback", EraseDisplay(EraseScrollback), "\x1b[3J"},
		{"Line to start", EraseLine(EraseToStart), "\x1b[1K"},
		{"Line scrollback clamps", EraseLine(EraseScrollback), "\x1b[2K"},
		{"Move clamps to one", MoveUp(0), "\x1b[1A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, tt.got)
			}
		})
	}
}
