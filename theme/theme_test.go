package theme

import (
	"errors"
	"strings"
	"testing"

	"github.com/lixenwraith/colr"
)

const sample = `
error:
  fore: red
  style: bold
warning: "#ffaf00"
muted:
  fore: "245"
banner:
  fore: white
  back: blue
`

func TestParse(t *testing.T) {
	th, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	expected := []string{"banner", "error", "muted", "warning"}
	got := th.Names()
	if len(got) != len(expected) {
		t.Fatalf("Expected %d roles, got %d", len(expected), len(got))
	}
	for i, name := range expected {
		if got[i] != name {
			t.Errorf("Expected role %q at %d, got %q", name, i, got[i])
		}
	}
}

func TestStyle(t *testing.T) {
	th, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	tests := []struct {
		name     string
		role     string
		text     string
		expected string
	}{
		{"mapping entry", "error", "boom", "\x1b[31m\x1b[1mboom\x1b[0m"},
		{"scalar entry is foreground", "warning", "careful", "\x1b[38;2;255;175;0mcareful\x1b[0m"},
		{"palette index entry", "muted", "x", "\x1b[38;5;245mx\x1b[0m"},
		{"fore and back", "banner", "x", "\x1b[37m\x1b[44mx\x1b[0m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := th.Style(tt.role, tt.text)
			if err != nil {
				t.Fatalf("Style failed: %v", err)
			}
			if got := c.String(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnknownRole(t *testing.T) {
	th, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, err := th.Style("missing", "x"); !errors.Is(err, ErrUnknownRole) {
		t.Errorf("Expected ErrUnknownRole, got %v", err)
	}
}

func TestInvalidSpecifierRejectedAtLoad(t *testing.T) {
	_, err := Parse([]byte("bad: notacolor\n"))
	if !errors.Is(err, colr.ErrInvalidColor) {
		t.Fatalf("Expected ErrInvalidColor, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "bad") {
		t.Errorf("Expected the role name in the error, got %v", err)
	}
}

func TestLoadReader(t *testing.T) {
	th, err := Load(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, err := th.Specs("error"); err != nil {
		t.Errorf("Expected error role, got %v", err)
	}
}

func TestMerge(t *testing.T) {
	base, err := Parse([]byte("a: red\nb: blue\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	over, err := Parse([]byte("b: green\nc: cyan\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	merged := base.Merge(over)
	if len(merged.Names()) != 3 {
		t.Fatalf("Expected 3 roles, got %d", len(merged.Names()))
	}
	c, err := merged.Style("b", "x")
	if err != nil {
		t.Fatalf("Style failed: %v", err)
	}
	if got := c.String(); got != "\x1b[32mx\x1b[0m" {
		t.Errorf("Expected overlay to win, got %q", got)
	}
}
