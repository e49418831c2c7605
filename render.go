package colr

import (
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/lixenwraith/colr/ansi"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	Mode256       ColorMode = iota // xterm-256 palette; RGB specs down-mapped
	ModeTrueColor                  // 24-bit RGB emitted directly
)

// RenderConfig controls one render pass. There is no process-wide
// enable/disable switch: callers construct a config (usually once) and
// pass it explicitly.
type RenderConfig struct {
	// Enabled selects whether escape codes are emitted at all. When
	// false, rendering yields plain text for styled segments.
	Enabled bool

	// Mode selects the code family used for true color values.
	Mode ColorMode
}

// Default configs
var (
	// TrueColor emits codes with 24-bit color sequences. String() and
	// the comparison operators use this config.
	TrueColor = RenderConfig{Enabled: true, Mode: ModeTrueColor}

	// Palette256 emits codes with RGB values snapped to the palette.
	Palette256 = RenderConfig{Enabled: true, Mode: Mode256}

	// Plain disables code emission entirely.
	Plain = RenderConfig{}
)

// DetectConfig builds a config for the process's stdout: codes are
// enabled only on a terminal, and the mode is taken from the
// environment.
func DetectConfig() RenderConfig {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return Plain
	}
	return RenderConfig{Enabled: true, Mode: DetectColorMode()}
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	// COLORTERM is the strongest signal, set by modern terminals
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ModeTrueColor
	}

	// Terminal-specific env vars
	for _, v := range []string{
		"KITTY_WINDOW_ID",
		"KONSOLE_VERSION",
		"ITERM_SESSION_ID",
		"ALACRITTY_WINDOW_ID",
		"WEZTERM_PANE",
	} {
		if os.Getenv(v) != "" {
			return ModeTrueColor
		}
	}

	// TERM for known true color terminals
	termEnv := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(termEnv, "truecolor") ||
		strings.Contains(termEnv, "24bit") ||
		strings.Contains(termEnv, "direct") {
		return ModeTrueColor
	}

	return Mode256
}

// Segment is one styled run of text: an ordered spec list and the text
// it applies to. Spec order is emission order, except that reset-family
// specs always render first so they cannot cancel the segment's own
// colors.
type Segment struct {
	specs []Spec
	text  string
}

// render writes the segment under a config. A trailing reset is
// appended only when the segment carries text and some code is in
// play, and the text does not already end in a reset sequence. A
// segment with specs but no text defers its reset to whichever later
// segment carries text: open reports whether codes were left unclosed
// for the next segment to settle.
func (s Segment) render(b *strings.Builder, cfg RenderConfig, pendingOpen bool) (open bool) {
	if !cfg.Enabled {
		b.WriteString(s.text)
		return false
	}

	open = pendingOpen
	for _, sp := range s.specs {
		if sp.isReset() {
			b.WriteString(sp.code(cfg.Mode))
			open = false
		}
	}
	for _, sp := range s.specs {
		if !sp.isReset() {
			b.WriteString(sp.code(cfg.Mode))
			open = true
		}
	}
	b.WriteString(s.text)

	if s.text == "" {
		return open
	}
	if strings.Contains(s.text, ansi.Esc) {
		// Embedded codes also demand closing, unless the last one is
		// already a reset
		if last := lastCode(s.text); last != nil {
			if last.IsReset() {
				return false
			}
			open = true
		}
	}
	if open {
		b.WriteString(ansi.Reset)
	}
	return false
}

func lastCode(s string) *ansi.Token {
	toks := ansi.Tokens(s)
	for i := len(toks) - 1; i >= 0; i-- {
		if toks[i].Kind == ansi.SGR {
			return &toks[i]
		}
	}
	return nil
}
