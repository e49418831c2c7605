package colr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/colr/ansi"
	"github.com/lixenwraith/colr/palette"
)

// Re-exported error sentinels so callers can match the whole taxonomy
// from one package.
var (
	// ErrInvalidColor reports an unknown name, out-of-range number, or
	// malformed hex specifier.
	ErrInvalidColor = palette.ErrInvalidColor

	// ErrTypeMismatch reports an argument of the wrong shape, such as a
	// negative repeat count or an unsupported join part.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrIndexOutOfRange reports indexing/slicing beyond the visible length.
	ErrIndexOutOfRange = ansi.ErrIndexOutOfRange
)

// ColorKind tags the ColorValue variants
type ColorKind uint8

const (
	ColorDefault  ColorKind = iota // terminal default, SGR 39/49
	ColorNamed                     // basic color selected by name
	ColorBasic                     // basic palette index 0-15
	ColorExtended                  // extended palette index 0-255
	ColorRGB                       // 24-bit true color
)

// ColorValue is a validated color in one of the five representations.
// Construct through Default, Named, Basic, Extended, RGB, or Hex; the
// zero value is the terminal default.
type ColorValue struct {
	Kind ColorKind
	name string      // ColorNamed only
	num  uint8       // ColorNamed/ColorBasic/ColorExtended index
	rgb  palette.RGB // ColorRGB only
}

// Default returns the terminal default color.
func Default() ColorValue {
	return ColorValue{Kind: ColorDefault}
}

// Named resolves a basic color name (black..white plus light*
// variants, case-insensitive).
func Named(name string) (ColorValue, error) {
	n, err := palette.NameToBasic(name)
	if err != nil {
		return ColorValue{}, err
	}
	return ColorValue{Kind: ColorNamed, name: strings.ToLower(strings.TrimSpace(name)), num: n}, nil
}

// Basic validates a basic palette index 0-15.
func Basic(n int) (ColorValue, error) {
	if n < 0 || n > 15 {
		return ColorValue{}, fmt.Errorf("basic color %d out of range 0-15: %w", n, ErrInvalidColor)
	}
	return ColorValue{Kind: ColorBasic, num: uint8(n)}, nil
}

// Extended validates an extended palette index 0-255.
func Extended(n int) (ColorValue, error) {
	if n < 0 || n > 255 {
		return ColorValue{}, fmt.Errorf("extended color %d out of range 0-255: %w", n, ErrInvalidColor)
	}
	return ColorValue{Kind: ColorExtended, num: uint8(n)}, nil
}

// RGB validates a true color triple.
func RGB(r, g, b int) (ColorValue, error) {
	for _, ch := range [3]int{r, g, b} {
		if ch < 0 || ch > 255 {
			return ColorValue{}, fmt.Errorf("rgb channel %d out of range 0-255: %w", ch, ErrInvalidColor)
		}
	}
	return ColorValue{Kind: ColorRGB, rgb: palette.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}}, nil
}

// Hex parses a 3- or 6-digit hex specifier into a true color value.
func Hex(hex string) (ColorValue, error) {
	c, err := palette.HexToRGB(hex)
	if err != nil {
		return ColorValue{}, err
	}
	return ColorValue{Kind: ColorRGB, rgb: c}, nil
}

// fromRGB wraps an already-validated palette color.
func fromRGB(c palette.RGB) ColorValue {
	return ColorValue{Kind: ColorRGB, rgb: c}
}

// ParseColor resolves a string specifier in any accepted form: a reset
// alias ("reset", "normal", "default", "none"), a basic color name, a
// known extended color name, a palette index 0-255, or a hex value.
// Pure digit strings are read as palette indices, so three-digit hex
// values like "123" need a leading '#'.
func ParseColor(s string) (ColorValue, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	if t == "" {
		return ColorValue{}, fmt.Errorf("empty color specifier: %w", ErrInvalidColor)
	}
	if palette.IsResetName(t) {
		return Default(), nil
	}
	if v, err := Named(t); err == nil {
		return v, nil
	}
	if c, ok := palette.NamedRGB(t); ok {
		return fromRGB(c), nil
	}
	if n, err := strconv.Atoi(t); err == nil {
		return Extended(n)
	}
	if c, err := palette.HexToRGB(t); err == nil {
		return fromRGB(c), nil
	}
	return ColorValue{}, fmt.Errorf("unknown color specifier %q: %w", s, ErrInvalidColor)
}

// Style is the closed set of SGR text attributes.
type Style uint8

const (
	StyleResetAll  Style = 0
	StyleBold      Style = 1
	StyleDim       Style = 2
	StyleItalic    Style = 3
	StyleUnderline Style = 4
	StyleFlash     Style = 5
	StyleHighlight Style = 7
	StyleNormal    Style = 22
)

var styleNames = map[string]Style{
	"reset_all":  StyleResetAll,
	"0":          StyleResetAll,
	"b":          StyleBold,
	"bright":     StyleBold,
	"bold":       StyleBold,
	"1":          StyleBold,
	"d":          StyleDim,
	"dim":        StyleDim,
	"2":          StyleDim,
	"i":          StyleItalic,
	"italic":     StyleItalic,
	"3":          StyleItalic,
	"u":          StyleUnderline,
	"underline":  StyleUnderline,
	"underlined": StyleUnderline,
	"4":          StyleUnderline,
	"f":          StyleFlash,
	"flash":      StyleFlash,
	"5":          StyleFlash,
	"h":          StyleHighlight,
	"highlight":  StyleHighlight,
	"reverse":    StyleHighlight,
	"7":          StyleHighlight,
	"n":          StyleNormal,
	"normal":     StyleNormal,
	"none":       StyleNormal,
	"22":         StyleNormal,
}

// ParseStyle resolves a style name or alias from the closed table.
func ParseStyle(name string) (Style, error) {
	st, ok := styleNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown style %q: %w", name, ErrInvalidColor)
	}
	return st, nil
}

// Layer selects which SGR layer a color applies to
type Layer uint8

const (
	Fore Layer = iota
	Back
)

// Spec is one resolved color or style entry of a segment: either a
// {layer, color} pair or a standalone style.
type Spec struct {
	IsStyle bool
	Style   Style
	Layer   Layer
	Value   ColorValue
}

// ForeSpec wraps a color value as a foreground spec.
func ForeSpec(v ColorValue) Spec {
	return Spec{Layer: Fore, Value: v}
}

// BackSpec wraps a color value as a background spec.
func BackSpec(v ColorValue) Spec {
	return Spec{Layer: Back, Value: v}
}

// StyleSpec wraps a style as a spec.
func StyleSpec(st Style) Spec {
	return Spec{IsStyle: true, Style: st}
}

// Resolve validates a string specifier against the name tables and
// returns a layer spec, the single entry point behind the convenience
// chain methods.
func Resolve(layer Layer, spec string) (Spec, error) {
	v, err := ParseColor(spec)
	if err != nil {
		return Spec{}, err
	}
	return Spec{Layer: layer, Value: v}, nil
}

// ResolveStyle validates a style name and returns a style spec.
func ResolveStyle(name string) (Spec, error) {
	st, err := ParseStyle(name)
	if err != nil {
		return Spec{}, err
	}
	return StyleSpec(st), nil
}

// isReset reports whether the spec renders a reset-family code, which
// must be emitted ahead of color codes within a segment.
func (sp Spec) isReset() bool {
	if sp.IsStyle {
		return sp.Style == StyleResetAll
	}
	return sp.Value.Kind == ColorDefault
}

// code renders the escape sequence for this spec under a color mode.
// True color values are down-mapped to the nearest palette index in
// 256-color mode.
func (sp Spec) code(mode ColorMode) string {
	if sp.IsStyle {
		return ansi.Style(int(sp.Style))
	}
	v := sp.Value
	switch v.Kind {
	case ColorDefault:
		if sp.Layer == Back {
			return ansi.BackDefault
		}
		return ansi.ForeDefault
	case ColorNamed, ColorBasic:
		if sp.Layer == Back {
			return ansi.Back(v.num)
		}
		return ansi.Fore(v.num)
	case ColorExtended:
		if sp.Layer == Back {
			return ansi.BackExt(v.num)
		}
		return ansi.ForeExt(v.num)
	default: // ColorRGB
		if mode == Mode256 {
			n := palette.RGBToTerm(v.rgb)
			if sp.Layer == Back {
				return ansi.BackExt(n)
			}
			return ansi.ForeExt(n)
		}
		if sp.Layer == Back {
			return ansi.BackRGB(v.rgb.R, v.rgb.G, v.rgb.B)
		}
		return ansi.ForeRGB(v.rgb.R, v.rgb.G, v.rgb.B)
	}
}
