// Package palette implements the fixed xterm 256-color palette and
// deterministic conversion between terminal indices, hex strings, and
// 24-bit RGB values.
//
// The palette is built once at init and never mutated: 16 basic colors,
// a 6x6x6 color cube (indices 16-231) over the channel steps
// {0, 95, 135, 175, 215, 255}, and a 24-step grayscale ramp (232-255)
// with levels 8 + 10k. All lookups and nearest-match searches are pure
// and safe for concurrent use.
package palette

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is wrapped by every conversion failure in this package.
var ErrInvalidColor = errors.New("invalid color value")

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Hex returns the 6-digit lowercase hex form without a leading '#'.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// Colorful converts to a go-colorful color for blending/interpolation.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// fromColorful clamps a colorful color back into 8-bit channels.
func fromColorful(c colorful.Color) RGB {
	return RGB{
		R: clamp255(c.R * 255.0),
		G: clamp255(c.G * 255.0),
		B: clamp255(c.B * 255.0),
	}
}

func clamp255(f float64) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 255 {
		return 255
	}
	return uint8(f + 0.5)
}

// Blend interpolates between two colors in RGB space, t in [0,1].
func Blend(a, b RGB, t float64) RGB {
	return fromColorful(a.Colorful().BlendRgb(b.Colorful(), t))
}

// Color cube levels for the 6x6x6 palette (indices 16-231)
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// grayscaleStart is the first grayscale ramp index (232-255 = 24 shades)
const grayscaleStart = 232

// The 16 basic colors use the xterm defaults. Indices 0-7 are the
// standard intensities, 8-15 the bright variants.
var basicColors = [16]RGB{
	{0x00, 0x00, 0x00}, // black
	{0x80, 0x00, 0x00}, // red
	{0x00, 0x80, 0x00}, // green
	{0x80, 0x80, 0x00}, // yellow
	{0x00, 0x00, 0x80}, // blue
	{0x80, 0x00, 0x80}, // magenta
	{0x00, 0x80, 0x80}, // cyan
	{0xc0, 0xc0, 0xc0}, // white
	{0x80, 0x80, 0x80}, // lightblack
	{0xff, 0x00, 0x00}, // lightred
	{0x00, 0xff, 0x00}, // lightgreen
	{0xff, 0xff, 0x00}, // lightyellow
	{0x00, 0x00, 0xff}, // lightblue
	{0xff, 0x00, 0xff}, // lightmagenta
	{0x00, 0xff, 0xff}, // lightcyan
	{0xff, 0xff, 0xff}, // lightwhite
}

// table holds the full 256-entry palette, built at init
var table [256]RGB

// uniqueRGB marks indices whose RGB value appears exactly once in the
// palette. Duplicate entries (e.g. basic red 9 vs cube red 196) resolve
// to the lowest index under the nearest-match tie break.
var uniqueRGB [256]bool

func init() {
	copy(table[:16], basicColors[:])

	// 6x6x6 cube: index = 16 + 36r + 6g + b
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				table[i] = RGB{cubeValues[r], cubeValues[g], cubeValues[b]}
				i++
			}
		}
	}

	// Grayscale ramp: level = 8 + 10k
	for k := 0; k < 24; k++ {
		level := uint8(8 + 10*k)
		table[grayscaleStart+k] = RGB{level, level, level}
	}

	for i := range table {
		uniqueRGB[i] = true
	}
	for i := 0; i < 256; i++ {
		for j := i + 1; j < 256; j++ {
			if table[i] == table[j] {
				uniqueRGB[i] = false
				uniqueRGB[j] = false
			}
		}
	}
}

// TermToRGB returns the palette color for a terminal index.
func TermToRGB(index int) (RGB, error) {
	if index < 0 || index > 255 {
		return RGB{}, fmt.Errorf("terminal index %d out of range 0-255: %w", index, ErrInvalidColor)
	}
	return table[index], nil
}

// RGBToTerm finds the nearest palette index for a color using squared
// Euclidean distance over all 256 entries. Ties break to the lowest
// index, so palette colors duplicated between the basic and extended
// ranges (black, bright red, white, mid-gray, ...) resolve to the basic
// index. Deterministic for all inputs.
func RGBToTerm(c RGB) uint8 {
	best := 0
	bestDist := distSq(c, table[0])
	for i := 1; i < 256; i++ {
		if d := distSq(c, table[i]); d < bestDist {
			bestDist = d
			best = i
			if d == 0 {
				break
			}
		}
	}
	return uint8(best)
}

func distSq(a, b RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

// RGBToTermHex returns the hex value of the nearest palette entry.
func RGBToTermHex(c RGB) string {
	return table[RGBToTerm(c)].Hex()
}
