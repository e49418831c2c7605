package colr

import (
	"fmt"
	"math"
	"strings"

	"github.com/lixenwraith/colr/palette"
)

// The gradient methods append one segment per chunk of step runes,
// each carrying a single color spec. Multi-line text is gradiented per
// line; movefactor shifts each following line's starting point in the
// color sequence, signed, so repeated lines animate diagonally.

// rgbValue extracts the concrete RGB of a color value, resolving
// palette indices through the lookup table.
func (v ColorValue) rgbValue() (palette.RGB, error) {
	switch v.Kind {
	case ColorRGB:
		return v.rgb, nil
	case ColorNamed, ColorBasic, ColorExtended:
		return palette.TermToRGB(int(v.num))
	default:
		return palette.RGB{}, fmt.Errorf("default color has no rgb value: %w", ErrInvalidColor)
	}
}

// rgbSpec wraps a concrete color as a fore or back spec, down-mapping
// happens at render time via the config's mode.
func rgbSpec(c palette.RGB, back bool) Spec {
	v := fromRGB(c)
	if back {
		return BackSpec(v)
	}
	return ForeSpec(v)
}

// extSpec wraps a palette index as a fore or back spec
func extSpec(n uint8, back bool) Spec {
	v := ColorValue{Kind: ColorExtended, num: n}
	if back {
		return BackSpec(v)
	}
	return ForeSpec(v)
}

// chunks splits a line into runs of step runes
func chunks(line string, step int) []string {
	if step < 1 {
		step = 1
	}
	runes := []rune(line)
	var out []string
	for i := 0; i < len(runes); i += step {
		end := i + step
		if end > len(runes) {
			end = len(runes)
		}
		out = append(out, string(runes[i:end]))
	}
	return out
}

// wrapIndex maps a signed position into [0, n) with wraparound
func wrapIndex(pos, n int) int {
	if n <= 0 {
		return 0
	}
	m := pos % n
	if m < 0 {
		m += n
	}
	return m
}

// GradientRGB appends text colored by a linear blend from start to
// stop, one color per step runes. When back is true the background is
// gradiented instead of the foreground.
func (c *Colr) GradientRGB(text string, start, stop ColorValue, step, movefactor int, back bool) *Colr {
	if c.err != nil {
		return c
	}
	a, err := start.rgbValue()
	if err != nil {
		return c.fail(err)
	}
	b, err := stop.rgbValue()
	if err != nil {
		return c.fail(err)
	}
	offset := 0
	for li, line := range strings.Split(text, "\n") {
		if li > 0 {
			c.Plain("\n")
			offset += movefactor
		}
		parts := chunks(line, step)
		n := len(parts)
		for j, part := range parts {
			t := 0.0
			if n > 1 {
				t = float64(wrapIndex(j+offset, n)) / float64(n-1)
			}
			c.Append(part, rgbSpec(palette.Blend(a, b, t), back))
		}
	}
	return c
}

// grayRamp bounces a position across the grayscale ramp indices
// 232-255, reversing direction at each end.
func grayRamp(pos int, reverse bool) uint8 {
	const size = 24
	period := 2*size - 2
	v := wrapIndex(pos, period)
	if v >= size {
		v = period - v
	}
	if reverse {
		v = size - 1 - v
	}
	return uint8(232 + v)
}

// GradientBlack appends text colored across the black-to-white
// grayscale ramp, advancing one ramp entry per step runes and bouncing
// at the ends. reverse starts from white; back gradients the
// background.
func (c *Colr) GradientBlack(text string, step, movefactor int, reverse, back bool) *Colr {
	if c.err != nil {
		return c
	}
	offset := 0
	for li, line := range strings.Split(text, "\n") {
		if li > 0 {
			c.Plain("\n")
			offset += movefactor
		}
		for j, part := range chunks(line, step) {
			c.Append(part, extSpec(grayRamp(j+offset, reverse), back))
		}
	}
	return c
}

// rainbowRGB produces the sinusoidal rainbow color at a position
func rainbowRGB(freq, pos float64) palette.RGB {
	const third = 2 * math.Pi / 3
	f := func(shift float64) uint8 {
		return uint8(math.Sin(freq*pos+shift)*127 + 128)
	}
	return palette.RGB{R: f(0), G: f(third), B: f(2 * third)}
}

// Rainbow appends text colored per character by a sinusoidal hue walk.
// freq controls how fast the hue cycles, offset shifts the starting
// hue, and spread stretches the cycle across characters. rgbMode emits
// true color values; otherwise each color snaps to the nearest palette
// index. back colors the background.
func (c *Colr) Rainbow(text string, freq float64, offset int, spread float64, movefactor int, back, rgbMode bool) *Colr {
	if c.err != nil {
		return c
	}
	if spread <= 0 {
		spread = 1
	}
	lineOffset := 0
	for li, line := range strings.Split(text, "\n") {
		if li > 0 {
			c.Plain("\n")
			lineOffset += movefactor
		}
		for i, r := range []rune(line) {
			pos := float64(offset+lineOffset) + float64(i)/spread
			rgb := rainbowRGB(freq, pos)
			if rgbMode {
				c.Append(string(r), rgbSpec(rgb, back))
			} else {
				c.Append(string(r), extSpec(palette.RGBToTerm(rgb), back))
			}
		}
	}
	return c
}
