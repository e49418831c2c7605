package palette

import (
	"fmt"
	"strings"
)

// HexToRGB parses a hex color string. Accepts 6-digit and 3-digit forms,
// with or without a leading '#'. In the 3-digit form each channel digit
// is doubled ("#1af" == "#11aaff").
func HexToRGB(hex string) (RGB, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	switch len(s) {
	case 3:
		var buf [6]byte
		for i := 0; i < 3; i++ {
			buf[2*i] = s[i]
			buf[2*i+1] = s[i]
		}
		s = string(buf[:])
	case 6:
	default:
		return RGB{}, fmt.Errorf("hex color %q is not 3 or 6 digits: %w", hex, ErrInvalidColor)
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(s[2*i])
		lo, ok2 := hexDigit(s[2*i+1])
		if !ok1 || !ok2 {
			return RGB{}, fmt.Errorf("hex color %q contains non-hex characters: %w", hex, ErrInvalidColor)
		}
		ch[i] = hi<<4 | lo
	}
	return RGB{ch[0], ch[1], ch[2]}, nil
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// RGBToHex formats a color as a 6-digit lowercase hex string. Exact
// inverse of HexToRGB for 6-digit input.
func RGBToHex(c RGB) string {
	return c.Hex()
}

// HexToTerm converts a hex string to the nearest terminal index.
func HexToTerm(hex string) (uint8, error) {
	c, err := HexToRGB(hex)
	if err != nil {
		return 0, err
	}
	return RGBToTerm(c), nil
}

// HexToTermHex converts a hex string to the hex of the nearest palette
// entry. The result is always a value present in the palette.
func HexToTermHex(hex string) (string, error) {
	c, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}
	return RGBToTermHex(c), nil
}

// TermToHex returns the hex value for a terminal index.
func TermToHex(index int) (string, error) {
	c, err := TermToRGB(index)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

// ColorCode bundles the three representations of one palette color:
// terminal index, hex value, and RGB triple. The RGB and hex values are
// the nearest palette match for whatever the code was built from.
type ColorCode struct {
	Code uint8
	Hex  string
	RGB  RGB
}

// FromTerm builds a ColorCode from a terminal index.
func FromTerm(index int) (ColorCode, error) {
	c, err := TermToRGB(index)
	if err != nil {
		return ColorCode{}, err
	}
	return ColorCode{Code: uint8(index), Hex: c.Hex(), RGB: c}, nil
}

// FromHex builds a ColorCode from a hex string, snapping to the nearest
// palette entry.
func FromHex(hex string) (ColorCode, error) {
	c, err := HexToRGB(hex)
	if err != nil {
		return ColorCode{}, err
	}
	return FromRGB(c), nil
}

// FromRGB builds a ColorCode from an RGB value, snapping to the nearest
// palette entry.
func FromRGB(c RGB) ColorCode {
	idx := RGBToTerm(c)
	snapped := table[idx]
	return ColorCode{Code: idx, Hex: snapped.Hex(), RGB: snapped}
}

// String renders a console-friendly summary of the code.
func (cc ColorCode) String() string {
	return fmt.Sprintf("Terminal: %3d, Hex: %s, RGB: %3d, %3d, %3d",
		cc.Code, cc.Hex, cc.RGB.R, cc.RGB.G, cc.RGB.B)
}
