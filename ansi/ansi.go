// Package ansi provides escape-code-aware text handling: SGR and
// cursor/erase sequence construction, a restartable tokenizer that
// separates escape sequences from visible text, and string operations
// (strip, measure, index, slice, justify, trim) that treat embedded
// codes as zero-width metadata.
//
// This package emits and recognizes direct ANSI sequences without
// terminfo/termcap, targeting xterm-compatible terminals.
package ansi

// Escape sequence fragments
const (
	Esc   = "\x1b"
	CSI   = "\x1b[" // Control Sequence Introducer
	Reset = "\x1b[0m"

	// Default-color SGR codes per layer
	ForeDefault = "\x1b[39m"
	BackDefault = "\x1b[49m"
)

// appendInt appends a non-negative integer without allocation.
// Optimized for terminal values (0-255 common, 0-999 typical max).
func appendInt(buf []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	switch {
	case n < 10:
		return append(buf, byte(n)+'0')
	case n < 100:
		return append(buf, byte(n/10)+'0', byte(n%10)+'0')
	case n < 1000:
		return append(buf, byte(n/100)+'0', byte(n/10%10)+'0', byte(n%10)+'0')
	}
	var tmp [8]byte
	i := len(tmp)
	for n > 0 {
		i--
		tmp[i] = byte(n%10) + '0'
		n /= 10
	}
	return append(buf, tmp[i:]...)
}

// sgr builds a CSI sequence with the given parameters and final 'm'.
func sgr(params ...int) string {
	buf := make([]byte, 0, 16)
	buf = append(buf, CSI...)
	for i, p := range params {
		if i > 0 {
			buf = append(buf, ';')
		}
		buf = appendInt(buf, p)
	}
	return string(append(buf, 'm'))
}

// Fore returns the SGR sequence for a basic foreground color 0-15
// (30-37 standard, 90-97 bright).
func Fore(n uint8) string {
	if n < 8 {
		return sgr(30 + int(n))
	}
	return sgr(90 + int(n) - 8)
}

// Back returns the SGR sequence for a basic background color 0-15
// (40-47 standard, 100-107 bright).
func Back(n uint8) string {
	if n < 8 {
		return sgr(40 + int(n))
	}
	return sgr(100 + int(n) - 8)
}

// ForeExt returns the extended 256-color foreground sequence 38;5;N.
func ForeExt(n uint8) string {
	return sgr(38, 5, int(n))
}

// BackExt returns the extended 256-color background sequence 48;5;N.
func BackExt(n uint8) string {
	return sgr(48, 5, int(n))
}

// ForeRGB returns the true color foreground sequence 38;2;R;G;B.
func ForeRGB(r, g, b uint8) string {
	return sgr(38, 2, int(r), int(g), int(b))
}

// BackRGB returns the true color background sequence 48;2;R;G;B.
func BackRGB(r, g, b uint8) string {
	return sgr(48, 2, int(r), int(g), int(b))
}

// Style returns the SGR sequence for a single style code (bold,
// underline, reset, ...).
func Style(n int) string {
	return sgr(n)
}
