package ansi

import "io"

// Cursor visibility sequences
const (
	CursorHide = "\x1b[?25l"
	CursorShow = "\x1b[?25h"

	// Position save/restore
	PosSave    = "\x1b[s"
	PosRestore = "\x1b[u"
)

// EraseMethod selects what an erase sequence clears
type EraseMethod uint8

const (
	EraseToEnd      EraseMethod = iota // from cursor to end
	EraseToStart                       // from cursor to start
	EraseAll                           // whole display/line
	EraseScrollback                    // display plus scrollback (display only)
)

// move builds a relative movement sequence with repeat count n
func move(n int, final byte) string {
	if n < 1 {
		n = 1
	}
	buf := make([]byte, 0, 8)
	buf = append(buf, CSI...)
	buf = appendInt(buf, n)
	return string(append(buf, final))
}

// MoveUp moves the cursor up n lines.
func MoveUp(n int) string { return move(n, 'A') }

// MoveDown moves the cursor down n lines.
func MoveDown(n int) string { return move(n, 'B') }

// MoveForward moves the cursor forward n columns.
func MoveForward(n int) string { return move(n, 'C') }

// MoveBack moves the cursor back n columns.
func MoveBack(n int) string { return move(n, 'D') }

// MoveNext moves the cursor to the start of the line n lines down.
func MoveNext(n int) string { return move(n, 'E') }

// MovePrev moves the cursor to the start of the line n lines up.
func MovePrev(n int) string { return move(n, 'F') }

// MoveColumn moves the cursor to an absolute 1-based column.
func MoveColumn(col int) string { return move(col, 'G') }

// MovePos moves the cursor to an absolute 1-based line and column.
func MovePos(line, col int) string {
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	buf := make([]byte, 0, 12)
	buf = append(buf, CSI...)
	buf = appendInt(buf, line)
	buf = append(buf, ';')
	buf = appendInt(buf, col)
	return string(append(buf, 'H'))
}

// ScrollUp scrolls the display up n lines.
func ScrollUp(n int) string { return move(n, 'S') }

// ScrollDown scrolls the display down n lines.
func ScrollDown(n int) string { return move(n, 'T') }

// erase builds an erase sequence; unlike moves, a 0 parameter is
// meaningful here (erase from the cursor to the end).
func erase(m EraseMethod, final byte) string {
	buf := make([]byte, 0, 8)
	buf = append(buf, CSI...)
	buf = appendInt(buf, int(m))
	return string(append(buf, final))
}

// EraseDisplay clears (part of) the display.
func EraseDisplay(m EraseMethod) string {
	return erase(m, 'J')
}

// EraseLine clears (part of) the current line. EraseScrollback is not
// meaningful for lines and is treated as EraseAll.
func EraseLine(m EraseMethod) string {
	if m > EraseAll {
		m = EraseAll
	}
	return erase(m, 'K')
}

// Control accumulates cursor/erase sequences for a single write, the
// control-code counterpart of the Colr chain. The zero value is ready
// to use.
type Control struct {
	buf []byte
}

// NewControl returns an empty Control chain.
func NewControl() *Control {
	return &Control{}
}

func (c *Control) add(s string) *Control {
	c.buf = append(c.buf, s...)
	return c
}

// Text appends literal text.
func (c *Control) Text(s string) *Control { return c.add(s) }

// CursorHide appends the hide-cursor sequence.
func (c *Control) CursorHide() *Control { return c.add(CursorHide) }

// CursorShow appends the show-cursor sequence.
func (c *Control) CursorShow() *Control { return c.add(CursorShow) }

// MoveUp appends an upward move.
func (c *Control) MoveUp(n int) *Control { return c.add(MoveUp(n)) }

// MoveDown appends a downward move.
func (c *Control) MoveDown(n int) *Control { return c.add(MoveDown(n)) }

// MoveForward appends a forward move.
func (c *Control) MoveForward(n int) *Control { return c.add(MoveForward(n)) }

// MoveBack appends a backward move.
func (c *Control) MoveBack(n int) *Control { return c.add(MoveBack(n)) }

// MoveColumn appends an absolute column move.
func (c *Control) MoveColumn(col int) *Control { return c.add(MoveColumn(col)) }

// MovePos appends an absolute position move.
func (c *Control) MovePos(line, col int) *Control { return c.add(MovePos(line, col)) }

// CarriageReturn appends a bare carriage return.
func (c *Control) CarriageReturn() *Control { return c.add("\r") }

// PosSave appends the save-position sequence.
func (c *Control) PosSave() *Control { return c.add(PosSave) }

// PosRestore appends the restore-position sequence.
func (c *Control) PosRestore() *Control { return c.add(PosRestore) }

// EraseDisplay appends a display erase.
func (c *Control) EraseDisplay(m EraseMethod) *Control { return c.add(EraseDisplay(m)) }

// EraseLine appends a line erase.
func (c *Control) EraseLine(m EraseMethod) *Control { return c.add(EraseLine(m)) }

// String returns the accumulated sequence.
func (c *Control) String() string {
	return string(c.buf)
}

// WriteTo writes the accumulated sequence and clears the chain.
func (c *Control) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(c.buf)
	c.buf = c.buf[:0]
	return int64(n), err
}
