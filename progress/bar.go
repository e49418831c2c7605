package progress

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/colr"
	"github.com/lixenwraith/colr/ansi"
)

// defaultBarInterval redraws fast enough to look continuous without
// flooding slow terminals
const defaultBarInterval = 80 * time.Millisecond

// Bar animates a percentage bar, redrawing the current line on each
// tick from the most recent Update value. Like Spinner it owns one
// ticker goroutine with cooperative stop.
type Bar struct {
	w        io.Writer
	set      BarSet
	width    int
	interval time.Duration
	cfg      colr.RenderConfig
	specs    []colr.Spec

	mu       sync.Mutex
	fraction float64
	message  string
	running  bool
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewBar creates a bar of width fill cells writing to w.
func NewBar(w io.Writer, set BarSet, width int) *Bar {
	if width < 1 {
		width = 40
	}
	return &Bar{
		w:        w,
		set:      set,
		width:    width,
		interval: defaultBarInterval,
		cfg:      colr.TrueColor,
	}
}

// WithConfig sets the render config. Call before Start.
func (b *Bar) WithConfig(cfg colr.RenderConfig) *Bar {
	b.cfg = cfg
	return b
}

// WithSpecs colors the filled portion. Call before Start.
func (b *Bar) WithSpecs(specs ...colr.Spec) *Bar {
	b.specs = specs
	return b
}

// WithInterval sets the redraw interval. Call before Start.
func (b *Bar) WithInterval(d time.Duration) *Bar {
	if d > 0 {
		b.interval = d
	}
	return b
}

// Update sets the completed fraction, clamped to [0, 1].
func (b *Bar) Update(fraction float64) {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	b.mu.Lock()
	b.fraction = fraction
	b.mu.Unlock()
}

// SetMessage replaces the label drawn after the percentage.
func (b *Bar) SetMessage(msg string) {
	b.mu.Lock()
	b.message = msg
	b.mu.Unlock()
}

// Start launches the redraw goroutine. Starting a running bar is a
// no-op.
func (b *Bar) Start() {
	b.mu.Lock()
	if b.running {
		b.mu.Unlock()
		return
	}
	b.running = true
	b.stopCh = make(chan struct{})
	b.doneCh = make(chan struct{})
	b.mu.Unlock()

	go b.loop()
}

// Stop signals the redraw goroutine, waits for it, and leaves the
// final frame on screen followed by a newline.
func (b *Bar) Stop() {
	b.mu.Lock()
	if !b.running {
		b.mu.Unlock()
		return
	}
	b.running = false
	stopCh := b.stopCh
	doneCh := b.doneCh
	b.mu.Unlock()

	close(stopCh)
	<-doneCh
}

func (b *Bar) loop() {
	defer close(b.doneCh)

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	b.draw()
	for {
		select {
		case <-b.stopCh:
			b.draw()
			fmt.Fprintln(b.w)
			return
		case <-ticker.C:
			b.draw()
		}
	}
}

func (b *Bar) draw() {
	b.mu.Lock()
	fraction := b.fraction
	message := b.message
	b.mu.Unlock()

	filled := int(fraction*float64(b.width) + 0.5)
	if filled > b.width {
		filled = b.width
	}

	chain := colr.New().
		Plain(b.set.Wrapper[0]).
		Append(strings.Repeat(b.set.Fill, filled), b.specs...).
		Plain(strings.Repeat(b.set.Empty, b.width-filled)).
		Plain(b.set.Wrapper[1]).
		Plain(fmt.Sprintf(" %3.0f%%", fraction*100))
	if message != "" {
		// Keep the label from wrapping past a conventional line
		chain.Plain(" " + runewidth.Truncate(message, 60, "…"))
	}

	out, err := chain.Render(b.cfg)
	if err != nil {
		return
	}
	fmt.Fprint(b.w, "\r"+ansi.EraseLine(ansi.EraseAll)+out)
}
