package progress

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/lixenwraith/colr"
	"github.com/lixenwraith/colr/ansi"
)

// Spinner animates a frame set next to a message, overwriting the
// current line on each tick. Start launches the ticker goroutine;
// Stop signals it and waits for the final erase. The message may be
// updated from any goroutine while the spinner runs.
type Spinner struct {
	w      io.Writer
	frames FrameSet
	cfg    colr.RenderConfig
	specs  []colr.Spec

	mu      sync.Mutex
	text    string
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewSpinner creates a spinner writing to w. Frames with no delay get
// the dots default.
func NewSpinner(w io.Writer, frames FrameSet) *Spinner {
	if frames.Delay <= 0 {
		frames.Delay = Dots.Delay
	}
	return &Spinner{
		w:      w,
		frames: frames,
		cfg:    colr.TrueColor,
	}
}

// WithConfig sets the render config. Call before Start.
func (s *Spinner) WithConfig(cfg colr.RenderConfig) *Spinner {
	s.cfg = cfg
	return s
}

// WithSpecs colors the frame glyphs. Call before Start.
func (s *Spinner) WithSpecs(specs ...colr.Spec) *Spinner {
	s.specs = specs
	return s
}

// SetText replaces the message shown after the frame.
func (s *Spinner) SetText(text string) {
	s.mu.Lock()
	s.text = text
	s.mu.Unlock()
}

// Start launches the animation goroutine. Starting a running spinner
// is a no-op.
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	s.mu.Unlock()

	go s.loop()
}

// Stop signals the animation to finish and waits for the line to be
// erased. Stopping a stopped spinner is a no-op.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	stopCh := s.stopCh
	doneCh := s.doneCh
	s.mu.Unlock()

	close(stopCh)
	<-doneCh
}

func (s *Spinner) loop() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.frames.Delay)
	defer ticker.Stop()

	i := 0
	s.writeFrame(i)
	for {
		select {
		case <-s.stopCh:
			fmt.Fprint(s.w, "\r"+ansi.EraseLine(ansi.EraseAll))
			return
		case <-ticker.C:
			i++
			s.writeFrame(i)
		}
	}
}

// writeFrame renders one frame synchronously, so ticks never overlap
func (s *Spinner) writeFrame(i int) {
	s.mu.Lock()
	text := s.text
	s.mu.Unlock()

	chain := colr.New().Append(s.frames.Frame(i), s.specs...)
	if text != "" {
		chain.Plain(" " + text)
	}
	out, err := chain.Render(s.cfg)
	if err != nil {
		return
	}
	fmt.Fprint(s.w, "\r"+ansi.EraseLine(ansi.EraseAll)+out)
}
