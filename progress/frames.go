// Package progress animates spinners and progress bars on a terminal.
// Each animation owns a ticker goroutine that re-renders one frame per
// tick through the colr text model; cancellation is cooperative and
// ticks never overlap.
package progress

import "time"

// FrameSet is a named spinner frame list with its animation delay.
type FrameSet struct {
	Name   string
	Frames []string
	Delay  time.Duration
}

// Frame returns the frame for tick i, cycling.
func (f FrameSet) Frame(i int) string {
	if len(f.Frames) == 0 {
		return ""
	}
	return f.Frames[i%len(f.Frames)]
}

// splitFrames treats each rune of s as one frame
func splitFrames(s string) []string {
	var out []string
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// Built-in frame sets
var (
	Dots = FrameSet{
		Name:   "dots",
		Frames: splitFrames("⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏"),
		Delay:  100 * time.Millisecond,
	}

	Bounce = FrameSet{
		Name:   "bounce",
		Frames: splitFrames("⠁⠂⠄⠂"),
		Delay:  250 * time.Millisecond,
	}

	Arc = FrameSet{
		Name:   "arc",
		Frames: splitFrames("◜◠◝◞◡◟"),
		Delay:  250 * time.Millisecond,
	}

	Arrows = FrameSet{
		Name: "arrows",
		Frames: []string{
			"▹▹▹▹▹",
			"▸▹▹▹▹",
			"▹▸▹▹▹",
			"▹▹▸▹▹",
			"▹▹▹▸▹",
			"▹▹▹▹▸",
		},
		Delay: 250 * time.Millisecond,
	}

	BouncingBall = FrameSet{
		Name: "bouncing_ball",
		Frames: []string{
			"( ●    )",
			"(  ●   )",
			"(   ●  )",
			"(    ● )",
			"(     ●)",
			"(    ● )",
			"(   ●  )",
			"(  ●   )",
			"( ●    )",
			"(●     )",
		},
		Delay: 100 * time.Millisecond,
	}
)

// BarSet describes the characters a Bar draws with.
type BarSet struct {
	Name    string
	Fill    string
	Empty   string
	Wrapper [2]string
}

// Built-in bar sets
var (
	Blocks = BarSet{
		Name:    "blocks",
		Fill:    "█",
		Empty:   " ",
		Wrapper: [2]string{"[", "]"},
	}

	Hashes = BarSet{
		Name:    "hashes",
		Fill:    "#",
		Empty:   "-",
		Wrapper: [2]string{"[", "]"},
	}
)
