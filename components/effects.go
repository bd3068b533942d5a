package components

import (
	"math"

	"github.com/yohamta/donburi"
)

// ScreenShakeData shakes the whole arena after a hit. It lives on the arena
// entry and is removed once it has run for Duration frames.
type ScreenShakeData struct {
	Intensity float64 // starting offset in pixels
	Duration  int     // total frames
	Elapsed   int
}

// Offset is this frame's displacement. The amplitude fades out linearly and
// the two axes oscillate at different rates so the motion is not diagonal.
func (s *ScreenShakeData) Offset() (float64, float64) {
	if s.Duration <= 0 || s.Elapsed >= s.Duration {
		return 0, 0
	}
	amplitude := s.Intensity * float64(s.Duration-s.Elapsed) / float64(s.Duration)
	t := float64(s.Elapsed)
	return math.Sin(t*1.1) * amplitude, math.Cos(t*1.3) * amplitude
}

// Done reports whether the shake has run its course.
func (s *ScreenShakeData) Done() bool {
	return s.Elapsed >= s.Duration
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashData tints a fighter for a few frames after it takes a hit.
type FlashData struct {
	Duration int     // frames remaining
	R, G, B  float32 // colour multipliers, 3,1,1 reads as red
}

func (f *FlashData) Active() bool {
	return f.Duration > 0
}

// Start (re)starts the flash, replacing any flash still running.
func (f *FlashData) Start(frames int, r, g, b float32) {
	f.Duration = frames
	f.R, f.G, f.B = r, g, b
}

var Flash = donburi.NewComponentType[FlashData]()
