package animations

// Animation steps through Frames frames, holding each one for TicksPerFrame
// game ticks.
type Animation struct {
	Frames           int
	TicksPerFrame    int
	ticks            int
	frame            int
	Looped           bool // set once the last frame has been passed
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

// Advance moves the animation forward by one tick. It reports true on the
// tick the last frame is passed, whether the animation then wraps or freezes.
func (a *Animation) Advance() (completed bool) {
	a.ticks++
	if a.ticks < a.TicksPerFrame {
		return false
	}
	a.ticks = 0

	if a.FreezeOnComplete && a.Looped {
		return false
	}

	a.frame++
	if a.frame < a.Frames {
		return false
	}

	a.Looped = true
	if a.FreezeOnComplete {
		a.frame = a.Frames - 1
	} else {
		a.frame = 0
	}
	return true
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = 0
	a.ticks = 0
	a.Looped = false
}

func NewAnimation(frames, ticksPerFrame int) *Animation {
	if frames < 1 {
		frames = 1
	}
	if ticksPerFrame < 1 {
		ticksPerFrame = 1
	}
	return &Animation{
		Frames:        frames,
		TicksPerFrame: ticksPerFrame,
	}
}
