package components

import (
	"github.com/automoto/brawler/assets/animations"
	"github.com/automoto/brawler/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentSheet     config.StateID
	Animations       map[config.StateID]*animations.Animation

	// Frames holds the sliced sheet, one row per action. Nil when no sheet
	// has been loaded, in which case the renderer falls back to the hitbox.
	Frames    [][]*ebiten.Image
	FrameSize int
	Scale     float64
	OffsetX   float64 // unscaled pixels between the frame's left edge and the hitbox
	OffsetY   float64
}

// SetAnimation switches to the animation for state. A change of state always
// starts the new animation from its first frame.
func (a *AnimationData) SetAnimation(state config.StateID) {
	if a.CurrentSheet == state && a.CurrentAnimation != nil {
		return
	}

	anim, ok := a.Animations[state]
	if !ok {
		// No animation for this state, clear current
		a.CurrentAnimation = nil
		a.CurrentSheet = state
		return
	}

	a.CurrentAnimation = anim
	a.CurrentSheet = state
	a.CurrentAnimation.Restart()
}

// Frame returns the current frame index, or 0 when nothing is playing.
func (a *AnimationData) Frame() int {
	if a.CurrentAnimation == nil {
		return 0
	}
	return a.CurrentAnimation.Frame()
}

// Image returns the sheet frame to draw this tick, or nil.
func (a *AnimationData) Image() *ebiten.Image {
	row := int(a.CurrentSheet)
	if row < 0 || row >= len(a.Frames) {
		return nil
	}
	frame := a.Frame()
	if frame >= len(a.Frames[row]) {
		return nil
	}
	return a.Frames[row][frame]
}

var Animation = donburi.NewComponentType[AnimationData]()
