package factory

import (
	"image"

	"github.com/automoto/brawler/assets/animations"
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/prefabs"
	"github.com/hajimehoshi/ebiten/v2"
)

// FrameRect returns the source rectangle of the frame at (row, col) in a
// sheet of square frames.
func FrameRect(row, col, size int) image.Rectangle {
	x := col * size
	y := row * size
	return image.Rect(x, y, x+size, y+size)
}

// SliceSheet cuts a sheet into one row of frames per action. steps[i] is the
// number of frames in row i.
func SliceSheet(sheet *ebiten.Image, frameSize int, steps []int) [][]*ebiten.Image {
	rows := make([][]*ebiten.Image, len(steps))
	for row, count := range steps {
		frames := make([]*ebiten.Image, count)
		for col := 0; col < count; col++ {
			frames[col] = sheet.SubImage(FrameRect(row, col, frameSize)).(*ebiten.Image)
		}
		rows[row] = frames
	}
	return rows
}

// GenerateAnimations builds the AnimationData for a fighter spec. A nil sheet
// gives animations without images.
func GenerateAnimations(spec *prefabs.FighterSpec, sheet *ebiten.Image) *components.AnimationData {
	animData := &components.AnimationData{
		Animations:   make(map[cfg.StateID]*animations.Animation),
		CurrentSheet: cfg.Idle, // Default state
		FrameSize:    spec.FrameSize,
		Scale:        spec.Scale,
		OffsetX:      spec.OffsetX,
		OffsetY:      spec.OffsetY,
	}

	for i, steps := range spec.AnimationSteps {
		state := cfg.StateID(i)
		anim := animations.NewAnimation(steps, cfg.Animation.FrameTicks)
		// Dead fighters stay on the last frame
		anim.FreezeOnComplete = state == cfg.Death
		animData.Animations[state] = anim
	}

	if sheet != nil {
		animData.Frames = SliceSheet(sheet, spec.FrameSize, spec.AnimationSteps)
	}

	animData.CurrentAnimation = animData.Animations[cfg.Idle]
	return animData
}
