package factory

import (
	"image"
	"testing"

	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/prefabs"
)

func TestFrameRect(t *testing.T) {
	tests := []struct {
		row, col, size int
		want           image.Rectangle
	}{
		{0, 0, 100, image.Rect(0, 0, 100, 100)},
		{0, 3, 100, image.Rect(300, 0, 400, 100)},
		{2, 1, 162, image.Rect(162, 324, 324, 486)},
	}
	for _, tt := range tests {
		if got := FrameRect(tt.row, tt.col, tt.size); got != tt.want {
			t.Fatalf("FrameRect(%d, %d, %d) = %v, want %v", tt.row, tt.col, tt.size, got, tt.want)
		}
	}
}

func TestGenerateAnimationsWithoutSheet(t *testing.T) {
	spec := &prefabs.FighterSpec{
		Name:           "test",
		Sheet:          "test.png",
		FrameSize:      100,
		Scale:          2,
		AnimationSteps: []int{4, 6, 1, 5, 5, 2, 3},
	}

	anim := GenerateAnimations(spec, nil)

	if len(anim.Animations) != int(cfg.StateCount) {
		t.Fatalf("expected %d animations, got %d", cfg.StateCount, len(anim.Animations))
	}
	if anim.Animations[cfg.Run].Frames != 6 {
		t.Fatalf("expected 6 run frames, got %d", anim.Animations[cfg.Run].Frames)
	}
	if !anim.Animations[cfg.Death].FreezeOnComplete {
		t.Fatal("expected death animation to freeze on its last frame")
	}
	if anim.Animations[cfg.Idle].FreezeOnComplete {
		t.Fatal("expected idle animation to loop")
	}
	if anim.CurrentSheet != cfg.Idle || anim.CurrentAnimation != anim.Animations[cfg.Idle] {
		t.Fatal("expected to start on idle")
	}
	if anim.Frames != nil {
		t.Fatal("expected no frames without a sheet")
	}
	if anim.Scale != 2 || anim.FrameSize != 100 {
		t.Fatalf("expected scale 2 and size 100, got %v and %d", anim.Scale, anim.FrameSize)
	}
}
