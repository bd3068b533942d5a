package animations

import "testing"

func TestAdvanceHoldsEachFrame(t *testing.T) {
	a := NewAnimation(4, 3)

	for tick := 1; tick <= 2; tick++ {
		if a.Advance() {
			t.Fatalf("unexpected completion on tick %d", tick)
		}
		if a.Frame() != 0 {
			t.Fatalf("expected frame 0 on tick %d, got %d", tick, a.Frame())
		}
	}
	a.Advance()
	if a.Frame() != 1 {
		t.Fatalf("expected frame 1 after 3 ticks, got %d", a.Frame())
	}
}

func TestAdvanceWrapsAndReportsCompletion(t *testing.T) {
	a := NewAnimation(3, 1)

	var completions int
	for i := 0; i < 3; i++ {
		if a.Advance() {
			completions++
		}
	}
	if completions != 1 {
		t.Fatalf("expected one completion, got %d", completions)
	}
	if a.Frame() != 0 {
		t.Fatalf("expected wrap to frame 0, got %d", a.Frame())
	}
	if !a.Looped {
		t.Fatal("expected Looped after passing the last frame")
	}
}

func TestAdvanceFreezeOnComplete(t *testing.T) {
	a := NewAnimation(3, 1)
	a.FreezeOnComplete = true

	var completions int
	for i := 0; i < 10; i++ {
		if a.Advance() {
			completions++
		}
	}
	if completions != 1 {
		t.Fatalf("expected a single completion while frozen, got %d", completions)
	}
	if a.Frame() != 2 {
		t.Fatalf("expected to stay on last frame 2, got %d", a.Frame())
	}
}

func TestRestart(t *testing.T) {
	a := NewAnimation(5, 1)
	a.Advance()
	a.Advance()
	a.Restart()
	if a.Frame() != 0 || a.Looped {
		t.Fatalf("expected fresh animation, got frame %d looped %v", a.Frame(), a.Looped)
	}
}

func TestNewAnimationClampsInputs(t *testing.T) {
	a := NewAnimation(0, 0)
	if a.Frames != 1 || a.TicksPerFrame != 1 {
		t.Fatalf("expected 1/1, got %d/%d", a.Frames, a.TicksPerFrame)
	}
	if !a.Advance() {
		t.Fatal("single-frame animation should complete every tick")
	}
}
