package systems

import (
	"testing"

	"github.com/automoto/brawler/assets"
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/prefabs"
	"github.com/automoto/brawler/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func testSpec() *prefabs.FighterSpec {
	return &prefabs.FighterSpec{
		Name:           "tester",
		Sheet:          "tester.png",
		FrameSize:      100,
		Scale:          1,
		AttackSound:    "sword",
		AnimationSteps: []int{4, 6, 1, 5, 5, 2, 3},
	}
}

// newTestBattle builds a world with an arena (floor at 490), a collision
// space and two grounded fighters facing each other 100px apart.
func newTestBattle(t *testing.T) (*ecs.ECS, *donburi.Entry, *donburi.Entry) {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 1000, 600, 20, 20)
	factory.CreateArena(e, &assets.Arena{Name: "test", Width: 1000, Height: 600, FloorY: 490}, nil)

	p1 := factory.CreateFighter(e, factory.FighterParams{Player: 1, Spec: testSpec(), X: 200, Y: 310})
	p2 := factory.CreateFighter(e, factory.FighterParams{Player: 2, Spec: testSpec(), X: 300, Y: 310, Flip: true})
	factory.LinkOpponents(p1, p2)

	return e, p1, p2
}

func setPosition(entry *donburi.Entry, x, y float64) {
	obj := components.Object.Get(entry)
	obj.X = x
	obj.Y = y
	obj.Update()
}

func press(entry *donburi.Entry, actions ...cfg.ActionID) {
	var current [cfg.ActionCount]bool
	for _, a := range actions {
		current[a] = true
	}
	components.PlayerInput.Get(entry).Set(current)
}

func pendingSFX(e *ecs.ECS) []cfg.SoundID {
	return GetOrCreateAudio(e).PendingSFX
}

func hasSound(sounds []cfg.SoundID, want cfg.SoundID) bool {
	for _, s := range sounds {
		if s == want {
			return true
		}
	}
	return false
}
