package factory

import (
	"fmt"

	"github.com/automoto/brawler/archetypes"
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/prefabs"
	"github.com/automoto/brawler/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FighterParams describes one fighter to spawn.
type FighterParams struct {
	Player int    // 1 or 2
	Prefab string // name LoadFighter was called with
	Spec   *prefabs.FighterSpec
	Sheet  *ebiten.Image // nil draws the hitbox instead of sprites
	X, Y   float64       // top-left of the hitbox
	Flip   bool
}

func CreateFighter(ecs *ecs.ECS, p FighterParams) *donburi.Entry {
	fighter := archetypes.Fighter.Spawn(ecs)

	w, h := cfg.Fighter.HitboxWidth, cfg.Fighter.HitboxHeight
	obj := resolv.NewObject(p.X, p.Y, w, h)
	obj.AddTags(tags.ResolvFighter, tags.ResolvPlayer(p.Player))
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = fighter
	components.Object.SetValue(fighter, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Fighter.SetValue(fighter, components.FighterData{
		Prefab:      p.Prefab,
		PlayerIndex: p.Player,
		Flip:        p.Flip,
		Alive:       true,
		SpawnX:      p.X,
		SpawnY:      p.Y,
	})
	components.Health.SetValue(fighter, components.HealthData{
		Current: cfg.Fighter.MaxHealth,
		Max:     cfg.Fighter.MaxHealth,
	})
	components.PlayerInput.SetValue(fighter, components.PlayerInputData{
		ControlScheme: controlSchemeFor(p.Player),
	})

	// Initialize Flash component (permanently attached to avoid archetype thrashing)
	components.Flash.SetValue(fighter, components.FlashData{
		Duration: 0,
		R: 1, G: 1, B: 1,
	})

	ApplyFighterSpec(fighter, p.Spec, p.Sheet)
	return fighter
}

// ApplyFighterSpec swaps in a fighter's look and attack sound. The current
// action is kept but its animation restarts from the first frame.
func ApplyFighterSpec(fighter *donburi.Entry, spec *prefabs.FighterSpec, sheet *ebiten.Image) {
	f := components.Fighter.Get(fighter)
	f.Name = spec.Name
	f.AttackSound = spec.AttackSoundID()
	f.HasTint = false
	if spec.Tint != "" {
		if tint, err := prefabs.ParseTint(spec.Tint); err == nil {
			f.Tint = tint
			f.HasTint = true
		}
	}

	current := cfg.Idle
	if fighter.HasComponent(components.Animation) {
		if old := components.Animation.Get(fighter); old.CurrentAnimation != nil {
			current = old.CurrentSheet
		}
	}

	animData := GenerateAnimations(spec, sheet)
	animData.CurrentAnimation = nil
	animData.SetAnimation(current)
	components.Animation.Set(fighter, animData)
}

// ReapplyPrefab applies a reloaded spec to every fighter spawned from the
// given prefab and returns how many were updated. Fighters are matched on the
// prefab key, not on the spec's name, so an edit that renames a fighter does
// not detach it from its file.
func ReapplyPrefab(world donburi.World, prefab string, spec *prefabs.FighterSpec, sheet *ebiten.Image) int {
	count := 0
	tags.Fighter.Each(world, func(e *donburi.Entry) {
		if components.Fighter.Get(e).Prefab != prefab {
			return
		}
		ApplyFighterSpec(e, spec, sheet)
		count++
	})
	return count
}

// LinkOpponents makes two fighters target each other.
func LinkOpponents(a, b *donburi.Entry) {
	components.Fighter.Get(a).Target = b
	components.Fighter.Get(b).Target = a
}

func controlSchemeFor(player int) cfg.ControlSchemeID {
	if player == 2 {
		return cfg.ControlSchemeP2
	}
	return cfg.ControlSchemeP1
}

// LoadFighter loads a fighter prefab and its sprite sheet. A missing sheet is
// an error; the caller decides whether to fall back to hitbox rendering.
func LoadFighter(name string, loadSheet func(string) (*ebiten.Image, error)) (*prefabs.FighterSpec, *ebiten.Image, error) {
	spec, err := prefabs.LoadFighterSpec(name)
	if err != nil {
		return nil, nil, err
	}
	sheet, err := loadSheet(spec.Sheet)
	if err != nil {
		return spec, nil, fmt.Errorf("fighter %s: %w", name, err)
	}
	return spec, sheet, nil
}
