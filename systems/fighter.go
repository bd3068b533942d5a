package systems

import (
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// bounds is the playable area a fighter is kept inside.
type bounds struct {
	Width  float64
	Height float64
	FloorY float64
}

func arenaBounds(ecs *ecs.ECS) bounds {
	if entry, ok := components.Arena.First(ecs.World); ok {
		arena := components.Arena.Get(entry)
		b := bounds{Width: arena.Width, Height: arena.Height, FloorY: arena.FloorY}
		if b.FloorY <= 0 {
			b.FloorY = cfg.FloorY(b.Height)
		}
		return b
	}
	h := float64(cfg.C.Height)
	return bounds{Width: float64(cfg.C.Width), Height: h, FloorY: cfg.FloorY(h)}
}

// UpdateFighters reads each fighter's input, starts attacks, then applies
// gravity and keeps the fighter on screen and above the floor.
func UpdateFighters(ecs *ecs.ECS) {
	b := arenaBounds(ecs)
	locked := roundLocked(ecs)

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		moveFighter(ecs, e, b, locked)
	})
}

func moveFighter(ecs *ecs.ECS, e *donburi.Entry, b bounds, locked bool) {
	f := components.Fighter.Get(e)
	obj := components.Object.Get(e)
	input := components.PlayerInput.Get(e)

	var dx, dy float64
	f.Running = false

	if !f.Attacking && f.Alive && !locked {
		if input.Pressed(cfg.ActionMoveLeft) {
			dx = -cfg.Fighter.Speed
			f.Running = true
		}
		if input.Pressed(cfg.ActionMoveRight) {
			dx = cfg.Fighter.Speed
			f.Running = true
		}
		if input.Pressed(cfg.ActionJump) && !f.Jumping {
			f.VelY = cfg.Fighter.JumpVelocity
			f.Jumping = true
		}

		light := input.Pressed(cfg.ActionAttackLight)
		heavy := input.Pressed(cfg.ActionAttackHeavy)
		if light || heavy {
			attackType := cfg.AttackTypeHeavy
			if light {
				attackType = cfg.AttackTypeLight
			}
			performAttack(ecs, e, attackType)
		}
	}

	f.VelY += cfg.Fighter.Gravity
	dy += f.VelY

	// Stay on screen
	if obj.X+dx < 0 {
		dx = -obj.X
	}
	if obj.X+obj.W+dx > b.Width {
		dx = b.Width - (obj.X + obj.W)
	}
	if obj.Y+obj.H+dy > b.FloorY {
		f.VelY = 0
		f.Jumping = false
		dy = b.FloorY - (obj.Y + obj.H)
	}

	// Face the opponent
	if f.Target != nil && f.Target.Valid() {
		target := components.Object.Get(f.Target)
		f.Flip = target.CenterX() < obj.CenterX()
	}

	if f.AttackCooldown > 0 {
		f.AttackCooldown--
	}
	if f.LastAttack.Timer > 0 {
		f.LastAttack.Timer--
	}

	obj.X += dx
	obj.Y += dy
	obj.Update()
}
