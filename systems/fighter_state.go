package systems

import (
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFighterStates picks each fighter's action for this tick and advances
// its animation.
func UpdateFighterStates(ecs *ecs.ECS) {
	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		f := components.Fighter.Get(e)
		health := components.Health.Get(e)
		anim := components.Animation.Get(e)

		action := selectAction(f, health)
		anim.SetAnimation(action)

		if anim.CurrentAnimation == nil {
			return
		}
		if anim.CurrentAnimation.Advance() {
			finishAction(f, action)
		}
	})
}

// selectAction applies the action priority: death, hit, attack, jump, run, idle.
func selectAction(f *components.FighterData, health *components.HealthData) cfg.StateID {
	switch {
	case health.Current <= 0:
		health.Current = 0
		f.Alive = false
		return cfg.Death
	case f.Hit:
		return cfg.Hit
	case f.Attacking:
		return f.AttackType.State()
	case f.Jumping:
		return cfg.Jump
	case f.Running:
		return cfg.Run
	default:
		return cfg.Idle
	}
}

// finishAction runs when an action's animation passes its last frame.
func finishAction(f *components.FighterData, action cfg.StateID) {
	if !f.Alive {
		return
	}
	switch {
	case action.IsAttack():
		endAttack(f)
	case action == cfg.Hit:
		f.Hit = false
		// Getting hit interrupts a swing
		if f.Attacking {
			endAttack(f)
		}
	}
}

func endAttack(f *components.FighterData) {
	f.Attacking = false
	f.AttackType = cfg.AttackNone
	f.AttackCooldown = cfg.Fighter.AttackCooldown
}
