package systems

import (
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// performAttack swings at the attacker's target. It does nothing while the
// attack cooldown is running and reports whether the swing connected.
func performAttack(ecs *ecs.ECS, attacker *donburi.Entry, attackType cfg.AttackType) bool {
	f := components.Fighter.Get(attacker)
	if f.AttackCooldown > 0 {
		return false
	}

	f.Attacking = true
	f.AttackType = attackType
	if f.AttackSound != cfg.SoundNone {
		PlaySFX(ecs, f.AttackSound)
	}

	obj := components.Object.Get(attacker)
	box := attackRect(obj.Object, f.Flip)
	box.Timer = cfg.Debug.AttackBoxFrames
	f.LastAttack = box

	target := f.Target
	if target == nil || !target.Valid() {
		return false
	}
	targetHealth := components.Health.Get(target)
	if targetHealth.IsDead() {
		return false
	}
	if !attackConnects(ecs, box, target) {
		return false
	}

	targetObj := components.Object.Get(target)
	damage := damageFor(hitZone(obj, targetObj))
	targetHealth.Damage(damage)

	components.Fighter.Get(target).Hit = true

	popups := components.DamagePopups.Get(target)
	popups.Add(damage, targetObj.CenterX(), targetObj.CenterY(),
		GetOrCreateClock(ecs).Tick, cfg.Popup.DurationFrames, cfg.Popup.RiseDistance)

	components.Health.Get(attacker).Heal(cfg.Fighter.LifeSteal)

	TriggerHitFlash(target)
	TriggerScreenShake(ecs, cfg.ScreenShake.HitIntensity, cfg.ScreenShake.HitDuration)
	PlaySFX(ecs, cfg.SoundHit)
	return true
}

// attackRect is the area in front of a fighter that a swing covers: reach
// times the hitbox width, starting at the hitbox centre and extending in the
// facing direction, with the hitbox's full height.
func attackRect(obj *resolv.Object, flip bool) components.AttackBox {
	w := cfg.Fighter.AttackReach * obj.W
	x := obj.X + obj.W/2
	if flip {
		x -= w
	}
	return components.AttackBox{X: x, Y: obj.Y, W: w, H: obj.H}
}

// attackConnects asks the collision space which fighters share cells with
// the attack rect, then confirms an actual overlap with target.
func attackConnects(ecs *ecs.ECS, box components.AttackBox, target *donburi.Entry) bool {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return overlaps(box, components.Object.Get(target).Object)
	}
	space := components.Space.Get(spaceEntry)

	probe := resolv.NewObject(box.X, box.Y, box.W, box.H)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvFighter)
	if check == nil {
		return false
	}
	for _, o := range check.Objects {
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || entry != target {
			continue
		}
		if overlaps(box, o) {
			return true
		}
	}
	return false
}

// overlaps is a strict AABB test; touching edges do not count.
func overlaps(box components.AttackBox, o *resolv.Object) bool {
	return box.X < o.X+o.W && o.X < box.X+box.W &&
		box.Y < o.Y+o.H && o.Y < box.Y+box.H
}

// hitZone decides where a swing lands by comparing vertical centres. A target
// whose centre sits above the attacker's is struck in the head. Otherwise the
// swing hits the body while the attacker's centre is inside the target's
// vertical span, and anything else (an attacker above the target's top) only
// reaches the legs.
func hitZone(attacker, target *components.ObjectData) cfg.HitZone {
	strike := attacker.CenterY()
	switch {
	case target.CenterY() < strike:
		return cfg.ZoneHead
	case strike >= target.Y:
		return cfg.ZoneBody
	default:
		return cfg.ZoneOther
	}
}

func damageFor(zone cfg.HitZone) int {
	switch zone {
	case cfg.ZoneHead:
		return cfg.Combat.HeadDamage
	case cfg.ZoneBody:
		return cfg.Combat.BodyDamage
	default:
		return cfg.Combat.OtherDamage
	}
}
