package systems

import (
	"testing"

	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/solarlune/resolv"
)

func TestPerformAttackBodyHit(t *testing.T) {
	e, p1, p2 := newTestBattle(t)

	if !performAttack(e, p1, cfg.AttackTypeLight) {
		t.Fatal("expected the swing to connect")
	}

	if got := components.Health.Get(p2).Current; got != 90 {
		t.Fatalf("expected target health 90 after a body hit, got %d", got)
	}
	if got := components.Health.Get(p1).Current; got != 100 {
		t.Fatalf("expected attacker health capped at 100, got %d", got)
	}

	attacker := components.Fighter.Get(p1)
	if !attacker.Attacking || attacker.AttackType != cfg.AttackTypeLight {
		t.Fatalf("expected a light attack in progress, got attacking=%v type=%v", attacker.Attacking, attacker.AttackType)
	}
	if !components.Fighter.Get(p2).Hit {
		t.Fatal("expected target to be flagged as hit")
	}

	popups := components.DamagePopups.Get(p2).Popups
	if len(popups) != 1 || popups[0].Amount != 10 {
		t.Fatalf("expected one popup of 10, got %+v", popups)
	}
	targetObj := components.Object.Get(p2)
	if popups[0].X != targetObj.CenterX() || popups[0].Y != targetObj.CenterY() {
		t.Fatalf("expected popup at the target centre, got (%v, %v)", popups[0].X, popups[0].Y)
	}

	sounds := pendingSFX(e)
	if !hasSound(sounds, cfg.SoundSword) || !hasSound(sounds, cfg.SoundHit) {
		t.Fatalf("expected swing and hit sounds, got %v", sounds)
	}
	if components.Flash.Get(p2).Duration != cfg.Combat.HitFlashFrames {
		t.Fatal("expected the target to flash")
	}
}

func TestPerformAttackLifeSteal(t *testing.T) {
	e, p1, p2 := newTestBattle(t)
	components.Health.Get(p1).Current = 50

	performAttack(e, p1, cfg.AttackTypeHeavy)

	if got := components.Health.Get(p1).Current; got != 50+cfg.Fighter.LifeSteal {
		t.Fatalf("expected attacker healed to %d, got %d", 50+cfg.Fighter.LifeSteal, got)
	}
	if got := components.Health.Get(p2).Current; got != 90 {
		t.Fatalf("expected target health 90, got %d", got)
	}
}

func TestPerformAttackRespectsCooldown(t *testing.T) {
	e, p1, p2 := newTestBattle(t)
	components.Fighter.Get(p1).AttackCooldown = 5

	if performAttack(e, p1, cfg.AttackTypeLight) {
		t.Fatal("expected no swing during cooldown")
	}
	if components.Fighter.Get(p1).Attacking {
		t.Fatal("expected attacker to stay idle during cooldown")
	}
	if components.Health.Get(p2).Current != 100 {
		t.Fatal("expected no damage during cooldown")
	}
	if len(pendingSFX(e)) != 0 {
		t.Fatal("expected no sound during cooldown")
	}
}

func TestPerformAttackMiss(t *testing.T) {
	tests := []struct {
		name  string
		setup func(p1, p2 *components.FighterData)
		x     float64
	}{
		{"out of reach", nil, 800},
		{"facing away", func(p1, _ *components.FighterData) { p1.Flip = true }, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, p1, p2 := newTestBattle(t)
			setPosition(p2, tt.x, 310)
			if tt.setup != nil {
				tt.setup(components.Fighter.Get(p1), components.Fighter.Get(p2))
			}

			if performAttack(e, p1, cfg.AttackTypeLight) {
				t.Fatal("expected a miss")
			}
			if !components.Fighter.Get(p1).Attacking {
				t.Fatal("expected the swing to start even on a miss")
			}
			if components.Health.Get(p2).Current != 100 {
				t.Fatal("expected no damage on a miss")
			}
			if len(components.DamagePopups.Get(p2).Popups) != 0 {
				t.Fatal("expected no popup on a miss")
			}
			if hasSound(pendingSFX(e), cfg.SoundHit) {
				t.Fatal("expected no hit sound on a miss")
			}
		})
	}
}

func TestPerformAttackHitZones(t *testing.T) {
	tests := []struct {
		name       string
		attackerY  float64
		targetY    float64
		wantDamage int
	}{
		{"level ground hits body", 310, 310, cfg.Combat.BodyDamage},
		{"from above hits other", 160, 310, cfg.Combat.OtherDamage},
		{"under a jumping target hits head", 310, 200, cfg.Combat.HeadDamage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, p1, p2 := newTestBattle(t)
			setPosition(p1, 200, tt.attackerY)
			setPosition(p2, 300, tt.targetY)

			if !performAttack(e, p1, cfg.AttackTypeLight) {
				t.Fatal("expected the swing to connect")
			}
			if got := 100 - components.Health.Get(p2).Current; got != tt.wantDamage {
				t.Fatalf("expected %d damage, got %d", tt.wantDamage, got)
			}
		})
	}
}

func TestPerformAttackClampsTargetHealth(t *testing.T) {
	e, p1, p2 := newTestBattle(t)
	components.Health.Get(p2).Current = 5

	performAttack(e, p1, cfg.AttackTypeLight)

	if got := components.Health.Get(p2).Current; got != 0 {
		t.Fatalf("expected target health clamped to 0, got %d", got)
	}
}

func TestPerformAttackIgnoresDeadTarget(t *testing.T) {
	e, p1, p2 := newTestBattle(t)
	components.Health.Get(p2).Current = 0
	components.Health.Get(p1).Current = 50

	if performAttack(e, p1, cfg.AttackTypeLight) {
		t.Fatal("expected no hit on a dead fighter")
	}
	if components.Health.Get(p1).Current != 50 {
		t.Fatal("expected no life steal from a dead fighter")
	}
}

func TestAttackRect(t *testing.T) {
	obj := resolv.NewObject(200, 310, 80, 180)

	right := attackRect(obj, false)
	if right.X != 240 || right.W != 160 || right.Y != 310 || right.H != 180 {
		t.Fatalf("unexpected right-facing rect %+v", right)
	}

	left := attackRect(obj, true)
	if left.X != 80 || left.W != 160 {
		t.Fatalf("unexpected left-facing rect %+v", left)
	}
}

func TestHitZone(t *testing.T) {
	target := &components.ObjectData{Object: resolv.NewObject(0, 100, 80, 200)}

	tests := []struct {
		attackerY float64 // top of an attacker 200px tall
		want      cfg.HitZone
	}{
		{-100, cfg.ZoneOther}, // centre above the target's top
		{0, cfg.ZoneBody},     // centre on the target's top edge
		{50, cfg.ZoneBody},    // centre in the upper half
		{100, cfg.ZoneBody},   // level centres
		{101, cfg.ZoneHead},   // target centre just above the attacker's
		{300, cfg.ZoneHead},   // centre below the target
	}

	for _, tt := range tests {
		attacker := &components.ObjectData{Object: resolv.NewObject(0, tt.attackerY, 80, 200)}
		if got := hitZone(attacker, target); got != tt.want {
			t.Fatalf("attacker at y=%v: expected %v, got %v", tt.attackerY, tt.want, got)
		}
	}
}

func TestDamageFor(t *testing.T) {
	if damageFor(cfg.ZoneHead) != 20 || damageFor(cfg.ZoneBody) != 10 || damageFor(cfg.ZoneOther) != 5 {
		t.Fatal("unexpected damage table")
	}
}
