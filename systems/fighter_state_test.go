package systems

import (
	"testing"

	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
)

func TestSelectActionPriority(t *testing.T) {
	tests := []struct {
		name   string
		health int
		f      components.FighterData
		want   cfg.StateID
	}{
		{"idle", 100, components.FighterData{Alive: true}, cfg.Idle},
		{"run", 100, components.FighterData{Alive: true, Running: true}, cfg.Run},
		{"jump over run", 100, components.FighterData{Alive: true, Running: true, Jumping: true}, cfg.Jump},
		{"light attack over jump", 100, components.FighterData{Alive: true, Jumping: true, Attacking: true, AttackType: cfg.AttackTypeLight}, cfg.AttackLight},
		{"heavy attack", 100, components.FighterData{Alive: true, Attacking: true, AttackType: cfg.AttackTypeHeavy}, cfg.AttackHeavy},
		{"hit over attack", 100, components.FighterData{Alive: true, Hit: true, Attacking: true, AttackType: cfg.AttackTypeLight}, cfg.Hit},
		{"death over everything", 0, components.FighterData{Alive: true, Hit: true, Attacking: true, Running: true}, cfg.Death},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.f
			health := &components.HealthData{Current: tt.health, Max: 100}
			if got := selectAction(&f, health); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSelectActionDeathClampsHealth(t *testing.T) {
	f := &components.FighterData{Alive: true}
	health := &components.HealthData{Current: -5, Max: 100}

	selectAction(f, health)

	if health.Current != 0 || f.Alive {
		t.Fatalf("expected health 0 and a dead fighter, got %d alive=%v", health.Current, f.Alive)
	}
}

func TestUpdateFighterStatesResetsFrameOnTransition(t *testing.T) {
	e, p1, _ := newTestBattle(t)
	anim := components.Animation.Get(p1)

	for i := 0; i < cfg.Animation.FrameTicks*2; i++ {
		UpdateFighterStates(e)
	}
	if anim.CurrentSheet != cfg.Idle || anim.Frame() != 2 {
		t.Fatalf("expected idle frame 2, got %v frame %d", anim.CurrentSheet, anim.Frame())
	}

	components.Fighter.Get(p1).Running = true
	UpdateFighterStates(e)

	if anim.CurrentSheet != cfg.Run || anim.Frame() != 0 {
		t.Fatalf("expected run frame 0, got %v frame %d", anim.CurrentSheet, anim.Frame())
	}
}

func TestUpdateFighterStatesEndsAttack(t *testing.T) {
	e, p1, _ := newTestBattle(t)
	f := components.Fighter.Get(p1)
	f.Attacking = true
	f.AttackType = cfg.AttackTypeLight

	// testSpec gives the light attack 5 frames
	ticks := 5 * cfg.Animation.FrameTicks
	for i := 0; i < ticks-1; i++ {
		UpdateFighterStates(e)
	}
	if !f.Attacking {
		t.Fatal("expected the attack to still be playing")
	}
	if got := components.Animation.Get(p1).CurrentSheet; got != cfg.AttackLight {
		t.Fatalf("expected attack_light, got %v", got)
	}

	UpdateFighterStates(e)

	if f.Attacking || f.AttackType != cfg.AttackNone {
		t.Fatal("expected the attack to end after its last frame")
	}
	if f.AttackCooldown != cfg.Fighter.AttackCooldown {
		t.Fatalf("expected cooldown %d, got %d", cfg.Fighter.AttackCooldown, f.AttackCooldown)
	}

	UpdateFighterStates(e)
	if got := components.Animation.Get(p1).CurrentSheet; got != cfg.Idle {
		t.Fatalf("expected idle after the attack, got %v", got)
	}
}

func TestUpdateFighterStatesHitInterruptsAttack(t *testing.T) {
	e, p1, _ := newTestBattle(t)
	f := components.Fighter.Get(p1)
	f.Attacking = true
	f.AttackType = cfg.AttackTypeHeavy
	f.Hit = true

	// testSpec gives the hit reaction 2 frames
	for i := 0; i < 2*cfg.Animation.FrameTicks; i++ {
		UpdateFighterStates(e)
	}

	if f.Hit {
		t.Fatal("expected the hit reaction to end")
	}
	if f.Attacking {
		t.Fatal("expected the interrupted attack to be cancelled")
	}
	if f.AttackCooldown != cfg.Fighter.AttackCooldown {
		t.Fatalf("expected cooldown %d, got %d", cfg.Fighter.AttackCooldown, f.AttackCooldown)
	}
}

func TestUpdateFighterStatesDeathFreezes(t *testing.T) {
	e, p1, _ := newTestBattle(t)
	components.Health.Get(p1).Current = 0

	for i := 0; i < 30; i++ {
		UpdateFighterStates(e)
	}

	anim := components.Animation.Get(p1)
	if anim.CurrentSheet != cfg.Death {
		t.Fatalf("expected death, got %v", anim.CurrentSheet)
	}
	// testSpec gives death 3 frames
	if anim.Frame() != 2 {
		t.Fatalf("expected to hold the last death frame, got %d", anim.Frame())
	}
	if components.Fighter.Get(p1).Alive {
		t.Fatal("expected fighter to be dead")
	}
}
