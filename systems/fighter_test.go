package systems

import (
	"testing"

	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/systems/factory"
)

func TestUpdateFightersMovement(t *testing.T) {
	tests := []struct {
		name    string
		startX  float64
		actions []cfg.ActionID
		wantX   float64
		running bool
	}{
		{"idle", 200, nil, 200, false},
		{"right", 200, []cfg.ActionID{cfg.ActionMoveRight}, 210, true},
		{"left", 200, []cfg.ActionID{cfg.ActionMoveLeft}, 190, true},
		{"both directions favour right", 200, []cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMoveRight}, 210, true},
		{"clamped at left edge", 5, []cfg.ActionID{cfg.ActionMoveLeft}, 0, true},
		{"clamped at right edge", 915, []cfg.ActionID{cfg.ActionMoveRight}, 920, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, p1, p2 := newTestBattle(t)
			setPosition(p2, 500, 310)
			setPosition(p1, tt.startX, 310)
			press(p1, tt.actions...)

			UpdateFighters(e)

			if got := components.Object.Get(p1).X; got != tt.wantX {
				t.Fatalf("expected x %v, got %v", tt.wantX, got)
			}
			if got := components.Fighter.Get(p1).Running; got != tt.running {
				t.Fatalf("expected running=%v, got %v", tt.running, got)
			}
		})
	}
}

func TestUpdateFightersJumpAndLand(t *testing.T) {
	e, p1, _ := newTestBattle(t)
	press(p1, cfg.ActionJump)

	UpdateFighters(e)

	f := components.Fighter.Get(p1)
	obj := components.Object.Get(p1)
	if !f.Jumping {
		t.Fatal("expected fighter to be jumping")
	}
	wantVel := cfg.Fighter.JumpVelocity + cfg.Fighter.Gravity
	if f.VelY != wantVel {
		t.Fatalf("expected vertical velocity %v, got %v", wantVel, f.VelY)
	}
	if obj.Y != 310+wantVel {
		t.Fatalf("expected y %v, got %v", 310+wantVel, obj.Y)
	}

	// Holding jump mid-air must not re-launch
	UpdateFighters(e)
	if f.VelY != wantVel+cfg.Fighter.Gravity {
		t.Fatalf("expected gravity to keep acting, got velocity %v", f.VelY)
	}

	press(p1)
	for i := 0; i < 100; i++ {
		UpdateFighters(e)
	}
	if f.Jumping || f.VelY != 0 {
		t.Fatalf("expected fighter to land, jumping=%v vel=%v", f.Jumping, f.VelY)
	}
	if bottom := obj.Y + obj.H; bottom != 490 {
		t.Fatalf("expected fighter to rest on the floor at 490, got %v", bottom)
	}
}

func TestUpdateFightersFallsToFloor(t *testing.T) {
	e, p1, _ := newTestBattle(t)
	setPosition(p1, 200, 0)

	for i := 0; i < 100; i++ {
		UpdateFighters(e)
	}

	obj := components.Object.Get(p1)
	if bottom := obj.Y + obj.H; bottom != 490 {
		t.Fatalf("expected fighter to stop on the floor, bottom at %v", bottom)
	}
}

func TestUpdateFightersFacesOpponent(t *testing.T) {
	e, p1, p2 := newTestBattle(t)

	UpdateFighters(e)
	if components.Fighter.Get(p1).Flip || !components.Fighter.Get(p2).Flip {
		t.Fatal("expected fighters to face each other")
	}

	setPosition(p1, 600, 310)
	UpdateFighters(e)
	if !components.Fighter.Get(p1).Flip || components.Fighter.Get(p2).Flip {
		t.Fatal("expected fighters to turn around after swapping sides")
	}
}

func TestUpdateFightersAttackInput(t *testing.T) {
	e, p1, p2 := newTestBattle(t)
	press(p1, cfg.ActionAttackLight, cfg.ActionAttackHeavy, cfg.ActionMoveRight)

	UpdateFighters(e)

	f := components.Fighter.Get(p1)
	if !f.Attacking || f.AttackType != cfg.AttackTypeLight {
		t.Fatalf("expected light attack to win, got attacking=%v type=%v", f.Attacking, f.AttackType)
	}
	if components.Health.Get(p2).Current != 90 {
		t.Fatalf("expected target to take a body hit, got %d", components.Health.Get(p2).Current)
	}

	// Mid-swing the fighter is rooted
	x := components.Object.Get(p1).X
	UpdateFighters(e)
	if components.Object.Get(p1).X != x {
		t.Fatal("expected no movement while attacking")
	}
	if components.Health.Get(p2).Current != 90 {
		t.Fatal("expected one swing to hit once")
	}
}

func TestUpdateFightersIgnoresInput(t *testing.T) {
	t.Run("dead", func(t *testing.T) {
		e, p1, _ := newTestBattle(t)
		components.Fighter.Get(p1).Alive = false
		press(p1, cfg.ActionMoveRight, cfg.ActionJump)

		UpdateFighters(e)

		if components.Object.Get(p1).X != 200 || components.Fighter.Get(p1).Jumping {
			t.Fatal("expected a dead fighter to ignore input")
		}
	})

	t.Run("locked round", func(t *testing.T) {
		e, p1, _ := newTestBattle(t)
		factory.CreateRound(e)
		press(p1, cfg.ActionMoveRight, cfg.ActionAttackLight)

		UpdateFighters(e)

		if components.Object.Get(p1).X != 200 || components.Fighter.Get(p1).Attacking {
			t.Fatal("expected input to be ignored during the intro")
		}
	})
}

func TestUpdateFightersTimers(t *testing.T) {
	e, p1, _ := newTestBattle(t)
	f := components.Fighter.Get(p1)
	f.AttackCooldown = 5
	f.LastAttack.Timer = 2

	UpdateFighters(e)

	if f.AttackCooldown != 4 {
		t.Fatalf("expected cooldown 4, got %d", f.AttackCooldown)
	}
	if f.LastAttack.Timer != 1 {
		t.Fatalf("expected attack box timer 1, got %d", f.LastAttack.Timer)
	}
}
