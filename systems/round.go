package systems

import (
	"log"

	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRound runs the intro countdown, detects a knockout and restarts the
// fight once the round-over pause has elapsed.
func UpdateRound(ecs *ecs.ECS) {
	entry, ok := components.Round.First(ecs.World)
	if !ok {
		return
	}
	round := components.Round.Get(entry)

	switch round.State {
	case cfg.RoundIntro:
		round.Timer--
		if round.Timer <= 0 {
			round.State = cfg.RoundFighting
			round.Timer = 0
			PlaySFX(ecs, cfg.SoundRoundStart)
		}

	case cfg.RoundFighting:
		winner, over := knockout(ecs)
		if !over {
			return
		}
		round.State = cfg.RoundOver
		round.Timer = cfg.Round.OverFrames
		round.Winner = winner
		round.AddWin(winner)
		log.Printf("Round %d over, winner: %d (score %d-%d)", round.Number, winner, round.Wins[0], round.Wins[1])

	case cfg.RoundOver:
		round.Timer--
		if round.Timer <= 0 {
			startRound(ecs, round)
		}
	}
}

// knockout reports whether any fighter is down and, if exactly one is still
// standing, which player that is. A double KO returns winner 0.
func knockout(ecs *ecs.ECS) (winner int, over bool) {
	standing := 0
	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		if components.Health.Get(e).IsDead() {
			over = true
			return
		}
		standing++
		winner = components.Fighter.Get(e).PlayerIndex
	})
	if !over || standing != 1 {
		return 0, over
	}
	return winner, true
}

func startRound(ecs *ecs.ECS, round *components.RoundData) {
	round.Number++
	round.State = cfg.RoundIntro
	round.Timer = cfg.Round.IntroFrames
	round.Winner = 0

	tags.Fighter.Each(ecs.World, resetFighter)
}

// RestartMatch clears the score and starts over from round 1.
func RestartMatch(ecs *ecs.ECS) {
	entry, ok := components.Round.First(ecs.World)
	if !ok {
		return
	}
	round := components.Round.Get(entry)
	round.Wins = [2]int{}
	round.Number = 0
	startRound(ecs, round)
	log.Printf("Match restarted")
}

// resetFighter puts a fighter back on its spawn with full health.
func resetFighter(e *donburi.Entry) {
	f := components.Fighter.Get(e)
	f.VelY = 0
	f.Running = false
	f.Jumping = false
	f.Attacking = false
	f.Hit = false
	f.Alive = true
	f.AttackType = cfg.AttackNone
	f.AttackCooldown = 0
	f.LastAttack = components.AttackBox{}

	health := components.Health.Get(e)
	health.Current = health.Max

	obj := components.Object.Get(e)
	obj.X = f.SpawnX
	obj.Y = f.SpawnY
	obj.Update()

	components.DamagePopups.Get(e).Clear()
	components.Animation.Get(e).SetAnimation(cfg.Idle)
	components.Flash.Get(e).Duration = 0
}

// roundLocked reports whether fighters should ignore input this frame.
func roundLocked(ecs *ecs.ECS) bool {
	entry, ok := components.Round.First(ecs.World)
	if !ok {
		return false
	}
	return components.Round.Get(entry).Locked()
}
