package factory

import (
	"github.com/automoto/brawler/archetypes"
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRound spawns the round singleton, starting on the intro countdown.
func CreateRound(ecs *ecs.ECS) *donburi.Entry {
	round := archetypes.Round.Spawn(ecs)
	components.Round.SetValue(round, components.RoundData{
		State:  cfg.RoundIntro,
		Number: 1,
		Timer:  cfg.Round.IntroFrames,
	})
	return round
}
