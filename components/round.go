package components

import (
	cfg "github.com/automoto/brawler/config"
	"github.com/yohamta/donburi"
)

// RoundData stores the current round state and the score.
// This is a singleton component - only one round runs at a time.
type RoundData struct {
	State  cfg.RoundStateID
	Number int
	Timer  int    // frames remaining in the intro or round-over phase
	Wins   [2]int // indexed by PlayerIndex-1
	Winner int    // PlayerIndex of the last round's winner, 0 for a double KO
}

// Locked reports whether fighters must ignore their input.
func (r *RoundData) Locked() bool {
	return r.State != cfg.RoundFighting
}

// CountdownValue is the number shown during the intro (3, 2, 1), or 0.
func (r *RoundData) CountdownValue() int {
	if r.State != cfg.RoundIntro || r.Timer <= 0 {
		return 0
	}
	perStep := cfg.Round.IntroFrames / 3
	if perStep <= 0 {
		return 1
	}
	return (r.Timer + perStep - 1) / perStep
}

// AddWin credits a round to player (1-based).
func (r *RoundData) AddWin(player int) {
	if player < 1 || player > len(r.Wins) {
		return
	}
	r.Wins[player-1]++
}

var Round = donburi.NewComponentType[RoundData]()
