package tags

import "github.com/yohamta/donburi"

var (
	Fighter = donburi.NewTag().SetName("Fighter")
	Floor   = donburi.NewTag().SetName("Floor")
)

// Resolv tags for hitbox queries
const (
	ResolvFighter = "Fighter"
	ResolvFloor   = "floor"

	// Per-player tags so an attack rect only ever checks its target
	ResolvPlayer1 = "p1"
	ResolvPlayer2 = "p2"
)

// ResolvPlayer returns the per-player resolv tag for player (1 or 2).
func ResolvPlayer(player int) string {
	if player == 2 {
		return ResolvPlayer2
	}
	return ResolvPlayer1
}
