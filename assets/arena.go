package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

// ErrNoSpawns is returned when an arena map defines fewer than two fighter spawns.
var ErrNoSpawns = errors.New("arena needs two fighter spawns")

// FighterSpawn is where a player's fighter stands at the start of a round.
// X is the left edge of the hitbox, Y its top.
type FighterSpawn struct {
	X, Y   float64
	Player int // 1 or 2, from the Tiled "player" property
}

// Arena is the static data of a fight: its size, floor line and spawns.
type Arena struct {
	Name       string
	Width      int
	Height     int
	FloorY     float64 // top edge of the Floor object; 0 when the map has none
	Background string  // image name under images/backgrounds, may be empty
	Spawns     []FighterSpawn
}

// Spawn returns the spawn for player (1-based).
func (a *Arena) Spawn(player int) (FighterSpawn, bool) {
	for _, s := range a.Spawns {
		if s.Player == player {
			return s, true
		}
	}
	return FighterSpawn{}, false
}

// LoadArena parses a Tiled map. The "Floor" group holds a rectangle whose top
// edge fighters stand on; "FighterSpawn" holds one point per player.
func LoadArena(fsys fs.FS, p string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(p, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to load arena %s: %w", p, err)
	}

	arena := &Arena{
		Name:       p,
		Width:      levelMap.Width * levelMap.TileWidth,
		Height:     levelMap.Height * levelMap.TileHeight,
		Background: levelMap.Properties.GetString("background"),
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Floor":
			for _, o := range og.Objects {
				// Highest floor wins if a map defines several
				if arena.FloorY == 0 || o.Y < arena.FloorY {
					arena.FloorY = o.Y
				}
			}
		case "FighterSpawn":
			for i, o := range og.Objects {
				player := o.Properties.GetInt("player")
				if player == 0 {
					player = i + 1
				}
				arena.Spawns = append(arena.Spawns, FighterSpawn{
					X:      o.X,
					Y:      o.Y,
					Player: player,
				})
			}
			sort.Slice(arena.Spawns, func(i, j int) bool {
				return arena.Spawns[i].Player < arena.Spawns[j].Player
			})
		}
	}

	if _, ok := arena.Spawn(1); !ok {
		return nil, fmt.Errorf("%s: %w", p, ErrNoSpawns)
	}
	if _, ok := arena.Spawn(2); !ok {
		return nil, fmt.Errorf("%s: %w", p, ErrNoSpawns)
	}

	return arena, nil
}

// MustLoadArena loads an embedded arena by file name.
func MustLoadArena(name string) *Arena {
	arena, err := LoadArena(levelFS, "levels/"+name)
	if err != nil {
		panic(err)
	}
	return arena
}
