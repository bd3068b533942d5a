package factory

import (
	"github.com/automoto/brawler/archetypes"
	"github.com/automoto/brawler/assets"
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena spawns the arena singleton and its floor. A map without a
// floor gets the default one near the bottom edge.
func CreateArena(ecs *ecs.ECS, arena *assets.Arena, background *ebiten.Image) *donburi.Entry {
	entry := archetypes.Arena.Spawn(ecs)

	width := float64(arena.Width)
	height := float64(arena.Height)
	floorY := arena.FloorY
	if floorY <= 0 {
		floorY = cfg.FloorY(height)
	}

	components.Arena.SetValue(entry, components.ArenaData{
		Name:       arena.Name,
		Width:      width,
		Height:     height,
		FloorY:     floorY,
		Background: background,
	})

	CreateFloor(ecs, 0, floorY, width, height-floorY)
	return entry
}

func CreateFloor(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	floor := archetypes.Floor.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvFloor)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = floor
	components.Object.SetValue(floor, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return floor
}
