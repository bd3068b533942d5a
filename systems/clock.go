package systems

import (
	"github.com/automoto/brawler/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the game tick. Must run before the other gameplay
// systems so they all see the same tick for a frame.
func UpdateClock(ecs *ecs.ECS) {
	GetOrCreateClock(ecs).Tick++
}

// GetOrCreateClock returns the singleton Clock component, creating if needed
func GetOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}
