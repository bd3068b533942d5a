package systems

import (
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes visual effect components (flash, screen shake)
func UpdateEffects(ecs *ecs.ECS) {
	updateFlashEffects(ecs)
	updateScreenShake(ecs)
}

// updateFlashEffects decrements flash timers
func updateFlashEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

// updateScreenShake ages the arena's shake and removes it once it has run out
func updateScreenShake(ecs *ecs.ECS) {
	arenaEntry, ok := components.Arena.First(ecs.World)
	if !ok || !arenaEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(arenaEntry)
	shake.Elapsed++
	if shake.Done() {
		arenaEntry.RemoveComponent(components.ScreenShake)
	}
}

// shakeOffset returns how far to displace the arena this frame.
func shakeOffset(ecs *ecs.ECS) (float64, float64) {
	arenaEntry, ok := components.Arena.First(ecs.World)
	if !ok || !arenaEntry.HasComponent(components.ScreenShake) {
		return 0, 0
	}
	return components.ScreenShake.Get(arenaEntry).Offset()
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	arenaEntry, ok := components.Arena.First(ecs.World)
	if !ok {
		return
	}

	// Add or update screen shake component
	if arenaEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(arenaEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
	} else {
		arenaEntry.AddComponent(components.ScreenShake)
		components.ScreenShake.Set(arenaEntry, &components.ScreenShakeData{
			Intensity: intensity,
			Duration:  duration,
			Elapsed:   0,
		})
	}
}

// TriggerHitFlash starts a red flash effect on a fighter that took a hit
func TriggerHitFlash(entry *donburi.Entry) {
	if !entry.HasComponent(components.Flash) {
		return
	}
	components.Flash.Get(entry).Start(cfg.Combat.HitFlashFrames, 3, 1, 1)
}
