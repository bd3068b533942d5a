package systems

import (
	"strconv"

	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDamagePopups lifts every damage number and drops the expired ones.
func UpdateDamagePopups(ecs *ecs.ECS) {
	tick := GetOrCreateClock(ecs).Tick
	components.DamagePopups.Each(ecs.World, func(e *donburi.Entry) {
		popups := components.DamagePopups.Get(e)
		popups.Update()
		popups.Prune(tick, cfg.Popup.DurationFrames)
	})
}

// DrawDamagePopups renders each live damage number above where the hit landed.
func DrawDamagePopups(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Popup.Get()
	components.DamagePopups.Each(ecs.World, func(e *donburi.Entry) {
		for _, p := range components.DamagePopups.Get(e).Popups {
			x := int(p.X)
			y := int(p.Y - cfg.Popup.OffsetY - p.Rise)
			text.Draw(screen, strconv.Itoa(p.Amount), face, x, y, cfg.Popup.Color)
		}
	})
}
