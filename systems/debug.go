package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/fonts"
	"github.com/automoto/brawler/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHitboxes {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)

		for _, obj := range space.Objects() {
			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvFloor) {
				c = color.RGBA{100, 100, 100, 255} // Grey
			} else if obj.HasTags(tags.ResolvFighter) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			}
			strokeRect(screen, obj.X, obj.Y, obj.W, obj.H, c)
		}
	}

	face := fonts.Regular.Get()
	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		f := components.Fighter.Get(e)
		o := components.Object.Get(e)
		anim := components.Animation.Get(e)

		if f.LastAttack.Timer > 0 {
			a := f.LastAttack
			strokeRect(screen, a.X, a.Y, a.W, a.H, cfg.Red)
		}

		label := fmt.Sprintf("%s #%d cd:%d", anim.CurrentSheet, anim.Frame(), f.AttackCooldown)
		text.Draw(screen, label, face, int(o.X), int(o.Y)-6, cfg.Yellow)
	})
}

func strokeRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}
