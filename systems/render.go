package systems

import (
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawArena renders the backdrop, shifted by any active screen shake.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	arenaEntry, ok := components.Arena.First(ecs.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry)
	sx, sy := shakeOffset(ecs)

	if arena.Background == nil {
		screen.Fill(cfg.BackdropColor)
		vector.FillRect(screen,
			float32(sx), float32(arena.FloorY+sy),
			float32(arena.Width), float32(arena.Height-arena.FloorY),
			cfg.FloorColor, false)
		return
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()

	// Stretch the backdrop over the whole arena
	bw, bh := arena.Background.Bounds().Dx(), arena.Background.Bounds().Dy()
	if bw > 0 && bh > 0 {
		drawOp.GeoM.Scale(arena.Width/float64(bw), arena.Height/float64(bh))
	}
	drawOp.GeoM.Translate(sx, sy)
	screen.DrawImage(arena.Background, drawOp)
}

// DrawFighters renders each fighter's current frame, mirrored when it faces left.
func DrawFighters(ecs *ecs.ECS, screen *ebiten.Image) {
	sx, sy := shakeOffset(ecs)

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		f := components.Fighter.Get(e)
		anim := components.Animation.Get(e)

		img := anim.Image()
		if img == nil {
			// Fallback to the hitbox if no sheet is loaded
			c := cfg.Blue
			if f.PlayerIndex == 2 {
				c = cfg.Red
			}
			vector.FillRect(screen, float32(o.X+sx), float32(o.Y+sy), float32(o.W), float32(o.H), c, false)
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		drawOp.GeoM.Scale(anim.Scale, anim.Scale)
		if f.Flip {
			size := float64(anim.FrameSize) * anim.Scale
			drawOp.GeoM.Scale(-1, 1)
			drawOp.GeoM.Translate(size, 0)
		}

		// The offset is measured on the unscaled frame
		drawOp.GeoM.Translate(o.X-anim.OffsetX*anim.Scale+sx, o.Y-anim.OffsetY*anim.Scale+sy)

		if f.HasTint {
			drawOp.ColorScale.Scale(f.Tint[0], f.Tint[1], f.Tint[2], 1)
		}

		// A hit flash replaces the tint; dead fighters never flash
		if f.Alive {
			if flash := components.Flash.Get(e); flash.Active() {
				drawOp.ColorScale.Reset()
				drawOp.ColorScale.Scale(flash.R, flash.G, flash.B, 1)
			}
		}

		screen.DrawImage(img, drawOp)
	})
}
