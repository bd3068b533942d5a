package systems

import (
	"fmt"
	"strings"

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

// DrawHUD renders both health bars along the top edge, with the fighters'
// names and round wins underneath.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())

	var wins [2]int
	if entry, ok := components.Round.First(ecs.World); ok {
		wins = components.Round.Get(entry).Wins
	}

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		f := components.Fighter.Get(e)
		hp := components.Health.Get(e)

		x := cfg.HUD.HealthBarMargin
		if f.PlayerIndex == 2 {
			x = width - cfg.HUD.HealthBarMargin - cfg.HUD.HealthBarWidth
		}
		drawHealthBar(screen, hp, x, cfg.HUD.HealthBarMargin)

		label := fmt.Sprintf("P%d %s: %d", f.PlayerIndex, strings.ToUpper(f.Name), scoreFor(wins, f.PlayerIndex))
		text.Draw(screen, label, fonts.Bold.Get(), int(x), int(cfg.HUD.ScoreOffsetY)+10, cfg.HUD.TextColor)
	})
}

func drawHealthBar(screen *ebiten.Image, hp *components.HealthData, x, y float64) {
	b := cfg.HUD.BorderWidth
	w := cfg.HUD.HealthBarWidth
	h := cfg.HUD.HealthBarHeight

	vector.FillRect(screen,
		float32(x-b), float32(y-b),
		float32(w+2*b), float32(h+2*b),
		cfg.HUD.BorderColor, false)

	vector.FillRect(screen,
		float32(x), float32(y),
		float32(w), float32(h),
		cfg.HUD.BackgroundColor, false)

	vector.FillRect(screen,
		float32(x), float32(y),
		float32(w*hp.Ratio()), float32(h),
		cfg.HUD.HealthColor, false)
}

func scoreFor(wins [2]int, player int) int {
	if player < 1 || player > len(wins) {
		return 0
	}
	return wins[player-1]
}

// DrawRound renders the countdown before a round and the result after it.
func DrawRound(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Round.First(ecs.World)
	if !ok {
		return
	}
	round := components.Round.Get(entry)

	var banner string
	switch round.State {
	case cfg.RoundIntro:
		banner = fmt.Sprintf("%d", round.CountdownValue())
	case cfg.RoundOver:
		if round.Winner == 0 {
			banner = "DOUBLE KO"
		} else {
			banner = fmt.Sprintf("P%d WINS", round.Winner)
		}
	default:
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	if round.State == cfg.RoundOver {
		vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)
	}

	face := fonts.Title.Get()
	x := (width - fonts.Width(face, banner)) / 2
	text.Draw(screen, banner, face, x, height/3, cfg.Red)
}
