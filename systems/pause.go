package systems

import (
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const pauseHint = "Arrows/WS: Navigate   Enter: Select   Esc: Resume"

// UpdatePause opens and closes the pause menu and acts on its options. It
// must run after UpdateInput and before any system wrapped in
// WithGameplayChecks.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if input.Pause {
		pause.Toggle()
		return
	}
	if !pause.IsPaused {
		return
	}

	if input.MenuUp {
		pause.Move(-1)
	}
	if input.MenuDown {
		pause.Move(1)
	}
	if !input.MenuSelect {
		return
	}

	switch pause.SelectedOption {
	case components.MenuResume:
		pause.IsPaused = false
	case components.MenuRestart:
		pause.IsPaused = false
		RestartMatch(ecs)
	case components.MenuQuit:
		pause.QuitRequested = true
	}
}

// DrawPause dims the arena and lists the pause options.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	rowHeight := cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap
	top := (height - float64(len(cfg.Pause.MenuOptions))*rowHeight) / 2

	face := fonts.Bold.Get()
	for i, label := range cfg.Pause.MenuOptions {
		clr := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			clr = cfg.Pause.TextColorSelected
		}
		x := (width - float64(fonts.Width(face, label))) / 2
		y := top + float64(i)*rowHeight + cfg.Pause.MenuItemHeight
		text.Draw(screen, label, face, int(x), int(y), clr)
	}

	hintFace := fonts.Regular.Get()
	hintX := (width - float64(fonts.Width(hintFace, pauseHint))) / 2
	text.Draw(screen, pauseHint, hintFace, int(hintX), int(height)-12, cfg.Pause.TextColorNormal)
}

// WithGameplayChecks wraps a system to skip execution when paused.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetOrCreatePause(e).IsPaused {
			return
		}
		system(e)
	}
}

// QuitRequested reports whether Quit was picked from the pause menu.
func QuitRequested(ecs *ecs.ECS) bool {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		return false
	}
	return components.Pause.Get(entry).QuitRequested
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
