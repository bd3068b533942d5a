package systems

import (
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings applies the global toggles read by UpdateInput and saves
// the result whenever something changed.
func UpdateSettings(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if !input.ToggleDebug && !input.ToggleMute && !input.ToggleFullscreen {
		return
	}
	settings := GetOrCreateSettings(ecs)

	if input.ToggleDebug {
		settings.ShowHitboxes = !settings.ShowHitboxes
		cfg.Debug.ShowHitboxes = settings.ShowHitboxes
	}
	if input.ToggleMute {
		toggleMute(ecs, settings)
	}
	if input.ToggleFullscreen {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
	}

	SaveCurrentSettings(settings)
}

func toggleMute(ecs *ecs.ECS, settings *components.SettingsData) {
	if settings.Muted {
		settings.Muted = false
		settings.SFXVolume = settings.PreMuteSFXVol
	} else {
		settings.Muted = true
		settings.PreMuteSFXVol = settings.SFXVolume
		settings.SFXVolume = 0
	}
	SetSFXVolume(ecs, settings.SFXVolume)
}

// ApplySavedSettings copies loaded settings into the Settings singleton and
// the audio and debug globals. A nil saved leaves the defaults in place.
func ApplySavedSettings(ecs *ecs.ECS, saved *SavedSettings) {
	settings := GetOrCreateSettings(ecs)
	if saved == nil {
		return
	}

	settings.SFXVolume = saved.SFXVolume
	settings.PreMuteSFXVol = saved.SFXVolume
	settings.Muted = saved.Muted
	settings.Fullscreen = saved.Fullscreen
	settings.ShowHitboxes = saved.ShowHitboxes || cfg.Debug.ShowHitboxes
	cfg.Debug.ShowHitboxes = settings.ShowHitboxes

	if settings.Muted {
		settings.SFXVolume = 0
	}
	SetSFXVolume(ecs, settings.SFXVolume)
}

// GetOrCreateSettings returns the singleton Settings component, creating it if needed
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			SFXVolume:     GetSFXVolume(),
			PreMuteSFXVol: GetSFXVolume(),
			ShowHitboxes:  cfg.Debug.ShowHitboxes,
		})
	}
	return components.Settings.Get(entry)
}
