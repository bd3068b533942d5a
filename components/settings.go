package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData stores the user settings that survive restarts
type SettingsData struct {
	SFXVolume    float64 // 0.0, 0.25, 0.50, 0.75, 1.0
	Muted        bool
	Fullscreen   bool
	ShowHitboxes bool

	// For mute restore
	PreMuteSFXVol float64
}

// Settings is the component type for the settings singleton
var Settings = donburi.NewComponentType[SettingsData]()
