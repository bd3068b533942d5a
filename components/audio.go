package components

import (
	cfg "github.com/automoto/brawler/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// AudioData is the per-world audio singleton. Systems queue sounds here and
// UpdateAudio plays them at the end of the frame.
type AudioData struct {
	Context    *audio.Context // nil until the first sound plays
	SFXVolume  float64        // 0.0 - 1.0
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
