package systems

import (
	"log"
	"sync"

	"github.com/automoto/brawler/assets"
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// sfxMixer owns the process-wide audio context. Ebitengine allows only one
// context per process, so every ECS world shares it.
type sfxMixer struct {
	once    sync.Once
	context *audio.Context
	loader  *assets.AudioLoader
	volume  float64
}

var mixer = &sfxMixer{volume: cfg.Audio.DefaultSFXVol}

func (m *sfxMixer) init() {
	m.once.Do(func() {
		m.context = audio.NewContext(cfg.Audio.SampleRate)
		m.loader = assets.NewAudioLoader(m.context)
	})
}

func (m *sfxMixer) play(sound cfg.SoundID) {
	if m.volume <= 0 {
		return
	}
	path, ok := cfg.Sound.SFXPaths[sound]
	if !ok {
		return
	}

	player, err := m.loader.LoadSFX(path)
	if err != nil {
		log.Printf("Warning: Could not play sound %d: %v", sound, err)
		return
	}

	volume := m.volume
	if mult, ok := cfg.Sound.VolumeMultipliers[sound]; ok {
		volume *= mult
	}
	player.SetVolume(volume)
	player.Play()
}

// PreloadAllSFX decodes every sound effect up front so the first swing does
// not stall on decoding.
func PreloadAllSFX() {
	mixer.init()
	for id, path := range cfg.Sound.SFXPaths {
		if err := mixer.loader.PreloadSFX(path); err != nil {
			log.Printf("Warning: Could not preload sound %d: %v", id, err)
		}
	}
}

// UpdateAudio plays the sounds queued this frame. A sound queued twice in
// one frame (both fighters landing a hit together) plays once.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if len(audioData.PendingSFX) == 0 {
		return
	}

	// The context is only created once something needs to play
	mixer.init()
	audioData.Context = mixer.context

	var played [cfg.SoundCount]bool
	for _, sound := range audioData.PendingSFX {
		if sound <= cfg.SoundNone || sound >= cfg.SoundCount || played[sound] {
			continue
		}
		played[sound] = true
		mixer.play(sound)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

// PlaySFX queues a sound effect to be played by UpdateAudio
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(e *ecs.ECS, volume float64) {
	mixer.volume = volume
	GetOrCreateAudio(e).SFXVolume = volume
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return mixer.volume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			SFXVolume:  mixer.volume,
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
