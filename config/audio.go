package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundSword
	SoundMagic
	SoundHit
	// Round sounds
	SoundRoundStart

	SoundCount // Must be last - used for array sizing
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
	// Names used by fighter prefabs for their attack sound
	ByName map[string]SoundID
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.75,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundSword:      "audio/sfx/sword.wav",
			SoundMagic:      "audio/sfx/magic.wav",
			SoundHit:        "audio/sfx/hit.wav",
			SoundRoundStart: "audio/sfx/round.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundSword: 0.5,
			SoundMagic: 0.75,
		},
		ByName: map[string]SoundID{
			"sword": SoundSword,
			"magic": SoundMagic,
		},
	}
}
