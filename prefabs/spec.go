package prefabs

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/automoto/brawler/config"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// FighterSpec describes how a fighter's sprite sheet is laid out and drawn.
type FighterSpec struct {
	Name        string  `yaml:"name"`
	Sheet       string  `yaml:"sheet"`
	FrameSize   int     `yaml:"frame_size"`
	Scale       float64 `yaml:"scale"`
	OffsetX     float64 `yaml:"offset_x"`
	OffsetY     float64 `yaml:"offset_y"`
	AttackSound string  `yaml:"attack_sound"`
	Tint        string  `yaml:"tint"`

	// One entry per action row of the sheet, in config.StateID order.
	AnimationSteps []int `yaml:"animation_steps"`
}

var (
	ErrMissingSheet  = errors.New("missing sheet")
	ErrBadFrameSize  = errors.New("frame_size must be positive")
	ErrBadScale      = errors.New("scale must be positive")
	ErrBadStepCount  = errors.New("wrong number of animation_steps")
	ErrBadStep       = errors.New("animation_steps entries must be positive")
	ErrUnknownSound  = errors.New("unknown attack_sound")
	ErrBadTintFormat = errors.New("tint must be #rrggbb")
)

// Validate reports the first problem that would stop the spec from being
// sliced into animations.
func (s *FighterSpec) Validate() error {
	if s.Sheet == "" {
		return fmt.Errorf("prefabs: %s: %w", s.Name, ErrMissingSheet)
	}
	if s.FrameSize <= 0 {
		return fmt.Errorf("prefabs: %s: %w", s.Name, ErrBadFrameSize)
	}
	if s.Scale <= 0 {
		return fmt.Errorf("prefabs: %s: %w", s.Name, ErrBadScale)
	}
	if len(s.AnimationSteps) != int(config.StateCount) {
		return fmt.Errorf("prefabs: %s: %w: got %d, want %d",
			s.Name, ErrBadStepCount, len(s.AnimationSteps), config.StateCount)
	}
	for i, n := range s.AnimationSteps {
		if n <= 0 {
			return fmt.Errorf("prefabs: %s: %w: %s has %d", s.Name, ErrBadStep, config.StateID(i), n)
		}
	}
	if s.AttackSound != "" {
		if _, ok := config.Sound.ByName[s.AttackSound]; !ok {
			return fmt.Errorf("prefabs: %s: %w %q", s.Name, ErrUnknownSound, s.AttackSound)
		}
	}
	if s.Tint != "" {
		if _, err := ParseTint(s.Tint); err != nil {
			return fmt.Errorf("prefabs: %s: %w", s.Name, err)
		}
	}
	return nil
}

// AttackSoundID maps the attack_sound name to a config sound.
func (s *FighterSpec) AttackSoundID() config.SoundID {
	return config.Sound.ByName[s.AttackSound]
}

// ParseTint parses a "#rrggbb" colour into float scale factors in [0, 1].
func ParseTint(hex string) ([3]float32, error) {
	var out [3]float32
	var r, g, b uint8
	if len(hex) != 7 || hex[0] != '#' {
		return out, ErrBadTintFormat
	}
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return out, fmt.Errorf("%w: %w", ErrBadTintFormat, err)
	}
	out[0] = float32(r) / 255
	out[1] = float32(g) / 255
	out[2] = float32(b) / 255
	return out, nil
}

// LoadFighterSpec loads and validates "<name>.yaml".
func LoadFighterSpec(name string) (*FighterSpec, error) {
	filename := name
	if !isSpecFile(filename) {
		filename += ".yaml"
	}
	spec, err := LoadSpec[FighterSpec](filename)
	if err != nil {
		return nil, err
	}
	if spec.Name == "" {
		spec.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}
