package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer used by the battle scene.
const Default ecs.LayerID = 0

// FighterConfig contains all fighter-related configuration values
type FighterConfig struct {
	// Movement
	Speed        float64 // horizontal pixels per frame while a move key is held
	Gravity      float64 // added to vertical velocity every frame
	JumpVelocity float64 // vertical velocity applied on jump (negative = up)

	// Combat
	MaxHealth      int
	AttackCooldown int     // frames between the end of one attack and the next
	AttackReach    float64 // attack rect width as a multiple of hitbox width
	LifeSteal      int     // health restored to the attacker on a successful hit

	// Dimensions
	HitboxWidth  float64
	HitboxHeight float64
	FloorMargin  float64 // distance of the floor above the bottom edge when the arena has none
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	// Damage per hit zone
	HeadDamage  int
	BodyDamage  int
	OtherDamage int

	// Flash effects (frames)
	HitFlashFrames int
}

// AnimationConfig contains animation-related configuration values
type AnimationConfig struct {
	FrameTicks int // ticks each frame is held (3 ticks = 50ms at 60 TPS)
}

// PopupConfig contains floating damage number configuration
type PopupConfig struct {
	DurationFrames int     // how long a damage number stays on screen
	OffsetY        float64 // drawn this many pixels above the recorded position
	RiseDistance   float64 // extra pixels the number drifts upward over its lifetime
	Color          color.RGBA
}

// RoundConfig contains round flow configuration
type RoundConfig struct {
	IntroFrames int // countdown before fighters can act
	OverFrames  int // pause after a knockout before the next round starts
}

// HUDConfig contains health bar and score display values
type HUDConfig struct {
	HealthBarWidth  float64
	HealthBarHeight float64
	HealthBarMargin float64
	BorderWidth     float64
	ScoreOffsetY    float64

	BorderColor     color.RGBA
	BackgroundColor color.RGBA
	HealthColor     color.RGBA
	TextColor       color.RGBA
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	HitIntensity float64 // pixels
	HitDuration  int     // frames
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHitboxes    bool // Draw hitboxes, attack rects and state labels
	HotReload       bool // Watch prefab files and re-apply fighter specs on change
	AttackBoxFrames int  // how long a swung attack rect stays on the overlay
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Fighter FighterConfig
var Combat CombatConfig
var Animation AnimationConfig
var Popup PopupConfig
var Round RoundConfig
var HUD HUDConfig
var Pause PauseConfig
var ScreenShake ScreenShakeConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}

	BackdropColor = color.RGBA{R: 40, G: 44, B: 68, A: 255}
	FloorColor    = color.RGBA{R: 70, G: 52, B: 40, A: 255}
)

func init() {
	C = &Config{
		Width:  1000,
		Height: 600,
		TPS:    60,
	}

	Fighter = FighterConfig{
		Speed:        10,
		Gravity:      2,
		JumpVelocity: -30,

		MaxHealth:      100,
		AttackCooldown: 20,
		AttackReach:    2,
		LifeSteal:      5,

		HitboxWidth:  80,
		HitboxHeight: 180,
		FloorMargin:  110,
	}

	Combat = CombatConfig{
		HeadDamage:  20,
		BodyDamage:  10,
		OtherDamage: 5,

		HitFlashFrames: 4,
	}

	Animation = AnimationConfig{
		FrameTicks: 3,
	}

	Popup = PopupConfig{
		DurationFrames: 60, // 1 second at 60fps
		OffsetY:        20,
		RiseDistance:   30,
		Color:          Red,
	}

	Round = RoundConfig{
		IntroFrames: 180, // 3..2..1
		OverFrames:  120,
	}

	HUD = HUDConfig{
		HealthBarWidth:  400,
		HealthBarHeight: 30,
		HealthBarMargin: 20,
		BorderWidth:     2,
		ScoreOffsetY:    60,

		BorderColor:     White,
		BackgroundColor: Red,
		HealthColor:     Yellow,
		TextColor:       White,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Restart", "Quit"},
	}

	ScreenShake = ScreenShakeConfig{
		HitIntensity: 4.0,
		HitDuration:  8,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowHitboxes:    false,
		HotReload:       false,
		AttackBoxFrames: 10,
	}
}

// FloorY returns the default floor line for a screen of the given height.
func FloorY(screenHeight float64) float64 {
	return screenHeight - Fighter.FloorMargin
}
