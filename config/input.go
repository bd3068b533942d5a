package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionAttackLight
	ActionAttackHeavy
	ActionCount // Must be last - used for array sizing
)

// ControlSchemeID selects the keyboard keys a fighter listens to.
type ControlSchemeID int

const (
	ControlSchemeP1 ControlSchemeID = iota // WASD + R/T
	ControlSchemeP2                        // Arrows + Numpad 1/2
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	// Per-scheme keyboard bindings, indexed by ControlSchemeID
	Schemes []map[ActionID]InputBinding
	// Bindings used when a fighter is bound to a gamepad
	Gamepad map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64

	// Global keys
	ToggleDebug      ebiten.Key
	ToggleMute       ebiten.Key
	ToggleFullscreen ebiten.Key

	// Pause menu, shared by both players and any gamepad
	Pause      InputBinding
	MenuUp     InputBinding
	MenuDown   InputBinding
	MenuSelect InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Schemes: []map[ActionID]InputBinding{
			ControlSchemeP1: {
				ActionMoveLeft:    {Keys: []ebiten.Key{ebiten.KeyA}},
				ActionMoveRight:   {Keys: []ebiten.Key{ebiten.KeyD}},
				ActionJump:        {Keys: []ebiten.Key{ebiten.KeyW}},
				ActionAttackLight: {Keys: []ebiten.Key{ebiten.KeyR}},
				ActionAttackHeavy: {Keys: []ebiten.Key{ebiten.KeyT}},
			},
			ControlSchemeP2: {
				ActionMoveLeft:    {Keys: []ebiten.Key{ebiten.KeyLeft}},
				ActionMoveRight:   {Keys: []ebiten.Key{ebiten.KeyRight}},
				ActionJump:        {Keys: []ebiten.Key{ebiten.KeyUp}},
				ActionAttackLight: {Keys: []ebiten.Key{ebiten.KeyNumpad1}},
				ActionAttackHeavy: {Keys: []ebiten.Key{ebiten.KeyNumpad2}},
			},
		},
		Gamepad: map[ActionID]InputBinding{
			ActionMoveLeft: {
				// D-pad Left (analog stick handled separately)
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionMoveRight: {
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionJump: {
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionAttackLight: {
				// X / Square button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightLeft,
				},
			},
			ActionAttackHeavy: {
				// Y / Triangle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
		},
		ToggleDebug:      ebiten.KeyF1,
		ToggleMute:       ebiten.KeyM,
		ToggleFullscreen: ebiten.KeyF11,

		Pause: InputBinding{
			Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
			// Start / Options button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonCenterRight,
			},
		},
		MenuUp: InputBinding{
			Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
			// D-pad Up
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftTop,
			},
		},
		MenuDown: InputBinding{
			Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
			// D-pad Down
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftBottom,
			},
		},
		MenuSelect: InputBinding{
			Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
			// A / Cross button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightBottom,
			},
		},
	}
}
