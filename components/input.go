package components

import (
	cfg "github.com/automoto/brawler/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// InputData stores the global keys that went down this frame.
type InputData struct {
	ToggleDebug      bool
	ToggleMute       bool
	ToggleFullscreen bool

	Pause      bool
	MenuUp     bool
	MenuDown   bool
	MenuSelect bool
}

var Input = donburi.NewComponentType[InputData]()

// PlayerInputData stores per-fighter input state.
// Each fighter entity has its own PlayerInputData with a bound control scheme.
type PlayerInputData struct {
	CurrentInput   [cfg.ActionCount]bool // Current frame's Pressed state
	PreviousInput  [cfg.ActionCount]bool // Previous frame's Pressed state
	BoundGamepadID *ebiten.GamepadID     // Bound gamepad (nil = keyboard only)
	ControlScheme  cfg.ControlSchemeID
}

// Pressed reports whether action is held this frame.
func (p *PlayerInputData) Pressed(action cfg.ActionID) bool {
	return p.CurrentInput[action]
}

// JustPressed reports whether action went down this frame.
func (p *PlayerInputData) JustPressed(action cfg.ActionID) bool {
	return p.CurrentInput[action] && !p.PreviousInput[action]
}

// Set replaces the current frame's state, shifting the old one into PreviousInput.
func (p *PlayerInputData) Set(current [cfg.ActionCount]bool) {
	p.PreviousInput = p.CurrentInput
	p.CurrentInput = current
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
