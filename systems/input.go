package systems

import (
	"slices"

	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls the global keys into the Input singleton and refreshes
// the connected gamepads. Must run BEFORE UpdateSettings, UpdatePause and
// UpdateFighterInput in the system order.
func UpdateInput(ecs *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	input := getOrCreateInput(ecs)
	input.ToggleDebug = inpututil.IsKeyJustPressed(cfg.Input.ToggleDebug)
	input.ToggleMute = inpututil.IsKeyJustPressed(cfg.Input.ToggleMute)
	input.ToggleFullscreen = inpututil.IsKeyJustPressed(cfg.Input.ToggleFullscreen)

	input.Pause = justPressed(cfg.Input.Pause)
	input.MenuUp = justPressed(cfg.Input.MenuUp)
	input.MenuDown = justPressed(cfg.Input.MenuDown)
	input.MenuSelect = justPressed(cfg.Input.MenuSelect)
}

// justPressed reports whether any key or any gamepad's button of binding
// went down this frame.
func justPressed(binding cfg.InputBinding) bool {
	for _, key := range binding.Keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	for _, id := range gamepadIDs {
		for _, btn := range binding.StandardGamepadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, btn) {
				return true
			}
		}
	}
	return false
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// UpdateFighterInput polls input for every fighter based on its control scheme
// and, when one is connected, the gamepad matching its player slot.
func UpdateFighterInput(ecs *ecs.ECS) {
	components.PlayerInput.Each(ecs.World, func(entry *donburi.Entry) {
		input := components.PlayerInput.Get(entry)
		if entry.HasComponent(components.Fighter) {
			bindGamepad(input, components.Fighter.Get(entry).PlayerIndex, gamepadIDs)
		}
		input.Set(pollFighterInput(input))
	})
}

// bindGamepad drops a binding whose pad is gone and then gives the player
// the connected pad in its slot, so a replugged controller is picked up again.
func bindGamepad(input *components.PlayerInputData, player int, connected []ebiten.GamepadID) {
	if input.BoundGamepadID != nil && !slices.Contains(connected, *input.BoundGamepadID) {
		input.BoundGamepadID = nil
	}
	if input.BoundGamepadID != nil {
		return
	}
	slot := player - 1
	if slot >= 0 && slot < len(connected) {
		id := connected[slot]
		input.BoundGamepadID = &id
	}
}

func pollFighterInput(input *components.PlayerInputData) [cfg.ActionCount]bool {
	var current [cfg.ActionCount]bool

	scheme := int(input.ControlScheme)
	if scheme >= 0 && scheme < len(cfg.Input.Schemes) {
		for actionID, binding := range cfg.Input.Schemes[scheme] {
			for _, key := range binding.Keys {
				if ebiten.IsKeyPressed(key) {
					current[actionID] = true
				}
			}
		}
	}

	if input.BoundGamepadID != nil {
		pollGamepad(&current, *input.BoundGamepadID)
	}

	return current
}

// pollGamepad merges a gamepad's buttons and left stick into current.
func pollGamepad(current *[cfg.ActionCount]bool, gpID ebiten.GamepadID) {
	if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
		return
	}

	for actionID, binding := range cfg.Input.Gamepad {
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				current[actionID] = true
			}
		}
	}

	deadzone := cfg.Input.AnalogDeadzone
	horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
	if horizontal < -deadzone {
		current[cfg.ActionMoveLeft] = true
	}
	if horizontal > deadzone {
		current[cfg.ActionMoveRight] = true
	}
}
