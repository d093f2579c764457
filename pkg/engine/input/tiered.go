package input

import (
	"sort"
	"time"

	"kektris/pkg/engine/world"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
	DeviceTerminal
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown

	// Rotation
	ActionRotateLeft  // counter-clockwise
	ActionRotateRight // clockwise

	ActionDrop // advance until the figure settles

	// Meta / UI
	ActionPause
	ActionReset
	ActionQuit
	ActionToggleGuides // draw the grid guide lines
	ActionDumpGrid     // write the grid to a debug file
)

// Intent is the 4th-layer, high-level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "arrow_up", "z").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after debouncing/deduplication.
// Key repeat is handled by the frontends (ebiten inpututil, tcell key events),
// so this stays a thin copy of the raw event.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// defaultBindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var defaultBindings = map[string]Action{
	// Movement (arrows, Vim)
	"arrow_left":  ActionMoveLeft,
	"h":           ActionMoveLeft,
	"arrow_right": ActionMoveRight,
	"l":           ActionMoveRight,
	"arrow_up":    ActionMoveUp,
	"k":           ActionMoveUp,
	"arrow_down":  ActionMoveDown,
	"j":           ActionMoveDown,

	// Rotation
	"z": ActionRotateLeft,
	"c": ActionRotateRight,

	"x":     ActionDrop,
	"space": ActionDrop,

	"p":  ActionPause,
	"r":  ActionReset,
	"g":  ActionToggleGuides,
	"f8": ActionDumpGrid,

	// Gamepad
	"gamepad_dpad_left":  ActionMoveLeft,
	"gamepad_dpad_right": ActionMoveRight,
	"gamepad_dpad_up":    ActionMoveUp,
	"gamepad_dpad_down":  ActionMoveDown,
	"gamepad_a":          ActionRotateRight,
	"gamepad_b":          ActionRotateLeft,
	"gamepad_x":          ActionDrop,
	"gamepad_start":      ActionPause,

	// Quit
	"q":      ActionQuit,
	"escape": ActionQuit,
}

var bindings = copyBindings(defaultBindings)

func copyBindings(src map[string]Action) map[string]Action {
	dst := make(map[string]Action, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// ResetBindings restores the default bindings.
func ResetBindings() {
	bindings = copyBindings(defaultBindings)
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// Resolve runs a raw code through every layer.
func Resolve(device Device, code string) Intent {
	return MapToIntent(NewDebouncedInput(RawInput{Device: device, Code: code, Timestamp: time.Now()}))
}

// MoveDirection returns the board direction of a move action, or world.None.
func (a Action) MoveDirection() world.Direction {
	switch a {
	case ActionMoveLeft:
		return world.Left
	case ActionMoveRight:
		return world.Right
	case ActionMoveUp:
		return world.Up
	case ActionMoveDown:
		return world.Down
	default:
		return world.None
	}
}

// RotateDirection returns Left or Right for a rotate action, or world.None.
func (a Action) RotateDirection() world.Direction {
	switch a {
	case ActionRotateLeft:
		return world.Left
	case ActionRotateRight:
		return world.Right
	default:
		return world.None
	}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveLeft:
		return "Move Left"
	case ActionMoveRight:
		return "Move Right"
	case ActionMoveUp:
		return "Move Up"
	case ActionMoveDown:
		return "Move Down"
	case ActionRotateLeft:
		return "Rotate Left"
	case ActionRotateRight:
		return "Rotate Right"
	case ActionDrop:
		return "Drop"
	case ActionPause:
		return "Pause"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	case ActionToggleGuides:
		return "Guides"
	case ActionDumpGrid:
		return "Dump Grid"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so the help line doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// isReserved reports whether a code can never be rebound.
func isReserved(code string) bool {
	switch code {
	case "arrow_up", "arrow_down", "arrow_left", "arrow_right", "escape":
		return true
	}
	return false
}

// SetSingleBinding replaces all bindings for the given action with a single code.
// Arrow keys and escape keep their bindings.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if isReserved(c) {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !isReserved(code) {
		bindings[code] = action
	}
}
