package ebiten

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "kektris/pkg/engine/input"
	"kektris/pkg/game/gameplay"
)

// keyBinding maps an Ebiten key to a raw input code
type keyBinding struct {
	key    ebiten.Key
	code   string
	repeat bool // held key repeats
}

// keyboard lists the keys the renderer reports, in priority order
var keyboard = []keyBinding{
	{ebiten.KeyArrowLeft, "arrow_left", true},
	{ebiten.KeyArrowRight, "arrow_right", true},
	{ebiten.KeyArrowUp, "arrow_up", true},
	{ebiten.KeyArrowDown, "arrow_down", true},
	{ebiten.KeyH, "h", true},
	{ebiten.KeyL, "l", true},
	{ebiten.KeyK, "k", true},
	{ebiten.KeyJ, "j", true},
	{ebiten.KeyZ, "z", false},
	{ebiten.KeyC, "c", false},
	{ebiten.KeyX, "x", false},
	{ebiten.KeySpace, "space", false},
	{ebiten.KeyP, "p", false},
	{ebiten.KeyR, "r", false},
	{ebiten.KeyG, "g", false},
	{ebiten.KeyF8, "f8", false},
	{ebiten.KeyQ, "q", false},
	{ebiten.KeyEscape, "escape", false},
}

// Update handles input and advances the session by one tick (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	e.handleZoom()

	// Check for gamepad input first, then fall back to keyboard (raw layer)
	intent := e.checkGamepadInput()
	if intent.Action == engineinput.ActionNone {
		intent = e.checkInput()
	}

	err := gameplay.Step(e.game, intent)
	if errors.Is(err, gameplay.ErrQuit) {
		log.Printf("quit requested")
		return ebiten.Termination
	}
	return err
}

// handleZoom handles =/- for cell size adjustment
func (e *EbitenRenderer) handleZoom() {
	changed := false
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		if e.zoom < maxZoom {
			e.zoom++
			changed = true
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		if e.zoom > minZoom {
			e.zoom--
			changed = true
		}
	case inpututil.IsKeyJustPressed(ebiten.Key0) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad0):
		changed = e.zoom != defaultZoom
		e.zoom = defaultZoom
	}
	if changed {
		e.invalidateFontCache()
		ebiten.SetWindowSize(e.preferredSize())
	}
}

// shouldRepeatKey checks if a key/button should trigger (initial press or repeat)
func (e *EbitenRenderer) shouldRepeatKey(pressed bool, code string) bool {
	now := time.Now().UnixMilli()

	e.keyRepeatStateMutex.Lock()
	defer e.keyRepeatStateMutex.Unlock()

	state, exists := e.keyRepeatState[code]
	if !pressed {
		delete(e.keyRepeatState, code)
		return false
	}
	if !exists {
		e.keyRepeatState[code] = keyRepeatInfo{firstPressed: now, lastRepeat: now}
		return true
	}
	if now-state.firstPressed >= keyRepeatInitialDelay && now-state.lastRepeat >= keyRepeatInterval {
		state.lastRepeat = now
		e.keyRepeatState[code] = state
		return true
	}
	return false
}

// resolve runs a raw code through the input layers
func resolve(device engineinput.Device, code string) engineinput.Intent {
	return engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
		Device:    device,
		Code:      code,
		Timestamp: time.Now(),
	}))
}

// checkGamepadInput checks for controller/gamepad input and returns the corresponding Intent.
// NOTE: Button indices here are tuned for common XInput-style controllers on Linux;
// mappings may vary between devices/platforms.
func (e *EbitenRenderer) checkGamepadInput() engineinput.Intent {
	var ids []ebiten.GamepadID
	ids = ebiten.AppendGamepadIDs(ids)

	for _, id := range ids {
		// Left stick, axes 0 (X) and 1 (Y), with a dead zone against drift
		const deadZone = 0.5
		stickX := ebiten.GamepadAxisValue(id, 0)
		stickY := ebiten.GamepadAxisValue(id, 1)

		// D-pad buttons 11..14 are up, right, down, left
		dirs := []struct {
			pressed bool
			name    string
		}{
			{stickX < -deadZone || ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton14), "left"},
			{stickX > deadZone || ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton12), "right"},
			{stickY < -deadZone || ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton11), "up"},
			{stickY > deadZone || ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton13), "down"},
		}
		for _, d := range dirs {
			if e.shouldRepeatKey(d.pressed, fmt.Sprintf("gamepad_%d_%s", id, d.name)) {
				return resolve(engineinput.DeviceGamepad, "gamepad_dpad_"+d.name)
			}
		}

		// Face buttons: A 0, B 1, X 2; Start 7
		buttons := []struct {
			button ebiten.GamepadButton
			code   string
		}{
			{ebiten.GamepadButton0, "gamepad_a"},
			{ebiten.GamepadButton1, "gamepad_b"},
			{ebiten.GamepadButton2, "gamepad_x"},
			{ebiten.GamepadButton7, "gamepad_start"},
		}
		for _, b := range buttons {
			if inpututil.IsGamepadButtonJustPressed(id, b.button) {
				return resolve(engineinput.DeviceGamepad, b.code)
			}
		}
	}

	return engineinput.Intent{Action: engineinput.ActionNone}
}

// checkInput checks for keyboard input and returns the corresponding Intent.
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	for _, kb := range keyboard {
		var fire bool
		if kb.repeat {
			fire = e.shouldRepeatKey(ebiten.IsKeyPressed(kb.key), "key_"+kb.code)
		} else {
			fire = inpututil.IsKeyJustPressed(kb.key)
		}
		if fire {
			return resolve(engineinput.DeviceKeyboard, kb.code)
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}
