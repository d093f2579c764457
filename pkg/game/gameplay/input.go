package gameplay

import (
	"errors"
	"log"

	engineinput "kektris/pkg/engine/input"
	"kektris/pkg/game/devtools"
	"kektris/pkg/game/state"
)

// ErrQuit is returned when the player asks to leave the game
var ErrQuit = errors.New("quit requested")

// ProcessIntent handles a high-level input intent from the tiered input system.
// Session intents (pause, reset, drop, quit, dev tools) are applied here;
// move and rotate intents are returned as the Input for the next tick.
func ProcessIntent(g *state.Game, intent engineinput.Intent) (Input, error) {
	switch intent.Action {
	case engineinput.ActionNone:
		return Input{}, nil

	case engineinput.ActionQuit:
		return Input{}, ErrQuit

	case engineinput.ActionPause:
		TogglePause(g)
		return Input{}, nil

	case engineinput.ActionReset:
		return Input{}, Reset(g)

	case engineinput.ActionToggleGuides:
		g.ShowGuides = !g.ShowGuides
		return Input{}, nil

	case engineinput.ActionDumpGrid:
		path, err := devtools.DumpGridToFile(g)
		if err != nil {
			log.Printf("grid dump failed: %v", err)
			logMessage(g, "Grid dump failed: %v", err)
		} else {
			logMessage(g, "Grid dumped to %s", path)
		}
		return Input{}, nil

	case engineinput.ActionDrop:
		return Input{}, Drop(g)
	}

	return Input{
		Move:   intent.Action.MoveDirection(),
		Rotate: intent.Action.RotateDirection(),
	}, nil
}

// Step processes one intent and evaluates one tick with the resulting input.
// Frontends call it once per frame, with ActionNone when nothing was pressed.
func Step(g *state.Game, intent engineinput.Intent) error {
	in, err := ProcessIntent(g, intent)
	if err != nil {
		return err
	}
	return Tick(g, in)
}
