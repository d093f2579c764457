// Package renderer holds what the frontends share: the active backend,
// locale setup, HUD text and the classification of board cells for drawing.
package renderer

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/leonelquinteros/gotext"

	"kektris/pkg/engine/input"
	"kektris/pkg/engine/world"
	"kektris/pkg/game/state"
)

// ErrNoRenderer is returned by Run when no backend was selected
var ErrNoRenderer = errors.New("no renderer selected")

// dynamicGet looks up translation keys that are not constants.
// A function variable keeps go vet's printf check away from them.
var dynamicGet = gotext.Get

// TextDomain is the gettext domain of the message catalogues
const TextDomain = "default"

// InitLocale loads the message catalogue for lang from dir
// (dir/<lang>/LC_MESSAGES/default.po). Missing catalogues fall back to the
// built-in English messages.
func InitLocale(dir, lang string) {
	gotext.Configure(dir, lang, TextDomain)
	log.Printf("locale %s from %s", lang, dir)
}

// CellKind is what a board cell shows
type CellKind int

const (
	KindClear  CellKind = iota
	KindGuide           // clear cell on a freeze line, drawn when guides are on
	KindFigure          // the moving figure
	KindFrozen          // settled block
)

// KindAt classifies the cell at x, y for drawing
func KindAt(g *state.Game, x, y int) CellKind {
	cell := g.Grid.Cell(x, y)
	switch {
	case cell == nil:
		return KindClear
	case cell.IsFrozen():
		return KindFrozen
	case cell.IsBlocked():
		return KindFigure
	case g.ShowGuides && onFreezeLine(g.Grid, x, y):
		return KindGuide
	default:
		return KindClear
	}
}

// onFreezeLine reports whether x or y lies on one of the two centre lines
// on which figures settle.
func onFreezeLine(grid *world.Grid, x, y int) bool {
	half := grid.Half()
	return x == half-1 || x == half || y == half-1 || y == half
}

// StatusLine returns the score and speed HUD line
func StatusLine(g *state.Game) string {
	return gotext.Get("Score %d", g.Score) + "  " + gotext.Get("Speed %d", g.Speed)
}

// Banner returns the overlay text for the session state, or "" while playing
func Banner(g *state.Game) string {
	switch {
	case g.Over:
		return gotext.Get("Game over - press R to restart")
	case g.Paused:
		return gotext.Get("Paused - press P to play")
	default:
		return ""
	}
}

// helpOrder is the order of actions in the help lines
var helpOrder = []input.Action{
	input.ActionMoveLeft,
	input.ActionMoveRight,
	input.ActionMoveUp,
	input.ActionMoveDown,
	input.ActionRotateLeft,
	input.ActionRotateRight,
	input.ActionDrop,
	input.ActionPause,
	input.ActionReset,
	input.ActionToggleGuides,
	input.ActionQuit,
}

// HelpLines returns one "Action: keys" line per bound action.
// Gamepad codes are left out.
func HelpLines() []string {
	byAction := input.GetBindingsByAction()
	lines := make([]string, 0, len(helpOrder))
	for _, act := range helpOrder {
		var keys []string
		for _, code := range byAction[act] {
			if strings.HasPrefix(code, "gamepad_") {
				continue
			}
			keys = append(keys, keyLabel(code))
		}
		if len(keys) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", dynamicGet(input.ActionName(act)), strings.Join(keys, " ")))
	}
	return lines
}

// keyLabel shortens a raw key code for display
func keyLabel(code string) string {
	switch code {
	case "arrow_left":
		return "←"
	case "arrow_right":
		return "→"
	case "arrow_up":
		return "↑"
	case "arrow_down":
		return "↓"
	case "escape":
		return "Esc"
	case "space":
		return "Space"
	default:
		return code
	}
}
