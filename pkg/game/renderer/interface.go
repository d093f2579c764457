package renderer

import (
	"kektris/pkg/game/state"
)

// Renderer is a frontend backend: it owns the frame loop, reads input,
// drives the session one tick per frame and draws the result.
// Implementations are Ebiten (window) and tcell (terminal).
type Renderer interface {
	// Init prepares the backend (fonts, window, screen, ...)
	Init() error

	// Run blocks until the player quits or the backend fails.
	// Quitting is not an error.
	Run(g *state.Game) error

	// Close releases the backend
	Close()
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Run initializes the current renderer and runs the session on it
func Run(g *state.Game) error {
	if Current == nil {
		return ErrNoRenderer
	}
	if err := Current.Init(); err != nil {
		return err
	}
	defer Current.Close()
	return Current.Run(g)
}
