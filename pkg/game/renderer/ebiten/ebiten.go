// Package ebiten provides an Ebiten-based 2D graphical renderer for kektris.
// Ebiten runs Update at a fixed 60 ticks per second, so one Update is one
// session tick.
package ebiten

import (
	"bytes"
	"fmt"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"

	"kektris/pkg/game/state"
)

// keyRepeatInfo tracks a held key or button
type keyRepeatInfo struct {
	firstPressed int64 // Unix ms of the initial press
	lastRepeat   int64 // Unix ms of the last emitted repeat
}

// EbitenRenderer draws the board and HUD in a window and feeds key presses
// into the session.
type EbitenRenderer struct {
	game *state.Game

	cellPixels int
	zoom       int

	windowWidth        int
	windowHeight       int
	windowOpenedLogged bool

	keyRepeatState      map[string]keyRepeatInfo
	keyRepeatStateMutex sync.Mutex

	fontSource *text.GoTextFaceSource
	cachedFace *text.GoTextFace
	cachedSize float64
}

// New creates a new Ebiten renderer with board cells of cellPixels at zoom 1
func New(cellPixels int) *EbitenRenderer {
	return &EbitenRenderer{
		cellPixels:     cellPixels,
		zoom:           defaultZoom,
		keyRepeatState: make(map[string]keyRepeatInfo),
	}
}

// Init loads the font and sets up the window
func (e *EbitenRenderer) Init() error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	e.fontSource = src

	ebiten.SetWindowTitle("kektris")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return nil
}

// Run starts the Ebiten game loop and blocks until the window closes
func (e *EbitenRenderer) Run(g *state.Game) error {
	e.game = g
	w, h := e.preferredSize()
	ebiten.SetWindowSize(w, h)
	log.Printf("starting ebiten renderer (%dx%d, board %d)", w, h, g.Grid.Size())
	return ebiten.RunGame(e)
}

// Close is a no-op; Ebiten tears the window down when RunGame returns
func (e *EbitenRenderer) Close() {}

// tileSize returns the on-screen size of one board cell
func (e *EbitenRenderer) tileSize() int {
	return e.cellPixels * e.zoom
}

// preferredSize returns the window size that fits the board and HUD
func (e *EbitenRenderer) preferredSize() (int, int) {
	board := e.game.Grid.Size() * e.tileSize()
	return board + 3*boardMargin + hudWidth, board + 2*boardMargin
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth = outsideWidth
	e.windowHeight = outsideHeight
	return outsideWidth, outsideHeight
}
