// Package tui provides a terminal renderer on tcell. A ticker drives the
// session at the same 60 ticks per second as the window renderer while a
// goroutine polls key events.
package tui

import (
	"errors"
	"fmt"
	"log"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	engineinput "kektris/pkg/engine/input"
	"kektris/pkg/game/gameplay"
	"kektris/pkg/game/renderer"
	"kektris/pkg/game/state"
)

// TickRate is the session tick interval
const TickRate = time.Second / 60

// Each board cell is drawn two columns wide to keep it roughly square
const cellColumns = 2

var (
	styleDefault = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleBorder  = styleDefault.Foreground(tcell.ColorDarkGray)
	styleGuide   = styleDefault.Foreground(tcell.ColorNavy)
	styleFrozen  = styleDefault.Foreground(tcell.ColorSlateGray)
	styleHeader  = styleDefault.Foreground(tcell.ColorPlum).Bold(true)
	styleFlash   = styleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleSubtle  = styleDefault.Foreground(tcell.ColorGray)
	stylePaused  = styleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	styleOver    = styleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorRed).Bold(true)

	// indexed by figure.Shape
	shapeStyles = []tcell.Style{
		styleDefault.Foreground(tcell.ColorAqua),
		styleDefault.Foreground(tcell.ColorYellow),
		styleDefault.Foreground(tcell.ColorBlue),
		styleDefault.Foreground(tcell.ColorOrange),
		styleDefault.Foreground(tcell.ColorLime),
		styleDefault.Foreground(tcell.ColorRed),
		styleDefault.Foreground(tcell.ColorFuchsia),
	}
)

// TUIRenderer is the terminal renderer implementation
type TUIRenderer struct {
	screen  tcell.Screen
	game    *state.Game
	intents chan engineinput.Intent
	done    chan struct{}
}

// New creates a terminal renderer on the process's terminal
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// NewWithScreen creates a renderer drawing to an existing screen
func NewWithScreen(s tcell.Screen) *TUIRenderer {
	return &TUIRenderer{screen: s}
}

// Init creates and initializes the screen
func (t *TUIRenderer) Init() error {
	if t.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("create screen: %w", err)
		}
		t.screen = s
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	t.screen.SetStyle(styleDefault)
	t.screen.HideCursor()
	t.intents = make(chan engineinput.Intent, 8)
	t.done = make(chan struct{})
	return nil
}

// Close restores the terminal
func (t *TUIRenderer) Close() {
	if t.screen != nil {
		t.screen.Fini()
	}
}

// Run is the main loop: one session step and one frame per tick
func (t *TUIRenderer) Run(g *state.Game) error {
	t.game = g
	log.Printf("starting terminal renderer (board %d)", g.Grid.Size())

	go t.pollEvents()

	ticker := time.NewTicker(TickRate)
	defer ticker.Stop()

	for {
		select {
		case <-t.done:
			return nil
		case <-ticker.C:
			if err := gameplay.Step(g, t.nextIntent()); err != nil {
				if errors.Is(err, gameplay.ErrQuit) {
					log.Printf("quit requested")
					return nil
				}
				return err
			}
			t.draw()
		}
	}
}

// nextIntent takes at most one queued intent
func (t *TUIRenderer) nextIntent() engineinput.Intent {
	select {
	case intent := <-t.intents:
		return intent
	default:
		return engineinput.Intent{Action: engineinput.ActionNone}
	}
}

// pollEvents polls tcell for key events until the screen is finalized
func (t *TUIRenderer) pollEvents() {
	for {
		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				close(t.done)
				return
			}
			code := keyCode(ev.Key(), ev.Rune())
			if code == "" {
				continue
			}
			intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
				Device:    engineinput.DeviceTerminal,
				Code:      code,
				Timestamp: time.Now(),
			}))
			if intent.Action == engineinput.ActionNone {
				continue
			}
			// Drop input while the queue is full
			select {
			case t.intents <- intent:
			default:
			}
		}
	}
}

// keyCode translates a tcell key to a raw input code, or "" for unknown keys
func keyCode(key tcell.Key, r rune) string {
	switch key {
	case tcell.KeyLeft:
		return "arrow_left"
	case tcell.KeyRight:
		return "arrow_right"
	case tcell.KeyUp:
		return "arrow_up"
	case tcell.KeyDown:
		return "arrow_down"
	case tcell.KeyEscape:
		return "escape"
	case tcell.KeyF8:
		return "f8"
	case tcell.KeyRune:
		if r == ' ' {
			return "space"
		}
		return string(unicode.ToLower(r))
	}
	return ""
}

// draw renders a complete frame
func (t *TUIRenderer) draw() {
	s := t.screen
	g := t.game
	s.Clear()

	size := g.Grid.Size()
	width, height := s.Size()
	if width < size*cellColumns+2 || height < size+2 {
		drawText(s, 0, 0, styleOver, fmt.Sprintf("terminal too small: need %dx%d", size*cellColumns+2, size+2))
		s.Show()
		return
	}

	t.drawBoard(size)
	t.drawHUD(size*cellColumns + 4)

	if banner := renderer.Banner(g); banner != "" {
		style := stylePaused
		if g.Over {
			style = styleOver
		}
		bx := 1 + (size*cellColumns-len([]rune(banner)))/2
		drawText(s, max(bx, 1), 1+size/2, style, banner)
	}

	s.Show()
}

// drawBoard draws the framed grid with its top-left corner at (0, 0)
func (t *TUIRenderer) drawBoard(size int) {
	s := t.screen
	g := t.game
	right := size*cellColumns + 1

	for x := 1; x < right; x++ {
		s.SetContent(x, 0, tcell.RuneHLine, nil, styleBorder)
		s.SetContent(x, size+1, tcell.RuneHLine, nil, styleBorder)
	}
	for y := 1; y <= size; y++ {
		s.SetContent(0, y, tcell.RuneVLine, nil, styleBorder)
		s.SetContent(right, y, tcell.RuneVLine, nil, styleBorder)
	}
	s.SetContent(0, 0, tcell.RuneULCorner, nil, styleBorder)
	s.SetContent(right, 0, tcell.RuneURCorner, nil, styleBorder)
	s.SetContent(0, size+1, tcell.RuneLLCorner, nil, styleBorder)
	s.SetContent(right, size+1, tcell.RuneLRCorner, nil, styleBorder)

	figureStyle := styleDefault
	if g.Figure != nil {
		figureStyle = shapeStyles[g.Figure.Shape()]
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			var r rune
			var style tcell.Style
			switch renderer.KindAt(g, x, y) {
			case renderer.KindFrozen:
				r, style = tcell.RuneBlock, styleFrozen
			case renderer.KindFigure:
				r, style = tcell.RuneBlock, figureStyle
			case renderer.KindGuide:
				r, style = tcell.RuneBullet, styleGuide
			default:
				continue
			}
			for c := 0; c < cellColumns; c++ {
				s.SetContent(1+x*cellColumns+c, 1+y, r, nil, style)
			}
		}
	}
}

// drawHUD draws the status, message log and key help starting at column x
func (t *TUIRenderer) drawHUD(x int) {
	s := t.screen
	g := t.game

	y := 0
	drawText(s, x, y, styleHeader, "kektris")
	y += 2

	status := styleDefault
	if g.ScoreFlash > 0 || g.SpeedFlash > 0 {
		status = styleFlash
	}
	drawText(s, x, y, status, renderer.StatusLine(g))
	y += 2

	for _, msg := range g.Messages {
		drawText(s, x, y, styleDefault, msg)
		y++
	}
	y++

	for _, line := range renderer.HelpLines() {
		drawText(s, x, y, styleSubtle, line)
		y++
	}
}

// drawText writes a string one rune per column
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
