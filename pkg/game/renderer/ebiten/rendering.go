package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"kektris/pkg/game/renderer"
	"kektris/pkg/game/state"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if e.game == nil || e.fontSource == nil {
		return
	}

	e.drawBoard(screen, e.game)
	e.drawHUD(screen, e.game)

	if banner := renderer.Banner(e.game); banner != "" {
		e.drawBanner(screen, banner, e.game.Over)
	}
}

// drawBoard draws every cell of the grid, one filled square per cell
func (e *EbitenRenderer) drawBoard(screen *ebiten.Image, g *state.Game) {
	tile := float32(e.tileSize())
	size := g.Grid.Size()
	board := float32(size) * tile
	vector.DrawFilledRect(screen, boardMargin, boardMargin, board, board, colorBoard, false)

	var figureColor color.Color = colorText
	if g.Figure != nil {
		figureColor = shapeColors[g.Figure.Shape()]
	}

	gap := float32(1)
	if tile < 4 {
		gap = 0
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			var clr color.Color
			switch renderer.KindAt(g, x, y) {
			case renderer.KindFrozen:
				clr = colorFrozen
			case renderer.KindFigure:
				clr = figureColor
			case renderer.KindGuide:
				clr = colorGuide
			default:
				continue
			}
			px := boardMargin + float32(x)*tile
			py := boardMargin + float32(y)*tile
			vector.DrawFilledRect(screen, px, py, tile-gap, tile-gap, clr, false)
		}
	}
}

// drawHUD draws the score, speed, message log and key help beside the board
func (e *EbitenRenderer) drawHUD(screen *ebiten.Image, g *state.Game) {
	face := e.getFontFace()
	x := float64(2*boardMargin + g.Grid.Size()*e.tileSize())
	y := float64(boardMargin)

	statusColor := colorText
	if g.ScoreFlash > 0 || g.SpeedFlash > 0 {
		statusColor = colorFlash
	}
	e.drawText(screen, face, "kektris", x, y, colorPanelBorder)
	y += 1.5 * lineHeight
	e.drawText(screen, face, renderer.StatusLine(g), x, y, statusColor)
	y += 1.5 * lineHeight

	for _, msg := range g.Messages {
		e.drawText(screen, face, msg, x, y, colorText)
		y += lineHeight
	}
	y += lineHeight

	for _, line := range renderer.HelpLines() {
		e.drawText(screen, face, line, x, y, colorSubtle)
		y += lineHeight
	}
}

// drawBanner draws a centred panel over the board
func (e *EbitenRenderer) drawBanner(screen *ebiten.Image, msg string, over bool) {
	face := e.getFontFace()
	w, h := text.Measure(msg, face, 0)
	board := float64(e.game.Grid.Size() * e.tileSize())

	const pad = 16
	px := boardMargin + (board-w)/2 - pad
	py := boardMargin + (board-h)/2 - pad
	drawPanel(screen, float32(px), float32(py), float32(w+2*pad), float32(h+2*pad), colorPanel, colorPanelBorder)

	clr := colorText
	if over {
		clr = colorDenied
	}
	e.drawText(screen, face, msg, px+pad, py+pad, clr)
}

func (e *EbitenRenderer) drawText(screen *ebiten.Image, face *text.GoTextFace, msg string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, msg, face, op)
}
