package ebiten

import (
	"image/color"

	"kektris/pkg/game/figure"
)

// Color palette
var (
	colorBackground  = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorBoard       = color.RGBA{15, 15, 26, 255}    // Darker for the board
	colorGuide       = color.RGBA{40, 40, 64, 255}    // Freeze lines
	colorFrozen      = color.RGBA{120, 130, 180, 255} // Settled blocks
	colorText        = color.RGBA{200, 210, 245, 255} // Soft off-white
	colorSubtle      = color.RGBA{120, 130, 180, 255} // Help text
	colorFlash       = color.RGBA{255, 220, 100, 255} // Changed score/speed
	colorDenied      = color.RGBA{255, 100, 100, 255} // Game over
	colorPanel       = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
	colorPanelBorder = color.RGBA{180, 150, 250, 255} // Blue-purple
)

// shapeColors colours the moving figure by shape
var shapeColors = [figure.ShapeCount]color.RGBA{
	figure.ShapeI: {0, 220, 220, 255},
	figure.ShapeO: {240, 220, 0, 255},
	figure.ShapeJ: {80, 120, 255, 255},
	figure.ShapeL: {255, 165, 0, 255},
	figure.ShapeS: {0, 220, 100, 255},
	figure.ShapeZ: {255, 80, 80, 255},
	figure.ShapeT: {200, 100, 255, 255},
}

// Zoom constraints; a board cell is CellPixels*zoom pixels wide
const (
	defaultZoom = 3
	minZoom     = 1
	maxZoom     = 8
)

// Layout in unzoomed pixels
const (
	boardMargin = 16
	hudWidth    = 260
	fontSize    = 14.0
	lineHeight  = 20
)

const (
	keyRepeatInitialDelay = 170 // Initial delay before first repeat (milliseconds)
	keyRepeatInterval     = 50  // Interval between repeat events (milliseconds)
)
