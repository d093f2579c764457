package ebiten

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// roundedRect appends a clockwise rounded rectangle with top-left (x, y) to p
func roundedRect(p *vector.Path, x, y, w, h, r float32) {
	r = min(r, w/2, h/2)
	if r <= 0 {
		p.MoveTo(x, y)
		p.LineTo(x+w, y)
		p.LineTo(x+w, y+h)
		p.LineTo(x, y+h)
		p.Close()
		return
	}
	quarter := float32(math.Pi / 2)
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, 3*quarter, 0, vector.Clockwise)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, 0, quarter, vector.Clockwise)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, quarter, 2*quarter, vector.Clockwise)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, 2*quarter, 3*quarter, vector.Clockwise)
	p.Close()
}

// drawPanel fills a rounded panel and strokes its border
func drawPanel(screen *ebiten.Image, x, y, w, h float32, bg, border color.Color) {
	const radius, borderWidth = 8, 2

	var path vector.Path
	roundedRect(&path, x, y, w, h, radius)

	fill := &vector.DrawPathOptions{AntiAlias: true}
	fill.ColorScale.ScaleWithColor(bg)
	vector.FillPath(screen, &path, nil, fill)

	stroke := &vector.DrawPathOptions{AntiAlias: true}
	stroke.ColorScale.ScaleWithColor(border)
	vector.StrokePath(screen, &path, &vector.StrokeOptions{Width: borderWidth, MiterLimit: 10}, stroke)
}
