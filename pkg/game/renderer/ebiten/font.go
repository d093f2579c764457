package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// getFontFace returns a cached monospace face scaled to the current zoom
func (e *EbitenRenderer) getFontFace() *text.GoTextFace {
	size := fontSize * (1 + float64(e.zoom-defaultZoom)*0.15)
	if size < 10 {
		size = 10
	}
	if e.cachedFace == nil || e.cachedSize != size {
		e.cachedSize = size
		e.cachedFace = &text.GoTextFace{
			Source: e.fontSource,
			Size:   size,
		}
	}
	return e.cachedFace
}

// invalidateFontCache clears the cached face (call when zoom changes)
func (e *EbitenRenderer) invalidateFontCache() {
	e.cachedFace = nil
}
