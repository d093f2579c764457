package ebiten

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kektris/pkg/game/config"
	"kektris/pkg/game/state"
)

func TestShouldRepeatKey(t *testing.T) {
	e := New(6)

	assert.True(t, e.shouldRepeatKey(true, "key_h"), "first press fires")
	assert.False(t, e.shouldRepeatKey(true, "key_h"), "held key waits for the repeat delay")
	assert.False(t, e.shouldRepeatKey(false, "key_h"))
	assert.True(t, e.shouldRepeatKey(true, "key_h"), "press after release fires again")
}

func TestPreferredSize(t *testing.T) {
	e := New(6)
	e.game = state.NewGame(config.Default(), 1)

	w, h := e.preferredSize()
	board := 34 * 6 * defaultZoom
	assert.Equal(t, board+3*boardMargin+hudWidth, w)
	assert.Equal(t, board+2*boardMargin, h)
}
