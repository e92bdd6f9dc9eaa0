package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowBuilderOptions(t *testing.T) {
	w := &appWindow{title: "SpaceS", width: 1200, height: 600}

	WithTitle("SpaceS Dev")(w)
	assert.Equal(t, "SpaceS Dev", w.title)

	// Zero values keep the current settings.
	WithTitle("")(w)
	assert.Equal(t, "SpaceS Dev", w.title)

	WithSize(0, 900)(w)
	assert.Equal(t, 1200, w.width)
	assert.Equal(t, 900, w.height)

	WithSize(1600, 0)(w)
	assert.Equal(t, 1600, w.width)
	assert.Equal(t, 900, w.height)

	WithResizable(true)(w)
	assert.True(t, w.resizable)

	WithDecorations(true)(w)
	assert.True(t, w.decorated)
}
