package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uilab/inputx"
)

func seed() Traced {
	return Traced{
		Source: "backend-a",
		Event:  inputx.InputEvent(inputx.ResizeInput(0, 0)),
	}
}

// Traced must pass the same accessor suite as the built-in event types.
func TestTracedAccessors(t *testing.T) {
	CheckAccessors(t, seed())
}

// The source must survive a chain of typed constructors untouched; only the
// payload is allowed to change.
func TestTracedPreservesSourceAcrossConstructors(t *testing.T) {
	a := seed()

	b, ok := inputx.MakeMouseCursor(1.0, 0.0, a)
	assert.True(t, ok)
	assert.Equal(t, "backend-a", b.Source)

	c, ok := inputx.MakeText("hi", b)
	assert.True(t, ok)
	assert.Equal(t, "backend-a", c.Source)

	// The wrapped event changed kind along the way.
	assert.Equal(t, inputx.TextID, c.EventID())
}

// Traced delegates representability to the wrapped Event, which accepts
// every kind including custom ones.
func TestTracedAcceptsCustomKinds(t *testing.T) {
	const kind = inputx.EventID("app/zoom")

	z, ok := inputx.MakeEvent(kind, 1.5, seed())
	assert.True(t, ok)
	assert.Equal(t, kind, z.EventID())
	assert.Equal(t, "backend-a", z.Source)

	factor, ok := inputx.MapEvent(z, kind, func(f float64) float64 { return f })
	assert.True(t, ok)
	assert.Equal(t, 1.5, factor)
}
