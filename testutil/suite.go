package testutil

import (
	"testing"

	"github.com/uilab/inputx"
)

// CheckAccessors runs the construct-then-extract checks every GenericEvent
// implementation must satisfy, seeded with an arbitrary prior event. This
// allows running the same suite over Input, Event and any host-defined type.
func CheckAccessors[E inputx.GenericEvent[E]](t *testing.T, seed E) {
	t.Helper()

	cursor, ok := inputx.MakeMouseCursor(1.0, 0.0, seed)
	if !ok {
		t.Fatalf("MakeMouseCursor failed for %T", seed)
	}
	if xy, ok := inputx.MouseCursorOf(cursor); !ok || xy != [2]float64{1.0, 0.0} {
		t.Errorf("MouseCursorOf = %v, %v; want [1 0], true", xy, ok)
	}

	text, ok := inputx.MakeText("hello", cursor)
	if !ok {
		t.Fatalf("MakeText failed for %T", seed)
	}
	if s, ok := inputx.TextOf(text); !ok || s != "hello" {
		t.Errorf("TextOf = %q, %v; want \"hello\", true", s, ok)
	}

	// A text event must answer false to every other kind's accessor.
	if _, ok := inputx.ResizeOf(text); ok {
		t.Error("ResizeOf reported true for a text event")
	}
	if _, ok := inputx.MouseCursorOf(text); ok {
		t.Error("MouseCursorOf reported true for a text event")
	}

	resize, ok := inputx.MakeResize(100, 100, text)
	if !ok {
		t.Fatalf("MakeResize failed for %T", seed)
	}
	if wh, ok := inputx.ResizeOf(resize); !ok || wh != [2]uint32{100, 100} {
		t.Errorf("ResizeOf = %v, %v; want [100 100], true", wh, ok)
	}
}
