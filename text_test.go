package inputx_test

import (
	"testing"

	. "github.com/uilab/inputx"
)

func TestInputText(t *testing.T) {
	e := TextInput("")

	a, ok := MakeText("hello", e)
	if !ok {
		t.Fatal("MakeText returned false for Input")
	}
	b, ok := MapText(a, func(s string) Input {
		ev, _ := MakeText(s, a)
		return ev
	})
	if !ok {
		t.Fatal("MapText returned false for a text event")
	}
	if a != b {
		t.Errorf("reconstructed event %v differs from %v", b, a)
	}
}

func TestEventText(t *testing.T) {
	e := InputEvent(TextInput(""))

	a, ok := MakeText("hello", e)
	if !ok {
		t.Fatal("MakeText returned false for Event")
	}
	b, ok := MapText(a, func(s string) Event {
		ev, _ := MakeText(s, a)
		return ev
	})
	if !ok {
		t.Fatal("MapText returned false for a text event")
	}
	if a != b {
		t.Errorf("reconstructed event %v differs from %v", b, a)
	}
}

func TestTextArgsAccessor(t *testing.T) {
	ev, _ := MakeText("héllo", Input{})
	if s, ok := TextOf(ev); !ok || s != "héllo" {
		t.Errorf("TextOf = %q, %v; want \"héllo\", true", s, ok)
	}
}
