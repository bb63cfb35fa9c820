package inputx_test

import (
	"testing"

	. "github.com/uilab/inputx"
)

// Wrapping an Input must not change how accessors answer.
func TestInputEventAgreesWithInput(t *testing.T) {
	in := MoveInput(MouseScrollMotion(0.5, -1.5))
	ev := InputEvent(in)

	if ev.EventID() != in.EventID() {
		t.Fatalf("wrapper kind %s, input kind %s", ev.EventID(), in.EventID())
	}

	fromInput, ok1 := MouseScrollOf(in)
	fromEvent, ok2 := MouseScrollOf(ev)
	if ok1 != ok2 || fromInput != fromEvent {
		t.Errorf("Input answered %v, %v; Event answered %v, %v", fromInput, ok1, fromEvent, ok2)
	}

	back, ok := ev.Input()
	if !ok || back != in {
		t.Errorf("Input() = %v, %v; want %v, true", back, ok, in)
	}
}

// The render-family variants never unwrap to an Input.
func TestRenderFamilyIsNotInput(t *testing.T) {
	events := []Event{
		RenderEvent(RenderArgs{Width: 1, Height: 2}),
		AfterRenderEvent(AfterRenderArgs{}),
		UpdateEvent(UpdateArgs{DT: 0.016}),
		IdleEvent(IdleArgs{DT: 1}),
		CustomEvent("app/zoom", 2.0),
	}
	for _, ev := range events {
		if in, ok := ev.Input(); ok {
			t.Errorf("%v unwrapped to input %v", ev, in)
		}
	}
}

// Render-family accessors round-trip through Event.
func TestRenderFamilyAccessors(t *testing.T) {
	seed := InputEvent(FocusInput(false))

	r, _ := MakeRender(RenderArgs{ExtDT: 0.001, Width: 800, Height: 600, DrawWidth: 1600, DrawHeight: 1200}, seed)
	if args, ok := RenderOf(r); !ok || args.DrawWidth != 1600 {
		t.Errorf("RenderOf = %+v, %v", args, ok)
	}
	if _, ok := UpdateOf(r); ok {
		t.Error("UpdateOf reported true for a render event")
	}

	u, _ := MakeUpdate(UpdateArgs{DT: 0.016}, r)
	if args, ok := UpdateOf(u); !ok || args.DT != 0.016 {
		t.Errorf("UpdateOf = %+v, %v", args, ok)
	}

	i, _ := MakeIdle(IdleArgs{DT: 2}, u)
	if args, ok := IdleOf(i); !ok || args.DT != 2 {
		t.Errorf("IdleOf = %+v, %v", args, ok)
	}

	a, _ := MakeAfterRender(AfterRenderArgs{}, i)
	if _, ok := AfterRenderOf(a); !ok {
		t.Error("AfterRenderOf reported false for an after-render event")
	}
}

// Events compare by structural value.
func TestEventEquality(t *testing.T) {
	a := InputEvent(TextInput("hello"))
	b := InputEvent(TextInput("hello"))
	if a != b {
		t.Error("equal text events compare unequal")
	}

	c := InputEvent(TextInput("world"))
	if a == c {
		t.Error("different text events compare equal")
	}

	if RenderEvent(RenderArgs{}) == AfterRenderEvent(AfterRenderArgs{}) {
		t.Error("render and after-render compare equal")
	}
}
