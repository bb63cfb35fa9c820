package inputx_test

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"

	. "github.com/uilab/inputx"
)

func sampleInputs() []Input {
	return []Input{
		PressInput(Key(42).AsButton()),
		ReleaseInput(MouseMiddle.AsButton()),
		PressInput(ControllerButton{ID: 2, Button: 7}.AsButton()),
		MoveInput(MouseCursorMotion(12.5, -3.25)),
		MoveInput(MouseRelativeMotion(-1, 1)),
		MoveInput(MouseScrollMotion(0, 2)),
		MoveInput(ControllerAxisMotion(ControllerAxisArgs{ID: 1, Axis: 3, Position: -0.75})),
		MoveInput(TouchMotion(TouchArgs{Device: 1, ID: 8, X: 10, Y: 20, Pressure: 0.5, Touch: TouchMove})),
		TextInput("héllo wörld"),
		ResizeInput(1920, 1080),
		FocusInput(true),
		CursorInput(false),
	}
}

// Every input variant survives a JSON round trip unchanged.
func TestInputJSONRoundTrip(t *testing.T) {
	for _, in := range sampleInputs() {
		data, err := json.Marshal(in)
		if err != nil {
			t.Fatalf("marshal %v: %v", in, err)
		}
		var back Input
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if back != in {
			t.Errorf("round trip of %v produced %v (wire %s)", in, back, data)
		}
	}
}

// Every input variant survives a YAML round trip unchanged.
func TestInputYAMLRoundTrip(t *testing.T) {
	for _, in := range sampleInputs() {
		data, err := yaml.Marshal(in)
		if err != nil {
			t.Fatalf("marshal %v: %v", in, err)
		}
		var back Input
		if err := yaml.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if back != in {
			t.Errorf("round trip of %v produced %v (wire %s)", in, back, data)
		}
	}
}

// The render-family Event variants encode too; custom kinds do not.
func TestEventEncoding(t *testing.T) {
	events := []Event{
		RenderEvent(RenderArgs{ExtDT: 0.002, Width: 800, Height: 600, DrawWidth: 800, DrawHeight: 600}),
		AfterRenderEvent(AfterRenderArgs{}),
		UpdateEvent(UpdateArgs{DT: 0.016}),
		IdleEvent(IdleArgs{DT: 0.25}),
		InputEvent(TextInput("abc")),
	}
	for _, ev := range events {
		data, err := json.Marshal(ev)
		if err != nil {
			t.Fatalf("marshal %v: %v", ev, err)
		}
		var back Event
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if back != ev {
			t.Errorf("round trip of %v produced %v", ev, back)
		}
	}

	if _, err := json.Marshal(CustomEvent("app/zoom", 2.0)); err == nil {
		t.Error("marshaling a custom event did not fail")
	}
}

// Decoding rejects wire forms whose payload does not match the kind.
func TestDecodeRejectsMismatchedWire(t *testing.T) {
	cases := []string{
		`{"kind":"inputx/text"}`,
		`{"kind":"inputx/resize","text":"nope"}`,
		`{"kind":"inputx/render","xy":[1,2]}`,
		`{"kind":"nonsense","flag":true}`,
	}
	for _, c := range cases {
		var in Input
		if err := json.Unmarshal([]byte(c), &in); err == nil {
			t.Errorf("decoding %s succeeded as %v", c, in)
		}
	}

	// Render decodes as Event but not as Input.
	wire := `{"kind":"inputx/render","render":{"ext_dt":0,"width":1,"height":2,"draw_width":1,"draw_height":2}}`
	var in Input
	if err := json.Unmarshal([]byte(wire), &in); err == nil {
		t.Error("render wire decoded as Input")
	}
	var ev Event
	if err := json.Unmarshal([]byte(wire), &ev); err != nil {
		t.Errorf("render wire failed to decode as Event: %v", err)
	}
}
