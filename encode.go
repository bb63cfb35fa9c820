package inputx

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Wire form shared by the JSON and YAML encodings of Input and Event.
// Exactly one payload field is set, selected by Kind. Custom event kinds
// have no wire form since their payload type is unknown here.
type wireEvent struct {
	Kind        EventID             `json:"kind" yaml:"kind"`
	Button      *Button             `json:"button,omitempty" yaml:"button,omitempty"`
	XY          *[2]float64         `json:"xy,omitempty" yaml:"xy,omitempty,flow"`
	Size        *[2]uint32          `json:"size,omitempty" yaml:"size,omitempty,flow"`
	Text        *string             `json:"text,omitempty" yaml:"text,omitempty"`
	Flag        *bool               `json:"flag,omitempty" yaml:"flag,omitempty"`
	Axis        *ControllerAxisArgs `json:"axis,omitempty" yaml:"axis,omitempty"`
	Touch       *TouchArgs          `json:"touch,omitempty" yaml:"touch,omitempty"`
	Render      *RenderArgs         `json:"render,omitempty" yaml:"render,omitempty"`
	AfterRender *AfterRenderArgs    `json:"after_render,omitempty" yaml:"after_render,omitempty"`
	Update      *UpdateArgs         `json:"update,omitempty" yaml:"update,omitempty"`
	Idle        *IdleArgs           `json:"idle,omitempty" yaml:"idle,omitempty"`
}

func toWire(kind EventID, args any) (wireEvent, error) {
	w := wireEvent{Kind: kind}
	switch kind {
	case PressID, ReleaseID:
		b := args.(Button)
		w.Button = &b
	case MouseCursorID, MouseRelativeID, MouseScrollID:
		xy := args.([2]float64)
		w.XY = &xy
	case ResizeID:
		wh := args.([2]uint32)
		w.Size = &wh
	case TextID:
		s := args.(string)
		w.Text = &s
	case FocusID, CursorID:
		f := args.(bool)
		w.Flag = &f
	case ControllerAxisID:
		a := args.(ControllerAxisArgs)
		w.Axis = &a
	case TouchID:
		t := args.(TouchArgs)
		w.Touch = &t
	case RenderID:
		r := args.(RenderArgs)
		w.Render = &r
	case AfterRenderID:
		a := args.(AfterRenderArgs)
		w.AfterRender = &a
	case UpdateID:
		u := args.(UpdateArgs)
		w.Update = &u
	case IdleID:
		i := args.(IdleArgs)
		w.Idle = &i
	default:
		return wireEvent{}, fmt.Errorf("event kind %q is not encodable", kind)
	}
	return w, nil
}

func (w wireEvent) payload() (any, error) {
	var args any
	switch w.Kind {
	case PressID, ReleaseID:
		if w.Button == nil {
			return nil, fmt.Errorf("event kind %q requires a button payload", w.Kind)
		}
		args = *w.Button
	case MouseCursorID, MouseRelativeID, MouseScrollID:
		if w.XY == nil {
			return nil, fmt.Errorf("event kind %q requires an xy payload", w.Kind)
		}
		args = *w.XY
	case ResizeID:
		if w.Size == nil {
			return nil, fmt.Errorf("event kind %q requires a size payload", w.Kind)
		}
		args = *w.Size
	case TextID:
		if w.Text == nil {
			return nil, fmt.Errorf("event kind %q requires a text payload", w.Kind)
		}
		args = *w.Text
	case FocusID, CursorID:
		if w.Flag == nil {
			return nil, fmt.Errorf("event kind %q requires a flag payload", w.Kind)
		}
		args = *w.Flag
	case ControllerAxisID:
		if w.Axis == nil {
			return nil, fmt.Errorf("event kind %q requires an axis payload", w.Kind)
		}
		args = *w.Axis
	case TouchID:
		if w.Touch == nil {
			return nil, fmt.Errorf("event kind %q requires a touch payload", w.Kind)
		}
		args = *w.Touch
	case RenderID:
		if w.Render == nil {
			return nil, fmt.Errorf("event kind %q requires a render payload", w.Kind)
		}
		args = *w.Render
	case AfterRenderID:
		args = AfterRenderArgs{}
	case UpdateID:
		if w.Update == nil {
			return nil, fmt.Errorf("event kind %q requires an update payload", w.Kind)
		}
		args = *w.Update
	case IdleID:
		if w.Idle == nil {
			return nil, fmt.Errorf("event kind %q requires an idle payload", w.Kind)
		}
		args = *w.Idle
	default:
		return nil, fmt.Errorf("unknown event kind %q", w.Kind)
	}
	return args, nil
}

// MarshalJSON encodes the input in its wire form.
func (e Input) MarshalJSON() ([]byte, error) {
	w, err := toWire(e.kind, e.args)
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes an input from its wire form.
func (e *Input) UnmarshalJSON(data []byte) error {
	var w wireEvent
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	return e.fromWire(w)
}

// MarshalYAML encodes the input in its wire form.
func (e Input) MarshalYAML() (any, error) {
	return toWire(e.kind, e.args)
}

// UnmarshalYAML decodes an input from its wire form.
func (e *Input) UnmarshalYAML(value *yaml.Node) error {
	var w wireEvent
	if err := value.Decode(&w); err != nil {
		return err
	}
	return e.fromWire(w)
}

func (e *Input) fromWire(w wireEvent) error {
	args, err := w.payload()
	if err != nil {
		return err
	}
	in, ok := (Input{}).FromArgs(w.Kind, args)
	if !ok {
		return fmt.Errorf("event kind %q is not an input kind", w.Kind)
	}
	*e = in
	return nil
}

// MarshalJSON encodes the event in its wire form. Custom kinds are not
// encodable and return an error.
func (e Event) MarshalJSON() ([]byte, error) {
	w, err := toWire(e.kind, e.args)
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes an event from its wire form.
func (e *Event) UnmarshalJSON(data []byte) error {
	var w wireEvent
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	return e.fromWire(w)
}

// MarshalYAML encodes the event in its wire form. Custom kinds are not
// encodable and return an error.
func (e Event) MarshalYAML() (any, error) {
	return toWire(e.kind, e.args)
}

// UnmarshalYAML decodes an event from its wire form.
func (e *Event) UnmarshalYAML(value *yaml.Node) error {
	var w wireEvent
	if err := value.Decode(&w); err != nil {
		return err
	}
	return e.fromWire(w)
}

func (e *Event) fromWire(w wireEvent) error {
	args, err := w.payload()
	if err != nil {
		return err
	}
	ev, _ := (Event{}).FromArgs(w.Kind, args)
	*e = ev
	return nil
}
