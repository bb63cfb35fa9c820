package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/uilab/inputx"
	"github.com/uilab/inputx/record"
)

func main() {
	path := flag.String("recording", "", "YAML recording to replay; a built-in demo stream is used when empty")
	save := flag.String("save", "", "write the replayed recording to this YAML file")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var rec *record.Recording
	if *path != "" {
		r, err := record.LoadYAML(*path)
		if err != nil {
			log.Error("load recording", "err", err)
			os.Exit(1)
		}
		rec = r
	} else {
		rec = demoRecording()
	}

	log.Info("replaying", "id", rec.ID, "events", len(rec.Events))
	for _, e := range rec.Events {
		describe(log, e)
	}

	if *save != "" {
		if err := rec.SaveYAML(*save); err != nil {
			log.Error("save recording", "err", err)
			os.Exit(1)
		}
		log.Info("saved", "path", *save)
	}
}

func demoRecording() *record.Recording {
	rec := record.New()
	rec.Events = []inputx.Input{
		inputx.CursorInput(true),
		inputx.MoveInput(inputx.MouseCursorMotion(120, 80)),
		inputx.PressInput(inputx.MouseLeft.AsButton()),
		inputx.MoveInput(inputx.MouseRelativeMotion(4, -2)),
		inputx.ReleaseInput(inputx.MouseLeft.AsButton()),
		inputx.TextInput("hi"),
		inputx.MoveInput(inputx.MouseScrollMotion(0, -1)),
		inputx.ResizeInput(1024, 768),
		inputx.FocusInput(false),
	}
	return rec
}

// describe decodes the event through the typed accessors only, the way a
// widget library consumes events.
func describe(log *slog.Logger, e inputx.Input) {
	if xy, ok := inputx.MouseCursorOf(e); ok {
		log.Info("cursor moved", "x", xy[0], "y", xy[1])
		return
	}
	if xy, ok := inputx.MouseRelativeOf(e); ok {
		log.Info("cursor moved relatively", "dx", xy[0], "dy", xy[1])
		return
	}
	if xy, ok := inputx.MouseScrollOf(e); ok {
		log.Info("scrolled", "dx", xy[0], "dy", xy[1])
		return
	}
	if b, ok := inputx.PressOf(e); ok {
		log.Info("button pressed", "button", b)
		return
	}
	if b, ok := inputx.ReleaseOf(e); ok {
		log.Info("button released", "button", b)
		return
	}
	if s, ok := inputx.TextOf(e); ok {
		log.Info("text entered", "text", s)
		return
	}
	if wh, ok := inputx.ResizeOf(e); ok {
		log.Info("window resized", "width", wh[0], "height", wh[1])
		return
	}
	if f, ok := inputx.FocusOf(e); ok {
		log.Info("focus changed", "focused", f)
		return
	}
	if entered, ok := inputx.CursorOf(e); ok {
		log.Info("cursor crossed window edge", "entered", entered)
		return
	}
	log.Info("event", "kind", e.EventID())
}
