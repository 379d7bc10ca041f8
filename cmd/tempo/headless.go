package main

import (
	"log/slog"
	"os"

	"github.com/valerio/go-tempo/tempo"
	"github.com/valerio/go-tempo/tempo/backend/headless"
	"github.com/valerio/go-tempo/tempo/demo"
)

// runHeadless drives the demo model against a scripted source for a
// fixed number of frames, with debug logging on stderr.
func runHeadless(config tempo.Config, frames int) error {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	slog.SetDefault(slog.New(handler))

	src := headless.New(frames)
	loop, err := tempo.New(src, tempo.DefaultFactory{}, config)
	if err != nil {
		return err
	}

	model := demo.NewModel()
	renders := 0
	for ev, ok := loop.Next(); ok; ev, ok = loop.Next() {
		switch ev.Kind {
		case tempo.KindRender:
			renders++
		case tempo.KindUpdate:
			model.Step(ev.Update.DT)
		case tempo.KindInput:
			model.Apply(ev.Input)
		case tempo.KindIdle:
			model.RecordIdle()
		}
	}

	slog.Info("Headless execution completed",
		"frames", renders,
		"updates", model.Updates,
		"idles", model.Idles)
	return nil
}
