//go:build sdl2

package main

import (
	"github.com/valerio/go-tempo/tempo"
	"github.com/valerio/go-tempo/tempo/backend/sdl2"
	"github.com/valerio/go-tempo/tempo/demo"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	windowWidth  = 640
	windowHeight = 480
	blockSize    = 16
)

// runSDL drives the bouncing-block demo in an SDL2 window.
func runSDL(config tempo.Config) error {
	src, err := sdl2.New("tempo", windowWidth, windowHeight)
	if err != nil {
		return err
	}
	defer src.Cleanup()

	loop, err := tempo.New(src, tempo.DefaultFactory{}, config)
	if err != nil {
		return err
	}

	model := demo.NewModel()
	for ev, ok := loop.Next(); ok; ev, ok = loop.Next() {
		switch ev.Kind {
		case tempo.KindRender:
			drawSDL(src.Renderer(), model, ev.Render)
		case tempo.KindUpdate:
			model.Step(ev.Update.DT)
		case tempo.KindInput:
			model.Apply(ev.Input)
		case tempo.KindIdle:
			model.RecordIdle()
		}
	}

	return nil
}

func drawSDL(renderer *sdl.Renderer, model *demo.Model, args tempo.RenderArgs) {
	renderer.SetDrawColor(0, 0, 0, 255)
	renderer.Clear()

	x, y := model.Extrapolate(args.ExtrapolatedDT)
	rect := sdl.Rect{
		X: int32(x * float64(args.Width-blockSize)),
		Y: int32(y * float64(args.Height-blockSize)),
		W: blockSize,
		H: blockSize,
	}
	renderer.SetDrawColor(0, 200, 0, 255)
	renderer.FillRect(&rect)
}
