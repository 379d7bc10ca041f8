package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/valerio/go-tempo/tempo"
	"github.com/valerio/go-tempo/tempo/backend/terminal"
	"github.com/valerio/go-tempo/tempo/demo"
)

// runTerminal drives the bouncing-block demo on a tcell screen.
func runTerminal(config tempo.Config) error {
	src, err := terminal.New()
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
			draw(src.Screen(), model, ev.Render)
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

func draw(screen tcell.Screen, model *demo.Model, args tempo.RenderArgs) {
	screen.Clear()

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	status := fmt.Sprintf("updates: %d  inputs: %d  idles: %d  speed: %.2fx",
		model.Updates, model.Inputs, model.Idles, model.Speed)
	if model.Paused {
		status += "  [paused]"
	}
	drawText(screen, 0, 0, style, status)
	drawText(screen, 0, 1, style.Foreground(tcell.ColorGray),
		"arrows/wasd move, space pauses, +/- speed, q quits")

	// Leave the two status rows out of the play field.
	x, y := model.Extrapolate(args.ExtrapolatedDT)
	col := int(x * float64(args.Width-1))
	row := 2 + int(y*float64(args.Height-3))
	screen.SetContent(col, row, '█', nil,
		tcell.StyleDefault.Foreground(tcell.ColorGreen))
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
