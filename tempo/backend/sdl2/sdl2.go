//go:build sdl2

// Package sdl2 implements a loop Source on top of an SDL2 window.
// Note: building this requires SDL2 development libraries installed.
// Default builds skip this and use a stubbed source, see build tags (sdl2)
package sdl2

import (
	"fmt"
	"log/slog"

	"github.com/valerio/go-tempo/tempo/input"
	"github.com/valerio/go-tempo/tempo/input/action"
	"github.com/valerio/go-tempo/tempo/input/event"
	"github.com/veandco/go-sdl2/sdl"
)

// Source drives the loop from an SDL2 window.
type Source struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	queue    *input.Queue
	closing  bool
}

// New creates an SDL2 window source.
func New(title string, width, height int) (*Source, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("failed to initialize SDL2: %v", err)
	}

	window, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(width),
		int32(height),
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("failed to create window: %v", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("failed to create renderer: %v", err)
	}

	slog.Info("SDL2 source initialized", "width", width, "height", height)
	return &Source{
		window:   window,
		renderer: renderer,
		queue:    input.NewQueue(),
	}, nil
}

// Renderer exposes the SDL renderer for drawing.
func (s *Source) Renderer() *sdl.Renderer {
	return s.renderer
}

func (s *Source) ShouldClose() bool {
	return s.closing
}

// Size returns the drawable size; (0, 0) while the window is minimized.
func (s *Source) Size() (int, int) {
	flags := s.window.GetFlags()
	if flags&sdl.WINDOW_MINIMIZED != 0 {
		return 0, 0
	}
	w, h := s.window.GetSize()
	return int(w), int(h)
}

func (s *Source) Present() {
	s.renderer.Present()
}

// PollInput pumps pending SDL events and returns the oldest translated
// input event, one per call.
func (s *Source) PollInput() (input.Event, bool) {
	s.pump()
	return s.queue.Pop()
}

// Cleanup releases SDL resources.
func (s *Source) Cleanup() error {
	slog.Info("Cleaning up SDL2 source")
	if s.renderer != nil {
		s.renderer.Destroy()
	}
	if s.window != nil {
		s.window.Destroy()
	}
	sdl.Quit()
	return nil
}

func (s *Source) pump() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			s.closing = true
		case *sdl.KeyboardEvent:
			s.processKeyEvent(ev)
		}
	}
}

func (s *Source) processKeyEvent(ev *sdl.KeyboardEvent) {
	act, ok := input.GetDefaultMapping(keyName(ev.Keysym.Sym))
	if !ok {
		return
	}

	switch ev.Type {
	case sdl.KEYDOWN:
		if ev.Repeat > 0 {
			s.queue.Push(input.Event{Action: act, Type: event.Repeat})
			return
		}
		if act == action.Quit {
			s.closing = true
		}
		s.queue.Push(input.Event{Action: act, Type: event.Press})
	case sdl.KEYUP:
		s.queue.Push(input.Event{Action: act, Type: event.Release})
	}
}

// keyName maps an SDL keycode to the names used by the default key map.
func keyName(key sdl.Keycode) string {
	switch key {
	case sdl.K_UP:
		return "Up"
	case sdl.K_DOWN:
		return "Down"
	case sdl.K_LEFT:
		return "Left"
	case sdl.K_RIGHT:
		return "Right"
	case sdl.K_RETURN:
		return "Enter"
	case sdl.K_ESCAPE:
		return "Escape"
	case sdl.K_BACKSPACE:
		return "Backspace"
	case sdl.K_SPACE:
		return "Space"
	}
	if key >= sdl.K_a && key <= sdl.K_z {
		return string(rune(key))
	}
	switch key {
	case sdl.K_PLUS, sdl.K_KP_PLUS:
		return "+"
	case sdl.K_EQUALS:
		return "="
	case sdl.K_MINUS, sdl.K_KP_MINUS:
		return "-"
	}
	return ""
}
