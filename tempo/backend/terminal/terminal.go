// Package terminal implements a loop Source on top of a tcell screen.
package terminal

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/valerio/go-tempo/tempo/input"
	"github.com/valerio/go-tempo/tempo/input/action"
	"github.com/valerio/go-tempo/tempo/input/event"
)

// Source drives the loop from a terminal. The whole terminal is the
// drawable area, Present flushes the tcell back buffer and key events
// are translated to actions through the default key map.
type Source struct {
	screen  tcell.Screen
	queue   *input.Queue
	closing atomic.Bool
}

// New creates and initializes a terminal source.
func New() (*Source, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %v", err)
	}

	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite))
	screen.Clear()

	s := &Source{
		screen: screen,
		queue:  input.NewQueue(),
	}

	// Graceful shutdown on terminal signals
	go s.handleSignals()

	slog.Info("Terminal source initialized")
	return s, nil
}

// Screen exposes the underlying tcell screen for drawing.
func (s *Source) Screen() tcell.Screen {
	return s.screen
}

// ShouldClose reports whether a quit key or signal was seen.
func (s *Source) ShouldClose() bool {
	return s.closing.Load()
}

// Size returns the terminal size in cells.
func (s *Source) Size() (int, int) {
	return s.screen.Size()
}

// Present flushes everything drawn since the last call to the terminal.
func (s *Source) Present() {
	s.screen.Show()
}

// PollInput pumps pending tcell events and returns the oldest translated
// input event, one per call.
func (s *Source) PollInput() (input.Event, bool) {
	s.pump()
	return s.queue.Pop()
}

// Cleanup restores the terminal.
func (s *Source) Cleanup() error {
	if s.screen != nil {
		slog.Info("Cleaning up terminal source")
		s.screen.Fini()
	}
	return nil
}

// pump drains the tcell event queue, translating key events to actions.
func (s *Source) pump() {
	for s.screen.HasPendingEvent() {
		ev := s.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			s.processKeyEvent(ev)
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}

func (s *Source) processKeyEvent(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC {
		s.closing.Store(true)
		return
	}

	act, ok := input.GetDefaultMapping(keyName(ev))
	if !ok {
		return
	}
	if act == action.Quit {
		s.closing.Store(true)
	}

	slog.Debug("Key press", "action", act)
	s.queue.Push(input.Event{Action: act, Type: event.Press})
}

// keyName maps a tcell key event to the names used by the default key map.
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "Up"
	case tcell.KeyDown:
		return "Down"
	case tcell.KeyLeft:
		return "Left"
	case tcell.KeyRight:
		return "Right"
	case tcell.KeyEnter:
		return "Enter"
	case tcell.KeyEscape:
		return "Escape"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "Backspace"
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return "Space"
		}
		return string(ev.Rune())
	}
	return ""
}

func (s *Source) handleSignals() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)

	<-signals
	s.closing.Store(true)
}
