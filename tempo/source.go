package tempo

import "github.com/valerio/go-tempo/tempo/input"

// Source is the window/input capability the loop is driven against.
// Sources are responsible for:
// - Reporting close intent and the current drawable size
// - Presenting the most recently rendered frame to their output
// - Translating platform-specific events into input.Event values
//
// All methods must be non-blocking; the loop calls them from its single
// driving goroutine and a Source that blocks stalls the whole loop.
type Source interface {
	// ShouldClose reports whether the application should stop.
	// It is a side-effect-free query.
	ShouldClose() bool

	// Size returns the current drawable size. A zero width or height
	// means the source is not presently renderable (minimized, hidden).
	Size() (width, height int)

	// Present pushes the rendered frame to the output.
	Present()

	// PollInput returns at most one pending input event per call.
	// The second return value is false when nothing is queued.
	PollInput() (input.Event, bool)
}
