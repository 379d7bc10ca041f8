// Package headless implements a loop Source with no real window,
// for automated testing and batch processing.
package headless

import (
	"log/slog"

	"github.com/valerio/go-tempo/tempo/input"
)

// Default logical drawable size when none is configured.
const (
	DefaultWidth  = 320
	DefaultHeight = 240
)

// Source is a scripted window source. It reports a fixed drawable size,
// counts presented frames and signals close intent once the configured
// frame budget is spent. Input can be scripted by pushing events.
type Source struct {
	width      int
	height     int
	maxFrames  int
	frameCount int
	closed     bool
	queue      *input.Queue
}

// New creates a headless source that closes after maxFrames presented
// frames. A maxFrames of zero means run until Close is called.
func New(maxFrames int) *Source {
	slog.Info("Running headless source", "frames", maxFrames)
	return &Source{
		width:     DefaultWidth,
		height:    DefaultHeight,
		maxFrames: maxFrames,
		queue:     input.NewQueue(),
	}
}

// SetSize overrides the reported drawable size. A zero dimension makes
// the source report itself as not renderable.
func (s *Source) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// PushInput scripts an input event to be returned by a later poll.
func (s *Source) PushInput(e input.Event) {
	s.queue.Push(e)
}

// Close makes the source signal close intent on the next check.
func (s *Source) Close() {
	s.closed = true
}

func (s *Source) ShouldClose() bool {
	return s.closed || (s.maxFrames > 0 && s.frameCount >= s.maxFrames)
}

func (s *Source) Size() (int, int) {
	return s.width, s.height
}

// Present counts the frame; there is nothing to flush.
func (s *Source) Present() {
	s.frameCount++
	if s.frameCount%10 == 0 {
		slog.Debug("Frame progress", "completed", s.frameCount, "total", s.maxFrames)
	}
}

func (s *Source) PollInput() (input.Event, bool) {
	return s.queue.Pop()
}

// FrameCount returns the number of frames presented so far.
func (s *Source) FrameCount() int {
	return s.frameCount
}
