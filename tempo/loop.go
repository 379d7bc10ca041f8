// Package tempo provides a pull-based event loop for games and other
// interactive applications. It schedules fixed-timestep updates and
// rate-capped renders as two independent periodic deadlines, drains
// pending input before each update, and reports genuine idle time
// instead of busy-spinning.
package tempo

import (
	"time"

	"github.com/valerio/go-tempo/tempo/timing"
)

const billion = 1_000_000_000

type stateKind int

const (
	stateRender stateKind = iota
	statePresent
	stateUpdateLoop
	stateDrainInput
	stateUpdate
)

// state is the loop's current machine state. idle is only meaningful in
// stateUpdateLoop and records whether the current pause was already
// reported to the consumer.
type state struct {
	kind stateKind
	idle bool
}

// Events is the event loop. It is driven by repeated Next calls from a
// single goroutine and produces the application's event type E via the
// configured Factory.
//
// Because Next polls the window source, it must run on the same
// goroutine as the source (usually the main one), unless the source
// explicitly supports cross-thread polling.
type Events[E any] struct {
	source  Source
	factory Factory[E]
	clock   timing.Clock
	state   state

	lastUpdate uint64 // monotonic ns of the most recent committed update
	lastFrame  uint64 // monotonic ns of the most recent frame start

	updateInterval uint64 // ns between fixed updates
	frameInterval  uint64 // minimum ns between frames
	updateDT       float64
}

// New creates an event loop bound to a source and factory. It fails if
// the configuration is invalid; an invalid rate is never allowed to
// reach the loop itself.
func New[E any](source Source, factory Factory[E], config Config) (*Events[E], error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	clock := config.Clock
	if clock == nil {
		clock = timing.New()
	}

	start := clock.Now()
	return &Events[E]{
		source:         source,
		factory:        factory,
		clock:          clock,
		state:          state{kind: stateRender},
		lastUpdate:     start,
		lastFrame:      start,
		updateInterval: billion / uint64(config.UpdatesPerSecond),
		frameInterval:  billion / uint64(config.MaxFramesPerSecond),
		updateDT:       1.0 / float64(config.UpdatesPerSecond),
	}, nil
}

// Next advances the loop and returns the next event. It returns false
// once the source signals close intent, after which the loop is done and
// no further source calls are made.
//
// Next may block: when there is slack before the next deadline and idle
// was already reported, the loop sleeps the slack away on the calling
// goroutine.
func (e *Events[E]) Next() (E, bool) {
	for {
		switch e.state.kind {
		case stateRender:
			if e.source.ShouldClose() {
				var zero E
				return zero, false
			}

			frameStart := e.clock.Now()
			e.lastFrame = frameStart

			if w, h := e.source.Size(); w != 0 && h != 0 {
				// Present the buffers on the next call.
				e.state = state{kind: statePresent}
				return e.factory.Render(RenderArgs{
					// Extrapolate time forward to allow smooth motion.
					ExtrapolatedDT: float64(frameStart-e.lastUpdate) / billion,
					Width:          w,
					Height:         h,
				}), true
			}

			// Not renderable right now, skip straight to the timing loop.
			e.state = state{kind: stateUpdateLoop}

		case statePresent:
			e.source.Present()
			e.state = state{kind: stateUpdateLoop}

		case stateUpdateLoop:
			now := e.clock.Now()
			nextFrame := e.lastFrame + e.frameInterval
			nextUpdate := e.lastUpdate + e.updateInterval
			nextEvent := min(nextFrame, nextUpdate)

			switch {
			case nextEvent > now:
				if ev, ok := e.source.PollInput(); ok {
					e.state.idle = false
					return e.factory.Input(ev), true
				}
				if !e.state.idle {
					// Report the pause once, so the consumer can do
					// low-priority work, then coalesce further waiting
					// into an actual sleep.
					e.state.idle = true
					return e.factory.Idle(IdleArgs{
						DT: float64(nextEvent-now) / billion,
					}), true
				}
				e.clock.Sleep(time.Duration(nextEvent - now))
				e.state = state{kind: stateUpdateLoop}

			case nextEvent == nextFrame:
				e.state = state{kind: stateRender}

			default:
				e.state = state{kind: stateDrainInput}
			}

		case stateDrainInput:
			// Drain all pending input before committing the update.
			if ev, ok := e.source.PollInput(); ok {
				return e.factory.Input(ev), true
			}
			e.state = state{kind: stateUpdate}

		case stateUpdate:
			e.lastUpdate += e.updateInterval
			e.state = state{kind: stateUpdateLoop}
			return e.factory.Update(UpdateArgs{DT: e.updateDT}), true
		}
	}
}
