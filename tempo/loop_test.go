package tempo_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-tempo/tempo"
	"github.com/valerio/go-tempo/tempo/input"
	"github.com/valerio/go-tempo/tempo/input/action"
	"github.com/valerio/go-tempo/tempo/input/event"
	"github.com/valerio/go-tempo/tempo/timing"
)

// mockSource is a scripted Source that counts every capability call.
type mockSource struct {
	closed bool
	width  int
	height int
	inputs []input.Event

	shouldCloseCalls int
	sizeCalls        int
	presents         int
	pollCalls        int
}

func newMockSource() *mockSource {
	return &mockSource{width: 80, height: 24}
}

func (m *mockSource) ShouldClose() bool {
	m.shouldCloseCalls++
	return m.closed
}

func (m *mockSource) Size() (int, int) {
	m.sizeCalls++
	return m.width, m.height
}

func (m *mockSource) Present() {
	m.presents++
}

func (m *mockSource) PollInput() (input.Event, bool) {
	m.pollCalls++
	if len(m.inputs) == 0 {
		return input.Event{}, false
	}
	e := m.inputs[0]
	m.inputs = m.inputs[1:]
	return e, true
}

func newTestLoop(t *testing.T, src tempo.Source, ups, fps int) (*tempo.Events[tempo.Event], *timing.ManualClock) {
	t.Helper()
	clock := timing.NewManualClock()
	loop, err := tempo.New(src, tempo.DefaultFactory{}, tempo.Config{
		UpdatesPerSecond:   ups,
		MaxFramesPerSecond: fps,
		Clock:              clock,
	})
	require.NoError(t, err)
	return loop, clock
}

func TestFixedUpdateRate(t *testing.T) {
	const (
		ups     = 100
		fps     = 50
		seconds = 1
	)

	src := newMockSource()
	loop, clock := newTestLoop(t, src, ups, fps)

	var updates, renders int
	for clock.Now() < seconds*1e9 {
		ev, ok := loop.Next()
		require.True(t, ok)

		switch ev.Kind {
		case tempo.KindUpdate:
			updates++
			assert.Equal(t, 1.0/float64(ups), ev.Update.DT,
				"update dt must be exactly the fixed timestep")
		case tempo.KindRender:
			renders++
		}
	}

	assert.InDelta(t, ups*seconds, updates, 2,
		"update count should converge to ups * elapsed seconds")
	assert.LessOrEqual(t, renders, fps*seconds+1,
		"render rate must stay under the frame cap")
	assert.GreaterOrEqual(t, renders, src.presents)
	assert.LessOrEqual(t, renders-src.presents, 1,
		"at most the final render can still have its present pending")
}

func TestRenderSkippedWhileNotRenderable(t *testing.T) {
	src := newMockSource()
	src.height = 0
	loop, clock := newTestLoop(t, src, 100, 50)

	var updates int
	for clock.Now() < 100*1e6 {
		ev, ok := loop.Next()
		require.True(t, ok)

		assert.NotEqual(t, tempo.KindRender, ev.Kind,
			"no render events while a dimension is zero")
		if ev.Kind == tempo.KindUpdate {
			updates++
		}
	}

	assert.Zero(t, src.presents)
	assert.Greater(t, updates, 0, "updates keep running while hidden")
}

func TestInputDrainedBeforeUpdate(t *testing.T) {
	src := newMockSource()
	loop, clock := newTestLoop(t, src, 100, 50)

	// First call renders at t=0.
	ev, ok := loop.Next()
	require.True(t, ok)
	require.Equal(t, tempo.KindRender, ev.Kind)

	// Make the update deadline due and queue input behind it, so the
	// loop sees the input only while draining.
	clock.Advance(10 * time.Millisecond)
	src.inputs = []input.Event{
		{Action: action.MoveLeft, Type: event.Press},
		{Action: action.MoveRight, Type: event.Press},
		{Action: action.Select, Type: event.Release},
	}

	var got []tempo.Event
	for i := 0; i < 4; i++ {
		ev, ok := loop.Next()
		require.True(t, ok)
		got = append(got, ev)
	}

	require.Len(t, got, 4)
	assert.Equal(t, tempo.KindInput, got[0].Kind)
	assert.Equal(t, action.MoveLeft, got[0].Input.Action)
	assert.Equal(t, tempo.KindInput, got[1].Kind)
	assert.Equal(t, action.MoveRight, got[1].Input.Action)
	assert.Equal(t, tempo.KindInput, got[2].Kind)
	assert.Equal(t, action.Select, got[2].Input.Action)
	assert.Equal(t, event.Release, got[2].Input.Type)
	assert.Equal(t, tempo.KindUpdate, got[3].Kind,
		"the update commits only after all input is drained")
}

func TestIdleReportedOncePerPause(t *testing.T) {
	src := newMockSource()
	loop, clock := newTestLoop(t, src, 100, 50)

	// render, then present + idle: the first pass through the timing
	// loop has 10ms of slack and nothing pending.
	ev, ok := loop.Next()
	require.True(t, ok)
	require.Equal(t, tempo.KindRender, ev.Kind)

	ev, ok = loop.Next()
	require.True(t, ok)
	require.Equal(t, tempo.KindIdle, ev.Kind)
	assert.InDelta(t, 0.010, ev.Idle.DT, 1e-9)
	assert.Empty(t, clock.Sleeps(), "idle is reported before any sleep")

	// Still nothing to do: the loop must sleep the slack away instead
	// of emitting a second idle, then surface the due update.
	ev, ok = loop.Next()
	require.True(t, ok)
	assert.Equal(t, tempo.KindUpdate, ev.Kind)
	require.Len(t, clock.Sleeps(), 1)
	assert.Equal(t, 10*time.Millisecond, clock.Sleeps()[0])
}

func TestInputInterruptsIdle(t *testing.T) {
	src := newMockSource()
	loop, clock := newTestLoop(t, src, 100, 50)

	ev, ok := loop.Next()
	require.True(t, ok)
	require.Equal(t, tempo.KindRender, ev.Kind)

	ev, ok = loop.Next()
	require.True(t, ok)
	require.Equal(t, tempo.KindIdle, ev.Kind)

	// Input arriving while idle resets the idle flag, so the following
	// pause is reported again.
	src.inputs = []input.Event{{Action: action.MoveUp, Type: event.Press}}
	ev, ok = loop.Next()
	require.True(t, ok)
	require.Equal(t, tempo.KindInput, ev.Kind)
	assert.Empty(t, clock.Sleeps())

	ev, ok = loop.Next()
	require.True(t, ok)
	assert.Equal(t, tempo.KindIdle, ev.Kind,
		"a fresh pause after input is reported again")
}

func TestTermination(t *testing.T) {
	src := newMockSource()
	src.closed = true
	loop, _ := newTestLoop(t, src, 100, 50)

	_, ok := loop.Next()
	assert.False(t, ok)

	// Close intent ends the sequence before any other capability call.
	assert.Zero(t, src.sizeCalls)
	assert.Zero(t, src.pollCalls)
	assert.Zero(t, src.presents)

	// The loop stays finished on subsequent calls.
	_, ok = loop.Next()
	assert.False(t, ok)
}

func TestCloseIntentObservedOnNextRender(t *testing.T) {
	src := newMockSource()
	loop, _ := newTestLoop(t, src, 100, 50)

	ev, ok := loop.Next()
	require.True(t, ok)
	require.Equal(t, tempo.KindRender, ev.Kind)

	// Close intent raised mid-cycle is only observed once the machine
	// cycles back to the render state.
	src.closed = true

	sawEnd := false
	for i := 0; i < 100; i++ {
		if _, ok := loop.Next(); !ok {
			sawEnd = true
			break
		}
	}
	assert.True(t, sawEnd, "loop must terminate after close intent")
}

func TestExtrapolatedTime(t *testing.T) {
	src := newMockSource()
	loop, clock := newTestLoop(t, src, 100, 50)

	ev, ok := loop.Next()
	require.True(t, ok)
	require.Equal(t, tempo.KindRender, ev.Kind)
	assert.Zero(t, ev.Render.ExtrapolatedDT,
		"first frame starts at the construction timestamp")
	assert.Equal(t, 80, ev.Render.Width)
	assert.Equal(t, 24, ev.Render.Height)

	for clock.Now() < 500*1e6 {
		ev, ok := loop.Next()
		require.True(t, ok)
		if ev.Kind == tempo.KindRender {
			assert.GreaterOrEqual(t, ev.Render.ExtrapolatedDT, 0.0)
			assert.Less(t, ev.Render.ExtrapolatedDT, 0.020,
				"extrapolation stays below one update interval past due")
		}
	}
}

func TestConfigRejection(t *testing.T) {
	tests := []struct {
		name string
		ups  int
		fps  int
	}{
		{name: "zero ups", ups: 0, fps: 60},
		{name: "zero fps", ups: 120, fps: 0},
		{name: "negative ups", ups: -1, fps: 60},
		{name: "both zero", ups: 0, fps: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loop, err := tempo.New(newMockSource(), tempo.DefaultFactory{}, tempo.Config{
				UpdatesPerSecond:   tt.ups,
				MaxFramesPerSecond: tt.fps,
			})
			assert.Nil(t, loop)
			assert.ErrorIs(t, err, tempo.ErrInvalidConfig)
		})
	}
}

func TestSourceInterface(t *testing.T) {
	// Verify mockSource implements Source
	var _ tempo.Source = (*mockSource)(nil)
}
