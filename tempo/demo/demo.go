// Package demo contains a small bouncing-block application used to
// exercise the loop end to end: fixed-timestep physics on update events,
// extrapolated motion on render events and action handling on input.
package demo

import (
	"github.com/valerio/go-tempo/tempo/input"
	"github.com/valerio/go-tempo/tempo/input/action"
	"github.com/valerio/go-tempo/tempo/input/event"
)

// Model is the demo state. Positions and velocities live in unit space,
// [0, 1) on both axes, and are scaled to the drawable size when drawn.
type Model struct {
	X, Y   float64
	VX, VY float64
	Speed  float64
	Paused bool

	Updates int
	Inputs  int
	Idles   int
}

func NewModel() *Model {
	return &Model{
		X:     0.5,
		Y:     0.5,
		VX:    0.23,
		VY:    0.17,
		Speed: 1.0,
	}
}

// Step advances the physics by the fixed timestep dt, bouncing off the
// edges of unit space.
func (m *Model) Step(dt float64) {
	m.Updates++
	if m.Paused {
		return
	}

	m.X += m.VX * m.Speed * dt
	m.Y += m.VY * m.Speed * dt

	if m.X < 0 {
		m.X, m.VX = -m.X, -m.VX
	} else if m.X > 1 {
		m.X, m.VX = 2-m.X, -m.VX
	}
	if m.Y < 0 {
		m.Y, m.VY = -m.Y, -m.VY
	} else if m.Y > 1 {
		m.Y, m.VY = 2-m.Y, -m.VY
	}
}

// Extrapolate returns the block position extrapolated extDT seconds past
// the last update, without committing it.
func (m *Model) Extrapolate(extDT float64) (x, y float64) {
	if m.Paused {
		return m.X, m.Y
	}
	return clamp(m.X + m.VX*m.Speed*extDT), clamp(m.Y + m.VY*m.Speed*extDT)
}

// Apply reacts to a translated input event.
func (m *Model) Apply(e input.Event) {
	m.Inputs++
	if e.Type != event.Press && e.Type != event.Repeat {
		return
	}

	const nudge = 0.05
	switch e.Action {
	case action.MoveUp:
		m.Y = clamp(m.Y - nudge)
	case action.MoveDown:
		m.Y = clamp(m.Y + nudge)
	case action.MoveLeft:
		m.X = clamp(m.X - nudge)
	case action.MoveRight:
		m.X = clamp(m.X + nudge)
	case action.PauseToggle:
		m.Paused = !m.Paused
	case action.SpeedUp:
		m.Speed *= 1.25
	case action.SpeedDown:
		m.Speed /= 1.25
	}
}

// RecordIdle counts an idle notification; a real application would do
// low-priority work here.
func (m *Model) RecordIdle() {
	m.Idles++
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
