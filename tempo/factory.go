package tempo

import "github.com/valerio/go-tempo/tempo/input"

// Factory maps loop occurrences to the application's own event type.
// It decouples the loop from any particular event representation: an
// application with its own event union implements Factory for it, while
// simple consumers can use DefaultFactory and the Event type below.
type Factory[E any] interface {
	Render(args RenderArgs) E
	Update(args UpdateArgs) E
	Input(e input.Event) E
	Idle(args IdleArgs) E
}

// Kind discriminates the variants of Event.
type Kind int

const (
	KindRender Kind = iota
	KindUpdate
	KindInput
	KindIdle
)

func (k Kind) String() string {
	switch k {
	case KindRender:
		return "render"
	case KindUpdate:
		return "update"
	case KindInput:
		return "input"
	default:
		return "idle"
	}
}

// Event is a ready-made union of the four loop occurrences. Only the
// field matching Kind is meaningful.
type Event struct {
	Kind   Kind
	Render RenderArgs
	Update UpdateArgs
	Input  input.Event
	Idle   IdleArgs
}

// DefaultFactory produces Event values.
type DefaultFactory struct{}

func (DefaultFactory) Render(args RenderArgs) Event {
	return Event{Kind: KindRender, Render: args}
}

func (DefaultFactory) Update(args UpdateArgs) Event {
	return Event{Kind: KindUpdate, Update: args}
}

func (DefaultFactory) Input(e input.Event) Event {
	return Event{Kind: KindInput, Input: e}
}

func (DefaultFactory) Idle(args IdleArgs) Event {
	return Event{Kind: KindIdle, Idle: args}
}

var _ Factory[Event] = DefaultFactory{}
