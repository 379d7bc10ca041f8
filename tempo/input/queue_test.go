package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valerio/go-tempo/tempo/input/action"
	"github.com/valerio/go-tempo/tempo/input/event"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	assert.Zero(t, q.Len())

	q.Push(Event{Action: action.MoveUp, Type: event.Press})
	q.Push(Event{Action: action.MoveUp, Type: event.Release})
	q.Push(Event{Action: action.Quit, Type: event.Press})
	assert.Equal(t, 3, q.Len())

	e, ok := q.Pop()
	assert.True(t, ok)
	assert.Equal(t, Event{Action: action.MoveUp, Type: event.Press}, e)

	e, ok = q.Pop()
	assert.True(t, ok)
	assert.Equal(t, Event{Action: action.MoveUp, Type: event.Release}, e)

	e, ok = q.Pop()
	assert.True(t, ok)
	assert.Equal(t, Event{Action: action.Quit, Type: event.Press}, e)

	_, ok = q.Pop()
	assert.False(t, ok)
	assert.Zero(t, q.Len())
}

func TestQueuePopEmpty(t *testing.T) {
	q := NewQueue()

	e, ok := q.Pop()
	assert.False(t, ok)
	assert.Equal(t, Event{}, e)
}

func TestDefaultKeyMap(t *testing.T) {
	tests := []struct {
		key  string
		want action.Action
	}{
		{key: "Up", want: action.MoveUp},
		{key: "w", want: action.MoveUp},
		{key: "Escape", want: action.Quit},
		{key: "q", want: action.Quit},
		{key: "Space", want: action.PauseToggle},
	}

	for _, tt := range tests {
		act, ok := GetDefaultMapping(tt.key)
		assert.True(t, ok, "key %q should be mapped", tt.key)
		assert.Equal(t, tt.want, act)
	}

	_, ok := GetDefaultMapping("F35")
	assert.False(t, ok)
}
