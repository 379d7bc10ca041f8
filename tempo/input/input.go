package input

import (
	"github.com/valerio/go-tempo/tempo/input/action"
	"github.com/valerio/go-tempo/tempo/input/event"
)

// Event is a single translated input occurrence handed from a window
// source to the loop. The loop passes it through verbatim.
type Event struct {
	Action action.Action
	Type   event.Type
}
