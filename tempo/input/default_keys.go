package input

import "github.com/valerio/go-tempo/tempo/input/action"

// DefaultKeyMap provides default key mappings that work across sources.
// Sources can use these mappings as a base and override/extend as needed.
var DefaultKeyMap = map[string]action.Action{
	"Up":    action.MoveUp,
	"Down":  action.MoveDown,
	"Left":  action.MoveLeft,
	"Right": action.MoveRight,

	// Alternative arrow keys (WASD)
	"w": action.MoveUp,
	"s": action.MoveDown,
	"a": action.MoveLeft,
	"d": action.MoveRight,

	"Enter":     action.Select,
	"Backspace": action.Cancel,

	"Space": action.PauseToggle,
	"p":     action.PauseToggle,
	"+":     action.SpeedUp,
	"=":     action.SpeedUp, // Alternative without shift
	"-":     action.SpeedDown,

	"Escape": action.Quit,
	"q":      action.Quit,
}

// GetDefaultMapping returns the default action for a key, if one exists
func GetDefaultMapping(key string) (action.Action, bool) {
	act, ok := DefaultKeyMap[key]
	return act, ok
}
