package action

// Action represents input actions that an application can respond to
type Action int

const (
	// Directional controls
	MoveUp Action = iota
	MoveDown
	MoveLeft
	MoveRight

	// Application features
	Select
	Cancel
	PauseToggle
	SpeedUp
	SpeedDown
	Quit

	// Unknown is reported for platform events with no mapping
	Unknown
)

func (a Action) String() string {
	switch a {
	case MoveUp:
		return "move-up"
	case MoveDown:
		return "move-down"
	case MoveLeft:
		return "move-left"
	case MoveRight:
		return "move-right"
	case Select:
		return "select"
	case Cancel:
		return "cancel"
	case PauseToggle:
		return "pause-toggle"
	case SpeedUp:
		return "speed-up"
	case SpeedDown:
		return "speed-down"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}
