package tempo

// RenderArgs carries the parameters of a render event.
type RenderArgs struct {
	// ExtrapolatedDT is the time in seconds since the last fixed update,
	// used to extrapolate motion smoothly between discrete updates.
	ExtrapolatedDT float64

	// Width and Height are the drawable size at frame start.
	Width  int
	Height int
}

// UpdateArgs carries the parameters of a fixed-timestep update event.
type UpdateArgs struct {
	// DT is the fixed timestep in seconds, always 1/UpdatesPerSecond.
	DT float64
}

// IdleArgs carries the parameters of an idle event.
type IdleArgs struct {
	// DT is the expected slack time in seconds before the next deadline.
	DT float64
}
