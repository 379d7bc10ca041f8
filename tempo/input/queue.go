package input

// Queue is a FIFO of translated input events. Window sources typically
// drain their platform event pump in bursts but the loop polls one event
// at a time, so sources park translated events here between polls.
type Queue struct {
	events []Event
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event to the back of the queue.
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Pop removes and returns the oldest queued event.
// The second return value is false when the queue is empty.
func (q *Queue) Pop() (Event, bool) {
	if len(q.events) == 0 {
		return Event{}, false
	}
	e := q.events[0]
	q.events = q.events[1:]
	return e, true
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	return len(q.events)
}
