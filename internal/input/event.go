package input

// Kind distinguishes presses from releases.
type Kind int

const (
	Pressed Kind = iota
	Released
)

// Event is a single key transition.
type Event struct {
	Kind Kind
	Key  Key
}

// Press returns a Pressed event for k.
func Press(k Key) Event {
	return Event{Kind: Pressed, Key: k}
}

// Release returns a Released event for k.
func Release(k Key) Event {
	return Event{Kind: Released, Key: k}
}

// Queue buffers events between frames in arrival order.
type Queue struct {
	events []Event
}

// Push appends events to the queue.
func (q *Queue) Push(events ...Event) {
	q.events = append(q.events, events...)
}

// Drain returns the buffered events and empties the queue.
func (q *Queue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of buffered events.
func (q *Queue) Len() int {
	return len(q.events)
}
