package sim

// eventQueue buffers input between ticks. It is drained once at the start
// of each Step so every tick has a single decision point.
type eventQueue struct {
	events []Event
}

func (q *eventQueue) push(ev Event) {
	q.events = append(q.events, ev)
}

func (q *eventQueue) drain() []Event {
	out := q.events
	q.events = nil
	return out
}
