package ecs

// EventKind identifies an event type. Handlers are registered per kind.
type EventKind string

// Event is a generic ECS event payload.
type Event struct {
	Kind EventKind
	Data any
}

// Handler reacts to one event.
type Handler func(w *World, evt Event)

// maxDispatchRounds bounds how many generations of follow-up events a single
// dispatch will process.
const maxDispatchRounds = 32

// EventQueue is a FIFO queue with per-kind handlers. Events pushed while
// dispatching are handled in the same dispatch after the current batch.
type EventQueue struct {
	items    []Event
	handlers map[EventKind][]Handler
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil || evt.Kind == "" {
		return
	}
	q.items = append(q.items, evt)
}

// Subscribe registers h for kind. Handlers run in registration order.
func (q *EventQueue) Subscribe(kind EventKind, h Handler) {
	if q == nil || h == nil {
		return
	}
	if q.handlers == nil {
		q.handlers = make(map[EventKind][]Handler)
	}
	q.handlers[kind] = append(q.handlers[kind], h)
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue without dispatching them.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) dispatch(w *World) {
	for round := 0; round < maxDispatchRounds && len(q.items) > 0; round++ {
		batch := q.Drain()
		for _, evt := range batch {
			for _, h := range q.handlers[evt.Kind] {
				h(w, evt)
			}
		}
	}
	// Anything still queued is a feedback loop; drop it rather than spin.
	q.items = nil
}

// Emit pushes an event of kind carrying data.
func Emit(w *World, kind EventKind, data any) {
	if w == nil {
		return
	}
	w.events.Push(Event{Kind: kind, Data: data})
}

// On registers a typed handler. Events whose payload is not a T are ignored.
func On[T any](w *World, kind EventKind, fn func(w *World, data T)) {
	if w == nil || fn == nil {
		return
	}
	w.events.Subscribe(kind, func(w *World, evt Event) {
		data, ok := evt.Data.(T)
		if !ok {
			return
		}
		fn(w, data)
	})
}
