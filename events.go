package canvas

import (
	"context"
	"io"

	"github.com/hajimehoshi/ebiten/v2"
)

// EventType identifies a window or input signal delivered to a Loop.
type EventType uint8

const (
	EventRedraw EventType = iota // render and present one frame
	EventResize                  // the presentable area changed size
	EventKey                     // a key was pressed
	EventQuit                    // the window was asked to close
)

var eventTypeNames = [...]string{
	EventRedraw: "redraw",
	EventResize: "resize",
	EventKey:    "key",
	EventQuit:   "quit",
}

// String returns the lower-case name of the event type.
func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// Event is a single signal from the host windowing layer.
type Event struct {
	Type EventType
	// Width and Height are the new size (valid for EventResize).
	Width, Height int
	// Key is the pressed key (valid for EventKey).
	Key ebiten.Key
}

// EventSource delivers events to Loop.Run. NextEvent blocks until an event
// is available; io.EOF ends the run cleanly.
type EventSource interface {
	NextEvent(ctx context.Context) (Event, error)
}

// EventQueue is an in-memory FIFO EventSource. It never blocks: once the
// queue is drained NextEvent returns io.EOF.
type EventQueue struct {
	events []Event
}

// NewEventQueue returns a queue holding events in order.
func NewEventQueue(events ...Event) *EventQueue {
	return &EventQueue{events: append([]Event(nil), events...)}
}

// Push appends an event.
func (q *EventQueue) Push(ev Event) {
	q.events = append(q.events, ev)
}

// PushRedraw appends n redraw events.
func (q *EventQueue) PushRedraw(n int) {
	for i := 0; i < n; i++ {
		q.events = append(q.events, Event{Type: EventRedraw})
	}
}

// PushResize appends a resize to w x h.
func (q *EventQueue) PushResize(w, h int) {
	q.events = append(q.events, Event{Type: EventResize, Width: w, Height: h})
}

// PushKey appends a key press.
func (q *EventQueue) PushKey(k ebiten.Key) {
	q.events = append(q.events, Event{Type: EventKey, Key: k})
}

// PushQuit appends a close request.
func (q *EventQueue) PushQuit() {
	q.events = append(q.events, Event{Type: EventQuit})
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// NextEvent pops the oldest event.
func (q *EventQueue) NextEvent(ctx context.Context) (Event, error) {
	if err := ctx.Err(); err != nil {
		return Event{}, err
	}
	if len(q.events) == 0 {
		return Event{}, io.EOF
	}
	ev := q.events[0]
	q.events = q.events[1:]
	return ev, nil
}
