package scene

import "github.com/milk9111/journey/checkpoint"

// EventType names an event emitted to collaborators.
type EventType string

const (
	EventOpenCheckpoint EventType = "open_checkpoint"
	EventOpenGate       EventType = "open_gate"
	EventSceneChanged   EventType = "scene_changed"
)

// Event is a session output. Data holds one of the payload types below.
type Event struct {
	Type EventType
	Data any
}

// OpenCheckpoint asks the popup collaborator to show a checkpoint.
type OpenCheckpoint struct {
	Checkpoint *checkpoint.Checkpoint
}

// OpenGate asks the popup collaborator to show an end-of-path gate.
type OpenGate struct {
	Gate GateKind
}

// SceneChanged reports a switch between maps.
type SceneChanged struct {
	From Scene
	To   Scene
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
