package ecs

// EventType identifies what an Event carries in Data.
type EventType string

const (
	// EventSound asks the audio collaborator to play a one-shot sound. Data is SoundEvent.
	EventSound EventType = "sound"
	// EventEnemyKilled is emitted once per destroyed actor. Data is KillEvent.
	EventEnemyKilled EventType = "enemy_killed"
	// EventPlayerHit is emitted when damage lands on the player. Data is HitEvent.
	EventPlayerHit EventType = "player_hit"
	// EventPlayerDied is emitted once when player health reaches zero.
	EventPlayerDied EventType = "player_died"
	// EventLevelStarted is emitted when the scheduler enters a level. Data is LevelEvent.
	EventLevelStarted EventType = "level_started"
	// EventLevelsExhausted is emitted once when the last level ends.
	EventLevelsExhausted EventType = "levels_exhausted"
)

// Event is a generic world event payload.
type Event struct {
	Type EventType
	Data any
}

type SoundEvent struct {
	Name string
}

type KillEvent struct {
	Kind      string
	Score     int
	X, Y      float64
	ByContact bool
}

type HitEvent struct {
	Damage float64
	Health float64
}

type LevelEvent struct {
	Index int
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

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
