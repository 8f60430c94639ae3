package engine

import "fmt"

// State is the active game state. Exactly one is active at a time.
type State int

const (
	StateLoading State = iota
	StateTitle
	StateInstructions
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "LOADING"
	case StateTitle:
		return "TITLE"
	case StateInstructions:
		return "INSTRUCTIONS"
	case StatePlaying:
		return "PLAYING"
	case StateGameOver:
		return "GAME_OVER"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Trigger is something that can move the state machine.
type Trigger int

const (
	TriggerLoaded Trigger = iota
	TriggerConfirm
	TriggerPlayerDied
	TriggerLevelsExhausted
)

func (t Trigger) String() string {
	switch t {
	case TriggerLoaded:
		return "loaded"
	case TriggerConfirm:
		return "confirm"
	case TriggerPlayerDied:
		return "player_died"
	case TriggerLevelsExhausted:
		return "levels_exhausted"
	default:
		return fmt.Sprintf("Trigger(%d)", int(t))
	}
}

// Outcome qualifies GAME_OVER: the player died, or every level was cleared.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeDefeat
	OutcomeVictory
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDefeat:
		return "defeat"
	case OutcomeVictory:
		return "victory"
	default:
		return "none"
	}
}

// Transitions is the edge set of the state machine. Triggers without an
// entry for the current state are ignored.
type Transitions map[State]map[Trigger]State

// DefaultTransitions is LOADING -> TITLE -> INSTRUCTIONS -> PLAYING ->
// GAME_OVER -> TITLE. With skipInstructions, TITLE goes straight to PLAYING.
func DefaultTransitions(skipInstructions bool) Transitions {
	t := Transitions{
		StateLoading:      {TriggerLoaded: StateTitle},
		StateTitle:        {TriggerConfirm: StateInstructions},
		StateInstructions: {TriggerConfirm: StatePlaying},
		StatePlaying: {
			TriggerPlayerDied:      StateGameOver,
			TriggerLevelsExhausted: StateGameOver,
		},
		StateGameOver: {TriggerConfirm: StateTitle},
	}
	if skipInstructions {
		t[StateTitle] = map[Trigger]State{TriggerConfirm: StatePlaying}
	}
	return t
}

// Next returns the successor of from for trigger, if there is one.
func (t Transitions) Next(from State, trigger Trigger) (State, bool) {
	next, ok := t[from][trigger]
	return next, ok
}

// Validate checks that PLAYING is reachable from LOADING and that every
// reachable state has a way out.
func (t Transitions) Validate() error {
	seen := map[State]bool{StateLoading: true}
	queue := []State{StateLoading}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		if len(t[s]) == 0 {
			return fmt.Errorf("engine: state %s has no transitions", s)
		}
		for _, next := range t[s] {
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	if !seen[StatePlaying] {
		return fmt.Errorf("engine: %s is unreachable", StatePlaying)
	}
	return nil
}
