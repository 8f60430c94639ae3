package component

import "strings"

// Pattern selects how an actor moves each tick.
type Pattern int

const (
	PatternStraight Pattern = iota
	PatternSine
	PatternDiagonal
	PatternScript
)

func (p Pattern) String() string {
	switch p {
	case PatternStraight:
		return "straight"
	case PatternSine:
		return "sine"
	case PatternDiagonal:
		return "diagonal"
	case PatternScript:
		return "script"
	default:
		return "unknown"
	}
}

// ParsePattern maps a config name to a Pattern. An empty name is straight.
func ParsePattern(name string) (Pattern, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "straight":
		return PatternStraight, true
	case "sine", "sinusoidal", "wave":
		return PatternSine, true
	case "diagonal", "diagonal-bounce", "diagonalbounce", "bounce":
		return PatternDiagonal, true
	case "script":
		return PatternScript, true
	default:
		return PatternStraight, false
	}
}

// Motion is the movement state of one actor. Phase, VerticalDir and InitialY
// are fixed when the actor spawns.
type Motion struct {
	Pattern   Pattern
	Speed     float64
	Amplitude float64
	Frequency float64
	Damping   float64
	Script    string

	InitialY    float64
	Phase       float64
	VerticalDir float64
}
