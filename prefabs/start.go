package prefabs

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// StartKind selects how a spawn position is resolved.
type StartKind int

const (
	StartRightEdge StartKind = iota
	StartRandom
	StartTop
	StartBottom
	StartLiteral
)

func (k StartKind) String() string {
	switch k {
	case StartRightEdge:
		return "rightEdge"
	case StartRandom:
		return "random"
	case StartTop:
		return "top"
	case StartBottom:
		return "bottom"
	case StartLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// StartRule is either a symbolic position name or a literal {x, y}. Symbolic
// rules are resolved against the canvas when the actor spawns. The zero value
// is rightEdge.
type StartRule struct {
	Kind StartKind
	X    float64
	Y    float64
}

func ParseStartKind(name string) (StartKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "rightedge", "right_edge", "right":
		return StartRightEdge, nil
	case "random":
		return StartRandom, nil
	case "top":
		return StartTop, nil
	case "bottom":
		return StartBottom, nil
	default:
		return StartRightEdge, fmt.Errorf("%w: %q", ErrInvalidStart, name)
	}
}

type startPoint struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

func (r *StartRule) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		kind, err := ParseStartKind(name)
		if err != nil {
			return err
		}
		*r = StartRule{Kind: kind}
		return nil
	}
	var pt startPoint
	if err := json.Unmarshal(data, &pt); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidStart, string(data))
	}
	*r = StartRule{Kind: StartLiteral, X: pt.X, Y: pt.Y}
	return nil
}

func (r *StartRule) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		kind, err := ParseStartKind(node.Value)
		if err != nil {
			return err
		}
		*r = StartRule{Kind: kind}
		return nil
	case yaml.MappingNode:
		var pt startPoint
		if err := node.Decode(&pt); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidStart, err)
		}
		*r = StartRule{Kind: StartLiteral, X: pt.X, Y: pt.Y}
		return nil
	default:
		return fmt.Errorf("%w: line %d", ErrInvalidStart, node.Line)
	}
}
