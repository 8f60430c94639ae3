package prefabs

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/milk9111/arcade/ecs/component"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidCanvas  = errors.New("canvas dimensions must be positive")
	ErrNoLevels       = errors.New("no levels defined")
	ErrInvalidLevel   = errors.New("invalid level")
	ErrUnknownPattern = errors.New("unknown movement pattern")
	ErrInvalidStart   = errors.New("invalid start position")
	ErrInvalidStat    = errors.New("health and damage must be positive")
)

// DefaultGame is the game document shipped in the embedded prefabs.
const DefaultGame = "game.json"

type CanvasSpec struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

type ActorSpec struct {
	Sprite     string  `json:"sprite" yaml:"sprite"`
	Width      float64 `json:"width" yaml:"width"`
	Height     float64 `json:"height" yaml:"height"`
	Health     float64 `json:"health" yaml:"health"`
	Speed      float64 `json:"speed" yaml:"speed"`
	Score      int     `json:"score" yaml:"score"`
	FireRate   float64 `json:"fireRate" yaml:"fire_rate"`
	Projectile string  `json:"projectile" yaml:"projectile"`
	Pattern    string  `json:"pattern" yaml:"pattern"`
	Amplitude  float64 `json:"amplitude" yaml:"amplitude"`
	Frequency  float64 `json:"frequency" yaml:"frequency"`
	Damping    float64 `json:"damping" yaml:"damping"`
	Script     string  `json:"script" yaml:"script"`
}

type PlayerSpec struct {
	Sprite     string  `json:"sprite" yaml:"sprite"`
	Width      float64 `json:"width" yaml:"width"`
	Height     float64 `json:"height" yaml:"height"`
	Health     float64 `json:"health" yaml:"health"`
	Speed      float64 `json:"speed" yaml:"speed"`
	FireRate   float64 `json:"fireRate" yaml:"fire_rate"`
	Projectile string  `json:"projectile" yaml:"projectile"`
	X          float64 `json:"x" yaml:"x"`
	Y          float64 `json:"y" yaml:"y"`
	// Invulnerability is the hit window in seconds. Flicker is the blink period.
	Invulnerability float64 `json:"invulnerability" yaml:"invulnerability"`
	Flicker         float64 `json:"flicker" yaml:"flicker"`
}

type ProjectileSpec struct {
	Sprite string  `json:"sprite" yaml:"sprite"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Speed  float64 `json:"speed" yaml:"speed"`
	Damage float64 `json:"damage" yaml:"damage"`
	// Aimed projectiles fly at the target's center; the rest fly forward.
	Aimed bool `json:"aimed" yaml:"aimed"`
}

type ExplosionSpec struct {
	Sprite   string  `json:"sprite" yaml:"sprite"`
	Width    float64 `json:"width" yaml:"width"`
	Height   float64 `json:"height" yaml:"height"`
	Duration float64 `json:"duration" yaml:"duration"`
}

type SpawnSpec struct {
	Time     float64   `json:"time" yaml:"time"`
	Actor    string    `json:"actor" yaml:"actor"`
	Start    StartRule `json:"start" yaml:"start"`
	Count    int       `json:"count" yaml:"count"`
	Interval float64   `json:"interval" yaml:"interval"`
}

// Wave reports whether the event emits more than a single spawn.
func (s SpawnSpec) Wave() bool {
	return s.Count > 0 && s.Interval > 0
}

type LevelSpec struct {
	Name     string      `json:"name" yaml:"name"`
	Duration float64     `json:"duration" yaml:"duration"`
	Spawns   []SpawnSpec `json:"spawns" yaml:"spawns"`
}

// GameSpec is the whole game configuration document.
type GameSpec struct {
	Canvas           CanvasSpec                `json:"canvas" yaml:"canvas"`
	Player           PlayerSpec                `json:"player" yaml:"player"`
	Actors           map[string]ActorSpec      `json:"actors" yaml:"actors"`
	Projectiles      map[string]ProjectileSpec `json:"projectiles" yaml:"projectiles"`
	Explosion        ExplosionSpec             `json:"explosion" yaml:"explosion"`
	Sounds           map[string]string         `json:"sounds" yaml:"sounds"`
	Music            string                    `json:"music" yaml:"music"`
	SkipInstructions bool                      `json:"skipInstructions" yaml:"skip_instructions"`
	Levels           []LevelSpec               `json:"levels" yaml:"levels"`
}

// Sound maps a sound event name to the asset key to play.
func (g *GameSpec) Sound(event string) string {
	if g != nil {
		if key, ok := g.Sounds[event]; ok {
			return key
		}
	}
	return event
}

// Validate reports every structural problem in the document at once.
// Unknown actor and projectile references are not errors here: they are
// skipped with a warning when the simulation reaches them.
func (g *GameSpec) Validate() error {
	if g == nil {
		return ErrNoLevels
	}
	var errs []error
	if g.Canvas.Width <= 0 || g.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: %vx%v", ErrInvalidCanvas, g.Canvas.Width, g.Canvas.Height))
	}
	if len(g.Levels) == 0 {
		errs = append(errs, ErrNoLevels)
	}
	if g.Player.Health <= 0 {
		errs = append(errs, fmt.Errorf("player: %w: health %v", ErrInvalidStat, g.Player.Health))
	}
	for name, actor := range g.Actors {
		if actor.Health <= 0 {
			errs = append(errs, fmt.Errorf("actor %q: %w: health %v", name, ErrInvalidStat, actor.Health))
		}
		pattern, ok := component.ParsePattern(actor.Pattern)
		if !ok {
			errs = append(errs, fmt.Errorf("actor %q: %w %q", name, ErrUnknownPattern, actor.Pattern))
		}
		if pattern == component.PatternScript && strings.TrimSpace(actor.Script) == "" {
			errs = append(errs, fmt.Errorf("actor %q: %w: script pattern without script", name, ErrUnknownPattern))
		}
	}
	for name, p := range g.Projectiles {
		if p.Damage <= 0 {
			errs = append(errs, fmt.Errorf("projectile %q: %w: damage %v", name, ErrInvalidStat, p.Damage))
		}
	}
	for i, level := range g.Levels {
		if level.Duration <= 0 {
			errs = append(errs, fmt.Errorf("level %d: %w: duration %v", i, ErrInvalidLevel, level.Duration))
		}
		for j, spawn := range level.Spawns {
			if spawn.Time < 0 {
				errs = append(errs, fmt.Errorf("level %d spawn %d: %w: negative time", i, j, ErrInvalidLevel))
			}
			if spawn.Count < 0 || spawn.Interval < 0 {
				errs = append(errs, fmt.Errorf("level %d spawn %d: %w: negative wave", i, j, ErrInvalidLevel))
			}
		}
	}
	return errors.Join(errs...)
}

// LoadSpec decodes a prefab document. The format follows the file extension:
// .yaml and .yml use YAML, anything else JSON.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := decode(filename, data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// LoadGameSpec loads and validates a game document.
func LoadGameSpec(filename string) (*GameSpec, error) {
	if filename == "" {
		filename = DefaultGame
	}
	spec, err := LoadSpec[GameSpec](filename)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: validate %s: %w", filename, err)
	}
	return &spec, nil
}

// ParseGameSpec decodes a game document from memory.
func ParseGameSpec(filename string, data []byte) (*GameSpec, error) {
	var spec GameSpec
	if err := decode(filename, data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: validate %s: %w", filename, err)
	}
	return &spec, nil
}

func decode(filename string, data []byte, out any) error {
	if isYAML(filename) {
		return yaml.Unmarshal(data, out)
	}
	return json.Unmarshal(data, out)
}

func isYAML(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".yaml" || ext == ".yml"
}
