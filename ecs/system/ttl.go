package system

import (
	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
)

// TTLSystem ages effects and marks them for deletion once their lifetime
// runs out.
type TTLSystem struct{}

func NewTTLSystem() *TTLSystem {
	return &TTLSystem{}
}

func (s *TTLSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()
	w.Effects.Each(func(fx *component.Effect) {
		if fx.MarkedForDeletion {
			return
		}
		if fx.Advance(dt) {
			fx.MarkForDeletion()
		}
	})
}
