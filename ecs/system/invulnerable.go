package system

import "github.com/milk9111/arcade/ecs"

// InvulnerableSystem counts the player's post-hit window down.
type InvulnerableSystem struct{}

func NewInvulnerableSystem() *InvulnerableSystem {
	return &InvulnerableSystem{}
}

func (s *InvulnerableSystem) Update(w *ecs.World) {
	if w == nil || w.Player == nil {
		return
	}
	w.Player.Tick(w.Delta())
}
