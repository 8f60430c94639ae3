package ecs

import "github.com/milk9111/arcade/ecs/component"

// Draw hands every live entity to the renderer, back to front: enemies,
// shots, the player, then effects. Entities marked for deletion are skipped.
func (w *World) Draw(r component.Renderer) {
	if w == nil || r == nil {
		return
	}
	for _, a := range w.Enemies.Items() {
		drawBody(r, a)
	}
	for _, p := range w.EnemyShots.Items() {
		drawBody(r, p)
	}
	for _, p := range w.PlayerShots.Items() {
		drawBody(r, p)
	}
	if w.Player != nil && w.Player.IsAlive() {
		w.Player.Render(r)
	}
	for _, fx := range w.Effects.Items() {
		drawBody(r, fx)
	}
}

func drawBody[T interface {
	component.Body
	component.Renderable
}](r component.Renderer, v T) {
	if v.Body().MarkedForDeletion {
		return
	}
	v.Render(r)
}
