package component

// Renderer is the drawing collaborator. Sprite keys are resolved by the
// implementation; the core never touches pixel data.
type Renderer interface {
	DrawEntity(sprite string, x, y, w, h float64)
}

type Renderable interface {
	Render(r Renderer)
}

// Mortal is the damage capability. TakeDamage reports whether this call
// killed the entity; it never reports the same death twice.
type Mortal interface {
	TakeDamage(amount float64) bool
	IsAlive() bool
}
