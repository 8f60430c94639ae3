package component

// Body is implemented by every entity kind through its embedded Base.
type Body interface {
	Body() *Base
}

// Base is the record every entity shares: identity, canvas-space box, sprite
// key and the deferred-removal flag. The registry that created it owns it.
type Base struct {
	ID     uint64
	X      float64
	Y      float64
	Width  float64
	Height float64
	Sprite string

	MarkedForDeletion bool
}

func (b *Base) Body() *Base {
	return b
}

func (b *Base) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

func (b *Base) Center() (float64, float64) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

// MarkForDeletion flags the entity for removal at the next compaction.
func (b *Base) MarkForDeletion() {
	b.MarkedForDeletion = true
}

func (b *Base) Render(r Renderer) {
	if r == nil {
		return
	}
	r.DrawEntity(b.Sprite, b.X, b.Y, b.Width, b.Height)
}
