package component

// Effect is a timed, non-colliding entity such as an explosion. It is removed
// once Age reaches TTL seconds.
type Effect struct {
	Base

	TTL float64
	Age float64
}

// Advance ages the effect and reports whether it has expired.
func (e *Effect) Advance(dt float64) bool {
	e.Age += dt
	return e.Age >= e.TTL
}
