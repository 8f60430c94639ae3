package component

// Canvas is the playfield size in pixels.
type Canvas struct {
	Width  float64
	Height float64
}
