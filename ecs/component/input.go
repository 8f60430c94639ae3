package component

// Action is one logical input the host maps keys and buttons onto.
type Action uint8

const (
	ActionUp Action = 1 << iota
	ActionDown
	ActionLeft
	ActionRight
	ActionFire
	ActionConfirm
)

// Actions is the set of actions held during one frame.
type Actions uint8

func (a Actions) Has(act Action) bool {
	return a&Actions(act) != 0
}

func (a Actions) With(act Action) Actions {
	return a | Actions(act)
}

// Pressed returns the actions held now that were not held in prev.
func (a Actions) Pressed(prev Actions) Actions {
	return a &^ prev
}

// Axis converts the direction actions into a movement vector.
func (a Actions) Axis() (float64, float64) {
	x, y := 0.0, 0.0
	if a.Has(ActionLeft) {
		x -= 1
	}
	if a.Has(ActionRight) {
		x += 1
	}
	if a.Has(ActionUp) {
		y -= 1
	}
	if a.Has(ActionDown) {
		y += 1
	}
	return x, y
}
