package component

// Faction identifies sides for projectile hit checks.
type Faction int

const (
	FactionPlayer Faction = iota
	FactionEnemy
)

func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Forward is the horizontal direction a faction's actors face: the player
// flies right, enemies come in from the right edge.
func (f Faction) Forward() float64 {
	if f == FactionPlayer {
		return 1
	}
	return -1
}
