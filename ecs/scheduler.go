package ecs

// System advances one concern of the world by one tick. Systems read the
// tick length from World.Delta and only mark entities; removal is left to
// World.Compact.
type System interface {
	Update(w *World)
}

// Scheduler holds the tick pipeline. Order matters: a system sees every
// change made by the systems before it in the same tick.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, sys := range systems {
		s.Add(sys)
	}
	return s
}

// Add appends a system to the end of the pipeline. Nil is ignored.
func (s *Scheduler) Add(sys System) {
	if sys == nil {
		return
	}
	s.systems = append(s.systems, sys)
}

// Update runs one tick of every system in order.
func (s *Scheduler) Update(w *World) {
	if s == nil {
		return
	}
	for _, sys := range s.systems {
		sys.Update(w)
	}
}
