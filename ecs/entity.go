package ecs

// Entity is the registry handle for one spawned entity. The low 32 bits hold
// the slot, the high 32 bits the slot's generation when the handle was
// issued; once the entity is compacted away the generation moves on and the
// old handle stops resolving.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}
