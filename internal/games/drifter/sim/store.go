package sim

import "fmt"

// store owns every entity in a dense slice. Ids are indices; nothing is
// ever removed, so ids stay stable for the life of the world. Pointers
// returned by get are invalidated by insert, so entities are only inserted
// during world setup, never mid-tick.
type store struct {
	entities []Entity
}

// insert adds an entity and returns its id.
func (s *store) insert(e Entity) EntityID {
	id := EntityID(len(s.entities))
	s.entities = append(s.entities, e)
	return id
}

// get returns the entity for id. An invalid id is a programming error and
// panics rather than returning a recoverable failure.
func (s *store) get(id EntityID) *Entity {
	if id < 0 || int(id) >= len(s.entities) {
		panic(fmt.Sprintf("sim: invalid entity id %d (store holds %d)", id, len(s.entities)))
	}
	return &s.entities[id]
}

// pair returns two distinct entities for simultaneous mutation during
// contact resolution. Asking for the same id twice would alias one body as
// both sides of a contact, so it fails fast.
func (s *store) pair(a, b EntityID) (*Entity, *Entity) {
	if a == b {
		panic(fmt.Sprintf("sim: entity pair requested with aliased id %d", a))
	}
	return s.get(a), s.get(b)
}

// each calls fn for every entity in id order.
func (s *store) each(fn func(EntityID, *Entity)) {
	for i := range s.entities {
		fn(EntityID(i), &s.entities[i])
	}
}

// len reports how many entities the store holds.
func (s *store) len() int {
	return len(s.entities)
}
