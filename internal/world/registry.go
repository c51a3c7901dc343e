package world

import (
	"slices"

	"github.com/fernwhistle/propworld/internal/intern"
)

// SetName gives an entity a unique name. A previously held name is freed.
// Setting the empty name clears the entity's name. If another live entity
// holds the name, NameTakenError is returned.
func (w *World) SetName(e Entity, name string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	d, ok := w.entities[e]
	if !ok {
		return &NotSpawnedError{Entity: e}
	}

	atom := intern.Make(name)
	if !atom.IsEmpty() {
		if holder, taken := w.names[atom]; taken && holder != e {
			return &NameTakenError{Name: name, Holder: holder}
		}
	}

	if !d.name.IsEmpty() {
		delete(w.names, d.name)
	}
	d.name = atom
	if !atom.IsEmpty() {
		w.names[atom] = e
	}
	return nil
}

// Name returns an entity's name. ok is false for unnamed or dead entities.
func (w *World) Name(e Entity) (string, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	d, exists := w.entities[e]
	if !exists || d.name.IsEmpty() {
		return "", false
	}
	return d.name.String(), true
}

// SetClass assigns an entity to a class. An entity belongs to at most one
// class; the empty class removes it from classification.
func (w *World) SetClass(e Entity, class string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	d, ok := w.entities[e]
	if !ok {
		return &NotSpawnedError{Entity: e}
	}

	w.dropClass(e, d)
	d.class = intern.Make(class)
	if !d.class.IsEmpty() {
		members, ok := w.classes[d.class]
		if !ok {
			members = make(map[Entity]struct{})
			w.classes[d.class] = members
		}
		members[e] = struct{}{}
	}
	return nil
}

// Class returns an entity's class. ok is false for unclassified or dead
// entities.
func (w *World) Class(e Entity) (string, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	d, exists := w.entities[e]
	if !exists || d.class.IsEmpty() {
		return "", false
	}
	return d.class.String(), true
}

// Lookup resolves a name to its entity. Returns NotFoundError if no live
// entity holds the name.
func (w *World) Lookup(name string) (Entity, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	e, ok := w.names[intern.Make(name)]
	if !ok {
		return 0, &NotFoundError{Name: name}
	}
	return e, nil
}

// InClass returns all entities of a class in ascending id order. An unknown
// class yields an empty slice.
func (w *World) InClass(class string) []Entity {
	w.mu.RLock()
	defer w.mu.RUnlock()

	members := w.classes[intern.Make(class)]
	out := make([]Entity, 0, len(members))
	for e := range members {
		out = append(out, e)
	}
	slices.Sort(out)
	return out
}

// dropClass removes an entity from its class index entry. Caller holds the
// write lock.
func (w *World) dropClass(e Entity, d *entityData) {
	if d.class.IsEmpty() {
		return
	}
	if members, ok := w.classes[d.class]; ok {
		delete(members, e)
		if len(members) == 0 {
			delete(w.classes, d.class)
		}
	}
	d.class = intern.Atom{}
}
