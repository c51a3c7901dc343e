// Package world provides an in-memory store of entities carrying
// stringly-typed data: key-value properties, unique names, classes, and
// named unidirectional links to other entities.
//
//	w := world.New()
//	gandalf := w.Spawn()
//	w.SetName(gandalf, "gandalf")
//	w.SetClass(gandalf, "wizard")
//	w.SetProp(gandalf, "likes_elves", props.BoolValue(true))
//
//	bilbo := w.Spawn()
//	w.SetLink(bilbo, "talking_to", gandalf)
//
//	if target, ok := w.Follow(bilbo, "talking_to"); ok {
//		likes := w.Prop(target, "likes_elves").Bool()
//		...
//	}
//
// Mutations on entities that are not spawned return NotSpawnedError; reads
// on them yield zero values, matching the lenient access style of the props
// package. A World is safe for concurrent use.
package world

import (
	"slices"
	"sync"

	"github.com/fernwhistle/propworld/internal/intern"
	"github.com/fernwhistle/propworld/internal/props"
)

// Entity is an opaque entity identifier. The zero Entity is never live.
type Entity uint64

// entityData holds everything attached to a single live entity.
type entityData struct {
	name  intern.Atom
	class intern.Atom
	props *props.Props
	links map[intern.Atom]map[Entity]struct{}
}

// World is a store of entities and their stringly-typed data, plus a set of
// world-level properties not attached to any entity.
type World struct {
	mu       sync.RWMutex
	next     Entity
	entities map[Entity]*entityData
	names    map[intern.Atom]Entity
	classes  map[intern.Atom]map[Entity]struct{}
	global   *props.Props
}

// New creates an empty world.
func New() *World {
	return &World{
		entities: make(map[Entity]*entityData),
		names:    make(map[intern.Atom]Entity),
		classes:  make(map[intern.Atom]map[Entity]struct{}),
		global:   props.New(),
	}
}

// Spawn creates a new empty entity and returns its id.
func (w *World) Spawn() Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.next++
	e := w.next
	w.entities[e] = &entityData{
		props: props.New(),
		links: make(map[intern.Atom]map[Entity]struct{}),
	}
	return e
}

// Despawn removes an entity along with its name, class membership, props,
// and outgoing links. Links held by other entities that point at the
// despawned entity are left in place; follow operations skip dead targets.
func (w *World) Despawn(e Entity) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	d, ok := w.entities[e]
	if !ok {
		return &NotSpawnedError{Entity: e}
	}

	if !d.name.IsEmpty() {
		delete(w.names, d.name)
	}
	w.dropClass(e, d)
	delete(w.entities, e)
	return nil
}

// Alive reports whether the entity is currently spawned.
func (w *World) Alive(e Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	_, ok := w.entities[e]
	return ok
}

// Len returns the number of live entities.
func (w *World) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return len(w.entities)
}

// Entities returns all live entity ids in ascending order.
func (w *World) Entities() []Entity {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make([]Entity, 0, len(w.entities))
	for e := range w.entities {
		out = append(out, e)
	}
	slices.Sort(out)
	return out
}

// SetProp stores a property on an entity.
func (w *World) SetProp(e Entity, name string, v props.Value) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	d, ok := w.entities[e]
	if !ok {
		return &NotSpawnedError{Entity: e}
	}
	d.props.Set(name, v)
	return nil
}

// Prop returns an entity property. A missing property, or a property read
// from a dead entity, yields the zero Value.
func (w *World) Prop(e Entity, name string) props.Value {
	w.mu.RLock()
	defer w.mu.RUnlock()

	d, ok := w.entities[e]
	if !ok {
		return props.Value{}
	}
	return d.props.Get(name)
}

// LookupProp returns an entity property and whether it was set.
func (w *World) LookupProp(e Entity, name string) (props.Value, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	d, ok := w.entities[e]
	if !ok {
		return props.Value{}, false
	}
	return d.props.Lookup(name)
}

// RemoveProp deletes a property from an entity.
func (w *World) RemoveProp(e Entity, name string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	d, ok := w.entities[e]
	if !ok {
		return &NotSpawnedError{Entity: e}
	}
	d.props.Remove(name)
	return nil
}

// EntityProps returns a copy of an entity's property store. A dead entity
// yields an empty store.
func (w *World) EntityProps(e Entity) *props.Props {
	w.mu.RLock()
	defer w.mu.RUnlock()

	d, ok := w.entities[e]
	if !ok {
		return props.New()
	}
	return d.props.Clone()
}

// SetWorldProp stores a world-level property.
func (w *World) SetWorldProp(name string, v props.Value) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.global.Set(name, v)
}

// WorldProp returns a world-level property, or the zero Value if unset.
func (w *World) WorldProp(name string) props.Value {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.global.Get(name)
}

// WorldProps returns a copy of the world-level property store.
func (w *World) WorldProps() *props.Props {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.global.Clone()
}
