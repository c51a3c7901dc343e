package world

import (
	"slices"

	"github.com/fernwhistle/propworld/internal/intern"
)

// Links are named, unidirectional references from one entity to others.
// They differ from the registry in two ways: a link name is scoped to the
// entity holding it, and the same name may point at many targets. Targets
// are not required to stay alive; a link to a despawned entity simply stops
// being followable.

// SetLink points a link at exactly one target, discarding previous targets.
func (w *World) SetLink(e Entity, name string, target Entity) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	d, ok := w.entities[e]
	if !ok {
		return &NotSpawnedError{Entity: e}
	}
	atom := intern.Make(name)
	d.links[atom] = map[Entity]struct{}{target: {}}
	return nil
}

// AddLink adds a target to a link. The same link may point at multiple
// entities.
func (w *World) AddLink(e Entity, name string, target Entity) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	d, ok := w.entities[e]
	if !ok {
		return &NotSpawnedError{Entity: e}
	}
	atom := intern.Make(name)
	set, ok := d.links[atom]
	if !ok {
		set = make(map[Entity]struct{})
		d.links[atom] = set
	}
	set[target] = struct{}{}
	return nil
}

// RemoveLink removes a single target from a link.
func (w *World) RemoveLink(e Entity, name string, target Entity) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	d, ok := w.entities[e]
	if !ok {
		return &NotSpawnedError{Entity: e}
	}
	atom := intern.Make(name)
	if set, ok := d.links[atom]; ok {
		delete(set, target)
		if len(set) == 0 {
			delete(d.links, atom)
		}
	}
	return nil
}

// ClearLink removes all targets of a link.
func (w *World) ClearLink(e Entity, name string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	d, ok := w.entities[e]
	if !ok {
		return &NotSpawnedError{Entity: e}
	}
	delete(d.links, intern.Make(name))
	return nil
}

// IsLinked reports whether the link points at the given target.
func (w *World) IsLinked(e Entity, name string, target Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	d, ok := w.entities[e]
	if !ok {
		return false
	}
	set, ok := d.links[intern.Make(name)]
	if !ok {
		return false
	}
	_, linked := set[target]
	return linked
}

// Linked returns one target of the link. When a link points at multiple
// entities, the lowest-id live target wins; a despawned target is returned
// only when every target is dead.
func (w *World) Linked(e Entity, name string) (Entity, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	targets := w.linkTargets(e, name)
	if len(targets) == 0 {
		return 0, false
	}
	for _, target := range targets {
		if _, alive := w.entities[target]; alive {
			return target, true
		}
	}
	return targets[0], true
}

// Links returns all targets of a link in ascending id order, including
// targets that have been despawned.
func (w *World) Links(e Entity, name string) []Entity {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.linkTargets(e, name)
}

// LinkNames returns the names of all links held by the entity, sorted.
func (w *World) LinkNames(e Entity) []string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	d, ok := w.entities[e]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(d.links))
	for atom := range d.links {
		names = append(names, atom.String())
	}
	slices.Sort(names)
	return names
}

// Follow resolves a link to a live entity. If the link points at several
// targets, the first live one (by id) is returned. Despawned targets are
// never returned.
func (w *World) Follow(e Entity, name string) (Entity, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for _, target := range w.linkTargets(e, name) {
		if _, alive := w.entities[target]; alive {
			return target, true
		}
	}
	return 0, false
}

// Explore resolves a link to all of its live targets, in ascending id
// order.
func (w *World) Explore(e Entity, name string) []Entity {
	w.mu.RLock()
	defer w.mu.RUnlock()

	targets := w.linkTargets(e, name)
	live := make([]Entity, 0, len(targets))
	for _, target := range targets {
		if _, alive := w.entities[target]; alive {
			live = append(live, target)
		}
	}
	return live
}

// FollowPath follows a chain of links hop by hop, starting at e. Each hop
// uses Follow semantics, so the whole path fails if any intermediate link
// is missing or points only at dead entities.
// A zero-hop path resolves to the starting entity, provided it is live.
func (w *World) FollowPath(e Entity, names ...string) (Entity, bool) {
	if !w.Alive(e) {
		return 0, false
	}
	current := e
	for _, name := range names {
		next, ok := w.Follow(current, name)
		if !ok {
			return 0, false
		}
		current = next
	}
	return current, true
}

// linkTargets returns the sorted targets of a link. Caller holds a lock.
func (w *World) linkTargets(e Entity, name string) []Entity {
	d, ok := w.entities[e]
	if !ok {
		return nil
	}
	set, ok := d.links[intern.Make(name)]
	if !ok {
		return nil
	}
	out := make([]Entity, 0, len(set))
	for target := range set {
		out = append(out, target)
	}
	slices.Sort(out)
	return out
}
