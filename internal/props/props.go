package props

import (
	"iter"
	"slices"

	"github.com/fernwhistle/propworld/internal/intern"
)

// Props is an ordered key-value property store. Keys are interned names and
// values are Value scalars. Iteration order is always sorted by name.
//
// Reading a property that has not been set yields the zero Value; combined
// with Value's lenient accessors this means a missing or mistyped property
// reads as false, 0, or "" depending on what the caller asks for. Reads
// never create state.
//
// Props is not safe for concurrent use; the world package provides the
// synchronized view.
type Props struct {
	m map[intern.Atom]Value
}

// New creates an empty property store.
func New() *Props {
	return &Props{m: make(map[intern.Atom]Value)}
}

// Set stores a property value under the given name.
func (p *Props) Set(name string, v Value) {
	p.m[intern.Make(name)] = v
}

// SetAtom stores a property value under an already-interned name.
func (p *Props) SetAtom(name intern.Atom, v Value) {
	p.m[name] = v
}

// With stores a property and returns the store, for chained construction:
//
//	p := props.New().
//		With("has_ring", props.BoolValue(true)).
//		With("health", props.NumValue(100))
func (p *Props) With(name string, v Value) *Props {
	p.Set(name, v)
	return p
}

// Get returns the value stored under name, or the zero Value if unset.
func (p *Props) Get(name string) Value {
	return p.m[intern.Make(name)]
}

// Lookup returns the value stored under name and whether it was set.
func (p *Props) Lookup(name string) (Value, bool) {
	v, ok := p.m[intern.Make(name)]
	return v, ok
}

// Remove deletes a property. Subsequent reads return the zero Value.
func (p *Props) Remove(name string) {
	delete(p.m, intern.Make(name))
}

// Clear removes all properties.
func (p *Props) Clear() {
	clear(p.m)
}

// Len returns the number of properties set.
func (p *Props) Len() int {
	return len(p.m)
}

// Names returns all property names in sorted order.
func (p *Props) Names() []string {
	names := make([]string, 0, len(p.m))
	for a := range p.m {
		names = append(names, a.String())
	}
	slices.Sort(names)
	return names
}

// All iterates over properties in sorted name order.
func (p *Props) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, name := range p.Names() {
			if !yield(name, p.Get(name)) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the store.
func (p *Props) Clone() *Props {
	c := &Props{m: make(map[intern.Atom]Value, len(p.m))}
	for a, v := range p.m {
		c.m[a] = v
	}
	return c
}
