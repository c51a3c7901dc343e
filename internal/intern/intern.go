// Package intern provides interned string atoms for property, link, and
// registry names. Atoms are cheap to copy and compare: equality is a single
// handle comparison regardless of string length, and the same string always
// yields the same atom for the lifetime of the process.
package intern

import "unique"

// Atom is an interned string. The zero Atom is the empty string.
type Atom struct {
	h unique.Handle[string]
}

var empty = unique.Make("")

// Make interns s and returns its atom.
func Make(s string) Atom {
	return Atom{h: unique.Make(s)}
}

// String returns the interned string.
func (a Atom) String() string {
	if a.h == (unique.Handle[string]{}) {
		return ""
	}
	return a.h.Value()
}

// IsEmpty reports whether the atom is the empty string.
func (a Atom) IsEmpty() bool {
	return a.h == (unique.Handle[string]{}) || a.h == empty
}

// Compare orders atoms by their string values.
func (a Atom) Compare(b Atom) int {
	switch as, bs := a.String(), b.String(); {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}
