// Package worldfile loads and saves world snapshots as YAML documents.
//
// A snapshot lists world-level props and entities; entities are referenced
// by name, so links in a snapshot can only point at named entities:
//
//	world:
//	  time_of_day: dusk
//	entities:
//	  - name: gandalf
//	    class: wizard
//	    props:
//	      likes_elves: true
//	  - name: bilbo
//	    class: hobbit
//	    links:
//	      talking_to: [gandalf]
package worldfile

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fernwhistle/propworld/internal/props"
	"github.com/fernwhistle/propworld/internal/world"
)

// ValidationError reports a problem in a snapshot document with the path of
// the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// document is the YAML shape of a snapshot.
type document struct {
	World    map[string]any `yaml:"world,omitempty"`
	Entities []fileEntity   `yaml:"entities"`
}

// fileEntity is one entity entry in a snapshot.
type fileEntity struct {
	Name  string              `yaml:"name,omitempty"`
	Class string              `yaml:"class,omitempty"`
	Props map[string]any      `yaml:"props,omitempty"`
	Links map[string][]string `yaml:"links,omitempty"`
}

// Load reads and validates a world snapshot from the given path.
func Load(path string) (*world.World, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening world file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads and validates a world snapshot from a reader. Entities are
// built in two passes: spawn and register first, then resolve links by
// target name, so link order in the document does not matter.
func Parse(r io.Reader) (*world.World, error) {
	var doc document

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing world YAML: %w", err)
	}

	w := world.New()

	for name, raw := range doc.World {
		v, err := props.ValueOf(raw)
		if err != nil {
			return nil, &ValidationError{
				Field:   fmt.Sprintf("world.%s", name),
				Message: err.Error(),
			}
		}
		w.SetWorldProp(name, v)
	}

	entities := make([]world.Entity, len(doc.Entities))
	for i, fe := range doc.Entities {
		e, err := spawnEntity(w, &fe, i)
		if err != nil {
			return nil, err
		}
		entities[i] = e
	}

	for i, fe := range doc.Entities {
		if err := resolveLinks(w, entities[i], &fe, i); err != nil {
			return nil, err
		}
	}

	return w, nil
}

// spawnEntity creates one entity and applies its name, class, and props.
func spawnEntity(w *world.World, fe *fileEntity, index int) (world.Entity, error) {
	e := w.Spawn()

	if fe.Name != "" {
		if err := w.SetName(e, fe.Name); err != nil {
			return 0, &ValidationError{
				Field:   fmt.Sprintf("entities[%d].name", index),
				Message: fmt.Sprintf("duplicate name %q", fe.Name),
			}
		}
	}
	if fe.Class != "" {
		if err := w.SetClass(e, fe.Class); err != nil {
			return 0, fmt.Errorf("setting class: %w", err)
		}
	}

	for name, raw := range fe.Props {
		v, err := props.ValueOf(raw)
		if err != nil {
			return 0, &ValidationError{
				Field:   fmt.Sprintf("entities[%d].props.%s", index, name),
				Message: err.Error(),
			}
		}
		if err := w.SetProp(e, name, v); err != nil {
			return 0, fmt.Errorf("setting prop: %w", err)
		}
	}

	return e, nil
}

// resolveLinks wires one entity's links to their named targets.
func resolveLinks(w *world.World, e world.Entity, fe *fileEntity, index int) error {
	for link, targets := range fe.Links {
		for _, targetName := range targets {
			if strings.TrimSpace(targetName) == "" {
				return &ValidationError{
					Field:   fmt.Sprintf("entities[%d].links.%s", index, link),
					Message: "link target name cannot be empty",
				}
			}
			target, err := w.Lookup(targetName)
			if err != nil {
				return &ValidationError{
					Field:   fmt.Sprintf("entities[%d].links.%s", index, link),
					Message: fmt.Sprintf("unknown link target %q", targetName),
				}
			}
			if err := w.AddLink(e, link, target); err != nil {
				return fmt.Errorf("adding link: %w", err)
			}
		}
	}
	return nil
}

// Save writes a snapshot of the world to the given path.
func Save(w *world.World, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating world file: %w", err)
	}
	defer f.Close()

	return Encode(w, f)
}

// Encode writes a snapshot of the world to a writer. Output is
// deterministic: named entities sorted by name come first, unnamed
// entities follow in id order, and props, link names, and each link's
// target names are sorted.
//
// Links to despawned entities are dropped. A link to a live unnamed entity
// cannot be represented (snapshots reference entities by name) and is
// reported as an error.
func Encode(w *world.World, out io.Writer) error {
	doc := document{
		World: propsToMap(w.WorldProps()),
	}

	ordered := orderedEntities(w)
	for _, e := range ordered {
		fe, err := encodeEntity(w, e)
		if err != nil {
			return err
		}
		doc.Entities = append(doc.Entities, fe)
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("encoding world YAML: %w", err)
	}
	return enc.Close()
}

// orderedEntities returns live entities named-first by name, unnamed last
// by id.
func orderedEntities(w *world.World) []world.Entity {
	all := w.Entities()
	slices.SortStableFunc(all, func(a, b world.Entity) int {
		nameA, okA := w.Name(a)
		nameB, okB := w.Name(b)
		switch {
		case okA && okB:
			return strings.Compare(nameA, nameB)
		case okA:
			return -1
		case okB:
			return 1
		default:
			return int(a) - int(b)
		}
	})
	return all
}

// encodeEntity converts a single live entity to its file form.
func encodeEntity(w *world.World, e world.Entity) (fileEntity, error) {
	fe := fileEntity{}
	fe.Name, _ = w.Name(e)
	fe.Class, _ = w.Class(e)
	fe.Props = propsToMap(w.EntityProps(e))

	for _, link := range w.LinkNames(e) {
		for _, target := range w.Explore(e, link) {
			targetName, ok := w.Name(target)
			if !ok {
				return fileEntity{}, &ValidationError{
					Field:   fmt.Sprintf("entity %q link %q", fe.Name, link),
					Message: "link target has no name and cannot be saved",
				}
			}
			if fe.Links == nil {
				fe.Links = make(map[string][]string)
			}
			fe.Links[link] = append(fe.Links[link], targetName)
		}
		// Explore yields targets in id order; the file orders them by name
		// so a load/save round trip is stable.
		slices.Sort(fe.Links[link])
	}

	return fe, nil
}

// propsToMap converts a property store to a plain scalar map. Returns nil
// for an empty store so the YAML field is omitted.
func propsToMap(p *props.Props) map[string]any {
	if p.Len() == 0 {
		return nil
	}
	m := make(map[string]any, p.Len())
	for name, v := range p.All() {
		m[name] = v.Scalar()
	}
	return m
}
