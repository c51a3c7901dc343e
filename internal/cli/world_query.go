package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	pwerrors "github.com/fernwhistle/propworld/internal/errors"
	"github.com/fernwhistle/propworld/internal/world"
	"github.com/fernwhistle/propworld/internal/worldfile"
)

var worldQueryListFlag bool

var worldQueryCmd = &cobra.Command{
	Use:   "query <file> [path]",
	Short: "Query entities and props in a world file",
	Long: `Query a world file with a path expression.

A path starts at a named entity, follows zero or more links with '->',
and optionally ends in '.prop' to read a property:

  gandalf                  the entity itself (name, class, props, links)
  gandalf.age              a property on the entity
  gandalf->ally.age        a property one link hop away
  party->member->home.name a property two hops away
  world.era                a world-level property

'world' without link hops is reserved for world-level props and shadows
an entity of that name; with hops it resolves as an entity. Link hops
follow the lowest-id live target, the same rule world watch and the
data model use everywhere.

Examples:
  propworld world query world.yml "gandalf->ally.age"
  propworld world query world.yml --list`,
	Args:         cobra.RangeArgs(1, 2),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWorldQuery(cmd, args)
	},
}

func init() {
	worldCmd.AddCommand(worldQueryCmd)

	worldQueryCmd.Flags().BoolVar(&worldQueryListFlag, "list", false,
		"List all named entities instead of evaluating a path")
}

func runWorldQuery(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err != nil {
		return pwerrors.WorldFileNotFound(path)
	}

	w, err := worldfile.Load(path)
	if err != nil {
		return pwerrors.WorldParseError(path, err)
	}

	if worldQueryListFlag {
		return listEntities(cmd, w)
	}
	if len(args) < 2 {
		return pwerrors.InvalidQueryPath("(missing)")
	}

	q, err := parseQueryPath(args[1])
	if err != nil {
		return err
	}
	return evalQuery(cmd, w, q)
}

// queryPath is a parsed query expression: a starting entity, link hops,
// and an optional trailing property.
type queryPath struct {
	entity string
	links  []string
	prop   string
}

// parseQueryPath splits "entity->link->link.prop" into its parts. The
// property is separated from the final segment at its last dot.
func parseQueryPath(expr string) (*queryPath, error) {
	segments := strings.Split(expr, "->")
	for _, s := range segments {
		if strings.TrimSpace(s) == "" {
			return nil, pwerrors.InvalidQueryPath(expr)
		}
	}

	q := &queryPath{entity: strings.TrimSpace(segments[0])}
	for _, s := range segments[1:] {
		q.links = append(q.links, strings.TrimSpace(s))
	}

	last := len(q.links) - 1
	if last >= 0 {
		if name, prop, found := strings.Cut(q.links[last], "."); found {
			if name == "" || prop == "" {
				return nil, pwerrors.InvalidQueryPath(expr)
			}
			q.links[last] = name
			q.prop = prop
		}
	} else if name, prop, found := strings.Cut(q.entity, "."); found {
		if name == "" || prop == "" {
			return nil, pwerrors.InvalidQueryPath(expr)
		}
		q.entity = name
		q.prop = prop
	}

	return q, nil
}

func evalQuery(cmd *cobra.Command, w *world.World, q *queryPath) error {
	// The reserved root "world" reads world-level props. It only applies
	// to hopless paths, so an entity literally named "world" can still be
	// reached through its links; for props the reserved root shadows it.
	if q.entity == "world" && len(q.links) == 0 {
		if q.prop != "" {
			fmt.Fprintln(cmd.OutOrStdout(), w.WorldProp(q.prop).String())
			return nil
		}
		for name, v := range w.WorldProps().All() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, v.String())
		}
		return nil
	}

	start, err := w.Lookup(q.entity)
	if err != nil {
		return pwerrors.EntityNotFound(q.entity)
	}

	target, ok := w.FollowPath(start, q.links...)
	if !ok {
		fmt.Fprintf(cmd.OutOrStdout(), "no live entity at %s->%s\n",
			q.entity, strings.Join(q.links, "->"))
		return NewExitError(ExitLintFindings)
	}

	if q.prop != "" {
		fmt.Fprintln(cmd.OutOrStdout(), w.Prop(target, q.prop).String())
		return nil
	}
	printEntity(cmd, w, target)
	return nil
}

// printEntity writes an entity summary: identity line, props, and links.
func printEntity(cmd *cobra.Command, w *world.World, e world.Entity) {
	out := cmd.OutOrStdout()

	label := fmt.Sprintf("entity %d", e)
	if name, ok := w.Name(e); ok {
		label = name
	}
	if class, ok := w.Class(e); ok {
		label += " (" + class + ")"
	}
	fmt.Fprintln(out, label)

	for name, v := range w.EntityProps(e).All() {
		fmt.Fprintf(out, "  %s: %s\n", name, v.String())
	}
	for _, link := range w.LinkNames(e) {
		targets := make([]string, 0)
		for _, t := range w.Explore(e, link) {
			if name, ok := w.Name(t); ok {
				targets = append(targets, name)
			} else {
				targets = append(targets, fmt.Sprintf("entity %d", t))
			}
		}
		fmt.Fprintf(out, "  ->%s: %s\n", link, strings.Join(targets, ", "))
	}
}

func listEntities(cmd *cobra.Command, w *world.World) error {
	for _, e := range w.Entities() {
		if name, ok := w.Name(e); ok {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	}
	return nil
}
