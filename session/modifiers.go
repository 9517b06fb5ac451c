package session

import (
	"context"
	"sort"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"

	"ucss/state"
	"ucss/utils/debug"
)

// Modifiers lists registered property keys grouped by modifier set.
func Modifiers(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)

	engine, err := newEngine(env)
	if err != nil {
		return err
	}
	reg := engine.Registry()

	bySet := make(map[string][]string)
	for _, key := range reg.Keys() {
		owner := reg.Owner(key)
		bySet[owner] = append(bySet[owner], key)
	}
	sets := make([]string, 0, len(bySet))
	for name := range bySet {
		sets = append(sets, name)
	}
	sort.Sort(natural.StringSlice(sets))

	tw := debug.NewTreeWriter()
	for _, set := range sets {
		tw.Line(0, "%s", set)
		for _, key := range bySet[set] {
			m, _ := reg.Lookup(key)
			kind := "scalar"
			if m.IsArray() {
				kind = "array"
			}
			tw.Line(1, "%s (%s) #%s", key, kind, m.Component)
		}
	}
	_, err = tw.WriteTo(cmd.Root().Writer)
	return err
}
