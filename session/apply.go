package session

import (
	"context"
	"fmt"
	"io"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"ucss/state"
	"ucss/ui"
)

// Apply loads scene and stylesheet, applies styles once and prints resulting
// tree.
func Apply(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("apply")

	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many stylesheets", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	scene, err := loadScene(env, log, cmd.String("scene"))
	if err != nil {
		return fmt.Errorf("unable to load scene: %w", err)
	}
	engine, err := newEngine(env)
	if err != nil {
		return err
	}

	path := cmd.Args().Get(0)
	if path == "" {
		if path, err = currentStylesheet(env); err != nil {
			return fmt.Errorf("unable to get current stylesheet: %w", err)
		}
	}

	name := env.Cfg.Styling.Root
	if err := loadStylesheet(env, log, engine, rootFunc(scene, name)(), path); err != nil {
		return fmt.Errorf("unable to apply stylesheet to %q: %w", name, err)
	}

	out := ui.Dump(scene)
	env.Rpt.StoreData("result.txt", []byte(out))
	_, err = io.WriteString(cmd.Root().Writer, out)
	return err
}
