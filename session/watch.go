package session

import (
	"context"
	"fmt"
	"io"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"ucss/refresh"
	"ucss/state"
)

// Watch applies current stylesheet and keeps reapplying it every time the
// file changes until interrupted.
func Watch(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("watch")

	scene, err := loadScene(env, log, cmd.String("scene"))
	if err != nil {
		return fmt.Errorf("unable to load scene: %w", err)
	}
	engine, err := newEngine(env)
	if err != nil {
		return err
	}

	source := stylesheetSource{env: env}
	current, err := source.CurrentStylesheet()
	if err != nil {
		return fmt.Errorf("unable to get current stylesheet: %w", err)
	}
	if current == "" {
		return fmt.Errorf("nothing to watch: %w, select one with \"use\" command", refresh.ErrNoStylesheet)
	}

	root := rootFunc(scene, env.Cfg.Styling.Root)
	out := cmd.Root().Writer
	show := func() {
		if n := root(); n != nil {
			io.WriteString(out, engine.Describe(n)) //nolint:errcheck
		}
	}

	// broken stylesheet is not fatal here, it is expected to be fixed while we wait
	if err := loadStylesheet(env, log, engine, root(), current); err == nil {
		show()
	}

	r := refresh.New(env.Log, engine, source, root, env.Cfg.Styling.Extension)
	r.OnReload(func(path string, err error) {
		keepCopy(env, log, path)
		if err != nil {
			return
		}
		show()
	})

	debounce := env.Cfg.Watch.Debounce
	if cmd.IsSet("debounce") {
		debounce = cmd.Duration("debounce")
	}
	if err := r.Watch(ctx, debounce); err != nil {
		return err
	}
	log.Info("Watch stopped", zap.Int64("reloads", r.Reloads()), zap.Bool("has-error", engine.HasError()))
	return nil
}
