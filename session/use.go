package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"ucss/state"
)

// Use remembers stylesheet to work with in preferences, without arguments
// prints the current one. With --all every stored preference is listed.
func Use(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("use")

	store, err := env.OpenPrefs()
	if err != nil {
		return fmt.Errorf("unable to open preferences: %w", err)
	}

	out := cmd.Root().Writer
	path := cmd.Args().Get(0)
	switch {
	case cmd.Bool("clear"):
		if err := store.SetCurrentStylesheet(""); err != nil {
			return err
		}
		log.Info("Current stylesheet cleared")
		return nil
	case cmd.Bool("all"):
		entries, err := store.Entries()
		if err != nil {
			return err
		}
		for _, e := range entries {
			if _, err := fmt.Fprintf(out, "%s\t%s\t%s\n", e.Key, e.Value, e.UpdatedAt.Format(time.DateTime)); err != nil {
				return err
			}
		}
		return nil
	case path == "":
		current, err := store.CurrentStylesheet()
		if err != nil {
			return err
		}
		if current == "" {
			log.Info("No stylesheet selected", zap.String("fallback", env.Cfg.Styling.Stylesheet))
			return nil
		}
		_, err = fmt.Fprintln(out, current)
		return err
	}

	if ext := env.Cfg.Styling.Extension; !strings.EqualFold(filepath.Ext(path), ext) {
		log.Warn("Stylesheet extension does not match, file changes will not be followed", zap.String("path", path), zap.String("expected", ext))
	}
	if fi, err := os.Stat(path); err != nil {
		return fmt.Errorf("unable to use stylesheet: %w", err)
	} else if fi.IsDir() {
		return fmt.Errorf("unable to use stylesheet: %s is a directory", path)
	}
	if err := store.SetCurrentStylesheet(path); err != nil {
		return err
	}
	current, err := store.CurrentStylesheet()
	if err != nil {
		return err
	}
	log.Info("Current stylesheet selected", zap.String("path", current))
	return nil
}
