package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"ucss/css"
	"ucss/state"
)

// Check parses stylesheet without applying it and prints normalized text.
func Check(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("check")

	path := cmd.Args().Get(0)
	if len(path) == 0 {
		return errors.New("no stylesheet has been specified")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read stylesheet: %w", err)
	}
	keepCopy(env, log, path)

	sheet, err := css.NewParser(env.Log).Parse(data, path)
	if err != nil {
		log.Error("Stylesheet is malformed", append(parseErrorFields(err), zap.String("path", path))...)
		return err
	}
	log.Info("Stylesheet is valid",
		zap.String("path", path),
		zap.Int("values", sheet.Values.Len()),
		zap.Int("definitions", len(sheet.Definitions)))

	if cmd.Bool("quiet") {
		return nil
	}
	if sel := cmd.String("selector"); len(sel) > 0 {
		return writeSelected(log, cmd.Root().Writer, sheet, sel)
	}
	_, err = sheet.WriteTo(cmd.Root().Writer)
	return err
}

// writeSelected outputs only definitions with selector sel, which is
// normalized the same way stylesheet selectors are.
func writeSelected(log *zap.Logger, out io.Writer, sheet *css.Stylesheet, sel string) error {
	parsed, err := css.NewParser(nil).Parse([]byte(sel + " {}"))
	if err != nil {
		return fmt.Errorf("malformed selector %q: %w", sel, err)
	}
	if len(parsed.Definitions) != 1 {
		return fmt.Errorf("expected single selector, got %q", sel)
	}
	sel = parsed.Definitions[0].Selector

	defs := sheet.DefinitionsBySelector(sel)
	if len(defs) == 0 {
		log.Warn("No definitions with selector", zap.String("selector", sel))
		return nil
	}
	for i, d := range defs {
		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
		if _, err := d.WriteTo(out); err != nil {
			return err
		}
	}
	return nil
}
