// Package session implements program commands: it ties scene, stylesheet,
// engine and preferences together for a single program run.
package session

import (
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"ucss/css"
	"ucss/state"
	"ucss/style"
	"ucss/ui"
	"ucss/ui/modifiers"
)

// BuiltIn names embedded scene and stylesheet in logs and dumps.
const BuiltIn = "built-in"

func newEngine(env *state.LocalEnv) (*style.Engine, error) {
	engine, err := style.New(env.Log, modifiers.Defaults()...)
	if err != nil {
		return nil, fmt.Errorf("unable to create style engine: %w", err)
	}
	return engine, nil
}

// loadScene loads scene from path, configured scene or embedded default in
// that order.
func loadScene(env *state.LocalEnv, log *zap.Logger, path string) (*ui.Node, error) {
	if path == "" {
		path = env.Cfg.Styling.Scene
	}
	if path == "" {
		log.Debug("Using scene", zap.String("scene", BuiltIn))
		return ui.ParseScene(env.DefaultScene, ui.FormatYAML)
	}
	log.Debug("Using scene", zap.String("scene", path))
	scene, err := ui.LoadScene(path)
	if err != nil {
		return nil, err
	}
	env.Rpt.Store("scene/"+filepath.Base(path), path)
	return scene, nil
}

// rootFunc looks up styled root by name every time it is called, so
// renamed or replaced nodes are picked up.
func rootFunc(scene *ui.Node, name string) func() style.Node {
	return func() style.Node {
		if n := scene.Find(name); n != nil {
			return n
		}
		return nil
	}
}

// currentStylesheet returns remembered stylesheet or configured one.
func currentStylesheet(env *state.LocalEnv) (string, error) {
	store, err := env.OpenPrefs()
	if err != nil {
		return "", err
	}
	path, err := store.CurrentStylesheet()
	if err != nil {
		return "", err
	}
	if path == "" {
		path = env.Cfg.Styling.Stylesheet
	}
	return path, nil
}

// stylesheetSource makes preferences with configuration fallback usable by
// refresher.
type stylesheetSource struct {
	env *state.LocalEnv
}

func (s stylesheetSource) CurrentStylesheet() (string, error) {
	path, err := currentStylesheet(s.env)
	if err != nil || path == "" {
		return path, err
	}
	return filepath.Abs(path)
}

// loadStylesheet applies file or, when path is empty, embedded stylesheet.
func loadStylesheet(env *state.LocalEnv, log *zap.Logger, engine *style.Engine, root style.Node, path string) error {
	if path == "" {
		log.Info("No stylesheet selected, using default", zap.String("stylesheet", BuiltIn))
		return engine.Load(root, env.DefaultStylesheet, BuiltIn)
	}
	keepCopy(env, log, path)
	return engine.LoadFile(root, path)
}

// keepCopy puts stylesheet as it is now into debug report.
func keepCopy(env *state.LocalEnv, log *zap.Logger, path string) {
	if err := env.Rpt.StoreCopy("stylesheets/"+filepath.Base(path), path); err != nil {
		log.Warn("Unable to store stylesheet in report", zap.String("path", path), zap.Error(err))
	}
}

// parseErrorFields adds source context of parse errors to log entries.
func parseErrorFields(err error) []zap.Field {
	var pe *css.ParseError
	if !errors.As(err, &pe) {
		return nil
	}
	return []zap.Field{zap.Int("line", pe.Line), zap.Int("column", pe.Column), zap.String("context", pe.Context)}
}
