// Package state defines shared program state.
package state

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"ucss/config"
	"ucss/prefs"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg   *config.Config
	Rpt   *config.Report
	Log   *zap.Logger
	Prefs *prefs.Store

	// used when nothing else is available
	DefaultStylesheet []byte
	DefaultScene      []byte

	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// OpenPrefs opens preferences database from configuration on first use.
func (e *LocalEnv) OpenPrefs() (*prefs.Store, error) {
	if e.Prefs != nil {
		return e.Prefs, nil
	}
	if e.Cfg == nil {
		return nil, fmt.Errorf("unable to open preferences: configuration is not loaded")
	}
	store, err := prefs.Open(e.Cfg.Prefs.Path, e.Log)
	if err != nil {
		return nil, err
	}
	e.Prefs = store
	return store, nil
}

// ClosePrefs closes preferences database if it was opened.
func (e *LocalEnv) ClosePrefs() error {
	if e.Prefs == nil {
		return nil
	}
	err := e.Prefs.Close()
	e.Prefs = nil
	return err
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}
