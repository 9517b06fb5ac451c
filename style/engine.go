package style

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"

	"ucss/css"
)

// Engine parses stylesheets and applies them to node trees. All operations
// are serialized, an Engine may be shared between goroutines.
type Engine struct {
	log      *zap.Logger
	parser   *css.Parser
	registry *Registry

	mu       sync.Mutex
	sheet    *css.Stylesheet
	pass     Pass
	hasError bool
	applied  bool
	lastErr  error
}

// New creates engine with all modifier sets registered. Duplicate keys make
// engine unusable and are reported as *DuplicateKeyError.
func New(log *zap.Logger, sets ...ModifierSet) (*Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Engine{
		log:      log.Named("engine"),
		parser:   css.NewParser(log),
		registry: NewRegistry(),
	}
	for _, set := range sets {
		if err := e.registry.RegisterSet(set); err != nil {
			return nil, fmt.Errorf("unable to register modifiers: %w", err)
		}
		e.log.Debug("Registered modifier set", zap.String("set", set.Name()), zap.Int("modifiers", len(set.Modifiers())))
	}
	return e, nil
}

// Registry returns engine modifier registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Load parses data and applies it to the tree under root. When parsing fails
// previously loaded stylesheet is kept. On any error HasError becomes true
// and Applied keeps its value, on success both are reset accordingly.
func (e *Engine) Load(root Node, data []byte, source string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	err := e.load(root, data, source)
	e.finishLoad(source, err)
	return err
}

// LoadFile reads stylesheet from path and loads it.
func (e *Engine) LoadFile(root Node, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		e.mu.Lock()
		defer e.mu.Unlock()

		err = fmt.Errorf("unable to read stylesheet: %w", err)
		e.finishLoad(path, err)
		return err
	}
	return e.Load(root, data, path)
}

func (e *Engine) load(root Node, data []byte, source string) error {
	sheet, err := e.parser.Parse(data, source)
	if err != nil {
		return err
	}
	e.sheet = sheet
	return e.apply(root)
}

func (e *Engine) finishLoad(source string, err error) {
	e.lastErr = err
	if err != nil {
		e.hasError = true
		fields := []zap.Field{zap.String("source", source), zap.Error(err)}
		var pe *css.ParseError
		if errors.As(err, &pe) {
			fields = append(fields, zap.String("context", pe.Context))
		}
		e.log.Error("Unable to load stylesheet", fields...)
		return
	}
	e.hasError = false
	e.applied = true
	e.log.Info("Stylesheet applied",
		zap.String("source", source),
		zap.Int("definitions", len(e.sheet.Definitions)),
		zap.Stringer("pass", e.pass.ID))
}

// Apply runs a new application pass over the tree under root using the
// current stylesheet. Failing modifier aborts the pass leaving nodes visited
// so far modified.
func (e *Engine) Apply(root Node) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.apply(root)
}

func (e *Engine) apply(root Node) error {
	if e.sheet == nil {
		return ErrNotLoaded
	}
	if root == nil {
		return ErrNoRoot
	}
	e.pass = newPass()
	e.log.Debug("Applying stylesheet", zap.String("root", root.Name()), zap.Stringer("pass", e.pass.ID))
	return e.visit(root, e.pass)
}

func (e *Engine) visit(n Node, pass Pass) error {
	insp := n.Inspector()
	if insp != nil {
		insp.touch(pass)
	}
	for _, def := range e.sheet.Definitions {
		if !Matches(n, def.Conditions) {
			continue
		}
		if insp != nil {
			insp.record(pass, def)
		}
		for _, prop := range def.Properties {
			if err := e.dispatch(n, def, prop); err != nil {
				return err
			}
		}
	}
	for _, child := range n.Children() {
		if child == nil {
			continue
		}
		if err := e.visit(child, pass); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) dispatch(n Node, def *css.Definition, prop css.Property) (err error) {
	mod, ok := e.registry.Lookup(prop.Key)
	if !ok {
		e.log.Debug("No modifier for property, skipping", zap.String("key", prop.Key), zap.Int("line", prop.SourceLine))
		return nil
	}
	comp, ok := n.Component(mod.Component)
	if !ok {
		return nil
	}

	fail := func(cause error) error {
		return &HandlerError{
			Key:       prop.Key,
			Component: mod.Component,
			Node:      n.Name(),
			Selector:  def.Selector,
			Line:      prop.SourceLine,
			Err:       cause,
		}
	}
	defer func() {
		if r := recover(); r != nil {
			err = fail(fmt.Errorf("modifier panicked: %v", r))
		}
	}()

	if err := mod.invoke(comp, prop.Values); err != nil {
		return fail(err)
	}
	return nil
}

// HasError reports whether the most recent load failed.
func (e *Engine) HasError() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hasError
}

// Applied reports whether any load succeeded.
func (e *Engine) Applied() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.applied
}

// LastError returns error of the most recent load, nil if it succeeded.
func (e *Engine) LastError() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastErr
}

// Stylesheet returns the current stylesheet, nil before first successful parse.
func (e *Engine) Stylesheet() *css.Stylesheet {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sheet
}

// Values returns named values of the current stylesheet.
func (e *Engine) Values() *css.Values {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sheet == nil {
		return css.NewValues()
	}
	return e.sheet.Values
}

// Pass returns identity of the latest application pass.
func (e *Engine) Pass() Pass {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pass
}
