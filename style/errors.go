package style

import (
	"errors"
	"fmt"
)

var (
	// ErrNotLoaded is returned when applying before any stylesheet was parsed.
	ErrNotLoaded = errors.New("stylesheet is not loaded")
	// ErrNoRoot is returned when there is no tree to apply styles to.
	ErrNoRoot = errors.New("root node is not available")
)

// DuplicateKeyError is returned when a modifier key is registered twice.
type DuplicateKeyError struct {
	Key      string
	Set      string // set being registered, may be empty
	Existing string // set which owns the key already, may be empty
}

func (e *DuplicateKeyError) Error() string {
	switch {
	case e.Set != "" && e.Existing != "":
		return fmt.Sprintf("modifier key %q from set %q is already registered by set %q", e.Key, e.Set, e.Existing)
	case e.Set != "":
		return fmt.Sprintf("modifier key %q is registered twice in set %q", e.Key, e.Set)
	default:
		return fmt.Sprintf("modifier key %q is already registered", e.Key)
	}
}

// HandlerError reports failed (or panicked) modifier invocation. It aborts the
// application pass, changes made before it stay in place.
type HandlerError struct {
	Key       string
	Component string
	Node      string
	Selector  string
	Line      int
	Err       error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("unable to apply %q to %s of node %q (selector %s, line %d): %v",
		e.Key, e.Component, e.Node, e.Selector, e.Line, e.Err)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}
