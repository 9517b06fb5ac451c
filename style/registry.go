package style

import (
	"fmt"
	"sort"
	"sync"

	"github.com/maruel/natural"

	"ucss/css"
)

// Modifier applies a property to a component of a node. Exactly one of scalar
// or array handlers is set, use Scalar and Array to construct modifiers.
type Modifier struct {
	Key       string // property key, unique across registry
	Component string // component type handler accepts

	scalar func(component any, v css.Value) error
	array  func(component any, vals []css.Value) error
}

// Scalar makes modifier which receives the first value of the property.
func Scalar[C any](key, component string, fn func(c C, v css.Value) error) Modifier {
	return Modifier{
		Key:       key,
		Component: component,
		scalar: func(comp any, v css.Value) error {
			c, ok := comp.(C)
			if !ok {
				return fmt.Errorf("component %T does not support %q", comp, key)
			}
			return fn(c, v)
		},
	}
}

// Array makes modifier which receives all values of the property.
func Array[C any](key, component string, fn func(c C, vals []css.Value) error) Modifier {
	return Modifier{
		Key:       key,
		Component: component,
		array: func(comp any, vals []css.Value) error {
			c, ok := comp.(C)
			if !ok {
				return fmt.Errorf("component %T does not support %q", comp, key)
			}
			return fn(c, vals)
		},
	}
}

// IsArray reports whether modifier consumes the whole value list.
func (m Modifier) IsArray() bool {
	return m.array != nil
}

func (m Modifier) valid() error {
	if m.Key == "" {
		return fmt.Errorf("modifier has empty key")
	}
	if m.Component == "" {
		return fmt.Errorf("modifier %q has empty component type", m.Key)
	}
	if (m.scalar == nil) == (m.array == nil) {
		return fmt.Errorf("modifier %q must have exactly one handler", m.Key)
	}
	return nil
}

func (m Modifier) invoke(component any, vals []css.Value) error {
	if m.array != nil {
		return m.array(component, vals)
	}
	var v css.Value
	if len(vals) > 0 {
		v = vals[0]
	}
	return m.scalar(component, v)
}

// ModifierSet is a named group of modifiers registered together.
type ModifierSet interface {
	Name() string
	Modifiers() []Modifier
}

// Registry maps property keys to modifiers.
type Registry struct {
	mu     sync.RWMutex
	mods   map[string]Modifier
	owners map[string]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		mods:   make(map[string]Modifier),
		owners: make(map[string]string),
	}
}

// Register adds a single modifier.
func (r *Registry) Register(m Modifier) error {
	if err := m.valid(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.mods[m.Key]; exists {
		return &DuplicateKeyError{Key: m.Key, Existing: r.owners[m.Key]}
	}
	r.mods[m.Key] = m
	return nil
}

// RegisterSet adds all modifiers of the set. Set is registered completely or
// not at all.
func (r *Registry) RegisterSet(set ModifierSet) error {
	mods := set.Modifiers()

	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, len(mods))
	for _, m := range mods {
		if err := m.valid(); err != nil {
			return fmt.Errorf("modifier set %q: %w", set.Name(), err)
		}
		if _, exists := r.mods[m.Key]; exists {
			return &DuplicateKeyError{Key: m.Key, Set: set.Name(), Existing: r.owners[m.Key]}
		}
		if _, exists := seen[m.Key]; exists {
			return &DuplicateKeyError{Key: m.Key, Set: set.Name()}
		}
		seen[m.Key] = struct{}{}
	}
	for _, m := range mods {
		r.mods[m.Key] = m
		r.owners[m.Key] = set.Name()
	}
	return nil
}

// Lookup returns modifier registered for key.
func (r *Registry) Lookup(key string) (Modifier, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.mods[key]
	return m, ok
}

// Owner returns name of the set which registered key, empty for modifiers
// registered one by one.
func (r *Registry) Owner(key string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.owners[key]
}

// Len returns number of registered keys.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.mods)
}

// Keys returns registered keys in natural order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.mods))
	for k := range r.mods {
		keys = append(keys, k)
	}
	sort.Sort(natural.StringSlice(keys))
	return keys
}
