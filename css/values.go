package css

import (
	"slices"
	"sort"
)

// Values is the table of named values declared with "name = value;".
// A table lives for a single parse and is reset before the next one.
type Values struct {
	vars map[string][]Value
}

// NewValues creates an empty table.
func NewValues() *Values {
	return &Values{vars: make(map[string][]Value)}
}

// Set stores values under name, replacing any previous entry.
func (t *Values) Set(name string, vals []Value) {
	if t.vars == nil {
		t.vars = make(map[string][]Value)
	}
	t.vars[name] = slices.Clone(vals)
}

// Get returns a copy of the values stored under name.
func (t *Values) Get(name string) ([]Value, bool) {
	vals, ok := t.vars[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(vals), true
}

// Has reports whether name is declared.
func (t *Values) Has(name string) bool {
	_, ok := t.vars[name]
	return ok
}

// Len returns the number of named values.
func (t *Values) Len() int {
	return len(t.vars)
}

// Names returns all names sorted.
func (t *Values) Names() []string {
	names := make([]string, 0, len(t.vars))
	for name := range t.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
