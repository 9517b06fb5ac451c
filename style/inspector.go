package style

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"ucss/css"
)

// Pass identifies a single application pass over the tree.
type Pass struct {
	ID uuid.UUID
	At time.Time
}

func newPass() Pass {
	return Pass{ID: uuid.Must(uuid.NewV7()), At: time.Now()}
}

// IsZero reports whether pass is unset.
func (p Pass) IsZero() bool {
	return p.ID == uuid.Nil
}

// Inspector keeps definitions applied to a node during the most recent pass
// which touched it. Zero value is ready to use.
type Inspector struct {
	pass    Pass
	applied []*css.Definition
}

// touch drops records of any other pass.
func (i *Inspector) touch(pass Pass) {
	if i.pass.ID == pass.ID {
		return
	}
	i.pass = pass
	i.applied = i.applied[:0]
}

func (i *Inspector) record(pass Pass, def *css.Definition) {
	i.touch(pass)
	i.applied = append(i.applied, def)
}

// Pass returns identity of the pass which produced current records.
func (i *Inspector) Pass() Pass {
	return i.pass
}

// Applied returns definitions applied to the node in application order.
func (i *Inspector) Applied() []*css.Definition {
	return slices.Clone(i.applied)
}

// Selectors returns selectors of applied definitions.
func (i *Inspector) Selectors() []string {
	sels := make([]string, 0, len(i.applied))
	for _, d := range i.applied {
		sels = append(sels, d.Selector)
	}
	return sels
}
