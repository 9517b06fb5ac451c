package style

import (
	"slices"
	"strings"

	"ucss/css"
)

// ClassListKind is the component type carrying class tags of a node.
const ClassListKind = "ClassList"

// Node is a single element of the host UI tree.
type Node interface {
	Name() string
	// Component returns component attached to the node which is assignable to
	// the type named kind. Host decides what "assignable" means.
	Component(kind string) (any, bool)
	Children() []Node
	// Inspector returns application record of the node or nil if host does
	// not want one.
	Inspector() *Inspector
}

// ClassTag is implemented by the ClassList component.
type ClassTag interface {
	// Classes returns whitespace separated class names.
	Classes() string
}

// Matches reports whether all conditions hold for n. Empty conditions match
// any node. Matches never modifies the node.
func Matches(n Node, conds []css.Condition) bool {
	for _, c := range conds {
		if !matchCondition(n, c) {
			return false
		}
	}
	return true
}

func matchCondition(n Node, c css.Condition) bool {
	switch c.Target {
	case css.TargetKindName:
		return n.Name() == c.Name
	case css.TargetKindComponent:
		_, ok := n.Component(c.Name)
		return ok
	case css.TargetKindClass:
		return HasClass(n, c.Name)
	default:
		return false
	}
}

// HasClass reports whether node class list contains class exactly.
func HasClass(n Node, class string) bool {
	comp, ok := n.Component(ClassListKind)
	if !ok {
		return false
	}
	tag, ok := comp.(ClassTag)
	if !ok {
		return false
	}
	return slices.Contains(strings.Fields(tag.Classes()), class)
}
