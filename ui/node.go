// Package ui is a minimal retained UI tree styled by the engine: named nodes
// carrying ordered components.
package ui

import (
	"slices"

	"ucss/style"
)

// Component is attached to a node. Kinds lists type names the component is
// assignable to, most specific first.
type Component interface {
	Kinds() []string
}

// Node is a named element of the tree.
type Node struct {
	name       string
	components []Component
	children   []*Node
	parent     *Node
	inspector  style.Inspector
}

// NewNode creates detached node with components.
func NewNode(name string, components ...Component) *Node {
	return &Node{name: name, components: components}
}

func (n *Node) Name() string {
	return n.name
}

// Component returns the first component assignable to kind.
func (n *Node) Component(kind string) (any, bool) {
	for _, c := range n.components {
		if slices.Contains(c.Kinds(), kind) {
			return c, true
		}
	}
	return nil, false
}

// Components returns components in attachment order.
func (n *Node) Components() []Component {
	return slices.Clone(n.components)
}

// AddComponent attaches c to the node.
func (n *Node) AddComponent(c Component) {
	n.components = append(n.components, c)
}

// Add appends children, re-parenting them if necessary, and returns n.
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		if c == nil {
			continue
		}
		if c.parent != nil {
			c.parent.remove(c)
		}
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

func (n *Node) remove(c *Node) {
	n.children = slices.DeleteFunc(n.children, func(x *Node) bool { return x == c })
	c.parent = nil
}

// Children implements style.Node.
func (n *Node) Children() []style.Node {
	nodes := make([]style.Node, 0, len(n.children))
	for _, c := range n.children {
		nodes = append(nodes, c)
	}
	return nodes
}

// Nodes returns direct children.
func (n *Node) Nodes() []*Node {
	return slices.Clone(n.children)
}

func (n *Node) Parent() *Node {
	return n.parent
}

// Inspector implements style.Node.
func (n *Node) Inspector() *style.Inspector {
	return &n.inspector
}

// Walk visits n and its descendants depth first, pre-order. Returning false
// from fn stops the walk.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) bool {
	if !fn(n, depth) {
		return false
	}
	for _, c := range n.children {
		if !c.walk(fn, depth+1) {
			return false
		}
	}
	return true
}

// Find returns the first node named name in depth first order, n itself
// included.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(func(node *Node, _ int) bool {
		if node.name == name {
			found = node
			return false
		}
		return true
	})
	return found
}

// Path returns slash separated names from the tree root to n.
func (n *Node) Path() string {
	if n.parent == nil {
		return n.name
	}
	return n.parent.Path() + "/" + n.name
}
