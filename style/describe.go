package style

import (
	"ucss/utils/debug"
)

// Describe returns indented dump of the tree under root listing definitions
// the latest pass applied to every node. Inspectors are only read while the
// engine is locked.
func (e *Engine) Describe(root Node) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	tw := debug.NewTreeWriter()
	if root != nil {
		describeNode(tw, root, e.pass, 0)
	}
	return tw.String()
}

func describeNode(tw *debug.TreeWriter, n Node, pass Pass, depth int) {
	tw.Line(depth, "%s", n.Name())
	if insp := n.Inspector(); insp != nil && !pass.IsZero() && insp.Pass().ID == pass.ID {
		for _, def := range insp.Applied() {
			tw.Line(depth+1, "<- %s (line %d)", def.Selector, def.SourceLine)
		}
	}
	for _, child := range n.Children() {
		if child != nil {
			describeNode(tw, child, pass, depth+1)
		}
	}
}
