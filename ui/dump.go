package ui

import (
	"ucss/utils/debug"
)

// Dump returns indented text of the tree under root: components with their
// current state and selectors applied by the latest pass touching each node.
func Dump(root *Node) string {
	tw := debug.NewTreeWriter()
	if root == nil {
		return ""
	}
	root.Walk(func(n *Node, depth int) bool {
		tw.Line(depth, "%s", n.Name())
		for _, c := range n.components {
			dumpComponent(tw, depth+1, c)
		}
		tw.List(depth+1, "applied", n.inspector.Selectors())
		return true
	})
	return tw.String()
}

func dumpComponent(tw *debug.TreeWriter, depth int, c Component) {
	switch v := c.(type) {
	case *Image:
		tw.Line(depth, "#Image sprite=%q color=%s", v.Sprite, v.Color.Hex())
	case *Text:
		tw.Line(depth, "#Text size=%d style=%s align=%s spacing=%g rich=%t color=%s",
			v.FontSize, v.FontStyle, v.Alignment, v.LineSpacing, v.RichText, v.Color.Hex())
		tw.TextBlock(depth+1, "text", v.Content)
	case *Graphic:
		tw.Line(depth, "#Graphic color=%s", v.Color.Hex())
	case *Outline:
		tw.Line(depth, "#Outline color=%s distance=%s", v.EffectColor.Hex(), v.EffectDistance)
	case *Shadow:
		tw.Line(depth, "#Shadow color=%s distance=%s", v.EffectColor.Hex(), v.EffectDistance)
	case *LayoutGroup:
		tw.Line(depth, "#LayoutGroup padding=%s", v.Padding)
	case *ScrollRect:
		tw.Line(depth, "#ScrollRect overflow=%s", v.Overflow())
	case *ClassList:
		tw.Line(depth, "#ClassList %q", v.Names)
	default:
		tw.Line(depth, "%T", c)
	}
}
