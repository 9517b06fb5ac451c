package style_test

import (
	"fmt"
	"testing"

	"ucss/css"
	"ucss/style"
)

type testNode struct {
	name     string
	comps    map[string]any
	children []style.Node
	insp     style.Inspector
	noInsp   bool
}

func newNode(name string, comps map[string]any, children ...*testNode) *testNode {
	n := &testNode{name: name, comps: comps}
	for _, c := range children {
		n.children = append(n.children, c)
	}
	return n
}

func (n *testNode) Name() string { return n.name }

func (n *testNode) Component(kind string) (any, bool) {
	c, ok := n.comps[kind]
	return c, ok
}

func (n *testNode) Children() []style.Node { return n.children }

func (n *testNode) Inspector() *style.Inspector {
	if n.noInsp {
		return nil
	}
	return &n.insp
}

type classList string

func (c classList) Classes() string { return string(c) }

type graphic struct {
	color []float64
	calls int
}

type text struct {
	size  float64
	style string
}

type testSet struct {
	name string
	mods []style.Modifier
}

func (s testSet) Name() string                { return s.name }
func (s testSet) Modifiers() []style.Modifier { return s.mods }

func colorSet() testSet {
	return testSet{name: "color", mods: []style.Modifier{
		style.Array("color", "Graphic", func(g *graphic, vals []css.Value) error {
			g.calls++
			g.color = g.color[:0]
			for _, v := range vals {
				f, err := v.Float()
				if err != nil {
					return err
				}
				g.color = append(g.color, f)
			}
			return nil
		}),
	}}
}

func textSet() testSet {
	return testSet{name: "text", mods: []style.Modifier{
		style.Scalar("font-size", "Text", func(t *text, v css.Value) error {
			f, err := v.Float()
			if err != nil {
				return err
			}
			t.size = f
			return nil
		}),
		style.Scalar("font-style", "Text", func(t *text, v css.Value) error {
			if v.Raw == "explode" {
				panic("boom")
			}
			t.style = v.Raw
			return nil
		}),
	}}
}

func mustEngine(t *testing.T, sets ...style.ModifierSet) *style.Engine {
	t.Helper()
	e, err := style.New(nil, sets...)
	if err != nil {
		t.Fatalf("unexpected error creating engine: %v", err)
	}
	return e
}

func conds(t *testing.T, selector string) []css.Condition {
	t.Helper()
	sheet, err := css.NewParser(nil).Parse(fmt.Appendf(nil, "%s { x: 1; }", selector))
	if err != nil {
		t.Fatalf("bad selector %q: %v", selector, err)
	}
	return sheet.Definitions[0].Conditions
}

func TestMatches(t *testing.T) {
	n := newNode("Title", map[string]any{
		"Text":              &text{},
		style.ClassListKind: classList("big  header"),
	})

	tests := []struct {
		selector string
		want     bool
	}{
		{"*", true},
		{"Title", true},
		{"Subtitle", false},
		{"#Text", true},
		{"#Image", false},
		{".big", true},
		{".header", true},
		{".bi", false},
		{".big-ish", false},
		{"Title#Text.big", true},
		{"Title#Text.small", false},
		{"Other.big", false},
	}
	for _, tt := range tests {
		if got := style.Matches(n, conds(t, tt.selector)); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.selector, got, tt.want)
		}
	}
	if len(n.insp.Applied()) != 0 || !n.insp.Pass().IsZero() {
		t.Error("Matches must not touch inspector")
	}
}

func TestMatches_ClassWithoutClassList(t *testing.T) {
	n := newNode("Title", map[string]any{style.ClassListKind: "not a class tag"})
	if style.Matches(n, conds(t, ".big")) {
		t.Error("expected no match when ClassList does not implement ClassTag")
	}
	if style.HasClass(newNode("Bare", nil), "big") {
		t.Error("expected no class on node without ClassList")
	}
}
