package css_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"ucss/css"
)

func TestStylesheet_WriteTo(t *testing.T) {
	sheet := mustParse(t, `
gap = 4px;
accent = 0.2,0.4,0.9,1;
Title,.big{color:accent;font-size:18}
"Button (1)" #Text { text: "Hi \"there\""; }
`)

	want := `accent = 0.2, 0.4, 0.9, 1;
gap = 4px;

Title {
  color: 0.2, 0.4, 0.9, 1;
  font-size: 18;
}

.big {
  color: 0.2, 0.4, 0.9, 1;
  font-size: 18;
}

"Button (1)"#Text {
  text: "Hi \"there\"";
}
`
	if got := sheet.String(); got != want {
		t.Errorf("unexpected normalized output:\n%s\nwant:\n%s", got, want)
	}
}

func TestStylesheet_WriteToReparses(t *testing.T) {
	sheet := mustParse(t, `
accent = 1, 0, 0, 1;
* { color: white; }
Panel#Image.big { color: accent; padding: 2 4; }
`)

	var sb strings.Builder
	if _, err := sheet.WriteTo(&sb); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	again, err := css.NewParser(zap.NewNop()).Parse([]byte(sb.String()))
	if err != nil {
		t.Fatalf("normalized output does not parse: %v\n%s", err, sb.String())
	}

	ignoreLines := cmp.FilterPath(func(p cmp.Path) bool {
		last := p.Last().String()
		return last == ".SourceLine" || last == ".Source"
	}, cmp.Ignore())
	if diff := cmp.Diff(sheet.Definitions, again.Definitions, ignoreLines); diff != "" {
		t.Errorf("definitions changed after round trip (-before +after):\n%s", diff)
	}
}

func TestStylesheet_DefinitionsBySelector(t *testing.T) {
	sheet := mustParse(t, `
Title { font-size: 12; }
.big { font-size: 30; }
Title { color: red; }
`)
	defs := sheet.DefinitionsBySelector("Title")
	if len(defs) != 2 {
		t.Fatalf("expected 2 definitions, got %d", len(defs))
	}
	if _, ok := defs[1].Property("color"); !ok {
		t.Error("expected second Title definition to carry color")
	}
	if len(sheet.DefinitionsBySelector("Missing")) != 0 {
		t.Error("expected no definitions for unknown selector")
	}
}

func TestDefinition_PropertyLastWins(t *testing.T) {
	sheet := mustParse(t, `Title { font-size: 12; font-size: 14; }`)

	prop, ok := sheet.Definitions[0].Property("font-size")
	if !ok {
		t.Fatal("expected font-size property")
	}
	if prop.First().Number != 14 {
		t.Errorf("expected last assignment to win, got %v", prop.First().Number)
	}
}

func TestCondition_String(t *testing.T) {
	tests := []struct {
		cond css.Condition
		want string
	}{
		{css.Condition{Target: css.TargetKindName, Name: "Title"}, "Title"},
		{css.Condition{Target: css.TargetKindName, Name: "Button (1)"}, `"Button (1)"`},
		{css.Condition{Target: css.TargetKindName, Name: "3d"}, `"3d"`},
		{css.Condition{Target: css.TargetKindComponent, Name: "Image"}, "#Image"},
		{css.Condition{Target: css.TargetKindClass, Name: "big"}, ".big"},
	}
	for _, tt := range tests {
		if got := tt.cond.String(); got != tt.want {
			t.Errorf("Condition%+v.String() = %q, want %q", tt.cond, got, tt.want)
		}
	}
}

func TestValue_Conversions(t *testing.T) {
	sheet := mustParse(t, `X { a: 2.6px on "q\"s" off bold; }`)
	vals := sheet.Definitions[0].Properties[0].Values

	if n, err := vals[0].Int(); err != nil || n != 3 {
		t.Errorf("Int() = %d, %v; want 3", n, err)
	}
	if b, err := vals[1].Bool(); err != nil || !b {
		t.Errorf("Bool(on) = %v, %v; want true", b, err)
	}
	if s := vals[2].Text(); s != `q"s` {
		t.Errorf("Text() = %q, want %q", s, `q"s`)
	}
	if b, err := vals[3].Bool(); err != nil || b {
		t.Errorf("Bool(off) = %v, %v; want false", b, err)
	}
	if _, err := vals[4].Bool(); err == nil {
		t.Error("expected error converting 'bold' to boolean")
	}
	if _, err := vals[4].Float(); err == nil {
		t.Error("expected error converting 'bold' to number")
	}
	if s := vals[4].Text(); s != "bold" {
		t.Errorf("Text() of keyword = %q", s)
	}
}

func TestValues_Isolation(t *testing.T) {
	values := css.NewValues()
	src := []css.Value{{Raw: "1", Kind: css.ValueKindNumber, Number: 1}}
	values.Set("one", src)
	src[0].Number = 42

	got, ok := values.Get("one")
	if !ok || got[0].Number != 1 {
		t.Fatalf("expected stored copy to be unaffected, got %+v", got)
	}
	got[0].Number = 7
	again, _ := values.Get("one")
	if again[0].Number != 1 {
		t.Error("expected Get to return a copy")
	}

	values.Set("two", nil)
	if diff := cmp.Diff([]string{"one", "two"}, values.Names()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
}
