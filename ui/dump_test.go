package ui

import (
	"strings"
	"testing"
)

func TestDump(t *testing.T) {
	root := NewNode("Canvas", &LayoutGroup{Padding: Offsets{Left: 1, Right: 2, Top: 3, Bottom: 4}}).Add(
		NewNode("Title", NewText("Hi"), &ClassList{Names: "big"}),
	)

	want := `Canvas
  #LayoutGroup padding=3 2 4 1
  Title
    #Text size=14 style=normal align=upper-left spacing=1 rich=true color=#000000ff
      text: "Hi"
    #ClassList "big"
`
	if got := Dump(root); got != want {
		t.Errorf("Dump() mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
	if Dump(nil) != "" {
		t.Error("expected empty dump for nil root")
	}
}

func TestDump_ScrollRect(t *testing.T) {
	root := NewNode("List", &ScrollRect{Horizontal: true, Clip: true})
	if got := Dump(root); !strings.Contains(got, "overflow=scroll-x") {
		t.Errorf("unexpected dump %q", got)
	}
}
