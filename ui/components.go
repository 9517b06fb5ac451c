package ui

import (
	"fmt"
)

// Component type names used in selectors (#Text) and by modifiers.
const (
	KindGraphic         = "Graphic"
	KindMaskableGraphic = "MaskableGraphic"
	KindImage           = "Image"
	KindText            = "Text"
	KindShadow          = "Shadow"
	KindOutline         = "Outline"
	KindLayoutGroup     = "LayoutGroup"
	KindScrollRect      = "ScrollRect"
	KindClassList       = "ClassList"
)

// Colorable is implemented by everything drawn with a single tint.
type Colorable interface {
	SetColor(c Color)
}

// Graphic is the base of all drawable components.
type Graphic struct {
	Color Color
}

func NewGraphic() *Graphic {
	return &Graphic{Color: White}
}

func (g *Graphic) Kinds() []string  { return []string{KindGraphic} }
func (g *Graphic) SetColor(c Color) { g.Color = c }

// Image draws a sprite.
type Image struct {
	Graphic
	Sprite string
}

func NewImage(sprite string) *Image {
	return &Image{Graphic: Graphic{Color: White}, Sprite: sprite}
}

func (i *Image) Kinds() []string {
	return []string{KindImage, KindMaskableGraphic, KindGraphic}
}

// Text draws a string.
type Text struct {
	Graphic
	Content     string
	FontSize    int
	FontStyle   FontStyle
	Alignment   TextAnchor
	LineSpacing float64
	RichText    bool
}

func NewText(content string) *Text {
	return &Text{
		Graphic:     Graphic{Color: Black},
		Content:     content,
		FontSize:    14,
		Alignment:   TextAnchorUpperLeft,
		LineSpacing: 1,
		RichText:    true,
	}
}

func (t *Text) Kinds() []string {
	return []string{KindText, KindMaskableGraphic, KindGraphic}
}

// Vector2 is a 2D offset.
type Vector2 struct {
	X, Y float64
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// ShadowEffect is implemented by drop shadow like effects.
type ShadowEffect interface {
	SetEffectColor(c Color)
	SetEffectDistance(d Vector2)
}

// Shadow draws a copy of graphic shifted by distance.
type Shadow struct {
	EffectColor    Color
	EffectDistance Vector2
}

func NewShadow() *Shadow {
	return &Shadow{EffectColor: Color{0, 0, 0, 0.5}, EffectDistance: Vector2{1, -1}}
}

func (s *Shadow) Kinds() []string             { return []string{KindShadow} }
func (s *Shadow) SetEffectColor(c Color)      { s.EffectColor = c }
func (s *Shadow) SetEffectDistance(d Vector2) { s.EffectDistance = d }

// Outline is a shadow drawn in all four directions.
type Outline struct {
	Shadow
}

func NewOutline() *Outline {
	return &Outline{Shadow: *NewShadow()}
}

func (o *Outline) Kinds() []string {
	return []string{KindOutline, KindShadow}
}

// Offsets are paddings of a layout group in pixels.
type Offsets struct {
	Left, Right, Top, Bottom int
}

func (o Offsets) String() string {
	return fmt.Sprintf("%d %d %d %d", o.Top, o.Right, o.Bottom, o.Left)
}

// LayoutGroup arranges children.
type LayoutGroup struct {
	Padding Offsets
}

func (l *LayoutGroup) Kinds() []string { return []string{KindLayoutGroup} }

// ScrollRect is a scrollable viewport.
type ScrollRect struct {
	Horizontal bool
	Vertical   bool
	Clip       bool
}

func (s *ScrollRect) Kinds() []string { return []string{KindScrollRect} }

// SetOverflow configures scrolling and clipping.
func (s *ScrollRect) SetOverflow(o Overflow) error {
	switch o {
	case OverflowVisible:
		s.Horizontal, s.Vertical, s.Clip = false, false, false
	case OverflowHidden:
		s.Horizontal, s.Vertical, s.Clip = false, false, true
	case OverflowScroll:
		s.Horizontal, s.Vertical, s.Clip = true, true, true
	case OverflowScrollX:
		s.Horizontal, s.Vertical, s.Clip = true, false, true
	case OverflowScrollY:
		s.Horizontal, s.Vertical, s.Clip = false, true, true
	default:
		return fmt.Errorf("unknown overflow mode %d", o)
	}
	return nil
}

// Overflow reports mode matching current settings.
func (s *ScrollRect) Overflow() Overflow {
	switch {
	case !s.Clip:
		return OverflowVisible
	case s.Horizontal && s.Vertical:
		return OverflowScroll
	case s.Horizontal:
		return OverflowScrollX
	case s.Vertical:
		return OverflowScrollY
	default:
		return OverflowHidden
	}
}

// ClassList carries whitespace separated class names of a node.
type ClassList struct {
	Names string
}

func (c *ClassList) Kinds() []string { return []string{KindClassList} }

// Classes implements style.ClassTag.
func (c *ClassList) Classes() string { return c.Names }
