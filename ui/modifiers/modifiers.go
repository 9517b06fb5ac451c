// Package modifiers has property handlers for components of package ui.
package modifiers

import (
	"fmt"

	"ucss/css"
	"ucss/style"
	"ucss/ui"
)

// Defaults returns all modifier sets for ui components.
func Defaults() []style.ModifierSet {
	return []style.ModifierSet{
		ColorSet{},
		TextSet{},
		OutlineSet{},
		ShadowSet{},
		PaddingSet{},
		OverflowSet{},
	}
}

// ParseColor converts property values to color. Accepted forms are a hash
// literal, a color name, or 3 to 4 channel numbers in 0..1 range (percentages
// are scaled).
func ParseColor(vals []css.Value) (ui.Color, error) {
	switch len(vals) {
	case 0:
		return ui.Color{}, fmt.Errorf("color requires a value")
	case 1:
		v := vals[0]
		switch v.Kind {
		case css.ValueKindColor:
			return ui.ParseHexColor(v.Raw)
		case css.ValueKindKeyword, css.ValueKindString:
			if c, ok := ui.NamedColor(v.Text()); ok {
				return c, nil
			}
		}
		return ui.Color{}, fmt.Errorf("unknown color %q", v.Raw)
	case 3, 4:
		ch := make([]float64, 4)
		ch[3] = 1
		for i, v := range vals {
			f, err := channel(v)
			if err != nil {
				return ui.Color{}, err
			}
			ch[i] = f
		}
		return ui.Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
	default:
		return ui.Color{}, fmt.Errorf("color requires 1, 3 or 4 values, got %d", len(vals))
	}
}

func channel(v css.Value) (float64, error) {
	f, err := v.Float()
	if err != nil {
		return 0, err
	}
	if v.Unit == "%" {
		f /= 100
	}
	if f < 0 || f > 1 {
		return 0, fmt.Errorf("color channel %s is out of 0..1 range", v.Raw)
	}
	return f, nil
}

// parseVector2 reads one or two numbers, single number is used for both axes.
func parseVector2(vals []css.Value) (ui.Vector2, error) {
	if len(vals) < 1 || len(vals) > 2 {
		return ui.Vector2{}, fmt.Errorf("distance requires 1 or 2 values, got %d", len(vals))
	}
	x, err := vals[0].Float()
	if err != nil {
		return ui.Vector2{}, err
	}
	y := x
	if len(vals) == 2 {
		if y, err = vals[1].Float(); err != nil {
			return ui.Vector2{}, err
		}
	}
	return ui.Vector2{X: x, Y: y}, nil
}

// ColorSet tints graphics.
type ColorSet struct{}

func (ColorSet) Name() string { return "color" }

func (ColorSet) Modifiers() []style.Modifier {
	return []style.Modifier{
		style.Array(KeyColor, ui.KindGraphic, func(g ui.Colorable, vals []css.Value) error {
			c, err := ParseColor(vals)
			if err != nil {
				return err
			}
			g.SetColor(c)
			return nil
		}),
	}
}
