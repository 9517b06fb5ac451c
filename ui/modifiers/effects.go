package modifiers

import (
	"ucss/css"
	"ucss/style"
	"ucss/ui"
)

// OutlineSet configures outlines only.
type OutlineSet struct{}

func (OutlineSet) Name() string { return "outline" }

func (OutlineSet) Modifiers() []style.Modifier {
	return []style.Modifier{
		style.Array(KeyOutlineColor, ui.KindOutline, func(o *ui.Outline, vals []css.Value) error {
			return setEffectColor(o, vals)
		}),
		style.Array(KeyOutlineDistance, ui.KindOutline, func(o *ui.Outline, vals []css.Value) error {
			return setEffectDistance(o, vals)
		}),
	}
}

// ShadowSet configures shadows, outlines are shadows too.
type ShadowSet struct{}

func (ShadowSet) Name() string { return "shadow" }

func (ShadowSet) Modifiers() []style.Modifier {
	return []style.Modifier{
		style.Array(KeyShadowColor, ui.KindShadow, setEffectColor),
		style.Array(KeyShadowDistance, ui.KindShadow, setEffectDistance),
	}
}

func setEffectColor(e ui.ShadowEffect, vals []css.Value) error {
	c, err := ParseColor(vals)
	if err != nil {
		return err
	}
	e.SetEffectColor(c)
	return nil
}

func setEffectDistance(e ui.ShadowEffect, vals []css.Value) error {
	d, err := parseVector2(vals)
	if err != nil {
		return err
	}
	e.SetEffectDistance(d)
	return nil
}
