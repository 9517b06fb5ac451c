package modifiers

import (
	"fmt"

	"ucss/css"
	"ucss/style"
	"ucss/ui"
)

// PaddingSet configures layout group paddings.
type PaddingSet struct{}

func (PaddingSet) Name() string { return "padding" }

func (PaddingSet) Modifiers() []style.Modifier {
	side := func(key string, set func(o *ui.Offsets, v int)) style.Modifier {
		return style.Scalar(key, ui.KindLayoutGroup, func(l *ui.LayoutGroup, v css.Value) error {
			n, err := v.Int()
			if err != nil {
				return err
			}
			set(&l.Padding, n)
			return nil
		})
	}
	return []style.Modifier{
		style.Array(KeyPadding, ui.KindLayoutGroup, func(l *ui.LayoutGroup, vals []css.Value) error {
			o, err := parseOffsets(vals)
			if err != nil {
				return err
			}
			l.Padding = o
			return nil
		}),
		side(KeyPaddingTop, func(o *ui.Offsets, v int) { o.Top = v }),
		side(KeyPaddingRight, func(o *ui.Offsets, v int) { o.Right = v }),
		side(KeyPaddingBottom, func(o *ui.Offsets, v int) { o.Bottom = v }),
		side(KeyPaddingLeft, func(o *ui.Offsets, v int) { o.Left = v }),
	}
}

// parseOffsets follows CSS shorthand: all, vertical horizontal,
// top horizontal bottom, top right bottom left.
func parseOffsets(vals []css.Value) (ui.Offsets, error) {
	if len(vals) < 1 || len(vals) > 4 {
		return ui.Offsets{}, fmt.Errorf("padding requires 1 to 4 values, got %d", len(vals))
	}
	n := make([]int, len(vals))
	for i, v := range vals {
		x, err := v.Int()
		if err != nil {
			return ui.Offsets{}, err
		}
		n[i] = x
	}
	switch len(n) {
	case 1:
		return ui.Offsets{Top: n[0], Right: n[0], Bottom: n[0], Left: n[0]}, nil
	case 2:
		return ui.Offsets{Top: n[0], Right: n[1], Bottom: n[0], Left: n[1]}, nil
	case 3:
		return ui.Offsets{Top: n[0], Right: n[1], Bottom: n[2], Left: n[1]}, nil
	default:
		return ui.Offsets{Top: n[0], Right: n[1], Bottom: n[2], Left: n[3]}, nil
	}
}

// OverflowSet configures scroll rectangles.
type OverflowSet struct{}

func (OverflowSet) Name() string { return "overflow" }

func (OverflowSet) Modifiers() []style.Modifier {
	return []style.Modifier{
		style.Scalar(KeyOverflow, ui.KindScrollRect, func(s *ui.ScrollRect, v css.Value) error {
			o, err := ui.ParseOverflow(v.Text())
			if err != nil {
				return err
			}
			return s.SetOverflow(o)
		}),
	}
}
