package modifiers

import (
	"fmt"

	"ucss/css"
	"ucss/style"
	"ucss/ui"
)

// TextSet configures text components.
type TextSet struct{}

func (TextSet) Name() string { return "text" }

func (TextSet) Modifiers() []style.Modifier {
	return []style.Modifier{
		style.Scalar(KeyText, ui.KindText, func(t *ui.Text, v css.Value) error {
			t.Content = v.Text()
			return nil
		}),
		style.Scalar(KeyFontSize, ui.KindText, func(t *ui.Text, v css.Value) error {
			size, err := v.Int()
			if err != nil {
				return err
			}
			if size <= 0 {
				return fmt.Errorf("font size must be positive, got %d", size)
			}
			t.FontSize = size
			return nil
		}),
		style.Scalar(KeyFontStyle, ui.KindText, func(t *ui.Text, v css.Value) error {
			fs, err := ui.ParseFontStyle(v.Text())
			if err != nil {
				return err
			}
			t.FontStyle = fs
			return nil
		}),
		style.Scalar(KeyTextAlign, ui.KindText, func(t *ui.Text, v css.Value) error {
			a, err := ui.ParseTextAnchor(v.Text())
			if err != nil {
				return err
			}
			t.Alignment = a
			return nil
		}),
		style.Scalar(KeyLineSpacing, ui.KindText, func(t *ui.Text, v css.Value) error {
			f, err := v.Float()
			if err != nil {
				return err
			}
			t.LineSpacing = f
			return nil
		}),
		style.Scalar(KeyRichText, ui.KindText, func(t *ui.Text, v css.Value) error {
			b, err := v.Bool()
			if err != nil {
				return err
			}
			t.RichText = b
			return nil
		}),
	}
}
