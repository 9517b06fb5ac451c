package modifiers

// Property keys.
const (
	KeyColor = "color"

	KeyText        = "text"
	KeyFontSize    = "font-size"
	KeyFontStyle   = "font-style"
	KeyTextAlign   = "text-align"
	KeyLineSpacing = "line-spacing"
	KeyRichText    = "rich-text"

	KeyOutlineColor    = "outline-color"
	KeyOutlineDistance = "outline-distance"
	KeyShadowColor     = "shadow-color"
	KeyShadowDistance  = "shadow-distance"

	KeyPadding       = "padding"
	KeyPaddingTop    = "padding-top"
	KeyPaddingRight  = "padding-right"
	KeyPaddingBottom = "padding-bottom"
	KeyPaddingLeft   = "padding-left"

	KeyOverflow = "overflow"
)
