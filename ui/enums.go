package ui

//go:generate go tool go-enum --marshal --names

// ENUM(normal, bold, italic, bold-italic)
type FontStyle int

// Text alignment inside its rectangle.
// ENUM(upper-left, upper-center, upper-right, middle-left, middle-center, middle-right, lower-left, lower-center, lower-right)
type TextAnchor int

// How ScrollRect treats content outside of its viewport.
// ENUM(visible, hidden, scroll, scroll-x, scroll-y)
type Overflow int
