package css

//go:generate go tool go-enum --marshal --names

// What a selector condition is tested against.
// ENUM(name, component, class)
type TargetKind int

// Primitive kind of a resolved property value.
// ENUM(keyword, number, string, color)
type ValueKind int
