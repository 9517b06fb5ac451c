package css

import (
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"
)

// cssEscapeDoubleQuoted escapes a string for use inside CSS double quotes.
func cssEscapeDoubleQuoted(s string) string {
	if !strings.ContainsAny(s, `"\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Value represents a single resolved property value.
type Value struct {
	Raw    string    // Source text of the literal (e.g. "14px", "bold", "#ff0000", `"Hi"`)
	Kind   ValueKind // Primitive kind
	Number float64   // Numeric value if Kind is number
	Unit   string    // Unit for numbers: "px", "%", "em" or empty
}

// String returns the source form of the value.
func (v Value) String() string {
	return v.Raw
}

// IsNumeric returns true if the value is a number, with or without unit.
func (v Value) IsNumeric() bool {
	return v.Kind == ValueKindNumber
}

// Float returns numeric value. Units are ignored.
func (v Value) Float() (float64, error) {
	if !v.IsNumeric() {
		return 0, fmt.Errorf("value %q is not a number", v.Raw)
	}
	return v.Number, nil
}

// Int returns numeric value rounded to the nearest integer.
func (v Value) Int() (int, error) {
	f, err := v.Float()
	if err != nil {
		return 0, err
	}
	return int(math.Round(f)), nil
}

// Bool interprets keywords true/false, yes/no, on/off and numbers (non-zero is true).
func (v Value) Bool() (bool, error) {
	switch v.Kind {
	case ValueKindNumber:
		return v.Number != 0, nil
	case ValueKindKeyword:
		switch strings.ToLower(v.Raw) {
		case "true", "yes", "on":
			return true, nil
		case "false", "no", "off":
			return false, nil
		}
	}
	return false, fmt.Errorf("value %q is not a boolean", v.Raw)
}

// Text returns string content: unquoted for strings, as is for everything else.
func (v Value) Text() string {
	if v.Kind == ValueKindString {
		return unquote(v.Raw)
	}
	return v.Raw
}

// Condition is a single selector test.
type Condition struct {
	Target TargetKind
	Name   string
}

// String returns the selector form of the condition.
func (c Condition) String() string {
	switch c.Target {
	case TargetKindComponent:
		return "#" + c.Name
	case TargetKindClass:
		return "." + c.Name
	default:
		if isIdent(c.Name) {
			return c.Name
		}
		return `"` + cssEscapeDoubleQuoted(c.Name) + `"`
	}
}

// Property is a single property assignment inside a definition.
type Property struct {
	Key        string
	Values     []Value
	SourceLine int
}

// First returns the first value of the property, scalar modifiers consume only it.
func (p Property) First() Value {
	if len(p.Values) == 0 {
		return Value{}
	}
	return p.Values[0]
}

func (p Property) valuesString() string {
	parts := make([]string, 0, len(p.Values))
	for _, v := range p.Values {
		parts = append(parts, v.Raw)
	}
	return strings.Join(parts, ", ")
}

// Definition represents a single selector with its property block.
// Definitions are never modified after parsing.
type Definition struct {
	Selector   string      // Normalized selector text
	Conditions []Condition // All must match (empty matches everything)
	Properties []Property  // In source order
	SourceLine int         // Line number in source for error reporting
}

// Property returns the last assignment for key in this definition.
func (d *Definition) Property(key string) (Property, bool) {
	for i := len(d.Properties) - 1; i >= 0; i-- {
		if d.Properties[i].Key == key {
			return d.Properties[i], true
		}
	}
	return Property{}, false
}

func (d *Definition) String() string {
	return d.Selector
}

// selectorString builds normalized selector text from conditions.
func selectorString(conds []Condition) string {
	if len(conds) == 0 {
		return "*"
	}
	var sb strings.Builder
	for i, c := range conds {
		// name conditions need a separator, everything else carries a sigil
		if i > 0 && c.Target == TargetKindName {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}

// Stylesheet is the result of a successful parse.
type Stylesheet struct {
	Source      string        // Where text came from, for diagnostics
	Definitions []*Definition // In application order
	Values      *Values       // Named values collected during parse
}

// DefinitionsBySelector returns all definitions with given normalized selector.
func (s *Stylesheet) DefinitionsBySelector(selector string) []*Definition {
	var matches []*Definition
	for _, d := range s.Definitions {
		if d.Selector == selector {
			matches = append(matches, d)
		}
	}
	return matches
}

// WriteTo writes the stylesheet to w in normalized form, implementing io.WriterTo.
// Named values go first sorted by name, definitions follow in source order with
// references already resolved.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64

	if s.Values != nil {
		for _, name := range s.Values.Names() {
			vals, _ := s.Values.Get(name)
			n, err := fmt.Fprintf(w, "%s = %s;\n", name, Property{Values: vals}.valuesString())
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
		if s.Values.Len() > 0 && len(s.Definitions) > 0 {
			n, err := fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}

	for i, d := range s.Definitions {
		n, err := writeDefinition(w, d)
		total += int64(n)
		if err != nil {
			return total, err
		}
		if i < len(s.Definitions)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the normalized text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// WriteTo writes single definition in normalized form.
func (d *Definition) WriteTo(w io.Writer) (int64, error) {
	n, err := writeDefinition(w, d)
	return int64(n), err
}

func writeDefinition(w io.Writer, d *Definition) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s {\n", d.Selector)
	total += n
	if err != nil {
		return total, err
	}
	for _, p := range d.Properties {
		n, err = fmt.Fprintf(w, "  %s: %s;\n", p.Key, p.valuesString())
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}

// isIdent reports whether s can be written without quotes as a name condition.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '-' || (r > 0x7f && r != utf8.RuneError):
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	// "-1" and "--x" do not lex as identifiers
	if s[0] == '-' && (len(s) == 1 || s[1] == '-' || (s[1] >= '0' && s[1] <= '9')) {
		return false
	}
	return true
}

// unquote removes surrounding quotes from a string and resolves simple escapes.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		s = s[1 : len(s)-1]
		if strings.Contains(s, `\`) {
			var b strings.Builder
			escaped := false
			for _, r := range s {
				if !escaped && r == '\\' {
					escaped = true
					continue
				}
				escaped = false
				b.WriteRune(r)
			}
			return b.String()
		}
	}
	return s
}
