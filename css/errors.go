package css

import (
	"bytes"
	"fmt"

	parse "github.com/tdewolff/parse/v2"
)

// ParseError describes malformed stylesheet text. Parsing stops at the first
// error and no partial stylesheet is produced.
type ParseError struct {
	Source  string // Stylesheet origin, may be empty
	Line    int    // 1-based
	Column  int    // 1-based
	Context string // Source line with a marker, as produced by tdewolff/parse
	Message string
}

func (e *ParseError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s:%d:%d: %s", e.Source, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("parse error on line %d and column %d: %s", e.Line, e.Column, e.Message)
}

func newParseError(data []byte, source string, offset int, format string, args ...any) *ParseError {
	line, col, context := parse.Position(bytes.NewReader(data), offset)
	return &ParseError{
		Source:  source,
		Line:    line,
		Column:  col,
		Context: context,
		Message: fmt.Sprintf(format, args...),
	}
}
