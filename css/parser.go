package css

import (
	"bytes"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses ucss stylesheets into definitions and named values.
//
// Grammar:
//
//	accent = 0.2, 0.4, 0.9, 1;          named value
//	Title, #Text.big { color: accent; } rule: name, #component, .class
//
// Whitespace between conditions of one selector means AND, a comma separates
// selectors of a list. Values may be separated by commas or whitespace.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new stylesheet parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("ucss-parser")}
}

// token is a significant lexer token. Whitespace and comments are folded into
// the space flag of the following token.
type token struct {
	tt     css.TokenType
	data   string
	offset int
	line   int
	space  bool // whitespace or comment precedes this token
}

func (t token) is(tt css.TokenType) bool {
	return t.tt == tt
}

func (t token) isDelim(c string) bool {
	return t.tt == css.DelimToken && t.data == c
}

type rawValue struct {
	name   string
	tokens []token
	at     token
}

type rawProperty struct {
	key    string
	tokens []token
	at     token
}

type rawRule struct {
	selectors [][]Condition
	props     []rawProperty
	at        token
}

// state of a single Parse call.
type parseState struct {
	data   []byte
	source string
	tokens []token
	pos    int

	values []rawValue
	byName map[string]rawValue
	rules  []rawRule

	resolved  map[string][]Value
	resolving map[string]bool
}

// Parse parses stylesheet text. The optional source parameter identifies
// what's being parsed and is used in errors and debug logging.
//
// Parsing is done in two passes: the first collects named values and rule
// structure, the second resolves value references, so a named value may be
// used before it is declared.
func (p *Parser) Parse(data []byte, source ...string) (*Stylesheet, error) {
	st := &parseState{
		data:      data,
		byName:    make(map[string]rawValue),
		resolved:  make(map[string][]Value),
		resolving: make(map[string]bool),
	}
	if len(source) > 0 {
		st.source = source[0]
	}
	if st.source != "" {
		p.log.Debug("Parsing stylesheet", zap.String("source", st.source), zap.Int("bytes", len(data)))
	}

	if err := st.tokenize(); err != nil {
		p.log.Debug("Stylesheet parse error", zap.Error(err))
		return nil, err
	}
	if err := st.collect(); err != nil {
		p.log.Debug("Stylesheet parse error", zap.Error(err))
		return nil, err
	}
	sheet, err := st.build()
	if err != nil {
		p.log.Debug("Stylesheet parse error", zap.Error(err))
		return nil, err
	}

	p.log.Debug("Parsed stylesheet",
		zap.String("source", st.source),
		zap.Int("definitions", len(sheet.Definitions)),
		zap.Int("values", sheet.Values.Len()))
	return sheet, nil
}

func (st *parseState) errorAt(t token, format string, args ...any) error {
	return newParseError(st.data, st.source, t.offset, format, args...)
}

// tokenize runs tdewolff css lexer over the whole input.
func (st *parseState) tokenize() error {
	if !utf8.Valid(st.data) {
		return newParseError(st.data, st.source, invalidUTF8(st.data), "invalid UTF-8 encoding")
	}
	lexer := css.NewLexer(parse.NewInput(bytes.NewReader(st.data)))

	offset, line := 0, 1
	space := false
	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && err != io.EOF {
				return newParseError(st.data, st.source, offset, "%v", err)
			}
			st.tokens = append(st.tokens, token{tt: css.ErrorToken, offset: offset, line: line, space: space})
			return nil
		}

		t := token{tt: tt, data: string(data), offset: offset, line: line, space: space}
		offset += len(data)
		line += bytes.Count(data, []byte{'\n'})

		switch tt {
		case css.CommentToken:
			if len(data) < 4 || !bytes.HasSuffix(data, []byte("*/")) {
				return st.errorAt(t, "unterminated comment")
			}
			space = true
			continue
		case css.WhitespaceToken:
			space = true
			continue
		case css.BadStringToken:
			return st.errorAt(t, "unterminated string")
		case css.BadURLToken:
			return st.errorAt(t, "malformed url")
		}
		space = false
		st.tokens = append(st.tokens, t)
	}
}

// invalidUTF8 returns offset of the first byte which is not valid UTF-8.
func invalidUTF8(data []byte) int {
	for i := 0; i < len(data); {
		r, n := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && n <= 1 {
			return i
		}
		i += n
	}
	return len(data)
}

func (st *parseState) peek() token {
	return st.tokens[st.pos]
}

func (st *parseState) peekAt(n int) token {
	if st.pos+n < len(st.tokens) {
		return st.tokens[st.pos+n]
	}
	return st.tokens[len(st.tokens)-1]
}

func (st *parseState) next() token {
	t := st.tokens[st.pos]
	if t.tt != css.ErrorToken {
		st.pos++
	}
	return t
}

// collect is the first pass: named values and rules with unresolved values.
func (st *parseState) collect() error {
	for {
		t := st.peek()
		switch {
		case t.is(css.ErrorToken):
			return nil
		case t.is(css.IdentToken) && st.peekAt(1).isDelim("="):
			if err := st.collectValue(); err != nil {
				return err
			}
		case t.is(css.AtKeywordToken):
			return st.errorAt(t, "at-rules are not supported: %s", t.data)
		case t.is(css.RightBraceToken):
			return st.errorAt(t, "unexpected '}' outside of a block")
		case t.is(css.SemicolonToken):
			st.next()
		default:
			if err := st.collectRule(); err != nil {
				return err
			}
		}
	}
}

func (st *parseState) collectValue() error {
	name := st.next()
	st.next() // '='

	if prev, exists := st.byName[name.data]; exists {
		return st.errorAt(name, "duplicate declaration of value %q (first declared on line %d)", name.data, prev.at.line)
	}

	tokens, end, err := st.collectValueList(name, "value "+strconv.Quote(name.data))
	if err != nil {
		return err
	}
	if !end.is(css.SemicolonToken) {
		return st.errorAt(end, "expected ';' after value %q", name.data)
	}
	st.next()

	rv := rawValue{name: name.data, tokens: tokens, at: name}
	st.values = append(st.values, rv)
	st.byName[name.data] = rv
	return nil
}

// collectValueList gathers value tokens up to (not including) ';' or '}'.
func (st *parseState) collectValueList(owner token, what string) ([]token, token, error) {
	var tokens []token
	lastComma := false
	for {
		t := st.peek()
		switch t.tt {
		case css.ErrorToken:
			return nil, t, st.errorAt(owner, "unterminated %s, missing ';' or '}'", what)
		case css.SemicolonToken, css.RightBraceToken:
			if len(tokens) == 0 {
				return nil, t, st.errorAt(owner, "empty value list for %s", what)
			}
			if lastComma {
				return nil, t, st.errorAt(t, "trailing ',' in %s", what)
			}
			return tokens, t, nil
		case css.CommaToken:
			if len(tokens) == 0 || lastComma {
				return nil, t, st.errorAt(t, "empty value in %s", what)
			}
			lastComma = true
		case css.NumberToken, css.DimensionToken, css.PercentageToken,
			css.IdentToken, css.StringToken, css.HashToken:
			tokens = append(tokens, t)
			lastComma = false
		case css.FunctionToken:
			return nil, t, st.errorAt(t, "functions are not supported in %s: %s", what, t.data)
		case css.LeftBraceToken:
			return nil, t, st.errorAt(t, "nested blocks are not supported in %s", what)
		case css.ColonToken:
			return nil, t, st.errorAt(t, "unexpected ':' in %s, missing ';'?", what)
		default:
			return nil, t, st.errorAt(t, "unexpected %q in %s", t.data, what)
		}
		st.next()
	}
}

func (st *parseState) collectRule() error {
	start := st.peek()
	selectors, err := st.collectSelectors()
	if err != nil {
		return err
	}
	open := st.next() // '{'

	rule := rawRule{selectors: selectors, at: start}
	for {
		t := st.peek()
		switch t.tt {
		case css.ErrorToken:
			return st.errorAt(open, "unterminated block, missing '}'")
		case css.RightBraceToken:
			st.next()
			st.rules = append(st.rules, rule)
			return nil
		case css.SemicolonToken:
			st.next()
		case css.IdentToken:
			key := st.next()
			if colon := st.peek(); !colon.is(css.ColonToken) {
				return st.errorAt(colon, "expected ':' after property %q", key.data)
			}
			st.next()
			tokens, end, err := st.collectValueList(key, "property "+strconv.Quote(key.data))
			if err != nil {
				return err
			}
			if end.is(css.SemicolonToken) {
				st.next()
			}
			rule.props = append(rule.props, rawProperty{key: key.data, tokens: tokens, at: key})
		case css.LeftBraceToken:
			return st.errorAt(t, "nested blocks are not supported")
		default:
			return st.errorAt(t, "expected property name, got %q", t.data)
		}
	}
}

// collectSelectors parses a selector list up to (not including) '{'.
func (st *parseState) collectSelectors() ([][]Condition, error) {
	var (
		selectors [][]Condition
		current   []Condition
		universal bool
		first     = st.peek()
	)
	finish := func(at token) error {
		if len(current) == 0 && !universal {
			return st.errorAt(at, "empty selector")
		}
		selectors = append(selectors, current)
		current, universal = nil, false
		return nil
	}

	for {
		t := st.peek()
		switch {
		case t.is(css.ErrorToken):
			return nil, st.errorAt(first, "unterminated rule, expected '{'")
		case t.is(css.LeftBraceToken):
			if err := finish(t); err != nil {
				return nil, err
			}
			return selectors, nil
		case t.is(css.CommaToken):
			if err := finish(t); err != nil {
				return nil, err
			}
		case t.is(css.IdentToken):
			current = append(current, Condition{Target: TargetKindName, Name: t.data})
		case t.is(css.StringToken):
			name := unquote(t.data)
			if name == "" {
				return nil, st.errorAt(t, "empty name in selector")
			}
			current = append(current, Condition{Target: TargetKindName, Name: name})
		case t.is(css.HashToken):
			name := strings.TrimPrefix(t.data, "#")
			if !isIdent(name) {
				return nil, st.errorAt(t, "malformed component type %q in selector", t.data)
			}
			current = append(current, Condition{Target: TargetKindComponent, Name: name})
		case t.isDelim("."):
			st.next()
			name := st.peek()
			if !name.is(css.IdentToken) || name.space {
				return nil, st.errorAt(t, "expected class name after '.'")
			}
			current = append(current, Condition{Target: TargetKindClass, Name: name.data})
		case t.isDelim("*"):
			universal = true
		case t.isDelim("#"):
			return nil, st.errorAt(t, "expected component type after '#'")
		case t.is(css.SemicolonToken):
			return nil, st.errorAt(t, "unexpected ';' in selector, expected '{'")
		case t.is(css.ColonToken):
			if after := st.peekAt(1); !t.space && after.is(css.IdentToken) && !after.space {
				return nil, st.errorAt(t, "pseudo-classes are not supported")
			}
			return nil, st.errorAt(t, "expected '{' after selector")
		case t.isDelim("="):
			return nil, st.errorAt(t, "malformed value declaration, expected 'name = value;'")
		default:
			return nil, st.errorAt(t, "unexpected %q in selector", t.data)
		}
		st.next()
	}
}

// build is the second pass: resolve named values and produce the stylesheet.
func (st *parseState) build() (*Stylesheet, error) {
	values := NewValues()
	for _, rv := range st.values {
		vals, err := st.resolve(rv)
		if err != nil {
			return nil, err
		}
		values.Set(rv.name, vals)
	}

	sheet := &Stylesheet{Source: st.source, Values: values}
	for _, rule := range st.rules {
		props := make([]Property, 0, len(rule.props))
		for _, rp := range rule.props {
			vals, err := st.convert(rp.tokens)
			if err != nil {
				return nil, err
			}
			props = append(props, Property{Key: rp.key, Values: vals, SourceLine: rp.at.line})
		}
		for _, conds := range rule.selectors {
			sheet.Definitions = append(sheet.Definitions, &Definition{
				Selector:   selectorString(conds),
				Conditions: conds,
				Properties: props,
				SourceLine: rule.at.line,
			})
		}
	}
	return sheet, nil
}

func (st *parseState) resolve(rv rawValue) ([]Value, error) {
	if vals, ok := st.resolved[rv.name]; ok {
		return vals, nil
	}
	if st.resolving[rv.name] {
		return nil, st.errorAt(rv.at, "reference cycle in value %q", rv.name)
	}
	st.resolving[rv.name] = true
	defer delete(st.resolving, rv.name)

	vals, err := st.convert(rv.tokens)
	if err != nil {
		return nil, err
	}
	st.resolved[rv.name] = vals
	return vals, nil
}

// convert turns value tokens into values splicing in referenced named values.
func (st *parseState) convert(tokens []token) ([]Value, error) {
	vals := make([]Value, 0, len(tokens))
	for _, t := range tokens {
		if t.is(css.IdentToken) {
			if rv, ok := st.byName[t.data]; ok {
				ref, err := st.resolve(rv)
				if err != nil {
					return nil, err
				}
				vals = append(vals, ref...)
				continue
			}
		}
		v, err := st.literal(t)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func (st *parseState) literal(t token) (Value, error) {
	val := Value{Raw: t.data}
	switch t.tt {
	case css.NumberToken:
		f, err := strconv.ParseFloat(t.data, 64)
		if err != nil {
			return val, st.errorAt(t, "malformed number %q", t.data)
		}
		val.Kind, val.Number = ValueKindNumber, f
	case css.DimensionToken:
		f, unit, ok := parseDimension(t.data)
		if !ok {
			return val, st.errorAt(t, "malformed dimension %q", t.data)
		}
		val.Kind, val.Number, val.Unit = ValueKindNumber, f, unit
	case css.PercentageToken:
		f, err := strconv.ParseFloat(strings.TrimSuffix(t.data, "%"), 64)
		if err != nil {
			return val, st.errorAt(t, "malformed percentage %q", t.data)
		}
		val.Kind, val.Number, val.Unit = ValueKindNumber, f, "%"
	case css.StringToken:
		val.Kind = ValueKindString
	case css.HashToken:
		val.Kind = ValueKindColor
	default:
		val.Kind = ValueKindKeyword
	}
	return val, nil
}

// parseDimension extracts numeric value and unit from dimension token.
func parseDimension(s string) (float64, string, bool) {
	numEnd := 0
	for i, r := range s {
		if unicode.IsDigit(r) || r == '.' || r == '-' || r == '+' || ((r == 'e' || r == 'E') && i > 0 && i+1 < len(s) && unicode.IsDigit(rune(s[i+1]))) {
			numEnd = i + 1
		} else {
			break
		}
	}
	if numEnd == 0 {
		return 0, "", false
	}
	num, err := strconv.ParseFloat(s[:numEnd], 64)
	if err != nil {
		return 0, "", false
	}
	return num, strings.ToLower(s[numEnd:]), true
}
