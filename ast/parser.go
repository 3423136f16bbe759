// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"bytes"
	"io"
	"strings"

	"github.com/creachadair/jdom"

	"go4.org/mem"
)

// Parse parses a single JSON value from r and returns it. The whole
// input must be consumed: any non-whitespace content remaining after the
// value is an error. In case of error, the returned error has concrete
// type [*jdom.SyntaxError].
func Parse(r io.Reader) (Value, error) { return NewParser(r).Parse() }

// ParseString parses a single JSON value from s. It is shorthand for
// Parse with a string reader.
func ParseString(s string) (Value, error) { return Parse(strings.NewReader(s)) }

// A Parser is a one-shot recursive-descent parser for a JSON document.
// There is no separate tokenizing stage: the grammar is driven directly
// by a single rune of lookahead from the input cursor, and each nested
// array or object adds one level of recursion.
type Parser struct {
	c        *jdom.Cursor
	maxDepth int
	depth    int
}

// NewParser constructs a parser that consumes input from r.
func NewParser(r io.Reader) *Parser { return &Parser{c: jdom.NewCursor(r)} }

// SetMaxDepth sets the maximum permitted nesting depth of arrays and
// objects. If n <= 0, nesting is limited only by the size of the call
// stack, since each level of nesting in the input adds a stack frame.
func (p *Parser) SetMaxDepth(n int) { p.maxDepth = n }

// Parse parses and returns a single JSON value from the input, then
// verifies that nothing but whitespace remains. The first grammar
// violation aborts the parse; no partial value is returned. In case of
// error, the returned error has concrete type [*jdom.SyntaxError].
func (p *Parser) Parse() (_ Value, err error) {
	defer p.recoverParseError(&err)

	v := p.parseValue()
	p.skipSpace()
	if ch, err := p.c.Peek(); err == nil {
		p.failf("unexpected %q after value", ch)
	} else if err != io.EOF {
		p.fail(err)
	}
	return v, nil
}

func (p *Parser) recoverParseError(errp *error) {
	if v := recover(); v != nil {
		serr, ok := v.(*jdom.SyntaxError)
		if !ok {
			panic(v)
		}
		*errp = serr
	}
}

// fail aborts the parse, reporting err at the current input position.
func (p *Parser) fail(err error) {
	panic(&jdom.SyntaxError{Offset: p.c.Offset(), Message: err.Error(), Err: err})
}

// failf aborts the parse with a message formatted from msg and args.
func (p *Parser) failf(msg string, args ...any) {
	panic(jdom.Syntaxf(p.c.Offset(), msg, args...))
}

// mustNext consumes and returns the next rune of the input, failing the
// parse at the end of input.
func (p *Parser) mustNext() rune {
	ch, err := p.c.Next()
	if err == io.EOF {
		p.failf("unexpected end of input")
	} else if err != nil {
		p.fail(err)
	}
	return ch
}

// skipSpace consumes a run of insignificant whitespace: space, tab, line
// feed, and carriage return, exactly.
func (p *Parser) skipSpace() {
	for {
		ch, err := p.c.Peek()
		if err != nil || !isSpace(ch) {
			return
		}
		p.c.Next()
	}
}

// consumeIf consumes the next rune and reports true if it is want,
// otherwise it consumes nothing.
func (p *Parser) consumeIf(want rune) bool {
	ch, err := p.c.Peek()
	if err != nil || ch != want {
		return false
	}
	p.c.Next()
	return true
}

// parseValue skips insignificant whitespace and parses a single value,
// dispatching on one rune of lookahead. Anything that does not begin a
// constant, object, array, or string is given to the number reader,
// which rejects runes that cannot start a numeral.
func (p *Parser) parseValue() Value {
	p.skipSpace()
	ch, err := p.c.Peek()
	if err == io.EOF {
		p.failf("unexpected end of input")
	} else if err != nil {
		p.fail(err)
	}
	switch ch {
	case 't':
		return p.parseName("true", Bool(true))
	case 'f':
		return p.parseName("false", Bool(false))
	case 'n':
		return p.parseName("null", Null)
	case '{':
		return p.parseObject()
	case '[':
		return p.parseArray()
	case '"':
		return String(p.parseString())
	default:
		return p.parseNumber()
	}
}

// parseName consumes a run of name runes and checks that it exactly
// matches want, returning v if so.
func (p *Parser) parseName(want string, v Value) Value {
	var buf bytes.Buffer
	for {
		ch, err := p.c.Peek()
		if err != nil || !isNameRune(ch) {
			break
		}
		p.c.Next()
		buf.WriteRune(ch)
	}
	if got := mem.B(buf.Bytes()); !got.Equal(mem.S(want)) {
		p.failf("unknown constant %q", got.StringCopy())
	}
	return v
}

// parseString consumes a quoted string and returns its unescaped
// contents. Raw characters, control characters included, are copied
// verbatim. Each \uXXXX escape decodes to a single code unit; surrogate
// pairs are not combined, so an escaped pair yields two replacement
// runes rather than one supplementary-plane character.
func (p *Parser) parseString() string {
	p.mustNext() // opening quote, already seen by the dispatcher
	var buf bytes.Buffer
	for {
		ch, err := p.c.Next()
		if err == io.EOF {
			p.failf("unterminated string")
		} else if err != nil {
			p.fail(err)
		}
		switch ch {
		case '"':
			return buf.String()
		case '\\':
			p.readEscape(&buf)
		default:
			buf.WriteRune(ch)
		}
	}
}

// readEscape decodes the remainder of a \-escape, the lead backslash
// having already been consumed.
func (p *Parser) readEscape(buf *bytes.Buffer) {
	switch ch := p.mustNext(); ch {
	case '"', '\\', '/':
		buf.WriteByte(byte(ch))
	case 'b':
		buf.WriteByte('\b')
	case 'f':
		buf.WriteByte('\f')
	case 'n':
		buf.WriteByte('\n')
	case 'r':
		buf.WriteByte('\r')
	case 't':
		buf.WriteByte('\t')
	case 'u':
		var v rune
		for i := 0; i < 4; i++ {
			d, ok := hexValue(p.mustNext())
			if !ok {
				p.failf("invalid Unicode escape")
			}
			v = v<<4 | d
		}
		buf.WriteRune(v)
	default:
		p.failf("invalid %q after escape", ch)
	}
}

// parseNumber consumes a numeral of the shape
//
//	-? (0 | [1-9][0-9]*) (. [0-9]+)? ([eE] [+-]? [0-9]+)?
//
// Any deviation fails, including a redundant leading zero, a missing
// digit after the decimal point or exponent marker, or a bare sign.
// Whether the result is an exact integer or floating-point is determined
// by the shape of the numeral alone, never by its magnitude.
func (p *Parser) parseNumber() Number {
	var buf bytes.Buffer
	if p.consumeIf('-') {
		buf.WriteByte('-')
	}
	ch := p.requireDigit()
	buf.WriteRune(ch)
	if ch != '0' {
		// A leading zero must stand alone before any fraction.
		p.readDigits(&buf)
	}

	if p.consumeIf('.') {
		buf.WriteByte('.')
		if p.readDigits(&buf) == 0 {
			p.failf("no digits after decimal point")
		}
	}

	if ch, err := p.c.Peek(); err == nil && (ch == 'e' || ch == 'E') {
		p.c.Next()
		buf.WriteRune(ch)
		if ch, err := p.c.Peek(); err == nil && (ch == '+' || ch == '-') {
			p.c.Next()
			buf.WriteRune(ch)
		}
		if p.readDigits(&buf) == 0 {
			p.failf("missing exponent digits")
		}
	}
	return Number{text: buf.String()}
}

// requireDigit consumes a single decimal digit, failing the parse on any
// other rune or at the end of input.
func (p *Parser) requireDigit() rune {
	ch, err := p.c.Peek()
	if err == io.EOF {
		p.failf("unexpected end of input")
	} else if err != nil {
		p.fail(err)
	} else if !isDigit(ch) {
		p.failf("unexpected %q", ch)
	}
	p.c.Next()
	return ch
}

// readDigits consumes a run of decimal digits into buf, reporting how
// many were consumed.
func (p *Parser) readDigits(buf *bytes.Buffer) int {
	var nr int
	for {
		ch, err := p.c.Peek()
		if err != nil || !isDigit(ch) {
			return nr
		}
		p.c.Next()
		buf.WriteRune(ch)
		nr++
	}
}

// parseArray consumes a bracketed sequence of comma-separated values.
// An empty array is allowed; trailing and doubled commas are not, since
// after a comma another value is required and after a value only a comma
// or a close bracket is accepted. Element order is the order of
// appearance in the source.
func (p *Parser) parseArray() Array {
	p.push()
	defer p.pop()

	p.mustNext() // "["
	out := Array{}
	p.skipSpace()
	if p.consumeIf(']') {
		return out
	}
	for {
		out = append(out, p.parseValue())
		p.skipSpace()
		switch ch := p.mustNext(); ch {
		case ']':
			return out
		case ',':
			// continue with the next element
		default:
			p.failf("unexpected %q in array", ch)
		}
	}
}

// parseObject consumes a braced sequence of comma-separated "key": value
// members. Keys must be double-quoted strings. The same comma discipline
// as arrays applies. Members are retained in order of appearance, and
// duplicate keys are all retained as separate members.
func (p *Parser) parseObject() Object {
	p.push()
	defer p.pop()

	p.mustNext() // "{"
	out := Object{}
	p.skipSpace()
	if p.consumeIf('}') {
		return out
	}
	for {
		p.skipSpace()
		if ch, err := p.c.Peek(); err == io.EOF {
			p.failf("unexpected end of input")
		} else if err != nil {
			p.fail(err)
		} else if ch != '"' {
			p.failf("unexpected %q, want object key", ch)
		}
		key := p.parseString()
		p.skipSpace()
		if ch := p.mustNext(); ch != ':' {
			p.failf(`unexpected %q, want ":"`, ch)
		}
		out = append(out, Field(key, p.parseValue()))
		p.skipSpace()
		switch ch := p.mustNext(); ch {
		case '}':
			return out
		case ',':
			// continue with the next member
		default:
			p.failf("unexpected %q in object", ch)
		}
	}
}

// push records entry into a nested array or object, enforcing the
// configured depth limit.
func (p *Parser) push() {
	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		p.failf("exceeded maximum nesting depth (%d)", p.maxDepth)
	}
}

func (p *Parser) pop() { p.depth-- }

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isDigit(ch rune) bool    { return '0' <= ch && ch <= '9' }
func isNameRune(ch rune) bool { return ch >= 'a' && ch <= 'z' }

func hexValue(ch rune) (rune, bool) {
	switch {
	case '0' <= ch && ch <= '9':
		return ch - '0', true
	case 'a' <= ch && ch <= 'f':
		return ch - 'a' + 10, true
	case 'A' <= ch && ch <= 'F':
		return ch - 'A' + 10, true
	}
	return 0, false
}
