// Package ljparse implements the recursive-descent JSON parser: the
// lexical helpers (whitespace skip, literal match), the string and
// number sub-parsers, and the value parser that dispatches on the first
// non-whitespace byte and recurses for arrays and objects (spec §4).
//
// Decoded string bytes are staged in an ljscratch.Buffer; arrays and
// objects stage their child Values/Members in ordinary Go slices rather
// than reinterpreting scratch memory, per the type-safety note in spec
// §9 — this never changes what a caller observes, only how staging is
// implemented.
package ljparse

import (
	"errors"
	"math"
	"strconv"

	"github.com/latticeforge/ljson/ljerr"
	"github.com/latticeforge/ljson/ljscratch"
	"github.com/latticeforge/ljson/ljvalue"
)

// Options bounds parser resource usage. The zero value uses the defaults.
type Options struct {
	// MaxDepth caps array/object nesting depth. 0 means DefaultMaxDepth.
	MaxDepth int
}

// DefaultMaxDepth bounds recursion so pathologically nested input cannot
// exhaust the Go call stack (spec §5, §9).
const DefaultMaxDepth = 1000

func (o *Options) maxDepth() int {
	if o != nil && o.MaxDepth > 0 {
		return o.MaxDepth
	}
	return DefaultMaxDepth
}

type parser struct {
	data     []byte
	pos      int
	scratch  *ljscratch.Buffer
	depth    int
	maxDepth int
}

// Parse parses a complete, self-contained JSON text into a Value tree
// (spec §4.7). On success the returned *ljerr.Error is nil. On failure
// the returned Value is always the zero (Null) Value.
func Parse(json []byte) (*ljvalue.Value, error) {
	return ParseWithOptions(json, nil)
}

// ParseWithOptions is like Parse but accepts resource bounds.
func ParseWithOptions(json []byte, opts *Options) (*ljvalue.Value, error) {
	p := &parser{
		data:     json,
		scratch:  ljscratch.New(len(json)),
		maxDepth: opts.maxDepth(),
	}

	p.skipWhitespace()
	if p.pos >= len(p.data) {
		return &ljvalue.Value{}, ljerr.New(ljerr.ExpectValue, p.pos, "input is empty or all whitespace")
	}

	v, err := p.parseValue()
	if err != nil {
		return &ljvalue.Value{}, err
	}

	p.skipWhitespace()
	if p.pos != len(p.data) {
		return &ljvalue.Value{}, ljerr.New(ljerr.RootNotSingular, p.pos, "unexpected trailing content after value")
	}
	return v, nil
}

func (p *parser) skipWhitespace() {
	for p.pos < len(p.data) {
		switch p.data[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) parseValue() (*ljvalue.Value, error) {
	if p.pos >= len(p.data) {
		return nil, ljerr.New(ljerr.ExpectValue, p.pos, "unexpected end of input")
	}
	switch p.data[p.pos] {
	case 't':
		return p.parseLiteral("true", ljvalue.True)
	case 'f':
		return p.parseLiteral("false", ljvalue.False)
	case 'n':
		return p.parseLiteral("null", ljvalue.Null)
	case '"':
		return p.parseString()
	case '[':
		return p.parseArray()
	case '{':
		return p.parseObject()
	default:
		return p.parseNumber()
	}
}

// parseLiteral matches a fixed keyword. Precondition: the first byte of
// literal already matches p.data[p.pos] (the caller's dispatch on it
// guarantees this).
func (p *parser) parseLiteral(literal string, typ ljvalue.Type) (*ljvalue.Value, error) {
	if p.pos+len(literal) > len(p.data) || string(p.data[p.pos:p.pos+len(literal)]) != literal {
		return nil, ljerr.New(ljerr.InvalidValue, p.pos, "invalid literal")
	}
	p.pos += len(literal)
	v := &ljvalue.Value{}
	switch typ {
	case ljvalue.True:
		v.SetBool(true)
	case ljvalue.False:
		v.SetBool(false)
	case ljvalue.Null:
		// zero value is already Null
	}
	return v, nil
}

// parseNumber recognizes the JSON number grammar (spec §4.3) and
// converts the matched span to a float64. Leading-zero runs (e.g.
// "0123") are not rejected here: per the reference implementation, the
// integer-part scan stops after a lone "0" and leaves following digits
// unconsumed, so they surface as RootNotSingular at top level or as a
// missing comma/bracket inside a container.
func (p *parser) parseNumber() (*ljvalue.Value, error) {
	start := p.pos

	if p.pos < len(p.data) && p.data[p.pos] == '-' {
		p.pos++
	}

	if p.pos >= len(p.data) || !isDigit(p.data[p.pos]) {
		return nil, ljerr.New(ljerr.InvalidValue, start, "expected digit")
	}
	if p.data[p.pos] == '0' {
		p.pos++
	} else {
		for p.pos < len(p.data) && isDigit(p.data[p.pos]) {
			p.pos++
		}
	}

	if p.pos < len(p.data) && p.data[p.pos] == '.' {
		p.pos++
		if p.pos >= len(p.data) || !isDigit(p.data[p.pos]) {
			return nil, ljerr.New(ljerr.InvalidValue, start, "expected digit after decimal point")
		}
		for p.pos < len(p.data) && isDigit(p.data[p.pos]) {
			p.pos++
		}
	}

	if p.pos < len(p.data) && (p.data[p.pos] == 'e' || p.data[p.pos] == 'E') {
		p.pos++
		if p.pos < len(p.data) && (p.data[p.pos] == '+' || p.data[p.pos] == '-') {
			p.pos++
		}
		if p.pos >= len(p.data) || !isDigit(p.data[p.pos]) {
			return nil, ljerr.New(ljerr.InvalidValue, start, "expected digit in exponent")
		}
		for p.pos < len(p.data) && isDigit(p.data[p.pos]) {
			p.pos++
		}
	}

	// The grammar scan above already guarantees well-formed syntax, so
	// ParseFloat can only fail with ErrRange, and ErrRange covers two very
	// different cases: the mantissa overflows to ±Inf (reject, matching
	// the reference's HUGE_VAL check) or it underflows to a zero/subnormal
	// value (accept — the reference's test suite explicitly requires
	// "1e-100000000000" to parse as 0.0, not error).
	raw := string(p.data[start:p.pos])
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, ljerr.New(ljerr.NumberTooBig, start, "number out of double range")
	}
	if math.IsInf(f, 0) {
		return nil, ljerr.New(ljerr.NumberTooBig, start, "number out of double range")
	}

	v := &ljvalue.Value{}
	v.SetNum(f)
	return v, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
