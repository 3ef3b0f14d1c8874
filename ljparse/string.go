package ljparse

import (
	"github.com/latticeforge/ljson/ljerr"
	"github.com/latticeforge/ljson/ljvalue"
)

// parseString reads a quoted JSON string starting at the opening quote
// and decodes it into the scratch buffer (spec §4.4).
func (p *parser) parseString() (*ljvalue.Value, error) {
	b, err := p.parseStringRaw()
	if err != nil {
		return nil, err
	}
	v := &ljvalue.Value{}
	v.SetStr(b)
	return v, nil
}

// parseStringRaw decodes a quoted string and returns an owned copy of
// the decoded bytes, leaving the scratch buffer's top unchanged on
// success (the staged bytes are popped into the returned copy) and
// reset to zero on failure.
func (p *parser) parseStringRaw() ([]byte, error) {
	start := p.pos
	p.pos++ // consume opening '"'
	head := p.scratch.Len()

	for {
		if p.pos >= len(p.data) {
			p.scratch.Reset()
			return nil, ljerr.New(ljerr.MissQuotationMark, start, "missing closing quotation mark")
		}
		c := p.data[p.pos]

		switch {
		case c == '"':
			p.pos++
			size := p.scratch.Len() - head
			decoded := append([]byte(nil), p.scratch.Pop(size)...)
			return decoded, nil

		case c == '\\':
			p.pos++
			if err := p.parseEscape(); err != nil {
				p.scratch.Reset()
				return nil, err
			}

		case c < 0x20:
			p.scratch.Reset()
			return nil, ljerr.New(ljerr.InvalidStringChar, p.pos, "unescaped control character")

		default:
			p.scratch.PushByte(c)
			p.pos++
		}
	}
}

// parseEscape handles the byte following a backslash.
func (p *parser) parseEscape() error {
	if p.pos >= len(p.data) {
		return ljerr.New(ljerr.MissQuotationMark, p.pos, "unterminated escape sequence")
	}
	c := p.data[p.pos]
	p.pos++

	switch c {
	case '"':
		p.scratch.PushByte('"')
	case '\\':
		p.scratch.PushByte('\\')
	case '/':
		p.scratch.PushByte('/')
	case 'b':
		p.scratch.PushByte('\b')
	case 'f':
		p.scratch.PushByte('\f')
	case 'n':
		p.scratch.PushByte('\n')
	case 'r':
		p.scratch.PushByte('\r')
	case 't':
		p.scratch.PushByte('\t')
	case 'u':
		return p.parseUnicodeEscape()
	default:
		return ljerr.New(ljerr.InvalidStringEscape, p.pos-1, "invalid escape character")
	}
	return nil
}

// parseUnicodeEscape decodes a \uXXXX sequence, following a high
// surrogate with a required \uYYYY low-surrogate escape, and
// UTF-8-encodes the resulting code point onto the scratch buffer (spec
// §4.4). A bare low surrogate (not reached via a preceding high
// surrogate) is rejected, resolving spec §9's open question in favor of
// strict validation.
func (p *parser) parseUnicodeEscape() error {
	u, err := p.readHex4()
	if err != nil {
		return err
	}

	if u >= 0xD800 && u <= 0xDBFF {
		if p.pos+1 >= len(p.data) || p.data[p.pos] != '\\' || p.data[p.pos+1] != 'u' {
			return ljerr.New(ljerr.InvalidUnicodeSurrogate, p.pos, "high surrogate not followed by \\u")
		}
		p.pos += 2
		low, err := p.readHex4()
		if err != nil {
			return err
		}
		if low < 0xDC00 || low > 0xDFFF {
			return ljerr.New(ljerr.InvalidUnicodeSurrogate, p.pos, "low surrogate out of range")
		}
		u = 0x10000 + (u-0xD800)*0x400 + (low - 0xDC00)
	} else if u >= 0xDC00 && u <= 0xDFFF {
		return ljerr.New(ljerr.InvalidUnicodeSurrogate, p.pos, "lone low surrogate")
	}

	encodeUTF8(p.scratch, u)
	return nil
}

// readHex4 reads exactly 4 case-insensitive hex digits and returns the
// decoded value.
func (p *parser) readHex4() (rune, error) {
	if p.pos+4 > len(p.data) {
		return 0, ljerr.New(ljerr.InvalidUnicodeHex, p.pos, "incomplete \\u escape")
	}
	var u rune
	for i := 0; i < 4; i++ {
		c := p.data[p.pos+i]
		var digit rune
		switch {
		case c >= '0' && c <= '9':
			digit = rune(c - '0')
		case c >= 'a' && c <= 'f':
			digit = rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			digit = rune(c-'A') + 10
		default:
			return 0, ljerr.New(ljerr.InvalidUnicodeHex, p.pos, "invalid hex digit in \\u escape")
		}
		u = u<<4 | digit
	}
	p.pos += 4
	return u, nil
}
