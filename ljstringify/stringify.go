// Package ljstringify serializes a Value tree back into JSON text (spec
// §4.9). Output is accumulated in an ljscratch.Buffer and always
// succeeds: there is no value a well-formed Value tree can hold that
// cannot be rendered as JSON.
package ljstringify

import (
	"strconv"

	"github.com/latticeforge/ljson/ljerr"
	"github.com/latticeforge/ljson/ljscratch"
	"github.com/latticeforge/ljson/ljvalue"
)

// Stringify renders v as a JSON byte sequence. The returned error is
// always nil; it exists so callers can treat Stringify the same way as
// Parse without a type assertion, and so a future caller-supplied writer
// failure (e.g. ljfile) has somewhere to report through.
//
// Unlike Value.CString, the result is deliberately not NUL-terminated —
// len(result) is authoritative, the idiomatic Go way to carry a byte
// sequence that may itself legitimately contain embedded NULs.
func Stringify(v *ljvalue.Value) ([]byte, error) {
	buf := ljscratch.New(estimateSize(v))
	stringifyValue(buf, v)
	return buf.Bytes(), nil
}

// estimateSize pre-sizes the output buffer to avoid repeated growth for
// the common case, mirroring the reference implementation's practice of
// reserving worst-case space for strings up front.
func estimateSize(v *ljvalue.Value) int {
	switch v.Type() {
	case ljvalue.String:
		return v.StrLen()*6 + 2
	case ljvalue.Array:
		n := 2
		for i := 0; i < v.Size(); i++ {
			n += estimateSize(v.Index(i)) + 1
		}
		return n
	case ljvalue.Object:
		n := 2
		for i := 0; i < v.ObjectSize(); i++ {
			n += v.KeyLen(i)*6 + 4 + estimateSize(v.ObjectValue(i))
		}
		return n
	default:
		return 32
	}
}

func stringifyValue(buf *ljscratch.Buffer, v *ljvalue.Value) {
	switch v.Type() {
	case ljvalue.Null:
		buf.Push([]byte("null"))
	case ljvalue.False:
		buf.Push([]byte("false"))
	case ljvalue.True:
		buf.Push([]byte("true"))
	case ljvalue.Number:
		stringifyNumber(buf, v.Num())
	case ljvalue.String:
		stringifyString(buf, v.Str())
	case ljvalue.Array:
		buf.PushByte('[')
		for i := 0; i < v.Size(); i++ {
			if i > 0 {
				buf.PushByte(',')
			}
			stringifyValue(buf, v.Index(i))
		}
		buf.PushByte(']')
	case ljvalue.Object:
		buf.PushByte('{')
		for i := 0; i < v.ObjectSize(); i++ {
			if i > 0 {
				buf.PushByte(',')
			}
			stringifyString(buf, v.Key(i))
			buf.PushByte(':')
			stringifyValue(buf, v.ObjectValue(i))
		}
		buf.PushByte('}')
	}
}

// stringifyNumber formats with 17 significant digits in general form,
// matching the reference implementation's "%.17g": enough digits that
// parsing the output always reproduces the original double exactly, with
// no unnecessary trailing digits.
func stringifyNumber(buf *ljscratch.Buffer, f float64) {
	buf.Push(strconv.AppendFloat(nil, f, 'g', 17, 64))
}

var hexDigits = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'A', 'B', 'C', 'D', 'E', 'F'}

// stringifyString escapes s per spec §4.9: the standard short escapes
// for quote/backslash/control whitespace, \u00XX for any other control
// byte, and no other bytes touched — '/' and everything >= 0x20 pass
// through unescaped, including raw multi-byte UTF-8.
func stringifyString(buf *ljscratch.Buffer, s []byte) {
	buf.PushByte('"')
	for _, ch := range s {
		switch ch {
		case '"':
			buf.Push([]byte{'\\', '"'})
		case '\\':
			buf.Push([]byte{'\\', '\\'})
		case '\b':
			buf.Push([]byte{'\\', 'b'})
		case '\f':
			buf.Push([]byte{'\\', 'f'})
		case '\n':
			buf.Push([]byte{'\\', 'n'})
		case '\r':
			buf.Push([]byte{'\\', 'r'})
		case '\t':
			buf.Push([]byte{'\\', 't'})
		default:
			if ch < 0x20 {
				buf.Push([]byte{'\\', 'u', '0', '0', hexDigits[ch>>4], hexDigits[ch&0xF]})
			} else {
				buf.PushByte(ch)
			}
		}
	}
	buf.PushByte('"')
}

// StringifyOk is a convenience sentinel a caller can use to report
// success through the same ljerr.Code space the parser uses, e.g. when
// logging a structured outcome code alongside a parse result.
var StringifyOk = ljerr.StringifyOk
