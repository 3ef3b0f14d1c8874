package ljparse

import "github.com/latticeforge/ljson/ljscratch"

// encodeUTF8 appends the UTF-8 encoding of code point u to buf,
// following the reference implementation's byte-at-a-time construction
// (1, 2, 3, or 4 bytes depending on range).
func encodeUTF8(buf *ljscratch.Buffer, u rune) {
	switch {
	case u <= 0x7F:
		buf.PushByte(byte(u))
	case u <= 0x7FF:
		buf.PushByte(byte(0xC0 | (u >> 6 & 0xFF)))
		buf.PushByte(byte(0x80 | (u & 0x3F)))
	case u <= 0xFFFF:
		buf.PushByte(byte(0xE0 | (u >> 12 & 0xFF)))
		buf.PushByte(byte(0x80 | (u >> 6 & 0x3F)))
		buf.PushByte(byte(0x80 | (u & 0x3F)))
	default:
		buf.PushByte(byte(0xF0 | (u >> 18 & 0xFF)))
		buf.PushByte(byte(0x80 | (u >> 12 & 0x3F)))
		buf.PushByte(byte(0x80 | (u >> 6 & 0x3F)))
		buf.PushByte(byte(0x80 | (u & 0x3F)))
	}
}
