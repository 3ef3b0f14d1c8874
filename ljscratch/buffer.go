// Package ljscratch implements the call-scoped LIFO byte arena used to
// stage decoded string bytes during parsing and to accumulate output
// bytes during serialization.
//
// The reference design (see original_source/leptjson.c, lept_context)
// mixes raw byte pushes with pushes of structured Value/Member records
// in a single buffer, reinterpreting the reserved region's memory. Go
// has no portable way to reinterpret a []byte region as a struct without
// unsafe, and the spec's own design notes (§9) call this out as an
// alignment hazard a type-safe reimplementation should sidestep by using
// a separate staging container for structured records. This package is
// therefore byte-only; ljparse stages Values and Members in ordinary Go
// slices instead (see ljparse's array/object loops), which observably
// behaves the same way: a successful parse still ends with every staged
// byte popped and the buffer empty.
package ljscratch

// Buffer is a growable byte-granular LIFO. The zero value is ready to use.
type Buffer struct {
	buf []byte
	top int
}

// New returns a Buffer with capacity pre-sized for a given input length,
// matching the teacher's practice of pre-sizing output accumulators from
// the expected payload size.
func New(hint int) *Buffer {
	if hint < 0 {
		hint = 0
	}
	return &Buffer{buf: make([]byte, 0, hint)}
}

// Len reports the current stack depth (bytes currently pushed).
func (b *Buffer) Len() int {
	return b.top
}

// grow ensures the underlying array can hold at least top+n bytes,
// growing by 1.5x (per spec §4.1) until it does.
func (b *Buffer) grow(n int) {
	need := b.top + n
	if cap(b.buf) >= need {
		return
	}
	newCap := cap(b.buf)
	if newCap < 2 {
		newCap = 8
	}
	for newCap < need {
		newCap += newCap / 2
	}
	grown := make([]byte, len(b.buf), newCap)
	copy(grown, b.buf)
	b.buf = grown
}

// Reserve grows the buffer by n bytes and returns a slice over the newly
// reserved region, positioned at the old top. The caller writes into the
// returned slice; its contents become part of the staged bytes.
func (b *Buffer) Reserve(n int) []byte {
	b.grow(n)
	b.buf = b.buf[:b.top+n]
	region := b.buf[b.top : b.top+n]
	b.top += n
	return region
}

// PushByte pushes a single byte onto the buffer.
func (b *Buffer) PushByte(c byte) {
	b.grow(1)
	b.buf = b.buf[:b.top+1]
	b.buf[b.top] = c
	b.top++
}

// Push appends a multi-byte span, equivalent to calling PushByte for
// each byte but without the per-byte growth-check overhead.
func (b *Buffer) Push(p []byte) {
	b.grow(len(p))
	b.buf = b.buf[:b.top+len(p)]
	copy(b.buf[b.top:], p)
	b.top += len(p)
}

// Pop removes the last n bytes and returns them. The returned slice
// aliases the buffer's backing array and is only valid until the next
// Reserve/Push/PushByte call.
func (b *Buffer) Pop(n int) []byte {
	if n > b.top {
		n = b.top
	}
	b.top -= n
	return b.buf[b.top : b.top+n]
}

// Reset discards all staged bytes without shrinking the backing array,
// used to roll back a failed parse (spec §4.4, §4.5, §4.6).
func (b *Buffer) Reset() {
	b.top = 0
}

// Bytes returns the currently staged bytes as a slice aliasing the
// buffer's backing array (valid until the next mutating call).
func (b *Buffer) Bytes() []byte {
	return b.buf[:b.top]
}
