// Package ljvalue implements the tagged-union JSON value tree and its
// typed access API (spec §3, §4.8, §4.10): a Value is born Null, can
// become any of the seven JSON variants, and every mutator frees the
// prior payload before installing a new one so a Value never leaks a
// stale subtree into a new type.
package ljvalue

// Type is the tag of a Value's active variant.
type Type int

const (
	Null Type = iota
	False
	True
	Number
	String
	Array
	Object
)

func (t Type) String() string {
	switch t {
	case Null:
		return "null"
	case False:
		return "false"
	case True:
		return "true"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "<unknown>"
	}
}

// Value is the tagged-union root node of the JSON tree. The zero value
// is Null and ready to use.
type Value struct {
	typ Type
	num float64
	str []byte
	arr []Value
	obj []Member
}

// Member is an object's key-value pair. Keys are raw bytes: only
// control bytes below 0x20 are rejected, during parsing, not here.
type Member struct {
	Key []byte
	Val Value
}

// Type returns the active variant.
func (v *Value) Type() Type {
	return v.typ
}

// Free releases any owned payload and returns the Value to the Null
// state. Destruction recurses into Array/Object children.
func (v *Value) Free() {
	*v = Value{}
}

// Bool returns the boolean denoted by a True/False value. The variant
// must already be True or False; this is a design-time precondition,
// not a recoverable error (spec §4.12).
func (v *Value) Bool() bool {
	if v.typ != True && v.typ != False {
		panic("ljvalue: Bool called on non-boolean Value")
	}
	return v.typ == True
}

// SetBool installs a boolean value, freeing any prior payload first.
func (v *Value) SetBool(b bool) {
	v.Free()
	if b {
		v.typ = True
	} else {
		v.typ = False
	}
}

// Num returns the numeric value. Precondition: Type() == Number.
func (v *Value) Num() float64 {
	if v.typ != Number {
		panic("ljvalue: Num called on non-number Value")
	}
	return v.num
}

// SetNum installs a numeric value.
func (v *Value) SetNum(n float64) {
	v.Free()
	v.typ = Number
	v.num = n
}

// SetStr copies n input bytes as an owned string payload. Embedded NUL
// bytes are preserved; the copy's length is authoritative (spec §3).
func (v *Value) SetStr(b []byte) {
	v.Free()
	v.typ = String
	v.str = append([]byte(nil), b...)
}

// Str returns the string payload. Precondition: Type() == String.
func (v *Value) Str() []byte {
	if v.typ != String {
		panic("ljvalue: Str called on non-string Value")
	}
	return v.str
}

// StrLen returns the authoritative byte length of the string payload.
func (v *Value) StrLen() int {
	if v.typ != String {
		panic("ljvalue: StrLen called on non-string Value")
	}
	return len(v.str)
}

// CString returns the string payload with a trailing NUL appended, for
// callers that want the C-style null-terminated convenience the
// reference design provides. size (StrLen) remains authoritative.
func (v *Value) CString() []byte {
	b := v.Str()
	out := make([]byte, len(b)+1)
	copy(out, b)
	return out
}
