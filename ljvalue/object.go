package ljvalue

// NotFound is returned by FindIndex when the key is absent, mirroring
// the reference design's SIZE_MAX sentinel (spec §6). It can never
// collide with a real index since those are always >= 0.
const NotFound = -1

// SetObject installs an empty Object payload with storage pre-sized for
// capacity members.
func (v *Value) SetObject(capacity int) {
	v.Free()
	v.typ = Object
	if capacity > 0 {
		v.obj = make([]Member, 0, capacity)
	}
}

// ObjectSize returns the number of members. Precondition: Type() == Object.
func (v *Value) ObjectSize() int {
	v.mustObject()
	return len(v.obj)
}

// ObjectCapacity returns the Object's current storage capacity.
func (v *Value) ObjectCapacity() int {
	v.mustObject()
	return cap(v.obj)
}

// Key returns the key bytes of the member at index i.
func (v *Value) Key(i int) []byte {
	v.mustObject()
	return v.obj[i].Key
}

// KeyLen returns the byte length of the key at index i.
func (v *Value) KeyLen(i int) int {
	v.mustObject()
	return len(v.obj[i].Key)
}

// ObjectValue returns a pointer to the value of the member at index i.
func (v *Value) ObjectValue(i int) *Value {
	v.mustObject()
	return &v.obj[i].Val
}

// FindIndex performs a linear search for key, returning the index of
// its first occurrence or NotFound if absent (spec §3: first occurrence
// wins for lookup).
func (v *Value) FindIndex(key []byte) int {
	v.mustObject()
	for i := range v.obj {
		if string(v.obj[i].Key) == string(key) {
			return i
		}
	}
	return NotFound
}

// FindValue returns a pointer to the value of the first member whose
// key matches, or nil if not found.
func (v *Value) FindValue(key []byte) *Value {
	i := v.FindIndex(key)
	if i == NotFound {
		return nil
	}
	return &v.obj[i].Val
}

// ReserveObject grows the Object's capacity to at least n.
func (v *Value) ReserveObject(n int) {
	v.mustObject()
	if cap(v.obj) >= n {
		return
	}
	grown := make([]Member, len(v.obj), n)
	copy(grown, v.obj)
	v.obj = grown
}

// ShrinkObject releases capacity beyond the current size.
//
// The reference implementation's shrink_object/reserve_object have a
// latent bug where the reallocation pointer is derived from the array
// union member instead of the object member (spec §9 Open Questions).
// This implementation has no union to mis-derive from — Object and
// Array are distinct Go slice fields — so the bug class does not apply
// here; ShrinkObject always reallocates the Object's own backing array.
func (v *Value) ShrinkObject() {
	v.mustObject()
	if cap(v.obj) == len(v.obj) {
		return
	}
	shrunk := make([]Member, len(v.obj))
	copy(shrunk, v.obj)
	v.obj = shrunk
}

// SetValue returns a pointer to the Value slot for key, creating a new
// Null-valued member if key does not already exist. Calling SetValue
// twice with the same key returns the same slot without growing size
// (spec §8 testable property). This is the API mutators use to build an
// object programmatically; it is not used while parsing (see AppendMember).
func (v *Value) SetValue(key []byte) *Value {
	v.mustObject()
	if i := v.FindIndex(key); i != NotFound {
		return &v.obj[i].Val
	}
	v.obj = append(v.obj, Member{Key: append([]byte(nil), key...)})
	return &v.obj[len(v.obj)-1].Val
}

// AppendMember appends a new member verbatim, without checking for an
// existing key. Unlike SetValue, a repeated key grows size and produces
// two distinct members in order — this is what the parser uses to stage
// members, since object text with duplicate keys is not deduplicated on
// parse (spec §3); lookup still resolves to the first occurrence via
// FindIndex/FindValue.
func (v *Value) AppendMember(key []byte, val Value) {
	v.mustObject()
	v.obj = append(v.obj, Member{Key: append([]byte(nil), key...), Val: val})
}

// RemoveAt frees and removes the member at index i, shifting the tail left.
func (v *Value) RemoveAt(i int) {
	v.mustObject()
	if i < 0 || i >= len(v.obj) {
		panic("ljvalue: RemoveAt index out of range")
	}
	v.obj[i] = Member{}
	v.obj = append(v.obj[:i], v.obj[i+1:]...)
}

// RemoveByKey removes the first member matching key, if any, and
// reports whether a member was removed.
func (v *Value) RemoveByKey(key []byte) bool {
	i := v.FindIndex(key)
	if i == NotFound {
		return false
	}
	v.RemoveAt(i)
	return true
}

// ClearObject removes all members; capacity is unchanged.
func (v *Value) ClearObject() {
	v.mustObject()
	for i := range v.obj {
		v.obj[i] = Member{}
	}
	v.obj = v.obj[:0]
}

func (v *Value) mustObject() {
	if v.typ != Object {
		panic("ljvalue: object operation on non-object Value")
	}
}
