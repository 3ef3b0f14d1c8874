package ljvalue

// IsEqual implements structural equality (spec §4.10). Types must
// match; Number compares bitwise via == (NaN never equal, ±0 equal);
// String compares by length and bytes; Array compares size and
// pairwise elements in order; Object compares size, and is
// order-insensitive: each left member is looked up by key on the
// right and compared recursively.
func IsEqual(lhs, rhs *Value) bool {
	if lhs.typ != rhs.typ {
		return false
	}
	switch lhs.typ {
	case Null, True, False:
		return true
	case Number:
		return lhs.num == rhs.num
	case String:
		return string(lhs.str) == string(rhs.str)
	case Array:
		if len(lhs.arr) != len(rhs.arr) {
			return false
		}
		for i := range lhs.arr {
			if !IsEqual(&lhs.arr[i], &rhs.arr[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(lhs.obj) != len(rhs.obj) {
			return false
		}
		for i := range lhs.obj {
			rv := rhs.FindValue(lhs.obj[i].Key)
			if rv == nil || !IsEqual(&lhs.obj[i].Val, rv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Copy performs a deep copy of src into dst, freeing dst's prior
// payload first. Strings get a fresh byte copy; Arrays and Objects are
// recreated with src's capacity and recursively copied elements/members
// (spec §4.10).
func Copy(dst, src *Value) {
	switch src.typ {
	case Null, True, False:
		dst.Free()
		dst.typ = src.typ
	case Number:
		dst.SetNum(src.num)
	case String:
		dst.SetStr(src.str)
	case Array:
		dst.SetArray(cap(src.arr))
		dst.arr = dst.arr[:len(src.arr)]
		for i := range src.arr {
			Copy(&dst.arr[i], &src.arr[i])
		}
	case Object:
		dst.SetObject(cap(src.obj))
		dst.obj = dst.obj[:len(src.obj)]
		for i := range src.obj {
			dst.obj[i].Key = append([]byte(nil), src.obj[i].Key...)
			Copy(&dst.obj[i].Val, &src.obj[i].Val)
		}
	}
}

// Move transfers src's payload into dst, freeing dst's prior payload
// first, and resets src to Null. Precondition: dst != src.
func Move(dst, src *Value) {
	if dst == src {
		panic("ljvalue: Move called with dst == src")
	}
	dst.Free()
	*dst = *src
	*src = Value{}
}

// Swap exchanges the full contents of lhs and rhs. A no-op if they are
// the same pointer.
func Swap(lhs, rhs *Value) {
	if lhs == rhs {
		return
	}
	*lhs, *rhs = *rhs, *lhs
}
