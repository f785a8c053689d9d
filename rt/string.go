package rt

import "sync"

// String is java.lang.String: an immutable sequence of bytes.
type String struct {
	Header
	data string
}

var stringVTable func() *VTable

func init() {
	stringVTable = sync.OnceValue(func() *VTable {
		return NewVTable(StringClass, objectVTable(), nil,
			"hashCode", "equals", "toString", "length", "charAt")
	})
}

// NewString creates a string holding s.
func NewString(s string) *String {
	str := &String{data: s}
	str.Init(str, stringVTable())
	return str
}

// Literal converts a literal emitted by the translator into a String.
func Literal(s string) *String {
	return NewString(s)
}

// HashCode is s[0]*31^(n-1) + s[1]*31^(n-2) + ... + s[n-1], wrapping, so
// equal content always hashes equally.
func (s *String) HashCode() int32 {
	var h int32
	for i := 0; i < len(s.data); i++ {
		h = 31*h + int32(s.data[i])
	}
	return h
}

// Equals compares content. Anything that is not a String is unequal.
func (s *String) Equals(other Object) bool {
	o, ok := other.(*String)
	if !ok || o == nil {
		return false
	}
	return s.data == o.data
}

func (s *String) GetClass() *Class { return ObjectGetClass(s) }

// ToString returns the receiver.
func (s *String) ToString() *String { return s }

// Length returns the number of elements.
func (s *String) Length() int32 {
	return int32(len(s.data))
}

// CharAt returns the element at i. Indices outside [0, Length()) raise
// IndexOutOfBoundsException.
func (s *String) CharAt(i int32) byte {
	if i < 0 || int(i) >= len(s.data) {
		Throwf(IndexOutOfBoundsException, "index %d out of bounds for length %d", i, len(s.data))
	}
	return s.data[i]
}

// Concat returns a new string of s followed by other. A null other is
// rendered as "null".
func (s *String) Concat(other *String) *String {
	return NewString(s.data + other.String())
}

// String implements the Stringer interface; a nil String prints as "null".
func (s *String) String() string {
	if s == nil {
		return "null"
	}
	return s.data
}
