package rt

import (
	"fmt"
	"reflect"
)

// ---------------------------------------------------------------------------
// Array classes
// ---------------------------------------------------------------------------

// descriptor returns the element code used in array class names.
func descriptor(c *Class) string {
	if c.primitive {
		return primitiveCodes[c.Name()]
	}
	if c.IsArray() {
		return c.Name()
	}
	return "L" + c.Name() + ";"
}

// bufferOwner is implemented by types whose destructor entry must drop
// backing storage.
type bufferOwner interface {
	releaseBuffers()
}

func releaseBuffers(o Object) {
	if b, ok := o.(bufferOwner); ok {
		b.releaseBuffers()
	}
}

func defineArrayClass(key, name string, parent, component *Class, dims int) *Class {
	return classes.intern(key, func() *Class {
		c := newClass(name, parent, component, false)
		c.dims = dims
		c.instanceVT = NewVTable(func() *Class { return c }, objectVTable(), releaseBuffers)
		return c
	})
}

// ArrayClassOf returns the class of one-dimensional arrays of component.
// Reference arrays extend [Ljava.lang.Object;, which extends Object;
// primitive arrays extend Object directly.
func ArrayClassOf(component *Class) *Class {
	CheckNotNull(component)
	name := "[" + descriptor(component)
	if c := classes.Lookup(name); c != nil {
		return c
	}
	parent := ObjectClass()
	if !component.primitive && component != parent {
		parent = ArrayClassOf(parent)
	}
	return defineArrayClass(name, name, parent, component, 1)
}

// Array2DClassOf returns the class of two-dimensional arrays whose
// elements are of class component. Its component type is the element
// class itself. It is kept apart from ArrayClassOf(ArrayClassOf(component)),
// which shares its name but describes an array of row arrays.
func Array2DClassOf(component *Class) *Class {
	CheckNotNull(component)
	name := "[[" + descriptor(component)
	key := "2d:" + name
	if c := classes.Lookup(key); c != nil {
		return c
	}
	parent := ArrayClassOf(ObjectClass())
	if !component.primitive && component != ObjectClass() {
		parent = Array2DClassOf(ObjectClass())
	}
	return defineArrayClass(key, name, parent, component, 2)
}

// checkDimension rejects negative dimensions, and zero unless the runtime
// allows zero-length arrays.
func checkDimension(n int32) {
	if n < 0 || (n == 0 && !CurrentOptions().AllowZeroLengthArrays) {
		Throwf(NegativeArraySizeException, "%d", n)
	}
}

func checkIndex(i, length int32) {
	if i < 0 || i >= length {
		Throwf(ArrayIndexOutOfBoundsException, "index %d out of bounds for length %d", i, length)
	}
}

// checkElementType panics unless T can hold the instances a reference
// component admits, so every store into such an array is checked.
func checkElementType[T any](component *Class) {
	if component.primitive {
		return
	}
	if t := reflect.TypeOf((*T)(nil)).Elem(); !t.Implements(objectType) {
		panic(fmt.Sprintf("rt: array of %s needs an element type implementing Object, got %s", component.Name(), t))
	}
}

// asObject views an element as an Object for the store check.
func asObject[T any](v T) Object {
	o, _ := any(v).(Object)
	return o
}

// ---------------------------------------------------------------------------
// One-dimensional arrays
// ---------------------------------------------------------------------------

// Array is a fixed-length, bounds-checked array of T.
type Array[T any] struct {
	Header
	length    int32
	data      []T
	reference bool // component is a reference type: stores are checked
}

// NewArray allocates an array of length elements of class component, all
// at T's zero value.
func NewArray[T any](component *Class, length int32) *Array[T] {
	cls := ArrayClassOf(component)
	checkElementType[T](component)
	checkDimension(length)
	a := &Array[T]{
		length:    length,
		data:      make([]T, length),
		reference: !component.primitive,
	}
	a.Init(a, cls.InstanceVTable())
	return a
}

// Length returns the number of elements.
func (a *Array[T]) Length() int32 {
	return a.length
}

// Get returns the element at i.
func (a *Array[T]) Get(i int32) T {
	checkIndex(i, a.length)
	return a.data[i]
}

// Set stores v at i. For reference arrays v must pass CheckStore; on
// failure the element keeps its previous value.
func (a *Array[T]) Set(i int32, v T) {
	checkIndex(i, a.length)
	if a.reference {
		CheckStore(a, asObject(v))
	}
	a.data[i] = v
}

// Slice returns a copy of the elements.
func (a *Array[T]) Slice() []T {
	out := make([]T, len(a.data))
	copy(out, a.data)
	return out
}

func (a *Array[T]) releaseBuffers() {
	a.data = nil
}

func (a *Array[T]) HashCode() int32          { return ObjectHashCode(a) }
func (a *Array[T]) Equals(other Object) bool { return ObjectEquals(a, other) }
func (a *Array[T]) GetClass() *Class         { return ObjectGetClass(a) }
func (a *Array[T]) ToString() *String        { return ObjectToString(a) }
