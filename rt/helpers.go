package rt

import (
	"reflect"
	"unsafe"
)

// Null returns the canonical null.
func Null() Object {
	return nil
}

// IsNull reports whether o is the canonical null. A typed nil pointer
// stored in an Object compares as null too, so handles of any static
// type can be checked the same way.
func IsNull(o Object) bool {
	if o == nil {
		return true
	}
	v := reflect.ValueOf(o)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// CheckNotNull raises NullPointerException if o is null and returns o
// unchanged otherwise. It guards every dispatch and field access.
func CheckNotNull[T Object](o T) T {
	if IsNull(o) {
		Throw(NullPointerException, "")
	}
	return o
}

// ---------------------------------------------------------------------------
// Null-checked dispatch
// ---------------------------------------------------------------------------

// HashCode invokes hashCode on the dynamic type of o.
func HashCode(o Object) int32 {
	return CheckNotNull(o).HashCode()
}

// Equals invokes equals on the dynamic type of o.
func Equals(o, other Object) bool {
	return CheckNotNull(o).Equals(other)
}

// GetClass invokes getClass on the dynamic type of o.
func GetClass(o Object) *Class {
	return CheckNotNull(o).GetClass()
}

// ToString invokes toString on the dynamic type of o.
func ToString(o Object) *String {
	return CheckNotNull(o).ToString()
}

// ---------------------------------------------------------------------------
// Type checks
// ---------------------------------------------------------------------------

// CheckStore verifies that value may be stored into array. Null is always
// allowed; anything else must be an instance of the array's component
// class, or ArrayStoreException is raised.
func CheckStore(array, value Object) {
	if IsNull(value) {
		return
	}
	k := GetClass(array).GetComponentType()
	if k == nil || !k.IsInstance(value) {
		Throw(ArrayStoreException, value.GetClass().Name())
	}
}

// Cast converts o to T after checking that it is an instance of k, raising
// ClassCastException otherwise. The object is returned as is, not copied;
// T may name any view of it, including the subclass a supertype handle
// was taken from.
// Null passes every cast and yields the zero T.
func Cast[T Object](k *Class, o Object) T {
	var zero T
	CheckNotNull(k)
	if IsNull(o) {
		return zero
	}
	if !k.IsInstance(o) {
		Throwf(ClassCastException, "class %s cannot be cast to class %s", o.GetClass().Name(), k.Name())
	}
	t, ok := viewAs[T](o)
	if !ok {
		Throwf(ClassCastException, "class %s cannot be represented as %T", o.GetClass().Name(), zero)
	}
	return t
}

// viewAs finds the handle of type T for the instance behind o: o itself,
// the outermost instance recorded in its header, or one of the embedded
// ancestor structs of that instance.
func viewAs[T Object](o Object) (T, bool) {
	if t, ok := o.(T); ok {
		return t, true
	}
	self := o.ObjectHeader().Self()
	if t, ok := self.(T); ok {
		return t, true
	}
	var zero T
	want := reflect.TypeOf((*T)(nil)).Elem()
	if want.Kind() != reflect.Pointer {
		return zero, false
	}
	v := reflect.ValueOf(self)
	for v.Kind() == reflect.Pointer && v.Elem().Kind() == reflect.Struct {
		elem := v.Elem()
		next := reflect.Value{}
		for i := 0; i < elem.NumField(); i++ {
			f := elem.Type().Field(i)
			if !f.Anonymous || f.Type.Kind() != reflect.Struct || !reflect.PointerTo(f.Type).Implements(objectType) {
				continue
			}
			// Embedded ancestors are usually unexported; NewAt yields a
			// usable pointer to them.
			next = reflect.NewAt(f.Type, unsafe.Pointer(elem.Field(i).UnsafeAddr()))
			break
		}
		if !next.IsValid() {
			break
		}
		if next.Type() == want {
			if t, ok := next.Interface().(T); ok {
				return t, true
			}
		}
		v = next
	}
	return zero, false
}

var objectType = reflect.TypeOf((*Object)(nil)).Elem()
