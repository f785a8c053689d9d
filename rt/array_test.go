package rt

import (
	"fmt"
	"testing"
)

func TestIntArrayScenario(t *testing.T) {
	a := NewArray[int32](IntType(), 5)
	a.Set(2, 10)

	if got := a.Get(2); got != 10 {
		t.Errorf("Get(2) = %d, want 10", got)
	}
	expectThrow(t, ArrayIndexOutOfBoundsException, func() { a.Get(5) })
	expectThrow(t, ArrayIndexOutOfBoundsException, func() { a.Get(-1) })
}

func TestArrayBounds(t *testing.T) {
	for _, n := range []int32{1, 2, 7} {
		a := NewArray[int64](LongType(), n)
		for i := int32(-2); i <= n+1; i++ {
			err := Try(func() { a.Get(i) })
			ok := i >= 0 && i < n
			if ok && err != nil {
				t.Errorf("len %d: Get(%d) failed: %v", n, i, err)
			}
			if !ok && !isKind(err, ArrayIndexOutOfBoundsException) {
				t.Errorf("len %d: Get(%d) = %v, want ArrayIndexOutOfBoundsException", n, i, err)
			}
			err = Try(func() { a.Set(i, 1) })
			if ok != (err == nil) {
				t.Errorf("len %d: Set(%d) error = %v", n, i, err)
			}
		}
	}
}

func isKind(err error, k Kind) bool {
	e, ok := AsException(err)
	return ok && e.Kind() == k
}

func TestArrayIndexIsAnIndexOutOfBounds(t *testing.T) {
	a := NewArray[int32](IntType(), 1)
	err := Try(func() { a.Get(1) })
	e, _ := AsException(err)
	if !e.Is(IndexOutOfBoundsException) || !e.Is(RuntimeException) {
		t.Error("ArrayIndexOutOfBoundsException should be an IndexOutOfBoundsException")
	}
}

func TestArrayDefaults(t *testing.T) {
	ints := NewArray[int32](IntType(), 4)
	for i, v := range ints.Slice() {
		if v != 0 {
			t.Errorf("ints[%d] = %d, want 0", i, v)
		}
	}
	objs := NewArray[Object](ObjectClass(), 3)
	for i := int32(0); i < objs.Length(); i++ {
		if !IsNull(objs.Get(i)) {
			t.Errorf("objs[%d] should be null", i)
		}
	}
}

func TestArrayDimensionChecks(t *testing.T) {
	for _, n := range []int32{-5, -1, 0} {
		expectThrow(t, NegativeArraySizeException, func() { NewArray[int32](IntType(), n) })
	}
	if a := NewArray[int32](IntType(), 1); a.Length() != 1 {
		t.Errorf("Length = %d, want 1", a.Length())
	}
}

func TestArrayZeroLengthOption(t *testing.T) {
	withOptions(t, Options{AllowZeroLengthArrays: true})

	var a *Array[int32]
	expectNoThrow(t, func() { a = NewArray[int32](IntType(), 0) })
	if a.Length() != 0 {
		t.Errorf("Length = %d, want 0", a.Length())
	}
	expectThrow(t, ArrayIndexOutOfBoundsException, func() { a.Get(0) })
	expectThrow(t, NegativeArraySizeException, func() { NewArray[int32](IntType(), -1) })
}

func TestStringArrayStoreScenario(t *testing.T) {
	a := NewArray[Object](StringClass(), 2)

	s := NewString("ok")
	expectNoThrow(t, func() { a.Set(0, s) })
	expectThrow(t, ArrayStoreException, func() { a.Set(0, NewObject()) })
	if a.Get(0) != Object(s) {
		t.Error("failed store should leave the previous element")
	}
	expectNoThrow(t, func() { a.Set(0, nil) })
	if !IsNull(a.Get(0)) {
		t.Error("storing null should succeed")
	}
}

func TestArrayStoreCovariance(t *testing.T) {
	// A String[] viewed as Object[] still rejects non-Strings.
	var strings Object = NewArray[Object](StringClass(), 1)
	asObjects := Cast[*Array[Object]](ArrayClassOf(ObjectClass()), strings)
	expectThrow(t, ArrayStoreException, func() { asObjects.Set(0, newPoint(0, 0)) })

	points := NewArray[*point](pointClass(), 2)
	expectNoThrow(t, func() { points.Set(0, &newColorPoint(1, 1, "red").point) })
	expectNoThrow(t, func() { points.Set(1, nil) })
}

func TestReferenceArrayNeedsObjectElements(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"string", func() { NewArray[string](StringClass(), 1) }},
		{"int32", func() { NewArray[int32](ObjectClass(), 1) }},
		{"2d", func() { NewArray2D[string](StringClass(), 1, 1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("reference array with a non-Object element type should panic")
				}
			}()
			tt.fn()
		})
	}

	expectNoThrow(t, func() { NewArray[*String](StringClass(), 1) })
	expectNoThrow(t, func() { NewArray2D[Object](ObjectClass(), 1, 1) })
}

func TestPrimitiveArraySkipsStoreCheck(t *testing.T) {
	a := NewArray[byte](ByteType(), 2)
	expectNoThrow(t, func() { a.Set(1, 'x') })
	if a.Get(1) != 'x' {
		t.Errorf("Get(1) = %q, want 'x'", a.Get(1))
	}
}

func TestArrayClasses(t *testing.T) {
	tests := []struct {
		class     *Class
		name      string
		parent    *Class
		component *Class
	}{
		{ArrayClassOf(IntType()), "[I", ObjectClass(), IntType()},
		{ArrayClassOf(BooleanType()), "[Z", ObjectClass(), BooleanType()},
		{ArrayClassOf(ObjectClass()), "[Ljava.lang.Object;", ObjectClass(), ObjectClass()},
		{ArrayClassOf(StringClass()), "[Ljava.lang.String;", ArrayClassOf(ObjectClass()), StringClass()},
		{ArrayClassOf(ArrayClassOf(IntType())), "[[I", ArrayClassOf(ObjectClass()), ArrayClassOf(IntType())},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.class.Name() != tt.name {
				t.Errorf("Name = %q, want %q", tt.class.Name(), tt.name)
			}
			if tt.class.GetSuperclass() != tt.parent {
				t.Errorf("GetSuperclass = %v, want %v", tt.class.GetSuperclass(), tt.parent)
			}
			if tt.class.GetComponentType() != tt.component {
				t.Errorf("GetComponentType = %v, want %v", tt.class.GetComponentType(), tt.component)
			}
			if !tt.class.IsArray() || tt.class.Dimensions() != 1 {
				t.Error("should be a one-dimensional array class")
			}
		})
	}
	if ArrayClassOf(IntType()) != NewArray[int32](IntType(), 1).GetClass() {
		t.Error("array instances should share the class singleton")
	}
}

func TestArrayIsInstance(t *testing.T) {
	strs := NewArray[Object](StringClass(), 1)
	ints := NewArray[int32](IntType(), 1)

	if !ObjectClass().IsInstance(strs) || !ObjectClass().IsInstance(ints) {
		t.Error("arrays should be Objects")
	}
	if !ArrayClassOf(ObjectClass()).IsInstance(strs) {
		t.Error("String[] should be an Object[]")
	}
	if ArrayClassOf(ObjectClass()).IsInstance(ints) {
		t.Error("int[] should not be an Object[]")
	}
	if ArrayClassOf(StringClass()).IsInstance(NewArray[Object](ObjectClass(), 1)) {
		t.Error("Object[] should not be a String[]")
	}
}

func TestArrayUsesObjectDefaults(t *testing.T) {
	a := NewArray[int32](IntType(), 1)
	b := NewArray[int32](IntType(), 1)

	if a.Equals(b) {
		t.Error("arrays should compare by identity")
	}
	want := fmt.Sprintf("[I@%x", uint32(a.HashCode()))
	if got := a.ToString().String(); got != want {
		t.Errorf("ToString = %q, want %q", got, want)
	}
}

func TestArrayRelease(t *testing.T) {
	a := NewArray[int32](IntType(), 3)
	if !Release(a) {
		t.Fatal("Release should run")
	}
	if a.data != nil {
		t.Error("Release should drop the backing buffer")
	}
	if Release(a) {
		t.Error("second Release should be a no-op")
	}
}
