package rt

import (
	"fmt"
	"testing"
)

func TestNewObject(t *testing.T) {
	o := NewObject()
	if o.VTable() == nil {
		t.Fatal("object should have a vtable")
	}
	if o.GetClass() != ObjectClass() {
		t.Errorf("GetClass = %v, want java.lang.Object", o.GetClass())
	}
	if o.GetClass() != o.GetClass() {
		t.Error("GetClass should return the same Class every call")
	}
}

func TestObjectHashCodeStable(t *testing.T) {
	o := NewObject()
	h := o.HashCode()
	for i := 0; i < 3; i++ {
		if o.HashCode() != h {
			t.Fatalf("HashCode changed: %d then %d", h, o.HashCode())
		}
	}
	if NewObject().HashCode() == h {
		t.Error("distinct objects should get distinct identity hashes")
	}
}

func TestObjectEqualsIsIdentity(t *testing.T) {
	a := NewObject()
	b := NewObject()

	if !a.Equals(a) {
		t.Error("object should equal itself")
	}
	if a.Equals(b) {
		t.Error("distinct objects should not be equal")
	}
	if a.Equals(nil) {
		t.Error("object should not equal null")
	}
}

func TestObjectEqualsThroughEmbeddedView(t *testing.T) {
	cp := newColorPoint(1, 2, "red")
	var o Object = cp

	if !cp.Equals(cp) {
		t.Error("colorPoint should equal itself")
	}
	if !o.Equals(&cp.point) {
		t.Error("colorPoint should equal its embedded point view")
	}
	if !Equals(&cp.point, cp) {
		t.Error("embedded point view should equal the colorPoint")
	}
	if cp.Equals(newColorPoint(1, 2, "red")) {
		t.Error("distinct colorPoints should not be equal")
	}
	if cp.ObjectHeader().Self() != o {
		t.Errorf("Self = %T, want *rt.colorPoint", cp.ObjectHeader().Self())
	}
}

func TestHeaderInitNilInstancePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Init with a nil instance should panic")
		}
	}()
	var h Header
	h.Init(nil, objectVTable())
}

func TestObjectToString(t *testing.T) {
	o := NewObject()
	want := fmt.Sprintf("java.lang.Object@%x", uint32(o.HashCode()))
	if got := o.ToString().String(); got != want {
		t.Errorf("ToString = %q, want %q", got, want)
	}
}

func TestObjectToStringUsesOverriddenHashCode(t *testing.T) {
	p := newPoint(3, 4)
	want := fmt.Sprintf("test.Point@%x", uint32(p.HashCode()))
	if got := ObjectToString(p).String(); got != want {
		t.Errorf("ObjectToString = %q, want %q", got, want)
	}
}

func TestObjectToStringNegativeHash(t *testing.T) {
	// "polygenelubricants" hashes to math.MinInt32.
	s := NewString("polygenelubricants")
	if s.HashCode() != -2147483648 {
		t.Fatalf("HashCode = %d, want -2147483648", s.HashCode())
	}
	want := "java.lang.String@80000000"
	if got := ObjectToString(s).String(); got != want {
		t.Errorf("ObjectToString = %q, want %q", got, want)
	}
}

func TestHeaderInitTwicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("second Init should panic")
		}
	}()
	o := NewObject()
	o.Init(o, objectVTable())
}

func TestReleaseOnce(t *testing.T) {
	o := NewObject()
	if o.Released() {
		t.Fatal("new object should not be released")
	}
	if !Release(o) {
		t.Error("first Release should run")
	}
	if !o.Released() {
		t.Error("object should be marked released")
	}
	if Release(o) {
		t.Error("second Release should be a no-op")
	}
	if Release(nil) {
		t.Error("releasing null should be a no-op")
	}
}
