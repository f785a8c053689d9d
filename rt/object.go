package rt

import (
	"strconv"
	"sync"
	"sync/atomic"
)

// Object is implemented by every instance the runtime hands out.
//
// Concrete types embed a Header, which supplies ObjectHeader. The four
// operations are resolved on the dynamic type of the receiver; a type that
// does not override one forwards to the matching Object* default below.
type Object interface {
	ObjectHeader() *Header
	HashCode() int32
	Equals(other Object) bool
	GetClass() *Class
	ToString() *String
}

// Header is the common prefix of every instance.
type Header struct {
	vtable   *VTable // Set once by Init, never reassigned
	self     Object  // Outermost instance; every embedded view shares it
	hash     int32   // Identity hash, allocation order
	released bool
}

// identitySeq hands out identity hashes in allocation order. Hashes are
// stable for the lifetime of an object and never derived from an address.
var identitySeq atomic.Int32

// Init binds the header to self, the outermost instance that embeds it,
// and to the vtable of its dynamic type. Constructors call it exactly once,
// before the instance escapes.
func (h *Header) Init(self Object, vt *VTable) {
	if vt == nil {
		panic("rt: Header.Init with nil vtable")
	}
	if IsNull(self) {
		panic("rt: Header.Init with nil instance")
	}
	if h.vtable != nil {
		panic("rt: Header.Init called twice")
	}
	h.vtable = vt
	h.self = self
	h.hash = identitySeq.Add(1)
}

// ObjectHeader returns the header itself.
func (h *Header) ObjectHeader() *Header {
	return h
}

// Self returns the outermost instance, whichever embedded view the header
// is reached through.
func (h *Header) Self() Object {
	return h.self
}

// VTable returns the dispatch table of the instance's dynamic type.
func (h *Header) VTable() *VTable {
	return h.vtable
}

// Released reports whether the instance's destructor entry has run.
func (h *Header) Released() bool {
	return h.released
}

// ---------------------------------------------------------------------------
// Default operations of java.lang.Object
// ---------------------------------------------------------------------------

// ObjectHashCode returns the identity hash of this.
func ObjectHashCode(this Object) int32 {
	return this.ObjectHeader().hash
}

// ObjectEquals is reference identity. Nothing equals the canonical null.
// Identity is the header, so an instance equals itself through any of its
// embedded views.
func ObjectEquals(this, other Object) bool {
	if IsNull(other) {
		return false
	}
	return this.ObjectHeader() == other.ObjectHeader()
}

// ObjectGetClass reads the class from the instance's vtable, so the result
// is always the dynamic type.
func ObjectGetClass(this Object) *Class {
	return this.ObjectHeader().vtable.Class()
}

// ObjectToString renders "<ClassName>@<hashCode in lowercase hex>". Both the
// class and the hash are looked up dynamically.
func ObjectToString(this Object) *String {
	name := this.GetClass().Name()
	hash := strconv.FormatUint(uint64(uint32(this.HashCode())), 16)
	return NewString(name + "@" + hash)
}

// ---------------------------------------------------------------------------
// Plain instances
// ---------------------------------------------------------------------------

// BaseObject is an instance of java.lang.Object itself.
type BaseObject struct {
	Header
}

// The built-in vtables and classes refer to one another, so their lazy
// constructors are installed by init functions.
var objectVTable func() *VTable

func init() {
	objectVTable = sync.OnceValue(func() *VTable {
		return NewVTable(ObjectClass, nil, nil, "hashCode", "equals", "getClass", "toString")
	})
}

// NewObject allocates a plain java.lang.Object.
func NewObject() *BaseObject {
	o := &BaseObject{}
	o.Init(o, objectVTable())
	return o
}

func (o *BaseObject) HashCode() int32          { return ObjectHashCode(o) }
func (o *BaseObject) Equals(other Object) bool { return ObjectEquals(o, other) }
func (o *BaseObject) GetClass() *Class         { return ObjectGetClass(o) }
func (o *BaseObject) ToString() *String        { return ObjectToString(o) }

// ---------------------------------------------------------------------------
// Release
// ---------------------------------------------------------------------------

// Release runs the destructor entry of o's vtable and marks the header
// released. It returns false, doing nothing, if o is null or was already
// released, so each object is released at most once.
func Release(o Object) bool {
	if IsNull(o) {
		return false
	}
	h := o.ObjectHeader()
	if h.released {
		return false
	}
	if fn := h.vtable.Destructor(); fn != nil {
		fn(o)
	}
	h.released = true
	logger().Debugf("released %s@%x", h.vtable.Class().Name(), uint32(h.hash))
	return true
}
