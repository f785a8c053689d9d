package rt

import (
	"errors"
	"fmt"
	"sync"
)

// ---------------------------------------------------------------------------
// Exception kinds
// ---------------------------------------------------------------------------

// Kind identifies one of the runtime's fault classes. The set is closed.
// Kinds are errors themselves, so errors.Is(err, IndexOutOfBoundsException)
// matches any thrown fault whose kind is-a IndexOutOfBoundsException.
type Kind uint8

const (
	Throwable Kind = iota
	Exception
	RuntimeException
	NullPointerException
	NegativeArraySizeException
	ArrayStoreException
	ClassCastException
	IndexOutOfBoundsException
	ArrayIndexOutOfBoundsException

	numKinds
)

var kindInfo = [numKinds]struct {
	name   string
	parent Kind
}{
	Throwable:                      {"java.lang.Throwable", Throwable},
	Exception:                      {"java.lang.Exception", Throwable},
	RuntimeException:               {"java.lang.RuntimeException", Exception},
	NullPointerException:           {"java.lang.NullPointerException", RuntimeException},
	NegativeArraySizeException:     {"java.lang.NegativeArraySizeException", RuntimeException},
	ArrayStoreException:            {"java.lang.ArrayStoreException", RuntimeException},
	ClassCastException:             {"java.lang.ClassCastException", RuntimeException},
	IndexOutOfBoundsException:      {"java.lang.IndexOutOfBoundsException", RuntimeException},
	ArrayIndexOutOfBoundsException: {"java.lang.ArrayIndexOutOfBoundsException", IndexOutOfBoundsException},
}

// String returns the class name of the kind.
func (k Kind) String() string {
	if k >= numKinds {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindInfo[k].name
}

func (k Kind) Error() string {
	return k.String()
}

// Parent returns the direct superkind. Throwable has none.
func (k Kind) Parent() (Kind, bool) {
	if k == Throwable || k >= numKinds {
		return 0, false
	}
	return kindInfo[k].parent, true
}

// IsA reports whether k is other or one of its descendants.
func (k Kind) IsA(other Kind) bool {
	for cur, ok := k, k < numKinds; ok; cur, ok = cur.Parent() {
		if cur == other {
			return true
		}
	}
	return false
}

var kindClasses [numKinds]func() *Class

func init() {
	for i := range kindClasses {
		kindClasses[i] = sync.OnceValue(Kind(i).define)
	}
}

// Class returns the exception class of the kind, creating it on first use.
func (k Kind) Class() *Class {
	return kindClasses[k]()
}

func (k Kind) define() *Class {
	parent := ObjectClass()
	var slots []string
	if p, ok := k.Parent(); ok {
		parent = p.Class()
	} else {
		slots = []string{"toString", "getMessage"}
	}
	name := k.String()
	return classes.intern(name, func() *Class {
		c := newClass(name, parent, nil, false)
		c.instanceVT = NewVTable(func() *Class { return c }, parent.instanceVT, nil, slots...)
		return c
	})
}

// ---------------------------------------------------------------------------
// Signaled exceptions
// ---------------------------------------------------------------------------

// SignaledException is a thrown fault. It is raised with panic and
// unwinds until a handler installed with Try recovers it.
type SignaledException struct {
	Header
	kind    Kind
	message string
}

// NewException allocates an exception of kind k without throwing it.
func NewException(k Kind, message string) *SignaledException {
	e := &SignaledException{kind: k, message: message}
	e.Init(e, k.Class().InstanceVTable())
	return e
}

// Kind returns the kind of the fault.
func (e *SignaledException) Kind() Kind {
	return e.kind
}

// GetMessage returns the detail message, or nil if there is none.
func (e *SignaledException) GetMessage() *String {
	if e.message == "" {
		return nil
	}
	return NewString(e.message)
}

func (e *SignaledException) Error() string {
	if e.message == "" {
		return e.kind.String()
	}
	return e.kind.String() + ": " + e.message
}

// Is matches a Kind target when the fault's kind is-a that kind.
func (e *SignaledException) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && e.kind.IsA(k)
}

func (e *SignaledException) HashCode() int32          { return ObjectHashCode(e) }
func (e *SignaledException) Equals(other Object) bool { return ObjectEquals(e, other) }
func (e *SignaledException) GetClass() *Class         { return ObjectGetClass(e) }

// ToString renders "<ClassName>" or "<ClassName>: <message>".
func (e *SignaledException) ToString() *String {
	return NewString(e.Error())
}

// ---------------------------------------------------------------------------
// Raising and recovering
// ---------------------------------------------------------------------------

// Throw raises a new fault of kind k.
func Throw(k Kind, message string) {
	e := NewException(k, message)
	logger().Debugf("throw %s", e.Error())
	panic(e)
}

// Throwf raises a new fault of kind k with a formatted message.
func Throwf(k Kind, format string, args ...any) {
	Throw(k, fmt.Sprintf(format, args...))
}

// Try runs fn and returns the fault it raised, or nil. Only faults are
// recovered; any other panic continues to unwind.
func Try(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(*SignaledException)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()
	fn()
	return nil
}

// AsException extracts the fault from an error returned by Try.
func AsException(err error) (*SignaledException, bool) {
	var e *SignaledException
	ok := errors.As(err, &e)
	return e, ok
}
