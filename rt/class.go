package rt

import "sync"

// Class is the runtime type descriptor: java.lang.Class.
type Class struct {
	Header
	name       *String
	parent     *Class // nil only for java.lang.Object and primitives
	component  *Class // non-nil only for array classes
	primitive  bool
	dims       int     // 0 for non-array classes, else 1 or 2
	instanceVT *VTable // vtable of instances, nil for primitives
}

var classVTable func() *VTable

func newClass(name string, parent, component *Class, primitive bool) *Class {
	c := &Class{
		name:      NewString(name),
		parent:    parent,
		component: component,
		primitive: primitive,
	}
	c.Init(c, classVTable())
	return c
}

// ---------------------------------------------------------------------------
// Built-in classes
// ---------------------------------------------------------------------------

var objectClass, stringClass, classClass func() *Class

func init() {
	classVTable = sync.OnceValue(func() *VTable {
		return NewVTable(ClassClass, objectVTable(), nil,
			"toString", "getName", "getSuperclass", "isPrimitive",
			"isArray", "getComponentType", "isInstance")
	})
	objectClass = sync.OnceValue(func() *Class {
		return classes.intern("java.lang.Object", func() *Class {
			c := newClass("java.lang.Object", nil, nil, false)
			c.instanceVT = objectVTable()
			return c
		})
	})
	stringClass = builtinClass("java.lang.String", func() *VTable { return stringVTable() })
	classClass = builtinClass("java.lang.Class", func() *VTable { return classVTable() })
}

// builtinClass returns a lazy constructor for a built-in direct subclass
// of java.lang.Object.
func builtinClass(name string, vt func() *VTable) func() *Class {
	return sync.OnceValue(func() *Class {
		parent := ObjectClass()
		return classes.intern(name, func() *Class {
			c := newClass(name, parent, nil, false)
			c.instanceVT = vt()
			return c
		})
	})
}

// ObjectClass returns the class of java.lang.Object, the root of every chain.
func ObjectClass() *Class { return objectClass() }

// StringClass returns the class of java.lang.String.
func StringClass() *Class { return stringClass() }

// ClassClass returns the class of java.lang.Class.
func ClassClass() *Class { return classClass() }

// Primitive classes, with the descriptor codes used in array class names.
var primitiveCodes = map[string]string{
	"boolean": "Z",
	"byte":    "B",
	"char":    "C",
	"short":   "S",
	"int":     "I",
	"long":    "J",
	"float":   "F",
	"double":  "D",
}

func primitiveClass(name string) func() *Class {
	return sync.OnceValue(func() *Class {
		return classes.intern(name, func() *Class {
			return newClass(name, nil, nil, true)
		})
	})
}

var (
	booleanType = primitiveClass("boolean")
	byteType    = primitiveClass("byte")
	charType    = primitiveClass("char")
	shortType   = primitiveClass("short")
	intType     = primitiveClass("int")
	longType    = primitiveClass("long")
	floatType   = primitiveClass("float")
	doubleType  = primitiveClass("double")
)

func BooleanType() *Class { return booleanType() }
func ByteType() *Class    { return byteType() }
func CharType() *Class    { return charType() }
func ShortType() *Class   { return shortType() }
func IntType() *Class     { return intType() }
func LongType() *Class    { return longType() }
func FloatType() *Class   { return floatType() }
func DoubleType() *Class  { return doubleType() }

// DefineClass interns a translated class and builds the vtable its
// instances use. The vtable extends the parent's with slots. A nil parent
// means java.lang.Object. Defining a name twice with the same parent returns
// the first class; a different parent panics.
func DefineClass(name string, parent *Class, slots ...string) *Class {
	if parent == nil {
		parent = ObjectClass()
	}
	if parent.instanceVT == nil {
		panic("rt: cannot extend " + parent.Name())
	}
	c := classes.intern(name, func() *Class {
		c := newClass(name, parent, nil, false)
		c.instanceVT = NewVTable(func() *Class { return c }, parent.instanceVT, nil, slots...)
		return c
	})
	if c.parent != parent {
		panic("rt: class " + name + " already defined with superclass " + c.parent.Name())
	}
	return c
}

// Bootstrap creates the built-in classes eagerly. It is never required;
// every class is also created on first use.
func Bootstrap() {
	ObjectClass()
	StringClass()
	ClassClass()
	for _, fn := range []func() *Class{booleanType, byteType, charType, shortType, intType, longType, floatType, doubleType} {
		fn()
	}
	for k := Throwable; k < numKinds; k++ {
		k.Class()
	}
	logger().Infof("bootstrapped %d classes", classes.Len())
}

// ---------------------------------------------------------------------------
// java.lang.Class operations
// ---------------------------------------------------------------------------

func (c *Class) HashCode() int32          { return ObjectHashCode(c) }
func (c *Class) Equals(other Object) bool { return ObjectEquals(c, other) }
func (c *Class) GetClass() *Class         { return ObjectGetClass(c) }

// ToString renders "class <name>", or just the name for a primitive.
func (c *Class) ToString() *String {
	if c.primitive {
		return c.name
	}
	return NewString("class " + c.name.data)
}

func (c *Class) GetName() *String        { return c.name }
func (c *Class) GetSuperclass() *Class   { return c.parent }
func (c *Class) IsPrimitive() bool       { return c.primitive }
func (c *Class) IsArray() bool           { return c.component != nil }
func (c *Class) GetComponentType() *Class { return c.component }

// IsInstance reports whether o is an instance of c: false for null,
// otherwise true iff c is o's dynamic class or one of its superclasses.
func (c *Class) IsInstance(o Object) bool {
	if IsNull(o) {
		return false
	}
	return o.GetClass().IsSubclassOf(c)
}

// ---------------------------------------------------------------------------
// Go-side helpers
// ---------------------------------------------------------------------------

// Name returns the class name as a Go string.
func (c *Class) Name() string {
	return c.name.data
}

// String implements the Stringer interface.
func (c *Class) String() string {
	return c.Name()
}

// Dimensions returns 1 or 2 for array classes and 0 otherwise.
func (c *Class) Dimensions() int {
	return c.dims
}

// InstanceVTable returns the vtable shared by instances of c, or nil for
// primitive classes.
func (c *Class) InstanceVTable() *VTable {
	return c.instanceVT
}

// IsSubclassOf returns true if c is a subclass of other (or is the same class).
func (c *Class) IsSubclassOf(other *Class) bool {
	for current := c; current != nil; current = current.parent {
		if current == other {
			return true
		}
	}
	return false
}

// Superclasses returns all superclasses from immediate parent to root.
func (c *Class) Superclasses() []*Class {
	var result []*Class
	for current := c.parent; current != nil; current = current.parent {
		result = append(result, current)
	}
	return result
}

// Depth returns the inheritance depth (0 for root class).
func (c *Class) Depth() int {
	depth := 0
	for current := c.parent; current != nil; current = current.parent {
		depth++
	}
	return depth
}
