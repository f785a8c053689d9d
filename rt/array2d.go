package rt

// Array2D is a rows x columns array of T. Each row is its own buffer and
// both indices are checked independently.
type Array2D[T any] struct {
	Header
	length    int32 // rows
	length2   int32 // columns
	rows      [][]T
	reference bool
}

// NewArray2D allocates a length x length2 array of class component, all
// elements at T's zero value.
func NewArray2D[T any](component *Class, length, length2 int32) *Array2D[T] {
	cls := Array2DClassOf(component)
	checkElementType[T](component)
	checkDimension(length)
	checkDimension(length2)
	a := &Array2D[T]{
		length:    length,
		length2:   length2,
		rows:      make([][]T, length),
		reference: !component.primitive,
	}
	for i := range a.rows {
		a.rows[i] = make([]T, length2)
	}
	a.Init(a, cls.InstanceVTable())
	return a
}

// Length returns the number of rows.
func (a *Array2D[T]) Length() int32 {
	return a.length
}

// Length2 returns the number of columns.
func (a *Array2D[T]) Length2() int32 {
	return a.length2
}

// Get returns the element at row i, column j.
func (a *Array2D[T]) Get(i, j int32) T {
	checkIndex(i, a.length)
	checkIndex(j, a.length2)
	return a.rows[i][j]
}

// Set stores v at row i, column j, with the same store check as Array.Set.
func (a *Array2D[T]) Set(i, j int32, v T) {
	checkIndex(i, a.length)
	checkIndex(j, a.length2)
	if a.reference {
		CheckStore(a, asObject(v))
	}
	a.rows[i][j] = v
}

// Row returns an accessor for row i. The row index is checked here, the
// column index on each access.
func (a *Array2D[T]) Row(i int32) Row[T] {
	checkIndex(i, a.length)
	return Row[T]{owner: a, index: i}
}

// releaseBuffers drops every row, then the row buffer.
func (a *Array2D[T]) releaseBuffers() {
	for i := range a.rows {
		a.rows[i] = nil
	}
	a.rows = nil
}

func (a *Array2D[T]) HashCode() int32          { return ObjectHashCode(a) }
func (a *Array2D[T]) Equals(other Object) bool { return ObjectEquals(a, other) }
func (a *Array2D[T]) GetClass() *Class         { return ObjectGetClass(a) }
func (a *Array2D[T]) ToString() *String        { return ObjectToString(a) }

// Row is one row of an Array2D.
type Row[T any] struct {
	owner *Array2D[T]
	index int32
}

// Length returns the number of columns.
func (r Row[T]) Length() int32 {
	return r.owner.length2
}

// Get returns the element at column j.
func (r Row[T]) Get(j int32) T {
	return r.owner.Get(r.index, j)
}

// Set stores v at column j.
func (r Row[T]) Set(j int32, v T) {
	r.owner.Set(r.index, j, v)
}
