package main

import (
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/chazu/jrt/rt"
)

// The demo is a small program written the way the translator emits code:
// literals through rt.Literal, every dereference null-checked, arrays
// through rt.NewArray, and a translated class with its own vtable.

// list is the translated form of
//
//	class List { int item; List next; }
type list struct {
	rt.Header
	item int32
	next *list
}

var listClass = sync.OnceValue(func() *rt.Class {
	return rt.DefineClass("List", nil)
})

func newList(item int32, next *list) *list {
	l := &list{item: item, next: next}
	l.Init(l, listClass().InstanceVTable())
	return l
}

func (l *list) HashCode() int32             { return rt.ObjectHashCode(l) }
func (l *list) Equals(other rt.Object) bool { return rt.ObjectEquals(l, other) }
func (l *list) GetClass() *rt.Class         { return rt.ObjectGetClass(l) }
func (l *list) ToString() *rt.String        { return rt.ObjectToString(l) }

func twice(k int32) int32 {
	return 2 * k
}

func str(s string) *rt.String {
	return rt.Literal(s)
}

func itoa(i int32) *rt.String {
	return rt.NewString(strconv.FormatInt(int64(i), 10))
}

func runDemo(out io.Writer) {
	emitLine := func(s *rt.String) { fmt.Fprintln(out, rt.CheckNotNull(s)) }
	emit := func(s *rt.String) { fmt.Fprint(out, rt.CheckNotNull(s)) }

	emitLine(str("  Some Types"))
	{
		s := str("hello")
		emitLine(str("    s is \"").Concat(s).Concat(str("\"")))

		c := byte('g')
		emitLine(str("    c is '").Concat(rt.NewString(string(c))).Concat(str("'")))

		b := true
		emitLine(str("    b is ").Concat(rt.NewString(strconv.FormatBool(b))))

		i := int32(2 * 7)
		emitLine(str("    i is ").Concat(itoa(i)))

		f := float32(3.141)
		emitLine(str("    f is ").Concat(rt.NewString(strconv.FormatFloat(float64(f), 'g', -1, 32))))

		a := rt.NewArray[int32](rt.IntType(), 3)
		a.Set(0, 2)
		a.Set(1, 9)
		a.Set(2, 0)
		emitLine(str("    a is {").Concat(itoa(a.Get(0))).Concat(str(", ")).Concat(itoa(a.Get(1))).
			Concat(str(", ")).Concat(itoa(a.Get(2))).Concat(str("}")))

		l := newList(4, nil)
		emitLine(str("    l is { item=").Concat(itoa(rt.CheckNotNull(l).item)).Concat(str(", next=null }")))
	}

	emitLine(str("  Some Statements"))
	{
		i := int32(4)
		i = twice(i)
		emitLine(str("    i is ").Concat(itoa(i)))

		j := int32(1)
		for j < 1000 {
			j = j + j
		}
		emitLine(str("    j is ").Concat(itoa(j)))
		if j < 300000 {
			emitLine(str("    j < 300,000"))
		} else {
			emitLine(str("    j >= 300,000"))
		}

		emit(str("    countdown"))
		for i = 10; i >= 1; i-- {
			emit(str(" ").Concat(itoa(i)))
		}
		fmt.Fprintln(out)
	}
}
