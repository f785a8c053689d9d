package rt

// VTable is the per-type dispatch table.
//
// Operations themselves are Go methods on the concrete type; the table
// records what the runtime needs beyond that: the class back-reference, the
// parent table, the destructor entry and the ordered slot layout. A
// subtype's slots start with exactly its parent's slots in the same order,
// so code compiled against the parent layout resolves on any subtype.
type VTable struct {
	isa        func() *Class // Resolved lazily to avoid init-order cycles
	parent     *VTable
	destructor func(Object)
	slots      []string
	local      map[string]bool // Slots defined or overridden at this level
}

// NewVTable creates a table for a type. Parent slots are copied in order;
// a name in slots that already exists in the parent overrides it in place,
// any other name is appended. A nil destructor inherits the parent's.
func NewVTable(isa func() *Class, parent *VTable, destructor func(Object), slots ...string) *VTable {
	vt := &VTable{
		isa:        isa,
		parent:     parent,
		destructor: destructor,
		local:      make(map[string]bool, len(slots)),
	}
	if parent != nil {
		vt.slots = make([]string, len(parent.slots), len(parent.slots)+len(slots))
		copy(vt.slots, parent.slots)
		if destructor == nil {
			vt.destructor = parent.destructor
		}
	}
	for _, s := range slots {
		vt.local[s] = true
		if vt.Index(s) < 0 {
			vt.slots = append(vt.slots, s)
		}
	}
	return vt
}

// Class returns the class this vtable belongs to.
func (vt *VTable) Class() *Class {
	return vt.isa()
}

// Parent returns the parent vtable (nil for java.lang.Object).
func (vt *VTable) Parent() *VTable {
	return vt.parent
}

// Destructor returns the destructor entry, or nil if the type owns no buffers.
func (vt *VTable) Destructor() func(Object) {
	return vt.destructor
}

// Index returns the position of the named slot, or -1.
func (vt *VTable) Index(slot string) int {
	for i, s := range vt.slots {
		if s == slot {
			return i
		}
	}
	return -1
}

// Overrides reports whether this level defines the slot itself rather
// than inheriting it.
func (vt *VTable) Overrides(slot string) bool {
	return vt.local[slot]
}

// Selectors returns the slot names in table order.
func (vt *VTable) Selectors() []string {
	out := make([]string, len(vt.slots))
	copy(out, vt.slots)
	return out
}

// Len returns the number of slots.
func (vt *VTable) Len() int {
	return len(vt.slots)
}

// ExtendsLayout reports whether vt begins with every slot of other in the
// same positions.
func (vt *VTable) ExtendsLayout(other *VTable) bool {
	if len(other.slots) > len(vt.slots) {
		return false
	}
	for i, s := range other.slots {
		if vt.slots[i] != s {
			return false
		}
	}
	return true
}
