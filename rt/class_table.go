package rt

import "sync"

// ClassTable holds every class created in the process, keyed by name.
// Interning through the table is what guarantees a single Class per type.
type ClassTable struct {
	mu      sync.RWMutex
	classes map[string]*Class
	order   []*Class
}

// NewClassTable creates a new empty class table.
func NewClassTable() *ClassTable {
	return &ClassTable{
		classes: make(map[string]*Class),
	}
}

var classes = NewClassTable()

// Classes returns the process-wide class table.
func Classes() *ClassTable {
	return classes
}

// ForName looks up a class by name in the process-wide table.
func ForName(name string) *Class {
	return classes.Lookup(name)
}

// Lookup finds a class by name.
func (ct *ClassTable) Lookup(name string) *Class {
	ct.mu.RLock()
	defer ct.mu.RUnlock()
	return ct.classes[name]
}

// Has returns true if a class with this name is registered.
func (ct *ClassTable) Has(name string) bool {
	return ct.Lookup(name) != nil
}

// All returns all registered classes in creation order.
func (ct *ClassTable) All() []*Class {
	ct.mu.RLock()
	defer ct.mu.RUnlock()

	result := make([]*Class, len(ct.order))
	copy(result, ct.order)
	return result
}

// Len returns the number of registered classes.
func (ct *ClassTable) Len() int {
	ct.mu.RLock()
	defer ct.mu.RUnlock()
	return len(ct.order)
}

// intern returns the class registered under key, calling build to create
// it if there is none. build runs under the table lock and must not call
// back into the table; callers resolve parents before interning.
func (ct *ClassTable) intern(key string, build func() *Class) *Class {
	ct.mu.RLock()
	c := ct.classes[key]
	ct.mu.RUnlock()
	if c != nil {
		return c
	}

	ct.mu.Lock()
	defer ct.mu.Unlock()
	if c := ct.classes[key]; c != nil {
		return c
	}
	c = build()
	ct.classes[key] = c
	ct.order = append(ct.order, c)
	logger().Debugf("defined class %s", c.Name())
	return c
}
