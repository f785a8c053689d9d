// Package meta encodes the runtime's class metadata as CBOR snapshots.
//
// A snapshot lists every class in the class table with its ancestry,
// component type and the slot layout of its instance vtable. Tools read
// it to check that translated code was built against a compatible layout.
package meta

import (
	"fmt"

	"github.com/chazu/jrt/rt"
	"github.com/fxamacker/cbor/v2"
)

// Version is the snapshot format version.
const Version = 1

// ClassDescriptor describes one class.
type ClassDescriptor struct {
	Name       string   `cbor:"1,keyasint"`
	Superclass string   `cbor:"2,keyasint,omitempty"`
	Component  string   `cbor:"3,keyasint,omitempty"`
	Primitive  bool     `cbor:"4,keyasint,omitempty"`
	Dimensions int      `cbor:"5,keyasint,omitempty"`
	Slots      []string `cbor:"6,keyasint,omitempty"`
}

// Snapshot is the encoded form of a class table.
type Snapshot struct {
	Version int               `cbor:"1,keyasint"`
	Classes []ClassDescriptor `cbor:"2,keyasint"`
}

// cborEncMode uses canonical mode so equal tables encode identically.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("meta: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Describe builds the descriptor of a single class.
func Describe(c *rt.Class) ClassDescriptor {
	d := ClassDescriptor{
		Name:       c.Name(),
		Primitive:  c.IsPrimitive(),
		Dimensions: c.Dimensions(),
	}
	if p := c.GetSuperclass(); p != nil {
		d.Superclass = p.Name()
	}
	if k := c.GetComponentType(); k != nil {
		d.Component = k.Name()
	}
	if vt := c.InstanceVTable(); vt != nil {
		d.Slots = vt.Selectors()
	}
	return d
}

// Capture describes every class in ct, in creation order.
func Capture(ct *rt.ClassTable) *Snapshot {
	all := ct.All()
	s := &Snapshot{
		Version: Version,
		Classes: make([]ClassDescriptor, 0, len(all)),
	}
	for _, c := range all {
		s.Classes = append(s.Classes, Describe(c))
	}
	return s
}

// Lookup returns the first descriptor with the given name and
// dimensionality, or nil.
func (s *Snapshot) Lookup(name string, dims int) *ClassDescriptor {
	for i := range s.Classes {
		if s.Classes[i].Name == name && s.Classes[i].Dimensions == dims {
			return &s.Classes[i]
		}
	}
	return nil
}

// Marshal serializes a Snapshot to CBOR bytes.
func Marshal(s *Snapshot) ([]byte, error) {
	return cborEncMode.Marshal(s)
}

// Unmarshal deserializes a Snapshot from CBOR bytes.
func Unmarshal(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := cbor.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("meta: unmarshal snapshot: %w", err)
	}
	if s.Version != Version {
		return nil, fmt.Errorf("meta: unsupported snapshot version %d", s.Version)
	}
	return &s, nil
}
