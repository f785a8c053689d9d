// Package rt implements the object model that translated programs run on.
//
// This package contains:
//   - The Object interface and the instance Header (vtable pointer, identity hash)
//   - Per-type VTable singletons and the process-wide ClassTable
//   - Class runtime type information, including primitive and array classes
//   - The immutable String value type
//   - Bounds- and covariance-checked 1-D and 2-D arrays
//   - The closed exception taxonomy and the null-check, cast and store-check helpers
package rt
