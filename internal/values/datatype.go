package values

import (
	"fmt"

	"github.com/vela-lang/vela/ir"
)

// DataType is the runtime representation of a type: abstract, bits, or
// composite (spec.md §4.1.2). The mutating constructors/installers that
// build and validate DataTypes (new_abstracttype, new_bitstype,
// new_datatype, set_datatype_super, reinstantiate_inner_types, ...) live in
// package typedef, which operates on the fields exposed here; DataType
// itself only carries state.
type DataType struct {
	Name *ir.Symbol

	// Params are the type's (possibly empty) type parameters. A non-empty
	// Params disables the redefinition-equivalence heuristic (spec.md
	// §4.1.3).
	Params []ir.Value

	Super *DataType

	Abstract bool
	Mutable  bool

	// Bits-type only: width in bits.
	IsBitsType bool
	NBits      int

	// Composite-type only.
	FieldNames []*ir.Symbol
	FieldTypes []ir.Value
	// Offsets are computed by typedef.ComputeFieldOffsets after the field
	// types are finalized.
	Offsets []int
	// Size is NBits/8 bytes for a bits type; for a composite type
	// typedef.ComputeFieldOffsets sets it to the number of fields (one unit
	// per field, not a byte size).
	Size int
	// NInitialized is the number of leading fields guaranteed to be set by
	// every constructor path; used only by the equivalence heuristic here.
	NInitialized int

	// Singleton holds the canonical unique instance once a no-parameter,
	// zero-sized composite type has been materialized (spec.md §4.1.2 step
	// 7, "Singleton").
	Singleton ir.Value
}

func (*DataType) IsIRValue()     {}
func (t *DataType) Type() string { return "DataType" }
func (t *DataType) String() string {
	if t.Name == nil {
		return "<anonymous type>"
	}
	return t.Name.Name
}

// IsDatatype reports whether v is a DataType.
func IsDatatype(v ir.Value) bool {
	_, ok := v.(*DataType)
	return ok
}

// IsStructType reports whether v is a concrete (non-abstract) composite
// DataType — the predicate spec.md §4.1 uses to validate `new`'s first
// argument.
func IsStructType(v ir.Value) bool {
	dt, ok := v.(*DataType)
	return ok && !dt.Abstract && !dt.IsBitsType
}

// IsType reports whether v is anything that can stand in type position: a
// DataType or a TypeVar.
func IsType(v ir.Value) bool {
	return IsDatatype(v) || IsTypeVar(v)
}

// Instance is a concrete composite-type instance: an ordered field vector
// matching dt.FieldNames.
type Instance struct {
	DT     *DataType
	Fields []ir.Value
}

func (*Instance) IsIRValue() {}
func (o *Instance) Type() string {
	if o.DT != nil {
		return o.DT.String()
	}
	return "<instance>"
}
func (o *Instance) String() string {
	return fmt.Sprintf("%s(...)", o.Type())
}
