package values

import "github.com/vela-lang/vela/ir"

// Built-in DataTypes for the scalar kinds this package defines, used by
// dispatch's signature matching and by static_typeof (spec.md §4.1, which
// always returns the top type).
var (
	AnyType    = &DataType{Name: ir.Intern("Any"), Abstract: true}
	IntType    = &DataType{Name: ir.Intern("Int"), Super: AnyType}
	FloatType  = &DataType{Name: ir.Intern("Float"), Super: AnyType}
	StringType = &DataType{Name: ir.Intern("String"), Super: AnyType}
	BoolType   = &DataType{Name: ir.Intern("Bool"), Super: AnyType}
	TupleType  = &DataType{Name: ir.Intern("Tuple"), Super: AnyType}
	UnitType   = &DataType{Name: ir.Intern("Unit"), Super: AnyType}
)

// TypeOf returns the runtime DataType of v, used for dispatch candidate
// matching (spec.md's apply_generic collaborator).
func TypeOf(v ir.Value) *DataType {
	switch val := v.(type) {
	case *IntValue:
		return IntType
	case *FloatValue:
		return FloatType
	case *StringValue:
		return StringType
	case *BoolValue:
		return BoolType
	case *TupleValue:
		return TupleType
	case *UnitValue:
		return UnitType
	case *Instance:
		return val.DT
	case *DataType:
		return AnyType // a type value's type is, loosely, Any (no metaclass modeled here)
	default:
		return AnyType
	}
}

// IsSubtype reports whether dt is dt itself or a (transitive) subtype of
// super, per the Super chain installed by typedef.SetDatatypeSuper.
func IsSubtype(dt, super *DataType) bool {
	if super == AnyType {
		return true
	}
	for t := dt; t != nil; t = t.Super {
		if t == super {
			return true
		}
	}
	return false
}
