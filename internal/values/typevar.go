package values

import "github.com/vela-lang/vela/ir"

// TypeVar is an unbound type parameter placeholder, as distinct from a
// concrete DataType (spec.md §4.1, `static_parameter`: "if lam.sparam_vals
// is not a type variable, return it").
type TypeVar struct {
	Name *ir.Symbol
}

func (*TypeVar) IsIRValue()     {}
func (t *TypeVar) Type() string { return "TypeVar" }
func (t *TypeVar) String() string {
	if t.Name == nil {
		return "<typevar>"
	}
	return t.Name.Name
}

// IsTypeVar reports whether v is a TypeVar.
func IsTypeVar(v ir.Value) bool {
	_, ok := v.(*TypeVar)
	return ok
}
