// Package values provides the concrete runtime value kinds the Vela
// evaluator treats as opaque per spec.md §3, plus the predicates
// (IsExpr, IsSymbol, IsLong, ...) the core uses to resolve IR nodes by
// kind. Grounded on the teacher's internal/interp/runtime/value_interfaces.go
// Value/NumericValue/ComparableValue interface family, trimmed to what the
// evaluator itself inspects.
package values

import (
	"fmt"

	"github.com/vela-lang/vela/ir"
)

// Value is every concrete scalar/aggregate this module defines. It also
// satisfies ir.Value, so these values can sit directly in an Expr's
// argument vector or a frame's locals slice alongside IR nodes.
type Value interface {
	ir.Value
	Type() string
	String() string
}

// IntValue is a 64-bit signed integer (the "jl_long" of spec.md's
// predicate list, is_long).
type IntValue struct{ Val int64 }

func (*IntValue) IsIRValue()      {}
func (v *IntValue) Type() string  { return "Int" }
func (v *IntValue) String() string { return fmt.Sprintf("%d", v.Val) }

// FloatValue is a 64-bit float.
type FloatValue struct{ Val float64 }

func (*FloatValue) IsIRValue()       {}
func (v *FloatValue) Type() string   { return "Float" }
func (v *FloatValue) String() string { return fmt.Sprintf("%g", v.Val) }

// StringValue is an immutable string.
type StringValue struct{ Val string }

func (*StringValue) IsIRValue()       {}
func (v *StringValue) Type() string   { return "String" }
func (v *StringValue) String() string { return v.Val }

// BoolValue is a boolean. Evaluator comparisons against "the true/false
// constant" (spec.md §4.2, goto_ifnot) compare against the two package-level
// singletons below by pointer identity, matching the spec's "exactly"
// wording.
type BoolValue struct{ Val bool }

func (*BoolValue) IsIRValue()     {}
func (v *BoolValue) Type() string { return "Bool" }
func (v *BoolValue) String() string {
	if v.Val {
		return "true"
	}
	return "false"
}

// True and False are the two boolean singletons. goto_ifnot's condition
// check (spec.md §4.2) compares against these by pointer identity, not by
// unwrapping Val, so that any value other than exactly these two (even
// another *BoolValue with the same Val) is rejected as a type error — this
// mirrors the original interpreter's object-identity comparison against
// jl_true/jl_false.
var (
	True  = &BoolValue{Val: true}
	False = &BoolValue{Val: false}
)

// Bool returns the canonical singleton for b.
func Bool(b bool) *BoolValue {
	if b {
		return True
	}
	return False
}

// TupleValue is an immutable fixed-length sequence, used for the trailing
// actual-argument bundle of a variadic lambda (spec.md §4.3) and for
// static-parameter/type-parameter sequences (spec.md §4.1.2).
type TupleValue struct{ Elems []ir.Value }

func (*TupleValue) IsIRValue()     {}
func (v *TupleValue) Type() string { return "Tuple" }
func (v *TupleValue) String() string {
	return fmt.Sprintf("(tuple len=%d)", len(v.Elems))
}

// Unit is the result of a no-op head (spec.md §4.1: boundscheck, inbounds,
// fastmath, simdloop, meta, type_goto) and of forms like `global` that have
// no meaningful return value.
type UnitValue struct{}

func (*UnitValue) IsIRValue()     {}
func (v *UnitValue) Type() string { return "Unit" }
func (v *UnitValue) String() string {
	return "()"
}

// Unit is the single shared Unit instance.
var Unit = &UnitValue{}

// Predicates consulted by the core evaluator (spec.md §3's list). These
// operate on ir.Value since that is what flows through Expr.Args and frame
// locals; most IR node kinds are defined in package ir, so the predicates
// here simply type-switch across both packages' concrete types.
func IsExpr(v ir.Value) bool       { _, ok := v.(*ir.Expr); return ok }
func IsSymbol(v ir.Value) bool     { _, ok := v.(*ir.Symbol); return ok }
func IsLong(v ir.Value) bool       { _, ok := v.(*IntValue); return ok }
func IsString(v ir.Value) bool     { _, ok := v.(*StringValue); return ok }
func IsSSAValue(v ir.Value) bool   { _, ok := v.(*ir.SSAValue); return ok }
func IsSlot(v ir.Value) bool       { _, ok := v.(*ir.SlotNumber); return ok }
func IsGlobalRef(v ir.Value) bool  { _, ok := v.(*ir.GlobalRef); return ok }
func IsQuoteNode(v ir.Value) bool  { _, ok := v.(*ir.QuoteNode); return ok }
func IsGotoNode(v ir.Value) bool   { _, ok := v.(*ir.GotoNode); return ok }
func IsLineNode(v ir.Value) bool   { _, ok := v.(*ir.LineNode); return ok }
func IsNewvarNode(v ir.Value) bool { _, ok := v.(*ir.NewvarNode); return ok }

// IsDatatype and IsTypeVar are defined in datatype.go / typevar.go
// alongside the types they test, to keep each type's predicate next to its
// definition.

// IsSvec reports whether v is a tuple-shaped type-parameter sequence
// (spec.md's is_svec predicate; Vela represents svecs as TupleValue).
func IsSvec(v ir.Value) bool { _, ok := v.(*TupleValue); return ok }
