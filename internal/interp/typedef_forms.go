package interp

import (
	"github.com/vela-lang/vela/internal/typedef"
	"github.com/vela-lang/vela/internal/values"
	"github.com/vela-lang/vela/ir"
)

// evalAbstractType implements the `abstract_type` head (spec.md §4.1.2):
// args[0] name, args[1] parameter-sequence expression, args[2] supertype
// expression.
func (in *Interp) evalAbstractType(e *ir.Expr, frame *Frame) (ir.Value, error) {
	if len(e.Args) != 3 {
		return nil, invalidIRf("abstract_type expression requires 3 arguments")
	}
	sym, ok := e.Args[0].(*ir.Symbol)
	if !ok {
		return nil, invalidIRf("abstract_type requires a symbol name")
	}
	if err := in.beginTypedef(); err != nil {
		return nil, err
	}

	params, err := in.evalTypeParams(e.Args[1], frame)
	if err != nil {
		in.endTypedef()
		return nil, err
	}
	dt := typedef.NewAbstractType(sym, params)

	return in.installTypedef(sym, dt, frame, func() error {
		return in.installSuper(dt, e.Args[2], frame)
	})
}

// evalBitsType implements the `bits_type` head (spec.md §4.1.2): args[0]
// name, args[1] parameter-sequence, args[2] bit-width expression, args[3]
// supertype expression.
func (in *Interp) evalBitsType(e *ir.Expr, frame *Frame) (ir.Value, error) {
	if len(e.Args) != 4 {
		return nil, invalidIRf("bits_type expression requires 4 arguments")
	}
	sym, ok := e.Args[0].(*ir.Symbol)
	if !ok {
		return nil, invalidIRf("bits_type requires a symbol name")
	}
	if err := in.beginTypedef(); err != nil {
		return nil, err
	}

	params, err := in.evalTypeParams(e.Args[1], frame)
	if err != nil {
		in.endTypedef()
		return nil, err
	}

	nbVal, err := in.Eval(e.Args[2], frame)
	if err != nil {
		in.endTypedef()
		return nil, err
	}
	nb, ok := asLong(nbVal)
	if !ok {
		in.endTypedef()
		return nil, typedefErrorf("invalid declaration of bits type %s", sym.Name)
	}
	dt, err := typedef.NewBitsType(sym, params, nb)
	if err != nil {
		in.endTypedef()
		return nil, typedefErrorf("%s", err.Error())
	}

	return in.installTypedef(sym, dt, frame, func() error {
		return in.installSuper(dt, e.Args[3], frame)
	})
}

// evalCompositeType implements the `composite_type` head (spec.md
// §4.1.2): args[0] name, args[1] params, args[2] field-name sequence,
// args[3] field-type sequence expression, args[4] supertype expression,
// args[5] mutability flag, args[6] ninitialized.
func (in *Interp) evalCompositeType(e *ir.Expr, frame *Frame) (ir.Value, error) {
	if len(e.Args) != 7 {
		return nil, invalidIRf("composite_type expression requires 7 arguments")
	}
	sym, ok := e.Args[0].(*ir.Symbol)
	if !ok {
		return nil, invalidIRf("composite_type requires a symbol name")
	}
	if err := in.beginTypedef(); err != nil {
		return nil, err
	}

	params, err := in.evalTypeParams(e.Args[1], frame)
	if err != nil {
		in.endTypedef()
		return nil, err
	}

	fieldNames, err := evalFieldNames(e.Args[2])
	if err != nil {
		in.endTypedef()
		return nil, err
	}

	mutableVal, err := in.Eval(e.Args[5], frame)
	if err != nil {
		in.endTypedef()
		return nil, err
	}
	mutable, _ := mutableVal.(*values.BoolValue)

	ninitVal, err := in.Eval(e.Args[6], frame)
	if err != nil {
		in.endTypedef()
		return nil, err
	}
	ninit, _ := asLong(ninitVal)

	dt := typedef.NewDataType(sym, params, fieldNames, nil, mutable != nil && mutable.Val, ninit)

	// Field offsets and singleton materialization (spec.md §4.1.2 step 7)
	// must land before installTypedef's equivalence check (step 8) runs,
	// so they're computed inside the rollback body rather than after.
	return in.installTypedef(sym, dt, frame, func() error {
		if err := in.installSuper(dt, e.Args[4], frame); err != nil {
			return err
		}
		fieldTypesVal, err := in.Eval(e.Args[3], frame)
		if err != nil {
			return err
		}
		tup, ok := fieldTypesVal.(*values.TupleValue)
		if !ok || len(tup.Elems) != len(dt.FieldNames) {
			return typeMismatchf("composite_type field-type sequence length mismatch for %s", sym.Name)
		}
		for _, ft := range tup.Elems {
			if !values.IsType(ft) {
				return typeMismatchf("composite_type field type must be a type or type variable")
			}
		}
		dt.FieldTypes = tup.Elems
		typedef.ReinstantiateInnerTypes(dt)
		typedef.ComputeFieldOffsets(dt)
		typedef.MakeSingletonIfEligible(dt)
		return nil
	})
}

// installTypedef runs the common rollback protocol shared by all three
// type-definition forms (spec.md §4.1.2 steps 4-8): snapshot the current
// binding value, install dt provisionally so recursive field references
// resolve, run body (which installs the supertype and, for composite
// types, the field types), and on failure restore the previous binding
// value and reset partially-instantiated inner types before rethrowing.
// On success, apply the equiv_type heuristic (spec.md §4.1.3) to decide
// whether the redefinition is a silent no-op or a real checked
// assignment.
func (in *Interp) installTypedef(sym *ir.Symbol, dt *values.DataType, frame *Frame, body func() error) (ir.Value, error) {
	defer in.endTypedef()

	mod := frame.CurrentModule(in.CurrentModule())
	b := mod.GetBindingWr(sym)
	prev := b.Value
	hadPrev := b.Declared

	if hadPrev && b.Constant {
		if _, ok := prev.(*values.DataType); !ok {
			return nil, typedefErrorf("invalid redefinition of constant %s", sym.Name)
		}
	}

	b.Value = dt

	if err := body(); err != nil {
		typedef.ResetInstantiateInnerTypes(dt)
		b.Value = prev
		return nil, err
	}

	b.Value = prev
	if prevDT, ok := prev.(*values.DataType); !hadPrev || !ok || !typedef.Equivalent(prevDT, dt) {
		if err := mod.CheckedAssignment(b, dt); err != nil {
			return nil, err
		}
	}
	return values.Unit, nil
}

// installSuper evaluates superExpr and installs it as dt's supertype.
func (in *Interp) installSuper(dt *values.DataType, superExpr ir.Value, frame *Frame) error {
	superVal, err := in.Eval(superExpr, frame)
	if err != nil {
		return err
	}
	if err := typedef.SetDatatypeSuper(dt, superVal); err != nil {
		return typedefErrorf("%s", err.Error())
	}
	return nil
}

// evalTypeParams validates and unwraps a type-parameter sequence
// expression into a slice (spec.md §4.1.2 step 2).
func (in *Interp) evalTypeParams(paramsExpr ir.Value, frame *Frame) ([]ir.Value, error) {
	v, err := in.Eval(paramsExpr, frame)
	if err != nil {
		return nil, err
	}
	tup, ok := v.(*values.TupleValue)
	if !ok {
		return nil, typeMismatchf("type-parameter argument must be a type-parameter sequence")
	}
	return tup.Elems, nil
}

// evalFieldNames extracts a composite type's declared field names; these
// are not evaluated (they're quoted symbols), matching spec.md's
// description of args[2] as a "field-name sequence".
func evalFieldNames(v ir.Value) ([]*ir.Symbol, error) {
	tup, ok := v.(*values.TupleValue)
	if !ok {
		return nil, invalidIRf("composite_type field-name argument must be a tuple of symbols")
	}
	out := make([]*ir.Symbol, len(tup.Elems))
	for i, e := range tup.Elems {
		sym, ok := e.(*ir.Symbol)
		if !ok {
			return nil, invalidIRf("composite_type field names must be symbols")
		}
		out[i] = sym
	}
	return out, nil
}
