package interp

import (
	"github.com/vela-lang/vela/internal/dispatch"
	"github.com/vela-lang/vela/internal/values"
	"github.com/vela-lang/vela/ir"
)

// evalMethod implements the `method` head (spec.md §4.1.1). With 1
// argument it is a pure generic-function declaration; with 4 it installs
// a concrete method body.
//
// Open question (spec.md §9): the source tolerates a non-symbol name when
// nargs == 4. This implementation preserves that tolerance by simply
// skipping the binding/generic-function lookup in that case and
// installing the method on whatever GenericFunction args[0] evaluates to.
func (in *Interp) evalMethod(e *ir.Expr, frame *Frame) (ir.Value, error) {
	switch len(e.Args) {
	case 1:
		sym, ok := e.Args[0].(*ir.Symbol)
		if !ok {
			return nil, invalidIRf("method declaration requires a symbol name")
		}
		return in.genericFunctionFor(sym, frame)

	case 4:
		var gf *dispatch.GenericFunction
		if sym, ok := e.Args[0].(*ir.Symbol); ok {
			g, err := in.genericFunctionFor(sym, frame)
			if err != nil {
				return nil, err
			}
			gf = g
		} else {
			v, err := in.Eval(e.Args[0], frame)
			if err != nil {
				return nil, err
			}
			g, ok := v.(*dispatch.GenericFunction)
			if !ok {
				return nil, invalidIRf("method installation target is not a generic function")
			}
			gf = g
		}

		sigVal, err := in.Eval(e.Args[1], frame)
		if err != nil {
			return nil, err
		}
		sig, err := asSignature(sigVal)
		if err != nil {
			return nil, err
		}

		lamVal, err := in.Eval(e.Args[2], frame)
		if err != nil {
			return nil, err
		}
		lam, ok := lamVal.(*ir.LambdaInfo)
		if !ok {
			return nil, invalidIRf("method body expression did not evaluate to a lambda")
		}

		extra, err := in.Eval(e.Args[3], frame)
		if err != nil {
			return nil, err
		}

		dispatch.MethodDef(gf, sig, lam, extra)
		return values.Unit, nil

	default:
		return nil, invalidIRf("method expression requires 1 or 4 arguments")
	}
}

// genericFunctionFor looks up or creates the binding for sym in the
// current module and ensures it holds a GenericFunction (spec.md §4.1.1,
// "look up or create its binding ... and request a generic-function
// definition").
func (in *Interp) genericFunctionFor(sym *ir.Symbol, frame *Frame) (*dispatch.GenericFunction, error) {
	mod := frame.CurrentModule(in.CurrentModule())
	b := mod.GetBindingWr(sym)
	if gf, ok := b.Value.(*dispatch.GenericFunction); ok {
		return gf, nil
	}
	gf := dispatch.GenericFunctionDef(sym, in.Invoker())
	if err := mod.CheckedAssignment(b, gf); err != nil {
		return nil, err
	}
	return gf, nil
}

// asSignature converts an evaluated signature expression (a tuple of
// types/typevars) into a positional signature slice.
func asSignature(v ir.Value) ([]ir.Value, error) {
	tup, ok := v.(*values.TupleValue)
	if !ok {
		return nil, invalidIRf("method signature must be a type tuple")
	}
	for _, p := range tup.Elems {
		if !values.IsType(p) {
			return nil, typeMismatchf("method signature entries must be types or type variables")
		}
	}
	return tup.Elems, nil
}
