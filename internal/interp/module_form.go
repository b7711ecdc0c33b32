package interp

import (
	"github.com/vela-lang/vela/internal/values"
	"github.com/vela-lang/vela/ir"
)

// evalConst implements the `const` head: mark args[0] (a bare symbol) as
// a constant binding in the current module (spec.md §4.1).
func (in *Interp) evalConst(e *ir.Expr, frame *Frame) (ir.Value, error) {
	if len(e.Args) != 1 {
		return nil, invalidIRf("const expression requires exactly 1 argument")
	}
	sym, ok := e.Args[0].(*ir.Symbol)
	if !ok {
		return nil, invalidIRf("const expression requires a symbol argument")
	}
	mod := frame.CurrentModule(in.CurrentModule())
	b := mod.GetBindingWr(sym)
	mod.DeclareConstant(b)
	return values.Unit, nil
}

// evalGlobal implements the `global` head: ensure a writable binding
// exists in the current module for every argument symbol (spec.md §4.1).
func (in *Interp) evalGlobal(e *ir.Expr, frame *Frame) (ir.Value, error) {
	mod := frame.CurrentModule(in.CurrentModule())
	for _, a := range e.Args {
		sym, ok := a.(*ir.Symbol)
		if !ok {
			return nil, invalidIRf("global expression requires symbol arguments")
		}
		mod.EnsureGlobal(sym)
	}
	return values.Unit, nil
}

// ModuleEvaluator is the injectable collaborator for the `module`
// expression head (spec.md §1, "module system" is an external
// collaborator consumed via eval_module_expr). When unset, Interp falls
// back to EvalModuleExpr's minimal built-in behavior.
type ModuleEvaluator func(in *Interp, e *ir.Expr, frame *Frame) (ir.Value, error)

// EvalModuleExpr implements the `module` head by delegating to
// in.OnModuleExpr if the embedding driver supplied one; otherwise it
// falls back to a minimal built-in interpretation: args[0] names the new
// module, and args[1:] is its body, evaluated with the new module
// installed as current for the duration (spec.md §4.1, "module |
// Delegate to module-definition collaborator").
func (in *Interp) EvalModuleExpr(e *ir.Expr, frame *Frame) (ir.Value, error) {
	if in.OnModuleExpr != nil {
		return in.OnModuleExpr(in, e, frame)
	}
	if len(e.Args) < 1 {
		return nil, invalidIRf("module expression requires a name argument")
	}
	sym, ok := e.Args[0].(*ir.Symbol)
	if !ok {
		return nil, invalidIRf("module expression requires a symbol name")
	}

	sub := values.NewModule(sym.Name)
	parent := frame.CurrentModule(in.CurrentModule())
	b := parent.GetBindingWr(sym)
	if err := parent.CheckedAssignment(b, sub); err != nil {
		return nil, err
	}
	parent.DeclareConstant(b)

	restore := in.swapModules(sub)
	defer restore()

	if _, err := in.ToplevelEvalBody(e.Args[1:]); err != nil {
		return nil, err
	}
	return values.Unit, nil
}

// isToplevelOnlyExpr reports whether e is a form that may only appear at
// top level (spec.md §4.2/§6's is_toplevel_only_expr collaborator): the
// module and thunk heads are the only such forms this implementation
// recognizes.
func isToplevelOnlyExpr(v ir.Value) bool {
	e, ok := v.(*ir.Expr)
	if !ok {
		return false
	}
	return e.Head == ir.HeadModule || e.Head == ir.HeadThunk
}
