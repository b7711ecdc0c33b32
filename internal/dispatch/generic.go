// Package dispatch provides a minimal, working implementation of the
// generic-function dispatch and method-table collaborators spec.md §1
// declares external to the core evaluator (apply_generic,
// call_method_internal, generic_function_def, method_def). A real Vela
// implementation would give this package the weight of a full
// multiple-dispatch specificity resolver and a compiled method cache;
// here candidates are tried in registration order and the first
// structurally-matching signature wins (see DESIGN.md's Open Question
// decision on dispatch specificity).
//
// Grounded on the *routing* idea of the teacher's
// internal/interp/evaluator/method_dispatch.go (dispatch keyed by runtime
// type, ordered candidate search) and the ID/name-indexed registry of
// internal/interp/runtime/method_registry.go.
package dispatch

import (
	"fmt"

	"github.com/vela-lang/vela/internal/values"
	"github.com/vela-lang/vela/ir"
)

// Invoker calls a lowered method body with positional arguments and an
// optional static-parameter override. It is supplied by the evaluator
// (interp.InterpretCall, bound as a closure at wiring time) so that this
// package never needs to import the evaluator — dispatch only routes to a
// method; it never walks IR itself.
type Invoker func(lam *ir.LambdaInfo, argv []ir.Value, sparamVals []ir.Value) (ir.Value, error)

// GenericFunction is a named, dispatchable set of methods. It implements
// ir.Value so that it can be the Value a module binding holds (spec.md
// §4.1.1: "the binding ... request[s] a generic-function definition").
type GenericFunction struct {
	Name     *ir.Symbol
	registry *values.MethodRegistry
	invoke   Invoker
}

func (*GenericFunction) IsIRValue()       {}
func (g *GenericFunction) Type() string   { return "GenericFunction" }
func (g *GenericFunction) String() string { return g.Name.Name }

// GenericFunctionDef creates a new generic function bound to name, wired to
// invoke for actually running a method's body once dispatch selects it
// (spec.md's generic_function_def collaborator).
func GenericFunctionDef(name *ir.Symbol, invoke Invoker) *GenericFunction {
	return &GenericFunction{
		Name:     name,
		registry: values.NewMethodRegistry(),
		invoke:   invoke,
	}
}

// MethodDef installs a new method on gf with the given positional
// signature and lowered body (spec.md's method_def collaborator, spec.md
// §4.1.1's 4-argument `method` form).
func MethodDef(gf *GenericFunction, sig []ir.Value, lam *ir.LambdaInfo, extra ir.Value) values.MethodID {
	return gf.registry.RegisterMethod(&values.MethodMetadata{
		Name:      gf.Name.Name,
		Signature: sig,
		Lambda:    lam,
		Extra:     extra,
	})
}

// ApplyGeneric dispatches argv to the first method of gf whose signature
// structurally matches (spec.md's apply_generic collaborator, invoked by
// the `call` expression head).
func (g *GenericFunction) ApplyGeneric(argv []ir.Value) (ir.Value, error) {
	for _, m := range g.registry.MethodsByName(g.Name.Name) {
		if signatureMatches(m.Signature, argv) {
			return g.invoke(m.Lambda, argv, nil)
		}
	}
	return nil, fmt.Errorf("no method matching %s(%s)", g.Name.Name, describeArgs(argv))
}

// CallMethodInternal invokes lam directly with argv via invoke, bypassing
// dispatch entirely (spec.md's call_method_internal collaborator). It takes
// an Invoker rather than a *GenericFunction receiver because the `invoke`
// expression head names an already-resolved method, not a generic function
// to dispatch on: the evaluator's `invoke` case (interp.evalInvoke) calls
// this with its own Invoker after resolving args[0] to a *ir.LambdaInfo.
func CallMethodInternal(invoke Invoker, lam *ir.LambdaInfo, argv []ir.Value) (ir.Value, error) {
	return invoke(lam, argv, nil)
}

// signatureMatches reports whether every positional argument's runtime
// type is assignable to the corresponding declared parameter type (a
// TypeVar matches anything). Variadic signatures are not modeled here:
// length must match exactly, mirroring spec.md's description of `invoke`
// bypassing dispatch for the variadic case.
func signatureMatches(sig []ir.Value, argv []ir.Value) bool {
	if len(sig) != len(argv) {
		return false
	}
	for i, p := range sig {
		if values.IsTypeVar(p) {
			continue
		}
		declared, ok := p.(*values.DataType)
		if !ok {
			return false
		}
		if !values.IsSubtype(values.TypeOf(argv[i]), declared) {
			return false
		}
	}
	return true
}

func describeArgs(argv []ir.Value) string {
	s := ""
	for i, a := range argv {
		if i > 0 {
			s += ", "
		}
		s += values.TypeOf(a).String()
	}
	return s
}
