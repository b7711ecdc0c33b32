package interp

import (
	"github.com/vela-lang/vela/internal/dispatch"
	"github.com/vela-lang/vela/internal/values"
	"github.com/vela-lang/vela/ir"
)

// makeCompareLess and makeAdd back the `<` and `+` test fixtures used by
// TestEvalBodyGotoLoop; they stand in for the arithmetic generic
// functions a real numeric-tower collaborator would install.
func makeCompareLess() *dispatch.GenericFunction {
	gf := dispatch.GenericFunctionDef(ir.Intern("<"), func(lam *ir.LambdaInfo, argv []ir.Value, sparamVals []ir.Value) (ir.Value, error) {
		a := argv[0].(*values.IntValue).Val
		b := argv[1].(*values.IntValue).Val
		return values.Bool(a < b), nil
	})
	dispatch.MethodDef(gf, []ir.Value{&values.TypeVar{Name: ir.Intern("T")}, &values.TypeVar{Name: ir.Intern("U")}}, &ir.LambdaInfo{}, nil)
	return gf
}

func makeAdd() *dispatch.GenericFunction {
	gf := dispatch.GenericFunctionDef(ir.Intern("+"), func(lam *ir.LambdaInfo, argv []ir.Value, sparamVals []ir.Value) (ir.Value, error) {
		a := argv[0].(*values.IntValue).Val
		b := argv[1].(*values.IntValue).Val
		return &values.IntValue{Val: a + b}, nil
	})
	dispatch.MethodDef(gf, []ir.Value{&values.TypeVar{Name: ir.Intern("T")}, &values.TypeVar{Name: ir.Intern("U")}}, &ir.LambdaInfo{}, nil)
	return gf
}

// makeThrowingFunction returns a zero-arg generic function that always
// fails, for exercising enter/leave handler scoping.
func makeThrowingFunction(name *ir.Symbol) *dispatch.GenericFunction {
	gf := dispatch.GenericFunctionDef(name, func(lam *ir.LambdaInfo, argv []ir.Value, sparamVals []ir.Value) (ir.Value, error) {
		return nil, userThrown(nil, "boom")
	})
	dispatch.MethodDef(gf, []ir.Value{}, &ir.LambdaInfo{}, nil)
	return gf
}
