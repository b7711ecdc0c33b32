package interp

import (
	"testing"

	"github.com/vela-lang/vela/internal/dispatch"
	"github.com/vela-lang/vela/internal/values"
	"github.com/vela-lang/vela/ir"
)

func TestEvalMethodDeclarationCreatesGenericFunction(t *testing.T) {
	in, mod := newTestInterp()
	name := ir.Intern("double")

	e := &ir.Expr{Head: ir.HeadMethod, Args: []ir.Value{name}}
	v, err := in.Eval(e, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := v.(*dispatch.GenericFunction); !ok {
		t.Fatalf("expected a GenericFunction, got %T", v)
	}

	got, ok := mod.GetGlobal(name)
	if !ok {
		t.Fatal("expected binding to be installed")
	}
	if got != v {
		t.Error("expected the returned generic to be the one bound in the module")
	}
}

func TestEvalMethodInstallationAddsMethod(t *testing.T) {
	in, mod := newTestInterp()
	name := ir.Intern("triple")

	// First declare the generic.
	if _, err := in.Eval(&ir.Expr{Head: ir.HeadMethod, Args: []ir.Value{name}}, nil); err != nil {
		t.Fatalf("unexpected error declaring generic: %v", err)
	}

	lam := &ir.LambdaInfo{
		SlotFlags: []byte{0},
		NArgs:     1,
		Code:      []ir.Value{&ir.Expr{Head: ir.HeadReturn, Args: []ir.Value{&ir.SlotNumber{N: 1}}}},
	}
	install := &ir.Expr{Head: ir.HeadMethod, Args: []ir.Value{
		name,
		&ir.QuoteNode{Payload: &values.TupleValue{Elems: []ir.Value{values.IntType}}},
		&ir.QuoteNode{Payload: lam},
		&values.IntValue{Val: 0},
	}}
	if _, err := in.Eval(install, nil); err != nil {
		t.Fatalf("unexpected error installing method: %v", err)
	}

	got, _ := mod.GetGlobal(name)
	gf := got.(*dispatch.GenericFunction)
	result, err := gf.ApplyGeneric([]ir.Value{&values.IntValue{Val: 9}})
	if err != nil {
		t.Fatalf("unexpected dispatch error: %v", err)
	}
	if iv := result.(*values.IntValue); iv.Val != 9 {
		t.Errorf("expected 9, got %v", iv.Val)
	}
}
