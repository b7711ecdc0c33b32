package interp

import (
	"testing"

	"github.com/vela-lang/vela/internal/dispatch"
	"github.com/vela-lang/vela/internal/values"
	"github.com/vela-lang/vela/ir"
)

func newTestInterp() (*Interp, *values.Module) {
	mod := values.NewModule("Main")
	return New(mod), mod
}

func TestEvalSelfEvaluatingLiteral(t *testing.T) {
	in, _ := newTestInterp()
	v, err := in.Eval(&values.IntValue{Val: 7}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if iv, ok := v.(*values.IntValue); !ok || iv.Val != 7 {
		t.Errorf("expected literal 7, got %v", v)
	}
}

func TestEvalSSAValue(t *testing.T) {
	lam := &ir.LambdaInfo{SlotFlags: nil, NSSAValues: 2}
	frame := NewFrame(lam, nil)
	frame.Locals[1] = &values.IntValue{Val: 42}

	in, _ := newTestInterp()
	v, err := in.Eval(&ir.SSAValue{ID: 1}, frame)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if iv := v.(*values.IntValue); iv.Val != 42 {
		t.Errorf("expected 42, got %v", iv.Val)
	}

	if _, err := in.Eval(&ir.SSAValue{ID: 5}, frame); err == nil {
		t.Error("expected out-of-range SSAValue access to fail")
	}
	if _, err := in.Eval(&ir.SSAValue{ID: 0}, nil); err == nil {
		t.Error("expected SSAValue access with no frame to fail")
	}
}

func TestEvalSlotUndefined(t *testing.T) {
	lam := &ir.LambdaInfo{SlotFlags: []byte{0}, SlotNames: []*ir.Symbol{ir.Intern("x")}}
	frame := NewFrame(lam, nil)

	in, _ := newTestInterp()
	_, err := in.Eval(&ir.SlotNumber{N: 1}, frame)
	if err == nil {
		t.Fatal("expected undefined-variable error")
	}
	if !containsName(err.Error(), "x") {
		t.Errorf("expected error to name slot x, got %q", err.Error())
	}
}

func containsName(s, name string) bool {
	for i := 0; i+len(name) <= len(s); i++ {
		if s[i:i+len(name)] == name {
			return true
		}
	}
	return false
}

func TestEvalGlobalRefAndSymbol(t *testing.T) {
	in, mod := newTestInterp()
	sym := ir.Intern("answer")
	b := mod.GetBindingWr(sym)
	mod.CheckedAssignment(b, &values.IntValue{Val: 99})

	v, err := in.Eval(&ir.GlobalRef{Module: mod, Name: sym}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if iv := v.(*values.IntValue); iv.Val != 99 {
		t.Errorf("expected 99, got %v", iv.Val)
	}

	v2, err := in.Eval(sym, nil)
	if err != nil {
		t.Fatalf("unexpected error resolving bare symbol: %v", err)
	}
	if iv := v2.(*values.IntValue); iv.Val != 99 {
		t.Errorf("expected 99 via bare symbol lookup, got %v", iv.Val)
	}

	if _, err := in.Eval(ir.Intern("missing"), nil); err == nil {
		t.Error("expected undefined-variable error for unknown symbol")
	}
}

func TestEvalQuoteNode(t *testing.T) {
	in, _ := newTestInterp()
	payload := &ir.Expr{Head: ir.HeadCall}
	v, err := in.Eval(&ir.QuoteNode{Payload: payload}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != ir.Value(payload) {
		t.Error("expected quote node to return payload verbatim")
	}
}

func TestEvalNoOpHeadsReturnUnit(t *testing.T) {
	in, _ := newTestInterp()
	v, err := in.Eval(&ir.Expr{Head: ir.HeadBoundscheck}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != ir.Value(values.Unit) {
		t.Errorf("expected Unit for no-op head, got %v", v)
	}
}

func TestEvalUnsupportedHeadFails(t *testing.T) {
	in, _ := newTestInterp()
	_, err := in.Eval(&ir.Expr{Head: ir.Intern("frobnicate")}, nil)
	if err == nil {
		t.Fatal("expected failure for unsupported head")
	}
}

func TestEvalStaticTypeofReturnsAny(t *testing.T) {
	in, _ := newTestInterp()
	v, err := in.Eval(&ir.Expr{Head: ir.HeadStaticTypeof}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != ir.Value(values.AnyType) {
		t.Errorf("expected Any, got %v", v)
	}
}

func TestEvalCallDispatchesGenericFunction(t *testing.T) {
	in, mod := newTestInterp()
	sym := ir.Intern("inc")
	gf := dispatch.GenericFunctionDef(sym, func(lam *ir.LambdaInfo, argv []ir.Value, sparamVals []ir.Value) (ir.Value, error) {
		n := argv[0].(*values.IntValue).Val
		return &values.IntValue{Val: n + 1}, nil
	})
	dispatch.MethodDef(gf, []ir.Value{values.IntType}, &ir.LambdaInfo{}, nil)
	b := mod.GetBindingWr(sym)
	mod.CheckedAssignment(b, gf)

	call := &ir.Expr{Head: ir.HeadCall, Args: []ir.Value{sym, &values.IntValue{Val: 4}}}
	v, err := in.Eval(call, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if iv := v.(*values.IntValue); iv.Val != 5 {
		t.Errorf("expected 5, got %v", iv.Val)
	}
}

func TestEvalNewAllocatesInstance(t *testing.T) {
	in, _ := newTestInterp()
	dt := &values.DataType{
		Name:       ir.Intern("Point"),
		FieldNames: []*ir.Symbol{ir.Intern("x"), ir.Intern("y")},
		FieldTypes: []ir.Value{values.IntType, values.IntType},
	}
	newExpr := &ir.Expr{Head: ir.HeadNew, Args: []ir.Value{dt, &values.IntValue{Val: 1}, &values.IntValue{Val: 2}}}
	v, err := in.Eval(newExpr, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inst := v.(*values.Instance)
	if inst.Fields[0].(*values.IntValue).Val != 1 || inst.Fields[1].(*values.IntValue).Val != 2 {
		t.Errorf("unexpected fields: %v", inst.Fields)
	}
}

func TestEvalNewRejectsAbstractType(t *testing.T) {
	in, _ := newTestInterp()
	newExpr := &ir.Expr{Head: ir.HeadNew, Args: []ir.Value{values.AnyType}}
	if _, err := in.Eval(newExpr, nil); err == nil {
		t.Fatal("expected error allocating an abstract type")
	}
}

func TestEvalErrorFormThrowsStringAsSyntaxError(t *testing.T) {
	in, _ := newTestInterp()
	e := &ir.Expr{Head: ir.HeadError, Args: []ir.Value{&values.StringValue{Val: "boom"}}}
	_, err := in.Eval(e, nil)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestEvalTheExceptionDefaultsToUnit(t *testing.T) {
	in, _ := newTestInterp()
	v, err := in.Eval(&ir.Expr{Head: ir.HeadTheException}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != ir.Value(values.Unit) {
		t.Errorf("expected Unit with no in-transit exception, got %v", v)
	}
}
