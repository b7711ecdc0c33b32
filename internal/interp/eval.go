package interp

import (
	"github.com/vela-lang/vela/internal/dispatch"
	"github.com/vela-lang/vela/internal/gcroots"
	"github.com/vela-lang/vela/internal/values"
	"github.com/vela-lang/vela/ir"
)

// Eval resolves node to a Value, in the order spec.md §4.1 specifies:
// SSA reference, slot reference, global reference, quote node, bare
// symbol, self-evaluating literal, then head-dispatched expression.
func (in *Interp) Eval(node ir.Value, frame *Frame) (ir.Value, error) {
	if err := in.stack.Enter(); err != nil {
		return nil, err
	}
	defer in.stack.Leave()

	switch n := node.(type) {
	case *ir.SSAValue:
		if frame == nil || n.ID < 0 || n.ID >= frame.NSSAValues() {
			return nil, invalidIRf("access to invalid SSAValue")
		}
		return frame.Locals[frame.NSlots()+n.ID], nil

	case *ir.SlotNumber:
		if frame == nil || n.N < 1 || n.N > frame.NSlots() {
			return nil, invalidIRf("access to invalid slot number")
		}
		v := frame.Locals[n.N-1]
		if v == nil {
			return nil, undefinedVarNamed(frame.slotName(n.N))
		}
		return v, nil

	case *ir.GlobalRef:
		mod, ok := n.Module.(*values.Module)
		if !ok {
			return nil, invalidIRf("globalref module is not a Module")
		}
		v, ok := mod.GetGlobal(n.Name)
		if !ok {
			return nil, undefinedVar(n.Name)
		}
		return v, nil

	case *ir.QuoteNode:
		return n.Payload, nil

	case *ir.Symbol:
		mod := frame.CurrentModule(in.CurrentModule())
		v, ok := mod.GetGlobal(n)
		if !ok {
			return nil, undefinedVar(n)
		}
		return v, nil

	case *ir.Expr:
		return in.evalExpr(n, frame)

	default:
		// Self-evaluating literal: everything that is neither an IR
		// control node nor a bare symbol evaluates to itself (spec.md
		// §4.1 step 6).
		return node, nil
	}
}

// evalExpr dispatches a compound expression on its head symbol (spec.md
// §4.1's dispatch table).
func (in *Interp) evalExpr(e *ir.Expr, frame *Frame) (ir.Value, error) {
	head := e.Head

	switch head {
	case ir.HeadCall:
		return in.evalCall(e, frame)

	case ir.HeadInvoke:
		return in.evalInvoke(e, frame)

	case ir.HeadNew:
		return in.evalNew(e, frame)

	case ir.HeadStaticParameter:
		return in.evalStaticParameter(e, frame)

	case ir.HeadInert:
		if len(e.Args) != 1 {
			return nil, invalidIRf("inert expression requires exactly 1 argument")
		}
		return e.Args[0], nil

	case ir.HeadCopyAST:
		if len(e.Args) != 1 {
			return nil, invalidIRf("copyast expression requires exactly 1 argument")
		}
		v, err := in.Eval(e.Args[0], frame)
		if err != nil {
			return nil, err
		}
		return CopyAST(v), nil

	case ir.HeadStaticTypeof:
		return values.AnyType, nil

	case ir.HeadTheException:
		if exc := in.TheException(); exc != nil {
			return exc, nil
		}
		return values.Unit, nil

	case ir.HeadMethod:
		return in.evalMethod(e, frame)

	case ir.HeadConst:
		return in.evalConst(e, frame)

	case ir.HeadGlobal:
		return in.evalGlobal(e, frame)

	case ir.HeadAbstractType:
		return in.evalAbstractType(e, frame)

	case ir.HeadBitsType:
		return in.evalBitsType(e, frame)

	case ir.HeadCompositeType:
		return in.evalCompositeType(e, frame)

	case ir.HeadModule:
		return in.EvalModuleExpr(e, frame)

	case ir.HeadThunk:
		lam, ok := singleLambdaArg(e)
		if !ok {
			return nil, invalidIRf("thunk expression requires a single lambda argument")
		}
		return in.InterpretToplevelThunk(lam)

	case ir.HeadError, ir.HeadIncomplete:
		return nil, in.evalErrorForm(e)

	default:
		if ir.IsNoOpHead(head) {
			return values.Unit, nil
		}
		return nil, invalidIRf("unsupported or misplaced expression %s", head.Name)
	}
}

// evalCall evaluates every argument left-to-right into a rooted argument
// vector, then invokes generic dispatch (spec.md §4.1, `call`).
func (in *Interp) evalCall(e *ir.Expr, frame *Frame) (ir.Value, error) {
	if len(e.Args) == 0 {
		return nil, invalidIRf("call expression requires a callee")
	}
	callee, err := in.Eval(e.Args[0], frame)
	if err != nil {
		return nil, err
	}
	gf, ok := callee.(*dispatch.GenericFunction)
	if !ok {
		return nil, invalidIRf("call target is not a generic function")
	}

	var root gcroots.Scope
	argv := make([]ir.Value, 0, len(e.Args)-1)
	for _, a := range e.Args[1:] {
		v, err := in.Eval(a, frame)
		if err != nil {
			return nil, err
		}
		argv = append(argv, v)
	}
	root.Push(argv)
	defer root.Pop()

	return gf.ApplyGeneric(argv)
}

// evalInvoke evaluates args[1:] and calls the pre-resolved method
// (args[0], a lambda info expression) directly, bypassing dispatch
// (spec.md §4.1, `invoke`).
func (in *Interp) evalInvoke(e *ir.Expr, frame *Frame) (ir.Value, error) {
	if len(e.Args) == 0 {
		return nil, invalidIRf("invoke expression requires a resolved method")
	}
	methodVal, err := in.Eval(e.Args[0], frame)
	if err != nil {
		return nil, err
	}
	lam, ok := methodVal.(*ir.LambdaInfo)
	if !ok {
		return nil, invalidIRf("invoke target is not a resolved method")
	}

	var root gcroots.Scope
	argv := make([]ir.Value, 0, len(e.Args)-1)
	for _, a := range e.Args[1:] {
		v, err := in.Eval(a, frame)
		if err != nil {
			return nil, err
		}
		argv = append(argv, v)
	}
	root.Push(argv)
	defer root.Pop()

	return dispatch.CallMethodInternal(in.Invoker(), lam, argv)
}

// evalNew allocates an instance of a concrete struct type and sets its
// leading fields from args[1:] in order (spec.md §4.1, `new`).
func (in *Interp) evalNew(e *ir.Expr, frame *Frame) (ir.Value, error) {
	if len(e.Args) == 0 {
		return nil, invalidIRf("new expression requires a type argument")
	}
	typeVal, err := in.Eval(e.Args[0], frame)
	if err != nil {
		return nil, err
	}
	dt, ok := typeVal.(*values.DataType)
	if !ok || !values.IsStructType(dt) {
		return nil, typeMismatchf("new requires a concrete struct type")
	}
	if dt.Singleton != nil {
		return dt.Singleton, nil
	}

	inst := &values.Instance{DT: dt, Fields: make([]ir.Value, len(dt.FieldNames))}
	for i, a := range e.Args[1:] {
		if i >= len(inst.Fields) {
			return nil, invalidIRf("new: too many field initializers for %s", dt.Name.Name)
		}
		v, err := in.Eval(a, frame)
		if err != nil {
			return nil, err
		}
		inst.Fields[i] = v
	}
	return inst, nil
}

// evalStaticParameter resolves the `static_parameter` head (spec.md
// §4.1): args[0] is a 1-based index into the frame's static-parameter
// bindings, falling back to the lambda's own sparam_vals.
func (in *Interp) evalStaticParameter(e *ir.Expr, frame *Frame) (ir.Value, error) {
	if len(e.Args) != 1 {
		return nil, invalidIRf("static_parameter requires exactly 1 argument")
	}
	idx, ok := asLong(e.Args[0])
	if !ok || idx < 1 {
		return nil, invalidIRf("static_parameter index must be a positive integer")
	}
	if frame != nil && frame.SparamVals != nil {
		if idx <= len(frame.SparamVals) {
			return frame.SparamVals[idx-1], nil
		}
	}
	if frame != nil && frame.Lam != nil && idx <= len(frame.Lam.SparamVals) {
		v := frame.Lam.SparamVals[idx-1]
		if !values.IsTypeVar(v) {
			return v, nil
		}
	}
	return nil, sparamUnknownf("could not determine static parameter value")
}

// evalErrorForm implements the `error`/`incomplete` heads (spec.md §4.1):
// a single string argument is formatted as a syntax error; any other
// single argument is thrown as-is; zero arguments is malformed IR.
func (in *Interp) evalErrorForm(e *ir.Expr) error {
	switch len(e.Args) {
	case 0:
		return invalidIRf("malformed error expression")
	case 1:
		v, err := in.Eval(e.Args[0], nil)
		if err != nil {
			return err
		}
		if s, ok := v.(*values.StringValue); ok {
			return userThrown(v, "syntax: "+s.Val)
		}
		return userThrown(v, "error thrown")
	default:
		return invalidIRf("malformed error expression")
	}
}

// singleLambdaArg extracts a lone *ir.LambdaInfo argument from e, used by
// the `thunk` head.
func singleLambdaArg(e *ir.Expr) (*ir.LambdaInfo, bool) {
	if len(e.Args) != 1 {
		return nil, false
	}
	lam, ok := e.Args[0].(*ir.LambdaInfo)
	return lam, ok
}

// asLong reports whether v is an integer literal Value, and its value.
func asLong(v ir.Value) (int, bool) {
	iv, ok := v.(*values.IntValue)
	if !ok {
		return 0, false
	}
	return int(iv.Val), true
}

// CopyAST deep-copies an Expr tree, leaving non-Expr leaves shared
// (spec.md §6's copy_ast collaborator interface; implemented locally
// since no external AST-copy collaborator is wired in this module).
func CopyAST(v ir.Value) ir.Value {
	e, ok := v.(*ir.Expr)
	if !ok {
		return v
	}
	args := make([]ir.Value, len(e.Args))
	for i, a := range e.Args {
		args[i] = CopyAST(a)
	}
	return &ir.Expr{Head: e.Head, Args: args, Pos: e.Pos}
}
