package interp

import (
	"github.com/vela-lang/vela/internal/gcroots"
	"github.com/vela-lang/vela/internal/values"
	"github.com/vela-lang/vela/ir"
)

// InterpretToplevelExpr evaluates e with no frame (spec.md §4.3).
func (in *Interp) InterpretToplevelExpr(e ir.Value) (ir.Value, error) {
	return in.Eval(e, nil)
}

// InterpretToplevelExprIn sets the process-current and task-current
// module to module, evaluates e (optionally within lam's frame), and
// restores the prior modules on every exit path, success or failure
// (spec.md §4.3, §5 "Module restoration").
func (in *Interp) InterpretToplevelExprIn(module *values.Module, e ir.Value, lam *ir.LambdaInfo) (ir.Value, error) {
	restore := in.swapModules(module)
	defer restore()

	var frame *Frame
	if lam != nil {
		frame = NewFrame(lam, nil)
	}
	return in.Eval(e, frame)
}

// InterpretCall allocates a rooted locals vector for lam, copies args
// into the leading slots (bundling trailing actuals into a tuple for a
// variadic lambda), and runs the body with toplevel=(len(args)==0)
// (spec.md §4.3).
func (in *Interp) InterpretCall(lam *ir.LambdaInfo, args []ir.Value, sparamVals []ir.Value) (ir.Value, error) {
	if err := in.stack.Enter(); err != nil {
		return nil, err
	}
	defer in.stack.Leave()

	in.stack.PushFrame("<lambda>", in.sessionID)
	defer in.stack.PopFrame()

	frame := NewFrame(lam, sparamVals)

	var root gcroots.Scope
	root.Push(frame.Locals)
	defer root.Pop()

	nargs := lam.NArgs
	if lam.IsVA {
		fixed := nargs - 1
		if fixed < 0 {
			fixed = 0
		}
		for i := 0; i < fixed && i < len(args); i++ {
			frame.Locals[i] = args[i]
		}
		var trailing []ir.Value
		if len(args) > fixed {
			trailing = append(trailing, args[fixed:]...)
		}
		if fixed < frame.NSlots() {
			frame.Locals[fixed] = &values.TupleValue{Elems: trailing}
		}
	} else {
		for i := 0; i < nargs && i < len(args) && i < frame.NSlots(); i++ {
			frame.Locals[i] = args[i]
		}
	}

	result, err := in.EvalBody(lam.Code, frame, 0, len(args) == 0)
	if err != nil {
		return nil, attachTrace(err, in.stack.Trace())
	}
	return result, nil
}

// InterpretToplevelThunk is shorthand for a zero-argument InterpretCall
// (spec.md §4.3).
func (in *Interp) InterpretToplevelThunk(lam *ir.LambdaInfo) (ir.Value, error) {
	return in.InterpretCall(lam, nil, nil)
}

// ToplevelEvalBody runs stmts as a top-level body with no frame, starting
// at statement 0 (spec.md §6).
func (in *Interp) ToplevelEvalBody(stmts []ir.Value) (ir.Value, error) {
	if len(stmts) == 0 {
		return values.Unit, nil
	}
	return in.EvalBody(stmts, nil, 0, true)
}
