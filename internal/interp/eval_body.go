package interp

import (
	ierrors "github.com/vela-lang/vela/internal/errors"
	"github.com/vela-lang/vela/internal/values"
	"github.com/vela-lang/vela/ir"
)

// EvalBody walks stmts starting at index start, maintaining an
// instruction pointer that goto/goto_ifnot/enter may redirect, until a
// `return` statement produces a result or the body falls off the end
// (spec.md §4.2).
//
// Handler scoping (`enter`/`leave`) is implemented as an explicit stack
// of resume labels local to this call rather than via the source's
// literal recursive-eval_body-per-enter structure: this is the
// "recoverable-error result type threaded through the evaluator with
// explicit state saves at enter" option spec.md §9 sanctions. An error
// raised anywhere during a statement's evaluation pops the innermost
// active handler (if any), records it as the in-transit exception, and
// resumes at that handler's label; with no active handler the error
// propagates to the caller.
func (in *Interp) EvalBody(stmts []ir.Value, frame *Frame, start int, toplevel bool) (ir.Value, error) {
	i := start
	var handlers []int

	for {
		if i < 0 || i >= len(stmts) {
			return nil, invalidIRf("body expression must terminate in return")
		}

		result, done, next, err := in.execStatement(stmts, frame, i, toplevel)
		if err != nil {
			if n := len(handlers); n > 0 {
				label := handlers[n-1]
				handlers = handlers[:n-1]
				in.setException(errorToValue(err))
				i = label - 1
				continue
			}
			return nil, err
		}
		if done {
			return result, nil
		}

		switch stmt := stmts[i].(type) {
		case *ir.Expr:
			if stmt.Head == ir.HeadEnter {
				label, ok := asLong(stmt.Args[0])
				if !ok {
					return nil, invalidIRf("enter statement requires an integer label")
				}
				handlers = append(handlers, label)
			} else if stmt.Head == ir.HeadLeave {
				n, ok := asLong(stmt.Args[0])
				if !ok {
					return nil, invalidIRf("leave statement requires an integer count")
				}
				if n > len(handlers) {
					n = len(handlers)
				}
				handlers = handlers[:len(handlers)-n]
			}
		}

		i = next
	}
}

// execStatement evaluates the statement at stmts[i] for its control-flow
// effect, returning either a final result (done=true, for `return`) or
// the next instruction pointer to resume at.
func (in *Interp) execStatement(stmts []ir.Value, frame *Frame, i int, toplevel bool) (result ir.Value, done bool, next int, err error) {
	switch stmt := stmts[i].(type) {
	case *ir.GotoNode:
		return nil, false, stmt.Label - 1, nil

	case *ir.LineNode:
		if toplevel {
			in.lineNumber = stmt.Line
		}
		return nil, false, i + 1, nil

	case *ir.NewvarNode:
		if stmt.Slot != nil && frame != nil && stmt.Slot.N >= 1 && stmt.Slot.N <= frame.NSlots() {
			frame.Locals[stmt.Slot.N-1] = nil
		}
		return nil, false, i + 1, nil

	case *ir.Expr:
		return in.execExprStatement(stmts, frame, i, toplevel, stmt)

	default:
		if _, err := in.Eval(stmt, frame); err != nil {
			return nil, false, 0, err
		}
		return nil, false, i + 1, nil
	}
}

func (in *Interp) execExprStatement(stmts []ir.Value, frame *Frame, i int, toplevel bool, e *ir.Expr) (ir.Value, bool, int, error) {
	switch e.Head {
	case ir.HeadReturn:
		if len(e.Args) != 1 {
			return nil, false, 0, invalidIRf("return statement requires exactly 1 argument")
		}
		v, err := in.evalToplevelAware(e.Args[0], frame, toplevel)
		if err != nil {
			return nil, false, 0, err
		}
		return v, true, 0, nil

	case ir.HeadAssign:
		if len(e.Args) != 2 {
			return nil, false, 0, invalidIRf("assignment statement requires exactly 2 arguments")
		}
		v, err := in.Eval(e.Args[1], frame)
		if err != nil {
			return nil, false, 0, err
		}
		if err := in.assign(e.Args[0], v, frame); err != nil {
			return nil, false, 0, err
		}
		return nil, false, i + 1, nil

	case ir.HeadGotoIfnot:
		if len(e.Args) != 2 {
			return nil, false, 0, invalidIRf("goto_ifnot statement requires exactly 2 arguments")
		}
		cond, err := in.Eval(e.Args[0], frame)
		if err != nil {
			return nil, false, 0, err
		}
		label, ok := asLong(e.Args[1])
		if !ok {
			return nil, false, 0, invalidIRf("goto_ifnot label must be an integer")
		}
		switch cond {
		case ir.Value(values.False):
			return nil, false, label - 1, nil
		case ir.Value(values.True):
			return nil, false, i + 1, nil
		default:
			return nil, false, 0, typeMismatchf("non-boolean used in boolean context")
		}

	case ir.HeadLine:
		if toplevel && len(e.Args) == 1 {
			if n, ok := asLong(e.Args[0]); ok {
				in.lineNumber = n
			}
		}
		return nil, false, i + 1, nil

	case ir.HeadEnter, ir.HeadLeave:
		// Handler-stack bookkeeping happens in EvalBody's caller loop;
		// nothing to evaluate here.
		return nil, false, i + 1, nil

	default:
		if _, err := in.evalToplevelAware(e, frame, toplevel); err != nil {
			return nil, false, 0, err
		}
		return nil, false, i + 1, nil
	}
}

// evalToplevelAware evaluates v, delegating to the embedding driver's
// top-level evaluator for a top-level-only form (spec.md §4.2's `return`
// and default-statement cases). With no driver hook installed, Eval
// already fully handles the only top-level-only forms this
// implementation recognizes (`module`, `thunk`), so the fallback is a
// plain Eval call.
func (in *Interp) evalToplevelAware(v ir.Value, frame *Frame, toplevel bool) (ir.Value, error) {
	if toplevel && isToplevelOnlyExpr(v) && in.OnToplevelEval != nil {
		return in.OnToplevelEval(in, v, frame)
	}
	return in.Eval(v, frame)
}

// assign implements the `=` statement's destination-kind switch (spec.md
// §4.2).
func (in *Interp) assign(dest ir.Value, v ir.Value, frame *Frame) error {
	switch d := dest.(type) {
	case *ir.SSAValue:
		if frame == nil || d.ID < 0 || d.ID >= frame.NSSAValues() {
			return invalidIRf("access to invalid SSAValue")
		}
		frame.Locals[frame.NSlots()+d.ID] = v
		return nil

	case *ir.SlotNumber:
		if frame == nil || d.N < 1 || d.N > frame.NSlots() {
			return invalidIRf("access to invalid slot number")
		}
		frame.Locals[d.N-1] = v
		return nil

	case *ir.GlobalRef:
		mod, ok := d.Module.(*values.Module)
		if !ok {
			return invalidIRf("globalref module is not a Module")
		}
		b := mod.GetBindingWr(d.Name)
		return mod.CheckedAssignment(b, v)

	case *ir.Symbol:
		mod := frame.CurrentModule(in.CurrentModule())
		b := mod.GetBindingWr(d)
		return mod.CheckedAssignment(b, v)

	default:
		return invalidIRf("invalid assignment destination")
	}
}

// errorToValue converts a Go error raised during evaluation into the
// Value that `the_exception` should read back (spec.md §4.1, "Return the
// currently-in-transit exception"). A UserThrown EvalError carries its
// original payload through unchanged; every other kind surfaces as a
// plain string describing the failure.
func errorToValue(err error) ir.Value {
	if ee, ok := err.(*ierrors.EvalError); ok && ee.Kind == ierrors.UserThrown && ee.Payload != nil {
		return ee.Payload
	}
	return &values.StringValue{Val: err.Error()}
}
