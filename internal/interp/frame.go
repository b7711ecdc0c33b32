// Package interp implements the core tree-walking evaluator: the
// expression evaluator (Eval), the body executor (EvalBody), and the
// public entry adapters (InterpretToplevelExpr, InterpretToplevelExprIn,
// InterpretCall, InterpretToplevelThunk, ToplevelEvalBody).
//
// Grounded on original_source/src/interpreter.c's eval/eval_body/
// jl_interpret_* functions, reshaped into idiomatic Go: explicit error
// returns replace the original's JL_TRY/JL_CATCH for ordinary failure,
// and handler-scope non-local transfer (the `enter`/`leave` IR forms) is
// implemented as an explicit stack of resume labels inside EvalBody
// rather than literal per-`enter` recursion.
package interp

import (
	"fmt"

	"github.com/vela-lang/vela/internal/values"
	"github.com/vela-lang/vela/ir"
)

// Frame is the per-invocation evaluation context: a Lambda info plus its
// flat locals vector (slots followed by SSA temps) and an optional
// static-parameter override (spec.md §3, "Interpreter frame").
type Frame struct {
	Lam *ir.LambdaInfo

	// Locals has length NSlots()+NSSAValues(); entries 0..NSlots()-1 are
	// slots, the remainder are SSA temps. A nil entry means "absent".
	Locals []ir.Value

	// SparamVals overrides Lam.SparamVals when non-nil (spec.md §4.1,
	// static_parameter).
	SparamVals []ir.Value
}

// NSlots returns the number of local variable slots for this frame, or 0
// if the frame has no Lambda info.
func (f *Frame) NSlots() int {
	if f == nil || f.Lam == nil {
		return 0
	}
	return f.Lam.NSlots()
}

// NSSAValues returns the number of SSA temporaries for this frame.
func (f *Frame) NSSAValues() int {
	if f == nil || f.Lam == nil {
		return 0
	}
	return f.Lam.NSSAValues
}

// CurrentModule resolves the module that unqualified symbol lookups and
// assignments in this frame target: the Lambda's defining module if one
// exists, else the process-current module threaded in by the caller
// (spec.md §4.1 step 5, §4.2 "Bare symbol").
func (f *Frame) CurrentModule(processCurrent *values.Module) *values.Module {
	if f != nil && f.Lam != nil {
		if m, ok := f.Lam.Module.(*values.Module); ok && m != nil {
			return m
		}
	}
	return processCurrent
}

// NewFrame allocates a Frame for invoking lam, with a freshly zeroed
// locals vector (spec.md §4.3, interpret_call).
func NewFrame(lam *ir.LambdaInfo, sparamVals []ir.Value) *Frame {
	n := 0
	if lam != nil {
		n = lam.NSlots() + lam.NSSAValues
	}
	return &Frame{
		Lam:        lam,
		Locals:     make([]ir.Value, n),
		SparamVals: sparamVals,
	}
}

// slotName returns a human-readable name for 1-based slot n, used in
// undefined-variable diagnostics (spec.md §3 invariant: "Reading a slot
// whose entry is absent raises an undefined-variable error naming the
// corresponding slotnames[n-1]").
func (f *Frame) slotName(n int) string {
	if f == nil || f.Lam == nil || n < 1 || n > len(f.Lam.SlotNames) {
		return fmt.Sprintf("slot#%d", n)
	}
	sym := f.Lam.SlotNames[n-1]
	if sym == nil {
		return fmt.Sprintf("slot#%d", n)
	}
	return sym.Name
}
