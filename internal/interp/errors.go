package interp

import (
	ierrors "github.com/vela-lang/vela/internal/errors"
	"github.com/vela-lang/vela/ir"
)

// These small wrappers keep eval.go/eval_body.go readable; they all
// funnel into internal/errors' structured EvalError family (spec.md §7's
// error taxonomy).

func invalidIRf(format string, args ...any) error {
	return ierrors.NewInvalidIR(format, args...)
}

func undefinedVar(sym *ir.Symbol) error {
	return ierrors.NewUndefinedVar(sym)
}

func undefinedVarNamed(name string) error {
	return ierrors.NewUndefinedVarNamed(name)
}

func typeMismatchf(format string, args ...any) error {
	return ierrors.NewTypeMismatch(format, args...)
}

func typedefErrorf(format string, args ...any) error {
	return ierrors.NewInvalidTypedef(nil, format, args...)
}

func sparamUnknownf(format string, args ...any) error {
	return ierrors.NewSparamUnknown(format, args...)
}

func userThrown(payload ir.Value, message string) error {
	return ierrors.NewUserThrown(payload, message)
}

// attachTrace stamps trace onto err if it is an *EvalError with no trace of
// its own yet (the innermost failing InterpretCall sets it; outer,
// unwinding calls leave it alone so the trace reflects the deepest frame).
// Errors that are not *EvalError (e.g. the recursion-limit error from
// CallStack.Enter) pass through unchanged.
func attachTrace(err error, trace ierrors.StackTrace) error {
	if ee, ok := err.(*ierrors.EvalError); ok && ee.Trace == nil {
		ee.Trace = trace
	}
	return err
}
