package errors

import (
	"fmt"

	"github.com/vela-lang/vela/ir"
)

// Kind enumerates the error taxonomy of spec.md §7.
type Kind int

const (
	// InvalidIR covers malformed SSA/slot indices, malformed `error`
	// expressions, unknown or misplaced heads, and bodies that fall off
	// the end without a return.
	InvalidIR Kind = iota
	// UndefinedVar covers failed slot, global, or symbol lookups.
	UndefinedVar
	// TypeMismatch covers a non-boolean goto_ifnot condition and composite
	// field types that are neither a type nor a type variable.
	TypeMismatch
	// InvalidTypedef covers nested type definitions, invalid bit widths,
	// forbidden supertypes, and redefinition of non-type constants.
	InvalidTypedef
	// SparamUnknown covers a static_parameter that could not be resolved.
	SparamUnknown
	// UserThrown covers values propagated from `error`/`incomplete` forms
	// and from collaborator throws.
	UserThrown
)

// String names the error kind.
func (k Kind) String() string {
	switch k {
	case InvalidIR:
		return "InvalidIR"
	case UndefinedVar:
		return "UndefinedVar"
	case TypeMismatch:
		return "TypeMismatch"
	case InvalidTypedef:
		return "InvalidTypedef"
	case SparamUnknown:
		return "SparamUnknown"
	case UserThrown:
		return "UserThrown"
	default:
		return "Unknown"
	}
}

// EvalError is the structured error type thrown by the core evaluator.
// Every error surfaces a concise description and, where applicable, names
// the offending symbol (spec.md §7, "User-visible behavior"). The core adds
// no stack context of its own; Trace is attached by collaborators (e.g.
// interp.CallStack) for display purposes only.
type EvalError struct {
	Kind    Kind
	Message string
	// Symbol names the offending identifier, when applicable. NewUndefinedVar
	// sets it; NewUndefinedVarNamed (slot reads) leaves it nil and names the
	// slot only in Message; other kinds may leave it empty.
	Symbol *ir.Symbol
	// Payload carries the raw thrown value for UserThrown errors (the
	// argument to `error`/`incomplete`, or whatever a collaborator threw).
	Payload ir.Value
	Pos     ir.Position

	// Trace is the call-level stack captured by interp.CallStack at the
	// point this error escaped the innermost InterpretCall it passed
	// through (outer calls leave it unchanged); nil for errors
	// that never crossed a call boundary (e.g. raised directly from
	// InterpretToplevelExpr with no frame).
	Trace StackTrace
}

// Error implements the error interface.
func (e *EvalError) Error() string {
	if e.Symbol != nil {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Symbol.Name)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewInvalidIR builds an InvalidIR error.
func NewInvalidIR(format string, args ...any) *EvalError {
	return &EvalError{Kind: InvalidIR, Message: fmt.Sprintf(format, args...)}
}

// NewUndefinedVar builds an UndefinedVar error naming sym.
func NewUndefinedVar(sym *ir.Symbol) *EvalError {
	name := "<unknown>"
	if sym != nil {
		name = sym.Name
	}
	return &EvalError{
		Kind:    UndefinedVar,
		Message: fmt.Sprintf("%s not defined", name),
		Symbol:  sym,
	}
}

// NewUndefinedVarNamed builds an UndefinedVar error from a display name
// rather than a resolved *ir.Symbol, for call sites where the slot being
// read has no symbol available (an out-of-range or unnamed slot).
func NewUndefinedVarNamed(name string) *EvalError {
	return &EvalError{
		Kind:    UndefinedVar,
		Message: fmt.Sprintf("%s not defined", name),
	}
}

// NewTypeMismatch builds a TypeMismatch error.
func NewTypeMismatch(format string, args ...any) *EvalError {
	return &EvalError{Kind: TypeMismatch, Message: fmt.Sprintf(format, args...)}
}

// NewInvalidTypedef builds an InvalidTypedef error, optionally naming the
// type being defined.
func NewInvalidTypedef(sym *ir.Symbol, format string, args ...any) *EvalError {
	return &EvalError{
		Kind:    InvalidTypedef,
		Message: fmt.Sprintf(format, args...),
		Symbol:  sym,
	}
}

// NewSparamUnknown builds a SparamUnknown error.
func NewSparamUnknown(format string, args ...any) *EvalError {
	return &EvalError{Kind: SparamUnknown, Message: fmt.Sprintf(format, args...)}
}

// NewUserThrown wraps a user-thrown payload (from `error`/`incomplete` or a
// collaborator throw).
func NewUserThrown(payload ir.Value, message string) *EvalError {
	return &EvalError{Kind: UserThrown, Message: message, Payload: payload}
}

// Is reports whether err is an *EvalError of the given kind.
func Is(err error, kind Kind) bool {
	ee, ok := err.(*EvalError)
	return ok && ee.Kind == kind
}
