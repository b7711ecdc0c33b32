package errors

import (
	"fmt"
	"strings"

	"github.com/vela-lang/vela/ir"
)

// StackFrame represents a single frame in a call stack.
type StackFrame struct {
	Position     *ir.Position
	FunctionName string
	FileName     string
	// SessionID correlates this frame with the InterpretCall invocation
	// that pushed it, for multi-call diagnostics (see interp.CallStack).
	SessionID string
}

// String returns a formatted representation of the stack frame:
// "FunctionName [line: N, column: M]". If no position is available, only
// the function name (and session id, if set) is printed.
func (sf StackFrame) String() string {
	base := sf.FunctionName
	if sf.Position != nil {
		base = fmt.Sprintf("%s [line: %d, column: %d]", sf.FunctionName, sf.Position.Line, sf.Position.Column)
	}
	if sf.SessionID != "" {
		return fmt.Sprintf("%s (session %s)", base, sf.SessionID)
	}
	return base
}

// StackTrace is a complete call stack, ordered oldest (bottom) to newest
// (top).
type StackTrace []StackFrame

// String prints the trace newest-frame-first, one per line.
func (st StackTrace) String() string {
	if len(st) == 0 {
		return ""
	}
	var sb strings.Builder
	for i := len(st) - 1; i >= 0; i-- {
		sb.WriteString(st[i].String())
		if i > 0 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Top returns the most recent frame, or nil if the trace is empty.
func (st StackTrace) Top() *StackFrame {
	if len(st) == 0 {
		return nil
	}
	return &st[len(st)-1]
}

// Depth returns the number of frames in the trace.
func (st StackTrace) Depth() int {
	return len(st)
}

// NewStackFrame creates a new stack frame.
func NewStackFrame(functionName, fileName string, position *ir.Position, sessionID string) StackFrame {
	return StackFrame{
		FunctionName: functionName,
		FileName:     fileName,
		Position:     position,
		SessionID:    sessionID,
	}
}

// NewStackTrace creates a new empty stack trace.
func NewStackTrace() StackTrace {
	return make(StackTrace, 0)
}
