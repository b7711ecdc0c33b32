package interp

import (
	"fmt"

	ierrors "github.com/vela-lang/vela/internal/errors"
)

// defaultMaxDepth bounds recursive Eval/EvalBody/InterpretCall nesting.
// The original has no analogous guard (it relies on the host's native
// stack-overflow recovery, spec.md §4.2's "platforms with stack-overflow
// recovery" remark); Go has no portable equivalent, so this package
// enforces an explicit depth ceiling instead.
const defaultMaxDepth = 4096

// CallStack tracks interpreter recursion depth, bounding it to catch
// runaway recursion with a clean error instead of crashing the process. It
// also accumulates a call-level errors.StackFrame trace across nested
// InterpretCall invocations (PushFrame/PopFrame), tagged with the owning
// Interp's session id, so a failing evaluation can report a full call
// trace (SPEC_FULL.md §3's "a correlation id threaded through
// internal/errors.StackFrame").
type CallStack struct {
	depth int
	max   int
	trace ierrors.StackTrace
}

// NewCallStack creates a CallStack bounded at max frames.
func NewCallStack(max int) CallStack {
	return CallStack{max: max}
}

// Enter increments the depth counter, returning an error (and leaving
// depth unchanged) if doing so would exceed the configured maximum.
func (c *CallStack) Enter() error {
	if c.depth >= c.max {
		return fmt.Errorf("interpreter recursion limit exceeded (%d frames)", c.max)
	}
	c.depth++
	return nil
}

// Leave decrements the depth counter. Must be paired with a successful
// Enter, typically via defer.
func (c *CallStack) Leave() {
	if c.depth > 0 {
		c.depth--
	}
}

// Depth returns the current recursion depth.
func (c *CallStack) Depth() int { return c.depth }

// PushFrame records a call-level stack frame for functionName, stamped
// with sessionID, on top of the trace (InterpretCall calls this on entry).
func (c *CallStack) PushFrame(functionName, sessionID string) {
	c.trace = append(c.trace, ierrors.NewStackFrame(functionName, "", nil, sessionID))
}

// PopFrame removes the most recently pushed call-level frame (InterpretCall
// calls this on every exit path, typically via defer).
func (c *CallStack) PopFrame() {
	if n := len(c.trace); n > 0 {
		c.trace = c.trace[:n-1]
	}
}

// Trace returns a snapshot of the call-level frames currently on the
// stack, oldest first.
func (c *CallStack) Trace() ierrors.StackTrace {
	out := make(ierrors.StackTrace, len(c.trace))
	copy(out, c.trace)
	return out
}
