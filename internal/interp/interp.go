package interp

import (
	"sync"

	"github.com/google/uuid"

	"github.com/vela-lang/vela/internal/dispatch"
	"github.com/vela-lang/vela/internal/values"
	"github.com/vela-lang/vela/ir"
)

// Interp holds the process-wide state spec.md §5 says the core reads and
// writes: the current module, the current task's current module, and the
// inside_typedef flag, plus (for the enter/the_exception machinery) the
// in-transit exception. A single Interp corresponds to one host task; the
// scheduling model (spec.md §5) is single-threaded cooperative, so the
// mutex here only guards against accidental reentrancy, not real
// concurrent access.
type Interp struct {
	mu sync.Mutex

	currentModule     *values.Module
	taskCurrentModule *values.Module
	insideTypedef     bool
	exception         ir.Value

	stack CallStack

	// sessionID tags diagnostics and trace output for this interpreter
	// instance (SPEC_FULL.md's ambient-stack addition; not part of the
	// original's process-global design, which had no notion of session).
	sessionID string

	// OnModuleExpr, if set, overrides EvalModuleExpr's built-in handling
	// of the `module` head with the embedding driver's own module-system
	// collaborator (spec.md §1).
	OnModuleExpr ModuleEvaluator

	// OnToplevelEval, if set, is consulted by the body executor whenever a
	// `return` or default statement is a top-level-only form being
	// executed at top level (spec.md §4.2, the toplevel_eval
	// collaborator).
	OnToplevelEval ToplevelEvaluator

	// lineNumber is the process-wide line counter spec.md §3 describes
	// line nodes as optionally updating when executing at top level.
	lineNumber int
}

// ToplevelEvaluator is the injectable collaborator for forms detected as
// top-level-only while running inside EvalBody (spec.md §1's
// toplevel_eval / is_toplevel_only_expr collaborators).
type ToplevelEvaluator func(in *Interp, v ir.Value, frame *Frame) (ir.Value, error)

// LineNumber returns the most recent top-level line number observed by
// this Interp (spec.md §3, line-node tracking; spec.md §9 notes
// per-statement tracking inside non-top-level bodies may be omitted).
func (in *Interp) LineNumber() int { return in.lineNumber }

// New creates an Interp rooted at rootModule.
func New(rootModule *values.Module) *Interp {
	return &Interp{
		currentModule:     rootModule,
		taskCurrentModule: rootModule,
		sessionID:         uuid.NewString(),
		stack:             NewCallStack(defaultMaxDepth),
	}
}

// SessionID returns the correlation id used to tag stack traces and trace
// dumps produced by this Interp.
func (in *Interp) SessionID() string { return in.sessionID }

// CurrentModule returns the process-current module.
func (in *Interp) CurrentModule() *values.Module {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.currentModule
}

// Invoker returns a dispatch.Invoker bound to this Interp's InterpretCall,
// closing the dispatch<->interp dependency without an import cycle:
// dispatch never imports interp, it only holds this closure.
func (in *Interp) Invoker() dispatch.Invoker {
	return func(lam *ir.LambdaInfo, argv []ir.Value, sparamVals []ir.Value) (ir.Value, error) {
		return in.InterpretCall(lam, argv, sparamVals)
	}
}

// swapModules installs module as both the process-current and
// task-current module, returning a restore function that puts back the
// previous values — the save/restore discipline spec.md §5 requires
// around interpret_toplevel_expr_in, on every exit path.
func (in *Interp) swapModules(module *values.Module) (restore func()) {
	in.mu.Lock()
	prevProcess, prevTask := in.currentModule, in.taskCurrentModule
	in.currentModule = module
	in.taskCurrentModule = module
	in.mu.Unlock()

	return func() {
		in.mu.Lock()
		in.currentModule = prevProcess
		in.taskCurrentModule = prevTask
		in.mu.Unlock()
	}
}

// beginTypedef sets inside_typedef, failing if a definition is already in
// progress (spec.md §4.1.2 step 1).
func (in *Interp) beginTypedef() error {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.insideTypedef {
		return typedefErrorf("cannot eval a new type definition while defining another type")
	}
	in.insideTypedef = true
	return nil
}

func (in *Interp) endTypedef() {
	in.mu.Lock()
	in.insideTypedef = false
	in.mu.Unlock()
}

// setException records the in-transit exception, readable via the
// `the_exception` expression head.
func (in *Interp) setException(v ir.Value) {
	in.mu.Lock()
	in.exception = v
	in.mu.Unlock()
}

// TheException returns the currently in-transit exception, or nil if none.
func (in *Interp) TheException() ir.Value {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.exception
}
