package values

import (
	"fmt"

	"github.com/vela-lang/vela/ir"
)

// Binding is a named, writable cell in a module's symbol table; it may be
// marked constant (spec.md's GLOSSARY, "Binding").
type Binding struct {
	Name     *ir.Symbol
	Value    ir.Value
	Constant bool
	// Declared is false for a binding that GetBindingWr created and that has
	// never been assigned. CheckedAssignment sets it, and so does
	// EnsureGlobal (the `global` form), which also sets Value to Unit.
	Declared bool
}

// Module is a named binding table. It implements ir.Value so a GlobalRef's
// Module field, and the `module` argument threaded through the entry
// adapters (spec.md §4.3, §6), can carry a Module directly.
//
// Grounded on the teacher's internal/interp/runtime/environment.go
// Environment, restructured from a lexically-nested scope chain into a flat
// module-global table: spec.md's collaborator entry points
// (get_binding_wr, checked_assignment, declare_constant, get_global) are
// module-scoped, not scope-chain lookups.
type Module struct {
	Name     string
	bindings map[*ir.Symbol]*Binding
}

func (*Module) IsIRValue()       {}
func (m *Module) Type() string   { return "Module" }
func (m *Module) String() string { return m.Name }

// NewModule creates an empty module with the given display name.
func NewModule(name string) *Module {
	return &Module{Name: name, bindings: make(map[*ir.Symbol]*Binding)}
}

// GetGlobal looks up sym in m's binding table. Returns (nil, false) if
// undefined, matching spec.md §4.1 step 3's "undefined → undefined-variable
// error" (the caller raises the error; this just reports absence).
func (m *Module) GetGlobal(sym *ir.Symbol) (ir.Value, bool) {
	b, ok := m.bindings[sym]
	if !ok || !b.Declared {
		return nil, false
	}
	return b.Value, true
}

// GetBindingWr returns a writable binding for sym, creating an undeclared
// one if none exists yet (spec.md's get_binding_wr collaborator).
func (m *Module) GetBindingWr(sym *ir.Symbol) *Binding {
	if b, ok := m.bindings[sym]; ok {
		return b
	}
	b := &Binding{Name: sym}
	m.bindings[sym] = b
	return b
}

// DeclareConstant marks b as constant once it holds a value (spec.md's
// declare_constant collaborator, invoked by the `const` expression head).
func (m *Module) DeclareConstant(b *Binding) {
	b.Constant = true
}

// CheckedAssignment assigns value to b, refusing to overwrite a constant
// binding that already holds a different value (spec.md's
// checked_assignment collaborator).
func (m *Module) CheckedAssignment(b *Binding, value ir.Value) error {
	if b.Constant && b.Declared && b.Value != value {
		return fmt.Errorf("invalid redefinition of constant %s", b.Name.Name)
	}
	b.Value = value
	b.Declared = true
	return nil
}

// EnsureGlobal makes sure a writable (non-constant) binding exists for sym,
// implementing the `global` expression head (spec.md §4.1).
func (m *Module) EnsureGlobal(sym *ir.Symbol) {
	b := m.GetBindingWr(sym)
	if !b.Declared {
		b.Declared = true
		b.Value = Unit
	}
}
