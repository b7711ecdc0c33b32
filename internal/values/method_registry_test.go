package values

import (
	"testing"

	"github.com/vela-lang/vela/ir"
)

func TestNewMethodRegistry(t *testing.T) {
	r := NewMethodRegistry()
	if r == nil {
		t.Fatal("expected non-nil registry")
	}
	if r.Count() != 0 {
		t.Errorf("expected empty registry, got %d methods", r.Count())
	}
}

func TestRegisterMethod(t *testing.T) {
	r := NewMethodRegistry()
	m := &MethodMetadata{Name: "doSomething", Lambda: &ir.LambdaInfo{}}

	id := r.RegisterMethod(m)
	if id == InvalidMethodID {
		t.Fatal("expected a valid method ID")
	}
	if m.ID != id {
		t.Errorf("expected metadata.ID to be set to %d, got %d", id, m.ID)
	}
	if r.Count() != 1 {
		t.Errorf("expected 1 method registered, got %d", r.Count())
	}
	if got := r.GetMethod(id); got != m {
		t.Errorf("expected GetMethod to return the registered metadata")
	}
}

func TestRegisterMethodNil(t *testing.T) {
	r := NewMethodRegistry()
	if id := r.RegisterMethod(nil); id != InvalidMethodID {
		t.Errorf("expected InvalidMethodID for nil metadata, got %d", id)
	}
	if r.Count() != 0 {
		t.Errorf("expected 0 methods, got %d", r.Count())
	}
}

func TestMethodsByNameAccumulatesOverloads(t *testing.T) {
	r := NewMethodRegistry()
	r.RegisterMethod(&MethodMetadata{Name: "add", Signature: []ir.Value{}})
	r.RegisterMethod(&MethodMetadata{Name: "add", Signature: []ir.Value{}})
	r.RegisterMethod(&MethodMetadata{Name: "sub", Signature: []ir.Value{}})

	overloads := r.MethodsByName("add")
	if len(overloads) != 2 {
		t.Fatalf("expected 2 overloads for 'add', got %d", len(overloads))
	}
	if len(r.MethodsByName("sub")) != 1 {
		t.Errorf("expected 1 overload for 'sub'")
	}
	if len(r.MethodsByName("missing")) != 0 {
		t.Errorf("expected no overloads for unregistered name")
	}
}
