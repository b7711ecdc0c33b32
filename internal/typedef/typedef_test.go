package typedef

import (
	"testing"

	"github.com/vela-lang/vela/internal/values"
	"github.com/vela-lang/vela/ir"
)

func TestNewBitsTypeRejectsInvalidWidth(t *testing.T) {
	name := ir.Intern("Bits7")
	if _, err := NewBitsType(name, nil, 7); err == nil {
		t.Fatal("expected error for non-multiple-of-8 width")
	}
	if _, err := NewBitsType(name, nil, 0); err == nil {
		t.Fatal("expected error for zero width")
	}
	dt, err := NewBitsType(name, nil, 64)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dt.Size != 8 {
		t.Errorf("expected size 8 bytes, got %d", dt.Size)
	}
}

func TestSetDatatypeSuperRejectsNonAbstract(t *testing.T) {
	tt := NewDataType(ir.Intern("Foo"), nil, nil, nil, false, 0)
	concrete := NewDataType(ir.Intern("Bar"), nil, nil, nil, false, 0)
	if err := SetDatatypeSuper(tt, concrete); err == nil {
		t.Fatal("expected error assigning a non-abstract supertype")
	}
}

func TestSetDatatypeSuperRejectsSelf(t *testing.T) {
	name := ir.Intern("Self")
	tt := NewAbstractType(name, nil)
	if err := SetDatatypeSuper(tt, tt); err == nil {
		t.Fatal("expected error for self-referential supertype")
	}
}

func TestSetDatatypeSuperAccepts(t *testing.T) {
	super := NewAbstractType(ir.Intern("Shape"), nil)
	tt := NewDataType(ir.Intern("Circle"), nil, nil, nil, false, 0)
	if err := SetDatatypeSuper(tt, super); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tt.Super != super {
		t.Errorf("expected Super to be installed")
	}
}

func TestComputeFieldOffsets(t *testing.T) {
	dt := NewDataType(ir.Intern("Point"), nil,
		[]*ir.Symbol{ir.Intern("x"), ir.Intern("y")},
		[]ir.Value{values.IntType, values.IntType}, false, 2)
	ComputeFieldOffsets(dt)
	if len(dt.Offsets) != 2 || dt.Offsets[0] != 0 || dt.Offsets[1] != 1 {
		t.Errorf("unexpected offsets: %v", dt.Offsets)
	}
	if dt.Size != 2 {
		t.Errorf("expected size 2, got %d", dt.Size)
	}
}

func TestMakeSingletonIfEligible(t *testing.T) {
	dt := NewDataType(ir.Intern("Marker"), nil, nil, nil, false, 0)
	MakeSingletonIfEligible(dt)
	if dt.Singleton == nil {
		t.Fatal("expected singleton to be materialized for zero-field type")
	}
	first := dt.Singleton
	MakeSingletonIfEligible(dt)
	if dt.Singleton != first {
		t.Errorf("expected singleton to be created only once")
	}
}

func TestMakeSingletonIfEligibleSkipsWithFields(t *testing.T) {
	dt := NewDataType(ir.Intern("Point2"), nil,
		[]*ir.Symbol{ir.Intern("x")}, []ir.Value{values.IntType}, false, 1)
	MakeSingletonIfEligible(dt)
	if dt.Singleton != nil {
		t.Errorf("expected no singleton for a type with fields")
	}
}

func TestEquivalent(t *testing.T) {
	fieldsA := []*ir.Symbol{ir.Intern("x")}
	typesA := []ir.Value{values.IntType}

	a := NewDataType(ir.Intern("Point3"), nil, fieldsA, typesA, false, 1)
	b := NewDataType(ir.Intern("Point3"), nil, fieldsA, typesA, false, 1)
	ComputeFieldOffsets(a)
	ComputeFieldOffsets(b)

	if !Equivalent(a, b) {
		t.Error("expected structurally identical redefinitions to be equivalent")
	}

	c := NewDataType(ir.Intern("Point3"), nil, fieldsA, typesA, true, 1)
	ComputeFieldOffsets(c)
	if Equivalent(a, c) {
		t.Error("expected mutability mismatch to break equivalence")
	}
}

func TestEquivalentRejectsParametric(t *testing.T) {
	a := NewDataType(ir.Intern("Box"), []ir.Value{&values.TypeVar{Name: ir.Intern("T")}}, nil, nil, false, 0)
	b := NewDataType(ir.Intern("Box"), []ir.Value{&values.TypeVar{Name: ir.Intern("T")}}, nil, nil, false, 0)
	if Equivalent(a, b) {
		t.Error("expected parametric types to never be considered equivalent")
	}
}
