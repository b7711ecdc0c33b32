package interp

import (
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/vela-lang/vela/internal/values"
)

func TestDumpTraceIncludesSessionAndResult(t *testing.T) {
	in, _ := newTestInterp()
	json, err := in.DumpTrace("eval", &values.IntValue{Val: 3}, &values.IntValue{Val: 3}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gjson.Get(json, "session").String() != in.SessionID() {
		t.Errorf("expected session field to match SessionID")
	}
	if !strings.Contains(gjson.Get(json, "result").String(), "3") {
		t.Errorf("expected result field to mention 3, got %q", json)
	}
}

func TestDumpTraceIncludesErrorField(t *testing.T) {
	in, _ := newTestInterp()
	json, err := in.DumpTrace("eval", nil, nil, invalidIRf("boom"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gjson.Get(json, "error").String() == "" {
		t.Error("expected non-empty error field")
	}
}
