package interp

import (
	"fmt"

	"github.com/tidwall/sjson"

	"github.com/vela-lang/vela/internal/values"
	"github.com/vela-lang/vela/ir"
)

// DumpTrace renders a single evaluation step as a JSON object tagged with
// this Interp's session id, for the --trace CLI flag (SPEC_FULL.md's
// ambient tracing addition; built with tidwall/sjson the way the
// teacher's driver builds its own ad-hoc JSON diagnostics rather than via
// encoding/json structs, so new fields can be layered in without a
// struct-tag dance).
func (in *Interp) DumpTrace(step string, node ir.Value, result ir.Value, err error) (string, error) {
	json := "{}"
	var setErr error

	json, setErr = sjson.Set(json, "session", in.sessionID)
	if setErr != nil {
		return "", setErr
	}
	json, setErr = sjson.Set(json, "step", step)
	if setErr != nil {
		return "", setErr
	}
	json, setErr = sjson.Set(json, "node", describeValue(node))
	if setErr != nil {
		return "", setErr
	}
	if err != nil {
		json, setErr = sjson.Set(json, "error", err.Error())
	} else {
		json, setErr = sjson.Set(json, "result", describeValue(result))
	}
	if setErr != nil {
		return "", setErr
	}
	json, setErr = sjson.Set(json, "line", in.lineNumber)
	if setErr != nil {
		return "", setErr
	}
	return json, nil
}

// describeValue renders v as a short diagnostic string; it never panics
// on an unrecognized concrete type, falling back to a %T/%v rendering.
func describeValue(v ir.Value) string {
	if v == nil {
		return "<nil>"
	}
	if sv, ok := v.(values.Value); ok {
		return sv.String()
	}
	switch n := v.(type) {
	case *ir.Symbol:
		return n.Name
	case *ir.Expr:
		return fmt.Sprintf("(%s ...)", n.Head.Name)
	default:
		return fmt.Sprintf("%T", v)
	}
}
