package interp

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vela.yaml")
	if err := os.WriteFile(path, []byte("maxCallDepth: 128\ntraceEval: true\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxCallDepth != 128 || !cfg.TraceEval {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestApplyConfigAdjustsRecursionCeiling(t *testing.T) {
	in, _ := newTestInterp()
	in.ApplyConfig(Config{MaxCallDepth: 2})

	if err := in.stack.Enter(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := in.stack.Enter(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := in.stack.Enter(); err == nil {
		t.Error("expected recursion ceiling of 2 to be enforced")
	}
}
