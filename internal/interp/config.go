package interp

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds the tunable knobs for an Interp, loaded from a YAML file
// the way the teacher's driver loads its own run configuration.
type Config struct {
	// MaxCallDepth bounds interpreter recursion (see CallStack).
	MaxCallDepth int `yaml:"maxCallDepth"`
	// TraceEval, when true, tells the driver to dump a JSON trace line
	// via DumpTrace (SPEC_FULL.md's ambient tracing addition).
	TraceEval bool `yaml:"traceEval"`
}

// DefaultConfig returns the configuration LoadConfig starts from; its
// values stand for any key the file omits.
func DefaultConfig() Config {
	return Config{MaxCallDepth: defaultMaxDepth, TraceEval: false}
}

// LoadConfig reads and parses a YAML configuration file at path.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyConfig adjusts in's recursion ceiling to match cfg.
func (in *Interp) ApplyConfig(cfg Config) {
	if cfg.MaxCallDepth > 0 {
		in.stack.max = cfg.MaxCallDepth
	}
}
