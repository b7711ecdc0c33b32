package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	ierrors "github.com/vela-lang/vela/internal/errors"
	"github.com/vela-lang/vela/internal/interp"
	"github.com/vela-lang/vela/internal/irtext"
	"github.com/vela-lang/vela/internal/values"
)

var runCmd = &cobra.Command{
	Use:   "run <file.vela.ir>",
	Short: "Evaluate a textual-IR program and print its result",
	Args:  cobra.ExactArgs(1),
	RunE:  runFile,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runFile(c *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("vela: %w", err)
	}

	forms, err := irtext.ParseProgram(string(src))
	if err != nil {
		return fmt.Errorf("vela: %w", err)
	}

	root := values.NewModule("Main")
	in := interp.New(root)

	trace := traceFlag
	if configPath != "" {
		cfg, err := interp.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("vela: %w", err)
		}
		in.ApplyConfig(cfg)
		trace = trace || cfg.TraceEval
	}

	result, err := in.ToplevelEvalBody(forms)
	if trace {
		if line, traceErr := in.DumpTrace("run", nil, result, err); traceErr == nil {
			fmt.Fprintln(os.Stderr, line)
		}
	}
	if err != nil {
		if ee, ok := err.(*ierrors.EvalError); ok {
			fmt.Fprintln(os.Stderr, ierrors.FormatEvalError(ee, string(src), args[0], false))
			return fmt.Errorf("vela: evaluation failed")
		}
		return fmt.Errorf("vela: %w", err)
	}

	if sv, ok := result.(values.Value); ok {
		fmt.Println(sv.String())
	} else {
		fmt.Printf("%v\n", result)
	}
	return nil
}
