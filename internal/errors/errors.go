// Package errors provides error formatting utilities for the Vela
// evaluator. It formats diagnostics with source context, line/column
// information, and visual indicators (carets) pointing to the error
// location — adapted from the teacher's compiler-error formatter, with the
// teacher's lexer.Position swapped for ir.Position since this module has no
// lexer of its own (spec.md §1 places surface-syntax tokenizing out of
// scope).
package errors

import (
	"fmt"
	"strings"

	"github.com/vela-lang/vela/ir"
)

// CompilerError represents a single diagnostic with position and source
// context.
type CompilerError struct {
	Message string
	Source  string
	File    string
	Pos     ir.Position
}

// NewCompilerError creates a new compiler error.
func NewCompilerError(pos ir.Position, message, source, file string) *CompilerError {
	return &CompilerError{
		Pos:     pos,
		Message: message,
		Source:  source,
		File:    file,
	}
}

// Error implements the error interface.
func (e *CompilerError) Error() string {
	return e.Format(false)
}

// Format formats the error message with source context. If color is true,
// ANSI color codes are used for terminal output.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		sb.WriteString(fmt.Sprintf("Error in %s:%d:%d\n", e.File, e.Pos.Line, e.Pos.Column))
	} else {
		sb.WriteString(fmt.Sprintf("Error at line %d:%d\n", e.Pos.Line, e.Pos.Column))
	}

	sourceLine := e.getSourceLine(e.Pos.Line)
	if sourceLine != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(sourceLine)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func (e *CompilerError) getSourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatEvalError renders an *EvalError raised by the evaluator as a
// located diagnostic with source context, in the same format
// CompilerError.Format produces, with the error's call trace (if any)
// appended below it. This is the CLI boundary's use of the compiler-error
// formatter (spec.md §3's EvalError.Pos, §7's user-visible error
// description) rather than a separate, ad hoc rendering.
func FormatEvalError(ee *EvalError, source, file string, color bool) string {
	ce := NewCompilerError(ee.Pos, ee.Error(), source, file)
	out := ce.Format(color)
	if ee.Trace.Depth() > 0 {
		out += "\n\n" + ee.Trace.String()
	}
	return out
}

// FormatErrors formats multiple compiler errors.
func FormatErrors(errs []*CompilerError, color bool) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Format(color)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Evaluation failed with %d error(s):\n\n", len(errs)))
	for i, err := range errs {
		sb.WriteString(fmt.Sprintf("[Error %d of %d]\n", i+1, len(errs)))
		sb.WriteString(err.Format(color))
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
