// Package irtext provides a minimal textual notation for writing IR by
// hand — for the `vela run` CLI and for tests — since the real
// lowering pass that would normally produce ir.Value trees from source
// text is declared out of scope (spec.md §1). It is deliberately not a
// parser for the host surface language: it reads a small s-expression
// shape that maps directly onto ir.Expr/ir.Symbol/literal nodes, nothing
// more.
//
// Grammar (informal):
//
//	expr    := '(' SYMBOL expr* ')'
//	atom    := SYMBOL | INT | STRING
//	SYMBOL  := bare token, interned via ir.Intern
//	INT     := [0-9]+
//	STRING  := "..." (no escapes beyond \" and \\)
package irtext

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/vela-lang/vela/internal/values"
	"github.com/vela-lang/vela/ir"
)

// Parse reads a single top-level form from src.
func Parse(src string) (ir.Value, error) {
	p := &parser{toks: tokenize(src)}
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, fmt.Errorf("irtext: unexpected trailing input after position %d", p.pos)
	}
	return v, nil
}

// ParseProgram reads a sequence of top-level forms, for feeding
// interp.ToplevelEvalBody or, for single-statement programs, a thunk's
// Code field.
func ParseProgram(src string) ([]ir.Value, error) {
	p := &parser{toks: tokenize(src)}
	var out []ir.Value
	for p.pos < len(p.toks) {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

type token struct {
	text string
	kind rune // '(' ')' or 'a' for atom
}

func tokenize(src string) []token {
	var toks []token
	i := 0
	for i < len(src) {
		c := rune(src[i])
		switch {
		case unicode.IsSpace(c):
			i++
		case c == '(' || c == ')':
			toks = append(toks, token{text: string(c), kind: c})
			i++
		case c == '"':
			j := i + 1
			var sb strings.Builder
			for j < len(src) && src[j] != '"' {
				if src[j] == '\\' && j+1 < len(src) {
					j++
				}
				sb.WriteByte(src[j])
				j++
			}
			toks = append(toks, token{text: sb.String(), kind: 's'})
			i = j + 1
		default:
			j := i
			for j < len(src) && !unicode.IsSpace(rune(src[j])) && src[j] != '(' && src[j] != ')' {
				j++
			}
			toks = append(toks, token{text: src[i:j], kind: 'a'})
			i = j
		}
	}
	return toks
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) parseValue() (ir.Value, error) {
	if p.pos >= len(p.toks) {
		return nil, fmt.Errorf("irtext: unexpected end of input")
	}
	t := p.toks[p.pos]

	switch t.kind {
	case '(':
		p.pos++
		if p.pos >= len(p.toks) || p.toks[p.pos].kind != 'a' {
			return nil, fmt.Errorf("irtext: expected head symbol after '('")
		}
		head := ir.Intern(p.toks[p.pos].text)
		p.pos++

		var args []ir.Value
		for p.pos < len(p.toks) && p.toks[p.pos].kind != ')' {
			v, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			args = append(args, v)
		}
		if p.pos >= len(p.toks) {
			return nil, fmt.Errorf("irtext: unterminated expression")
		}
		p.pos++ // consume ')'
		return &ir.Expr{Head: head, Args: args}, nil

	case 's':
		p.pos++
		return &values.StringValue{Val: t.text}, nil

	case 'a':
		p.pos++
		return atomValue(t.text), nil

	default:
		return nil, fmt.Errorf("irtext: unexpected token %q", t.text)
	}
}

// atomValue resolves a bare token to an integer literal, a slot/SSA
// reference shorthand (%N for SSA, slotN for a slot), a goto-node
// shorthand (goto:N), or else an interned Symbol.
func atomValue(tok string) ir.Value {
	if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return &values.IntValue{Val: n}
	}
	if strings.HasPrefix(tok, "%") {
		if n, err := strconv.Atoi(tok[1:]); err == nil {
			return &ir.SSAValue{ID: n}
		}
	}
	if strings.HasPrefix(tok, "slot") {
		if n, err := strconv.Atoi(tok[4:]); err == nil {
			return &ir.SlotNumber{N: n}
		}
	}
	if strings.HasPrefix(tok, "goto:") {
		if n, err := strconv.Atoi(tok[5:]); err == nil {
			return &ir.GotoNode{Label: n}
		}
	}
	return ir.Intern(tok)
}
