package ir

// The closed set of expression-head symbols recognized by the evaluator
// (spec.md §6). Each is interned once at package init so that the core can
// compare heads by pointer equality, matching spec.md §3's statement that
// "Equality is pointer-equality against a fixed set of well-known heads."
var (
	HeadCall            = intern("call")
	HeadInvoke          = intern("invoke")
	HeadNew             = intern("new")
	HeadStaticParameter = intern("static_parameter")
	HeadInert           = intern("inert")
	HeadCopyAST         = intern("copyast")
	HeadStaticTypeof    = intern("static_typeof")
	HeadTheException    = intern("the_exception")
	HeadMethod          = intern("method")
	HeadConst           = intern("const")
	HeadGlobal          = intern("global")
	HeadAbstractType    = intern("abstract_type")
	HeadBitsType        = intern("bits_type")
	HeadCompositeType   = intern("composite_type")
	HeadModule          = intern("module")
	HeadThunk           = intern("thunk")
	HeadError           = intern("error")
	HeadIncomplete      = intern("incomplete")
	HeadBoundscheck     = intern("boundscheck")
	HeadInbounds        = intern("inbounds")
	HeadFastmath        = intern("fastmath")
	HeadSimdloop        = intern("simdloop")
	HeadMeta            = intern("meta")
	HeadTypeGoto        = intern("type_goto")
	HeadReturn          = intern("return")
	HeadAssign          = intern("=")
	HeadGotoIfnot       = intern("goto_ifnot")
	HeadLine            = intern("line")
	HeadEnter           = intern("enter")
	HeadLeave           = intern("leave")
)

// noOpHeads are the expression heads that are no-ops at interpret time and
// evaluate to the unit value (spec.md §4.1's dispatch table).
var noOpHeads = map[*Symbol]bool{
	HeadBoundscheck: true,
	HeadInbounds:    true,
	HeadFastmath:    true,
	HeadSimdloop:    true,
	HeadMeta:        true,
	HeadTypeGoto:    true,
}

// IsNoOpHead reports whether head is one of the no-op-at-interpret-time
// heads.
func IsNoOpHead(head *Symbol) bool {
	return noOpHeads[head]
}

// symtab interns well-known heads so that identical names share one
// *Symbol, matching how the external lowering pass is expected to produce
// IR (spec.md §3: "Symbol — interned name").
var symtab = map[string]*Symbol{}

func intern(name string) *Symbol {
	if s, ok := symtab[name]; ok {
		return s
	}
	s := &Symbol{Name: name}
	symtab[name] = s
	return s
}

// Intern returns the canonical *Symbol for name, creating and caching it on
// first use. The textual IR reader (package irtext) and tests use this to
// construct head symbols and identifiers consistently with the statically
// interned heads above.
func Intern(name string) *Symbol {
	return intern(name)
}
