package instr

import (
	"strconv"

	"github.com/brightly-salty/scryer-prolog/internal/atom"
	"github.com/brightly-salty/scryer-prolog/internal/number"
	"github.com/brightly-salty/scryer-prolog/internal/term"
)

// fixnumOf wraps a small Go int as the number.Number an instruction
// field (arity, void count, permanent-variable count, ...) presents
// to ToFunctor. These counts are always small enough to stay Fixnum.
func fixnumOf(n int) number.Number { return number.Fixnum(int64(n)) }

// boolConst renders a Go bool as the 'true'/'false' atom a reflective
// instruction payload presents it as; Prolog has no boolean type of
// its own.
func boolConst(atoms *atom.Table, b bool) term.Const {
	if b {
		return term.AtomConst(atoms.Intern("true"))
	}
	return term.AtomConst(atoms.Intern("false"))
}

// constString renders a term.Const for an instruction's String() form.
func constString(c term.Const) string {
	switch {
	case c.Atom != nil:
		return c.Atom.Name()
	case c.Number != nil:
		return c.Number.String()
	case c.IsChar:
		return "0'" + string(c.Char)
	case c.IsStr:
		return strconv.Quote(c.String)
	case c.IsNil:
		return "[]"
	default:
		return "<const>"
	}
}
