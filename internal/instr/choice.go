package instr

import (
	"strconv"

	"github.com/brightly-salty/scryer-prolog/internal/atom"
	"github.com/brightly-salty/scryer-prolog/internal/term"
)

// ========================================
// Choice instructions
// ========================================
//
// Pushed and popped around a predicate's clause chain to support
// backtracking: TryMeElse pushes a new choice point recording the
// next clause to try on failure; RetryMeElse updates the current
// choice point's alternative and tries the next clause; TrustMe pops
// the choice point before trying the last clause, since there is
// nothing left to retry. The Default-suffixed variants are identical
// except that they bypass the predicate's user-defined cut barrier,
// used for clauses the compiler has proven opaque to cut.

// TryMeElse pushes a choice point whose retry address is Offset
// instructions away, then falls through into the current clause.
type TryMeElse struct {
	Offset int
}

func (TryMeElse) isInstruction()   {}
func (TryMeElse) Kind() Kind       { return KindTryMeElse }
func (i TryMeElse) String() string { return "try_me_else " + strconv.Itoa(i.Offset) }
func (i TryMeElse) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("try_me_else"), Args: []term.Term{term.NumberConst(fixnumOf(i.Offset))}}
}

// RetryMeElse updates the choice point at the top of the stack to
// retry Offset instructions away on the next failure, then falls
// through into the current clause.
type RetryMeElse struct {
	Offset int
}

func (RetryMeElse) isInstruction()   {}
func (RetryMeElse) Kind() Kind       { return KindRetryMeElse }
func (i RetryMeElse) String() string { return "retry_me_else " + strconv.Itoa(i.Offset) }
func (i RetryMeElse) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("retry_me_else"), Args: []term.Term{term.NumberConst(fixnumOf(i.Offset))}}
}

// TrustMe pops the current choice point, since the clause that
// follows is the last alternative for this call.
type TrustMe struct{}

func (TrustMe) isInstruction() {}
func (TrustMe) Kind() Kind     { return KindTrustMe }
func (TrustMe) String() string { return "trust_me" }
func (TrustMe) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("trust_me")}
}

// TryMeElseDefault is TryMeElse with the predicate's cut barrier
// bypassed.
type TryMeElseDefault struct {
	Offset int
}

func (TryMeElseDefault) isInstruction() {}
func (TryMeElseDefault) Kind() Kind     { return KindTryMeElseDefault }
func (i TryMeElseDefault) String() string {
	return "try_me_else_default " + strconv.Itoa(i.Offset)
}
func (i TryMeElseDefault) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("try_me_else_default"), Args: []term.Term{term.NumberConst(fixnumOf(i.Offset))}}
}

// RetryMeElseDefault is RetryMeElse with the predicate's cut barrier
// bypassed.
type RetryMeElseDefault struct {
	Offset int
}

func (RetryMeElseDefault) isInstruction() {}
func (RetryMeElseDefault) Kind() Kind     { return KindRetryMeElseDefault }
func (i RetryMeElseDefault) String() string {
	return "retry_me_else_default " + strconv.Itoa(i.Offset)
}
func (i RetryMeElseDefault) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("retry_me_else_default"), Args: []term.Term{term.NumberConst(fixnumOf(i.Offset))}}
}

// TrustMeDefault is TrustMe with the predicate's cut barrier bypassed.
type TrustMeDefault struct{}

func (TrustMeDefault) isInstruction() {}
func (TrustMeDefault) Kind() Kind     { return KindTrustMeDefault }
func (TrustMeDefault) String() string { return "trust_me_default" }
func (TrustMeDefault) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("trust_me_default")}
}
