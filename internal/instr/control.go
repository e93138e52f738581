package instr

import (
	"strconv"

	"github.com/brightly-salty/scryer-prolog/internal/atom"
	"github.com/brightly-salty/scryer-prolog/internal/clausetype"
	"github.com/brightly-salty/scryer-prolog/internal/term"
)

// ========================================
// Control instructions
// ========================================
//
// Environment management and the call/return/jump machinery a
// compiled clause body uses between goals.

// Allocate pushes a new environment frame with room for N permanent
// variables.
type Allocate struct {
	N int
}

func (Allocate) isInstruction()   {}
func (Allocate) Kind() Kind       { return KindAllocate }
func (i Allocate) String() string { return "allocate " + strconv.Itoa(i.N) }
func (i Allocate) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("allocate"), Args: []term.Term{term.NumberConst(fixnumOf(i.N))}}
}

// Deallocate pops the current environment frame.
type Deallocate struct{}

func (Deallocate) isInstruction() {}
func (Deallocate) Kind() Kind     { return KindDeallocate }
func (Deallocate) String() string { return "deallocate" }
func (Deallocate) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("deallocate")}
}

// CallClause invokes the clause(s) registered under ClauseType/Arity.
// PermVars is the number of the caller's permanent variables still
// live across the call (for garbage-collection purposes); LastCall
// marks a call in tail position, enabling last-call optimization;
// UseDefaultPolicy bypasses a user-defined cut barrier for calls the
// compiler knows are opaque to cut (e.g. a call/N-constructed goal).
type CallClause struct {
	ClauseType       clausetype.ClauseType
	Arity            int
	PermVars         int
	LastCall         bool
	UseDefaultPolicy bool
}

func (CallClause) isInstruction() {}
func (CallClause) Kind() Kind     { return KindCallClause }
func (i CallClause) String() string {
	op := "call"
	if i.LastCall {
		op = "execute"
	}
	s := op + " " + clauseTypeFunctor(i.ClauseType) + "/" + strconv.Itoa(i.Arity) + ", " + strconv.Itoa(i.PermVars)
	if i.UseDefaultPolicy {
		s += ", default_policy"
	}
	return s
}
func (i CallClause) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("call_clause"), Args: []term.Term{
		term.AtomConst(atoms.Intern(clauseTypeFunctor(i.ClauseType))),
		term.NumberConst(fixnumOf(i.Arity)),
		term.NumberConst(fixnumOf(i.PermVars)),
		boolConst(atoms, i.LastCall),
		boolConst(atoms, i.UseDefaultPolicy),
	}}
}

// JmpBy transfers control Offset instructions forward within the same
// predicate's clause chain, the in-predicate analogue of CallClause
// used to fall through to the next clause without a fresh call frame.
type JmpBy struct {
	Arity    int
	Offset   int
	PermVars int
	LastCall bool
}

func (JmpBy) isInstruction() {}
func (JmpBy) Kind() Kind     { return KindJmpBy }
func (i JmpBy) String() string {
	return "jmp_by " + strconv.Itoa(i.Offset) + ", " + strconv.Itoa(i.Arity) + ", " + strconv.Itoa(i.PermVars)
}
func (i JmpBy) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("jmp_by"), Args: []term.Term{
		term.NumberConst(fixnumOf(i.Arity)),
		term.NumberConst(fixnumOf(i.Offset)),
		term.NumberConst(fixnumOf(i.PermVars)),
		boolConst(atoms, i.LastCall),
	}}
}

// RevJmpBy transfers control Offset instructions backward, used to
// close a loop compiled from a tail-recursive clause.
type RevJmpBy struct {
	Offset int
}

func (RevJmpBy) isInstruction()   {}
func (RevJmpBy) Kind() Kind       { return KindRevJmpBy }
func (i RevJmpBy) String() string { return "rev_jmp_by " + strconv.Itoa(i.Offset) }
func (i RevJmpBy) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("rev_jmp_by"), Args: []term.Term{term.NumberConst(fixnumOf(i.Offset))}}
}

// Proceed returns control to the continuation pointer, ending a
// clause body with no further goals.
type Proceed struct{}

func (Proceed) isInstruction() {}
func (Proceed) Kind() Kind     { return KindProceed }
func (Proceed) String() string { return "proceed" }
func (Proceed) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("proceed")}
}
