package instr

import (
	"strconv"

	"github.com/brightly-salty/scryer-prolog/internal/atom"
	"github.com/brightly-salty/scryer-prolog/internal/clausetype"
	"github.com/brightly-salty/scryer-prolog/internal/term"
)

// ========================================
// Query instructions
// ========================================
//
// Emitted by the query target of internal/compiler's walker to build
// the argument terms of a body goal before a CallClause. Put* mirrors
// Get* (build instead of match); Set* mirrors Unify* for the same
// reason. PutUnsafeValue has no Get-side counterpart: it covers a
// permanent variable whose first occurrence is in the query itself
// rather than in the clause head, which needs its environment slot
// globalized on first use to stay safe across the following call.

// PutConstant places constant C into register R.
type PutConstant struct {
	Level Level
	C     term.Const
	R     Reg
}

func (PutConstant) isInstruction() {}
func (PutConstant) Kind() Kind     { return KindPutConstant }
func (i PutConstant) String() string {
	return "put_constant " + i.Level.String() + ", " + constString(i.C) + ", " + regString(i.R)
}
func (i PutConstant) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("put_constant"), Args: []term.Term{
		term.AtomConst(atoms.Intern(i.Level.String())), i.C, term.AtomConst(atoms.Intern(regString(i.R))),
	}}
}

// PutList places a fresh './2' cell's address into register R.
type PutList struct {
	Level Level
	R     Reg
}

func (PutList) isInstruction() {}
func (PutList) Kind() Kind     { return KindPutList }
func (i PutList) String() string {
	return "put_list " + i.Level.String() + ", " + regString(i.R)
}
func (i PutList) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("put_list"), Args: []term.Term{
		term.AtomConst(atoms.Intern(i.Level.String())), term.AtomConst(atoms.Intern(regString(i.R))),
	}}
}

// PutStructure places a freshly built compound's address, of the
// given clause type and arity, into register R.
type PutStructure struct {
	ClauseType clausetype.ClauseType
	Arity      int
	R          Reg
}

func (PutStructure) isInstruction() {}
func (PutStructure) Kind() Kind     { return KindPutStructure }
func (i PutStructure) String() string {
	return "put_structure " + clauseTypeFunctor(i.ClauseType) + "/" + strconv.Itoa(i.Arity) + ", " + regString(i.R)
}
func (i PutStructure) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("put_structure"), Args: []term.Term{
		term.AtomConst(atoms.Intern(clauseTypeFunctor(i.ClauseType))),
		term.NumberConst(fixnumOf(i.Arity)),
		term.AtomConst(atoms.Intern(regString(i.R))),
	}}
}

// PutPartialString places a freshly built string of literal character
// codes Text into register R, continuing into HasTail's tail variable.
type PutPartialString struct {
	Level   Level
	Text    string
	R       Reg
	HasTail bool
}

func (PutPartialString) isInstruction() {}
func (PutPartialString) Kind() Kind     { return KindPutPartialString }
func (i PutPartialString) String() string {
	return "put_partial_string " + i.Level.String() + ", " + strconv.Quote(i.Text) + ", " + regString(i.R) + ", tail=" + strconv.FormatBool(i.HasTail)
}
func (i PutPartialString) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("put_partial_string"), Args: []term.Term{
		term.AtomConst(atoms.Intern(i.Level.String())),
		term.PStr{Text: i.Text},
		term.AtomConst(atoms.Intern(regString(i.R))),
		boolConst(atoms, i.HasTail),
	}}
}

// PutValue places permanent variable Arg's existing value into
// register R.
type PutValue struct {
	Arg Reg
	R   Reg
}

func (PutValue) isInstruction() {}
func (PutValue) Kind() Kind     { return KindPutValue }
func (i PutValue) String() string {
	return "put_value " + regString(i.Arg) + ", " + regString(i.R)
}
func (i PutValue) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("put_value"), Args: []term.Term{
		term.AtomConst(atoms.Intern(regString(i.Arg))), term.AtomConst(atoms.Intern(regString(i.R))),
	}}
}

// PutVariable introduces a fresh unbound variable, binding it to
// permanent variable Arg and also placing it into register R.
type PutVariable struct {
	Arg Reg
	R   Reg
}

func (PutVariable) isInstruction() {}
func (PutVariable) Kind() Kind     { return KindPutVariable }
func (i PutVariable) String() string {
	return "put_variable " + regString(i.Arg) + ", " + regString(i.R)
}
func (i PutVariable) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("put_variable"), Args: []term.Term{
		term.AtomConst(atoms.Intern(regString(i.Arg))), term.AtomConst(atoms.Intern(regString(i.R))),
	}}
}

// PutUnsafeValue places the value of permanent variable Y, a variable
// whose first occurrence is in the query rather than the clause head,
// into register A, globalizing it first if it is still a stack
// reference that would dangle after the current environment is
// deallocated.
type PutUnsafeValue struct {
	Y Reg
	A Reg
}

func (PutUnsafeValue) isInstruction() {}
func (PutUnsafeValue) Kind() Kind     { return KindPutUnsafeValue }
func (i PutUnsafeValue) String() string {
	return "put_unsafe_value " + regString(i.Y) + ", " + regString(i.A)
}
func (i PutUnsafeValue) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("put_unsafe_value"), Args: []term.Term{
		term.AtomConst(atoms.Intern(regString(i.Y))), term.AtomConst(atoms.Intern(regString(i.A))),
	}}
}

// SetConstant places constant C into the next structure subterm slot.
type SetConstant struct {
	C term.Const
}

func (SetConstant) isInstruction()   {}
func (SetConstant) Kind() Kind       { return KindSetConstant }
func (i SetConstant) String() string { return "set_constant " + constString(i.C) }
func (i SetConstant) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("set_constant"), Args: []term.Term{i.C}}
}

// SetVariable places a fresh variable, bound to register R, into the
// next structure subterm slot.
type SetVariable struct {
	R Reg
}

func (SetVariable) isInstruction()   {}
func (SetVariable) Kind() Kind       { return KindSetVariable }
func (i SetVariable) String() string { return "set_variable " + regString(i.R) }
func (i SetVariable) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("set_variable"), Args: []term.Term{
		term.AtomConst(atoms.Intern(regString(i.R))),
	}}
}

// SetValue places register R's existing value into the next
// structure subterm slot.
type SetValue struct {
	R Reg
}

func (SetValue) isInstruction()   {}
func (SetValue) Kind() Kind       { return KindSetValue }
func (i SetValue) String() string { return "set_value " + regString(i.R) }
func (i SetValue) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("set_value"), Args: []term.Term{
		term.AtomConst(atoms.Intern(regString(i.R))),
	}}
}

// SetLocalValue is SetValue specialized for a variable local to the
// current clause.
type SetLocalValue struct {
	R Reg
}

func (SetLocalValue) isInstruction()   {}
func (SetLocalValue) Kind() Kind       { return KindSetLocalValue }
func (i SetLocalValue) String() string { return "set_local_value " + regString(i.R) }
func (i SetLocalValue) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("set_local_value"), Args: []term.Term{
		term.AtomConst(atoms.Intern(regString(i.R))),
	}}
}

// SetVoid places N freshly allocated, immediately anonymous variables
// into the next N structure subterm slots.
type SetVoid struct {
	N int
}

func (SetVoid) isInstruction()   {}
func (SetVoid) Kind() Kind       { return KindSetVoid }
func (i SetVoid) String() string { return "set_void " + strconv.Itoa(i.N) }
func (i SetVoid) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("set_void"), Args: []term.Term{term.NumberConst(fixnumOf(i.N))}}
}
