package instr

import (
	"strconv"

	"github.com/brightly-salty/scryer-prolog/internal/atom"
	"github.com/brightly-salty/scryer-prolog/internal/clausetype"
	"github.com/brightly-salty/scryer-prolog/internal/term"
)

// ========================================
// Fact instructions
// ========================================
//
// Emitted by the fact target of internal/compiler's walker to
// destructure a clause head argument-by-argument. The Get* family
// matches an argument register against a term shape; the Unify*
// family matches a structure's subterms once GetStructure has set the
// read/write mode for what follows.

// GetConstant matches register R (at Level) against constant C.
type GetConstant struct {
	Level Level
	C     term.Const
	R     Reg
}

func (GetConstant) isInstruction() {}
func (GetConstant) Kind() Kind     { return KindGetConstant }
func (i GetConstant) String() string {
	return "get_constant " + i.Level.String() + ", " + constString(i.C) + ", " + regString(i.R)
}
func (i GetConstant) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("get_constant"), Args: []term.Term{
		term.AtomConst(atoms.Intern(i.Level.String())), i.C, term.AtomConst(atoms.Intern(regString(i.R))),
	}}
}

// GetList matches register R (at Level) against a './2' cell.
type GetList struct {
	Level Level
	R     Reg
}

func (GetList) isInstruction() {}
func (GetList) Kind() Kind     { return KindGetList }
func (i GetList) String() string {
	return "get_list " + i.Level.String() + ", " + regString(i.R)
}
func (i GetList) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("get_list"), Args: []term.Term{
		term.AtomConst(atoms.Intern(i.Level.String())), term.AtomConst(atoms.Intern(regString(i.R))),
	}}
}

// GetStructure matches register R against a compound of the given
// clause type and arity, then puts the compiler into write or read
// mode for the UnifyVariable/UnifyValue instructions that follow.
type GetStructure struct {
	ClauseType clausetype.ClauseType
	Arity      int
	R          Reg
}

func (GetStructure) isInstruction() {}
func (GetStructure) Kind() Kind     { return KindGetStructure }
func (i GetStructure) String() string {
	return "get_structure " + clauseTypeFunctor(i.ClauseType) + "/" + strconv.Itoa(i.Arity) + ", " + regString(i.R)
}
func (i GetStructure) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("get_structure"), Args: []term.Term{
		term.AtomConst(atoms.Intern(clauseTypeFunctor(i.ClauseType))),
		term.NumberConst(fixnumOf(i.Arity)),
		term.AtomConst(atoms.Intern(regString(i.R))),
	}}
}

// GetPartialString matches register R against a string of literal
// character codes Text, continuing into HasTail's tail variable (or a
// proper-list terminator when HasTail is false).
type GetPartialString struct {
	Level   Level
	Text    string
	R       Reg
	HasTail bool
}

func (GetPartialString) isInstruction() {}
func (GetPartialString) Kind() Kind     { return KindGetPartialString }
func (i GetPartialString) String() string {
	return "get_partial_string " + i.Level.String() + ", " + strconv.Quote(i.Text) + ", " + regString(i.R) + ", tail=" + strconv.FormatBool(i.HasTail)
}
func (i GetPartialString) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("get_partial_string"), Args: []term.Term{
		term.AtomConst(atoms.Intern(i.Level.String())),
		term.PStr{Text: i.Text},
		term.AtomConst(atoms.Intern(regString(i.R))),
		boolConst(atoms, i.HasTail),
	}}
}

// GetValue matches register R against the value already bound to
// permanent variable Arg (a head argument seen once before).
type GetValue struct {
	R   Reg
	Arg Reg
}

func (GetValue) isInstruction() {}
func (GetValue) Kind() Kind     { return KindGetValue }
func (i GetValue) String() string {
	return "get_value " + regString(i.R) + ", " + regString(i.Arg)
}
func (i GetValue) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("get_value"), Args: []term.Term{
		term.AtomConst(atoms.Intern(regString(i.R))), term.AtomConst(atoms.Intern(regString(i.Arg))),
	}}
}

// GetVariable binds register R to (the first occurrence of) permanent
// variable Arg.
type GetVariable struct {
	R   Reg
	Arg Reg
}

func (GetVariable) isInstruction() {}
func (GetVariable) Kind() Kind     { return KindGetVariable }
func (i GetVariable) String() string {
	return "get_variable " + regString(i.R) + ", " + regString(i.Arg)
}
func (i GetVariable) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("get_variable"), Args: []term.Term{
		term.AtomConst(atoms.Intern(regString(i.R))), term.AtomConst(atoms.Intern(regString(i.Arg))),
	}}
}

// UnifyConstant unifies the next structure subterm against constant C.
type UnifyConstant struct {
	C term.Const
}

func (UnifyConstant) isInstruction() {}
func (UnifyConstant) Kind() Kind       { return KindUnifyConstant }
func (i UnifyConstant) String() string { return "unify_constant " + constString(i.C) }
func (i UnifyConstant) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("unify_constant"), Args: []term.Term{i.C}}
}

// UnifyVariable binds the next structure subterm to register R.
type UnifyVariable struct {
	R Reg
}

func (UnifyVariable) isInstruction() {}
func (UnifyVariable) Kind() Kind       { return KindUnifyVariable }
func (i UnifyVariable) String() string { return "unify_variable " + regString(i.R) }
func (i UnifyVariable) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("unify_variable"), Args: []term.Term{
		term.AtomConst(atoms.Intern(regString(i.R))),
	}}
}

// UnifyValue unifies the next structure subterm against register R's
// existing value.
type UnifyValue struct {
	R Reg
}

func (UnifyValue) isInstruction() {}
func (UnifyValue) Kind() Kind       { return KindUnifyValue }
func (i UnifyValue) String() string { return "unify_value " + regString(i.R) }
func (i UnifyValue) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("unify_value"), Args: []term.Term{
		term.AtomConst(atoms.Intern(regString(i.R))),
	}}
}

// UnifyLocalValue is UnifyValue specialized for a variable local to
// the current clause (no environment trail entry required on binding).
type UnifyLocalValue struct {
	R Reg
}

func (UnifyLocalValue) isInstruction() {}
func (UnifyLocalValue) Kind() Kind       { return KindUnifyLocalValue }
func (i UnifyLocalValue) String() string { return "unify_local_value " + regString(i.R) }
func (i UnifyLocalValue) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("unify_local_value"), Args: []term.Term{
		term.AtomConst(atoms.Intern(regString(i.R))),
	}}
}

// UnifyVoid skips N anonymous structure subterms.
type UnifyVoid struct {
	N int
}

func (UnifyVoid) isInstruction() {}
func (UnifyVoid) Kind() Kind       { return KindUnifyVoid }
func (i UnifyVoid) String() string { return "unify_void " + strconv.Itoa(i.N) }
func (i UnifyVoid) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("unify_void"), Args: []term.Term{term.NumberConst(fixnumOf(i.N))}}
}
