package instr

import (
	"github.com/brightly-salty/scryer-prolog/internal/atom"
	"github.com/brightly-salty/scryer-prolog/internal/term"
)

// ========================================
// Cut instructions
// ========================================
//
// Implement cut (!) by snapshotting and restoring "B0", the choice
// point stack depth in effect when the current clause was entered,
// so that cut can discard every choice point pushed since.

// NeckCut is the cut emitted at a clause's neck (between head and
// first body goal), which only ever needs the choice point depth
// recorded on entry to the predicate, not a register-held copy.
type NeckCut struct{}

func (NeckCut) isInstruction() {}
func (NeckCut) Kind() Kind     { return KindNeckCut }
func (NeckCut) String() string { return "neck_cut" }
func (NeckCut) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("neck_cut")}
}

// Cut discards every choice point pushed after the depth held in
// register R, implementing a cut that occurs after the clause neck
// (so the depth must have been saved earlier by GetLevel).
type Cut struct {
	R Reg
}

func (Cut) isInstruction()   {}
func (Cut) Kind() Kind       { return KindCut }
func (i Cut) String() string { return "cut " + regString(i.R) }
func (i Cut) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("cut"), Args: []term.Term{
		term.AtomConst(atoms.Intern(regString(i.R))),
	}}
}

// GetLevel saves the current choice point stack depth into register
// R, for a later Cut to restore.
type GetLevel struct {
	R Reg
}

func (GetLevel) isInstruction() {}
func (GetLevel) Kind() Kind     { return KindGetLevel }
func (i GetLevel) String() string {
	return "get_level " + regString(i.R)
}
func (i GetLevel) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("get_level"), Args: []term.Term{
		term.AtomConst(atoms.Intern(regString(i.R))),
	}}
}

// GetLevelAndUnify is GetLevel combined with unifying register R
// against the current choice point depth, used when a clause head
// contains an explicit $cut_barrier-style variable argument that must
// also unify with the depth being saved.
type GetLevelAndUnify struct {
	R Reg
}

func (GetLevelAndUnify) isInstruction() {}
func (GetLevelAndUnify) Kind() Kind     { return KindGetLevelAndUnify }
func (i GetLevelAndUnify) String() string {
	return "get_level_and_unify " + regString(i.R)
}
func (i GetLevelAndUnify) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("get_level_and_unify"), Args: []term.Term{
		term.AtomConst(atoms.Intern(regString(i.R))),
	}}
}
