package instr

import (
	"strconv"
	"strings"

	"github.com/brightly-salty/scryer-prolog/internal/atom"
	"github.com/brightly-salty/scryer-prolog/internal/term"
)

// ========================================
// Indexing instructions
// ========================================
//
// First-argument indexing: a predicate with more than one clause and
// a non-variable first argument in at least one of them compiles a
// small decision tree ahead of its clause chain, so that a call whose
// first argument is already bound skips straight to the clauses it
// could possibly match instead of trying each one and backtracking
// out of the rest.
//
// SwitchOnConstant and SwitchOnStructure each carry a hash-table
// lookup in the source language; here that is an ordered association
// list (ConstantCases / StructureCases) instead of a Go map, so that
// iteration order - and therefore ToFunctor's linearization and the
// pretty-printer's output - is the deterministic order the entries
// were compiled in rather than whatever order map iteration happens
// to produce.

// SwitchOnTerm dispatches on argument register Arg's principal
// functor category, jumping to whichever of the four targets matches
// (0 means "no clause of this category exists, fall through").
type SwitchOnTerm struct {
	Arg          Reg
	VarTarget    int
	ConstTarget  int
	ListTarget   int
	StructTarget int
}

func (SwitchOnTerm) isInstruction() {}
func (SwitchOnTerm) Kind() Kind     { return KindSwitchOnTerm }
func (i SwitchOnTerm) String() string {
	return "switch_on_term " + regString(i.Arg) + ", var=" + strconv.Itoa(i.VarTarget) +
		", const=" + strconv.Itoa(i.ConstTarget) + ", list=" + strconv.Itoa(i.ListTarget) +
		", struct=" + strconv.Itoa(i.StructTarget)
}
func (i SwitchOnTerm) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("switch_on_term"), Args: []term.Term{
		term.AtomConst(atoms.Intern(regString(i.Arg))),
		term.NumberConst(fixnumOf(i.VarTarget)),
		term.NumberConst(fixnumOf(i.ConstTarget)),
		term.NumberConst(fixnumOf(i.ListTarget)),
		term.NumberConst(fixnumOf(i.StructTarget)),
	}}
}

// ConstantCase is one entry of a SwitchOnConstant association list.
type ConstantCase struct {
	C      term.Const
	Target int
}

// SwitchOnConstant dispatches on an already-known-atomic first
// argument by linear scan over Cases, in the order they were
// compiled.
type SwitchOnConstant struct {
	Cases []ConstantCase
}

func (SwitchOnConstant) isInstruction() {}
func (SwitchOnConstant) Kind() Kind     { return KindSwitchOnConstant }
func (i SwitchOnConstant) String() string {
	var sb strings.Builder
	sb.WriteString("switch_on_constant")
	for _, c := range i.Cases {
		sb.WriteString(" [" + constString(c.C) + " -> " + strconv.Itoa(c.Target) + "]")
	}
	return sb.String()
}
func (i SwitchOnConstant) ToFunctor(atoms *atom.Table) *term.Compound {
	pairs := make([]term.Term, len(i.Cases))
	for idx, c := range i.Cases {
		pairs[idx] = &term.Compound{Functor: atoms.Intern("-"), Args: []term.Term{c.C, term.NumberConst(fixnumOf(c.Target))}}
	}
	return &term.Compound{Functor: atoms.Intern("switch_on_constant"), Args: []term.Term{
		term.List(pairs, nil, atoms.Intern(".")),
	}}
}

// StructureCase is one entry of a SwitchOnStructure association list.
type StructureCase struct {
	Name   string
	Arity  int
	Target int
}

// SwitchOnStructure dispatches on an already-known-compound first
// argument's name/arity by linear scan over Cases.
type SwitchOnStructure struct {
	Cases []StructureCase
}

func (SwitchOnStructure) isInstruction() {}
func (SwitchOnStructure) Kind() Kind     { return KindSwitchOnStructure }
func (i SwitchOnStructure) String() string {
	var sb strings.Builder
	sb.WriteString("switch_on_structure")
	for _, c := range i.Cases {
		sb.WriteString(" [" + c.Name + "/" + strconv.Itoa(c.Arity) + " -> " + strconv.Itoa(c.Target) + "]")
	}
	return sb.String()
}
func (i SwitchOnStructure) ToFunctor(atoms *atom.Table) *term.Compound {
	pairs := make([]term.Term, len(i.Cases))
	for idx, c := range i.Cases {
		key := &term.Compound{Functor: atoms.Intern("/"), Args: []term.Term{
			term.AtomConst(atoms.Intern(c.Name)), term.NumberConst(fixnumOf(c.Arity)),
		}}
		pairs[idx] = &term.Compound{Functor: atoms.Intern("-"), Args: []term.Term{key, term.NumberConst(fixnumOf(c.Target))}}
	}
	return &term.Compound{Functor: atoms.Intern("switch_on_structure"), Args: []term.Term{
		term.List(pairs, nil, atoms.Intern(".")),
	}}
}

// Try is the indexed-choice-point counterpart of TryMeElse, used
// inside a SwitchOnConstant/SwitchOnStructure bucket that has more
// than one candidate clause.
type Try struct {
	Offset int
}

func (Try) isInstruction()   {}
func (Try) Kind() Kind       { return KindIndexedTry }
func (i Try) String() string { return "try " + strconv.Itoa(i.Offset) }
func (i Try) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("try"), Args: []term.Term{term.NumberConst(fixnumOf(i.Offset))}}
}

// Retry is the indexed-choice-point counterpart of RetryMeElse.
type Retry struct {
	Offset int
}

func (Retry) isInstruction()   {}
func (Retry) Kind() Kind       { return KindIndexedRetry }
func (i Retry) String() string { return "retry " + strconv.Itoa(i.Offset) }
func (i Retry) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("retry"), Args: []term.Term{term.NumberConst(fixnumOf(i.Offset))}}
}

// Trust is the indexed-choice-point counterpart of TrustMe.
type Trust struct {
	Offset int
}

func (Trust) isInstruction()   {}
func (Trust) Kind() Kind       { return KindIndexedTrust }
func (i Trust) String() string { return "trust " + strconv.Itoa(i.Offset) }
func (i Trust) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("trust"), Args: []term.Term{term.NumberConst(fixnumOf(i.Offset))}}
}

// IndexingLine pairs a SwitchOnTerm with the SwitchOnConstant and/or
// SwitchOnStructure chains its const/struct targets point at, the
// unit the compiler emits for one clause-indexable argument position.
type IndexingLine struct {
	Switch    SwitchOnTerm
	Constants *SwitchOnConstant
	Structs   *SwitchOnStructure
}

func (l IndexingLine) String() string {
	var sb strings.Builder
	sb.WriteString(l.Switch.String())
	if l.Constants != nil {
		sb.WriteString("\n  ")
		sb.WriteString(l.Constants.String())
	}
	if l.Structs != nil {
		sb.WriteString("\n  ")
		sb.WriteString(l.Structs.String())
	}
	return sb.String()
}
