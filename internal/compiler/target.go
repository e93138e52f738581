// Package compiler implements a single term-walking compiler: one
// Walker, parameterized by a Target capability set, emits either fact
// or query instructions for a clause's head and body respectively. A
// single mutable-state struct recurses over the term tree via type
// switch; the fact/query instruction-selection difference is isolated
// entirely in which Target is plugged in, so the traversal itself is
// written once.
package compiler

import (
	"github.com/brightly-salty/scryer-prolog/internal/clausetype"
	"github.com/brightly-salty/scryer-prolog/internal/instr"
	"github.com/brightly-salty/scryer-prolog/internal/term"
)

// Target is the capability set a Walker needs to compile one term
// tree. The fact target (FactTarget) and the query target
// (QueryTarget) each give a different instruction family to every one
// of these operations, while the Walker above them stays identical.
type Target interface {
	// FromConstant emits the instruction matching/building constant c
	// at register r, at the given nesting level.
	FromConstant(level instr.Level, c term.Const, r instr.Reg) instr.Instruction
	// FromList emits the instruction matching/building a './2' cell at
	// register r, at the given nesting level.
	FromList(level instr.Level, r instr.Reg) instr.Instruction
	// FromStructure emits the instruction matching/building a compound
	// of the given clause type and arity at register r.
	FromStructure(level instr.Level, ct clausetype.ClauseType, arity int, r instr.Reg) instr.Instruction
	// FromPStr emits the instruction matching/building a partial
	// string at register r.
	FromPStr(level instr.Level, text string, r instr.Reg, hasTail bool) instr.Instruction
	// FromVoid emits the instruction consuming n anonymous subterms in
	// a structure being matched or built.
	FromVoid(n int) instr.Instruction
	// ConstantSubterm emits the instruction matching/building constant
	// c as a structure subterm (not an argument register).
	ConstantSubterm(c term.Const) instr.Instruction
	// ArgumentToVariable emits the instruction binding argument
	// register r to permanent variable arg on its first occurrence.
	ArgumentToVariable(r instr.Reg, arg instr.Reg) instr.Instruction
	// ArgumentToValue emits the instruction matching/building argument
	// register r against permanent variable arg's existing value.
	ArgumentToValue(r instr.Reg, arg instr.Reg) instr.Instruction
	// MoveToRegister emits the instruction moving permanent variable
	// arg's value into register r (query target only; the fact target
	// never needs a bare move since GetVariable/GetValue already land
	// the value in place).
	MoveToRegister(arg instr.Reg, r instr.Reg) instr.Instruction
	// SubtermToVariable emits the instruction binding a fresh variable,
	// held in register r, as a structure subterm.
	SubtermToVariable(r instr.Reg) instr.Instruction
	// SubtermToValue emits the instruction matching/building a
	// structure subterm against register r's existing value.
	SubtermToValue(r instr.Reg) instr.Instruction
	// ClauseArgToInstr builds the top-level CallClause/head-match
	// instruction appropriate to this target for a resolved clause
	// type, arity, and register.
	ClauseArgToInstr(ct clausetype.ClauseType, arity int, r instr.Reg) instr.Instruction
	// IsVoidInstr reports whether ins is a run of void-skipping
	// instructions this target can merge with a following one (so the
	// walker can coalesce adjacent anonymous variables into a single
	// UnifyVoid/SetVoid(n) instead of n separate ones).
	IsVoidInstr(ins instr.Instruction) bool
	// IncrVoidInstr returns a copy of a void-skipping instruction with
	// its count increased by one, for the coalescing IsVoidInstr
	// enables.
	IncrVoidInstr(ins instr.Instruction) instr.Instruction
}
