package compiler

import (
	"github.com/brightly-salty/scryer-prolog/internal/clausetype"
	"github.com/brightly-salty/scryer-prolog/internal/instr"
	"github.com/brightly-salty/scryer-prolog/internal/term"
)

// QueryTarget implements Target for a clause body goal: every
// operation emits the matching member of the Put*/Set* instruction
// family.
type QueryTarget struct{}

func (QueryTarget) FromConstant(level instr.Level, c term.Const, r instr.Reg) instr.Instruction {
	return instr.PutConstant{Level: level, C: c, R: r}
}

func (QueryTarget) FromList(level instr.Level, r instr.Reg) instr.Instruction {
	return instr.PutList{Level: level, R: r}
}

func (QueryTarget) FromStructure(level instr.Level, ct clausetype.ClauseType, arity int, r instr.Reg) instr.Instruction {
	return instr.PutStructure{ClauseType: ct, Arity: arity, R: r}
}

func (QueryTarget) FromPStr(level instr.Level, text string, r instr.Reg, hasTail bool) instr.Instruction {
	return instr.PutPartialString{Level: level, Text: text, R: r, HasTail: hasTail}
}

func (QueryTarget) FromVoid(n int) instr.Instruction {
	return instr.SetVoid{N: n}
}

func (QueryTarget) ConstantSubterm(c term.Const) instr.Instruction {
	return instr.SetConstant{C: c}
}

func (QueryTarget) ArgumentToVariable(r instr.Reg, arg instr.Reg) instr.Instruction {
	return instr.PutVariable{Arg: arg, R: r}
}

func (QueryTarget) ArgumentToValue(r instr.Reg, arg instr.Reg) instr.Instruction {
	return instr.PutValue{Arg: arg, R: r}
}

func (QueryTarget) MoveToRegister(arg instr.Reg, r instr.Reg) instr.Instruction {
	return instr.PutUnsafeValue{Y: arg, A: r}
}

func (QueryTarget) SubtermToVariable(r instr.Reg) instr.Instruction {
	return instr.SetVariable{R: r}
}

func (QueryTarget) SubtermToValue(r instr.Reg) instr.Instruction {
	return instr.SetValue{R: r}
}

func (QueryTarget) ClauseArgToInstr(ct clausetype.ClauseType, arity int, r instr.Reg) instr.Instruction {
	return instr.PutStructure{ClauseType: ct, Arity: arity, R: r}
}

func (QueryTarget) IsVoidInstr(ins instr.Instruction) bool {
	_, ok := ins.(instr.SetVoid)
	return ok
}

func (QueryTarget) IncrVoidInstr(ins instr.Instruction) instr.Instruction {
	v := ins.(instr.SetVoid)
	return instr.SetVoid{N: v.N + 1}
}
