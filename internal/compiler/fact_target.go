package compiler

import (
	"github.com/brightly-salty/scryer-prolog/internal/clausetype"
	"github.com/brightly-salty/scryer-prolog/internal/instr"
	"github.com/brightly-salty/scryer-prolog/internal/term"
)

// FactTarget implements Target for a clause head: every operation
// emits the matching member of the Get*/Unify* instruction family.
type FactTarget struct{}

func (FactTarget) FromConstant(level instr.Level, c term.Const, r instr.Reg) instr.Instruction {
	return instr.GetConstant{Level: level, C: c, R: r}
}

func (FactTarget) FromList(level instr.Level, r instr.Reg) instr.Instruction {
	return instr.GetList{Level: level, R: r}
}

func (FactTarget) FromStructure(level instr.Level, ct clausetype.ClauseType, arity int, r instr.Reg) instr.Instruction {
	return instr.GetStructure{ClauseType: ct, Arity: arity, R: r}
}

func (FactTarget) FromPStr(level instr.Level, text string, r instr.Reg, hasTail bool) instr.Instruction {
	return instr.GetPartialString{Level: level, Text: text, R: r, HasTail: hasTail}
}

func (FactTarget) FromVoid(n int) instr.Instruction {
	return instr.UnifyVoid{N: n}
}

func (FactTarget) ConstantSubterm(c term.Const) instr.Instruction {
	return instr.UnifyConstant{C: c}
}

func (FactTarget) ArgumentToVariable(r instr.Reg, arg instr.Reg) instr.Instruction {
	return instr.GetVariable{R: r, Arg: arg}
}

func (FactTarget) ArgumentToValue(r instr.Reg, arg instr.Reg) instr.Instruction {
	return instr.GetValue{R: r, Arg: arg}
}

func (FactTarget) MoveToRegister(arg instr.Reg, r instr.Reg) instr.Instruction {
	return instr.GetValue{R: r, Arg: arg}
}

func (FactTarget) SubtermToVariable(r instr.Reg) instr.Instruction {
	return instr.UnifyVariable{R: r}
}

func (FactTarget) SubtermToValue(r instr.Reg) instr.Instruction {
	return instr.UnifyValue{R: r}
}

func (FactTarget) ClauseArgToInstr(ct clausetype.ClauseType, arity int, r instr.Reg) instr.Instruction {
	return instr.GetStructure{ClauseType: ct, Arity: arity, R: r}
}

func (FactTarget) IsVoidInstr(ins instr.Instruction) bool {
	_, ok := ins.(instr.UnifyVoid)
	return ok
}

func (FactTarget) IncrVoidInstr(ins instr.Instruction) instr.Instruction {
	v := ins.(instr.UnifyVoid)
	return instr.UnifyVoid{N: v.N + 1}
}
