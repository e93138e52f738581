// Package instr implements the WAM instruction set: one Go type per
// instruction variant, grouped into families (get/put/unify,
// control, choice, indexing, cut, arithmetic). A WAM instruction's
// operands do not fit a fixed [opcode|A|B] layout — GetStructure
// carries a clause type and arity, SwitchOnConstant carries an
// association list, CallClause carries five independent fields — so
// each variant is its own struct, tied together by the Instruction
// marker interface. Every variant also reports a Kind() discriminant
// naming its family and opcode; the pretty-printer itself is the
// per-variant String() method, not a switch on Kind.
package instr

import (
	"strconv"

	"github.com/brightly-salty/scryer-prolog/internal/atom"
	"github.com/brightly-salty/scryer-prolog/internal/clausetype"
	"github.com/brightly-salty/scryer-prolog/internal/number"
	"github.com/brightly-salty/scryer-prolog/internal/term"
)

// Instruction is the sum type of every WAM instruction. Concrete types
// are declared in fact.go, query.go, control.go, choice.go,
// indexing.go, cut.go, and arithmetic.go.
type Instruction interface {
	isInstruction()
	// Kind reports the instruction family and specific opcode, for
	// switch-based dispatch without a full type switch.
	Kind() Kind
	// String renders the instruction in its deterministic text form.
	String() string
	// ToFunctor converts the instruction into the reflective term
	// representation exposed as $wam_instructions.
	ToFunctor(atoms *atom.Table) *term.Compound
}

// Kind discriminates every instruction variant, grouped by family.
type Kind int

const (
	// ========================================
	// Fact instructions (11 opcodes)
	// ========================================

	KindGetConstant Kind = iota
	KindGetList
	KindGetStructure
	KindGetPartialString
	KindGetValue
	KindGetVariable
	KindUnifyConstant
	KindUnifyVariable
	KindUnifyValue
	KindUnifyLocalValue
	KindUnifyVoid

	// ========================================
	// Query instructions (12 opcodes)
	// ========================================

	KindPutConstant
	KindPutList
	KindPutStructure
	KindPutPartialString
	KindPutValue
	KindPutVariable
	KindPutUnsafeValue
	KindSetConstant
	KindSetVariable
	KindSetValue
	KindSetLocalValue
	KindSetVoid

	// ========================================
	// Control instructions (6 opcodes)
	// ========================================

	KindAllocate
	KindDeallocate
	KindCallClause
	KindJmpBy
	KindRevJmpBy
	KindProceed

	// ========================================
	// Choice instructions (6 opcodes)
	// ========================================

	KindTryMeElse
	KindRetryMeElse
	KindTrustMe
	KindTryMeElseDefault
	KindRetryMeElseDefault
	KindTrustMeDefault

	// ========================================
	// Indexing instructions (6 opcodes)
	// ========================================

	KindSwitchOnTerm
	KindSwitchOnConstant
	KindSwitchOnStructure
	KindIndexedTry
	KindIndexedRetry
	KindIndexedTrust

	// ========================================
	// Cut instructions (4 opcodes)
	// ========================================

	KindNeckCut
	KindCut
	KindGetLevel
	KindGetLevelAndUnify

	// ========================================
	// Arithmetic instructions (binary and unary)
	// ========================================

	KindArithBinary
	KindArithUnary
)

var kindNames = [...]string{
	KindGetConstant:        "GetConstant",
	KindGetList:            "GetList",
	KindGetStructure:       "GetStructure",
	KindGetPartialString:   "GetPartialString",
	KindGetValue:           "GetValue",
	KindGetVariable:        "GetVariable",
	KindUnifyConstant:      "UnifyConstant",
	KindUnifyVariable:      "UnifyVariable",
	KindUnifyValue:         "UnifyValue",
	KindUnifyLocalValue:    "UnifyLocalValue",
	KindUnifyVoid:          "UnifyVoid",
	KindPutConstant:        "PutConstant",
	KindPutList:            "PutList",
	KindPutStructure:       "PutStructure",
	KindPutPartialString:   "PutPartialString",
	KindPutValue:           "PutValue",
	KindPutVariable:        "PutVariable",
	KindPutUnsafeValue:     "PutUnsafeValue",
	KindSetConstant:        "SetConstant",
	KindSetVariable:        "SetVariable",
	KindSetValue:           "SetValue",
	KindSetLocalValue:      "SetLocalValue",
	KindSetVoid:            "SetVoid",
	KindAllocate:           "Allocate",
	KindDeallocate:         "Deallocate",
	KindCallClause:         "CallClause",
	KindJmpBy:              "JmpBy",
	KindRevJmpBy:           "RevJmpBy",
	KindProceed:            "Proceed",
	KindTryMeElse:          "TryMeElse",
	KindRetryMeElse:        "RetryMeElse",
	KindTrustMe:            "TrustMe",
	KindTryMeElseDefault:   "TryMeElseDefault",
	KindRetryMeElseDefault: "RetryMeElseDefault",
	KindTrustMeDefault:     "TrustMeDefault",
	KindSwitchOnTerm:       "SwitchOnTerm",
	KindSwitchOnConstant:   "SwitchOnConstant",
	KindSwitchOnStructure:  "SwitchOnStructure",
	KindIndexedTry:         "Try",
	KindIndexedRetry:       "Retry",
	KindIndexedTrust:       "Trust",
	KindNeckCut:            "NeckCut",
	KindCut:                "Cut",
	KindGetLevel:           "GetLevel",
	KindGetLevelAndUnify:   "GetLevelAndUnify",
	KindArithBinary:        "ArithBinary",
	KindArithUnary:         "ArithUnary",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// Reg is an argument register index (A1..An in WAM terminology).
type Reg int

// Level distinguishes a head argument's nesting, which GetConstant and
// GetList use to pick between unifying against an argument register
// (RootLevel) and unifying against a structure subterm already moved
// into a temporary register (ShallowLevel).
type Level int

const (
	RootLevel Level = iota
	ShallowLevel
)

func (l Level) String() string {
	if l == RootLevel {
		return "root"
	}
	return "shallow"
}

// ArithmeticTerm is the operand sum of the arithmetic instruction
// family: a register, an already-computed intermediate result, or an
// immediate numeric constant.
type ArithmeticTerm interface {
	isArithmeticTerm()
	String() string
}

// ArithReg refers to an argument register holding a number.
type ArithReg Reg

func (ArithReg) isArithmeticTerm() {}
func (a ArithReg) String() string  { return regString(Reg(a)) }

// ArithInterm refers to the result of a previous arithmetic
// instruction in the same clause, addressed by its sequential index.
type ArithInterm int

func (ArithInterm) isArithmeticTerm() {}
func (a ArithInterm) String() string  { return "#" + strconv.Itoa(int(a)) }

// ArithNumber is an immediate numeric constant operand.
type ArithNumber struct{ N number.Number }

func (ArithNumber) isArithmeticTerm() {}
func (a ArithNumber) String() string  { return a.N.String() }

func regString(r Reg) string { return "A" + strconv.Itoa(int(r)) }

// clauseTypeFunctor builds the functor text a ClauseType presents in
// $wam_instructions payloads: the bare name for Named and Op entries
// (callers append "/arity" themselves), "call" for CallN, and the
// ClauseType's own String() form (e.g. "BuiltIn(is/2)") otherwise.
func clauseTypeFunctor(ct clausetype.ClauseType) string {
	switch ct.Kind {
	case clausetype.Named, clausetype.Op:
		return ct.Name
	case clausetype.CallN:
		return "call"
	default:
		return ct.String()
	}
}
