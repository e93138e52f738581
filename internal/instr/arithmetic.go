package instr

import (
	"strconv"

	"github.com/brightly-salty/scryer-prolog/internal/atom"
	"github.com/brightly-salty/scryer-prolog/internal/term"
)

// ========================================
// Arithmetic instructions
// ========================================
//
// Compiled evaluation of is/2 and the arithmetic comparison
// predicates' operand expressions: each subexpression becomes one
// instruction writing its result into a fresh intermediate slot
// (addressed by ArithInterm), so that the expression tree is
// flattened into a straight-line sequence with no stack of its own.

// BinaryOp enumerates the two-operand arithmetic instructions.
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Pow
	IntPow
	IDiv
	Max
	Min
	IntFloorDiv
	RDiv
	Div
	Shl
	Shr
	BitwiseXor
	BitwiseAnd
	BitwiseOr
	Mod
	Rem
	Gcd
	ATan2
)

var binaryOpNames = [...]string{
	Add:         "+",
	Sub:         "-",
	Mul:         "*",
	Pow:         "**",
	IntPow:      "^",
	IDiv:        "//",
	Max:         "max",
	Min:         "min",
	IntFloorDiv: "div",
	RDiv:        "rdiv",
	Div:         "/",
	Shl:         "<<",
	Shr:         ">>",
	BitwiseXor:  "xor",
	BitwiseAnd:  "/\\",
	BitwiseOr:   `\/`,
	Mod:         "mod",
	Rem:         "rem",
	Gcd:         "gcd",
	ATan2:       "atan2",
}

func (o BinaryOp) String() string { return binaryOpNames[o] }

// ArithBinary computes Op(X, Y) and writes the result into
// intermediate slot Dst.
type ArithBinary struct {
	Op  BinaryOp
	X   ArithmeticTerm
	Y   ArithmeticTerm
	Dst ArithInterm
}

func (ArithBinary) isInstruction() {}
func (ArithBinary) Kind() Kind     { return KindArithBinary }
func (i ArithBinary) String() string {
	return i.Dst.String() + " = " + i.X.String() + " " + i.Op.String() + " " + i.Y.String()
}
func (i ArithBinary) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("arith_binary"), Args: []term.Term{
		term.AtomConst(atoms.Intern(i.Op.String())),
		arithTermFunctor(atoms, i.X),
		arithTermFunctor(atoms, i.Y),
		term.NumberConst(fixnumOf(int(i.Dst))),
	}}
}

// UnaryOp enumerates the one-operand arithmetic instructions.
type UnaryOp int

const (
	Sign UnaryOp = iota
	Cos
	Sin
	Tan
	Log
	Exp
	ACos
	ASin
	ATan
	Sqrt
	Abs
	Float
	Truncate
	Round
	Ceiling
	Floor
	Neg
	Plus
	BitwiseComplement
)

var unaryOpNames = [...]string{
	Sign:              "sign",
	Cos:               "cos",
	Sin:               "sin",
	Tan:               "tan",
	Log:               "log",
	Exp:               "exp",
	ACos:              "acos",
	ASin:              "asin",
	ATan:              "atan",
	Sqrt:              "sqrt",
	Abs:               "abs",
	Float:             "float",
	Truncate:          "truncate",
	Round:             "round",
	Ceiling:           "ceiling",
	Floor:             "floor",
	Neg:               "-",
	Plus:              "+",
	BitwiseComplement: `\`,
}

func (o UnaryOp) String() string { return unaryOpNames[o] }

// ArithUnary computes Op(X) and writes the result into intermediate
// slot Dst.
type ArithUnary struct {
	Op  UnaryOp
	X   ArithmeticTerm
	Dst ArithInterm
}

func (ArithUnary) isInstruction() {}
func (ArithUnary) Kind() Kind     { return KindArithUnary }
func (i ArithUnary) String() string {
	return i.Dst.String() + " = " + i.Op.String() + "(" + i.X.String() + ")"
}
func (i ArithUnary) ToFunctor(atoms *atom.Table) *term.Compound {
	return &term.Compound{Functor: atoms.Intern("arith_unary"), Args: []term.Term{
		term.AtomConst(atoms.Intern(i.Op.String())),
		arithTermFunctor(atoms, i.X),
		term.NumberConst(fixnumOf(int(i.Dst))),
	}}
}

// arithTermFunctor converts an ArithmeticTerm operand into the term
// form its own variant presents in a reflective payload: reg(A) for a
// register, interm(I) for an intermediate slot, or the bare number for
// an immediate.
func arithTermFunctor(atoms *atom.Table, t ArithmeticTerm) term.Term {
	switch v := t.(type) {
	case ArithReg:
		return &term.Compound{Functor: atoms.Intern("reg"), Args: []term.Term{
			term.AtomConst(atoms.Intern(regString(Reg(v)))),
		}}
	case ArithInterm:
		return &term.Compound{Functor: atoms.Intern("interm"), Args: []term.Term{
			term.NumberConst(fixnumOf(int(v))),
		}}
	case ArithNumber:
		return term.NumberConst(v.N)
	default:
		return term.AtomConst(atoms.Intern("?"))
	}
}
