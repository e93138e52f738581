// Package lexer implements lexical analysis for ISO-flavored Prolog
// source text: a lookahead character stream, the token grammar
// (numbers, atoms, variables, strings, punctuation, comments), and
// the closed error taxonomy produced along the way.
package lexer

import (
	"fmt"

	"github.com/brightly-salty/scryer-prolog/internal/atom"
	"github.com/brightly-salty/scryer-prolog/internal/number"
)

// Position identifies a location in the source text, reported as of
// the rune just consumed (or, for put-back-triggered errors, just
// after the put-back completed).
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// TokenType enumerates the lexer's token variants.
type TokenType int

const (
	TokConstant TokenType = iota
	TokVar
	TokOpen             // whitespace-separated '('
	TokOpenCT           // close-tight '(' immediately after a name
	TokClose            // ')'
	TokOpenList         // '['
	TokCloseList        // ']'
	TokOpenCurly        // '{'
	TokCloseCurly       // '}'
	TokHeadTailSeparator // '|'
	TokComma            // ','
	TokEnd              // clause-terminating '.'
	TokEOF
)

var tokenTypeNames = [...]string{
	TokConstant:          "Constant",
	TokVar:                "Var",
	TokOpen:               "Open",
	TokOpenCT:             "OpenCT",
	TokClose:              "Close",
	TokOpenList:           "OpenList",
	TokCloseList:          "CloseList",
	TokOpenCurly:          "OpenCurly",
	TokCloseCurly:         "CloseCurly",
	TokHeadTailSeparator:  "HeadTailSeparator",
	TokComma:              "Comma",
	TokEnd:                "End",
	TokEOF:                "EOF",
}

// String returns the token type's name for diagnostics.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) && tokenTypeNames[t] != "" {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// ConstantKind enumerates the Constant sum's variants.
type ConstantKind int

const (
	ConstAtom ConstantKind = iota
	ConstChar
	ConstEmptyList
	ConstFixnum
	ConstInteger
	ConstRational
	ConstFloat
	ConstString
)

// OpSpec is an operator specifier: a priority and an associativity
// tag (xfx, xfy, yfx, fy, fx, xf, yf).
type OpSpec struct {
	Priority int
	Assoc    string
}

// Constant is the tagged sum of an atom, character, number, or string
// literal. Exactly one field group is meaningful per Kind.
type Constant struct {
	Kind ConstantKind

	Atom   *atom.Atom // ConstAtom
	Op     *OpSpec    // optional, only ever set alongside ConstAtom

	Char rune // ConstChar

	Number number.Number // ConstFixnum / ConstInteger / ConstRational / ConstFloat

	Text string // ConstString
}

// Token is a single lexical token together with its source position.
type Token struct {
	Type     TokenType
	Constant Constant // meaningful only when Type == TokConstant
	VarName  string   // meaningful only when Type == TokVar
	Pos      Position
}

func (t Token) String() string {
	switch t.Type {
	case TokConstant:
		return fmt.Sprintf("Constant(%s)@%s", t.Constant.String(), t.Pos)
	case TokVar:
		return fmt.Sprintf("Var(%s)@%s", t.VarName, t.Pos)
	default:
		return fmt.Sprintf("%s@%s", t.Type, t.Pos)
	}
}

func (c Constant) String() string {
	switch c.Kind {
	case ConstAtom:
		return fmt.Sprintf("Atom(%s)", c.Atom.Name())
	case ConstChar:
		return fmt.Sprintf("Char(%q)", c.Char)
	case ConstEmptyList:
		return "EmptyList"
	case ConstFixnum, ConstInteger, ConstRational, ConstFloat:
		return c.Number.String()
	case ConstString:
		return fmt.Sprintf("String(%q)", c.Text)
	default:
		return "?"
	}
}
