// Package term provides the minimal term representation the compiler
// walks. It is scaffolding, not a parser or a unifier: operator-
// precedence parsing and unification are outside this package's scope
// entirely. A Term is whatever an external parser built; this package
// only gives internal/compiler something concrete to type against.
package term

import (
	"github.com/brightly-salty/scryer-prolog/internal/atom"
	"github.com/brightly-salty/scryer-prolog/internal/number"
)

// Term is the sum type consumed by the compiler's term walker.
type Term interface {
	isTerm()
}

// Var is an unbound logic variable, identified by name: the compiler
// gives every occurrence of the same name the same register, numbered
// in order of each name's first occurrence.
type Var struct {
	Name string
}

func (Var) isTerm() {}

// Const wraps a non-compound constant: an atom, a number, a string, a
// character, or the empty list.
type Const struct {
	Atom   *atom.Atom // non-nil for an atom constant
	Number number.Number
	Char   rune
	IsChar bool
	String string
	IsStr  bool
	IsNil  bool // '[]'
}

func (Const) isTerm() {}

// AtomConst returns a Const wrapping an interned atom name.
func AtomConst(a *atom.Atom) Const { return Const{Atom: a} }

// NumberConst returns a Const wrapping a numeric value.
func NumberConst(n number.Number) Const { return Const{Number: n} }

// Compound is a functor applied to one or more argument terms. A
// functor of arity zero is represented as an atom Const instead, per
// the usual Prolog convention.
type Compound struct {
	Functor *atom.Atom
	Args    []Term
}

func (*Compound) isTerm() {}

// PStr is a contiguous run of character codes with an optional tail
// variable, the term-level counterpart of the GetPartialString/
// PutPartialString instruction family.
type PStr struct {
	Text string
	Tail Term // nil when the partial string is proper (no tail)
}

func (PStr) isTerm() {}

// List builds a proper or improper list term out of './2' cons cells.
// tail is nil for a proper list, which is then terminated by '[]';
// dotFunctor is the interned './2' atom used as each cons cell's
// functor.
func List(elems []Term, tail Term, dotFunctor *atom.Atom) Term {
	if tail == nil {
		tail = Const{IsNil: true}
	}
	result := tail
	for i := len(elems) - 1; i >= 0; i-- {
		result = &Compound{Functor: dotFunctor, Args: []Term{elems[i], result}}
	}
	return result
}
