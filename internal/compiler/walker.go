package compiler

import (
	"github.com/brightly-salty/scryer-prolog/internal/clausetype"
	"github.com/brightly-salty/scryer-prolog/internal/instr"
	"github.com/brightly-salty/scryer-prolog/internal/term"
)

// PermVars tracks permanent-variable register assignment across a
// single clause: the first Walker call to see a given variable name
// gets "first occurrence" treatment (ArgumentToVariable/
// SubtermToVariable); every later call for the same name gets
// "repeat occurrence" treatment (ArgumentToValue/SubtermToValue).
type PermVars struct {
	seen map[string]instr.Reg
	next instr.Reg
}

// NewPermVars creates an empty permanent-variable tracker, numbering
// registers starting at 1.
func NewPermVars() *PermVars {
	return &PermVars{seen: make(map[string]instr.Reg), next: 1}
}

// Resolve returns name's permanent register, allocating a fresh one on
// first occurrence. first reports whether this call made the
// allocation.
func (p *PermVars) Resolve(name string) (reg instr.Reg, first bool) {
	if r, ok := p.seen[name]; ok {
		return r, false
	}
	r := p.next
	p.next++
	p.seen[name] = r
	return r, true
}

// Walker is a single term-walking compiler parameterized by a Target:
// the fact target and the query target each give a different
// instruction family to the same traversal. A Walker has one Target,
// so a clause's head and body are walked by two Walkers (fact and
// query); both must share the same PermVars tracker so a variable
// occurring in both is recognized as a repeat occurrence in the body.
type Walker struct {
	Target   Target
	Perm     *PermVars
	Registry *clausetype.Registry

	tempNext instr.Reg
}

// NewWalker creates a Walker over target, sharing perm across however
// many WalkFact/WalkQuery calls compile one clause.
func NewWalker(target Target, perm *PermVars, registry *clausetype.Registry) *Walker {
	return &Walker{Target: target, Perm: perm, Registry: registry}
}

// pendingTerm is one entry of WalkFact's breadth-first queue: a
// not-yet-compiled term together with the register that was already
// allocated to hold it.
type pendingTerm struct {
	r     instr.Reg
	t     term.Term
	level instr.Level
}

func (w *Walker) allocTemp() instr.Reg {
	r := w.tempNext
	w.tempNext++
	return r
}

func isListCell(c *term.Compound) bool {
	return c.Functor != nil && c.Functor.Name() == "." && len(c.Args) == 2
}

// WalkFact compiles a clause head's argument list breadth-first,
// skipping the clause root itself: args[i] is already addressed by
// argument register i+1, so the root functor/arity never becomes a
// GetStructure of its own. Embedded compounds are flattened level by
// level into a queue, the classic WAM "flatten" traversal: a
// structure's own Get instruction is emitted as soon as it is popped
// off the queue, and each of its subterms is either resolved
// immediately (constant, variable) or pushed back onto the queue
// under a freshly allocated register (nested compound).
func (w *Walker) WalkFact(args []term.Term) []instr.Instruction {
	w.tempNext = instr.Reg(len(args) + 1)
	queue := make([]pendingTerm, len(args))
	for i, a := range args {
		queue[i] = pendingTerm{r: instr.Reg(i + 1), t: a, level: instr.RootLevel}
	}

	var out []instr.Instruction
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		switch v := cur.t.(type) {
		case term.Var:
			reg, first := w.Perm.Resolve(v.Name)
			if first {
				out = append(out, w.Target.ArgumentToVariable(cur.r, reg))
			} else {
				out = append(out, w.Target.ArgumentToValue(cur.r, reg))
			}

		case term.Const:
			out = append(out, w.Target.FromConstant(cur.level, v, cur.r))

		case term.PStr:
			out = append(out, w.Target.FromPStr(cur.level, v.Text, cur.r, v.Tail != nil))
			if v.Tail != nil {
				tailReg := w.allocTemp()
				queue = append(queue, pendingTerm{r: tailReg, t: v.Tail, level: instr.ShallowLevel})
			}

		case *term.Compound:
			if isListCell(v) {
				out = append(out, w.Target.FromList(cur.level, cur.r))
			} else {
				ct, _ := w.Registry.Lookup(v.Functor.Name(), len(v.Args), nil)
				out = append(out, w.Target.FromStructure(cur.level, ct, len(v.Args), cur.r))
			}
			subInstrs, queued := w.factSubterms(v.Args)
			out = append(out, subInstrs...)
			queue = append(queue, queued...)

		default:
			if n := len(out); n > 0 && w.Target.IsVoidInstr(out[n-1]) {
				out[n-1] = w.Target.IncrVoidInstr(out[n-1])
			} else {
				out = append(out, w.Target.FromVoid(1))
			}
		}
	}
	return out
}

// factSubterms resolves one structure's or list cell's argument list
// against the Unify*-family target operations: atomic subterms
// (constants, variables) are resolved immediately; a nested compound
// gets a freshly allocated register and is queued for WalkFact's main
// loop to expand on a later iteration (breadth-first).
func (w *Walker) factSubterms(args []term.Term) ([]instr.Instruction, []pendingTerm) {
	var out []instr.Instruction
	var queued []pendingTerm
	for _, a := range args {
		switch v := a.(type) {
		case term.Var:
			reg, first := w.Perm.Resolve(v.Name)
			if first {
				out = append(out, w.Target.SubtermToVariable(reg))
			} else {
				out = append(out, w.Target.SubtermToValue(reg))
			}
		case term.Const:
			out = append(out, w.Target.ConstantSubterm(v))
		default:
			reg := w.allocTemp()
			out = append(out, w.Target.SubtermToVariable(reg))
			queued = append(queued, pendingTerm{r: reg, t: a, level: instr.ShallowLevel})
		}
	}
	return out, queued
}

// WalkQuery compiles a body goal's argument list post-order: every
// subterm is built bottom-up into its own temporary register before
// the instruction addressing the argument register that holds it, so
// a nested structure is fully constructed before the goal that
// contains it is put together.
func (w *Walker) WalkQuery(args []term.Term) []instr.Instruction {
	w.tempNext = instr.Reg(len(args) + 1)
	var out []instr.Instruction
	for i, a := range args {
		r := instr.Reg(i + 1)
		out = w.buildQueryTerm(out, a, r, instr.RootLevel)
	}
	return out
}

// buildQueryTerm appends the instructions building t into register r
// onto out, recursing into subterms first (post-order) before this
// term's own From*/ArgumentTo* instruction, so every subterm register
// already holds a fully built value by the time the structure-building
// instruction around it executes. Threading out through every
// recursive call (rather than concatenating independently-returned
// slices) lets the void branch below see and coalesce with whatever
// instruction a sibling call most recently appended.
func (w *Walker) buildQueryTerm(out []instr.Instruction, t term.Term, r instr.Reg, level instr.Level) []instr.Instruction {
	switch v := t.(type) {
	case term.Var:
		reg, first := w.Perm.Resolve(v.Name)
		if first {
			return append(out, w.Target.ArgumentToVariable(r, reg))
		}
		return append(out, w.Target.ArgumentToValue(r, reg))

	case term.Const:
		return append(out, w.Target.FromConstant(level, v, r))

	case term.PStr:
		if v.Tail != nil {
			tailReg := w.allocTemp()
			out = w.buildQueryTerm(out, v.Tail, tailReg, instr.ShallowLevel)
		}
		return append(out, w.Target.FromPStr(level, v.Text, r, v.Tail != nil))

	case *term.Compound:
		built := out
		subInstrs := make([]instr.Instruction, 0, len(v.Args))
		for _, a := range v.Args {
			switch sv := a.(type) {
			case term.Var:
				reg, first := w.Perm.Resolve(sv.Name)
				if first {
					subInstrs = append(subInstrs, w.Target.SubtermToVariable(reg))
				} else {
					subInstrs = append(subInstrs, w.Target.SubtermToValue(reg))
				}
			case term.Const:
				subInstrs = append(subInstrs, w.Target.ConstantSubterm(sv))
			default:
				subReg := w.allocTemp()
				built = w.buildQueryTerm(built, a, subReg, instr.ShallowLevel)
				subInstrs = append(subInstrs, w.Target.SubtermToValue(subReg))
			}
		}
		if isListCell(v) {
			built = append(built, w.Target.FromList(level, r))
		} else {
			ct, _ := w.Registry.Lookup(v.Functor.Name(), len(v.Args), nil)
			built = append(built, w.Target.FromStructure(level, ct, len(v.Args), r))
		}
		return append(built, subInstrs...)

	default:
		if n := len(out); n > 0 && w.Target.IsVoidInstr(out[n-1]) {
			out[n-1] = w.Target.IncrVoidInstr(out[n-1])
			return out
		}
		return append(out, w.Target.FromVoid(1))
	}
}
