package instr_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"

	"github.com/brightly-salty/scryer-prolog/internal/atom"
	"github.com/brightly-salty/scryer-prolog/internal/clausetype"
	"github.com/brightly-salty/scryer-prolog/internal/instr"
	"github.com/brightly-salty/scryer-prolog/internal/number"
	"github.com/brightly-salty/scryer-prolog/internal/term"
)

func TestGetStructureStringAndFunctor(t *testing.T) {
	atoms := atom.NewTable()
	ct := clausetype.ClauseType{Kind: clausetype.Named, Name: "foo", Arity: 2, Index: 3}
	i := instr.GetStructure{ClauseType: ct, Arity: 2, R: 1}

	require.Equal(t, "get_structure foo/2, A1", i.String())

	f := i.ToFunctor(atoms)
	require.Equal(t, "get_structure", f.Functor.Name())
	require.Len(t, f.Args, 3)
}

func TestUnifyVoidToFunctor(t *testing.T) {
	atoms := atom.NewTable()
	i := instr.UnifyVoid{N: 3}
	f := i.ToFunctor(atoms)
	require.Equal(t, "unify_void", f.Functor.Name())
	c, ok := f.Args[0].(term.Const)
	require.True(t, ok)
	require.Equal(t, number.Fixnum(3), c.Number)
}

func TestCallClauseLastCallRendersExecute(t *testing.T) {
	ct := clausetype.ClauseType{Kind: clausetype.Named, Name: "bar", Arity: 1, Index: 1}
	i := instr.CallClause{ClauseType: ct, Arity: 1, PermVars: 2, LastCall: true}
	require.Contains(t, i.String(), "execute bar/1, 2")
}

func TestSwitchOnConstantPreservesCaseOrder(t *testing.T) {
	atoms := atom.NewTable()
	sw := instr.SwitchOnConstant{Cases: []instr.ConstantCase{
		{C: term.AtomConst(atoms.Intern("red")), Target: 10},
		{C: term.AtomConst(atoms.Intern("green")), Target: 20},
		{C: term.AtomConst(atoms.Intern("blue")), Target: 30},
	}}

	f := sw.ToFunctor(atoms)
	cur := f.Args[0]
	var names []string
	for {
		c, ok := cur.(*term.Compound)
		if !ok {
			break
		}
		pair := c.Args[0].(*term.Compound)
		names = append(names, pair.Args[0].(term.Const).Atom.Name())
		cur = c.Args[1]
	}
	require.Equal(t, []string{"red", "green", "blue"}, names)
}

func TestArithBinaryString(t *testing.T) {
	i := instr.ArithBinary{Op: instr.Add, X: instr.ArithReg(1), Y: instr.ArithNumber{N: number.Fixnum(2)}, Dst: 0}
	require.Equal(t, "#0 = A1 + 2", i.String())
}

func TestCompiledClauseSnapshot(t *testing.T) {
	ct := clausetype.ClauseType{Kind: clausetype.Named, Name: "append", Arity: 3, Index: 1}
	clause := instr.CompiledClause{
		ClauseType: "append/3",
		Arity:      3,
		Head: []instr.Instruction{
			instr.GetConstant{C: term.Const{IsNil: true}, R: 1},
			instr.GetVariable{R: 2, Arg: 1},
			instr.GetVariable{R: 3, Arg: 2},
		},
		Body: []instr.Instruction{
			instr.PutValue{Arg: 2, R: 1},
			instr.CallClause{ClauseType: ct, Arity: 3, PermVars: 0, LastCall: true},
		},
	}
	snaps.MatchSnapshot(t, clause.String())
}

func TestIndexingLineString(t *testing.T) {
	line := instr.IndexingLine{
		Switch: instr.SwitchOnTerm{Arg: 1, VarTarget: 1, ConstTarget: 2, ListTarget: 4, StructTarget: 6},
		Constants: &instr.SwitchOnConstant{Cases: []instr.ConstantCase{
			{C: term.Const{IsNil: true}, Target: 3},
		}},
	}
	require.Contains(t, line.String(), "switch_on_term")
	require.Contains(t, line.String(), "switch_on_constant")
}
