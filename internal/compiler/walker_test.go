package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brightly-salty/scryer-prolog/internal/atom"
	"github.com/brightly-salty/scryer-prolog/internal/clausetype"
	"github.com/brightly-salty/scryer-prolog/internal/compiler"
	"github.com/brightly-salty/scryer-prolog/internal/instr"
	"github.com/brightly-salty/scryer-prolog/internal/term"
)

// append([], L, L).
func TestWalkFactBaseCaseAppend(t *testing.T) {
	args := []term.Term{
		term.Const{IsNil: true},
		term.Var{Name: "L"},
		term.Var{Name: "L"},
	}

	w := compiler.NewWalker(compiler.FactTarget{}, compiler.NewPermVars(), clausetype.NewRegistry())
	got := w.WalkFact(args)

	require.Len(t, got, 3)
	require.IsType(t, instr.GetConstant{}, got[0])
	require.Equal(t, instr.GetVariable{R: 2, Arg: 1}, got[1])
	require.Equal(t, instr.GetValue{R: 3, Arg: 1}, got[2])
}

// append([H|T], L, [H|R]) :- ... — checks that the first list cell
// compiles to get_list, that L (argument 2) binds via get_variable,
// and that the repeated H in the third argument unifies via
// unify_value.
func TestWalkFactNestedListFlattensBreadthFirst(t *testing.T) {
	atoms := atom.NewTable()
	dot := atoms.Intern(".")
	headTailList := term.List([]term.Term{term.Var{Name: "H"}}, term.Var{Name: "T"}, dot)
	resultList := term.List([]term.Term{term.Var{Name: "H"}}, term.Var{Name: "R"}, dot)

	args := []term.Term{headTailList, term.Var{Name: "L"}, resultList}

	w := compiler.NewWalker(compiler.FactTarget{}, compiler.NewPermVars(), clausetype.NewRegistry())
	got := w.WalkFact(args)

	require.IsType(t, instr.GetList{}, got[0])

	var sawArgVariable, sawRepeatUnify bool
	for _, ins := range got {
		if gv, ok := ins.(instr.GetVariable); ok && gv.R == 2 {
			sawArgVariable = true
		}
		if _, ok := ins.(instr.UnifyValue); ok {
			sawRepeatUnify = true
		}
	}
	require.True(t, sawArgVariable, "L (argument 2) should bind via get_variable")
	require.True(t, sawRepeatUnify, "H repeats inside the third argument's list cell and should unify_value")
}

func TestWalkQueryPostOrderBuildsArgumentsBottomUp(t *testing.T) {
	atoms := atom.NewTable()
	dot := atoms.Intern(".")
	inner := &term.Compound{Functor: atoms.Intern("f"), Args: []term.Term{term.Var{Name: "X"}}}
	listArg := term.List([]term.Term{inner}, nil, dot)

	w := compiler.NewWalker(compiler.QueryTarget{}, compiler.NewPermVars(), clausetype.NewRegistry())
	got := w.WalkQuery([]term.Term{listArg})

	require.NotEmpty(t, got)

	innerIdx, outerIdx := -1, -1
	for idx, ins := range got {
		switch ins.(type) {
		case instr.PutStructure:
			innerIdx = idx
		case instr.PutList:
			outerIdx = idx
		}
	}
	require.GreaterOrEqual(t, innerIdx, 0, "the inner f(X) structure should be built")
	require.GreaterOrEqual(t, outerIdx, 0, "the outer list cell should be built")
	require.Less(t, innerIdx, outerIdx, "post-order: inner structure builds before the outer list cell")
}

func TestFactTargetVoidCoalescing(t *testing.T) {
	ft := compiler.FactTarget{}
	v := ft.FromVoid(1)
	require.True(t, ft.IsVoidInstr(v))
	v2 := ft.IncrVoidInstr(v)
	require.Equal(t, instr.UnifyVoid{N: 2}, v2)
}

func TestQueryTargetClauseArgToInstr(t *testing.T) {
	qt := compiler.QueryTarget{}
	ct := clausetype.ClauseType{Kind: clausetype.Named, Name: "foo", Arity: 1, Index: 1}
	ins := qt.ClauseArgToInstr(ct, 1, 1)
	require.Equal(t, instr.PutStructure{ClauseType: ct, Arity: 1, R: 1}, ins)
}
