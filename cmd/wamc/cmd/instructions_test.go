package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brightly-salty/scryer-prolog/internal/atom"
	"github.com/brightly-salty/scryer-prolog/internal/clausetype"
	"github.com/brightly-salty/scryer-prolog/internal/compiler"
	"github.com/brightly-salty/scryer-prolog/internal/instr"
	"github.com/brightly-salty/scryer-prolog/internal/term"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, contents string) *os.File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestParseArgSpecVariants(t *testing.T) {
	atoms := atom.NewTable()

	nilT, err := parseArgSpec("nil", atoms)
	require.NoError(t, err)
	require.Equal(t, term.Const{IsNil: true}, nilT)

	varT, err := parseArgSpec("var:X", atoms)
	require.NoError(t, err)
	require.Equal(t, term.Var{Name: "X"}, varT)

	atomT, err := parseArgSpec("atom:foo", atoms)
	require.NoError(t, err)
	c, ok := atomT.(term.Const)
	require.True(t, ok)
	require.Equal(t, "foo", c.Atom.Name())

	_, err = parseArgSpec("bogus", atoms)
	require.Error(t, err)
}

// clause append/3 / head nil var:L var:L is append/3's base case.
func TestParseClauseFixtureBaseCaseAppend(t *testing.T) {
	f := writeFixture(t, "clause append/3\nhead nil var:L var:L\n")
	atoms := atom.NewTable()

	fixture, err := parseClauseFixture(f, atoms)
	require.NoError(t, err)
	require.Equal(t, "append", fixture.name)
	require.Equal(t, 3, fixture.arity)
	require.Len(t, fixture.head, 3)
	require.Empty(t, fixture.body)
}

func TestParseClauseFixtureWithBodyGoal(t *testing.T) {
	f := writeFixture(t, "clause double/2\nhead var:X var:Y\nbody plus var:X var:X var:Y\n")
	atoms := atom.NewTable()

	fixture, err := parseClauseFixture(f, atoms)
	require.NoError(t, err)
	require.Len(t, fixture.body, 1)
	require.Equal(t, "plus", fixture.body[0].name)
	require.Len(t, fixture.body[0].args, 3)
}

func TestParseClauseFixtureRejectsArityMismatch(t *testing.T) {
	f := writeFixture(t, "clause foo/2\nhead var:X\n")
	atoms := atom.NewTable()

	_, err := parseClauseFixture(f, atoms)
	require.Error(t, err)
}

func TestParseClauseFixtureRejectsMissingClauseLine(t *testing.T) {
	f := writeFixture(t, "head var:X\n")
	atoms := atom.NewTable()

	_, err := parseClauseFixture(f, atoms)
	require.Error(t, err)
}

func TestFixtureHeadCompilesThroughWalkFact(t *testing.T) {
	f := writeFixture(t, "clause append/3\nhead nil var:L var:L\n")
	atoms := atom.NewTable()

	fixture, err := parseClauseFixture(f, atoms)
	require.NoError(t, err)

	w := compiler.NewWalker(compiler.FactTarget{}, compiler.NewPermVars(), clausetype.NewRegistry())
	got := w.WalkFact(fixture.head)

	require.Len(t, got, 3)
	require.IsType(t, instr.GetConstant{}, got[0])
	require.Equal(t, instr.GetVariable{R: 2, Arg: 1}, got[1])
	require.Equal(t, instr.GetValue{R: 3, Arg: 1}, got[2])
}
