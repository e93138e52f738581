package errors_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	cerrors "github.com/brightly-salty/scryer-prolog/internal/errors"
	"github.com/brightly-salty/scryer-prolog/internal/lexer"
)

func TestFormatPointsCaretAtColumn(t *testing.T) {
	src := "foo(bar baz)."
	err := cerrors.NewCompilerError(lexer.Position{Line: 1, Column: 9}, "unexpected character", src, "test.pl")

	out := err.Format(false)
	require.Contains(t, out, "Error in test.pl:1:9")
	require.Contains(t, out, "foo(bar baz).")
	// "   1 | " is 7 characters wide; column 9 puts the caret after 7+8 spaces.
	require.Contains(t, out, "\n"+strings.Repeat(" ", 15)+"^\n")
	require.Contains(t, out, "unexpected character")
}

func TestFromLexErrorsExtractsPosition(t *testing.T) {
	src := "foo(bar, 'unterminated"
	l := lexer.NewLexer(strings.NewReader(src))
	_, lexErrs := l.AllTokens()
	require.NotEmpty(t, lexErrs)

	out := cerrors.FromLexErrors(lexErrs, src, "test.pl")
	require.Len(t, out, len(lexErrs))
	require.Greater(t, out[0].Pos.Line, 0)
}

func TestFormatErrorsMultiple(t *testing.T) {
	errs := []*cerrors.CompilerError{
		cerrors.NewCompilerError(lexer.Position{Line: 1, Column: 1}, "first", "", ""),
		cerrors.NewCompilerError(lexer.Position{Line: 2, Column: 1}, "second", "", ""),
	}
	out := cerrors.FormatErrors(errs, false)
	require.Contains(t, out, "2 error(s)")
	require.Contains(t, out, "first")
	require.Contains(t, out, "second")
}
