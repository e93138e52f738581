package lexer_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/brightly-salty/scryer-prolog/internal/atom"
	"github.com/brightly-salty/scryer-prolog/internal/lexer"
	"github.com/brightly-salty/scryer-prolog/internal/number"
)

// atomByIdentity compares interned atoms by pointer identity rather
// than by reflecting into their unexported fields: "two Intern calls
// for the same name... return handles comparable by pointer identity"
// (internal/atom's own doc comment).
var atomByIdentity = cmp.Comparer(func(a, b *atom.Atom) bool { return a == b })

func mustToken(t *testing.T, l *lexer.Lexer) lexer.Token {
	t.Helper()
	tok, err := l.NextToken()
	require.NoError(t, err)
	return tok
}

func TestLexBasicClause(t *testing.T) {
	l := lexer.NewLexer(strings.NewReader("foo(bar, 'baz')."))

	tok := mustToken(t, l)
	require.Equal(t, lexer.TokConstant, tok.Type)
	require.Equal(t, lexer.ConstAtom, tok.Constant.Kind)
	require.Equal(t, "foo", tok.Constant.Atom.Name())

	require.Equal(t, lexer.TokOpenCT, mustToken(t, l).Type)

	tok = mustToken(t, l)
	require.Equal(t, "bar", tok.Constant.Atom.Name())

	require.Equal(t, lexer.TokComma, mustToken(t, l).Type)

	tok = mustToken(t, l)
	require.Equal(t, lexer.ConstAtom, tok.Constant.Kind)
	require.Equal(t, "baz", tok.Constant.Atom.Name())

	require.Equal(t, lexer.TokClose, mustToken(t, l).Type)
	require.Equal(t, lexer.TokEnd, mustToken(t, l).Type)
	require.Equal(t, lexer.TokEOF, mustToken(t, l).Type)
}

func TestLexOpenVsOpenCT(t *testing.T) {
	l := lexer.NewLexer(strings.NewReader("foo (bar)."))

	require.Equal(t, lexer.TokConstant, mustToken(t, l).Type)
	require.Equal(t, lexer.TokOpen, mustToken(t, l).Type)
}

func TestLexVariableAndGraphicOperator(t *testing.T) {
	l := lexer.NewLexer(strings.NewReader("X + 3.14e1."))

	tok := mustToken(t, l)
	require.Equal(t, lexer.TokVar, tok.Type)
	require.Equal(t, "X", tok.VarName)

	tok = mustToken(t, l)
	require.Equal(t, lexer.ConstAtom, tok.Constant.Kind)
	require.Equal(t, "+", tok.Constant.Atom.Name())

	tok = mustToken(t, l)
	require.Equal(t, lexer.ConstFloat, tok.Constant.Kind)
	f, ok := tok.Constant.Number.(number.Float)
	require.True(t, ok)
	require.InDelta(t, 31.4, float64(f), 1e-9)

	require.Equal(t, lexer.TokEnd, mustToken(t, l).Type)
}

func TestLexCharCode(t *testing.T) {
	l := lexer.NewLexer(strings.NewReader("0'A"))

	tok := mustToken(t, l)
	require.Equal(t, lexer.ConstFixnum, tok.Constant.Kind)
	require.Equal(t, number.Fixnum(65), tok.Constant.Number)
}

func TestLexCharCodeEscape(t *testing.T) {
	l := lexer.NewLexer(strings.NewReader(`0'\n`))

	tok := mustToken(t, l)
	require.Equal(t, number.Fixnum('\n'), tok.Constant.Number)
}

func TestLexRadixIntegers(t *testing.T) {
	cases := map[string]int64{
		"0x1F": 31,
		"0o17": 15,
		"0b101": 5,
	}
	for src, want := range cases {
		l := lexer.NewLexer(strings.NewReader(src))
		tok := mustToken(t, l)
		require.Equal(t, number.Fixnum(want), tok.Constant.Number, src)
	}
}

func TestLexListWithTail(t *testing.T) {
	l := lexer.NewLexer(strings.NewReader("[1, 2 | Xs]"))

	require.Equal(t, lexer.TokOpenList, mustToken(t, l).Type)
	require.Equal(t, number.Fixnum(1), mustToken(t, l).Constant.Number)
	require.Equal(t, lexer.TokComma, mustToken(t, l).Type)
	require.Equal(t, number.Fixnum(2), mustToken(t, l).Constant.Number)
	require.Equal(t, lexer.TokHeadTailSeparator, mustToken(t, l).Type)

	tok := mustToken(t, l)
	require.Equal(t, lexer.TokVar, tok.Type)
	require.Equal(t, "Xs", tok.VarName)

	require.Equal(t, lexer.TokCloseList, mustToken(t, l).Type)
}

func TestLexDoubleQuotedDefaultsToString(t *testing.T) {
	l := lexer.NewLexer(strings.NewReader(`"ok".`))

	tok := mustToken(t, l)
	require.Equal(t, lexer.ConstString, tok.Constant.Kind)
	require.Equal(t, "ok", tok.Constant.Text)

	require.Equal(t, lexer.TokEnd, mustToken(t, l).Type)
}

func TestLexDoubleQuotedAtomMode(t *testing.T) {
	l := lexer.NewLexer(strings.NewReader(`"ok".`), lexer.WithDoubleQuotes(lexer.DoubleQuotesAtom))

	tok := mustToken(t, l)
	require.Equal(t, lexer.ConstAtom, tok.Constant.Kind)
	require.Equal(t, "ok", tok.Constant.Atom.Name())
}

func TestLexFloatExponentBacktrack(t *testing.T) {
	l := lexer.NewLexer(strings.NewReader("1.0e."))

	tok := mustToken(t, l)
	require.Equal(t, lexer.ConstFloat, tok.Constant.Kind)
	f, ok := tok.Constant.Number.(number.Float)
	require.True(t, ok)
	require.InDelta(t, 1.0, float64(f), 1e-9)

	tok = mustToken(t, l)
	require.Equal(t, lexer.ConstAtom, tok.Constant.Kind)
	require.Equal(t, "e", tok.Constant.Atom.Name())

	require.Equal(t, lexer.TokEnd, mustToken(t, l).Type)
}

func TestLexQuotedAtomEmptyList(t *testing.T) {
	l := lexer.NewLexer(strings.NewReader("'[]'"))

	tok := mustToken(t, l)
	require.Equal(t, lexer.ConstEmptyList, tok.Constant.Kind)
}

func TestLexSingleCharQuotedAtom(t *testing.T) {
	l := lexer.NewLexer(strings.NewReader("'a'"))

	tok := mustToken(t, l)
	require.Equal(t, lexer.ConstChar, tok.Constant.Kind)
	require.Equal(t, 'a', tok.Constant.Char)
}

func TestLexEmptySingleQuotedAtom(t *testing.T) {
	l := lexer.NewLexer(strings.NewReader("''"))

	tok := mustToken(t, l)
	require.Equal(t, lexer.ConstAtom, tok.Constant.Kind)
	require.Equal(t, "", tok.Constant.Atom.Name())
}

func TestLexBackQuotedIsRejected(t *testing.T) {
	l := lexer.NewLexer(strings.NewReader("`nope`"))

	_, err := l.NextToken()
	require.Error(t, err)
	require.IsType(t, lexer.ErrBackQuotedString{}, err)
}

func TestLexLineAndBlockComments(t *testing.T) {
	l := lexer.NewLexer(strings.NewReader("foo. % trailing comment\n/* block */bar."))

	tok := mustToken(t, l)
	require.Equal(t, "foo", tok.Constant.Atom.Name())
	require.Equal(t, lexer.TokEnd, mustToken(t, l).Type)

	tok = mustToken(t, l)
	require.Equal(t, "bar", tok.Constant.Atom.Name())
	require.Equal(t, lexer.TokEnd, mustToken(t, l).Type)
}

func TestLexUnterminatedQuoteReportsMissingQuote(t *testing.T) {
	l := lexer.NewLexer(strings.NewReader("'unterminated"))

	_, err := l.NextToken()
	require.Error(t, err)
	require.IsType(t, lexer.ErrMissingQuote{}, err)
}

func TestEofSkipsTrailingLayout(t *testing.T) {
	l := lexer.NewLexer(strings.NewReader("   \n\t  "))

	eof, err := l.Eof()
	require.NoError(t, err)
	require.True(t, eof)
}

// TestAllTokensStructuralDiff diffs a whole token stream's types and
// values against an expected slice in one shot, catching a type or
// literal drift anywhere in the stream that a field-by-field
// require.Equal chain would only surface one mismatch at a time.
// Position is intentionally excluded from the comparison here; no
// test in this file checks token positions.
func TestAllTokensStructuralDiff(t *testing.T) {
	atoms := atom.NewTable()
	l := lexer.NewLexer(strings.NewReader("f(X, 1)."), lexer.WithAtomTable(atoms))

	toks, errs := l.AllTokens()
	require.Empty(t, errs)

	want := []lexer.Token{
		{Type: lexer.TokConstant, Constant: lexer.Constant{Kind: lexer.ConstAtom, Atom: atoms.Intern("f")}},
		{Type: lexer.TokOpenCT},
		{Type: lexer.TokVar, VarName: "X"},
		{Type: lexer.TokComma},
		{Type: lexer.TokConstant, Constant: lexer.Constant{Kind: lexer.ConstFixnum, Number: number.Fixnum(1)}},
		{Type: lexer.TokClose},
		{Type: lexer.TokEnd},
		{Type: lexer.TokEOF},
	}

	ignorePos := cmp.Comparer(func(a, b lexer.Position) bool { return true })
	if diff := cmp.Diff(want, toks, atomByIdentity, ignorePos); diff != "" {
		t.Errorf("token stream mismatch (-want +got):\n%s", diff)
	}
}
