package lexer

import "github.com/brightly-salty/scryer-prolog/internal/atom"

// DoubleQuotes selects how a "..." token is decoded.
type DoubleQuotes int

const (
	// DoubleQuotesCodes yields Constant::String (a list of character
	// codes is the parser's job to materialize from it).
	DoubleQuotesCodes DoubleQuotes = iota
	// DoubleQuotesAtom yields Constant::Atom.
	DoubleQuotesAtom
	// DoubleQuotesChars also yields Constant::String; the parser
	// decides whether to materialize a character-code list or a
	// one-character-atom list from it.
	DoubleQuotesChars
)

// Option configures a Lexer at construction time via the functional-
// options pattern, so NewLexer can take an open-ended, self-documenting
// set of optional settings without an exported config struct.
type Option func(*Lexer)

// WithDoubleQuotes sets the double_quotes configuration flag
// consulted when decoding a "..." token.
func WithDoubleQuotes(mode DoubleQuotes) Option {
	return func(l *Lexer) {
		l.doubleQuotes = mode
	}
}

// WithAtomTable supplies the atom table new atoms are interned into.
// Defaults to atom.Default() when not given.
func WithAtomTable(t *atom.Table) Option {
	return func(l *Lexer) {
		l.atoms = t
	}
}

// WithTracing sets the Lexer's tracing flag. No lexing code reads the
// flag, so it produces no diagnostic output.
func WithTracing(trace bool) Option {
	return func(l *Lexer) {
		l.tracing = trace
	}
}
