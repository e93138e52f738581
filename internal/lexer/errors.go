package lexer

import "fmt"

// The lexer's error taxonomy is closed: every variant but
// UnexpectedEOF and InvalidSingleQuotedCharacter carries a position.
// Each variant is a distinct type implementing error so that callers
// can type-switch on the concrete kind rather than parse a message
// string, e.g. to retry an alternative interpretation on
// UnexpectedChar.

// ErrUnexpectedEOF reports end of input where a token was expected.
type ErrUnexpectedEOF struct{}

func (ErrUnexpectedEOF) Error() string { return "unexpected end of file" }

// ErrUnexpectedChar reports an unexpected character at a position.
type ErrUnexpectedChar struct {
	Char rune
	Pos  Position
}

func (e ErrUnexpectedChar) Error() string {
	return fmt.Sprintf("unexpected character %q at %s", e.Char, e.Pos)
}

// ErrMissingQuote reports an unterminated quoted item.
type ErrMissingQuote struct {
	Pos Position
}

func (e ErrMissingQuote) Error() string {
	return fmt.Sprintf("missing closing quote at %s", e.Pos)
}

// ErrNonPrologChar reports a character outside the Prolog character
// set appearing where a Prolog character is required, e.g.
// immediately after a bracketed comment's closing */.
type ErrNonPrologChar struct {
	Pos Position
}

func (e ErrNonPrologChar) Error() string {
	return fmt.Sprintf("non-Prolog character at %s", e.Pos)
}

// ErrBackQuotedString reports a back-quoted literal, whose syntax is
// lexed but reserved and always rejected.
type ErrBackQuotedString struct {
	Pos Position
}

func (e ErrBackQuotedString) Error() string {
	return fmt.Sprintf("back-quoted strings are not supported at %s", e.Pos)
}

// ErrInvalidSingleQuotedCharacter reports a single-quoted character
// literal that did not decode to exactly one scalar value.
type ErrInvalidSingleQuotedCharacter struct {
	Text string
}

func (e ErrInvalidSingleQuotedCharacter) Error() string {
	return fmt.Sprintf("invalid single-quoted character literal %q", e.Text)
}

// ErrUTF8 reports malformed UTF-8 in the input stream.
type ErrUTF8 struct {
	Pos Position
}

func (e ErrUTF8) Error() string {
	return fmt.Sprintf("invalid UTF-8 encoding at %s", e.Pos)
}

// ErrParseBigInt reports a number token whose digits failed to parse.
type ErrParseBigInt struct {
	Pos Position
}

func (e ErrParseBigInt) Error() string {
	return fmt.Sprintf("could not parse integer literal at %s", e.Pos)
}
