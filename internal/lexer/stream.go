package lexer

import (
	"bufio"
	"io"
	"unicode"
)

// RuneStream is the lookahead character stream: it wraps a byte
// reader and yields Unicode scalar values, supporting Peek
// (non-consuming), Next, and multi-character put-back. Line/column
// bookkeeping is deliberately not done here — that is the consuming
// Lexer's job, since RuneStream has no notion of which characters are
// newlines versus ordinary runes.
type RuneStream struct {
	r *bufio.Reader

	// pushback holds runes restored via PutBack/PutBackAll, most
	// recently pushed-back first, so consecutive PutBack calls
	// restore characters in reverse order. Each entry also carries
	// whether it was a malformed-UTF-8 substitution, so that a Peek
	// followed by a Next reports the same invalidity Next would have
	// reported on a fresh read.
	pushback []pushedRune
}

type pushedRune struct {
	c       rune
	invalid bool
}

const pushbackCapacityHint = 32

// NewRuneStream wraps r as a lookahead character stream.
func NewRuneStream(r io.Reader) *RuneStream {
	return &RuneStream{
		r:        bufio.NewReader(r),
		pushback: make([]pushedRune, 0, pushbackCapacityHint),
	}
}

// Next consumes and returns the next rune. ok is false at end of
// input or on a read error; end-of-input is reported by the absence
// of a next character, never as an in-band value. invalid reports
// whether the byte sequence read was not valid UTF-8: bufio.Reader
// substitutes such a sequence with unicode.ReplacementChar and
// advances by one byte, rather than returning an error, so that
// substitution is detected here and passed up for the caller to turn
// into a lexical error.
func (s *RuneStream) Next() (c rune, ok bool, invalid bool) {
	if n := len(s.pushback); n > 0 {
		pr := s.pushback[n-1]
		s.pushback = s.pushback[:n-1]
		return pr.c, true, pr.invalid
	}
	r, size, err := s.r.ReadRune()
	if err != nil {
		return 0, false, false
	}
	return r, true, r == unicode.ReplacementChar && size == 1
}

// Peek returns the next rune without consuming it.
func (s *RuneStream) Peek() (c rune, ok bool, invalid bool) {
	c, ok, invalid = s.Next()
	if !ok {
		return 0, false, false
	}
	s.pushback = append(s.pushback, pushedRune{c: c, invalid: invalid})
	return c, true, invalid
}

// PutBack restores c as the next character to be read. Multiple
// consecutive PutBack calls restore characters in reverse order: if
// 'a' then 'b' are put back, the next two Next calls yield 'b' then
// 'a'.
func (s *RuneStream) PutBack(c rune) {
	s.pushback = append(s.pushback, pushedRune{c: c})
}

// PutBackAll restores chars in order, such that the next len(chars)
// calls to Next reproduce chars exactly as given (chars[0] first).
func (s *RuneStream) PutBackAll(chars []rune) {
	for i := len(chars) - 1; i >= 0; i-- {
		s.PutBack(chars[i])
	}
}
