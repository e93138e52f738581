package lexer

import (
	"io"
	"strconv"
	"strings"

	"github.com/brightly-salty/scryer-prolog/internal/atom"
	"github.com/brightly-salty/scryer-prolog/internal/charclass"
	"github.com/brightly-salty/scryer-prolog/internal/number"
)

// Lexer converts a character stream into a token stream while
// tracking (line, column): a read-and-dispatch loop over a RuneStream
// that recognizes the ISO Prolog token grammar one token at a time.
type Lexer struct {
	stream *RuneStream
	line   int
	col    int

	doubleQuotes DoubleQuotes
	atoms        *atom.Table
	tracing      bool
}

// NewLexer creates a Lexer reading from r.
func NewLexer(r io.Reader, opts ...Option) *Lexer {
	l := &Lexer{
		stream: NewRuneStream(r),
		line:   1,
		col:    0,
		atoms:  atom.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Lexer) pos() Position {
	return Position{Line: l.line, Column: l.col}
}

// next consumes and returns the next rune, updating line/col. err is
// non-nil, with ok true, when the consumed byte sequence was not
// valid UTF-8: bufio.Reader silently substitutes such a sequence with
// the Unicode replacement character instead of returning a read
// error, so next reports it explicitly as ErrUTF8 at the position of
// the substituted rune.
func (l *Lexer) next() (rune, bool, error) {
	c, ok, invalid := l.stream.Next()
	if !ok {
		return 0, false, nil
	}
	if c == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	if invalid {
		return c, true, ErrUTF8{Pos: l.pos()}
	}
	return c, true, nil
}

func (l *Lexer) peek() (rune, bool) {
	c, ok, _ := l.stream.Peek()
	return c, ok
}

// putBack restores c, decrementing column (or line, with column reset
// to zero, for a linefeed). Repeated put-backs across a line boundary
// cannot reconstruct the exact prior column.
func (l *Lexer) putBack(c rune) {
	l.stream.PutBack(c)
	if c == '\n' {
		l.line--
		l.col = 0
	} else if l.col > 0 {
		l.col--
	}
}

// putBackAll restores chars so that the next len(chars) calls to
// next() reproduce chars in the same order.
func (l *Lexer) putBackAll(chars []rune) {
	for i := len(chars) - 1; i >= 0; i-- {
		l.putBack(chars[i])
	}
}

// Eof reports whether the stream is exhausted once any pending layout
// has been skipped. Running out of input while skipping layout is not
// itself an error.
func (l *Lexer) Eof() (bool, error) {
	if _, err := l.scanForLayout(); err != nil {
		return false, err
	}
	_, ok := l.peek()
	return !ok, nil
}

// scanForLayout consumes a run of insertable layout: whitespace,
// '%'-to-end-of-line comments, and bracketed /* */ comments. It
// reports whether any layout was consumed, the single bit of state
// needed to distinguish Open from OpenCT.
func (l *Lexer) scanForLayout() (bool, error) {
	hadLayout := false
	for {
		c, ok := l.peek()
		if !ok {
			return hadLayout, nil
		}
		switch {
		case charclass.IsLayout(c):
			l.next()
			hadLayout = true
		case c == '%':
			l.next()
			for {
				c2, ok2 := l.peek()
				if !ok2 || c2 == '\n' {
					break
				}
				l.next()
			}
			hadLayout = true
		case c == '/':
			l.next()
			c2, ok2 := l.peek()
			if ok2 && c2 == '*' {
				l.next()
				if err := l.skipBracketedComment(); err != nil {
					return hadLayout, err
				}
				hadLayout = true
			} else {
				l.putBack('/')
				return hadLayout, nil
			}
		default:
			return hadLayout, nil
		}
	}
}

// skipBracketedComment consumes a /* ... */ comment whose opening
// "/*" has already been consumed. Bracketed comments do not nest.
func (l *Lexer) skipBracketedComment() error {
	for {
		c, ok, err := l.next()
		if err != nil {
			return err
		}
		if !ok {
			return ErrUnexpectedEOF{}
		}
		if c == '*' {
			if nc, ok2 := l.peek(); ok2 && nc == '/' {
				l.next()
				if fc, ok3 := l.peek(); ok3 && !charclass.IsPrologChar(fc) {
					return ErrNonPrologChar{Pos: l.pos()}
				}
				return nil
			}
		}
	}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() (Token, error) {
	hadLayout, err := l.scanForLayout()
	if err != nil {
		return Token{}, err
	}
	pos := l.pos()

	c, ok := l.peek()
	if !ok {
		return Token{Type: TokEOF, Pos: pos}, nil
	}

	switch {
	case charclass.IsCapital(c) || charclass.IsVariableIndicator(c):
		return l.lexVariable(pos)
	case c == ',':
		l.next()
		return Token{Type: TokComma, Pos: pos}, nil
	case c == '(':
		l.next()
		if hadLayout {
			return Token{Type: TokOpen, Pos: pos}, nil
		}
		return Token{Type: TokOpenCT, Pos: pos}, nil
	case c == ')':
		l.next()
		return Token{Type: TokClose, Pos: pos}, nil
	case c == '[':
		l.next()
		return Token{Type: TokOpenList, Pos: pos}, nil
	case c == ']':
		l.next()
		return Token{Type: TokCloseList, Pos: pos}, nil
	case c == '{':
		l.next()
		return Token{Type: TokOpenCurly, Pos: pos}, nil
	case c == '}':
		l.next()
		return Token{Type: TokCloseCurly, Pos: pos}, nil
	case c == '|':
		l.next()
		return Token{Type: TokHeadTailSeparator, Pos: pos}, nil
	case c == '.':
		return l.lexDot(pos)
	case charclass.IsDecimal(c):
		return l.lexNumber(pos)
	case c == '"':
		return l.lexDoubleQuoted(pos)
	case c == '`':
		return l.lexBackQuoted(pos)
	case c == '\'':
		return l.lexSingleQuoted(pos)
	case c == '!':
		l.next()
		return l.atomToken(pos, "!"), nil
	case c == ';':
		l.next()
		return l.atomToken(pos, ";"), nil
	case charclass.IsSmall(c):
		return l.lexAlphaAtom(pos)
	case charclass.IsGraphicToken(c):
		return l.lexGraphicAtom(pos)
	default:
		_, _, err := l.next()
		if err != nil {
			return Token{}, err
		}
		return Token{}, ErrUnexpectedChar{Char: c, Pos: pos}
	}
}

// AllTokens drains the lexer, accumulating every token and every
// error encountered rather than stopping at the first error, so a
// single pass over a file reports every lexical problem in it.
func (l *Lexer) AllTokens() ([]Token, []error) {
	var toks []Token
	var errs []error
	for {
		tok, err := l.NextToken()
		if err != nil {
			errs = append(errs, err)
			_, ok, nextErr := l.next()
			if nextErr != nil {
				errs = append(errs, nextErr)
			}
			if !ok {
				break
			}
			continue
		}
		toks = append(toks, tok)
		if tok.Type == TokEOF {
			break
		}
	}
	return toks, errs
}

func (l *Lexer) atomToken(pos Position, name string) Token {
	a := l.atoms.Intern(name)
	return Token{Type: TokConstant, Constant: Constant{Kind: ConstAtom, Atom: a}, Pos: pos}
}

// lexDot handles '.': it is End iff followed by layout, '%', or EOF;
// otherwise the '.' is put back and relexed as the start of a graphic
// atom.
func (l *Lexer) lexDot(pos Position) (Token, error) {
	l.next()
	nc, ok := l.peek()
	if !ok || charclass.IsLayout(nc) || nc == '%' {
		return Token{Type: TokEnd, Pos: pos}, nil
	}
	l.putBack('.')
	return l.lexGraphicAtom(pos)
}

// lexVariable reads a leading capital or underscore followed by the
// maximal run of alphanumeric characters.
func (l *Lexer) lexVariable(pos Position) (Token, error) {
	var sb strings.Builder
	c0, _, err := l.next()
	if err != nil {
		return Token{}, err
	}
	sb.WriteRune(c0)
	for {
		c, ok := l.peek()
		if !ok || !charclass.IsAlphaNumeric(c) {
			break
		}
		l.next()
		sb.WriteRune(c)
	}
	return Token{Type: TokVar, VarName: sb.String(), Pos: pos}, nil
}

// lexAlphaAtom reads a small-letter-led name, maximally extended over
// alphanumerics.
func (l *Lexer) lexAlphaAtom(pos Position) (Token, error) {
	var sb strings.Builder
	for {
		c, ok := l.peek()
		if !ok || !charclass.IsAlphaNumeric(c) {
			break
		}
		l.next()
		sb.WriteRune(c)
	}
	return l.atomToken(pos, sb.String()), nil
}

// lexGraphicAtom reads a graphic-led name, maximally extended over
// graphic-token characters (the graphic class plus backslash).
func (l *Lexer) lexGraphicAtom(pos Position) (Token, error) {
	var sb strings.Builder
	for {
		c, ok := l.peek()
		if !ok || !charclass.IsGraphicToken(c) {
			break
		}
		l.next()
		sb.WriteRune(c)
	}
	return l.atomToken(pos, sb.String()), nil
}

// lexSingleQuoted reads a single-quoted atom or one-character literal:
// a decode to exactly one scalar yields Char, the literal "[]" yields
// EmptyList, and anything else (including the empty string) yields
// Atom.
func (l *Lexer) lexSingleQuoted(pos Position) (Token, error) {
	l.next() // opening '
	text, err := l.readQuotedText('\'')
	if err != nil {
		return Token{}, err
	}
	runes := []rune(text)
	switch {
	case text == "[]":
		return Token{Type: TokConstant, Constant: Constant{Kind: ConstEmptyList}, Pos: pos}, nil
	case len(runes) == 1:
		return Token{Type: TokConstant, Constant: Constant{Kind: ConstChar, Char: runes[0]}, Pos: pos}, nil
	default:
		return l.atomToken(pos, text), nil
	}
}

// lexDoubleQuoted reads a double-quoted literal, decoding into an Atom
// or raw text per the double_quotes configuration flag; materializing
// a code list or character list from the raw text is the parser's
// job.
func (l *Lexer) lexDoubleQuoted(pos Position) (Token, error) {
	l.next() // opening "
	text, err := l.readQuotedText('"')
	if err != nil {
		return Token{}, err
	}
	if l.doubleQuotes == DoubleQuotesAtom {
		return l.atomToken(pos, text), nil
	}
	return Token{Type: TokConstant, Constant: Constant{Kind: ConstString, Text: text}, Pos: pos}, nil
}

// lexBackQuoted lexes a back-quoted literal only to reserve the
// syntax: it is always rejected with ErrBackQuotedString.
func (l *Lexer) lexBackQuoted(pos Position) (Token, error) {
	l.next() // opening `
	if _, err := l.readQuotedText('`'); err != nil {
		return Token{}, err
	}
	return Token{}, ErrBackQuotedString{Pos: pos}
}

// readQuotedText decodes the body of a quoted item up to its closing
// quote, handling the shared escape grammar: line continuation,
// control-character escapes, octal/hex escapes, self-escapes, and
// doubled-quote literals.
func (l *Lexer) readQuotedText(quote rune) (string, error) {
	var sb strings.Builder
	for {
		c, ok, err := l.next()
		if err != nil {
			return "", err
		}
		if !ok {
			return "", ErrMissingQuote{Pos: l.pos()}
		}
		if c == quote {
			if nc, ok2 := l.peek(); ok2 && nc == quote {
				l.next()
				sb.WriteRune(quote)
				continue
			}
			return sb.String(), nil
		}
		if c == '\\' {
			r, appended, err := l.decodeEscape()
			if err != nil {
				return "", err
			}
			if appended {
				sb.WriteRune(r)
			}
			continue
		}
		sb.WriteRune(c)
	}
}

// decodeEscape decodes one escape item immediately following a
// backslash already consumed by the caller.
func (l *Lexer) decodeEscape() (rune, bool, error) {
	c, ok, err := l.next()
	if err != nil {
		return 0, false, err
	}
	if !ok {
		return 0, false, ErrUnexpectedEOF{}
	}
	switch {
	case c == '\n':
		return 0, false, nil // line continuation: contributes no character
	case c == 'a':
		return '\a', true, nil
	case c == 'b':
		return '\b', true, nil
	case c == 'f':
		return '\f', true, nil
	case c == 'n':
		return '\n', true, nil
	case c == 'r':
		return '\r', true, nil
	case c == 't':
		return '\t', true, nil
	case c == 'v':
		return '\v', true, nil
	case c == '\\', c == '\'', c == '"', c == '`':
		return c, true, nil
	case charclass.IsOctal(c):
		return l.finishOctalEscape(c)
	case c == 'x':
		return l.finishHexEscape()
	default:
		l.putBack(c)
		l.putBack('\\')
		return 0, false, ErrUnexpectedChar{Char: c, Pos: l.pos()}
	}
}

// finishOctalEscape decodes \<octal+>\, terminated by a closing
// backslash, given the first octal digit already consumed.
func (l *Lexer) finishOctalEscape(first rune) (rune, bool, error) {
	digits := []rune{first}
	for {
		c, ok := l.peek()
		if !ok || !charclass.IsOctal(c) {
			break
		}
		l.next()
		digits = append(digits, c)
	}
	term, ok, err := l.next()
	if err != nil {
		return 0, false, err
	}
	if !ok || term != '\\' {
		if ok {
			l.putBack(term)
		}
		l.putBackAll(digits)
		l.putBack('\\')
		return 0, false, ErrUnexpectedChar{Char: first, Pos: l.pos()}
	}
	v, err := strconv.ParseInt(string(digits), 8, 32)
	if err != nil {
		return 0, false, ErrParseBigInt{Pos: l.pos()}
	}
	return rune(v), true, nil
}

// finishHexEscape decodes \x<hex+>\, terminated by a closing
// backslash, given the leading 'x' already consumed.
func (l *Lexer) finishHexEscape() (rune, bool, error) {
	var digits []rune
	for {
		c, ok := l.peek()
		if !ok || !charclass.IsHexDigit(c) {
			break
		}
		l.next()
		digits = append(digits, c)
	}
	if len(digits) == 0 {
		l.putBack('x')
		l.putBack('\\')
		return 0, false, ErrUnexpectedChar{Char: 'x', Pos: l.pos()}
	}
	term, ok, err := l.next()
	if err != nil {
		return 0, false, err
	}
	if !ok || term != '\\' {
		if ok {
			l.putBack(term)
		}
		l.putBackAll(digits)
		l.putBack('x')
		l.putBack('\\')
		return 0, false, ErrUnexpectedChar{Char: digits[len(digits)-1], Pos: l.pos()}
	}
	v, err := strconv.ParseInt(string(digits), 16, 32)
	if err != nil {
		return 0, false, ErrParseBigInt{Pos: l.pos()}
	}
	return rune(v), true, nil
}

// lexNumber implements the number grammar: multi-base integers (only
// when the leading digit sequence is exactly "0"), 0'c character
// codes, and floats with exponent backtracking.
func (l *Lexer) lexNumber(pos Position) (Token, error) {
	first, _, err := l.next()
	if err != nil {
		return Token{}, err
	}
	if first == '0' {
		if nc, ok := l.peek(); ok {
			switch nc {
			case 'x':
				l.next()
				return l.lexRadixDigits(pos, 16, charclass.IsHexDigit)
			case 'o':
				l.next()
				return l.lexRadixDigits(pos, 8, charclass.IsOctal)
			case 'b':
				l.next()
				return l.lexRadixDigits(pos, 2, charclass.IsBinary)
			case '\'':
				l.next()
				return l.lexCharCode(pos)
			}
		}
	}

	digits := []rune{first}
	for {
		c, ok := l.peek()
		if !ok || !charclass.IsDecimal(c) {
			break
		}
		l.next()
		digits = append(digits, c)
	}
	return l.finishDecimalOrFloat(pos, digits)
}

func (l *Lexer) lexRadixDigits(pos Position, base int, pred func(rune) bool) (Token, error) {
	var digits []rune
	for {
		c, ok := l.peek()
		if !ok || !pred(c) {
			break
		}
		l.next()
		digits = append(digits, c)
	}
	if len(digits) == 0 {
		return Token{}, ErrParseBigInt{Pos: pos}
	}
	n, ok := number.ParseInt(string(digits), base)
	if !ok {
		return Token{}, ErrParseBigInt{Pos: pos}
	}
	return l.constTokenFromNumber(pos, n), nil
}

// lexCharCode decodes the 0'c character-code form, given "0'" already
// consumed.
func (l *Lexer) lexCharCode(pos Position) (Token, error) {
	c, ok, err := l.next()
	if err != nil {
		return Token{}, err
	}
	if !ok {
		return Token{}, ErrInvalidSingleQuotedCharacter{Text: "0'"}
	}
	if c == '\\' {
		nc, ok2 := l.peek()
		if ok2 && nc == '\n' {
			// 0'\ followed by linefeed is not a valid escape here;
			// back off to Fixnum(0), restoring the quote and
			// backslash for relexing.
			l.putBackAll([]rune{'\'', '\\'})
			return l.constTokenFromNumber(pos, number.Fixnum(0)), nil
		}
		r, _, err := l.decodeEscape()
		if err != nil {
			return Token{}, err
		}
		return l.constTokenFromNumber(pos, number.Fixnum(int64(r))), nil
	}
	if c == '\'' {
		if nc, ok2 := l.peek(); ok2 && nc == '\'' {
			l.next()
		}
		return l.constTokenFromNumber(pos, number.Fixnum(int64('\''))), nil
	}
	return l.constTokenFromNumber(pos, number.Fixnum(int64(c))), nil
}

// finishDecimalOrFloat implements the radix-or-frac branch once a
// plain leading decimal digit+ has been read: a '.' followed by a
// digit commits to a float (with possible exponent backtracking); a
// '.' not followed by a digit is the clause-terminating dot and is put
// back for the next token to see.
func (l *Lexer) finishDecimalOrFloat(pos Position, digits []rune) (Token, error) {
	if nc, ok := l.peek(); ok && nc == '.' {
		l.next()
		if nc2, ok2 := l.peek(); ok2 && charclass.IsDecimal(nc2) {
			var frac []rune
			for {
				c, ok3 := l.peek()
				if !ok3 || !charclass.IsDecimal(c) {
					break
				}
				l.next()
				frac = append(frac, c)
			}
			text := string(digits) + "." + string(frac)
			text = l.tryConsumeExponent(text)
			f, ok := number.ParseFloat(text)
			if !ok {
				return Token{}, ErrParseBigInt{Pos: pos}
			}
			return l.constTokenFromNumber(pos, f), nil
		}
		l.putBack('.')
	}

	n, ok := number.ParseInt(string(digits), 10)
	if !ok {
		return Token{}, ErrParseBigInt{Pos: pos}
	}
	return l.constTokenFromNumber(pos, n), nil
}

// tryConsumeExponent appends an exponent suffix to text if one is
// present and well-formed; otherwise it restores every character it
// tentatively consumed and returns text unchanged.
func (l *Lexer) tryConsumeExponent(text string) string {
	c, ok := l.peek()
	if !ok || !charclass.IsExponentIndicator(c) {
		return text
	}
	l.next()
	consumed := []rune{c}

	if sc, ok2 := l.peek(); ok2 && charclass.IsSign(sc) {
		l.next()
		consumed = append(consumed, sc)
	}

	var expDigits []rune
	for {
		dc, ok3 := l.peek()
		if !ok3 || !charclass.IsDecimal(dc) {
			break
		}
		l.next()
		expDigits = append(expDigits, dc)
	}

	if len(expDigits) == 0 {
		l.putBackAll(consumed)
		return text
	}
	consumed = append(consumed, expDigits...)
	return text + string(consumed)
}

func (l *Lexer) constTokenFromNumber(pos Position, n number.Number) Token {
	var kind ConstantKind
	switch n.(type) {
	case number.Fixnum:
		kind = ConstFixnum
	case number.Integer:
		kind = ConstInteger
	case number.Rational:
		kind = ConstRational
	case number.Float:
		kind = ConstFloat
	}
	return Token{Type: TokConstant, Constant: Constant{Kind: kind, Number: n}, Pos: pos}
}
