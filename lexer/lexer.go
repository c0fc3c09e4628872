package lexer

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrUnterminatedString is returned when a string literal is missing its
// closing quote.
var ErrUnterminatedString = errors.New("unterminated string")

const eof = rune(-1)

type lexState func(*Lexer) lexState

var (
	isWordStart  = isTokenType(TokenWord)
	isDigit      = isTokenType(TokenInteger)
	isSign       = isTokenType(TokenSign)
	isRelational = isTokenType(TokenRelational)
)

// CharacterError describes a character the lexer did not recognize and
// skipped.
type CharacterError struct {
	Char rune
	Line int
	Col  int
}

func (e *CharacterError) Error() string {
	return fmt.Sprintf("unknown character '%c' ignored", e.Char)
}

// New initializes a Lexer for the given input
func New(in string) *Lexer {
	return &Lexer{
		in:     []rune(in),
		tokens: []Token{},
		buf:    []rune{},
	}
}

// Lexer represents a lexical analyzer
type Lexer struct {
	in     []rune
	offset int

	tokens  []Token
	skipped []error
	lastErr error

	buf []rune

	start int
	col   int
	lines int
}

// Tokens returns the tokens detected by Scan.
func (lx *Lexer) Tokens() []Token {
	return lx.tokens
}

// Skipped returns one *CharacterError for every character Scan ignored.
func (lx *Lexer) Skipped() []error {
	return lx.skipped
}

// Scan reads the whole input. Unknown characters are skipped and recorded,
// only an unterminated string stops the scan with an error.
func (lx *Lexer) Scan() error {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}
	return lx.lastErr
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tokens = append(lx.tokens, Token{
		tt:     tt,
		lexeme: string(lx.buf),

		col:  lx.start + 1,
		line: lx.lines + 1,
	})

	lx.start = lx.col
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) peekAt(n int) rune {
	if lx.offset+n >= len(lx.in) {
		return eof
	}
	return lx.in[lx.offset+n]
}

func (lx *Lexer) peek() rune {
	return lx.peekAt(0)
}

func (lx *Lexer) advance() rune {
	r := lx.peek()
	if r == eof {
		return r
	}
	lx.offset++
	if r == '\n' {
		lx.lines++
		lx.col = 0
	} else {
		lx.col++
	}
	return r
}

func (lx *Lexer) next() rune {
	r := lx.advance()
	if r != eof {
		lx.buf = append(lx.buf, r)
	}
	return r
}

func (lx *Lexer) collect(accept func(rune) bool) {
	for accept(lx.peek()) {
		lx.next()
	}
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || !unicode.IsPrint(r)
}

func lexDefaultState(lx *Lexer) lexState {
	for p := lx.peek(); p != eof && isSeparator(p); p = lx.peek() {
		lx.advance()
	}
	lx.start = lx.col

	r := lx.peek()
	switch {
	case r == eof:
		return nil

	case isStructural(r) != TokenInvalid:
		lx.next()
		return lexEmit(isStructural(r))

	case isWordStart(r):
		return lexWord

	case r == '#' && isLetter(lx.peekAt(1)):
		return lexHashWord

	case isDigit(r), isSign(r) && isDigit(lx.peekAt(1)):
		return lexNumber

	case isSign(r):
		lx.next()
		return lexEmit(TokenSign)

	case isRelational(r):
		return lexRelational

	case r == '"':
		return lexString

	default:
		return lexUnknown
	}
}

func isStructural(r rune) TokenType {
	for _, tt := range structuralTokens {
		if isTokenType(tt)(r) {
			return tt
		}
	}
	return TokenInvalid
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexWord(lx *Lexer) lexState {
	lx.collect(isWordBody)
	return lexEmit(TokenWord)
}

func lexHashWord(lx *Lexer) lexState {
	lx.next()
	lx.collect(isWordBody)
	return lexEmit(TokenHashWord)
}

func lexNumber(lx *Lexer) lexState {
	if isSign(lx.peek()) {
		lx.next()
	}

	if lx.peek() == '0' && (lx.peekAt(1) == 'x' || lx.peekAt(1) == 'X') && isHexDigit(lx.peekAt(2)) {
		lx.next()
		lx.next()
		lx.collect(isHexDigit)
		return lexEmit(TokenInteger)
	}

	lx.collect(isDigit)
	if lx.peek() == '.' && isDigit(lx.peekAt(1)) {
		lx.next()
		lx.collect(isDigit)
		return lexEmit(TokenFloat)
	}

	return lexEmit(TokenInteger)
}

func lexRelational(lx *Lexer) lexState {
	lx.next()
	if lx.peek() == '=' {
		lx.next()
	}
	return lexEmit(TokenRelational)
}

func lexString(lx *Lexer) lexState {
	line, col := lx.lines+1, lx.start+1
	lx.next()

	for {
		r := lx.peek()
		switch {
		case r == eof || r == '\n':
			return lexStateError(fmt.Errorf("%w at %d:%d", ErrUnterminatedString, line, col))
		case r == '"':
			lx.next()
			return lexEmit(TokenString)
		case r == '\'':
			lx.next()
			if p := lx.peek(); p != eof && p != '\n' {
				lx.next()
			}
		default:
			lx.next()
		}
	}
}

func lexUnknown(lx *Lexer) lexState {
	line, col := lx.lines+1, lx.col+1
	r := lx.advance()
	lx.skipped = append(lx.skipped, &CharacterError{Char: r, Line: line, Col: col})
	return lexDefaultState
}

func lexStateError(err error) lexState {
	return func(lx *Lexer) lexState {
		lx.lastErr = err
		return nil
	}
}

// Tokenize takes an array of bytes and returns all the tokens within it,
// or an error if the input can't be tokenized. Skipped characters are not
// reported, use a Lexer to inspect them.
func Tokenize(in []byte) ([]Token, error) {
	lx := New(string(in))
	if err := lx.Scan(); err != nil {
		return nil, err
	}
	return lx.Tokens(), nil
}
