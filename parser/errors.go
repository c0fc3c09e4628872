package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/lisp/lexer"
)

var (
	ErrUnbalanced      = errors.New("unbalanced parentheses")
	ErrUnexpectedEOF   = errors.New("unexpected EOF")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrInvalidNumber   = errors.New("invalid number")
)

// Error ties a parser error to the token that caused it.
type Error struct {
	Err error
	Tok *lexer.Token
}

func newError(err error, tok *lexer.Token) *Error {
	return &Error{Err: err, Tok: tok}
}

func (e *Error) Error() string {
	if e.Tok == nil || e.Tok.Is(lexer.TokenEOF) {
		return e.Err.Error()
	}
	line, col := e.Tok.Pos()
	return fmt.Sprintf("%v: %q at %d:%d", e.Err, e.Tok.Text(), line, col)
}

func (e *Error) Unwrap() error {
	return e.Err
}
