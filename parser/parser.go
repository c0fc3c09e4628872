package parser

import (
	"strconv"
	"strings"

	"github.com/xiam/lisp/ast"
	"github.com/xiam/lisp/lexer"
)

// TokenEOF is returned by the parser once the tokens run out.
var TokenEOF = lexer.NewToken(lexer.TokenEOF, "", 0, 0)

// Parser builds value trees out of a slice of tokens. The grammar is:
//
//	object := NUMBER | STRING | SYMBOL | '(' tree
//	tree   := object tree | ')'
type Parser struct {
	tokens []lexer.Token
	offset int
}

// Result holds the outcome of reading a line.
type Result struct {
	// Value is the first expression of the line.
	Value *ast.Value
	// Empty is true when the line had no tokens at all.
	Empty bool
	// Rest holds the tokens that were left after the first expression.
	Rest []lexer.Token
	// Skipped holds one error for every character the lexer ignored.
	Skipped []error
}

// Extraneous returns true if the line had more than one expression.
func (r *Result) Extraneous() bool {
	return len(r.Rest) > 0
}

// New creates a parser over tokens.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) peek() *lexer.Token {
	if p.offset >= len(p.tokens) {
		return TokenEOF
	}
	return &p.tokens[p.offset]
}

func (p *Parser) next() *lexer.Token {
	tok := p.peek()
	if tok != TokenEOF {
		p.offset++
	}
	return tok
}

// Rest returns the tokens that have not been consumed yet.
func (p *Parser) Rest() []lexer.Token {
	return p.tokens[p.offset:]
}

// Balanced checks that the number of open and close parentheses match.
func Balanced(tokens []lexer.Token) bool {
	depth := 0
	for i := range tokens {
		switch tokens[i].Type() {
		case lexer.TokenOpenExpression:
			depth++
		case lexer.TokenCloseExpression:
			depth--
		}
	}
	return depth == 0
}

// Parse builds the next value from the token stream.
func (p *Parser) Parse() (*ast.Value, error) {
	return p.expectObject()
}

func (p *Parser) expectObject() (*ast.Value, error) {
	tok := p.next()

	switch tok.Type() {
	case lexer.TokenEOF:
		return nil, newError(ErrUnexpectedEOF, tok)

	case lexer.TokenOpenExpression:
		return p.expectTree(true)

	case lexer.TokenCloseExpression:
		return nil, newError(ErrUnexpectedToken, tok)

	case lexer.TokenInteger:
		i64, err := parseInteger(tok.Text())
		if err != nil {
			return nil, newError(ErrInvalidNumber, tok)
		}
		return ast.NewInt(i64), nil

	case lexer.TokenFloat:
		f64, err := strconv.ParseFloat(tok.Text(), 64)
		if err != nil {
			return nil, newError(ErrInvalidNumber, tok)
		}
		return ast.NewFloat(f64), nil

	case lexer.TokenString:
		text := tok.Text()
		return ast.NewString(strings.TrimSuffix(strings.TrimPrefix(text, `"`), `"`)), nil
	}

	return ast.NewSymbol(tok.Text()), nil
}

// parseInteger converts an integer literal the way strtoll does with base 0:
// a leading 0 selects octal and conversion stops at the first digit that is
// not valid in that base, so 09 is 0 and 0129 is 10.
func parseInteger(text string) (int64, error) {
	digits := strings.TrimLeft(text, "+-")
	sign := text[:len(text)-len(digits)]

	if len(digits) > 1 && digits[0] == '0' && digits[1] != 'x' && digits[1] != 'X' {
		end := 1
		for end < len(digits) && digits[end] >= '0' && digits[end] <= '7' {
			end++
		}
		digits = digits[:end]
	}

	return strconv.ParseInt(sign+digits, 0, 64)
}

// expectTree reads the remaining elements of a list. When only one element
// is left it goes straight into the tail slot of the enclosing pair, so
// (a b c) becomes (a . (b . c)). The first level of a list keeps a single
// element wrapped, (f) is a pair and not the symbol f.
func (p *Parser) expectTree(first bool) (*ast.Value, error) {
	switch tok := p.peek(); tok.Type() {
	case lexer.TokenEOF:
		p.next()
		return nil, newError(ErrUnexpectedEOF, tok)
	case lexer.TokenCloseExpression:
		p.next()
		return nil, nil
	}

	head, err := p.expectObject()
	if err != nil {
		return nil, err
	}

	tail, err := p.expectTree(false)
	if err != nil {
		return nil, err
	}

	if tail == nil && !first {
		return head, nil
	}
	return ast.Cons(head, tail), nil
}

// Read tokenizes a line and builds its first expression.
func Read(line string) (*Result, error) {
	lx := lexer.New(line)
	if err := lx.Scan(); err != nil {
		return nil, err
	}

	tokens := lx.Tokens()
	res := &Result{Skipped: lx.Skipped()}

	if len(tokens) == 0 {
		res.Empty = true
		return res, nil
	}

	if !Balanced(tokens) {
		return nil, newError(ErrUnbalanced, nil)
	}

	p := New(tokens)
	value, err := p.Parse()
	if err != nil {
		return nil, err
	}

	res.Value = value
	res.Rest = p.Rest()
	return res, nil
}

// Parse reads every expression in the input. The second return value holds
// one error for every character the lexer ignored.
func Parse(in []byte) ([]*ast.Value, []error, error) {
	lx := lexer.New(string(in))
	if err := lx.Scan(); err != nil {
		return nil, nil, err
	}

	tokens := lx.Tokens()
	if !Balanced(tokens) {
		return nil, nil, newError(ErrUnbalanced, nil)
	}

	values := []*ast.Value{}
	for p := New(tokens); p.peek() != TokenEOF; {
		value, err := p.Parse()
		if err != nil {
			return nil, nil, err
		}
		values = append(values, value)
	}
	return values, lx.Skipped(), nil
}
