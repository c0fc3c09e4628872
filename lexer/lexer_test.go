package lexer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner(t *testing.T) {
	testCases := []string{
		``,
		`1`,
		`-1 +2 0x1F`,
		`+ 1 1 1 1`,
		`[ [ [] ] [] []]`,
		`(+ 1 2 3)`,
		`(- 1 2 3)`,
		`(define fact (lambda (n) (if (<= n 1) 1 (* n (fact (- n 1))))))`,
		`(setq foo (+ 3 3))`,
		`(car (quote (1 2 3)))`,
		`("hello world!" "brave new " world)`,
		`{:a 1 :b 2}`,
		`(/ 10 #t #f)`,
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i]))
		t.Logf("tokens: %v", tokens)

		assert.NotNil(t, tokens)
		assert.NoError(t, err)
	}
}

func TestTokenize(t *testing.T) {
	testCases := []struct {
		In  string
		Out []TokenType
	}{
		{
			`1`,
			[]TokenType{TokenInteger},
		},
		{
			`(+ 1 2)`,
			[]TokenType{
				TokenOpenExpression,
				TokenSign,
				TokenInteger,
				TokenInteger,
				TokenCloseExpression,
			},
		},
		{
			`-1.23`,
			[]TokenType{TokenFloat},
		},
		{
			`- 1`,
			[]TokenType{TokenSign, TokenInteger},
		},
		{
			`()[]{}:*/`,
			[]TokenType{
				TokenOpenExpression,
				TokenCloseExpression,
				TokenOpenList,
				TokenCloseList,
				TokenOpenMap,
				TokenCloseMap,
				TokenColon,
				TokenStar,
				TokenSlash,
			},
		},
		{
			`< <= > >=`,
			[]TokenType{
				TokenRelational,
				TokenRelational,
				TokenRelational,
				TokenRelational,
			},
		},
		{
			`#t #nil_2 foo_Bar9 _x`,
			[]TokenType{
				TokenHashWord,
				TokenHashWord,
				TokenWord,
				TokenWord,
			},
		},
		{
			`0x1f 0xZ`,
			[]TokenType{
				TokenInteger,
				TokenInteger,
				TokenWord,
			},
		},
		{
			`"a b" c`,
			[]TokenType{TokenString, TokenWord},
		},
		{
			"(+\n\t1\n\t2)",
			[]TokenType{
				TokenOpenExpression,
				TokenSign,
				TokenInteger,
				TokenInteger,
				TokenCloseExpression,
			},
		},
	}

	getTokenTypes := func(tokens []Token) []TokenType {
		tt := make([]TokenType, 0, len(tokens))
		for i := range tokens {
			tt = append(tt, tokens[i].tt)
		}
		return tt
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i].In))

		assert.NotNil(t, tokens)
		assert.NoError(t, err)

		assert.Equal(t, testCases[i].Out, getTokenTypes(tokens), "input %q", testCases[i].In)
	}
}

func TestLexemes(t *testing.T) {
	testCases := []struct {
		In  string
		Out []string
	}{
		{`(+ -12 x)`, []string{"(", "+", "-12", "x", ")"}},
		{`0x1F+1`, []string{"0x1F", "+1"}},
		{`>=<`, []string{">=", "<"}},
		{`#t#f`, []string{"#t", "#f"}},
		{`"say 'hi' ok"`, []string{`"say 'hi' ok"`}},
		{`"it'"s"`, []string{`"it'"s"`}},
		{`a1b2-c`, []string{"a1b2", "-", "c"}},
		{`7.5.1`, []string{"7.5", "1"}},
	}

	getLexemes := func(tokens []Token) []string {
		out := make([]string, 0, len(tokens))
		for i := range tokens {
			out = append(out, tokens[i].Text())
		}
		return out
	}

	for i := range testCases {
		lx := New(testCases[i].In)
		require.NoError(t, lx.Scan())
		assert.Equal(t, testCases[i].Out, getLexemes(lx.Tokens()), "input %q", testCases[i].In)
	}
}

func TestSkippedCharacters(t *testing.T) {
	lx := New("(+ 1 ? 2 =)")
	assert.NoError(t, lx.Scan())

	assert.Len(t, lx.Tokens(), 5)

	skipped := lx.Skipped()
	require.Len(t, skipped, 2)

	var charErr *CharacterError
	require.True(t, errors.As(skipped[0], &charErr))
	assert.Equal(t, '?', charErr.Char)
	assert.Equal(t, 1, charErr.Line)
	assert.Equal(t, 6, charErr.Col)
	assert.Equal(t, "unknown character '?' ignored", skipped[0].Error())

	assert.Equal(t, "unknown character '=' ignored", skipped[1].Error())
}

func TestUnterminatedString(t *testing.T) {
	testCases := []string{
		`"abc`,
		`(print "abc)`,
		"\"abc\n\"",
		`"abc'`,
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i]))
		assert.Nil(t, tokens)
		assert.True(t, errors.Is(err, ErrUnterminatedString), "input %q", testCases[i])
	}
}

func TestColumnAndLines(t *testing.T) {
	testCases := []struct {
		In  string
		Pos [][2]int
	}{
		{
			"",
			[][2]int{},
		},
		{
			"1",
			[][2]int{{1, 1}},
		},
		{
			"\n\n\nABCDF efgh\n",
			[][2]int{{4, 1}, {4, 7}},
		},
		{
			"1\n\n\t\t23456 (x)",
			[][2]int{{1, 1}, {3, 3}, {3, 9}, {3, 10}, {3, 11}},
		},
	}

	getTokenPositions := func(tokens []Token) [][2]int {
		ret := make([][2]int, 0, len(tokens))
		for i := range tokens {
			line, col := tokens[i].Pos()
			ret = append(ret, [2]int{line, col})
		}
		return ret
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i].In))

		assert.NotNil(t, tokens)
		assert.NoError(t, err)

		assert.Equal(t, testCases[i].Pos, getTokenPositions(tokens))
	}
}
