package lexer

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to test the lexer.
func testLexer(t *testing.T, input string, expectedTokens []Token) {
	t.Helper()

	tokens, err := Tokenize(input)
	require.NoError(t, err, "tokenize %q", input)
	require.Len(t, tokens, len(expectedTokens), "token count mismatch: %v", tokens)

	for i, expectedToken := range expectedTokens {
		token := tokens[i]
		assert.Equal(t, expectedToken.Type, token.Type, "tests[%d] - wrong type (%s)", i, token)
		assert.Equal(t, expectedToken.Value, token.Value, "tests[%d] - wrong value (%s)", i, token)
		if expectedToken.Line != 0 {
			assert.Equal(t, expectedToken.Line, token.Line, "tests[%d] - wrong line (%s)", i, token)
		}
		if expectedToken.Type == TokNumber {
			assert.Equal(t, expectedToken.Num, token.Num, "tests[%d] - wrong number (%s)", i, token)
		}
	}
}

func TestTokenTypeString(t *testing.T) {
	if len(tokenTypeStrings) != int(FinalToken) {
		t.Fatalf("Expected %d token types in tokenTypeStrings, got %d", FinalToken, len(tokenTypeStrings))
	}
}

func TestLexerBasicExpression(t *testing.T) {
	input := "1 + 2 * 3"
	expectedTokens := []Token{
		{Type: TokNumber, Value: "1", Num: 1, Line: 1},
		{Type: TokPlus, Value: "+", Line: 1},
		{Type: TokNumber, Value: "2", Num: 2, Line: 1},
		{Type: TokStar, Value: "*", Line: 1},
		{Type: TokNumber, Value: "3", Num: 3, Line: 1},
		{Type: TokEOF, Value: "", Line: 1},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerWhitespaceAndNewlines(t *testing.T) {
	input := "10\n+\t20 "
	expectedTokens := []Token{
		{Type: TokNumber, Value: "10", Num: 10, Line: 1},
		{Type: TokPlus, Value: "+", Line: 2},
		{Type: TokNumber, Value: "20", Num: 20, Line: 2},
		{Type: TokEOF, Value: "", Line: 2},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerAssignment(t *testing.T) {
	input := "x = 10\ny = x + 5"
	expectedTokens := []Token{
		{Type: TokIdentifier, Value: "x", Line: 1},
		{Type: TokAssign, Value: "=", Line: 1},
		{Type: TokNumber, Value: "10", Num: 10, Line: 1},
		{Type: TokIdentifier, Value: "y", Line: 2},
		{Type: TokAssign, Value: "=", Line: 2},
		{Type: TokIdentifier, Value: "x", Line: 2},
		{Type: TokPlus, Value: "+", Line: 2},
		{Type: TokNumber, Value: "5", Num: 5, Line: 2},
		{Type: TokEOF, Value: "", Line: 2},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerOperators(t *testing.T) {
	input := "+ - * / = == != > < >= <="
	expectedTokens := []Token{
		{Type: TokPlus, Value: "+"},
		{Type: TokMinus, Value: "-"},
		{Type: TokStar, Value: "*"},
		{Type: TokSlash, Value: "/"},
		{Type: TokAssign, Value: "="},
		{Type: TokEq, Value: "=="},
		{Type: TokNotEq, Value: "!="},
		{Type: TokGt, Value: ">"},
		{Type: TokLt, Value: "<"},
		{Type: TokGtEq, Value: ">="},
		{Type: TokLtEq, Value: "<="},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerMaximalMunch(t *testing.T) {
	// No whitespace: the two-character operators must win.
	input := "a>=b<=c==d!=e=f>g<h"
	expectedTokens := []Token{
		{Type: TokIdentifier, Value: "a"},
		{Type: TokGtEq, Value: ">="},
		{Type: TokIdentifier, Value: "b"},
		{Type: TokLtEq, Value: "<="},
		{Type: TokIdentifier, Value: "c"},
		{Type: TokEq, Value: "=="},
		{Type: TokIdentifier, Value: "d"},
		{Type: TokNotEq, Value: "!="},
		{Type: TokIdentifier, Value: "e"},
		{Type: TokAssign, Value: "="},
		{Type: TokIdentifier, Value: "f"},
		{Type: TokGt, Value: ">"},
		{Type: TokIdentifier, Value: "g"},
		{Type: TokLt, Value: "<"},
		{Type: TokIdentifier, Value: "h"},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerTripleEquals(t *testing.T) {
	testLexer(t, "===", []Token{
		{Type: TokEq, Value: "=="},
		{Type: TokAssign, Value: "="},
		{Type: TokEOF, Value: ""},
	})
}

func TestLexerIdentifiers(t *testing.T) {
	input := "_foo bar_2 X9y __"
	expectedTokens := []Token{
		{Type: TokIdentifier, Value: "_foo"},
		{Type: TokIdentifier, Value: "bar_2"},
		{Type: TokIdentifier, Value: "X9y"},
		{Type: TokIdentifier, Value: "__"},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerNumberThenIdentifier(t *testing.T) {
	testLexer(t, "12abc", []Token{
		{Type: TokNumber, Value: "12", Num: 12},
		{Type: TokIdentifier, Value: "abc"},
		{Type: TokEOF, Value: ""},
	})
}

func TestLexerSignIsOperator(t *testing.T) {
	testLexer(t, "-5", []Token{
		{Type: TokMinus, Value: "-"},
		{Type: TokNumber, Value: "5", Num: 5},
		{Type: TokEOF, Value: ""},
	})
}

func TestLexerNumbers(t *testing.T) {
	for _, n := range []int64{0, 1, 7, 42, 1000, 123456789, 9223372036854775807} {
		input := strconv.FormatInt(n, 10)
		t.Run(input, func(t *testing.T) {
			testLexer(t, input, []Token{
				{Type: TokNumber, Value: input, Num: n, Line: 1},
				{Type: TokEOF, Value: "", Line: 1},
			})
		})
	}
}

func TestLexerLeadingZeros(t *testing.T) {
	testLexer(t, "007", []Token{
		{Type: TokNumber, Value: "007", Num: 7},
		{Type: TokEOF, Value: ""},
	})
}

func TestLexerEmpty(t *testing.T) {
	for _, input := range []string{"", " ", "\n\n", "\t\r\n "} {
		tokens, err := Tokenize(input)
		require.NoError(t, err)
		require.Len(t, tokens, 1)
		assert.Equal(t, TokEOF, tokens[0].Type)
	}
}

func TestLexerWhitespaceInvariance(t *testing.T) {
	compact, err := Tokenize("a=1+b*2>=c")
	require.NoError(t, err)
	spaced, err := Tokenize("\n a \t=\r\n1 +\n\nb * 2\n>= c \n")
	require.NoError(t, err)

	require.Len(t, spaced, len(compact))
	prevLine := 0
	for i := range compact {
		assert.Equal(t, compact[i].Type, spaced[i].Type, "tokens[%d]", i)
		assert.Equal(t, compact[i].Value, spaced[i].Value, "tokens[%d]", i)
		assert.Equal(t, compact[i].Num, spaced[i].Num, "tokens[%d]", i)
		assert.Equal(t, 1, compact[i].Line, "tokens[%d]", i)
		assert.GreaterOrEqual(t, spaced[i].Line, prevLine, "lines must not decrease")
		prevLine = spaced[i].Line
	}
	assert.Equal(t, 2, spaced[0].Line)
	assert.Equal(t, 6, spaced[len(spaced)-2].Line)
	assert.Equal(t, 7, spaced[len(spaced)-1].Line)
}

type errorCase struct {
	name    string
	input   string
	kind    error
	char    rune
	literal string
	line    int
}

func TestLexerErrors(t *testing.T) {
	tests := []errorCase{
		{name: "lone bang", input: "a ! b", kind: ErrUnexpectedChar, char: '!', line: 1},
		{name: "bang at end", input: "a !", kind: ErrUnexpectedChar, char: '!', line: 1},
		{name: "bang before newline", input: "x = 1\n!\n=", kind: ErrUnexpectedChar, char: '!', line: 2},
		{name: "unknown char", input: "x = 1\ny = 2 % 3", kind: ErrUnexpectedChar, char: '%', line: 2},
		{name: "paren", input: "(1)", kind: ErrUnexpectedChar, char: '(', line: 1},
		{name: "non ascii", input: "\n\né = 1", kind: ErrUnexpectedChar, char: 'é', line: 3},
		{name: "nul byte", input: "1\x00", kind: ErrUnexpectedChar, char: 0, line: 1},
		{name: "overflow", input: "x = 9223372036854775808", kind: ErrNumberRange, literal: "9223372036854775808", line: 1},
		{name: "huge literal", input: "\n\n\n99999999999999999999999", kind: ErrNumberRange, literal: "99999999999999999999999", line: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			require.Error(t, err)
			assert.Nil(t, tokens, "no partial token list on failure")
			assert.True(t, errors.Is(err, tt.kind), "unexpected kind: %s", err)

			var lexErr *Error
			require.ErrorAs(t, err, &lexErr)
			assert.Equal(t, tt.line, lexErr.Line)
			assert.Equal(t, tt.literal, lexErr.Literal)
			if tt.literal == "" {
				assert.Equal(t, tt.char, lexErr.Char)
			}
		})
	}
}

func TestLexerErrorMessage(t *testing.T) {
	_, err := Tokenize("a\n$")
	require.EqualError(t, err, `lex error: unexpected character '$' at line 2`)

	_, err = Tokenize("99999999999999999999")
	require.EqualError(t, err, "lex error: integer literal out of range: 99999999999999999999 at line 1")
}

func TestLexerNextTokenAfterError(t *testing.T) {
	l := New("1 @ 2")
	assert.Equal(t, TokNumber, l.NextToken().Type)
	tok := l.NextToken()
	assert.Equal(t, TokError, tok.Type)
	require.Error(t, l.Err())
	assert.Equal(t, TokEOF, l.NextToken().Type)
	assert.Equal(t, TokEOF, l.NextToken().Type)
}

func TestTokenDescribe(t *testing.T) {
	assert.Equal(t, "end of input", Token{Type: TokEOF}.Describe())
	assert.Equal(t, `NUMBER "42"`, Token{Type: TokNumber, Value: "42"}.Describe())
	assert.Equal(t, `IDENTIFIER "x"`, Token{Type: TokIdentifier, Value: "x"}.Describe())
	assert.Equal(t, `"+"`, Token{Type: TokPlus, Value: "+"}.Describe())
}
