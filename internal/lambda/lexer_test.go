package lambda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Lex_tokenTypeSequence(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expect    []TokenType
		expectErr bool
	}{
		{name: "empty", input: "", expect: []TokenType{}},
		{name: "parens", input: "()", expect: []TokenType{TokenParenOpen, TokenParenClose}},
		{name: "lambda dot identifier, unicode form", input: "λx.x", expect: []TokenType{
			TokenLambda, TokenIdentifier, TokenDot, TokenIdentifier,
		}},
		{name: "lambda dot identifier, ascii form", input: "Lx.x", expect: []TokenType{
			TokenLambda, TokenIdentifier, TokenDot, TokenIdentifier,
		}},
		{name: "let with define-reduce", input: "let x = y", expect: []TokenType{
			TokenLet, TokenIdentifier, TokenDefineReduce, TokenIdentifier,
		}},
		{name: "let with define-suspend", input: "let x := y", expect: []TokenType{
			TokenLet, TokenIdentifier, TokenDefineSuspend, TokenIdentifier,
		}},
		{name: "identifier that merely starts with let is not the keyword", input: "letter", expect: []TokenType{
			TokenIdentifier,
		}},
		{name: "whitespace is skipped", input: "  (  x ) ", expect: []TokenType{
			TokenParenOpen, TokenIdentifier, TokenParenClose,
		}},
		{name: "lone colon is an error", input: ":", expectErr: true},
		{name: "unsupported character is an error", input: "x#y", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := Lex(tc.input)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			types := make([]TokenType, len(tokens))
			for i, tok := range tokens {
				types[i] = tok.Type
			}
			assert.Equal(t, tc.expect, types)
		})
	}
}

func Test_Lex_roundTrip(t *testing.T) {
	// rendering each token with its canonical printer and re-lexing must
	// yield the same token-type sequence.
	input := "let succ = (Ln.(Lf.(Lx.(f ((n f) x)))))"

	tokens, err := Lex(input)
	require.NoError(t, err)

	rendered := ""
	for i, tok := range tokens {
		if i > 0 {
			rendered += " "
		}
		rendered += tok.String()
	}

	relexed, err := Lex(rendered)
	require.NoError(t, err)
	require.Len(t, relexed, len(tokens))

	for i := range tokens {
		assert.Equal(t, tokens[i].Type, relexed[i].Type)
		if tokens[i].Type == TokenIdentifier {
			assert.Equal(t, tokens[i].Lexeme, relexed[i].Lexeme)
		}
	}
}

func Test_Lex_identifierLexeme(t *testing.T) {
	tokens, err := Lex("foo123")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "foo123", tokens[0].Lexeme)
}
