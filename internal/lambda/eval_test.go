package lambda

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseExpr(t *testing.T, input string) Term {
	t.Helper()
	tokens, err := Lex(input)
	require.NoError(t, err)
	stmt, err := ParseStatement(tokens)
	require.NoError(t, err)
	return stmt.(ExpressionStatement).Term
}

func Test_Evaluate_reachesNormalForm(t *testing.T) {
	var out bytes.Buffer
	term := parseExpr(t, "((Lx.x) (Ly.y))")

	result, err := Evaluate(term, NullEnvironment, DefaultMaxReductions, true, &out)
	require.NoError(t, err)
	assert.Equal(t, "(λx0.x0)", Render(result))
	assert.Contains(t, out.String(), "[normal; 1 reductions]")
}

func Test_Evaluate_nonTerminating(t *testing.T) {
	var out bytes.Buffer
	term := parseExpr(t, "((Lx.(x x)) (Lx.(x x)))")

	_, err := Evaluate(term, NullEnvironment, DefaultMaxReductions, true, &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonTerminating))
}

func Test_Evaluate_tooManyReductions(t *testing.T) {
	var out bytes.Buffer
	omega := parseExpr(t, "((Lx.(x x)) (Lx.(x x)))")

	_, err := Evaluate(omega, NullEnvironment, 0, true, &out)
	require.Error(t, err)
	// with a budget of 0, the budget check fires after the first step,
	// before the repeated omega term can be seen a second time.
	assert.True(t, errors.Is(err, ErrTooManyReductions))
}

func Test_Evaluate_echoSuppression(t *testing.T) {
	// with echo disabled, only the terminal line is emitted.
	var out bytes.Buffer
	term := parseExpr(t, "((Lx.x) (Ly.y))")

	_, err := Evaluate(term, NullEnvironment, DefaultMaxReductions, false, &out)
	require.NoError(t, err)
	assert.Equal(t, "β: (λx0.x0) [normal; 1 reductions]\n", out.String())
}
