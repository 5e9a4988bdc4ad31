package lambda

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Render(t *testing.T) {
	testCases := []struct {
		name   string
		term   Term
		expect string
	}{
		{
			name:   "free variable",
			term:   NewVariable(FreeName("x")),
			expect: "x",
		},
		{
			name:   "unbound de bruijn index prints with uparrow",
			term:   NewVariable(BoundName(3)),
			expect: "↑3",
		},
		{
			name:   "identity",
			term:   NewLambda(NewVariable(BoundName(1))),
			expect: "(λx0.x0)",
		},
		{
			name: "church one",
			term: NewLambda(NewLambda(NewApplication(
				NewVariable(BoundName(2)),
				NewVariable(BoundName(1)),
			))),
			expect: "(λx0.(λx1.(x0 x1)))",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, Render(tc.term))
		})
	}
}

func Test_RebindFree(t *testing.T) {
	testCases := []struct {
		name   string
		term   Term
		shift  int32
		depth  uint32
		expect Term
	}{
		{
			name:   "bound occurrence within depth is unaffected",
			term:   NewVariable(BoundName(0)),
			shift:  1,
			depth:  0,
			expect: NewVariable(BoundName(0)),
		},
		{
			name:   "free-for-depth occurrence is shifted",
			term:   NewVariable(BoundName(1)),
			shift:  1,
			depth:  0,
			expect: NewVariable(BoundName(2)),
		},
		{
			name:   "free string name is never touched",
			term:   NewVariable(FreeName("y")),
			shift:  5,
			depth:  0,
			expect: NewVariable(FreeName("y")),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := RebindFree(tc.term, tc.shift, tc.depth)
			assert.Equal(t, tc.expect, got)
		})
	}
}

func Test_IsFreeIn(t *testing.T) {
	term := NewApplication(NewVariable(FreeName("r")), NewVariable(BoundName(0)))
	assert.True(t, IsFreeIn(term, "r"))
	assert.False(t, IsFreeIn(term, "s"))
}

func Test_BindFreeFrom_oneShot(t *testing.T) {
	symbols := NewEnvironment(nullWriter{})
	// bind "id" to (Lx.(x z)), whose body refers to a still-unbound free
	// name "z", to confirm the substitution is one-shot.
	idTerm := NewLambda(NewApplication(NewVariable(BoundName(1)), NewVariable(FreeName("z"))))
	symbols.symbols.Set("id", idTerm)

	term := NewVariable(FreeName("id"))
	bound := BindFreeFrom(term, symbols)

	assert.Equal(t, idTerm, bound)
	assert.True(t, IsFreeIn(bound, "z"), "free names nested in a substituted binding must remain free")
}

type nullWriter struct{}

func (nullWriter) Write(p []byte) (int, error) { return len(p), nil }
