package lambda

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dekarrin/lci/internal/util"
)

// SyntaxErrorKind distinguishes the shapes of error the parser can raise.
type SyntaxErrorKind int

const (
	// ErrExpectedToken is raised when a specific token (or one of a small
	// set) was required but a different token was present.
	ErrExpectedToken SyntaxErrorKind = iota
	// ErrEmptyExpression is raised by an empty top-level input, or by an
	// application production that peeled zero expressions.
	ErrEmptyExpression
	// ErrNotStartOfExpression is raised when the token at the head of an
	// expression production cannot start one.
	ErrNotStartOfExpression
	// ErrEOF is raised when tokens were exhausted but more were required.
	ErrEOF
	// ErrUnboundVariable is reserved; free names are always permitted by
	// this parser, so it is never constructed.
	ErrUnboundVariable
	// ErrTrailingTokens is raised when tokens remain after a complete
	// top-level statement was parsed.
	ErrTrailingTokens
)

// SyntaxError is the parser's rich diagnostic type, describing what was
// expected and what was actually seen.
type SyntaxError struct {
	Kind     SyntaxErrorKind
	Expected []string
	Got      *Token
	Name     string
	Trailing []Token
}

func (e *SyntaxError) Error() string {
	switch e.Kind {
	case ErrExpectedToken:
		return fmt.Sprintf("expected %s but got %q", util.MakeTextList(e.Expected), e.Got.String())
	case ErrEmptyExpression:
		return "empty expression"
	case ErrNotStartOfExpression:
		return fmt.Sprintf("invalid token at start of expression: %q", e.Got.String())
	case ErrEOF:
		return fmt.Sprintf("unexpected end of input; expected %s", util.MakeTextList(e.Expected))
	case ErrUnboundVariable:
		return fmt.Sprintf("unbound variable: %q", e.Name)
	case ErrTrailingTokens:
		rendered := make([]string, len(e.Trailing))
		for i, tok := range e.Trailing {
			rendered[i] = tok.String()
		}
		return "trailing tokens: " + strings.Join(rendered, " ")
	default:
		return "unknown parse error"
	}
}

// Sentinel errors for the evaluator. Use errors.Is to test for them; the
// concrete error returned by Interpret/Evaluate/AddBinding wraps one of
// these with additional context via fmt.Errorf's %w.
var (
	// ErrLexFailure is returned by Interpret (never by Evaluate directly)
	// when the input could not even be tokenized.
	ErrLexFailure = errors.New("lex failure")

	// ErrTooManyReductions is returned when the reduction budget is
	// exceeded before a normal form was reached.
	ErrTooManyReductions = errors.New("too many reductions")

	// ErrNonTerminating is returned when an intermediate term recurs,
	// indicating the reduction will never reach a normal form.
	ErrNonTerminating = errors.New("non-terminating reduction detected")

	// ErrRecursiveBinding is returned when a let-bound identifier occurs
	// free in its own (pre-bound) right-hand side.
	ErrRecursiveBinding = errors.New("recursive binding")
)
