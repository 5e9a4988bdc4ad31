package lambda

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/dekarrin/lci/internal/util"
)

// BindMode governs whether a binding's right-hand side is reduced at
// definition time.
type BindMode int

const (
	// CaptureOnly stores the term as-is (after pre-binding of free names).
	CaptureOnly BindMode = iota
	// CaptureAndReduce reduces the term to normal form before storing it.
	CaptureAndReduce
)

// Binding is a single identifier/value/mode triple, as produced by a
// top-level "let" or by the statement interpreter's auto-binding of "ans".
type Binding struct {
	Identifier string
	Value      Term
	Mode       BindMode
}

// AnsIdentifier is the reserved name auto-bound to the normal form of the
// most recently evaluated expression.
const AnsIdentifier = "ans"

// SymbolTable is the read contract the core needs from an environment: look
// up a name, and enumerate what is defined. A null (empty, immutable)
// implementation is provided as NullEnvironment so that evaluation can run
// against no definitions at all.
type SymbolTable interface {
	// Get returns the term bound to identifier, and whether it was found.
	Get(identifier string) (Term, bool)

	// Symbols returns every defined identifier, in no particular order.
	Symbols() []string
}

type nullSymbolTable struct{}

func (nullSymbolTable) Get(string) (Term, bool) { return nil, false }
func (nullSymbolTable) Symbols() []string       { return nil }

// NullEnvironment is the empty, immutable SymbolTable: Get always misses
// and Symbols is always empty. Evaluating against it reduces a term with no
// definitions available.
var NullEnvironment SymbolTable = nullSymbolTable{}

// Environment is the map-backed SymbolTable implementation that backs a
// session: identifier -> Term, plus the two tunables every evaluation reads
// at the moment it starts.
type Environment struct {
	symbols       util.SVSet[Term]
	MaxReductions int
	EchoEnabled   bool
	Out           io.Writer
}

// NewEnvironment creates an empty Environment with the default reduction
// budget and echo enabled, writing evaluation traces to out (os.Stdout if
// out is nil).
func NewEnvironment(out io.Writer) *Environment {
	if out == nil {
		out = os.Stdout
	}
	return &Environment{
		symbols:       util.NewSVSet[Term](),
		MaxReductions: DefaultMaxReductions,
		EchoEnabled:   true,
		Out:           out,
	}
}

// Get implements SymbolTable.
func (e *Environment) Get(identifier string) (Term, bool) {
	if !e.symbols.Has(identifier) {
		return nil, false
	}
	return e.symbols.Get(identifier), true
}

// Symbols implements SymbolTable.
func (e *Environment) Symbols() []string {
	return e.symbols.Elements()
}

// Bindings returns every (identifier, term) pair currently defined, sorted
// lexicographically by identifier (for ":list").
func (e *Environment) Bindings() []Binding {
	ids := e.symbols.Elements()
	sort.Strings(ids)
	bindings := make([]Binding, len(ids))
	for i, id := range ids {
		bindings[i] = Binding{Identifier: id, Value: e.symbols.Get(id)}
	}
	return bindings
}

// AddBinding installs b into the environment:
//
//  1. b.Value is pre-bound against the current environment (a snapshot, not
//     a live reference).
//  2. If the pre-bound value still has b.Identifier free in it, the binding
//     is rejected as recursive (no fix-point combinator is built in; users
//     must encode recursion via a Y-style combinator whose own free names
//     are already bound).
//  3. If Mode is CaptureAndReduce, the value is evaluated to normal form; a
//     failure here also aborts the binding.
//  4. The binding is inserted, overwriting any prior entry for the same
//     identifier.
//
// On any error, the environment is left exactly as it was before the call.
func (e *Environment) AddBinding(b Binding) error {
	value := BindFreeFrom(b.Value, e)

	if IsFreeIn(value, b.Identifier) {
		fmt.Fprintln(e.Out, "Error: recursive binding")
		return fmt.Errorf("%w: %s is free in its own right-hand side", ErrRecursiveBinding, b.Identifier)
	}

	if b.Mode == CaptureAndReduce {
		reduced, err := Evaluate(value, e, e.MaxReductions, e.EchoEnabled, e.Out)
		if err != nil {
			return err
		}
		value = reduced
	}

	e.symbols.Set(b.Identifier, value)
	return nil
}

// Interpret lexes and parses input as a single statement and routes it:
//
//   - a lex failure is printed and returned as a wrapped ErrLexFailure
//     (this is the one class of error that aborts an ":import" loop at the
//     lexer stage);
//   - a grammar-level parse failure (SyntaxError) is printed and Interpret
//     returns nil — parse errors are recoverable and never abort an
//     ":import" loop or the REPL;
//   - a Definition statement is routed to AddBinding, whose error (if any)
//     propagates;
//   - an Expression statement is, if echo is enabled, printed as " : <term>"
//     and then auto-bound to the reserved identifier "ans" with
//     CaptureAndReduce, so every evaluated expression's normal form is
//     re-addressable.
func (e *Environment) Interpret(input string) error {
	tokens, err := Lex(input)
	if err != nil {
		fmt.Fprintln(e.Out, err)
		return fmt.Errorf("%w: %s", ErrLexFailure, err)
	}

	stmt, err := ParseStatement(tokens)
	if err != nil {
		fmt.Fprintln(e.Out, err)
		return nil
	}

	switch s := stmt.(type) {
	case DefinitionStatement:
		return e.AddBinding(s.Binding)
	case ExpressionStatement:
		if e.EchoEnabled {
			fmt.Fprintf(e.Out, " : %s\n", Render(s.Term))
		}
		return e.AddBinding(Binding{Identifier: AnsIdentifier, Value: s.Term, Mode: CaptureAndReduce})
	default:
		return nil
	}
}
