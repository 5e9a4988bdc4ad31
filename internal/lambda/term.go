// Package lambda implements the untyped lambda calculus: de Bruijn-indexed
// terms, capture-avoiding substitution, normal-order β-reduction, and the
// environment that binds free names to terms.
package lambda

import (
	"fmt"
	"strings"
)

// nameKind distinguishes the two forms a Name can take.
type nameKind uint8

const (
	nameBound nameKind = iota
	nameFree
)

// Name is either a de Bruijn index counted outward from a variable's
// occurrence (Bound), or an as-yet-unresolved global identifier (Free).
// Equality is structural; Name is safe to use as a map key or with ==.
type Name struct {
	kind       nameKind
	depth      uint32
	identifier string
}

// BoundName returns a Name referring to the binder depth positions outward.
func BoundName(depth uint32) Name {
	return Name{kind: nameBound, depth: depth}
}

// FreeName returns a Name referring to the given global identifier.
func FreeName(identifier string) Name {
	return Name{kind: nameFree, identifier: identifier}
}

// IsBound reports whether n is a de Bruijn index.
func (n Name) IsBound() bool { return n.kind == nameBound }

// IsFree reports whether n is an unresolved identifier.
func (n Name) IsFree() bool { return n.kind == nameFree }

// Depth returns the de Bruijn index. It is only meaningful when IsBound.
func (n Name) Depth() uint32 { return n.depth }

// Identifier returns the global name. It is only meaningful when IsFree.
func (n Name) Identifier() string { return n.identifier }

func (n Name) String() string {
	if n.IsFree() {
		return n.identifier
	}
	return fmt.Sprintf("#%d", n.depth)
}

// Term is an immutable lambda-calculus expression: a Variable, a Lambda, or
// an Application. The concrete node types are exported structs; the
// unexported isTerm marker keeps other packages from adding Term kinds.
type Term interface {
	isTerm()
}

// VariableTerm is a reference to a Name, bound or free.
type VariableTerm struct {
	Name Name
}

// LambdaTerm is a single-argument abstraction over Body.
type LambdaTerm struct {
	Body Term
}

// ApplicationTerm applies Applicand to Argument.
type ApplicationTerm struct {
	Applicand Term
	Argument  Term
}

func (VariableTerm) isTerm()    {}
func (LambdaTerm) isTerm()      {}
func (ApplicationTerm) isTerm() {}

// NewVariable builds a Variable term around name.
func NewVariable(name Name) Term { return VariableTerm{Name: name} }

// NewLambda builds a Lambda term with the given body.
func NewLambda(body Term) Term { return LambdaTerm{Body: body} }

// NewApplication builds an Application of applicand to argument.
func NewApplication(applicand, argument Term) Term {
	return ApplicationTerm{Applicand: applicand, Argument: argument}
}

// RebindFree adds shift to the index of every variable in t that is
// free-for depth (its index exceeds depth, i.e. it refers to a binder
// outside of t as t is currently rooted). Application recurses into both
// children at the same depth; Lambda recurses into its body at depth+1.
// Free (string-named) variables are never touched.
//
// RebindFree builds and returns a new tree rather than shifting in place;
// nothing ever mutates a Term after it is constructed.
func RebindFree(t Term, shift int32, depth uint32) Term {
	switch v := t.(type) {
	case VariableTerm:
		if v.Name.IsBound() && v.Name.Depth() > depth {
			return VariableTerm{Name: BoundName(uint32(int64(v.Name.Depth()) + int64(shift)))}
		}
		return v
	case ApplicationTerm:
		return ApplicationTerm{
			Applicand: RebindFree(v.Applicand, shift, depth),
			Argument:  RebindFree(v.Argument, shift, depth),
		}
	case LambdaTerm:
		return LambdaTerm{Body: RebindFree(v.Body, shift, depth+1)}
	default:
		panic("lambda: unreachable term type in RebindFree")
	}
}

// Substitute replaces every occurrence of Bound(depth) in t with replacement,
// whose own free indices are first shifted by shift so that they remain
// correct for their new context. Other bound occurrences and free names are
// left alone. Descending into a Lambda increases both depth and shift by 1.
func Substitute(t Term, depth uint32, shift int32, replacement Term) Term {
	switch v := t.(type) {
	case VariableTerm:
		if v.Name.IsBound() && v.Name.Depth() == depth {
			return RebindFree(replacement, shift, 0)
		}
		return v
	case ApplicationTerm:
		return ApplicationTerm{
			Applicand: Substitute(v.Applicand, depth, shift, replacement),
			Argument:  Substitute(v.Argument, depth, shift, replacement),
		}
	case LambdaTerm:
		return LambdaTerm{Body: Substitute(v.Body, depth+1, shift+1, replacement)}
	default:
		panic("lambda: unreachable term type in Substitute")
	}
}

// BindFreeFrom walks t and replaces every Variable(Free(name)) for which
// symbols.Get(name) succeeds with the bound term. This is one-shot: it does
// not iterate to a fixed point, so free names appearing inside a
// replacement remain free.
func BindFreeFrom(t Term, symbols SymbolTable) Term {
	switch v := t.(type) {
	case VariableTerm:
		if v.Name.IsFree() {
			if bound, ok := symbols.Get(v.Name.Identifier()); ok {
				return bound
			}
		}
		return v
	case ApplicationTerm:
		return ApplicationTerm{
			Applicand: BindFreeFrom(v.Applicand, symbols),
			Argument:  BindFreeFrom(v.Argument, symbols),
		}
	case LambdaTerm:
		return LambdaTerm{Body: BindFreeFrom(v.Body, symbols)}
	default:
		panic("lambda: unreachable term type in BindFreeFrom")
	}
}

// IsFreeIn reports whether a Variable(Free(name)) occurs anywhere in t.
func IsFreeIn(t Term, name string) bool {
	switch v := t.(type) {
	case VariableTerm:
		return v.Name.IsFree() && v.Name.Identifier() == name
	case ApplicationTerm:
		return IsFreeIn(v.Applicand, name) || IsFreeIn(v.Argument, name)
	case LambdaTerm:
		return IsFreeIn(v.Body, name)
	default:
		panic("lambda: unreachable term type in IsFreeIn")
	}
}

// Render pretty-prints t using positional names (x0, x1, ...) generated per
// enclosing Lambda. A bound index that escapes the printed subtree (free-for
// the root depth of the call) is rendered as "↑<index>"; a free string name
// is rendered as itself. Lambdas render as "(λname.body)", applications as
// "(f x)".
func Render(t Term) string {
	var sb strings.Builder
	renderTerm(&sb, t, 0, nil)
	return sb.String()
}

func renderTerm(sb *strings.Builder, t Term, depth uint32, names []string) {
	switch v := t.(type) {
	case VariableTerm:
		if v.Name.IsFree() {
			sb.WriteString(v.Name.Identifier())
			return
		}
		k := v.Name.Depth()
		if k <= depth && int(depth-k) < len(names) {
			sb.WriteString(names[depth-k])
			return
		}
		fmt.Fprintf(sb, "↑%d", k)
	case ApplicationTerm:
		sb.WriteByte('(')
		renderTerm(sb, v.Applicand, depth, names)
		sb.WriteByte(' ')
		renderTerm(sb, v.Argument, depth, names)
		sb.WriteByte(')')
	case LambdaTerm:
		name := fmt.Sprintf("x%d", depth)
		sb.WriteString("(λ")
		sb.WriteString(name)
		sb.WriteByte('.')
		renderTerm(sb, v.Body, depth+1, append(names, name))
		sb.WriteByte(')')
	default:
		panic("lambda: unreachable term type in renderTerm")
	}
}

// Strategy selects a reduction order. Only NormalOrder is implemented;
// selecting ApplicativeOrder panics with "unimplemented" when a reduction
// step is actually attempted, rather than silently reducing normal-order.
type Strategy int

const (
	NormalOrder Strategy = iota
	ApplicativeOrder
)

func (s Strategy) String() string {
	switch s {
	case NormalOrder:
		return "normal-order"
	case ApplicativeOrder:
		return "applicative-order"
	default:
		return "unknown-strategy"
	}
}

// EvalResult is the outcome of one reduction step: either the term has no
// further β-redex (NormalForm) or one contraction was performed and another
// step is permitted (PossiblyReducible).
type EvalResult struct {
	term      Term
	reducible bool
}

// NormalFormResult wraps t as a result carrying no further redex.
func NormalFormResult(t Term) EvalResult { return EvalResult{term: t, reducible: false} }

// PossiblyReducibleResult wraps t as a result that may still be reducible.
func PossiblyReducibleResult(t Term) EvalResult { return EvalResult{term: t, reducible: true} }

// Term returns the wrapped term.
func (r EvalResult) Term() Term { return r.term }

// Reducible reports whether the wrapped term may still contain a redex.
func (r EvalResult) Reducible() bool { return r.reducible }

// Map rebuilds the EvalResult by applying f to the wrapped term, preserving
// the Reducible tag. This mirrors threading a child result's tag back
// through the parent constructor the reducer just rebuilt.
func (r EvalResult) Map(f func(Term) Term) EvalResult {
	return EvalResult{term: f(r.term), reducible: r.reducible}
}
