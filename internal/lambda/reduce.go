package lambda

// Reduce performs one step of β-reduction under strategy and returns the
// resulting EvalResult. Only NormalOrder is implemented; passing
// ApplicativeOrder panics, since the strategy is reserved and the design
// requires it to fail loudly rather than silently behave like NormalOrder.
func Reduce(t Term, strategy Strategy) EvalResult {
	if strategy != NormalOrder {
		panic("lambda: " + strategy.String() + " reduction strategy is unimplemented")
	}

	switch v := t.(type) {
	case VariableTerm:
		return NormalFormResult(v)

	case LambdaTerm:
		return Reduce(v.Body, strategy).Map(func(body Term) Term {
			return LambdaTerm{Body: body}
		})

	case ApplicationTerm:
		if lam, ok := v.Applicand.(LambdaTerm); ok {
			contracted := Substitute(lam.Body, 1, 1, v.Argument)
			contracted = RebindFree(contracted, -1, 0)
			return PossiblyReducibleResult(contracted)
		}

		head := Reduce(v.Applicand, strategy)
		if head.Reducible() {
			return head.Map(func(applicand Term) Term {
				return ApplicationTerm{Applicand: applicand, Argument: v.Argument}
			})
		}

		return Reduce(v.Argument, strategy).Map(func(argument Term) Term {
			return ApplicationTerm{Applicand: head.Term(), Argument: argument}
		})

	default:
		panic("lambda: unreachable term type in Reduce")
	}
}
