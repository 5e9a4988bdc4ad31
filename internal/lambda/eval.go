package lambda

import (
	"fmt"
	"io"

	"github.com/dekarrin/lci/internal/util"
)

// DefaultMaxReductions is the budget a freshly constructed Environment
// starts with.
const DefaultMaxReductions = 5000

// Evaluate drives term to normal form against symbols:
//
//  1. Pre-bind free names once (term = BindFreeFrom(term, symbols)).
//  2. Repeatedly take one normal-order step, tracking previously seen
//     intermediate terms in a cycle-detection set and a step counter.
//  3. Stop at a NormalForm result, on exceeding maxReductions
//     (ErrTooManyReductions), or on revisiting an already-seen intermediate
//     term (ErrNonTerminating).
//
// Each intermediate term is logged to out as "β: <term>" when echo is true;
// the final normal form is always logged with its reduction count.
// Evaluation never returns a partial term: on error the returned Term is
// nil.
func Evaluate(term Term, symbols SymbolTable, maxReductions int, echo bool, out io.Writer) (Term, error) {
	term = BindFreeFrom(term, symbols)

	seen := util.NewStringSet()
	n := 0

	for {
		if n > maxReductions {
			fmt.Fprintf(out, "[too many reductions: %d]\n", n)
			return nil, fmt.Errorf("%w: exceeded %d reductions", ErrTooManyReductions, maxReductions)
		}

		result := Reduce(term, NormalOrder)

		if !result.Reducible() {
			normal := result.Term()
			fmt.Fprintf(out, "β: %s [normal; %d reductions]\n", Render(normal), n)
			return normal, nil
		}

		next := result.Term()
		key := fmt.Sprintf("%#v", next)
		if seen.Has(key) {
			fmt.Fprintln(out, "[non-terminating]")
			return nil, fmt.Errorf("%w: revisited %s after %d reductions", ErrNonTerminating, Render(next), n)
		}

		if echo {
			fmt.Fprintf(out, "β: %s\n", Render(next))
		}
		seen.Add(key)
		term = next
		n++
	}
}
