package util

// StringSet is a map[string]bool used by the evaluator to track previously
// seen intermediate terms for cycle detection.
type StringSet map[string]bool

// NewStringSet creates an empty StringSet.
func NewStringSet() StringSet {
	return StringSet{}
}

// Has returns whether value is present in the set.
func (s StringSet) Has(value string) bool {
	_, has := s[value]
	return has
}

// Add adds value to the set. Has no effect if it's already there.
func (s StringSet) Add(value string) {
	s[value] = true
}

// Len returns the number of elements in the set.
func (s StringSet) Len() int {
	return len(s)
}

// SVSet is a set that uses strings as its item type and some other type as
// its stored data type; it backs the Environment's identifier -> Term
// mapping.
type SVSet[V any] map[string]V

// NewSVSet creates an empty SVSet.
func NewSVSet[V any]() SVSet[V] {
	return SVSet[V]{}
}

// Set assigns idx the given value, adding idx to the set if it isn't
// already present.
func (s SVSet[V]) Set(idx string, val V) {
	s[idx] = val
}

// Get retrieves the value stored for idx, or the zero value of V if idx is
// not present. Callers should check Has first if absence matters.
func (s SVSet[V]) Get(idx string) V {
	return s[idx]
}

// Has returns whether idx is present in the set.
func (s SVSet[V]) Has(idx string) bool {
	_, ok := s[idx]
	return ok
}

// Len returns the number of elements in the set.
func (s SVSet[V]) Len() int {
	return len(s)
}

// Elements returns the set's identifiers. No particular order is
// guaranteed nor should it be relied on.
func (s SVSet[V]) Elements() []string {
	elems := make([]string, 0, len(s))
	for k := range s {
		elems = append(elems, k)
	}
	return elems
}
