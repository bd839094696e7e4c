package specification

import "golang.org/x/exp/slices"

// disjunction is satisfied when any one of its specs is.
type disjunction[T any] struct {
	specs []Specification[T]
}

// Disjunction creates the OR of an ordered, non-empty list of specifications.
// Children are evaluated first to last, stopping at the first one satisfied.
func Disjunction[T any](specs ...Specification[T]) (Specification[T], error) {
	if err := checkChildren("disjunction", specs); err != nil {
		return nil, err
	}
	return &disjunction[T]{specs: slices.Clone(specs)}, nil
}

func (spec *disjunction[T]) IsSatisfiedBy(t T) bool {
	for _, s := range spec.specs {
		if s.IsSatisfiedBy(t) {
			return true
		}
	}
	return false
}

func (spec *disjunction[T]) String() string {
	return join(spec.specs, " OR ")
}
