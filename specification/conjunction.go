package specification

import (
	"strings"

	"golang.org/x/exp/slices"
)

// conjunction is satisfied when every one of its specs is.
type conjunction[T any] struct {
	specs []Specification[T]
}

// Conjunction creates the AND of an ordered, non-empty list of specifications.
// Children are evaluated first to last, stopping at the first one not satisfied.
func Conjunction[T any](specs ...Specification[T]) (Specification[T], error) {
	if err := checkChildren("conjunction", specs); err != nil {
		return nil, err
	}
	return &conjunction[T]{specs: slices.Clone(specs)}, nil
}

func (spec *conjunction[T]) IsSatisfiedBy(t T) bool {
	for _, s := range spec.specs {
		if !s.IsSatisfiedBy(t) {
			return false
		}
	}
	return true
}

func (spec *conjunction[T]) String() string {
	return join(spec.specs, " AND ")
}

func join[T any](specs []Specification[T], sep string) string {
	parts := make([]string, 0, len(specs))
	for _, s := range specs {
		parts = append(parts, Describe(s))
	}
	return "(" + strings.Join(parts, sep) + ")"
}
