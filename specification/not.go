package specification

import "fmt"

// not used to create a new specification that is the inverse (NOT) of the given spec.
type not[T any] struct {
	spec Specification[T]
}

func Not[T any](spec Specification[T]) (Specification[T], error) {
	if err := checkChildren("not", []Specification[T]{spec}); err != nil {
		return nil, err
	}
	return &not[T]{spec: spec}, nil
}

func (spec *not[T]) IsSatisfiedBy(t T) bool {
	return !spec.spec.IsSatisfiedBy(t)
}

func (spec *not[T]) String() string {
	return fmt.Sprintf("NOT %s", Describe(spec.spec))
}
