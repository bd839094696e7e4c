package specification

import "fmt"

// or used to create a new specification that is the OR of two other specifications.
type or[T any] struct {
	left  Specification[T]
	right Specification[T]
}

// Or creates a specification satisfied when left or right is.
// right is not evaluated when left is satisfied.
func Or[T any](left Specification[T], right Specification[T]) (Specification[T], error) {
	if err := checkChildren("or", []Specification[T]{left, right}); err != nil {
		return nil, err
	}
	return &or[T]{left: left, right: right}, nil
}

func (spec *or[T]) IsSatisfiedBy(t T) bool {
	return spec.left.IsSatisfiedBy(t) || spec.right.IsSatisfiedBy(t)
}

func (spec *or[T]) String() string {
	return fmt.Sprintf("(%s OR %s)", Describe(spec.left), Describe(spec.right))
}
