package specification

import "fmt"

// and used to create a new specification that is the AND of two other specifications.
type and[T any] struct {
	left  Specification[T]
	right Specification[T]
}

// And creates a specification satisfied when both left and right are.
// right is not evaluated when left is not satisfied.
func And[T any](left Specification[T], right Specification[T]) (Specification[T], error) {
	if err := checkChildren("and", []Specification[T]{left, right}); err != nil {
		return nil, err
	}
	return &and[T]{left: left, right: right}, nil
}

func (spec *and[T]) IsSatisfiedBy(t T) bool {
	return spec.left.IsSatisfiedBy(t) && spec.right.IsSatisfiedBy(t)
}

func (spec *and[T]) String() string {
	return fmt.Sprintf("(%s AND %s)", Describe(spec.left), Describe(spec.right))
}
