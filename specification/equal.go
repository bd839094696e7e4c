package specification

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// equal is satisfied when an attribute of the item equals a fixed value.
type equal[T any, V comparable] struct {
	attribute string
	accessor  func(t T) V
	value     V
}

// Equal creates a leaf specification comparing accessor(t) with value.
// attribute only names the accessor in String output. Any value is accepted.
func Equal[T any, V comparable](attribute string, accessor func(t T) V, value V) (Specification[T], error) {
	if accessor == nil {
		return nil, errors.Wrapf(ErrInvalidArgument, "equal %q: accessor is nil", attribute)
	}
	return &equal[T, V]{attribute: attribute, accessor: accessor, value: value}, nil
}

func (spec *equal[T, V]) IsSatisfiedBy(t T) bool {
	return spec.accessor(t) == spec.value
}

func (spec *equal[T, V]) String() string {
	return fmt.Sprintf("%s=%v", spec.attribute, spec.value)
}
