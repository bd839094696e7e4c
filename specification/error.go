package specification

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidArgument a required argument is missing, e.g. a nil child specification.
	ErrInvalidArgument = errors.New("invalid argument")
)

// checkChildren fails if specs is empty or any of its elements is nil.
func checkChildren[T any](op string, specs []Specification[T]) error {
	if len(specs) == 0 {
		return errors.Wrapf(ErrInvalidArgument, "%s: no child specification", op)
	}
	for i, spec := range specs {
		if isNil(spec) {
			return errors.Wrapf(ErrInvalidArgument, "%s: child specification %d is nil", op, i)
		}
	}
	return nil
}
