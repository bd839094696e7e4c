// Package filter applies a specification across a sequence of items.
//
// Results are produced lazily: an item is tested only when the consumer
// asks for the next match, and the source stops being read as soon as
// the consumer stops ranging.
package filter

import (
	"iter"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/go-leo/spec-filter/specification"
)

// Filterer selects the items of a sequence that satisfy a specification.
type Filterer[T any] interface {
	// Filter returns the items satisfying spec, in their original order.
	Filter(items iter.Seq[T], spec specification.Specification[T]) (iter.Seq[T], error)
}

var _ Filterer[any] = filterer[any]{}

type filterer[T any] struct{}

// New returns a stateless Filterer.
func New[T any]() Filterer[T] {
	return filterer[T]{}
}

func (filterer[T]) Filter(items iter.Seq[T], spec specification.Specification[T]) (iter.Seq[T], error) {
	return Filter(items, spec)
}

// Filter returns a lazy sequence of the items for which spec.IsSatisfiedBy is true,
// in the order they appear in items. A nil items is an empty sequence.
// Neither items nor spec is modified.
func Filter[T any](items iter.Seq[T], spec specification.Specification[T]) (iter.Seq[T], error) {
	if specification.IsNil(spec) {
		return nil, errors.Wrap(specification.ErrInvalidArgument, "filter: specification is nil")
	}
	if items == nil {
		return empty[T], nil
	}
	return func(yield func(T) bool) {
		for item := range items {
			if !spec.IsSatisfiedBy(item) {
				continue
			}
			if !yield(item) {
				return
			}
		}
	}, nil
}

// Slice is Filter over the elements of items.
func Slice[T any](items []T, spec specification.Specification[T]) (iter.Seq[T], error) {
	return Filter(slices.Values(items), spec)
}

func empty[T any](func(T) bool) {}
