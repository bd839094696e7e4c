// Package decorator wraps specifications with extra behaviour, such as
// counting or logging evaluations, without changing their results.
package decorator

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/go-leo/spec-filter/specification"
)

// Decorator allows us to wrap a specification.
// It can execute something before IsSatisfiedBy is invoked or after.
type Decorator[T any] interface {
	// Decorate wraps the underlying spec, adding some functionality.
	Decorate(spec specification.Specification[T]) specification.Specification[T]
}

// The Func type is an adapter to allow the use of ordinary functions as Decorator.
type Func[T any] func(spec specification.Specification[T]) specification.Specification[T]

// Decorate call f(spec).
func (f Func[T]) Decorate(spec specification.Specification[T]) specification.Specification[T] {
	return f(spec)
}

// Chain decorates spec with all decorators. The first decorator is the outermost.
func Chain[T any](spec specification.Specification[T], decorators ...Decorator[T]) specification.Specification[T] {
	for i := len(decorators) - 1; i >= 0; i-- {
		spec = decorators[i].Decorate(spec)
	}
	return spec
}

// Counter counts how often the specifications it decorates are evaluated
// and how often they were satisfied. It is safe for concurrent use.
type Counter[T any] struct {
	evaluated atomic.Int64
	satisfied atomic.Int64
}

func (c *Counter[T]) Decorate(spec specification.Specification[T]) specification.Specification[T] {
	return &counted[T]{Specification: spec, counter: c}
}

// Evaluated returns the number of IsSatisfiedBy calls seen so far.
func (c *Counter[T]) Evaluated() int64 {
	return c.evaluated.Load()
}

// Satisfied returns the number of IsSatisfiedBy calls that returned true.
func (c *Counter[T]) Satisfied() int64 {
	return c.satisfied.Load()
}

type counted[T any] struct {
	specification.Specification[T]
	counter *Counter[T]
}

func (spec *counted[T]) IsSatisfiedBy(t T) bool {
	spec.counter.evaluated.Add(1)
	ok := spec.Specification.IsSatisfiedBy(t)
	if ok {
		spec.counter.satisfied.Add(1)
	}
	return ok
}

func (spec *counted[T]) String() string {
	return specification.Describe(spec.Specification)
}

// Logging logs every evaluation at debug level.
func Logging[T any](logger zerolog.Logger) Decorator[T] {
	return Func[T](func(spec specification.Specification[T]) specification.Specification[T] {
		return &logged[T]{Specification: spec, logger: logger, desc: specification.Describe(spec)}
	})
}

type logged[T any] struct {
	specification.Specification[T]
	logger zerolog.Logger
	desc   string
}

func (spec *logged[T]) IsSatisfiedBy(t T) bool {
	ok := spec.Specification.IsSatisfiedBy(t)
	spec.logger.Debug().Str("specification", spec.desc).Interface("item", t).Bool("satisfied", ok).Msg("evaluated")
	return ok
}

func (spec *logged[T]) String() string {
	return spec.desc
}
