// Package specification implements composable predicates over items of any type.
//
// A Specification decides whether a single item satisfies it. Leaf
// specifications test one attribute; combinators (And, Or, Not,
// Conjunction, Disjunction) build new specifications out of existing
// ones without knowing anything about them. New kinds of specification
// only need to implement the single IsSatisfiedBy method.
//
// Specifications are immutable once constructed, so one instance may be
// shared between combinators and evaluated from several goroutines.
package specification

import (
	"fmt"
	"reflect"
)

// Specification interface.
// Implement IsSatisfiedBy to create a new kind of specification.
type Specification[T any] interface {
	// IsSatisfiedBy check if t is satisfied by the specification.
	// It must be pure and must return for every t.
	IsSatisfiedBy(t T) bool
}

// The Func type is an adapter to allow the use of ordinary functions as Specification.
type Func[T any] func(t T) bool

// IsSatisfiedBy call f(t).
func (f Func[T]) IsSatisfiedBy(t T) bool {
	return f(t)
}

func (f Func[T]) String() string {
	return "func"
}

// Must returns spec, or panics if err is not nil.
// It is intended for specifications built from values known at compile time.
func Must[T any](spec Specification[T], err error) Specification[T] {
	if err != nil {
		panic(err)
	}
	return spec
}

// Describe renders spec for humans. Built-in specifications implement
// fmt.Stringer; anything else is rendered as its Go type.
func Describe[T any](spec Specification[T]) string {
	if IsNil(spec) {
		return "<nil>"
	}
	if s, ok := spec.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", spec)
}

// IsNil reports whether spec is missing: a nil interface, or one holding a
// nil pointer or nil func.
func IsNil[T any](spec Specification[T]) bool {
	return isNil(spec)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
