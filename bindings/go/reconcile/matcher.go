package reconcile

import (
	"github.com/google/go-cmp/cmp"
)

// MatchingFn is a predicate over two entities.
type MatchingFn[T any] func(a, b T) bool

// Matcher matches two entities.
type Matcher[T any] interface {
	Match(a, b T) bool
}

// functionalMatcher is a wrapper around MatchingFn that implements Matcher.
type functionalMatcher[T any] struct {
	fn MatchingFn[T]
}

func (f *functionalMatcher[T]) Match(a, b T) bool {
	return f.fn(a, b)
}

// NewMatcher creates a Matcher from a MatchingFn.
func NewMatcher[T any](fn MatchingFn[T]) Matcher[T] {
	return &functionalMatcher[T]{fn: fn}
}

// MatchAll returns a Matcher that matches if all given matchers match.
// Evaluation stops at the first matcher that does not match.
func MatchAll[T any](matchers ...Matcher[T]) Matcher[T] {
	return NewMatcher(func(a, b T) bool {
		for _, m := range matchers {
			if !m.Match(a, b) {
				return false
			}
		}
		return true
	})
}

// MatchAny returns a Matcher that matches if at least one of the given matchers matches.
func MatchAny[T any](matchers ...Matcher[T]) Matcher[T] {
	return NewMatcher(func(a, b T) bool {
		for _, m := range matchers {
			if m.Match(a, b) {
				return true
			}
		}
		return false
	})
}

// SameKey returns a MatchingFn comparing the keys extracted from both entities.
// It is the usual identity predicate: two entities are the same if their ids are.
func SameKey[T any, K comparable](key func(T) K) MatchingFn[T] {
	return func(a, b T) bool {
		return key(a) == key(b)
	}
}

// EqualContent returns a MatchingFn reporting deep equality of two entities.
// Options are passed on to cmp.Equal, e.g. to ignore volatile fields.
func EqualContent[T any](opts ...cmp.Option) MatchingFn[T] {
	return func(a, b T) bool {
		return cmp.Equal(a, b, opts...)
	}
}
