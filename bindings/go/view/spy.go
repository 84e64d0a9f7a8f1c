package view

import (
	"errors"
	"fmt"
	"sync"

	"pagedlist.dev/listdiff/bindings/go/slot"
)

// ErrTriggeringPeek is reported for every peek that allowed a fetch or a page load.
var ErrTriggeringPeek = errors.New("peek would trigger a fetch or pagination")

// Peek is a recorded call to PagedEntityView.Peek.
type Peek struct {
	Position int
	Options  PeekOptions
}

// Spy wraps a PagedEntityView and records every peek made through it.
// It is meant for tests that must prove a consumer only ever reads without side effects.
type Spy[T any, ID comparable] struct {
	delegate PagedEntityView[T, ID]

	mu    sync.Mutex
	peeks []Peek
}

var _ PagedEntityView[any, string] = (*Spy[any, string])(nil)

// NewSpy returns a Spy recording peeks into delegate.
func NewSpy[T any, ID comparable](delegate PagedEntityView[T, ID]) *Spy[T, ID] {
	return &Spy[T, ID]{delegate: delegate}
}

func (s *Spy[T, ID]) Size() int {
	return s.delegate.Size()
}

func (s *Spy[T, ID]) Peek(position int, opts PeekOptions) slot.Slot[T, ID] {
	s.mu.Lock()
	s.peeks = append(s.peeks, Peek{Position: position, Options: opts})
	s.mu.Unlock()
	return s.delegate.Peek(position, opts)
}

// Peeks returns all recorded peeks in call order.
func (s *Spy[T, ID]) Peeks() []Peek {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Peek, len(s.peeks))
	copy(out, s.peeks)
	return out
}

// Violations returns an error for every recorded peek that was allowed to trigger
// loading, or nil if there were none.
func (s *Spy[T, ID]) Violations() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var errs []error
	for _, p := range s.peeks {
		if p.Options.Triggering() {
			errs = append(errs, fmt.Errorf("position %d (fetch=%t, paginate=%t): %w",
				p.Position, p.Options.FetchIfAbsent, p.Options.PaginateIfNeeded, ErrTriggeringPeek))
		}
	}
	return errors.Join(errs...)
}

// Reset forgets all recorded peeks.
func (s *Spy[T, ID]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.peeks = nil
}
