package view

import (
	"slices"

	"pagedlist.dev/listdiff/bindings/go/slot"
)

// Snapshot is an immutable, slice backed PagedEntityView.
// It never loads anything, so peek options have no effect.
type Snapshot[T any, ID comparable] struct {
	slots []slot.Slot[T, ID]
}

var (
	_ PagedEntityView[any, string] = (*Snapshot[any, string])(nil)
	_ RemoteIDer[string]           = (*Snapshot[any, string])(nil)
)

// NewSnapshot copies slots into a new Snapshot.
func NewSnapshot[T any, ID comparable](slots ...slot.Slot[T, ID]) *Snapshot[T, ID] {
	return &Snapshot[T, ID]{slots: slices.Clone(slots)}
}

func (s *Snapshot[T, ID]) Size() int {
	return len(s.slots)
}

// Peek returns the slot at position. Out of range positions yield an unresolved slot.
func (s *Snapshot[T, ID]) Peek(position int, _ PeekOptions) slot.Slot[T, ID] {
	if position < 0 || position >= len(s.slots) {
		return slot.Unresolved[T, ID]()
	}
	return s.slots[position]
}

func (s *Snapshot[T, ID]) RemoteIDAt(position int) (ID, bool) {
	return s.Peek(position, PeekOptions{}).RemoteID()
}

// Slots returns a copy of the underlying slots.
func (s *Snapshot[T, ID]) Slots() []slot.Slot[T, ID] {
	return slices.Clone(s.slots)
}
