// Package view defines the read contract of a virtualized, lazily populated list
// of entities as seen by list reconciliation.
package view

import (
	"pagedlist.dev/listdiff/bindings/go/slot"
)

// PeekOptions control whether reading a position may cause side effects.
// Reconciliation always passes the zero value.
type PeekOptions struct {
	// FetchIfAbsent requests loading the entity payload if it is not available locally.
	FetchIfAbsent bool
	// PaginateIfNeeded requests loading the next page when the position is close to the end.
	PaginateIfNeeded bool
}

// Triggering reports whether the options allow a fetch or a page load.
func (o PeekOptions) Triggering() bool {
	return o.FetchIfAbsent || o.PaginateIfNeeded
}

// PagedEntityView is an ordered list of entity slots.
//
// Implementations must be immutable for the duration of a comparison and must
// never fetch or paginate when Peek is called with options that do not request it.
type PagedEntityView[T any, ID comparable] interface {
	// Size returns the number of positions in the list.
	Size() int
	// Peek returns the best-effort locally known slot at position.
	Peek(position int, opts PeekOptions) slot.Slot[T, ID]
}

// RemoteIDer is an optional fast path to read the remote id of a position
// without materializing its slot.
type RemoteIDer[ID comparable] interface {
	RemoteIDAt(position int) (ID, bool)
}

// RemoteIDAt returns the remote id at position, using RemoteIDer if v implements it
// and a non-triggering peek otherwise.
func RemoteIDAt[T any, ID comparable](v PagedEntityView[T, ID], position int) (ID, bool) {
	if r, ok := v.(RemoteIDer[ID]); ok {
		return r.RemoteIDAt(position)
	}
	return v.Peek(position, PeekOptions{}).RemoteID()
}
