// Package reconcile compares two versions of a paginated, partially remote list
// position by position, so that a list diff engine can compute the minimal set
// of UI updates between them.
//
// All reads go through non-triggering peeks: comparing two lists never causes a
// fetch or a page load on either of them.
package reconcile

import (
	"pagedlist.dev/listdiff/bindings/go/slot"
	"pagedlist.dev/listdiff/bindings/go/view"
)

// Comparator implements the identity and content comparison callbacks of a list
// diff engine for an old and a new PagedEntityView.
//
// A Comparator is built for exactly one diff pass. It holds no mutable state.
type Comparator[T any, ID comparable] struct {
	oldView view.PagedEntityView[T, ID]
	newView view.PagedEntityView[T, ID]

	sameIdentity MatchingFn[T]
	sameContent  MatchingFn[T]
}

// New creates a Comparator.
//
// oldView may be nil, in which case the old list is treated as empty. Note that a
// typed nil pointer stored in the interface is not nil; pass an untyped nil.
// sameIdentity decides whether two loaded entities refer to the same logical
// entity, usually by comparing ids. sameContent decides whether two entities
// that share an identity render identically. Both are only ever called with
// concrete entity values.
func New[T any, ID comparable](
	oldView, newView view.PagedEntityView[T, ID],
	sameIdentity, sameContent MatchingFn[T],
) *Comparator[T, ID] {
	return &Comparator[T, ID]{
		oldView:      oldView,
		newView:      newView,
		sameIdentity: sameIdentity,
		sameContent:  sameContent,
	}
}

// OldSize returns the size of the old list, 0 if there is none.
func (c *Comparator[T, ID]) OldSize() int {
	if c.oldView == nil {
		return 0
	}
	return c.oldView.Size()
}

// NewSize returns the size of the new list.
func (c *Comparator[T, ID]) NewSize() int {
	return c.newView.Size()
}

// SameIdentity reports whether the slot at oldIndex in the old list and the slot
// at newIndex in the new list refer to the same logical entity.
func (c *Comparator[T, ID]) SameIdentity(oldIndex, newIndex int) bool {
	if c.oldView == nil {
		return false
	}
	o, n := c.peek(oldIndex, newIndex)

	if same, decided := compareMarkers(o, n); decided {
		return same
	}

	oldRemote, oldIsRemote := o.RemoteID()
	newRemote, newIsRemote := n.RemoteID()
	if oldIsRemote && newIsRemote {
		return oldRemote == newRemote
	}

	// an item that is not resolved locally can never be proven identical to anything
	oldEntity, ok := o.Entity()
	if !ok {
		return false
	}
	newEntity, ok := n.Entity()
	if !ok {
		return false
	}
	return c.sameIdentity(oldEntity, newEntity)
}

// SameContent reports whether the slot at oldIndex in the old list and the slot
// at newIndex in the new list have equal observable content.
//
// Two unresolved slots of the same kind (both remote only, or both loaded
// without an entity) are considered equal so that placeholder rows are not
// redrawn while their data is still missing on both sides.
func (c *Comparator[T, ID]) SameContent(oldIndex, newIndex int) bool {
	if c.oldView == nil {
		return false
	}
	o, n := c.peek(oldIndex, newIndex)

	if same, decided := compareMarkers(o, n); decided {
		return same
	}

	oldEntity, oldOK := o.Entity()
	newEntity, newOK := n.Entity()
	switch {
	case !oldOK && !newOK:
		return o.Kind() == n.Kind()
	case !oldOK || !newOK:
		return false
	}
	return c.sameContent(oldEntity, newEntity)
}

func (c *Comparator[T, ID]) peek(oldIndex, newIndex int) (slot.Slot[T, ID], slot.Slot[T, ID]) {
	return c.oldView.Peek(oldIndex, view.PeekOptions{}), c.newView.Peek(newIndex, view.PeekOptions{})
}

// compareMarkers decides the comparison if at least one side is a marker.
func compareMarkers[T any, ID comparable](o, n slot.Slot[T, ID]) (same bool, decided bool) {
	oldMarker, oldIsMarker := o.MarkerID()
	newMarker, newIsMarker := n.MarkerID()
	switch {
	case oldIsMarker && newIsMarker:
		return oldMarker == newMarker, true
	case oldIsMarker || newIsMarker:
		return false, true
	default:
		return false, false
	}
}
