// Package slot describes the value observed at one position of a paginated list
// at comparison time.
//
// A Slot is a tagged union with exactly one active variant:
//
//   - KindMarker: a structural placeholder such as a section separator.
//   - KindRemoteOnly: an entity whose remote identifier is known but whose payload
//     has not been loaded locally yet.
//   - KindLoaded: an entity that is neither a marker nor purely remote. The entity
//     value itself may still be absent (unresolved).
//
// The payload is carried with its static type, so consumers never need type
// assertions to recover it.
package slot

import "fmt"

// Kind is the discriminator of a Slot.
type Kind int

const (
	// KindLoaded is the zero value so that a zero Slot reads as an unresolved entity.
	KindLoaded Kind = iota
	KindRemoteOnly
	KindMarker
)

func (k Kind) String() string {
	switch k {
	case KindLoaded:
		return "Loaded"
	case KindRemoteOnly:
		return "RemoteOnly"
	case KindMarker:
		return "Marker"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarkerID identifies a marker. It is only ever compared against other marker ids.
type MarkerID string

// Slot is the value found at one list position. T is the entity type, ID the
// type of remote identifiers.
type Slot[T any, ID comparable] struct {
	kind     Kind
	marker   MarkerID
	remoteID ID
	entity   T
	resolved bool
}

// Marker returns a marker slot.
func Marker[T any, ID comparable](id MarkerID) Slot[T, ID] {
	return Slot[T, ID]{kind: KindMarker, marker: id}
}

// RemoteOnly returns a slot for an entity that is only known by its remote id.
func RemoteOnly[T any, ID comparable](id ID) Slot[T, ID] {
	return Slot[T, ID]{kind: KindRemoteOnly, remoteID: id}
}

// Loaded returns a slot holding a concrete entity.
func Loaded[T any, ID comparable](entity T) Slot[T, ID] {
	return Slot[T, ID]{kind: KindLoaded, entity: entity, resolved: true}
}

// Unresolved returns a loaded slot whose entity is absent.
func Unresolved[T any, ID comparable]() Slot[T, ID] {
	return Slot[T, ID]{kind: KindLoaded}
}

// Kind returns the active variant.
func (s Slot[T, ID]) Kind() Kind {
	return s.kind
}

// IsMarker reports whether the slot is a marker.
func (s Slot[T, ID]) IsMarker() bool {
	return s.kind == KindMarker
}

// MarkerID returns the marker id if the slot is a marker.
func (s Slot[T, ID]) MarkerID() (MarkerID, bool) {
	if s.kind != KindMarker {
		return "", false
	}
	return s.marker, true
}

// RemoteID returns the remote id if the slot is remote only.
func (s Slot[T, ID]) RemoteID() (ID, bool) {
	if s.kind != KindRemoteOnly {
		var zero ID
		return zero, false
	}
	return s.remoteID, true
}

// Entity resolves the slot to its entity value. Markers, remote only slots and
// unresolved loaded slots report false.
func (s Slot[T, ID]) Entity() (T, bool) {
	if s.kind != KindLoaded || !s.resolved {
		var zero T
		return zero, false
	}
	return s.entity, true
}

func (s Slot[T, ID]) String() string {
	switch s.kind {
	case KindMarker:
		return fmt.Sprintf("Marker(%s)", s.marker)
	case KindRemoteOnly:
		return fmt.Sprintf("RemoteOnly(%v)", s.remoteID)
	default:
		if !s.resolved {
			return "Loaded(<absent>)"
		}
		return fmt.Sprintf("Loaded(%v)", s.entity)
	}
}
