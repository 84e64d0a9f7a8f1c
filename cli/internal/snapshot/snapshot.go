// Package snapshot reads list snapshots from YAML or JSON documents:
//
//	items:
//	- marker: drafts
//	- entity: {id: 1, title: hello}
//	- remoteId: "200"
//	- unresolved: true
//
// Every item sets exactly one of its fields.
package snapshot

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"sigs.k8s.io/yaml"

	"pagedlist.dev/listdiff/bindings/go/reconcile"
	"pagedlist.dev/listdiff/bindings/go/slot"
	"pagedlist.dev/listdiff/bindings/go/view"
)

var ErrInvalidItem = errors.New("invalid snapshot item")

// Entity is a loaded entity, a set of attributes.
type Entity map[string]any

// Slot is the slot type of snapshot lists, keyed by string remote ids.
type Slot = slot.Slot[Entity, string]

// View is the view type of snapshot lists.
type View = view.Snapshot[Entity, string]

// Document is the file format of a snapshot.
type Document struct {
	Items []Item `json:"items"`
}

// Item is one position of a snapshot.
type Item struct {
	Marker     *string `json:"marker,omitempty"`
	RemoteID   *string `json:"remoteId,omitempty"`
	Entity     Entity  `json:"entity,omitempty"`
	Unresolved bool    `json:"unresolved,omitempty"`
}

// Slot converts the item into a slot.
func (i Item) Slot() (Slot, error) {
	var set []string
	if i.Marker != nil {
		set = append(set, "marker")
	}
	if i.RemoteID != nil {
		set = append(set, "remoteId")
	}
	if i.Entity != nil {
		set = append(set, "entity")
	}
	if i.Unresolved {
		set = append(set, "unresolved")
	}
	if len(set) != 1 {
		return Slot{}, fmt.Errorf("exactly one of marker, remoteId, entity or unresolved must be set, got %v: %w", set, ErrInvalidItem)
	}

	switch {
	case i.Marker != nil:
		return slot.Marker[Entity, string](slot.MarkerID(*i.Marker)), nil
	case i.RemoteID != nil:
		return slot.RemoteOnly[Entity, string](*i.RemoteID), nil
	case i.Entity != nil:
		return slot.Loaded[Entity, string](i.Entity), nil
	default:
		return slot.Unresolved[Entity, string](), nil
	}
}

// ItemFromSlot is the inverse of Item.Slot.
func ItemFromSlot(s Slot) Item {
	if id, ok := s.MarkerID(); ok {
		m := string(id)
		return Item{Marker: &m}
	}
	if id, ok := s.RemoteID(); ok {
		return Item{RemoteID: &id}
	}
	if e, ok := s.Entity(); ok {
		return Item{Entity: e}
	}
	return Item{Unresolved: true}
}

// Decode parses a snapshot document. All invalid items are reported at once.
func Decode(data []byte) (*View, error) {
	var doc Document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding snapshot failed: %w", err)
	}
	slots := make([]Slot, 0, len(doc.Items))
	var errs []error
	for idx, item := range doc.Items {
		s, err := item.Slot()
		if err != nil {
			errs = append(errs, fmt.Errorf("item %d: %w", idx, err))
			continue
		}
		slots = append(slots, s)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return view.NewSnapshot(slots...), nil
}

// Load reads a snapshot file.
func Load(path string) (*View, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot failed: %w", err)
	}
	v, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot %s failed: %w", path, err)
	}
	return v, nil
}

// Identity returns the values of keys in e, formatted as strings.
// The second return value is false if any key is missing.
func Identity(e Entity, keys []string) (map[string]string, bool) {
	id := make(map[string]string, len(keys))
	for _, k := range keys {
		v, ok := e[k]
		if !ok {
			return nil, false
		}
		id[k] = fmt.Sprint(v)
	}
	return id, true
}

// SameIdentity returns an identity predicate comparing the attributes keys.
// Entities that miss one of the keys never match.
func SameIdentity(keys []string) reconcile.MatchingFn[Entity] {
	keys = slices.Clone(keys)
	return func(a, b Entity) bool {
		x, ok := Identity(a, keys)
		if !ok {
			return false
		}
		y, ok := Identity(b, keys)
		if !ok {
			return false
		}
		return maps.Equal(x, y)
	}
}
