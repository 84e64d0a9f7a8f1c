package rowid

import (
	"github.com/google/go-cmp/cmp"
)

// Callback compares two lists of rendered items for a list diff engine.
// Identity is SameRow; content is deep equality of the descriptors.
type Callback struct {
	Old, New []Item
}

func (c Callback) OldSize() int { return len(c.Old) }

func (c Callback) NewSize() int { return len(c.New) }

func (c Callback) SameIdentity(oldIndex, newIndex int) bool {
	return SameRow(c.Old[oldIndex], c.New[newIndex])
}

func (c Callback) SameContent(oldIndex, newIndex int) bool {
	return cmp.Equal(c.Old[oldIndex], c.New[newIndex], cmp.AllowUnexported(LocalOrRemoteID{}))
}
