// Package rowid decides whether two rendered list item descriptors represent
// the same logical row.
//
// A row is identified by a local id, a remote id, or both. Items only known by
// one of them (loading placeholders) match rows that carry the same id, and
// items without any id (the end of list indicator) never match anything.
package rowid

import (
	"fmt"
)

// LocalID identifies an entity in local storage.
type LocalID int

// RemoteID identifies an entity on the remote side.
type RemoteID int64

// LocalOrRemoteID holds exactly one of a local or a remote id.
type LocalOrRemoteID struct {
	local    LocalID
	remote   RemoteID
	isRemote bool
}

// Local returns a LocalOrRemoteID keyed by a local id.
func Local(id LocalID) LocalOrRemoteID {
	return LocalOrRemoteID{local: id}
}

// Remote returns a LocalOrRemoteID keyed by a remote id.
func Remote(id RemoteID) LocalOrRemoteID {
	return LocalOrRemoteID{remote: id, isRemote: true}
}

// Local returns the local id if this is keyed locally.
func (l LocalOrRemoteID) Local() (LocalID, bool) {
	return l.local, !l.isRemote
}

// Remote returns the remote id if this is keyed remotely.
func (l LocalOrRemoteID) Remote() (RemoteID, bool) {
	return l.remote, l.isRemote
}

func (l LocalOrRemoteID) String() string {
	if l.isRemote {
		return fmt.Sprintf("remote:%d", l.remote)
	}
	return fmt.Sprintf("local:%d", l.local)
}

// Item is a rendered list item descriptor. It is implemented by Row,
// LoadingItem and EndListIndicator only.
type Item interface {
	ids() IDs
}

// Row is a fully resolved row.
type Row struct {
	LocalID  LocalID
	RemoteID RemoteID
	Title    string
	Excerpt  string
}

func (r Row) ids() IDs {
	return IDs{Local: r.LocalID, HasLocal: true, Remote: r.RemoteID, HasRemote: true}
}

// LoadingItem is a placeholder for a row whose data is still being loaded.
type LoadingItem struct {
	ID LocalOrRemoteID
}

func (l LoadingItem) ids() IDs {
	if id, ok := l.ID.Remote(); ok {
		return IDs{Remote: id, HasRemote: true}
	}
	id, _ := l.ID.Local()
	return IDs{Local: id, HasLocal: true}
}

// EndListIndicator terminates the list.
type EndListIndicator struct{}

func (EndListIndicator) ids() IDs {
	return IDs{}
}

// IDs is the pair of optional ids an Item is known by.
type IDs struct {
	Local     LocalID
	HasLocal  bool
	Remote    RemoteID
	HasRemote bool
}

// IDsOf returns the ids of item. A nil item has none.
func IDsOf(item Item) IDs {
	if item == nil {
		return IDs{}
	}
	return item.ids()
}

// SameRow reports whether a and b represent the same logical row: both have a
// local id and the local ids are equal, or both have a remote id and the remote
// ids are equal.
func SameRow(a, b Item) bool {
	x, y := IDsOf(a), IDsOf(b)
	if x.HasLocal && y.HasLocal && x.Local == y.Local {
		return true
	}
	if x.HasRemote && y.HasRemote && x.Remote == y.Remote {
		return true
	}
	return false
}
