package snapshot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"pagedlist.dev/listdiff/bindings/go/slot"
	"pagedlist.dev/listdiff/cli/internal/snapshot"
)

func TestDecode(t *testing.T) {
	r := require.New(t)
	v, err := snapshot.Decode([]byte(`
items:
- marker: drafts
- entity: {id: 1, title: hello}
- remoteId: "200"
- unresolved: true
`))
	r.NoError(err)
	r.Equal(4, v.Size())

	slots := v.Slots()
	r.Equal(slot.KindMarker, slots[0].Kind())
	e, ok := slots[1].Entity()
	r.True(ok)
	r.Equal("hello", e["title"])
	id, ok := slots[2].RemoteID()
	r.True(ok)
	r.Equal("200", id)
	_, ok = slots[3].Entity()
	r.False(ok)
	r.Equal(slot.KindLoaded, slots[3].Kind())

	for _, s := range slots {
		back, err := snapshot.ItemFromSlot(s).Slot()
		r.NoError(err)
		r.Equal(s.String(), back.String())
	}
}

func TestDecodeJSON(t *testing.T) {
	v, err := snapshot.Decode([]byte(`{"items": [{"marker": "A"}, {"remoteId": "r1"}]}`))
	require.NoError(t, err)
	require.Equal(t, 2, v.Size())
}

func TestDecodeReportsAllInvalidItems(t *testing.T) {
	_, err := snapshot.Decode([]byte(`
items:
- marker: a
  remoteId: b
- {}
- entity: {}
`))
	require.ErrorIs(t, err, snapshot.ErrInvalidItem)
	require.ErrorContains(t, err, "item 0")
	require.ErrorContains(t, err, "item 1")
	require.NotContains(t, err.Error(), "item 2")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items:\n- marker: A\n"), 0o600))
	v, err := snapshot.Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, v.Size())

	_, err = snapshot.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestSameIdentity(t *testing.T) {
	same := snapshot.SameIdentity([]string{"kind", "id"})
	r := require.New(t)
	r.True(same(snapshot.Entity{"kind": "post", "id": 1, "title": "a"}, snapshot.Entity{"kind": "post", "id": 1, "title": "b"}))
	r.False(same(snapshot.Entity{"kind": "post", "id": 1}, snapshot.Entity{"kind": "page", "id": 1}))
	r.False(same(snapshot.Entity{"id": 1}, snapshot.Entity{"id": 1}), "missing identity keys never match")

	id, ok := snapshot.Identity(snapshot.Entity{"id": 1.0}, []string{"id"})
	r.True(ok)
	r.Equal(map[string]string{"id": "1"}, id)
}
