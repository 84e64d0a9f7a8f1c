package slot_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pagedlist.dev/listdiff/bindings/go/slot"
)

type post struct {
	Title string
}

func TestSlotVariants(t *testing.T) {
	r := require.New(t)

	m := slot.Marker[post, int64]("A")
	r.Equal(slot.KindMarker, m.Kind())
	r.True(m.IsMarker())
	id, ok := m.MarkerID()
	r.True(ok)
	r.Equal(slot.MarkerID("A"), id)
	_, ok = m.RemoteID()
	r.False(ok)
	_, ok = m.Entity()
	r.False(ok)

	ro := slot.RemoteOnly[post, int64](200)
	r.Equal(slot.KindRemoteOnly, ro.Kind())
	rid, ok := ro.RemoteID()
	r.True(ok)
	r.Equal(int64(200), rid)
	_, ok = ro.Entity()
	r.False(ok)
	_, ok = ro.MarkerID()
	r.False(ok)

	l := slot.Loaded[post, int64](post{Title: "hello"})
	r.Equal(slot.KindLoaded, l.Kind())
	e, ok := l.Entity()
	r.True(ok)
	r.Equal("hello", e.Title)
	_, ok = l.RemoteID()
	r.False(ok)

	u := slot.Unresolved[post, int64]()
	r.Equal(slot.KindLoaded, u.Kind())
	_, ok = u.Entity()
	r.False(ok)
}

func TestZeroSlotIsUnresolved(t *testing.T) {
	var s slot.Slot[*post, string]
	r := require.New(t)
	r.Equal(slot.KindLoaded, s.Kind())
	_, ok := s.Entity()
	r.False(ok)
}

func TestLoadedNilPointerIsResolved(t *testing.T) {
	// a nil pointer handed in explicitly is still a concrete value
	s := slot.Loaded[*post, string](nil)
	e, ok := s.Entity()
	require.True(t, ok)
	require.Nil(t, e)
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		s    slot.Slot[string, string]
		want string
	}{
		{"marker", slot.Marker[string, string]("sep"), "Marker(sep)"},
		{"remote", slot.RemoteOnly[string, string]("r1"), "RemoteOnly(r1)"},
		{"loaded", slot.Loaded[string, string]("x"), "Loaded(x)"},
		{"unresolved", slot.Unresolved[string, string](), "Loaded(<absent>)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.s.String())
		})
	}
	require.Equal(t, "Kind(7)", slot.Kind(7).String())
}
