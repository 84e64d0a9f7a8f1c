package rowid_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagedlist.dev/listdiff/bindings/go/diff"
	"pagedlist.dev/listdiff/bindings/go/rowid"
)

var _ diff.Callback = rowid.Callback{}

func TestSameRow(t *testing.T) {
	row := rowid.Row{LocalID: 5, RemoteID: 200, Title: "hello"}

	tests := []struct {
		name string
		a, b rowid.Item
		want bool
	}{
		{"loading by local id against row", rowid.LoadingItem{ID: rowid.Local(5)}, row, true},
		{"loading by remote id against row", rowid.LoadingItem{ID: rowid.Remote(200)}, row, true},
		{"row against loading by remote id", row, rowid.LoadingItem{ID: rowid.Remote(200)}, true},
		{"loading by other local id", rowid.LoadingItem{ID: rowid.Local(6)}, row, false},
		{"loading by remote id against end of list", rowid.LoadingItem{ID: rowid.Remote(200)}, rowid.EndListIndicator{}, false},
		{"end of list against end of list", rowid.EndListIndicator{}, rowid.EndListIndicator{}, false},
		{"local and remote id space are distinct", rowid.LoadingItem{ID: rowid.Local(200)}, rowid.LoadingItem{ID: rowid.Remote(200)}, false},
		{"rows with same local id", row, rowid.Row{LocalID: 5, RemoteID: 999}, true},
		{"rows with same remote id", row, rowid.Row{LocalID: 1, RemoteID: 200}, true},
		{"rows sharing nothing", row, rowid.Row{LocalID: 1, RemoteID: 2}, false},
		{"nil item", nil, row, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rowid.SameRow(tt.a, tt.b))
		})
	}
}

func TestIDsOf(t *testing.T) {
	r := require.New(t)
	r.Equal(rowid.IDs{Local: 5, HasLocal: true}, rowid.IDsOf(rowid.LoadingItem{ID: rowid.Local(5)}))
	r.Equal(rowid.IDs{Remote: 9, HasRemote: true}, rowid.IDsOf(rowid.LoadingItem{ID: rowid.Remote(9)}))
	r.Equal(rowid.IDs{Local: 1, HasLocal: true, Remote: 2, HasRemote: true}, rowid.IDsOf(rowid.Row{LocalID: 1, RemoteID: 2}))
	r.Equal(rowid.IDs{}, rowid.IDsOf(rowid.EndListIndicator{}))
	r.Equal(rowid.IDs{}, rowid.IDsOf(nil))

	id, ok := rowid.Remote(3).Remote()
	r.True(ok)
	r.Equal(rowid.RemoteID(3), id)
	_, ok = rowid.Remote(3).Local()
	r.False(ok)
	r.Equal("local:4", rowid.Local(4).String())
	r.Equal("remote:3", rowid.Remote(3).String())
}

func TestCallbackDrivesDiff(t *testing.T) {
	old := []rowid.Item{
		rowid.Row{LocalID: 1, RemoteID: 100, Title: "one"},
		rowid.LoadingItem{ID: rowid.Remote(200)},
		rowid.EndListIndicator{},
	}
	updated := []rowid.Item{
		rowid.Row{LocalID: 1, RemoteID: 100, Title: "one"},
		rowid.Row{LocalID: 2, RemoteID: 200, Title: "two"},
		rowid.EndListIndicator{},
	}
	res, err := diff.Calculate(context.Background(), rowid.Callback{Old: old, New: updated})
	r := require.New(t)
	r.NoError(err)
	r.Equal([]diff.Edit{
		{Op: diff.Keep, OldIndex: 0, NewIndex: 0},
		{Op: diff.Update, OldIndex: 1, NewIndex: 1, Changed: true},
		{Op: diff.Remove, OldIndex: 2, NewIndex: -1},
		{Op: diff.Insert, OldIndex: -1, NewIndex: 2},
	}, res.Edits())

	applied, err := diff.Apply(old, updated, res.Operations())
	r.NoError(err)
	r.Equal(updated, applied)
}
