package samerow

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	slogcontext "github.com/veqryn/slog-context"

	"pagedlist.dev/listdiff/bindings/go/rowid"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "same-row {item} {item}",
		Short: "Check whether two list item descriptors represent the same row",
		Long: `Check whether two list item descriptors represent the same row and print true or false.

An item descriptor is one of
	row:local={id},remote={id}   a resolved row
	loading:local={id}           a row that is loaded by its local id
	loading:remote={id}          a row that is loaded by its remote id
	end                          the end of list indicator

Two items are the same row if they share a local id or a remote id.`,
		Example: strings.TrimSpace(`
same-row loading:local=5 row:local=5,remote=200
same-row loading:remote=200 end
`),
		Args:              cobra.ExactArgs(2),
		RunE:              SameRow,
		DisableAutoGenTag: true,
	}
	return cmd
}

func SameRow(cmd *cobra.Command, args []string) error {
	a, err := ParseItem(args[0])
	if err != nil {
		return err
	}
	b, err := ParseItem(args[1])
	if err != nil {
		return err
	}
	same := rowid.SameRow(a, b)
	slogcontext.FromCtx(cmd.Context()).DebugContext(cmd.Context(), "compared rows",
		"a", fmt.Sprintf("%+v", a), "b", fmt.Sprintf("%+v", b), "same", same)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(same))
	return err
}

// ParseItem parses an item descriptor.
func ParseItem(raw string) (rowid.Item, error) {
	kind, rest, _ := strings.Cut(raw, ":")
	switch kind {
	case "end":
		if rest != "" {
			return nil, fmt.Errorf("item %q: end takes no attributes", raw)
		}
		return rowid.EndListIndicator{}, nil
	case "row":
		attrs, err := parseAttributes(raw, rest)
		if err != nil {
			return nil, err
		}
		local, okLocal := attrs["local"]
		remote, okRemote := attrs["remote"]
		if !okLocal || !okRemote || len(attrs) != 2 {
			return nil, fmt.Errorf("item %q: a row needs exactly a local and a remote id", raw)
		}
		return rowid.Row{LocalID: rowid.LocalID(local), RemoteID: rowid.RemoteID(remote)}, nil
	case "loading":
		attrs, err := parseAttributes(raw, rest)
		if err != nil {
			return nil, err
		}
		if len(attrs) != 1 {
			return nil, fmt.Errorf("item %q: a loading item needs exactly one of a local or a remote id", raw)
		}
		if id, ok := attrs["local"]; ok {
			return rowid.LoadingItem{ID: rowid.Local(rowid.LocalID(id))}, nil
		}
		return rowid.LoadingItem{ID: rowid.Remote(rowid.RemoteID(attrs["remote"]))}, nil
	default:
		return nil, fmt.Errorf("item %q: unknown kind %q, expected row, loading or end", raw, kind)
	}
}

func parseAttributes(raw, rest string) (map[string]int64, error) {
	attrs := map[string]int64{}
	if rest == "" {
		return attrs, nil
	}
	for _, pair := range strings.Split(rest, ",") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("item %q: attribute %q is not of the form key=value", raw, pair)
		}
		if key != "local" && key != "remote" {
			return nil, fmt.Errorf("item %q: unknown attribute %q", raw, key)
		}
		if _, dup := attrs[key]; dup {
			return nil, fmt.Errorf("item %q: duplicate attribute %q", raw, key)
		}
		id, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("item %q: invalid %s id: %w", raw, key, err)
		}
		attrs[key] = id
	}
	return attrs, nil
}
