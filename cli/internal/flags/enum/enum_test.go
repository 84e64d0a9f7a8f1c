package enum_test

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"pagedlist.dev/listdiff/cli/internal/flags/enum"
)

func TestEnum(t *testing.T) {
	r := require.New(t)
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	enum.VarP(fs, "output", "o", []string{"table", "yaml"}, "output format")
	fs.Bool("plain", false, "")

	v, err := enum.Get(fs, "output")
	r.NoError(err)
	r.Equal("table", v)

	r.NoError(fs.Parse([]string{"-o", "yaml"}))
	v, err = enum.Get(fs, "output")
	r.NoError(err)
	r.Equal("yaml", v)

	r.ErrorContains(fs.Set("output", "xml"), "must be one of table|yaml")
	r.Contains(fs.Lookup("output").Usage, "{table|yaml}")

	_, err = enum.Get(fs, "missing")
	r.Error(err)
	_, err = enum.Get(fs, "plain")
	r.ErrorContains(err, "of type bool")
}
