package version

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"pagedlist.dev/listdiff/cli/internal/flags/enum"
	"pagedlist.dev/listdiff/cli/internal/version"
)

const (
	FlagFormat            = "format"
	FlagFormatShortHand   = "f"
	FlagFormatJSON        = "json"
	FlagFormatYAML        = "yaml"
	FlagFormatGoBuildInfo = "gobuildinfo"
)

// BuildVersion overrides the module version of the build info if set through -ldflags.
var BuildVersion = ""

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Retrieve the version of the listdiff CLI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := enum.Get(cmd.Flags(), FlagFormat)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if format == FlagFormatGoBuildInfo {
				bi, ok := debug.ReadBuildInfo()
				if !ok {
					return fmt.Errorf("no build info available")
				}
				_, err = io.Copy(out, strings.NewReader(bi.String()))
				return err
			}

			info, err := version.Get(BuildVersion)
			if err != nil {
				return err
			}
			switch format {
			case FlagFormatJSON:
				return json.NewEncoder(out).Encode(info)
			case FlagFormatYAML:
				data, err := yaml.Marshal(info)
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			default:
				return fmt.Errorf("unknown format %q", format)
			}
		},
		DisableAutoGenTag: true,
		SilenceUsage:      true,
	}

	enum.VarP(cmd.Flags(), FlagFormat, FlagFormatShortHand, []string{FlagFormatJSON, FlagFormatYAML, FlagFormatGoBuildInfo}, "format of the version information")
	return cmd
}
