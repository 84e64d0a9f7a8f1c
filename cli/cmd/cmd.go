package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"pagedlist.dev/listdiff/cli/cmd/compare"
	"pagedlist.dev/listdiff/cli/cmd/samerow"
	"pagedlist.dev/listdiff/cli/cmd/setup/hooks"
	"pagedlist.dev/listdiff/cli/cmd/version"
	v1 "pagedlist.dev/listdiff/cli/configuration/v1"
	"pagedlist.dev/listdiff/cli/internal/flags/log"
)

// Execute runs the root command. It is called by main.main().
func Execute() {
	err := New().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listdiff [sub-command]",
		Short: "Compare snapshots of paged lists",
		Long: `The listdiff command line client computes the updates between two snapshots of a paged,
  partially loaded list without loading anything that is not already present.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: hooks.PreRunE,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
	}

	v1.RegisterConfigFlag(cmd)
	log.RegisterLoggingFlags(cmd.PersistentFlags())
	cmd.AddCommand(compare.New())
	cmd.AddCommand(samerow.New())
	cmd.AddCommand(version.New())
	return cmd
}
