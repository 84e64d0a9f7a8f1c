package hooks

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	slogcontext "github.com/veqryn/slog-context"

	v1 "pagedlist.dev/listdiff/cli/configuration/v1"
	ldctx "pagedlist.dev/listdiff/cli/internal/context"
	"pagedlist.dev/listdiff/cli/internal/flags/log"
)

// PreRunE sets up the configuration and logging shared by all cli commands.
func PreRunE(cmd *cobra.Command, _ []string) error {
	cfg, err := v1.GetConfigForCommand(cmd)
	if err != nil {
		return fmt.Errorf("could not load configuration: %w", err)
	}
	if cfg == nil {
		cfg = &v1.Config{}
	}

	logger, err := log.GetBaseLogger(cmd, cfg.Logging)
	if err != nil {
		return fmt.Errorf("could not retrieve logger: %w", err)
	}
	slog.SetDefault(logger)

	ctx := slogcontext.NewCtx(cmd.Context(), logger)
	ctx = ldctx.WithConfig(ctx, cfg)
	cmd.SetContext(ctx)

	if parent := cmd.Parent(); parent != nil {
		cmd.SetOut(parent.OutOrStdout())
		cmd.SetErr(parent.ErrOrStderr())
	}

	return nil
}
