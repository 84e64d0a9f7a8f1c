package compare

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	slogcontext "github.com/veqryn/slog-context"
	"golang.org/x/sync/errgroup"

	"pagedlist.dev/listdiff/bindings/go/diff"
	"pagedlist.dev/listdiff/bindings/go/reconcile"
	"pagedlist.dev/listdiff/bindings/go/view"
	ldctx "pagedlist.dev/listdiff/cli/internal/context"
	"pagedlist.dev/listdiff/cli/internal/flags/enum"
	"pagedlist.dev/listdiff/cli/internal/snapshot"
)

const (
	FlagOld         = "old"
	FlagNew         = "new"
	FlagOutput      = "output"
	FlagIdentityKey = "identity-key"
	FlagNoMoves     = "no-moves"
	FlagVerify      = "verify"

	DefaultIdentityKey = "id"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare --new {snapshot} [--old {snapshot}]",
		Short: "Compare two list snapshots and print the edit script between them",
		Long: `Compare two list snapshots and print the edit script that turns the old list into the new one.

A snapshot is a YAML or JSON document listing the slots of a list in order. Every item sets exactly one field:
	marker:     a section marker identified by its id
	remoteId:   a placeholder for an entity that is known only by its remote id
	entity:     a loaded entity, an arbitrary set of attributes
	unresolved: true for a loaded slot whose entity is not available

Entities match when all identity keys are present and equal. Matching entities with different attributes are reported as changed.
Without --old the old list is treated as empty.`,
		Example: strings.TrimSpace(`
compare --old before.yaml --new after.yaml
compare --old before.yaml --new after.yaml -o json --identity-key kind --identity-key id
compare --new after.yaml --no-moves -o ndjson
`),
		Args:              cobra.NoArgs,
		RunE:              Compare,
		DisableAutoGenTag: true,
	}

	cmd.Flags().String(FlagOld, "", "path to the snapshot of the old list")
	cmd.Flags().String(FlagNew, "", "path to the snapshot of the new list")
	_ = cmd.MarkFlagRequired(FlagNew)
	enum.VarP(cmd.Flags(), FlagOutput, "o", Encodings[string](), "output format of the comparison")
	cmd.Flags().StringSlice(FlagIdentityKey, []string{DefaultIdentityKey}, "entity attribute that is part of the identity, can be repeated")
	cmd.Flags().Bool(FlagNoMoves, false, "report moved entities as removal and insertion")
	cmd.Flags().Bool(FlagVerify, false, "replay the operations on the old list and fail if the result differs from the new list")

	return cmd
}

type options struct {
	oldPath, newPath string
	output           EncodingType
	identityKeys     []string
	detectMoves      bool
	verify           bool
}

// getOptions reads the flags. Flags that were not set explicitly fall back to
// the configuration file.
func getOptions(cmd *cobra.Command) (options, error) {
	var opts options
	var err error
	cfg := ldctx.Config(cmd.Context())
	flags := cmd.Flags()

	if opts.oldPath, err = flags.GetString(FlagOld); err != nil {
		return opts, fmt.Errorf("getting old flag failed: %w", err)
	}
	if opts.newPath, err = flags.GetString(FlagNew); err != nil {
		return opts, fmt.Errorf("getting new flag failed: %w", err)
	}

	output, err := enum.Get(flags, FlagOutput)
	if err != nil {
		return opts, fmt.Errorf("getting output flag failed: %w", err)
	}
	if !flags.Changed(FlagOutput) && cfg.Output != "" {
		if !slices.Contains(Encodings[string](), cfg.Output) {
			return opts, fmt.Errorf("unknown output format %q in configuration", cfg.Output)
		}
		output = cfg.Output
	}
	opts.output = EncodingType(output)

	if opts.identityKeys, err = flags.GetStringSlice(FlagIdentityKey); err != nil {
		return opts, fmt.Errorf("getting identity-key flag failed: %w", err)
	}
	if !flags.Changed(FlagIdentityKey) && len(cfg.IdentityKeys) > 0 {
		opts.identityKeys = cfg.IdentityKeys
	}
	if len(opts.identityKeys) == 0 {
		return opts, fmt.Errorf("at least one identity key is required")
	}

	noMoves, err := flags.GetBool(FlagNoMoves)
	if err != nil {
		return opts, fmt.Errorf("getting no-moves flag failed: %w", err)
	}
	opts.detectMoves = !noMoves
	if !flags.Changed(FlagNoMoves) && cfg.DetectMoves != nil {
		opts.detectMoves = *cfg.DetectMoves
	}

	if opts.verify, err = flags.GetBool(FlagVerify); err != nil {
		return opts, fmt.Errorf("getting verify flag failed: %w", err)
	}
	return opts, nil
}

func Compare(cmd *cobra.Command, _ []string) error {
	opts, err := getOptions(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	logger := slogcontext.FromCtx(ctx)

	oldSnapshot, newSnapshot, err := loadSnapshots(ctx, opts.oldPath, opts.newPath)
	if err != nil {
		return err
	}

	// an absent old list must stay a nil interface
	var oldView view.PagedEntityView[snapshot.Entity, string]
	var oldSlots []snapshot.Slot
	if oldSnapshot != nil {
		oldView = oldSnapshot
		oldSlots = oldSnapshot.Slots()
	}
	newSlots := newSnapshot.Slots()

	comparator := reconcile.New(oldView, view.PagedEntityView[snapshot.Entity, string](newSnapshot),
		snapshot.SameIdentity(opts.identityKeys),
		reconcile.EqualContent[snapshot.Entity]())

	res, err := diff.Calculate(ctx, comparator, diff.WithDetectMoves(opts.detectMoves))
	if err != nil {
		return fmt.Errorf("comparing lists failed: %w", err)
	}
	logger.InfoContext(ctx, "compared lists",
		"old", res.OldSize(), "new", res.NewSize(), "operations", len(res.Operations()))

	if opts.verify {
		if err := verify(oldSlots, newSlots, res.Operations()); err != nil {
			return err
		}
		logger.DebugContext(ctx, "verified operations")
	}

	reader, err := encodeReport(opts.output, newReport(res, oldSlots, newSlots))
	if err != nil {
		return err
	}
	if _, err := io.Copy(cmd.OutOrStdout(), reader); err != nil {
		return fmt.Errorf("writing comparison failed: %w", err)
	}
	return nil
}

// loadSnapshots reads both snapshots concurrently. The old snapshot is nil if
// no path is given.
func loadSnapshots(ctx context.Context, oldPath, newPath string) (*snapshot.View, *snapshot.View, error) {
	var oldSnapshot, newSnapshot *snapshot.View
	eg, ctx := errgroup.WithContext(ctx)
	if oldPath != "" {
		eg.Go(func() (err error) {
			oldSnapshot, err = snapshot.Load(oldPath)
			return err
		})
	}
	eg.Go(func() (err error) {
		newSnapshot, err = snapshot.Load(newPath)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}
	slogcontext.FromCtx(ctx).DebugContext(ctx, "loaded snapshots", "old", oldPath, "new", newPath)
	return oldSnapshot, newSnapshot, nil
}

// verify replays ops on the rendered old slots and compares the outcome with
// the rendered new slots.
func verify(oldSlots, newSlots []snapshot.Slot, ops []diff.Operation) error {
	render := func(slots []snapshot.Slot) []string {
		out := make([]string, len(slots))
		for i, s := range slots {
			out[i] = s.String()
		}
		return out
	}
	want := render(newSlots)
	got, err := diff.Apply(render(oldSlots), want, ops)
	if err != nil {
		return fmt.Errorf("verifying operations failed: %w", err)
	}
	if d := cmp.Diff(want, got); d != "" {
		return fmt.Errorf("verifying operations failed, replayed list differs (-want +got):\n%s", d)
	}
	return nil
}
