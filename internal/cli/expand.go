package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/questdeck/questdeck/internal/plan"
)

// ExpandOptions holds flags for the expand command.
type ExpandOptions struct {
	*RootOptions
	Pool  string
	Packs string
}

// NewExpandCommand creates the expand command.
func NewExpandCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExpandOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "expand",
		Short: "Dump a fully expanded pool as canonical JSON",
		Long: `Dump a pool's complete expanded item list as canonical JSON (sorted
keys, NFC strings). The output is byte-stable across runs and platforms,
so it diffs cleanly and can be committed as a fixture.

Example:
  questdeck expand --pool proof
  questdeck expand --pool riddle --packs ./packs`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpand(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Pool, "pool", "", "pool to dump (required)")
	cmd.Flags().StringVar(&opts.Packs, "packs", "", "directory of CUE pool packs to load")
	_ = cmd.MarkFlagRequired("pool")

	return cmd
}

func runExpand(opts *ExpandOptions, cmd *cobra.Command) error {
	reg, err := buildRegistry(opts.Packs)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to build registry", err)
	}

	pool, ok := reg.Pool(opts.Pool)
	if !ok {
		return NewExitError(ExitFailure, fmt.Sprintf("unknown pool %q (valid: %v)", opts.Pool, reg.Names()))
	}

	items := pool.Items()
	itemList := make([]any, len(items))
	for i, it := range items {
		itemMap := map[string]any{
			"id":   it.ID,
			"text": it.Text,
		}
		if it.Tags != nil {
			itemMap["tags"] = it.Tags
		}
		itemList[i] = itemMap
	}

	dump, err := plan.MarshalCanonical(map[string]any{
		"pool":   pool.Name(),
		"prefix": pool.Prefix(),
		"items":  itemList,
	})
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to serialize pool", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(dump))
	return nil
}
