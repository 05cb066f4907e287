package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// StatsOptions holds flags for the stats command.
type StatsOptions struct {
	*RootOptions
	Packs string
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StatsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show pool sizes",
		Long: `Show the item count of every registered pool, built-ins plus any
loaded packs.

Example:
  questdeck stats
  questdeck stats --packs ./packs --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Packs, "packs", "", "directory of CUE pool packs to load")

	return cmd
}

func runStats(opts *StatsOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	reg, err := buildRegistry(opts.Packs)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to build registry", err)
	}

	stats := reg.Stats()

	if formatter.Format == "json" {
		return formatter.Success(stats)
	}

	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(formatter.Writer, "%-12s %d\n", name, stats[name])
	}
	return nil
}
