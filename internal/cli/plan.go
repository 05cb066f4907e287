package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/questdeck/questdeck/internal/plan"
	"github.com/questdeck/questdeck/internal/quest"
	"github.com/questdeck/questdeck/internal/store"
)

// PlanOptions holds flags for the plan command.
type PlanOptions struct {
	*RootOptions
	Database string
	Packs    string
}

// NewPlanCommand creates the plan command.
func NewPlanCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlanOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "plan <plan.yaml>",
		Short: "Run a YAML draw plan",
		Long: `Run a YAML draw plan: an ordered list of pool draws executed with one
seeded random source and one shared used-id set, producing a complete
document trace. The same plan file always produces the same trace.

With --db the run binds to a session (the plan's session token, or a
fresh UUIDv7), so an interrupted document resumes without repeats.

Example:
  questdeck plan worksheets/monday.yaml
  questdeck plan worksheets/monday.yaml --db deck.db --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite session database")
	cmd.Flags().StringVar(&opts.Packs, "packs", "", "directory of CUE pool packs to load")

	return cmd
}

func runPlan(opts *PlanOptions, planPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	p, err := plan.LoadPlan(planPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load plan", err)
	}
	formatter.VerboseLog("Loaded plan %q (%d draw(s), seed %d)", p.Name, len(p.Draws), p.Seed)

	reg, err := buildRegistry(opts.Packs)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to build registry", err)
	}

	runOpts := plan.Options{Registry: reg}
	if opts.Database != "" {
		st, err := store.Open(opts.Database)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open database", err)
		}
		defer func() {
			if closeErr := st.Close(); closeErr != nil {
				slog.Error("error closing database", "error", closeErr)
			}
		}()
		runOpts.Store = st
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := plan.Run(ctx, p, runOpts)
	if err != nil {
		var selErr *quest.SelectError
		if errors.As(err, &selErr) {
			_ = formatter.Error(string(selErr.Code), selErr.Message, nil)
			return NewExitError(ExitFailure, selErr.Message)
		}
		return WrapExitError(ExitCommandError, "plan run failed", err)
	}

	return outputPlanResult(formatter, result)
}

func outputPlanResult(formatter *OutputFormatter, result *plan.Result) error {
	if formatter.Format == "json" {
		snap, err := result.Snapshot()
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to serialize result", err)
		}
		fmt.Fprintln(formatter.Writer, string(snap))
		return nil
	}

	fmt.Fprintf(formatter.Writer, "%s (seed %d)\n", result.PlanName, result.Seed)
	if result.Session != "" {
		fmt.Fprintf(formatter.Writer, "session: %s\n", result.Session)
	}
	fmt.Fprintln(formatter.Writer)

	for _, pick := range result.Picks {
		line := fmt.Sprintf("  %-8s %s  %s", pick.Pool, pick.ID, pick.Text)
		if len(pick.Tags) > 0 {
			line += fmt.Sprintf("  [%s]", strings.Join(pick.Tags, ","))
		}
		if pick.Repeat {
			line += "  (repeat)"
		}
		fmt.Fprintln(formatter.Writer, line)
	}
	return nil
}
