package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/questdeck/questdeck/internal/quest"
	"github.com/questdeck/questdeck/internal/store"
)

// PickOptions holds flags for the pick command.
type PickOptions struct {
	*RootOptions
	Pool     string
	Tags     []string
	Seed     int64
	Database string
	Session  string
	Packs    string
}

// PickResult is the JSON payload for a single pick.
type PickResult struct {
	Pool    string   `json:"pool"`
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Tags    []string `json:"tags,omitempty"`
	Repeat  bool     `json:"repeat,omitempty"`
	Session string   `json:"session,omitempty"`
}

// NewPickCommand creates the pick command.
func NewPickCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PickOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick one item from a pool",
		Long: `Pick one item from a content pool, optionally filtered by tags.

Without --db the pick is stateless. With --db and --session, used items
are tracked across invocations: the same session never repeats an item
until the filtered pool is exhausted.

Example:
  questdeck pick --pool quest --tags movement,count
  questdeck pick --pool note --db deck.db --session morning --seed 42`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Pool, "pool", "", "pool to pick from (required)")
	cmd.Flags().StringSliceVar(&opts.Tags, "tags", nil, "restrict to items with any of these tags")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "random seed (default: current time)")
	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite session database")
	cmd.Flags().StringVar(&opts.Session, "session", "", "session token for used-item tracking")
	cmd.Flags().StringVar(&opts.Packs, "packs", "", "directory of CUE pool packs to load")
	_ = cmd.MarkFlagRequired("pool")

	return cmd
}

func runPick(opts *PickOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if opts.Session != "" && opts.Database == "" {
		return NewExitError(ExitCommandError, "--session requires --db")
	}

	reg, err := buildRegistry(opts.Packs)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to build registry", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	seed := opts.Seed
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}

	used := make(map[string]bool)
	var st *store.Store
	var seq int64
	if opts.Database != "" {
		st, err = store.Open(opts.Database)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open database", err)
		}
		defer func() {
			if closeErr := st.Close(); closeErr != nil {
				slog.Error("error closing database", "error", closeErr)
			}
		}()

		if opts.Session == "" {
			return NewExitError(ExitCommandError, "--db requires --session")
		}

		used, seq, seed, err = resumeOrCreateSession(ctx, st, opts.Session, seed, cmd.Flags().Changed("seed"))
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to bind session", err)
		}
	}

	src := quest.NewSeededSource(seed)
	sel, err := reg.Pick(opts.Pool, used, src, opts.Tags)
	if err != nil {
		return outputPickError(formatter, err)
	}

	if st != nil {
		if err := st.MarkUsed(ctx, opts.Session, sel.Item.ID, opts.Pool, seq); err != nil {
			return WrapExitError(ExitCommandError, "failed to record pick", err)
		}
	}

	return outputPick(formatter, PickResult{
		Pool:    opts.Pool,
		ID:      sel.Item.ID,
		Text:    sel.Item.Text,
		Tags:    sel.Item.Tags,
		Repeat:  sel.Repeat,
		Session: opts.Session,
	})
}

// resumeOrCreateSession loads an existing session's used-id state or
// creates a fresh session. An existing session keeps its original seed
// unless the caller overrode it explicitly, preserving "same seed =
// same document" across invocations.
func resumeOrCreateSession(ctx context.Context, st *store.Store, token string, seed int64, seedSet bool) (map[string]bool, int64, int64, error) {
	exists, err := st.SessionExists(ctx, token)
	if err != nil {
		return nil, 0, 0, err
	}

	if !exists {
		if err := st.CreateSession(ctx, token, seed); err != nil {
			return nil, 0, 0, err
		}
		slog.Info("session created", "session", token, "seed", seed)
		return make(map[string]bool), 1, seed, nil
	}

	used, err := st.UsedIDs(ctx, token)
	if err != nil {
		return nil, 0, 0, err
	}
	seq, err := st.NextSeq(ctx, token)
	if err != nil {
		return nil, 0, 0, err
	}
	if !seedSet {
		seed, err = st.SessionSeed(ctx, token)
		if err != nil {
			return nil, 0, 0, err
		}
	}
	slog.Info("session resumed", "session", token, "used", len(used))
	return used, seq, seed, nil
}

// outputPickError maps selection errors to E-coded output and exit
// code 1; anything else is a command error.
func outputPickError(formatter *OutputFormatter, err error) error {
	var selErr *quest.SelectError
	if errors.As(err, &selErr) {
		_ = formatter.Error(string(selErr.Code), selErr.Message, nil)
		return NewExitError(ExitFailure, selErr.Message)
	}
	return WrapExitError(ExitCommandError, "pick failed", err)
}

func outputPick(formatter *OutputFormatter, result PickResult) error {
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	line := fmt.Sprintf("%s  %s", result.ID, result.Text)
	if len(result.Tags) > 0 {
		line += fmt.Sprintf("  [%s]", strings.Join(result.Tags, ","))
	}
	if result.Repeat {
		line += "  (repeat)"
	}
	fmt.Fprintln(formatter.Writer, line)
	return nil
}
