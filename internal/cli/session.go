package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/questdeck/questdeck/internal/plan"
	"github.com/questdeck/questdeck/internal/store"
)

// SessionOptions holds flags shared by the session subcommands.
type SessionOptions struct {
	*RootOptions
	Database string
	Seed     int64

	// Tokens allows overriding token generation (for testing).
	// If nil, defaults to UUIDv7Generator.
	Tokens plan.TokenGenerator
}

// SessionInfo is the JSON payload for session show.
type SessionInfo struct {
	Token string     `json:"token"`
	Seed  int64      `json:"seed"`
	Used  int        `json:"used"`
	Items []UsedItem `json:"items,omitempty"`
}

// UsedItem is one recorded draw in session show output.
type UsedItem struct {
	Seq    int64  `json:"seq"`
	Pool   string `json:"pool"`
	ItemID string `json:"item_id"`
}

// NewSessionCommand creates the session command group.
func NewSessionCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SessionOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage used-item sessions",
		Long: `Manage sessions: durable used-item tracking across CLI invocations.

A session ties a token to a seed and the set of items already handed
out, so repeated picks against the same session never repeat content
until a pool is exhausted.`,
	}

	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to SQLite session database (required)")
	_ = cmd.MarkPersistentFlagRequired("db")

	cmd.AddCommand(newSessionNewCommand(opts))
	cmd.AddCommand(newSessionShowCommand(opts))
	cmd.AddCommand(newSessionResetCommand(opts))

	return cmd
}

func newSessionNewCommand(opts *SessionOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a session and print its token",
		Long: `Create a session with a fresh UUIDv7 token and print the token.

Example:
  questdeck session new --db deck.db --seed 42`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSessionNew(opts, cmd)
		},
	}

	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "session seed (default: current time)")

	return cmd
}

func newSessionShowCommand(opts *SessionOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show <token>",
		Short:         "Show a session's seed and recorded draws",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSessionShow(opts, args[0], cmd)
		},
	}
}

func newSessionResetCommand(opts *SessionOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "reset <token>",
		Short:         "Delete a session and its used-item history",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSessionReset(opts, args[0], cmd)
		},
	}
}

// openSessionStore opens the session database for a subcommand.
func openSessionStore(opts *SessionOptions) (*store.Store, error) {
	st, err := store.Open(opts.Database)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}
	return st, nil
}

func closeSessionStore(st *store.Store) {
	if err := st.Close(); err != nil {
		slog.Error("error closing database", "error", err)
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func runSessionNew(opts *SessionOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	st, err := openSessionStore(opts)
	if err != nil {
		return err
	}
	defer closeSessionStore(st)

	seed := opts.Seed
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}

	gen := opts.Tokens
	if gen == nil {
		gen = plan.UUIDv7Generator{}
	}
	token := gen.Generate()

	if err := st.CreateSession(commandContext(cmd), token, seed); err != nil {
		return WrapExitError(ExitCommandError, "failed to create session", err)
	}
	slog.Info("session created", "session", token, "seed", seed)

	if formatter.Format == "json" {
		return formatter.Success(SessionInfo{Token: token, Seed: seed})
	}
	fmt.Fprintln(formatter.Writer, token)
	return nil
}

func runSessionShow(opts *SessionOptions, token string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	st, err := openSessionStore(opts)
	if err != nil {
		return err
	}
	defer closeSessionStore(st)

	ctx := commandContext(cmd)

	seed, err := st.SessionSeed(ctx, token)
	if errors.Is(err, store.ErrSessionNotFound) {
		_ = formatter.Error("SESSION_NOT_FOUND", fmt.Sprintf("session %q not found", token), nil)
		return NewExitError(ExitFailure, fmt.Sprintf("session %q not found", token))
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read session", err)
	}

	items, err := st.UsedItems(ctx, token)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read used items", err)
	}

	info := SessionInfo{Token: token, Seed: seed, Used: len(items)}
	for _, it := range items {
		info.Items = append(info.Items, UsedItem{Seq: it.Seq, Pool: it.Pool, ItemID: it.ItemID})
	}

	if formatter.Format == "json" {
		return formatter.Success(info)
	}

	fmt.Fprintf(formatter.Writer, "session: %s\n", info.Token)
	fmt.Fprintf(formatter.Writer, "seed:    %d\n", info.Seed)
	fmt.Fprintf(formatter.Writer, "used:    %d\n", info.Used)
	for _, it := range info.Items {
		fmt.Fprintf(formatter.Writer, "  %3d  %-8s %s\n", it.Seq, it.Pool, it.ItemID)
	}
	return nil
}

func runSessionReset(opts *SessionOptions, token string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	st, err := openSessionStore(opts)
	if err != nil {
		return err
	}
	defer closeSessionStore(st)

	if err := st.DeleteSession(commandContext(cmd), token); err != nil {
		return WrapExitError(ExitCommandError, "failed to delete session", err)
	}
	slog.Info("session deleted", "session", token)

	if formatter.Format == "json" {
		return formatter.Success(map[string]string{"deleted": token})
	}
	fmt.Fprintf(formatter.Writer, "deleted %s\n", token)
	return nil
}
