package cli

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_NewShowResetRoundTrip(t *testing.T) {
	db := filepath.Join(t.TempDir(), "deck.db")

	// new prints the fresh token.
	out, err := execute(t, "session", "new", "--db", db, "--seed", "42")
	require.NoError(t, err)
	token := strings.TrimSpace(out)
	_, err = uuid.Parse(token)
	require.NoError(t, err, "session new must print a UUID token")

	// show reports the seed and an empty history.
	out, err = execute(t, "session", "show", "--db", db, token)
	require.NoError(t, err)
	assert.Contains(t, out, token)
	assert.Contains(t, out, "seed:    42")
	assert.Contains(t, out, "used:    0")

	// A pick against the session shows up in the history.
	_, err = execute(t, "pick", "--pool", "quest", "--db", db, "--session", token)
	require.NoError(t, err)

	out, err = execute(t, "session", "show", "--db", db, token)
	require.NoError(t, err)
	assert.Contains(t, out, "used:    1")
	assert.Contains(t, out, "quest")

	// reset removes the session.
	_, err = execute(t, "session", "reset", "--db", db, token)
	require.NoError(t, err)

	_, err = execute(t, "session", "show", "--db", db, token)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestSession_ShowJSON(t *testing.T) {
	db := filepath.Join(t.TempDir(), "deck.db")

	out, err := execute(t, "session", "new", "--db", db, "--seed", "7")
	require.NoError(t, err)
	token := strings.TrimSpace(out)

	out, err = execute(t, "--format", "json", "session", "show", "--db", db, token)
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   SessionInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, token, resp.Data.Token)
	assert.Equal(t, int64(7), resp.Data.Seed)
}

func TestSession_ShowUnknownToken(t *testing.T) {
	db := filepath.Join(t.TempDir(), "deck.db")

	out, err := execute(t, "session", "show", "--db", db, "no-such-token")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "SESSION_NOT_FOUND")
}

func TestSession_ResetUnknownTokenIsNoOp(t *testing.T) {
	db := filepath.Join(t.TempDir(), "deck.db")

	_, err := execute(t, "session", "reset", "--db", db, "no-such-token")
	require.NoError(t, err)
}

func TestSession_MissingDBFlag(t *testing.T) {
	_, err := execute(t, "session", "new")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db")
}
