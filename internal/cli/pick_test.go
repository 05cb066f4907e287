package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPick_DeterministicWithSeed(t *testing.T) {
	out1, err := execute(t, "pick", "--pool", "quest", "--seed", "42")
	require.NoError(t, err)
	out2, err := execute(t, "pick", "--pool", "quest", "--seed", "42")
	require.NoError(t, err)

	assert.Equal(t, out1, out2)
	assert.Regexp(t, `^Q\d{3,}`, out1)
}

func TestPick_JSONOutput(t *testing.T) {
	out, err := execute(t, "--format", "json", "pick", "--pool", "note", "--tags", "calm", "--seed", "7")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "note", data["pool"])
	assert.Contains(t, data["tags"], "calm")
}

func TestPick_UnknownPool(t *testing.T) {
	out, err := execute(t, "pick", "--pool", "riddle", "--seed", "1")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "UNKNOWN_POOL")
}

func TestPick_EmptyCandidates(t *testing.T) {
	out, err := execute(t, "pick", "--pool", "quest", "--tags", "no-such-tag", "--seed", "1")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "EMPTY_CANDIDATES")
}

func TestPick_MissingPoolFlag(t *testing.T) {
	_, err := execute(t, "pick")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pool")
}

func TestPick_SessionWithoutDB(t *testing.T) {
	_, err := execute(t, "pick", "--pool", "quest", "--session", "tok")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestPick_SessionTracksUsedItems(t *testing.T) {
	db := filepath.Join(t.TempDir(), "deck.db")

	// Draw from the same session repeatedly. With used-item tracking
	// the session never hands out the same ID twice this early.
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		out, err := execute(t, "--format", "json",
			"pick", "--pool", "quest", "--db", db, "--session", "morning", "--seed", "5")
		require.NoError(t, err)

		var resp CLIResponse
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		data := resp.Data.(map[string]interface{})
		id := data["id"].(string)

		assert.False(t, seen[id], "session repeated %s", id)
		seen[id] = true
	}
}
