package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand_DumpsCanonicalJSON(t *testing.T) {
	out, err := execute(t, "expand", "--pool", "proof")
	require.NoError(t, err)

	var dump struct {
		Pool   string `json:"pool"`
		Prefix string `json:"prefix"`
		Items  []struct {
			ID   string   `json:"id"`
			Text string   `json:"text"`
			Tags []string `json:"tags"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &dump))

	assert.Equal(t, "proof", dump.Pool)
	assert.Equal(t, "P", dump.Prefix)
	assert.GreaterOrEqual(t, len(dump.Items), 100)
	assert.Equal(t, "P001", dump.Items[0].ID)
}

func TestExpand_ByteStable(t *testing.T) {
	out1, err := execute(t, "expand", "--pool", "quest")
	require.NoError(t, err)
	out2, err := execute(t, "expand", "--pool", "quest")
	require.NoError(t, err)

	assert.Equal(t, out1, out2)
}

func TestExpand_UnknownPool(t *testing.T) {
	_, err := execute(t, "expand", "--pool", "riddle")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "riddle")
}
