package packs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePack(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

const validPack = `
pool: affirm: {
	prefix: "A"
	items: [
		{id: "A001", text: "You've got this.", tags: ["calm"]},
		{id: "A002", text: "Keep going.", tags: ["brave"]},
	]
	expand: [
		{template: "Be as steady as a %s.", values: ["rock", "oak", "river"], tags: ["calm"]},
	]
}
`

func TestLoadPacks_Valid(t *testing.T) {
	dir := t.TempDir()
	writePack(t, dir, "affirm.cue", validPack)

	result, errs := LoadPacks(dir, LoadModeFailFast)
	require.Empty(t, errs)
	require.NotNil(t, result)

	assert.Equal(t, 1, result.FileCount)
	require.Len(t, result.Pools, 1)

	pool := result.Pools[0]
	assert.Equal(t, "affirm", pool.Name())
	assert.Equal(t, 5, pool.Len())
	assert.Equal(t, "A005", pool.Items()[4].ID)
}

func TestLoadPacks_DirectoryNotFound(t *testing.T) {
	_, errs := LoadPacks("/nonexistent/packs", LoadModeFailFast)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), ErrCodeNotFound)
}

func TestLoadPacks_NoCUEFiles(t *testing.T) {
	dir := t.TempDir()
	writePack(t, dir, "readme.txt", "not a pack")

	_, errs := LoadPacks(dir, LoadModeFailFast)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), ErrCodeNoFiles)
}

func TestLoadPacks_CollectAllGathersEveryError(t *testing.T) {
	dir := t.TempDir()
	writePack(t, dir, "packs.cue", `
pool: one: {
	prefix: "O"
	items: [{id: "bad", text: "t"}]
}
pool: two: {
	items: [{id: "T001", text: "t"}]
}
pool: three: {
	prefix: "T"
	items: [{id: "T001", text: "ok"}]
}
`)

	result, errs := LoadPacks(dir, LoadModeCollectAll)
	require.NotNil(t, result)

	// Both broken pools reported, the valid one still compiled.
	assert.Len(t, errs, 2)
	assert.Len(t, result.Pools, 1)
	assert.Equal(t, "three", result.Pools[0].Name())
}

func TestLoadPacks_FailFastStopsEarly(t *testing.T) {
	dir := t.TempDir()
	writePack(t, dir, "packs.cue", `
pool: one: {
	prefix: "O"
	items: [{id: "bad", text: "t"}]
}
pool: two: {
	items: [{id: "T001", text: "t"}]
}
`)

	_, errs := LoadPacks(dir, LoadModeFailFast)
	assert.Len(t, errs, 1)
}

func TestFindCUEFiles_Recursive(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "extra")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writePack(t, dir, "a.cue", validPack)
	writePack(t, sub, "b.cue", "pool: {}")
	writePack(t, dir, "ignored.yaml", "x: 1")

	files, err := FindCUEFiles(dir)
	require.NoError(t, err)
	assert.Len(t, files, 2)
}
