package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milden6/trie"
)

func writeDictionary(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "dictionary.txt")
	contents := "forecasts\ndifferent\nforecaster\nFore\nfore\nforecasters\nforecast\ndon't\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--dict", writeDictionary(t), "--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestContains(t *testing.T) {
	out, err := run(t, "contains", "fore", "forec", "different")
	require.NoError(t, err)
	assert.Equal(t, "fore true\nforec false\ndifferent true\n", out)
}

func TestPrefix(t *testing.T) {
	out, err := run(t, "prefix", "forec", "x")
	require.NoError(t, err)
	assert.Equal(t, "forec true\nx false\n", out)
}

func TestComplete(t *testing.T) {
	out, err := run(t, "complete", "foreca")
	require.NoError(t, err)
	assert.Equal(t, "forecast\nforecaster\nforecasters\nforecasts\n", out)
}

func TestStats(t *testing.T) {
	out, err := run(t, "stats")
	require.NoError(t, err)
	// Fore and don't are skipped
	assert.Contains(t, out, "words 6\n")
}

func TestInvalidQuery(t *testing.T) {
	_, err := run(t, "contains", "Fore")
	assert.ErrorIs(t, err, trie.ErrInvalidCharacter)
}

func TestMissingDictionary(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--dict", filepath.Join(t.TempDir(), "missing"), "stats"})
	assert.Error(t, cmd.Execute())
}
