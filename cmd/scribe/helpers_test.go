package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testWords = `8
hello
world
the
is
this
a
test
color
`

// setupConfig writes a word-list dictionary and a config pointing at it,
// and selects that config for the commands under test.
func setupConfig(t *testing.T, storePath string) string {
	t.Helper()
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "en_US.aff"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en_US.dic"), []byte(testWords), 0644))

	cfg := fmt.Sprintf("dictionary:\n  backend: wordlist\n  search_dirs: [%q]\nstore:\n  path: %q\n", dir, storePath)
	path := filepath.Join(dir, "scribe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))

	configPath = path
	quiet = false
	verbose = false
	t.Cleanup(func() { configPath = "" })
	return dir
}
