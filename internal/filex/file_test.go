package filex

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "a", "b", "vault.json")

	dir, err := EnsureParentDir(path)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "a", "b"), dir)
	require.DirExists(t, dir)

	// relative path without directory part is a no-op
	dir, err = EnsureParentDir("vault.json")
	require.NoError(t, err)
	require.Equal(t, ".", dir)
}
