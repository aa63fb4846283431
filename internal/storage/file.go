package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/finkeeper/internal/common"
	"github.com/dmitrijs2005/finkeeper/internal/filex"
)

// FileGateway persists the vault in a local file. Writes go through a
// temporary file plus rename so a crash mid-save never leaves a truncated
// vault behind.
type FileGateway struct {
	path string
}

func NewFileGateway(path string) *FileGateway {
	return &FileGateway{path: path}
}

func (g *FileGateway) Path() string { return g.path }

func (g *FileGateway) Read(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(g.path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", common.ErrPersistence, g.path, err)
	}
	return data, nil
}

func (g *FileGateway) Write(_ context.Context, data []byte) error {
	if _, err := filex.EnsureParentDir(g.path); err != nil {
		return fmt.Errorf("%w: %w", common.ErrPersistence, err)
	}

	dir := filepath.Dir(g.path)
	tmp, err := os.CreateTemp(dir, ".vault-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %w", common.ErrPersistence, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: writing %s: %w", common.ErrPersistence, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing %s: %w", common.ErrPersistence, tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: chmod %s: %w", common.ErrPersistence, tmpName, err)
	}
	if err := os.Rename(tmpName, g.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replacing %s: %w", common.ErrPersistence, g.path, err)
	}
	return nil
}
