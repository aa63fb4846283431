// Package storage abstracts where a vault file lives. Backends move opaque
// bytes; migration and encryption are applied uniformly above this layer.
// Every failure is wrapped with common.ErrPersistence so callers never
// inspect backend-specific error shapes.
package storage

import (
	"context"
	"time"
)

// Gateway reads and writes one vault document.
type Gateway interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}

// FileInfo describes one remote vault file.
type FileInfo struct {
	ID           string
	Name         string
	ModifiedTime time.Time
}

// Lister is implemented by backends that can enumerate vault files
// (cloud storage only).
type Lister interface {
	List(ctx context.Context) ([]FileInfo, error)
}
