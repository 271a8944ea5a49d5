// Package objstore abstracts the object storage backend used for all
// persistence: one small JSON object per key, read and replaced as a whole.
package objstore

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by Get when no object exists at the key.
	ErrNotFound = errors.New("object not found")
	// ErrAlreadyExists is returned by PutIfAbsent when an object is already
	// present at the key.
	ErrAlreadyExists = errors.New("object already exists")
)

// Store is a minimal whole-object storage contract. Put is a blind
// overwrite (last writer wins); PutIfAbsent is a conditional create that
// fails atomically when the key is taken.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	PutIfAbsent(ctx context.Context, key string, data []byte) error
	Exists(ctx context.Context, key string) (bool, error)
}
