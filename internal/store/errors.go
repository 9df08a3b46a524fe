package store

import "github.com/pkg/errors"

// ErrNoSnapshot is returned by Rollback and ReplayLatest when no checkpoint
// has ever been taken.
var ErrNoSnapshot = errors.New("store: no snapshot")
