package worldkernel

import "github.com/pkg/errors"

// Sentinel errors form the closed error taxonomy for the world kernel.
// Callers should compare with errors.Is; call sites elsewhere in the module
// wrap these with github.com/pkg/errors to add context without breaking
// that comparison (pkg/errors.Wrap implements Unwrap).
var (
	// ErrEntityNotFound is returned when an operation addresses an entity
	// id that is not present in the world.
	ErrEntityNotFound = errors.New("worldkernel: entity not found")

	// ErrEntityAlreadyExists is returned by SpawnWith when the caller's id
	// already names a live entity.
	ErrEntityAlreadyExists = errors.New("worldkernel: entity already exists")

	// ErrReplayInconsistent is returned by Replay when the event sequence
	// cannot be validly applied to the current world state.
	ErrReplayInconsistent = errors.New("worldkernel: replay inconsistent")
)
