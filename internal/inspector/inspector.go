// Package inspector implements the read-only projection over a world that
// tools and editor UI consume: a thin wrapper that never mutates and never
// holds an independent copy of the world it was built from.
package inspector

import (
	"github.com/default-user/world-engine/internal/ids"
	"github.com/default-user/world-engine/internal/worldkernel"
)

// Inspector is a read-only view over a world. It holds no state of its own
// beyond the pointer to the world it was built from.
type Inspector struct {
	world *worldkernel.World
}

// New wraps w for read-only inspection.
func New(w *worldkernel.World) *Inspector {
	return &Inspector{world: w}
}

// EntityCount returns the number of live entities.
func (i *Inspector) EntityCount() int { return i.world.Len() }

// Tick returns the world's current tick.
func (i *Inspector) Tick() uint64 { return i.world.Tick() }

// Seed returns the world's current PRNG state.
func (i *Inspector) Seed() uint64 { return i.world.Seed() }

// EntityIDs returns every live entity id, in insertion order.
func (i *Inspector) EntityIDs() []ids.EntityID {
	all := i.world.All()
	out := make([]ids.EntityID, len(all))
	for idx, e := range all {
		out[idx] = e.ID
	}
	return out
}

// Entity returns a copy of the named entity's data, and whether it exists.
func (i *Inspector) Entity(id ids.EntityID) (worldkernel.EntityData, bool) {
	return i.world.Get(id)
}

// ForEach iterates every entity in insertion order, stopping early if fn
// returns false. This is the stable iteration order a renderer or other
// display collaborator should feed from.
func (i *Inspector) ForEach(fn func(worldkernel.EntityData) bool) {
	i.world.ForEach(fn)
}
