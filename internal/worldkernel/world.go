// Package worldkernel owns the authoritative simulation state: the entity
// table, the deterministic tick/seed counters, and the event-sourced
// mutation log that every other subsystem (persistence, authoring, the
// spatial index) derives from. Every exported mutator (Spawn, SpawnWith,
// Despawn, SetTransform, Step) appends exactly one WorldEvent describing what
// changed; Replay and ResetFrom rebuild state and append none.
package worldkernel

import (
	"github.com/default-user/world-engine/internal/geom"
	"github.com/default-user/world-engine/internal/ids"
	"github.com/default-user/world-engine/internal/prng"
)

// ComponentTag names a slot in an EntityData's component map.
type ComponentTag string

// ComponentPayload is an opaque, round-tripping value associated with a
// component tag. The v0.1 kernel never inspects component contents.
type ComponentPayload any

// EntityData is the per-entity record owned by World.
type EntityData struct {
	ID         ids.EntityID                       `json:"id"`
	Transform  geom.Transform                      `json:"transform"`
	Components map[ComponentTag]ComponentPayload   `json:"components,omitempty"`
}

func cloneEntityData(e EntityData) EntityData {
	cloned := e
	if e.Components != nil {
		cloned.Components = make(map[ComponentTag]ComponentPayload, len(e.Components))
		for k, v := range e.Components {
			cloned.Components[k] = v
		}
	}
	return cloned
}

// World is the tuple (E, T, tick, seed, pending): an insertion-ordered
// entity table, the tick counter, the PRNG state, and the pending event
// queue awaiting drain.
type World struct {
	order   []ids.EntityID
	entities map[ids.EntityID]EntityData
	tick    uint64
	seed    uint64
	pending []WorldEvent
}

// New constructs an empty world at tick 0 with the given initial seed.
func New(seed uint64) *World {
	return &World{
		entities: make(map[ids.EntityID]EntityData),
		tick:     0,
		seed:     seed,
		pending:  nil,
	}
}

// Tick returns the current tick counter.
func (w *World) Tick() uint64 { return w.tick }

// Seed returns the current PRNG state.
func (w *World) Seed() uint64 { return w.seed }

// Len returns the number of live entities.
func (w *World) Len() int { return len(w.order) }

// Get returns a copy of the entity data for id, and whether it was present.
// The returned copy's Components map is itself a fresh copy, so mutating it
// cannot corrupt the world — callers that want to change an entity must go
// through SetTransform or the authoring layer.
func (w *World) Get(id ids.EntityID) (EntityData, bool) {
	e, ok := w.entities[id]
	if !ok {
		return EntityData{}, false
	}
	return cloneEntityData(e), true
}

// All returns a copy of every entity, in insertion order. This order is
// deterministic and stable across identical histories, since fingerprinting
// depends on it.
func (w *World) All() []EntityData {
	out := make([]EntityData, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, cloneEntityData(w.entities[id]))
	}
	return out
}

// ForEach iterates entities in insertion order, stopping early if fn
// returns false.
func (w *World) ForEach(fn func(EntityData) bool) {
	for _, id := range w.order {
		if !fn(cloneEntityData(w.entities[id])) {
			return
		}
	}
}

// Spawn creates a new entity with a fresh v4 id and appends a Spawned
// event. The id is generated until a non-colliding value is found, though
// a collision is astronomically unlikely.
func (w *World) Spawn(transform geom.Transform) ids.EntityID {
	var id ids.EntityID
	for {
		id = ids.New()
		if _, exists := w.entities[id]; !exists {
			break
		}
	}
	w.insert(id, transform)
	w.pending = append(w.pending, newSpawnedEvent(id, transform, w.tick))
	return id
}

// SpawnWith creates a new entity with a caller-supplied id, failing with
// ErrEntityAlreadyExists if the id is already live.
func (w *World) SpawnWith(id ids.EntityID, transform geom.Transform) error {
	if _, exists := w.entities[id]; exists {
		return ErrEntityAlreadyExists
	}
	w.insert(id, transform)
	w.pending = append(w.pending, newSpawnedEvent(id, transform, w.tick))
	return nil
}

func (w *World) insert(id ids.EntityID, transform geom.Transform) {
	w.entities[id] = EntityData{ID: id, Transform: transform}
	w.order = append(w.order, id)
}

// Despawn removes an entity, returning the transform it had just before
// removal. Fails with ErrEntityNotFound if the id is absent.
func (w *World) Despawn(id ids.EntityID) (geom.Transform, error) {
	e, ok := w.entities[id]
	if !ok {
		return geom.Transform{}, ErrEntityNotFound
	}
	w.remove(id)
	w.pending = append(w.pending, newDespawnedEvent(id, e.Transform, w.tick))
	return e.Transform, nil
}

func (w *World) remove(id ids.EntityID) {
	delete(w.entities, id)
	for i, existing := range w.order {
		if existing == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// SetTransform replaces an entity's transform, returning the previous
// value. Fails with ErrEntityNotFound if the id is absent.
func (w *World) SetTransform(id ids.EntityID, newTransform geom.Transform) (geom.Transform, error) {
	e, ok := w.entities[id]
	if !ok {
		return geom.Transform{}, ErrEntityNotFound
	}
	old := e.Transform
	e.Transform = newTransform
	w.entities[id] = e
	w.pending = append(w.pending, newTransformSetEvent(id, old, newTransform, w.tick))
	return old, nil
}

// Step advances the tick by one and the seed by prng.NextSeed, appending a
// Stepped event.
func (w *World) Step() {
	w.tick++
	newState, _ := prng.NextSeed(w.seed)
	w.seed = newState
	w.pending = append(w.pending, newSteppedEvent(w.tick, w.seed))
}

// RestoreFrom constructs a world directly from persisted state — the tick,
// seed, and entities captured by a snapshot — with an empty pending log. It
// is the counterpart to All()/Tick()/Seed() used by internal/snapshot to
// implement Snapshot.Restore without going through Spawn (which would emit
// events for history that already happened).
func RestoreFrom(tick, seed uint64, entities []EntityData) *World {
	w := New(seed)
	w.tick = tick
	for _, e := range entities {
		cloned := cloneEntityData(e)
		w.entities[cloned.ID] = cloned
		w.order = append(w.order, cloned.ID)
	}
	return w
}

// ResetFrom overwrites w's entire state with other's, in place. This is how
// SnapshotStore.Rollback satisfies "replaces *world" without every caller
// having to track a fresh pointer: the World value callers already hold
// keeps working after rollback.
func (w *World) ResetFrom(other *World) {
	w.order = other.order
	w.entities = other.entities
	w.tick = other.tick
	w.seed = other.seed
	w.pending = other.pending
}

// DrainEvents removes and returns all pending events in order. It has no
// other effect on the world.
func (w *World) DrainEvents() []WorldEvent {
	if len(w.pending) == 0 {
		return nil
	}
	drained := w.pending
	w.pending = nil
	return drained
}
