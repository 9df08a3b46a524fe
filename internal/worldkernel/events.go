package worldkernel

import (
	"github.com/default-user/world-engine/internal/geom"
	"github.com/default-user/world-engine/internal/ids"
)

// EventKind tags which variant of WorldEvent is populated. WorldEvent is a
// closed tagged union: exactly one of the variant fields below is non-nil,
// selected by Kind. Typed fields are used instead of an `any` payload since
// there are only four variants and a switch over Kind is cheaper and safer
// than a type assertion per call site.
type EventKind string

const (
	EventSpawned      EventKind = "spawned"
	EventDespawned    EventKind = "despawned"
	EventTransformSet EventKind = "transform_set"
	EventStepped      EventKind = "stepped"
)

// SpawnedPayload records an entity's creation.
type SpawnedPayload struct {
	ID        ids.EntityID   `json:"id"`
	Transform geom.Transform `json:"transform"`
	Tick      uint64         `json:"tick"`
}

// DespawnedPayload records an entity's removal and the transform it had at
// the moment of removal, so the event alone can reverse itself.
type DespawnedPayload struct {
	ID            ids.EntityID   `json:"id"`
	LastTransform geom.Transform `json:"lastTransform"`
	Tick          uint64         `json:"tick"`
}

// TransformSetPayload records a transform replacement, carrying both the
// displaced and the new value.
type TransformSetPayload struct {
	ID   ids.EntityID   `json:"id"`
	Old  geom.Transform `json:"old"`
	New  geom.Transform `json:"new"`
	Tick uint64         `json:"tick"`
}

// SteppedPayload records a tick advance and the resulting PRNG state.
type SteppedPayload struct {
	Tick    uint64 `json:"tick"`
	NewSeed uint64 `json:"newSeed"`
}

// WorldEvent is the closed, encodable record of a single world mutation.
type WorldEvent struct {
	Kind         EventKind             `json:"kind"`
	Spawned      *SpawnedPayload       `json:"spawned,omitempty"`
	Despawned    *DespawnedPayload     `json:"despawned,omitempty"`
	TransformSet *TransformSetPayload  `json:"transformSet,omitempty"`
	Stepped      *SteppedPayload       `json:"stepped,omitempty"`
}

// Tick returns the tick recorded by whichever variant is populated.
func (e WorldEvent) Tick() uint64 {
	switch e.Kind {
	case EventSpawned:
		if e.Spawned != nil {
			return e.Spawned.Tick
		}
	case EventDespawned:
		if e.Despawned != nil {
			return e.Despawned.Tick
		}
	case EventTransformSet:
		if e.TransformSet != nil {
			return e.TransformSet.Tick
		}
	case EventStepped:
		if e.Stepped != nil {
			return e.Stepped.Tick
		}
	}
	return 0
}

func newSpawnedEvent(id ids.EntityID, transform geom.Transform, tick uint64) WorldEvent {
	return WorldEvent{Kind: EventSpawned, Spawned: &SpawnedPayload{ID: id, Transform: transform, Tick: tick}}
}

func newDespawnedEvent(id ids.EntityID, lastTransform geom.Transform, tick uint64) WorldEvent {
	return WorldEvent{Kind: EventDespawned, Despawned: &DespawnedPayload{ID: id, LastTransform: lastTransform, Tick: tick}}
}

func newTransformSetEvent(id ids.EntityID, old, newTransform geom.Transform, tick uint64) WorldEvent {
	return WorldEvent{Kind: EventTransformSet, TransformSet: &TransformSetPayload{ID: id, Old: old, New: newTransform, Tick: tick}}
}

func newSteppedEvent(tick uint64, newSeed uint64) WorldEvent {
	return WorldEvent{Kind: EventStepped, Stepped: &SteppedPayload{Tick: tick, NewSeed: newSeed}}
}
