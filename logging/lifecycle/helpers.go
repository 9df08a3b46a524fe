// Package lifecycle publishes logging events for entity spawn and despawn.
package lifecycle

import (
	"context"

	"github.com/default-user/world-engine/internal/geom"
	"github.com/default-user/world-engine/internal/ids"
	"github.com/default-user/world-engine/logging"
)

const (
	// EventEntitySpawned is emitted when an entity enters the world.
	EventEntitySpawned logging.EventType = "lifecycle.entity_spawned"
	// EventEntityDespawned is emitted when an entity leaves the world.
	EventEntityDespawned logging.EventType = "lifecycle.entity_despawned"
)

// EntityKind tags an EntityRef as belonging to the kernel's entity space.
const EntityKind logging.EntityKind = "entity"

// SpawnedPayload captures the transform an entity was spawned with.
type SpawnedPayload struct {
	Transform geom.Transform `json:"transform"`
}

// DespawnedPayload captures the last known transform of a despawned entity.
type DespawnedPayload struct {
	LastTransform geom.Transform `json:"lastTransform"`
}

// Ref builds the EntityRef used by spawn/despawn events.
func Ref(id ids.EntityID) logging.EntityRef {
	return logging.EntityRef{Kind: EntityKind, ID: id.String()}
}

// Spawned publishes an entity-spawned event.
func Spawned(ctx context.Context, pub logging.Publisher, tick uint64, id ids.EntityID, payload SpawnedPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventEntitySpawned,
		Tick:     tick,
		Actor:    Ref(id),
		Severity: logging.SeverityInfo,
		Category: "lifecycle",
		Payload:  payload,
	})
}

// Despawned publishes an entity-despawned event.
func Despawned(ctx context.Context, pub logging.Publisher, tick uint64, id ids.EntityID, payload DespawnedPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventEntityDespawned,
		Tick:     tick,
		Actor:    Ref(id),
		Severity: logging.SeverityInfo,
		Category: "lifecycle",
		Payload:  payload,
	})
}
