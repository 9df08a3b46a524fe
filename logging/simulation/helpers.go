// Package simulation publishes logging events for the stepping loop: tick
// advancement and checkpoint/rollback bookkeeping.
package simulation

import (
	"context"

	"github.com/default-user/world-engine/logging"
)

const (
	// EventWorldStepped is emitted after every successful World.Step.
	EventWorldStepped logging.EventType = "simulation.world_stepped"
	// EventCheckpointCreated is emitted after a SnapshotStore.Checkpoint.
	EventCheckpointCreated logging.EventType = "simulation.checkpoint_created"
	// EventRolledBack is emitted after a SnapshotStore.Rollback.
	EventRolledBack logging.EventType = "simulation.rolled_back"
)

// WorldSteppedPayload captures the new seed produced by a step.
type WorldSteppedPayload struct {
	NewSeed uint64 `json:"newSeed"`
}

// WorldStepped publishes a world-stepped event.
func WorldStepped(ctx context.Context, pub logging.Publisher, tick uint64, payload WorldSteppedPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventWorldStepped,
		Tick:     tick,
		Severity: logging.SeverityDebug,
		Category: "simulation",
		Payload:  payload,
	})
}

// CheckpointPayload captures the fingerprint recorded by a checkpoint.
type CheckpointPayload struct {
	Fingerprint uint64 `json:"fingerprint"`
}

// CheckpointCreated publishes a checkpoint-created event.
func CheckpointCreated(ctx context.Context, pub logging.Publisher, tick uint64, payload CheckpointPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventCheckpointCreated,
		Tick:     tick,
		Severity: logging.SeverityInfo,
		Category: "simulation",
		Payload:  payload,
	})
}

// RolledBack publishes a rollback event.
func RolledBack(ctx context.Context, pub logging.Publisher, tick uint64) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventRolledBack,
		Tick:     tick,
		Severity: logging.SeverityWarn,
		Category: "simulation",
	})
}
