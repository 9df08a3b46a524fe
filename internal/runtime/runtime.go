// Package runtime coordinates the world kernel, its persistence layer, its
// authoring stack, and its spatial index behind a single mutex-guarded
// entry point. Runtime's job is to keep World, SnapshotStore, Editor, and
// GridPartition moving in lockstep and to narrate that movement through a
// logging.Publisher.
package runtime

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/default-user/world-engine/internal/authoring"
	"github.com/default-user/world-engine/internal/config"
	"github.com/default-user/world-engine/internal/geom"
	"github.com/default-user/world-engine/internal/ids"
	"github.com/default-user/world-engine/internal/spatial"
	"github.com/default-user/world-engine/internal/store"
	"github.com/default-user/world-engine/internal/telemetry"
	"github.com/default-user/world-engine/internal/worldkernel"
	"github.com/default-user/world-engine/logging"
	logginglifecycle "github.com/default-user/world-engine/logging/lifecycle"
	loggingsimulation "github.com/default-user/world-engine/logging/simulation"
)

// Runtime owns a World and everything orbiting it: the snapshot store, the
// undo/redo editor, the spatial index, and the logging publisher events are
// narrated through.
type Runtime struct {
	mu sync.Mutex

	world  *worldkernel.World
	store  *store.SnapshotStore
	editor *authoring.Editor
	grid   *spatial.GridPartition

	publisher logging.Publisher
	logger    telemetry.Logger
	metrics   telemetry.Metrics
	cfg       config.Config

	ticksSinceCheckpoint int
}

// New constructs a Runtime from cfg. A nil publisher is replaced with
// logging.NopPublisher{}; a nil logger or metrics is tolerated since every
// call site checks for nil before using them.
func New(cfg config.Config, publisher logging.Publisher, logger telemetry.Logger, metrics telemetry.Metrics) *Runtime {
	if publisher == nil {
		publisher = logging.NopPublisher{}
	}
	rt := &Runtime{
		world:     worldkernel.New(cfg.InitialSeed),
		store:     store.New(),
		editor:    authoring.NewEditor(),
		grid:      spatial.New(cfg.GridCellSize),
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
		cfg:       cfg,
	}
	return rt
}

// World returns the managed world. Callers must not mutate it directly;
// all mutation flows through Runtime's methods so events, the grid, and
// telemetry stay in sync.
func (rt *Runtime) World() *worldkernel.World {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.world
}

// Spawn creates a new entity at transform and returns its id.
func (rt *Runtime) Spawn(ctx context.Context, transform geom.Transform) ids.EntityID {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	id := rt.world.Spawn(transform)
	rt.grid.Insert(id, transform.Position)
	logginglifecycle.Spawned(ctx, rt.publisher, rt.world.Tick(), id, logginglifecycle.SpawnedPayload{Transform: transform})
	return id
}

// Despawn removes id from the world, applied through the editor so the
// removal is undoable.
func (rt *Runtime) Despawn(ctx context.Context, id ids.EntityID) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	data, ok := rt.world.Get(id)
	if !ok {
		return errors.WithMessage(worldkernel.ErrEntityNotFound, "runtime despawn")
	}
	cmd := authoring.NewDespawn(id, data.Transform)
	if err := rt.editor.Apply(cmd, rt.world); err != nil {
		return err
	}
	rt.grid.Remove(id)
	logginglifecycle.Despawned(ctx, rt.publisher, rt.world.Tick(), id, logginglifecycle.DespawnedPayload{LastTransform: data.Transform})
	return nil
}

// SetTransform moves id to newTransform, applied through the editor.
func (rt *Runtime) SetTransform(ctx context.Context, id ids.EntityID, newTransform geom.Transform) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	data, ok := rt.world.Get(id)
	if !ok {
		return errors.WithMessage(worldkernel.ErrEntityNotFound, "runtime set transform")
	}
	cmd := authoring.NewSetTransform(id, data.Transform, newTransform)
	if err := rt.editor.Apply(cmd, rt.world); err != nil {
		return err
	}
	rt.grid.Update(id, newTransform.Position)
	return nil
}

// Undo reverts the last applied command via the editor.
func (rt *Runtime) Undo(ctx context.Context) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if err := rt.editor.Undo(rt.world); err != nil {
		return err
	}
	rt.syncGrid()
	return nil
}

// Redo reapplies the last undone command via the editor.
func (rt *Runtime) Redo(ctx context.Context) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if err := rt.editor.Redo(rt.world); err != nil {
		return err
	}
	rt.syncGrid()
	return nil
}

func (rt *Runtime) syncGrid() {
	entities := rt.world.All()
	positions := make([]spatial.EntityPosition, 0, len(entities))
	for _, e := range entities {
		positions = append(positions, spatial.EntityPosition{ID: e.ID, Pos: e.Transform.Position})
	}
	rt.grid.Rebuild(positions)
}

// Step advances the world by one tick, flushes the produced events into the
// store's pending log, and checkpoints if the configured interval elapsed.
func (rt *Runtime) Step(ctx context.Context) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	rt.world.Step()
	rt.store.Flush(rt.world)
	loggingsimulation.WorldStepped(ctx, rt.publisher, rt.world.Tick(), loggingsimulation.WorldSteppedPayload{NewSeed: rt.world.Seed()})
	if rt.metrics != nil {
		rt.metrics.Add("world_ticks_total", 1)
	}

	rt.ticksSinceCheckpoint++
	if rt.cfg.CheckpointIntervalTicks > 0 && rt.ticksSinceCheckpoint >= rt.cfg.CheckpointIntervalTicks {
		if err := rt.checkpointLocked(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Checkpoint forces an immediate snapshot, resetting the ticks-since-
// checkpoint counter used by Step's automatic interval.
func (rt *Runtime) Checkpoint(ctx context.Context) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.checkpointLocked(ctx)
}

func (rt *Runtime) checkpointLocked(ctx context.Context) error {
	if err := rt.store.Checkpoint(rt.world); err != nil {
		return err
	}
	rt.ticksSinceCheckpoint = 0
	latest := rt.store.Latest()
	var fingerprint uint64
	if latest != nil {
		fingerprint = latest.Fingerprint
	}
	loggingsimulation.CheckpointCreated(ctx, rt.publisher, rt.world.Tick(), loggingsimulation.CheckpointPayload{Fingerprint: fingerprint})
	if rt.metrics != nil {
		rt.metrics.Add("checkpoints_total", 1)
	}
	return nil
}

// Rollback discards pending events and restores the world to the latest
// checkpoint, rebuilding the spatial grid to match.
func (rt *Runtime) Rollback(ctx context.Context) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	discarded := rt.store.Log().Len()
	if err := rt.store.Rollback(rt.world); err != nil {
		return err
	}
	rt.ticksSinceCheckpoint = 0
	rt.editor.InvalidateRedo()
	rt.syncGrid()
	loggingsimulation.RolledBack(ctx, rt.publisher, rt.world.Tick())
	if rt.metrics != nil {
		rt.metrics.Add("rollbacks_total", 1)
	}
	if rt.logger != nil && discarded > 0 {
		rt.logger.Printf("rollback discarding %d pending events, restored tick=%d", discarded, rt.world.Tick())
	}
	return nil
}

// EntitiesNear returns the ids in every grid cell overlapping the square of
// half-side radius around center, delegating to the spatial grid. The result
// may include entities farther than radius from center.
func (rt *Runtime) EntitiesNear(center geom.Vec3, radius float64) []ids.EntityID {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.grid.EntitiesInRadius(center, radius)
}

// Store exposes the underlying snapshot store for tooling that needs to
// persist or inspect it directly.
func (rt *Runtime) Store() *store.SnapshotStore {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.store
}
