// Package store implements the checkpoint-plus-pending-events pair that
// owns the durable record of a world's history: SnapshotStore. A checkpoint
// is a fingerprinted Snapshot; the events appended since are the pending
// log replayed on top of it.
package store

import (
	"github.com/pkg/errors"

	"github.com/default-user/world-engine/internal/eventlog"
	"github.com/default-user/world-engine/internal/snapshot"
	"github.com/default-user/world-engine/internal/worldkernel"
)

// SnapshotStore owns the latest checkpoint and the event log of mutations
// that have happened since. Its correctness invariant — world equivalent to
// latest.Restore() then Replay(log) — holds after every Flush, because
// Flush is the only path from pending into log and Checkpoint clears the
// log whenever it replaces latest.
type SnapshotStore struct {
	latest *snapshot.Snapshot
	log    *eventlog.EventLog
}

// New constructs an empty store: no snapshot yet, an empty log.
func New() *SnapshotStore {
	return &SnapshotStore{log: eventlog.New()}
}

// Latest returns the current checkpoint, or nil if none has been taken.
func (s *SnapshotStore) Latest() *snapshot.Snapshot { return s.latest }

// Log returns the store's event log.
func (s *SnapshotStore) Log() *eventlog.EventLog { return s.log }

// Checkpoint captures a fresh snapshot of w, replaces the store's latest
// snapshot, and clears the log — the new snapshot already accounts for
// everything that happened up to this point, including w's pending events,
// which are drained (and discarded, having been absorbed into the
// snapshot) as part of this call.
func (s *SnapshotStore) Checkpoint(w *worldkernel.World) error {
	captured, err := snapshot.Capture(w)
	if err != nil {
		return errors.Wrap(err, "store: checkpoint")
	}
	s.latest = captured
	s.log.Clear()
	w.DrainEvents()
	return nil
}

// Flush drains w's pending events into the log and returns how many were
// flushed.
func (s *SnapshotStore) Flush(w *worldkernel.World) int {
	events := w.DrainEvents()
	for _, event := range events {
		s.log.Append(event)
	}
	return len(events)
}

// Rollback discards w's current state and replaces it, in place, with the
// latest checkpoint restored, clearing the log. Fails with ErrNoSnapshot if
// no checkpoint has ever been taken.
func (s *SnapshotStore) Rollback(w *worldkernel.World) error {
	if s.latest == nil {
		return ErrNoSnapshot
	}
	w.ResetFrom(s.latest.Restore())
	s.log.Clear()
	return nil
}

// ReplayLatest restores the latest checkpoint into a fresh world and
// applies every event in the log on top of it. Fails with ErrNoSnapshot if
// there is no checkpoint, or with worldkernel.ErrReplayInconsistent
// (wrapped) if the log is corrupt relative to the snapshot.
func (s *SnapshotStore) ReplayLatest() (*worldkernel.World, error) {
	if s.latest == nil {
		return nil, ErrNoSnapshot
	}
	w := s.latest.Restore()
	if err := w.Replay(s.log.All()); err != nil {
		return nil, errors.Wrap(err, "store: replay latest")
	}
	return w, nil
}
