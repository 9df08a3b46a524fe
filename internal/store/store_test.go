package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/default-user/world-engine/internal/geom"
	"github.com/default-user/world-engine/internal/worldkernel"
)

func spawnN(w *worldkernel.World, n int) {
	for i := 0; i < n; i++ {
		w.Spawn(geom.Identity())
	}
}

func TestRollbackWithoutCheckpointFails(t *testing.T) {
	s := New()
	w := worldkernel.New(1)
	err := s.Rollback(w)
	require.ErrorIs(t, err, ErrNoSnapshot)
}

func TestRollbackSemanticsS4(t *testing.T) {
	s := New()
	w := worldkernel.New(5)
	spawnN(w, 5)
	require.NoError(t, s.Checkpoint(w))
	checkpointTick := w.Tick()

	spawnN(w, 3)
	require.Equal(t, 8, w.Len())

	require.NoError(t, s.Rollback(w))
	require.Equal(t, 5, w.Len())
	require.Equal(t, checkpointTick, w.Tick())
}

func TestFlushDrainsPendingIntoLog(t *testing.T) {
	s := New()
	w := worldkernel.New(1)
	spawnN(w, 4)

	flushed := s.Flush(w)
	require.Equal(t, 4, flushed)
	require.Equal(t, 4, s.Log().Len())
	require.Empty(t, w.DrainEvents())
}

func TestReplayLatestReconstructsFlushedHistory(t *testing.T) {
	s := New()
	w := worldkernel.New(1)
	require.NoError(t, s.Checkpoint(w))

	spawnN(w, 2)
	w.Step()
	s.Flush(w)

	replayed, err := s.ReplayLatest()
	require.NoError(t, err)
	require.Equal(t, w.Tick(), replayed.Tick())
	require.Equal(t, w.Seed(), replayed.Seed())
	require.Equal(t, w.Len(), replayed.Len())
}

func TestReplayLatestWithoutCheckpointFails(t *testing.T) {
	s := New()
	_, err := s.ReplayLatest()
	require.ErrorIs(t, err, ErrNoSnapshot)
}

func TestCorrectnessInvariantAfterEveryFlush(t *testing.T) {
	s := New()
	w := worldkernel.New(123)
	require.NoError(t, s.Checkpoint(w))

	for round := 0; round < 3; round++ {
		spawnN(w, 2)
		w.Step()
		s.Flush(w)

		replayed, err := s.ReplayLatest()
		require.NoError(t, err)
		require.Equal(t, w.Tick(), replayed.Tick())
		require.Equal(t, w.Seed(), replayed.Seed())
		require.Equal(t, w.All(), replayed.All())
	}
}
