package persist

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/default-user/world-engine/internal/eventlog"
	"github.com/default-user/world-engine/internal/geom"
	"github.com/default-user/world-engine/internal/snapshot"
	"github.com/default-user/world-engine/internal/worldkernel"
)

func TestSaveLoadSnapshotRoundTrips(t *testing.T) {
	dir := t.TempDir()
	w := worldkernel.New(42)
	w.Spawn(geom.Identity())
	w.Step()
	w.DrainEvents()

	snap, err := snapshot.Capture(w)
	require.NoError(t, err)
	require.NoError(t, SaveSnapshot(dir, snap))

	loaded, err := LoadSnapshot(dir)
	require.NoError(t, err)
	require.Equal(t, snap.Tick, loaded.Tick)
	require.Equal(t, snap.Seed, loaded.Seed)
	require.Equal(t, snap.Fingerprint, loaded.Fingerprint)
	require.True(t, loaded.Verify())
}

func TestLoadSnapshotMissingFileReturnsSentinel(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadSnapshot(dir)
	require.ErrorIs(t, err, ErrNoSnapshotFile)
}

func TestSaveLoadEventsRoundTrips(t *testing.T) {
	dir := t.TempDir()
	w := worldkernel.New(7)
	id := w.Spawn(geom.Identity())
	w.Step()
	_, err := w.SetTransform(id, geom.Transform{Position: geom.Vec3{X: 3}, Rotation: geom.IdentityQuat, Scale: geom.One3})
	require.NoError(t, err)

	log := eventlog.New()
	for _, e := range w.DrainEvents() {
		log.Append(e)
	}
	require.NoError(t, SaveEvents(dir, log))

	loaded, err := LoadEvents(dir)
	require.NoError(t, err)
	require.Equal(t, log.Len(), loaded.Len())
	require.Equal(t, log.All(), loaded.All())
}

func TestLoadEventsMissingFileIsEmptyLog(t *testing.T) {
	dir := t.TempDir()
	log, err := LoadEvents(dir)
	require.NoError(t, err)
	require.Equal(t, 0, log.Len())
}
