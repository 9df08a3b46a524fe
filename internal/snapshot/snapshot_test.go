package snapshot

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/default-user/world-engine/internal/geom"
	"github.com/default-user/world-engine/internal/worldkernel"
)

func threeEntityWorld(t *testing.T) *worldkernel.World {
	t.Helper()
	w := worldkernel.New(99)
	for i := 0; i < 3; i++ {
		tr := geom.Identity()
		tr.Position = geom.Vec3{X: float64(i)}
		w.Spawn(tr)
	}
	w.DrainEvents()
	return w
}

func TestCaptureVerifies(t *testing.T) {
	w := threeEntityWorld(t)
	s, err := Capture(w)
	require.NoError(t, err)
	require.True(t, s.Verify())
}

func TestMutatingTickBreaksVerification(t *testing.T) {
	w := threeEntityWorld(t)
	s, err := Capture(w)
	require.NoError(t, err)

	s.Tick++
	require.False(t, s.Verify())
}

func TestMutatingSeedBreaksVerification(t *testing.T) {
	w := threeEntityWorld(t)
	s, err := Capture(w)
	require.NoError(t, err)

	s.Seed++
	require.False(t, s.Verify())
}

func TestMutatingEntityBreaksVerification(t *testing.T) {
	w := threeEntityWorld(t)
	s, err := Capture(w)
	require.NoError(t, err)

	s.Entities[0].Transform.Position.X += 1
	require.False(t, s.Verify())
}

func TestRestoreReproducesTickSeedEntities(t *testing.T) {
	w := threeEntityWorld(t)
	s, err := Capture(w)
	require.NoError(t, err)

	restored := s.Restore()
	require.Equal(t, w.Tick(), restored.Tick())
	require.Equal(t, w.Seed(), restored.Seed())
	require.Equal(t, w.All(), restored.All())
	require.Empty(t, restored.DrainEvents())
}
