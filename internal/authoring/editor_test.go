package authoring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/default-user/world-engine/internal/geom"
	"github.com/default-user/world-engine/internal/ids"
	"github.com/default-user/world-engine/internal/worldkernel"
)

func at(x float64) geom.Transform {
	tr := geom.Identity()
	tr.Position = geom.Vec3{X: x}
	return tr
}

func TestSpawnUndoRedoFullCycleS5(t *testing.T) {
	w := worldkernel.New(1)
	e := NewEditor()
	id := ids.New()
	t0 := at(1)

	require.NoError(t, e.Apply(NewSpawn(id, t0), w))
	_, ok := w.Get(id)
	require.True(t, ok)

	require.NoError(t, e.Undo(w))
	_, ok = w.Get(id)
	require.False(t, ok)

	require.NoError(t, e.Redo(w))
	got, ok := w.Get(id)
	require.True(t, ok)
	require.Equal(t, t0, got.Transform)

	other := ids.New()
	require.NoError(t, e.Apply(NewSpawn(other, at(2)), w))
	require.False(t, e.CanRedo())
}

func TestTransformUndoChainS6(t *testing.T) {
	w := worldkernel.New(1)
	e := NewEditor()
	id := ids.New()
	t0, t1, t2 := at(0), at(1), at(2)

	require.NoError(t, e.Apply(NewSpawn(id, t0), w))
	require.NoError(t, e.Apply(NewSetTransform(id, t0, t1), w))
	require.NoError(t, e.Apply(NewSetTransform(id, t1, t2), w))

	require.NoError(t, e.Undo(w))
	got, _ := w.Get(id)
	require.Equal(t, t1, got.Transform)

	require.NoError(t, e.Undo(w))
	got, _ = w.Get(id)
	require.Equal(t, t0, got.Transform)

	require.NoError(t, e.Undo(w))
	_, ok := w.Get(id)
	require.False(t, ok)
}

func TestUndoEmptyStackFails(t *testing.T) {
	w := worldkernel.New(1)
	e := NewEditor()
	require.ErrorIs(t, e.Undo(w), ErrNothingToUndo)
}

func TestRedoEmptyStackFails(t *testing.T) {
	w := worldkernel.New(1)
	e := NewEditor()
	require.ErrorIs(t, e.Redo(w), ErrNothingToRedo)
}

func TestApplyUndoRedoEqualsApplyInvariant6(t *testing.T) {
	w := worldkernel.New(1)
	e := NewEditor()
	id := ids.New()

	require.NoError(t, e.Apply(NewSpawn(id, at(5)), w))
	afterApply, _ := w.Get(id)

	require.NoError(t, e.Undo(w))
	require.NoError(t, e.Redo(w))

	afterCycle, ok := w.Get(id)
	require.True(t, ok)
	require.Equal(t, afterApply, afterCycle)
}

func TestApplyFailureLeavesStacksUntouched(t *testing.T) {
	w := worldkernel.New(1)
	e := NewEditor()
	unknown := ids.New()

	err := e.Apply(NewDespawn(unknown, at(0)), w)
	require.ErrorIs(t, err, worldkernel.ErrEntityNotFound)
	require.Equal(t, 0, e.Depth())
	require.False(t, e.CanRedo())
}

func TestInverseOfInverseIsIdentity(t *testing.T) {
	id := ids.New()
	cmd := NewSetTransform(id, at(0), at(1))
	require.Equal(t, cmd, cmd.Inverse().Inverse())

	spawnCmd := NewSpawn(id, at(0))
	require.Equal(t, spawnCmd, spawnCmd.Inverse().Inverse())
}
