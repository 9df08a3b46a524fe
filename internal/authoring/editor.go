package authoring

import (
	"github.com/pkg/errors"

	"github.com/default-user/world-engine/internal/worldkernel"
)

// Editor owns the undo and redo stacks and is the only sanctioned path for
// authoring mutations onto a world. Direct mutation of the world outside
// Editor.Apply does not touch these stacks and silently invalidates the
// semantic meaning of Redo; callers that bypass the editor and still want
// correct undo/redo behavior should call InvalidateRedo themselves.
type Editor struct {
	undo []EditCommand
	redo []EditCommand
}

// NewEditor constructs an Editor with empty stacks.
func NewEditor() *Editor {
	return &Editor{}
}

// Depth returns the number of commands on the undo stack.
func (e *Editor) Depth() int { return len(e.undo) }

// CanUndo reports whether Undo would succeed.
func (e *Editor) CanUndo() bool { return len(e.undo) > 0 }

// CanRedo reports whether Redo would succeed.
func (e *Editor) CanRedo() bool { return len(e.redo) > 0 }

// InvalidateRedo clears the redo stack. Call this after any direct world
// mutation that bypassed Apply, to avoid redoing a command against state it
// no longer agrees with.
func (e *Editor) InvalidateRedo() {
	e.redo = nil
}

// Apply executes cmd against w. On success, cmd is pushed onto the undo
// stack and the redo stack is cleared. On failure, neither stack is
// modified and the error propagates.
func (e *Editor) Apply(cmd EditCommand, w *worldkernel.World) error {
	if err := applyToWorld(cmd, w); err != nil {
		return err
	}
	e.undo = append(e.undo, cmd)
	e.redo = nil
	return nil
}

// Undo pops the last applied command, applies its inverse, and pushes the
// original command onto the redo stack. Fails with ErrNothingToUndo if the
// undo stack is empty.
func (e *Editor) Undo(w *worldkernel.World) error {
	if len(e.undo) == 0 {
		return ErrNothingToUndo
	}
	last := e.undo[len(e.undo)-1]
	if err := applyToWorld(last.Inverse(), w); err != nil {
		return errors.Wrap(err, "authoring: undo")
	}
	e.undo = e.undo[:len(e.undo)-1]
	e.redo = append(e.redo, last)
	return nil
}

// Redo pops the last undone command, re-applies it, and pushes it back onto
// the undo stack. Fails with ErrNothingToRedo if the redo stack is empty.
func (e *Editor) Redo(w *worldkernel.World) error {
	if len(e.redo) == 0 {
		return ErrNothingToRedo
	}
	last := e.redo[len(e.redo)-1]
	if err := applyToWorld(last, w); err != nil {
		return errors.Wrap(err, "authoring: redo")
	}
	e.redo = e.redo[:len(e.redo)-1]
	e.undo = append(e.undo, last)
	return nil
}

func applyToWorld(cmd EditCommand, w *worldkernel.World) error {
	switch cmd.Kind {
	case CommandSpawn:
		if cmd.Spawn == nil {
			return ErrUnknownCommandKind
		}
		return w.SpawnWith(cmd.Spawn.ID, cmd.Spawn.Transform)
	case CommandDespawn:
		if cmd.Despawn == nil {
			return ErrUnknownCommandKind
		}
		_, err := w.Despawn(cmd.Despawn.ID)
		return err
	case CommandSetTransform:
		if cmd.SetTransform == nil {
			return ErrUnknownCommandKind
		}
		_, err := w.SetTransform(cmd.SetTransform.ID, cmd.SetTransform.New)
		return err
	default:
		return ErrUnknownCommandKind
	}
}
