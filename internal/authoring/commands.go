// Package authoring implements non-destructive, invertible in-world editing:
// EditCommand, its inverse table, and an Editor owning undo/redo stacks.
// Every EditCommand is its own reversible unit of intent: applying it and
// then applying its inverse always returns the world to its prior state.
package authoring

import (
	"github.com/default-user/world-engine/internal/geom"
	"github.com/default-user/world-engine/internal/ids"
)

// CommandKind tags which variant of EditCommand is populated.
type CommandKind string

const (
	CommandSpawn        CommandKind = "spawn"
	CommandDespawn      CommandKind = "despawn"
	CommandSetTransform CommandKind = "set_transform"
)

// SpawnArgs spawns an entity with a caller-chosen id and transform.
type SpawnArgs struct {
	ID        ids.EntityID
	Transform geom.Transform
}

// DespawnArgs removes an entity, recording the transform it held so the
// command can invert itself into a Spawn.
type DespawnArgs struct {
	ID        ids.EntityID
	Transform geom.Transform
}

// SetTransformArgs replaces an entity's transform.
type SetTransformArgs struct {
	ID       ids.EntityID
	Old, New geom.Transform
}

// EditCommand is a closed, user-intent-level edit, applied through Editor.
type EditCommand struct {
	Kind         CommandKind
	Spawn        *SpawnArgs
	Despawn      *DespawnArgs
	SetTransform *SetTransformArgs
}

// NewSpawn constructs a Spawn command.
func NewSpawn(id ids.EntityID, transform geom.Transform) EditCommand {
	return EditCommand{Kind: CommandSpawn, Spawn: &SpawnArgs{ID: id, Transform: transform}}
}

// NewDespawn constructs a Despawn command.
func NewDespawn(id ids.EntityID, transform geom.Transform) EditCommand {
	return EditCommand{Kind: CommandDespawn, Despawn: &DespawnArgs{ID: id, Transform: transform}}
}

// NewSetTransform constructs a SetTransform command.
func NewSetTransform(id ids.EntityID, old, newTransform geom.Transform) EditCommand {
	return EditCommand{Kind: CommandSetTransform, SetTransform: &SetTransformArgs{ID: id, Old: old, New: newTransform}}
}

// Inverse returns the command that undoes cmd. Inverse(Inverse(c)) == c for
// every command, by construction of the three cases below.
func (cmd EditCommand) Inverse() EditCommand {
	switch cmd.Kind {
	case CommandSpawn:
		return NewDespawn(cmd.Spawn.ID, cmd.Spawn.Transform)
	case CommandDespawn:
		return NewSpawn(cmd.Despawn.ID, cmd.Despawn.Transform)
	case CommandSetTransform:
		return NewSetTransform(cmd.SetTransform.ID, cmd.SetTransform.New, cmd.SetTransform.Old)
	default:
		return cmd
	}
}
