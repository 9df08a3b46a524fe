package authoring

import "github.com/pkg/errors"

var (
	// ErrNothingToUndo is returned by Editor.Undo when the undo stack is
	// empty.
	ErrNothingToUndo = errors.New("authoring: nothing to undo")

	// ErrNothingToRedo is returned by Editor.Redo when the redo stack is
	// empty.
	ErrNothingToRedo = errors.New("authoring: nothing to redo")

	// ErrUnknownCommandKind is returned when an EditCommand's Kind doesn't
	// match any populated variant field — a malformed command, never
	// produced by the constructors in this package.
	ErrUnknownCommandKind = errors.New("authoring: unknown command kind")
)
