// Package ids defines the entity identifier type shared across the world
// kernel, the persistence layer, and the authoring layer.
package ids

import (
	"github.com/google/uuid"
)

// EntityID is a 128-bit v4 UUID naming a single entity. Equality and hashing
// are by full value; New never returns the zero value.
type EntityID uuid.UUID

// Nil is the zero-value EntityID, used as a sentinel for "no entity".
var Nil EntityID

// New generates a fresh random (v4) EntityID. Collisions are astronomically
// unlikely and are not checked here; World.Spawn and World.SpawnWith check
// uniqueness against the live entity set.
func New() EntityID {
	return EntityID(uuid.New())
}

// Parse decodes the canonical string form of an EntityID.
func Parse(s string) (EntityID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return Nil, err
	}
	return EntityID(u), nil
}

// String renders the canonical 8-4-4-4-12 hex form.
func (id EntityID) String() string {
	return uuid.UUID(id).String()
}

// IsNil reports whether id is the zero value.
func (id EntityID) IsNil() bool {
	return id == Nil
}

// MarshalText implements encoding.TextMarshaler so codecs built on
// encoding/json-compatible marshalers (see internal/codec) round-trip ids as
// their canonical string form rather than a raw byte array.
func (id EntityID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *EntityID) UnmarshalText(text []byte) error {
	parsed, err := uuid.Parse(string(text))
	if err != nil {
		return err
	}
	*id = EntityID(parsed)
	return nil
}
