// Package worldschema reflects the persisted wire types — Snapshot and
// WorldEvent — into JSON Schema documents for tooling and documentation.
package worldschema

import (
	"github.com/invopop/jsonschema"

	"github.com/default-user/world-engine/internal/snapshot"
	"github.com/default-user/world-engine/internal/worldkernel"
)

// SnapshotSchema reflects snapshot.Snapshot into a JSON Schema document.
func SnapshotSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: false,
		DoNotReference:             true,
	}
	schema := reflector.Reflect(new(snapshot.Snapshot))
	schema.Title = "World Engine Snapshot"
	schema.Description = "Content-addressed, point-in-time capture of world state."
	return schema
}

// WorldEventSchema reflects worldkernel.WorldEvent into a JSON Schema
// document.
func WorldEventSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: false,
		DoNotReference:             true,
	}
	schema := reflector.Reflect(new(worldkernel.WorldEvent))
	schema.Title = "World Engine Event"
	schema.Description = "A single tagged variant of the event-sourced mutation log."
	return schema
}
