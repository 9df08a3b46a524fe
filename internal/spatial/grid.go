// Package spatial implements the planar grid partition used for locality
// queries over world entities. Cells are keyed by floor(position / cell
// size) on the XZ plane (Y is ignored); a reverse entity-to-cell index
// gives O(1) removal and update.
package spatial

import (
	"math"

	"github.com/default-user/world-engine/internal/geom"
	"github.com/default-user/world-engine/internal/ids"
)

// CellCoord identifies a cell in the XZ plane.
type CellCoord struct {
	I, J int32
}

// entitySet is the set of entity ids within a single cell.
type entitySet map[ids.EntityID]struct{}

// GridPartition maps cell coordinates to the entities currently in them. It
// is a derived index: it has no independent source of truth and is rebuilt
// from a world snapshot on demand.
type GridPartition struct {
	cellSize float64
	cells    map[CellCoord]entitySet
	index    map[ids.EntityID]CellCoord
}

// New constructs an empty grid with the given cell size, which must be > 0.
func New(cellSize float64) *GridPartition {
	if cellSize <= 0 {
		panic("spatial: cell size must be > 0")
	}
	return &GridPartition{
		cellSize: cellSize,
		cells:    make(map[CellCoord]entitySet),
		index:    make(map[ids.EntityID]CellCoord),
	}
}

// CellOf computes the cell coordinate containing pos. The Y axis is ignored:
// this is a planar partition of the XZ plane.
func (g *GridPartition) CellOf(pos geom.Vec3) CellCoord {
	return CellCoord{
		I: int32(math.Floor(pos.X / g.cellSize)),
		J: int32(math.Floor(pos.Z / g.cellSize)),
	}
}

// EntityPosition is the minimal view Rebuild needs from a world: an id and
// the position to key it by. Callers map World.All() into this shape so the
// grid package stays independent of worldkernel's EntityData layout.
type EntityPosition struct {
	ID  ids.EntityID
	Pos geom.Vec3
}

// Rebuild clears the grid and reinserts every given entity, keyed by its
// position. O(n) in entity count.
func (g *GridPartition) Rebuild(entities []EntityPosition) {
	g.cells = make(map[CellCoord]entitySet)
	g.index = make(map[ids.EntityID]CellCoord)
	for _, e := range entities {
		g.Insert(e.ID, e.Pos)
	}
}

// Insert adds or relocates an entity at pos, removing it from its prior
// cell first if present.
func (g *GridPartition) Insert(id ids.EntityID, pos geom.Vec3) {
	if old, tracked := g.index[id]; tracked {
		g.detach(id, old)
	}
	cell := g.CellOf(pos)
	bucket, ok := g.cells[cell]
	if !ok {
		bucket = make(entitySet)
		g.cells[cell] = bucket
	}
	bucket[id] = struct{}{}
	g.index[id] = cell
}

// Remove drops an entity from the grid entirely. A no-op if untracked.
func (g *GridPartition) Remove(id ids.EntityID) {
	cell, tracked := g.index[id]
	if !tracked {
		return
	}
	g.detach(id, cell)
}

func (g *GridPartition) detach(id ids.EntityID, cell CellCoord) {
	if bucket, ok := g.cells[cell]; ok {
		delete(bucket, id)
		if len(bucket) == 0 {
			delete(g.cells, cell)
		}
	}
	delete(g.index, id)
}

// Update relocates id to newPos. A no-op if the destination cell matches the
// entity's current cell.
func (g *GridPartition) Update(id ids.EntityID, newPos geom.Vec3) {
	newCell := g.CellOf(newPos)
	if old, tracked := g.index[id]; tracked && old == newCell {
		return
	}
	g.Insert(id, newPos)
}

// EntitiesInCell returns the ids currently occupying coord.
func (g *GridPartition) EntitiesInCell(coord CellCoord) []ids.EntityID {
	bucket, ok := g.cells[coord]
	if !ok {
		return nil
	}
	out := make([]ids.EntityID, 0, len(bucket))
	for id := range bucket {
		out = append(out, id)
	}
	return out
}

// EntitiesInRadius returns the union of entities in every cell intersecting
// the axis-aligned XZ square of side 2r centered on center. This may be a
// superset of the true radius result; exact filtering is the caller's
// responsibility. r <= 0 returns only the cell containing center.
func (g *GridPartition) EntitiesInRadius(center geom.Vec3, r float64) []ids.EntityID {
	centerCell := g.CellOf(center)
	if r <= 0 {
		return g.EntitiesInCell(centerCell)
	}

	span := int32(math.Ceil(r / g.cellSize))
	seen := make(map[ids.EntityID]struct{})
	var out []ids.EntityID
	for di := -span; di <= span; di++ {
		for dj := -span; dj <= span; dj++ {
			coord := CellCoord{I: centerCell.I + di, J: centerCell.J + dj}
			bucket, ok := g.cells[coord]
			if !ok {
				continue
			}
			for id := range bucket {
				if _, dup := seen[id]; dup {
					continue
				}
				seen[id] = struct{}{}
				out = append(out, id)
			}
		}
	}
	return out
}
