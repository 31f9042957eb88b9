package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// TileType represents the type of a tile.
type TileType int

const (
	TileEmpty TileType = iota
	TileSolid
	// TileSlopeUpRight has a 45° surface rising toward the tile's right edge.
	TileSlopeUpRight
	// TileSlopeUpLeft has a 45° surface rising toward the tile's left edge.
	TileSlopeUpLeft
	// TileBuffer is a one-way landing-assist strip placed at platform edges.
	// It carries a body only from above and never blocks sideways or upward
	// movement.
	TileBuffer
	// TileHazard damages on contact and sends the body back to its checkpoint.
	TileHazard
)

// Tile is a single cell in the stage grid.
type Tile struct {
	Type TileType
}

// Solid reports whether the tile blocks movement from every direction.
func (t Tile) Solid() bool {
	return t.Type == TileSolid || t.Type == TileHazard
}

// Sloped reports whether the tile has a diagonal surface.
func (t Tile) Sloped() bool {
	return t.Type == TileSlopeUpRight || t.Type == TileSlopeUpLeft
}

// Stage is the static collision world: a grid of tiles.
type Stage struct {
	Width    int
	Height   int
	TileSize int
	Tiles    [][]Tile
	SpawnX   float64
	SpawnY   float64
}

// TileAt returns the tile at the given tile coordinates. Out-of-bounds
// reads resolve to solid so the body can never leave the stage.
func (s *Stage) TileAt(tx, ty int) Tile {
	if tx < 0 || tx >= s.Width || ty < 0 || ty >= s.Height {
		return Tile{Type: TileSolid}
	}
	return s.Tiles[ty][tx]
}

// TileAtPoint returns the tile containing the given world point.
func (s *Stage) TileAtPoint(x, y float64) Tile {
	return s.TileAt(int(math.Floor(x/float64(s.TileSize))), int(math.Floor(y/float64(s.TileSize))))
}

// SolidAt reports whether the world point is inside blocking geometry.
// Slope tiles block only below their diagonal surface. Buffer tiles do
// not block point queries at all; their one-way behavior lives in the
// movement integration.
func (s *Stage) SolidAt(x, y float64) bool {
	tile := s.TileAtPoint(x, y)
	switch tile.Type {
	case TileSolid, TileHazard:
		return true
	case TileSlopeUpRight, TileSlopeUpLeft:
		return y >= s.SurfaceYAt(tile.Type, x, y)
	default:
		return false
	}
}

// HazardAt reports whether the world point is inside a hazard tile.
func (s *Stage) HazardAt(x, y float64) bool {
	return s.TileAtPoint(x, y).Type == TileHazard
}

// BufferAt reports whether the world point is inside a buffer tile.
func (s *Stage) BufferAt(x, y float64) bool {
	return s.TileAtPoint(x, y).Type == TileBuffer
}

// SurfaceYAt returns the Y of the diagonal surface of a slope tile in
// the column of the given point. Callers must pass a slope tile type.
func (s *Stage) SurfaceYAt(tt TileType, x, y float64) float64 {
	size := float64(s.TileSize)
	tx := math.Floor(x / size)
	ty := math.Floor(y / size)
	localX := x - tx*size
	switch tt {
	case TileSlopeUpRight:
		// Surface runs from bottom-left to top-right.
		return ty*size + (size - localX)
	case TileSlopeUpLeft:
		// Surface runs from top-left to bottom-right.
		return ty*size + localX
	default:
		return ty * size
	}
}

// SlopeNormal returns the outward surface normal of a slope tile type.
// Non-slope tiles report straight up.
func SlopeNormal(tt TileType) mgl64.Vec2 {
	const d = math.Sqrt2 / 2
	switch tt {
	case TileSlopeUpRight:
		return mgl64.Vec2{-d, -d}
	case TileSlopeUpLeft:
		return mgl64.Vec2{d, -d}
	default:
		return Up
	}
}

// PixelWidth returns the stage width in pixels.
func (s *Stage) PixelWidth() float64 {
	return float64(s.Width * s.TileSize)
}

// PixelHeight returns the stage height in pixels.
func (s *Stage) PixelHeight() float64 {
	return float64(s.Height * s.TileSize)
}
