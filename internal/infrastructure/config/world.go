package config

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/greyfall/stride/internal/domain/entity"
)

// BuildWorld converts a parsed stage config into the runtime collision
// world: the tile grid, the moving platforms, and the checkpoint list.
func BuildWorld(sc *StageConfig) (*entity.Stage, []*entity.MovingPlatform, []mgl64.Vec2, error) {
	if sc.Size.Width <= 0 || sc.Size.Height <= 0 || sc.Size.TileSize <= 0 {
		return nil, nil, nil, fmt.Errorf("stage %q: invalid size %dx%d tile %d",
			sc.ID, sc.Size.Width, sc.Size.Height, sc.Size.TileSize)
	}
	if len(sc.Layers.Collision) != sc.Size.Height {
		return nil, nil, nil, fmt.Errorf("stage %q: collision layer has %d rows, want %d",
			sc.ID, len(sc.Layers.Collision), sc.Size.Height)
	}

	tiles := make([][]entity.Tile, sc.Size.Height)
	for y, row := range sc.Layers.Collision {
		if len(row) != sc.Size.Width {
			return nil, nil, nil, fmt.Errorf("stage %q: row %d has %d columns, want %d",
				sc.ID, y, len(row), sc.Size.Width)
		}
		tiles[y] = make([]entity.Tile, sc.Size.Width)
		for x, ch := range row {
			tt, err := tileTypeFor(sc, ch)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("stage %q row %d col %d: %w", sc.ID, y, x, err)
			}
			tiles[y][x] = entity.Tile{Type: tt}
		}
	}

	stage := &entity.Stage{
		Width:    sc.Size.Width,
		Height:   sc.Size.Height,
		TileSize: sc.Size.TileSize,
		Tiles:    tiles,
		SpawnX:   sc.PlayerSpawn.X,
		SpawnY:   sc.PlayerSpawn.Y,
	}

	platforms := make([]*entity.MovingPlatform, 0, len(sc.Platforms))
	for i, pc := range sc.Platforms {
		if len(pc.Waypoints) < 2 {
			return nil, nil, nil, fmt.Errorf("stage %q: platform %d needs at least 2 waypoints", sc.ID, i)
		}
		waypoints := make([]mgl64.Vec2, len(pc.Waypoints))
		for j, wp := range pc.Waypoints {
			waypoints[j] = mgl64.Vec2{wp.X, wp.Y}
		}
		platforms = append(platforms, entity.NewMovingPlatform(i, pc.Width, pc.Height, pc.Speed, waypoints))
	}

	checkpoints := make([]mgl64.Vec2, len(sc.Checkpoints))
	for i, cp := range sc.Checkpoints {
		checkpoints[i] = mgl64.Vec2{cp.X, cp.Y}
	}

	return stage, platforms, checkpoints, nil
}

// tileTypeFor resolves a collision-layer character through the stage's
// tile mapping. '.' and ' ' are always empty.
func tileTypeFor(sc *StageConfig, ch rune) (entity.TileType, error) {
	if ch == '.' || ch == ' ' {
		return entity.TileEmpty, nil
	}
	mapping, ok := sc.TileMapping[string(ch)]
	if !ok {
		return entity.TileEmpty, fmt.Errorf("unmapped tile character %q", ch)
	}
	switch mapping.Type {
	case "solid":
		return entity.TileSolid, nil
	case "slopeUpRight":
		return entity.TileSlopeUpRight, nil
	case "slopeUpLeft":
		return entity.TileSlopeUpLeft, nil
	case "buffer":
		return entity.TileBuffer, nil
	case "hazard":
		return entity.TileHazard, nil
	default:
		return entity.TileEmpty, fmt.Errorf("unknown tile type %q", mapping.Type)
	}
}
