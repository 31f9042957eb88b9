package system

import (
	"github.com/greyfall/stride/internal/domain/entity"
	"github.com/greyfall/stride/internal/infrastructure/config"
)

// buildTestStage turns character rows into a stage grid. Mapping:
// '#' solid, '/' slope up-right, '\' slope up-left, '=' buffer,
// '^' hazard, anything else empty.
func buildTestStage(rows []string, tileSize int) *entity.Stage {
	height := len(rows)
	width := len(rows[0])
	tiles := make([][]entity.Tile, height)
	for y, row := range rows {
		tiles[y] = make([]entity.Tile, width)
		for x, ch := range row {
			var tt entity.TileType
			switch ch {
			case '#':
				tt = entity.TileSolid
			case '/':
				tt = entity.TileSlopeUpRight
			case '\\':
				tt = entity.TileSlopeUpLeft
			case '=':
				tt = entity.TileBuffer
			case '^':
				tt = entity.TileHazard
			}
			tiles[y][x] = entity.Tile{Type: tt}
		}
	}
	return &entity.Stage{
		Width:    width,
		Height:   height,
		TileSize: tileSize,
		Tiles:    tiles,
		SpawnX:   32,
		SpawnY:   32,
	}
}

// createTestTuning returns the tuning used across the system tests.
func createTestTuning() *config.Tuning {
	return &config.Tuning{
		Display: config.DisplayConfig{
			ScreenWidth: 640, ScreenHeight: 360, Scale: 2, Framerate: 60,
		},
		Physics: config.PhysicsConfig{
			Gravity: 1800, MaxFallSpeed: 900,
		},
		Movement: config.MovementConfig{
			RunSpeed: 220, AirControl: 1.0,
		},
		Jump: config.JumpConfig{
			MinTakeoffSpeed:       380,
			MaxTakeoffSpeed:       460,
			MaxHoldTime:           0.22,
			HoldGravityMultiplier: 0.35,
			MaxJumps:              1,
			DoubleJumpSpeed:       400,
			MinDelayBetweenJumps:  0.1,
			ForcedFallSpeed:       120,
			ForcedFallDuration:    0.08,
			CoyoteTime:            0.1,
			WallPressCompensation: 1.0,
			WallJumpHorizontal:    260,
			WallJumpVertical:      420,
		},
		Wall: config.WallConfig{
			StickMinRays: 2, SlideStartSpeed: 30, SlideMaxFallSpeed: 160,
		},
		Dash: config.DashConfig{
			Speed: 520, Duration: 0.15, Cooldown: 0.8,
			GroundCharges: 1, AirCharges: 1, MomentumWindow: 0.18,
		},
		Slope: config.SlopeConfig{
			MinAngleDeg: 1, MaxAngleDeg: 60, GroundTolerance: 6,
		},
		Buffer: config.BufferConfig{
			AscendThreshold: 40, ClimbAssistUp: 140,
			ClimbAssistForward: 80, ClimbMaxSpeed: 60,
		},
		Attack: config.AttackConfig{
			GroundDuration: 0.3, AirDuration: 0.25, WallDuration: 0.3,
		},
		Probe: config.ProbeConfig{
			FootRadius: 5, WallRayLength: 3, SlopeRayLength: 12,
			WallRayOffsets: [3]float64{0.2, 0.5, 0.8},
		},
		Player: config.PlayerConfig{Width: 12, Height: 22},
	}
}

// flatStage is a bordered box with a solid floor at row 12 (floor top
// at y=192 with 16px tiles).
func flatStage() *entity.Stage {
	return buildTestStage([]string{
		"####################",
		"#..................#",
		"#..................#",
		"#..................#",
		"#..................#",
		"#..................#",
		"#..................#",
		"#..................#",
		"#..................#",
		"#..................#",
		"#..................#",
		"#..................#",
		"####################",
		"####################",
	}, 16)
}

// wallStage adds an interior wall column at x=160 (col 10) spanning the
// air above the floor.
func wallStage() *entity.Stage {
	return buildTestStage([]string{
		"####################",
		"#..................#",
		"#..................#",
		"#..................#",
		"#.........#........#",
		"#.........#........#",
		"#.........#........#",
		"#.........#........#",
		"#.........#........#",
		"#.........#........#",
		"#.........#........#",
		"#.........#........#",
		"####################",
		"####################",
	}, 16)
}

// createTestPlayer places a player with its feet exactly on the floor
// at y=192.
func createTestPlayer(cfg *config.Tuning, x float64) *entity.Player {
	return entity.NewPlayer(
		x, 192-cfg.Player.Height,
		cfg.Player.Width, cfg.Player.Height,
		cfg.Jump.MaxJumps, cfg.Dash.GroundCharges, cfg.Dash.AirCharges,
	)
}

// allCaps enables every movement ability.
func allCaps() *entity.Capabilities {
	return &entity.Capabilities{WallStick: true, DoubleJump: true, Dash: true, AirDash: true}
}
