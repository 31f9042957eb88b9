package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greyfall/stride/internal/domain/entity"
)

func TestRespawn(t *testing.T) {
	cfg := createTestTuning()
	stage := flatStage()
	stage.SpawnX = 40
	stage.SpawnY = 170

	t.Run("restores position and zeroes every transient", func(t *testing.T) {
		res := NewResourceSystem(cfg)
		r := NewRespawnSystem(stage, res, nil)
		player := createTestPlayer(cfg, 200)
		player.Vel = mgl64.Vec2{300, -200}
		player.Jump = entity.JumpSession{Phase: entity.JumpRisingHeld, OriginalGravityScale: 1}
		player.GravityScale = 0.35
		player.Dash = entity.DashSession{Active: true, Timer: 0.1}
		player.Wall = entity.WallState{Phase: entity.WallSticking, HasEverStuckThisContact: true}
		player.Attack = entity.AttackSession{Phase: entity.AttackAir, Timer: 0.2}
		player.Res = entity.JumpResources{}
		player.Coyote = entity.CoyoteTimer{Counter: 0.05, LeftGroundByJumping: true}

		r.Respawn(player)

		assert.Equal(t, mgl64.Vec2{40, 170}, player.Pos)
		assert.Equal(t, mgl64.Vec2{}, player.Vel)
		assert.Equal(t, 1.0, player.GravityScale)
		assert.Equal(t, entity.JumpSession{}, player.Jump)
		assert.Equal(t, entity.DashSession{}, player.Dash)
		assert.Equal(t, entity.WallState{}, player.Wall)
		assert.Equal(t, entity.AttackSession{}, player.Attack)
		assert.Equal(t, entity.CoyoteTimer{}, player.Coyote)
		assert.Equal(t, cfg.Jump.MaxJumps, player.Res.JumpsRemaining)
		assert.Equal(t, cfg.Dash.GroundCharges, player.Res.DashesRemaining)
	})

	t.Run("hazard contact respawns at the checkpoint", func(t *testing.T) {
		hazardStage := buildTestStage([]string{
			"....................",
			"....................",
			"......^.............",
			"####################",
		}, 16)
		hazardStage.SpawnX = 20
		hazardStage.SpawnY = 20

		res := NewResourceSystem(cfg)
		r := NewRespawnSystem(hazardStage, res, nil)
		player := createTestPlayer(cfg, 0)
		// Body overlapping the hazard tile (col 6, row 2).
		player.Pos = mgl64.Vec2{98, 36}

		r.Update(player)

		assert.Equal(t, mgl64.Vec2{20, 20}, player.Pos)
	})

	t.Run("touching a checkpoint activates it", func(t *testing.T) {
		res := NewResourceSystem(cfg)
		cp := mgl64.Vec2{200, 186}
		r := NewRespawnSystem(stage, res, []mgl64.Vec2{cp})
		player := createTestPlayer(cfg, 196)

		require.NotEqual(t, cp, r.Checkpoint())
		r.Update(player)

		assert.Equal(t, cp, r.Checkpoint())
	})

	t.Run("checkpoint far away stays inactive", func(t *testing.T) {
		res := NewResourceSystem(cfg)
		cp := mgl64.Vec2{280, 186}
		r := NewRespawnSystem(stage, res, []mgl64.Vec2{cp})
		player := createTestPlayer(cfg, 40)

		r.Update(player)

		assert.NotEqual(t, cp, r.Checkpoint())
	})
}
