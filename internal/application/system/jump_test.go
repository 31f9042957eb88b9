package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greyfall/stride/internal/domain/entity"
)

func TestGroundJump(t *testing.T) {
	cfg := createTestTuning()

	t.Run("takes off at min speed with a hold session", func(t *testing.T) {
		res := NewResourceSystem(cfg)
		j := NewJumpSystem(cfg, res)
		player := createTestPlayer(cfg, 100)
		player.Ground.Grounded = true

		j.Update(player, InputState{Jump: true, JumpPressed: true}, allCaps(), testDT)

		assert.Equal(t, -cfg.Jump.MinTakeoffSpeed, player.Vel.Y())
		assert.Equal(t, entity.JumpRisingHeld, player.Jump.Phase)
		assert.Equal(t, 0.0, player.Coyote.Counter)
		assert.True(t, player.Coyote.LeftGroundByJumping)
		assert.Equal(t, 0.0, player.SinceLastJump)
	})

	t.Run("coyote grace allows a late jump", func(t *testing.T) {
		res := NewResourceSystem(cfg)
		j := NewJumpSystem(cfg, res)
		player := createTestPlayer(cfg, 100)
		player.Coyote.Counter = 0.05

		j.Update(player, InputState{Jump: true, JumpPressed: true}, allCaps(), testDT)

		assert.Equal(t, -cfg.Jump.MinTakeoffSpeed, player.Vel.Y())
	})

	t.Run("no grace after a jump departure", func(t *testing.T) {
		res := NewResourceSystem(cfg)
		j := NewJumpSystem(cfg, res)
		player := createTestPlayer(cfg, 100)
		player.Coyote.Counter = 0.05
		player.Coyote.LeftGroundByJumping = true
		player.Res.JumpsRemaining = 0

		j.Update(player, InputState{Jump: true, JumpPressed: true}, &entity.Capabilities{}, testDT)

		assert.Equal(t, 0.0, player.Vel.Y())
		assert.Equal(t, entity.JumpIdle, player.Jump.Phase)
	})

	t.Run("wall press compensation scales takeoff", func(t *testing.T) {
		boosted := createTestTuning()
		boosted.Jump.WallPressCompensation = 1.5
		res := NewResourceSystem(boosted)
		j := NewJumpSystem(boosted, res)
		player := createTestPlayer(boosted, 100)
		player.Ground.Grounded = true
		player.Wall.ContactCount = 2

		j.Update(player, InputState{Jump: true, JumpPressed: true, MoveX: 1}, allCaps(), testDT)

		assert.Equal(t, -boosted.Jump.MinTakeoffSpeed*1.5, player.Vel.Y())
	})
}

func TestVariableJumpHold(t *testing.T) {
	cfg := createTestTuning()

	t.Run("hold pins velocity at max takeoff speed", func(t *testing.T) {
		res := NewResourceSystem(cfg)
		j := NewJumpSystem(cfg, res)
		player := createTestPlayer(cfg, 100)
		player.Ground.Grounded = true

		j.Update(player, InputState{Jump: true, JumpPressed: true}, allCaps(), testDT)
		player.Ground.Grounded = false

		for i := 0; i < 5; i++ {
			j.Update(player, InputState{Jump: true}, allCaps(), testDT)
			assert.Equal(t, -cfg.Jump.MaxTakeoffSpeed, player.Vel.Y(),
				"ascent speed never exceeds the configured maximum")
			assert.Equal(t, cfg.Jump.HoldGravityMultiplier, player.GravityScale)
		}
	})

	t.Run("release restores gravity immediately", func(t *testing.T) {
		res := NewResourceSystem(cfg)
		j := NewJumpSystem(cfg, res)
		player := createTestPlayer(cfg, 100)
		player.Ground.Grounded = true

		j.Update(player, InputState{Jump: true, JumpPressed: true}, allCaps(), testDT)
		player.Ground.Grounded = false
		j.Update(player, InputState{Jump: true}, allCaps(), testDT)
		require.Equal(t, cfg.Jump.HoldGravityMultiplier, player.GravityScale)

		j.Update(player, InputState{}, allCaps(), testDT)

		assert.Equal(t, 1.0, player.GravityScale)
		assert.Equal(t, entity.JumpReleased, player.Jump.Phase)
	})

	t.Run("hold ends at the timeout", func(t *testing.T) {
		res := NewResourceSystem(cfg)
		j := NewJumpSystem(cfg, res)
		player := createTestPlayer(cfg, 100)
		player.Ground.Grounded = true

		j.Update(player, InputState{Jump: true, JumpPressed: true}, allCaps(), testDT)
		player.Ground.Grounded = false

		steps := int(cfg.Jump.MaxHoldTime/testDT) + 2
		for i := 0; i < steps; i++ {
			j.Update(player, InputState{Jump: true}, allCaps(), testDT)
		}
		assert.NotEqual(t, entity.JumpRisingHeld, player.Jump.Phase)
		assert.Equal(t, 1.0, player.GravityScale)
	})

	t.Run("equal min and max disables the hold shaping", func(t *testing.T) {
		fixed := createTestTuning()
		fixed.Jump.MaxTakeoffSpeed = fixed.Jump.MinTakeoffSpeed
		res := NewResourceSystem(fixed)
		j := NewJumpSystem(fixed, res)
		player := createTestPlayer(fixed, 100)
		player.Ground.Grounded = true

		j.Update(player, InputState{Jump: true, JumpPressed: true}, allCaps(), testDT)
		player.Ground.Grounded = false
		player.Vel[1] = -300 // gravity already slowed the ascent
		j.Update(player, InputState{Jump: true}, allCaps(), testDT)

		assert.Equal(t, -300.0, player.Vel.Y(), "velocity is not pinned")
		assert.Equal(t, 1.0, player.GravityScale)
	})
}

func TestWallJump(t *testing.T) {
	cfg := createTestTuning()

	t.Run("pushes away from the wall and flips facing", func(t *testing.T) {
		res := NewResourceSystem(cfg)
		j := NewJumpSystem(cfg, res)
		player := createTestPlayer(cfg, 100)
		player.Pos[1] = 100
		player.Wall.Phase = entity.WallSticking
		player.FacingRight = true

		j.Update(player, InputState{Jump: true, JumpPressed: true}, allCaps(), testDT)

		assert.False(t, player.FacingRight)
		assert.Equal(t, -cfg.Jump.WallJumpHorizontal, player.Vel.X())
		assert.Equal(t, -cfg.Jump.WallJumpVertical, player.Vel.Y())
		assert.Equal(t, entity.WallNone, player.Wall.Phase)
		assert.False(t, player.Wall.HasEverStuckThisContact)
	})

	t.Run("ground jump wins over wall jump", func(t *testing.T) {
		res := NewResourceSystem(cfg)
		j := NewJumpSystem(cfg, res)
		player := createTestPlayer(cfg, 100)
		player.Ground.Grounded = true
		player.Wall.Phase = entity.WallContact

		j.Update(player, InputState{Jump: true, JumpPressed: true}, allCaps(), testDT)

		assert.Equal(t, -cfg.Jump.MinTakeoffSpeed, player.Vel.Y())
		assert.True(t, player.FacingRight, "facing unchanged by a ground jump")
	})

	t.Run("requires the wall-stick ability", func(t *testing.T) {
		res := NewResourceSystem(cfg)
		j := NewJumpSystem(cfg, res)
		player := createTestPlayer(cfg, 100)
		player.Pos[1] = 100
		player.Wall.Phase = entity.WallContact
		player.Res.JumpsRemaining = 0

		j.Update(player, InputState{Jump: true, JumpPressed: true}, &entity.Capabilities{}, testDT)

		assert.Equal(t, 0.0, player.Vel.Y())
	})
}

func TestDoubleJump(t *testing.T) {
	cfg := createTestTuning()

	newAirborne := func(vy float64) *entity.Player {
		player := createTestPlayer(cfg, 100)
		player.Pos[1] = 100
		player.Vel[1] = vy
		return player
	}

	t.Run("executes immediately while falling", func(t *testing.T) {
		res := NewResourceSystem(cfg)
		j := NewJumpSystem(cfg, res)
		player := newAirborne(150)

		j.Update(player, InputState{Jump: true, JumpPressed: true}, allCaps(), testDT)

		assert.Equal(t, -cfg.Jump.DoubleJumpSpeed, player.Vel.Y())
		assert.Equal(t, 0, player.Res.JumpsRemaining)
	})

	t.Run("ascending goes through the forced fall first", func(t *testing.T) {
		res := NewResourceSystem(cfg)
		j := NewJumpSystem(cfg, res)
		player := newAirborne(-200)

		j.Update(player, InputState{Jump: true, JumpPressed: true}, allCaps(), testDT)

		require.Equal(t, entity.JumpForcedFall, player.Jump.Phase)
		assert.Equal(t, cfg.Jump.ForcedFallSpeed, player.Vel.Y())
		assert.Equal(t, 1, player.Res.JumpsRemaining, "charge not spent until the jump executes")

		// Run out the fixed fall duration.
		steps := int(cfg.Jump.ForcedFallDuration/testDT) + 2
		for i := 0; i < steps; i++ {
			j.Update(player, InputState{}, allCaps(), testDT)
		}
		assert.Equal(t, -cfg.Jump.DoubleJumpSpeed, player.Vel.Y())
		assert.Equal(t, 0, player.Res.JumpsRemaining)
	})

	t.Run("forced fall holds a constant velocity", func(t *testing.T) {
		res := NewResourceSystem(cfg)
		j := NewJumpSystem(cfg, res)
		player := newAirborne(-200)

		j.Update(player, InputState{Jump: true, JumpPressed: true}, allCaps(), testDT)
		j.Update(player, InputState{}, allCaps(), testDT)
		assert.Equal(t, cfg.Jump.ForcedFallSpeed, player.Vel.Y())
	})

	t.Run("respects the minimum delay between jumps", func(t *testing.T) {
		res := NewResourceSystem(cfg)
		j := NewJumpSystem(cfg, res)
		player := newAirborne(150)
		player.SinceLastJump = cfg.Jump.MinDelayBetweenJumps / 2

		j.Update(player, InputState{Jump: true, JumpPressed: true}, allCaps(), testDT)

		assert.Equal(t, 150.0, player.Vel.Y())
	})

	t.Run("needs a charge", func(t *testing.T) {
		res := NewResourceSystem(cfg)
		j := NewJumpSystem(cfg, res)
		player := newAirborne(150)
		player.Res.JumpsRemaining = 0

		j.Update(player, InputState{Jump: true, JumpPressed: true}, allCaps(), testDT)

		assert.Equal(t, 150.0, player.Vel.Y())
	})

	t.Run("needs the ability", func(t *testing.T) {
		res := NewResourceSystem(cfg)
		j := NewJumpSystem(cfg, res)
		player := newAirborne(150)

		j.Update(player, InputState{Jump: true, JumpPressed: true}, &entity.Capabilities{}, testDT)

		assert.Equal(t, 150.0, player.Vel.Y())
	})
}

func TestDashJumpMomentum(t *testing.T) {
	cfg := createTestTuning()
	res := NewResourceSystem(cfg)
	j := NewJumpSystem(cfg, res)
	player := createTestPlayer(cfg, 100)
	player.Ground.Grounded = true
	player.Dash = entity.DashSession{Active: true, Timer: 0.1, FacingAtStart: 1}

	j.Update(player, InputState{Jump: true, JumpPressed: true}, allCaps(), testDT)

	assert.False(t, player.Dash.Active, "jump ends the dash")
	assert.Equal(t, cfg.Dash.MomentumWindow, player.Dash.MomentumTimer)
	assert.Equal(t, cfg.Dash.Speed, player.Vel.X())
	assert.Equal(t, -cfg.Jump.MinTakeoffSpeed, player.Vel.Y())
}
