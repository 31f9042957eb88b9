package system

import (
	"github.com/greyfall/stride/internal/domain/entity"
	"github.com/greyfall/stride/internal/infrastructure/config"
)

// JumpSystem runs the variable-jump and forced-fall controller and
// decides which jump executes when several are eligible. Priority is
// ground jump > wall jump > double jump: jumping next to a wall must
// always work regardless of the wall-stick ability state.
type JumpSystem struct {
	cfg *config.Tuning
	res *ResourceSystem
}

// NewJumpSystem creates a jump controller.
func NewJumpSystem(cfg *config.Tuning, res *ResourceSystem) *JumpSystem {
	return &JumpSystem{cfg: cfg, res: res}
}

// Update advances the active jump session and handles jump input.
// Runs after the wall state machine and before the movement integrator
// so stick-entry cancellation lands in the same tick.
func (s *JumpSystem) Update(player *entity.Player, input InputState, caps *entity.Capabilities, dt float64) {
	s.advanceSession(player, input, dt)

	if input.JumpPressed {
		s.handleJumpPressed(player, input, caps)
	}
}

// advanceSession drives the hold and forced-fall phases.
func (s *JumpSystem) advanceSession(player *entity.Player, input InputState, dt float64) {
	switch player.Jump.Phase {
	case entity.JumpRisingHeld:
		apexPassed := player.Vel.Y() > 0
		if !input.Jump || apexPassed || player.Jump.HoldTimer >= s.cfg.Jump.MaxHoldTime {
			s.endHold(player)
			return
		}
		player.Jump.HoldTimer += dt
		if s.cfg.Jump.MinTakeoffSpeed != s.cfg.Jump.MaxTakeoffSpeed {
			// Constant-velocity hold: pin the ascent at max takeoff
			// speed and soften gravity to fake hang time. Velocity never
			// exceeds the configured maximum.
			player.Vel[1] = -s.cfg.Jump.MaxTakeoffSpeed
			player.GravityScale = player.Jump.OriginalGravityScale * s.cfg.Jump.HoldGravityMultiplier
		}
	case entity.JumpReleased:
		player.Jump = entity.JumpSession{}
	case entity.JumpForcedFall:
		// The re-set phase: a fixed-duration fall at a fixed speed so a
		// double jump reaches the same height wherever in the first arc
		// it was requested.
		player.Vel[1] = s.cfg.Jump.ForcedFallSpeed
		player.Jump.ForcedFallTimer -= dt
		if player.Jump.ForcedFallTimer <= 0 {
			player.Jump.Phase = entity.JumpDoubleJumpPending
		}
	case entity.JumpDoubleJumpPending:
		s.executeDoubleJump(player)
	}
}

// endHold terminates the variable-jump hold and restores gravity
// immediately.
func (s *JumpSystem) endHold(player *entity.Player) {
	player.GravityScale = player.Jump.OriginalGravityScale
	player.Jump = entity.JumpSession{Phase: entity.JumpReleased}
}

func (s *JumpSystem) handleJumpPressed(player *entity.Player, input InputState, caps *entity.Capabilities) {
	if s.tryGroundJump(player, input) {
		return
	}
	if s.tryWallJump(player, caps) {
		return
	}
	s.tryDoubleJump(player, caps)
}

// tryGroundJump executes a jump from ground or from coyote grace.
func (s *JumpSystem) tryGroundJump(player *entity.Player, input InputState) bool {
	coyoteEligible := player.Coyote.Counter > 0 && !player.Coyote.LeftGroundByJumping
	if !player.Ground.Grounded && !coyoteEligible {
		return false
	}

	takeoff := s.cfg.Jump.MinTakeoffSpeed
	// A body pressed into a wall at takeoff gets the compensation
	// multiplier so contact never robs jump height.
	if player.Wall.ContactCount > 0 && input.PressingToward(player.Facing()) {
		takeoff *= s.cfg.Jump.WallPressCompensation
	}

	s.launch(player, -takeoff)
	return true
}

// tryWallJump executes a jump away from a contacted wall.
func (s *JumpSystem) tryWallJump(player *entity.Player, caps *entity.Capabilities) bool {
	if player.Ground.Grounded || !player.Wall.InContact() || !caps.HasWallStick() {
		return false
	}

	// Flip facing away from the wall and push off it.
	player.FacingRight = !player.FacingRight
	player.Vel[0] = s.cfg.Jump.WallJumpHorizontal * player.Facing()
	player.Wall.Phase = entity.WallNone
	player.Wall.HasEverStuckThisContact = false

	s.launch(player, -s.cfg.Jump.WallJumpVertical)
	return true
}

// tryDoubleJump requests an air jump. While still ascending the jump is
// deferred behind the forced-fall re-set phase; while falling it
// executes immediately.
func (s *JumpSystem) tryDoubleJump(player *entity.Player, caps *entity.Capabilities) {
	if !caps.HasDoubleJump() || player.Ground.Grounded {
		return
	}
	if player.SinceLastJump < s.cfg.Jump.MinDelayBetweenJumps {
		return
	}
	if player.Res.JumpsRemaining <= 0 {
		return
	}
	if player.Jump.Phase == entity.JumpForcedFall || player.Jump.Phase == entity.JumpDoubleJumpPending {
		return
	}

	if player.Vel.Y() <= 0 {
		// Still ascending: force the fixed fall first.
		player.CancelJumpHold()
		player.Jump = entity.JumpSession{
			Phase:                entity.JumpForcedFall,
			ForcedFallTimer:      s.cfg.Jump.ForcedFallDuration,
			OriginalGravityScale: player.GravityScale,
		}
		player.Vel[1] = s.cfg.Jump.ForcedFallSpeed
		return
	}

	player.Jump = entity.JumpSession{
		Phase:                entity.JumpDoubleJumpPending,
		OriginalGravityScale: player.GravityScale,
	}
	s.executeDoubleJump(player)
}

func (s *JumpSystem) executeDoubleJump(player *entity.Player) {
	gravity := player.Jump.OriginalGravityScale
	if gravity == 0 {
		gravity = 1
	}
	player.GravityScale = gravity
	player.Jump = entity.JumpSession{}

	if !s.res.SpendJump(player) {
		return
	}
	player.Vel[1] = -s.cfg.Jump.DoubleJumpSpeed
	player.SinceLastJump = 0
	player.Coyote.Counter = 0
	player.Coyote.LeftGroundByJumping = true
}

// launch performs the shared ground/wall jump takeoff: velocity is set
// directly (not an impulse), a hold session starts, resources reset,
// and any active dash converts into the momentum-preservation window.
func (s *JumpSystem) launch(player *entity.Player, vy float64) {
	player.CancelJumpHold()
	if player.Dash.Active {
		player.Dash.Active = false
		player.Dash.Timer = 0
		player.Dash.MomentumTimer = s.cfg.Dash.MomentumWindow
		player.Vel[0] = s.cfg.Dash.Speed * player.Dash.FacingAtStart
	}

	player.Vel[1] = vy
	player.Jump = entity.JumpSession{
		Phase:                entity.JumpRisingHeld,
		OriginalGravityScale: player.GravityScale,
	}
	player.SinceLastJump = 0
	player.Coyote.Counter = 0
	player.Coyote.LeftGroundByJumping = true
	s.res.ResetOnLanding(player)
}
