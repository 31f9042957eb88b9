package system

import (
	"github.com/greyfall/stride/internal/domain/entity"
	"github.com/greyfall/stride/internal/infrastructure/config"
)

// ResourceSystem owns the jump/dash charge counters and the generic
// per-tick countdowns. Landing resets everything in the same tick the
// grounded transition is detected.
type ResourceSystem struct {
	cfg *config.Tuning

	lastGrounded bool
}

// NewResourceSystem creates a resource manager.
func NewResourceSystem(cfg *config.Tuning) *ResourceSystem {
	return &ResourceSystem{cfg: cfg}
}

// Update advances timers and applies the landing reset. Runs after the
// grounding classifier.
func (s *ResourceSystem) Update(player *entity.Player, dt float64) {
	player.SinceLastJump += dt

	if player.Dash.Timer > 0 {
		player.Dash.Timer -= dt
		if player.Dash.Timer <= 0 {
			player.Dash.Timer = 0
			player.Dash.Active = false
		}
	}
	if player.Dash.MomentumTimer > 0 {
		player.Dash.MomentumTimer -= dt
		if player.Dash.MomentumTimer < 0 {
			player.Dash.MomentumTimer = 0
		}
	}

	// The ground dash counter recharges after a cooldown once it is
	// exhausted.
	if player.Dash.Cooldown > 0 {
		player.Dash.Cooldown -= dt
		if player.Dash.Cooldown <= 0 {
			player.Dash.Cooldown = 0
			if player.Res.DashesRemaining == 0 {
				player.Res.DashesRemaining = s.cfg.Dash.GroundCharges
			}
		}
	}

	if player.Ground.Grounded && !s.lastGrounded {
		s.ResetOnLanding(player)
	}
	s.lastGrounded = player.Ground.Grounded

	// Counters never go negative: external writes are normalized here
	// rather than trusted.
	player.Res.Clamp()
}

// ResetOnLanding restores every charge counter to its configured
// maximum. Also applied on ground jumps and wall jumps.
func (s *ResourceSystem) ResetOnLanding(player *entity.Player) {
	player.Res.JumpsRemaining = s.cfg.Jump.MaxJumps
	player.Res.DashesRemaining = s.cfg.Dash.GroundCharges
	player.Res.AirDashesRemaining = s.cfg.Dash.AirCharges
	player.Res.AirDashesUsed = 0
}

// SpendDash consumes one ground dash charge and arms the recharge
// cooldown when the last charge goes. Reports whether a charge was
// available.
func (s *ResourceSystem) SpendDash(player *entity.Player) bool {
	if player.Res.DashesRemaining <= 0 {
		return false
	}
	player.Res.DashesRemaining--
	if player.Res.DashesRemaining == 0 {
		player.Dash.Cooldown = s.cfg.Dash.Cooldown
	}
	return true
}

// SpendAirDash consumes the airborne dash charge. At most one air dash
// per airborne period; landing and wall-stick entry recharge it.
func (s *ResourceSystem) SpendAirDash(player *entity.Player) bool {
	if player.Res.AirDashesRemaining <= 0 {
		return false
	}
	player.Res.AirDashesRemaining--
	player.Res.AirDashesUsed++
	return true
}

// SpendJump consumes one air-jump charge. Reports whether a charge was
// available.
func (s *ResourceSystem) SpendJump(player *entity.Player) bool {
	if player.Res.JumpsRemaining <= 0 {
		return false
	}
	player.Res.JumpsRemaining--
	return true
}

// Reset clears the landing edge detector, used when the player is
// teleported (checkpoint reset).
func (s *ResourceSystem) Reset(grounded bool) {
	s.lastGrounded = grounded
}
