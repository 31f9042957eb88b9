package system

import (
	"math"

	"github.com/greyfall/stride/internal/domain/entity"
	"github.com/greyfall/stride/internal/infrastructure/config"
)

// GroundingSystem turns probe results into the per-step GroundState and
// maintains the coyote timer.
type GroundingSystem struct {
	prober *Prober
	cfg    *config.Tuning
}

// NewGroundingSystem creates a grounding classifier.
func NewGroundingSystem(prober *Prober, cfg *config.Tuning) *GroundingSystem {
	return &GroundingSystem{prober: prober, cfg: cfg}
}

// Update recomputes GroundState from probes and advances the coyote
// timer. Must run after the wall/ground probes see the platform
// positions for this tick.
func (s *GroundingSystem) Update(player *entity.Player, input InputState, dt float64) {
	wasGrounded := player.Ground.Grounded

	overlap := s.prober.FootOverlap(&player.Body)
	slope := s.prober.SlopeProbe(&player.Body, s.cfg.Slope.MinAngleDeg, s.cfg.Slope.MaxAngleDeg)

	ascending := player.Ascending(s.cfg.Buffer.AscendThreshold)

	// Buffer-edge grounding is suppressed while ascending so a body
	// rising through a landing assist is not misread as landed.
	groundedByBuffer := overlap.Buffer && !ascending && input.MoveX != 0
	groundedByPlatform := overlap.Platform != nil
	groundedBySlope := slope.OK && slope.Dist <= s.cfg.Slope.GroundTolerance

	g := entity.GroundState{
		Grounded:             overlap.Ground || groundedByPlatform || groundedByBuffer || groundedBySlope,
		GroundedByPlatform:   groundedByPlatform,
		GroundedByBufferEdge: groundedByBuffer,
		SlopeNormal:          entity.Up,
	}
	if groundedBySlope {
		g.OnSlope = true
		g.SlopeAngleDeg = slope.AngleDeg
		g.SlopeNormal = slope.Normal
	}

	// Edge-climb assist: pressing toward a ledge while buffer-grounded
	// at low vertical speed lets the body climb on instead of clipping
	// under the lip.
	if groundedByBuffer && math.Abs(player.Vel.Y()) <= s.cfg.Buffer.ClimbMaxSpeed {
		g.BufferClimbing = true
	}

	player.Ground = g
	player.RidingPlatform = overlap.Platform

	s.updateCoyote(player, wasGrounded, dt)
}

func (s *GroundingSystem) updateCoyote(player *entity.Player, wasGrounded bool, dt float64) {
	if player.Ground.Grounded {
		player.Coyote.Counter = s.cfg.Jump.CoyoteTime
		player.Coyote.LeftGroundByJumping = false
		return
	}

	if wasGrounded {
		// Just left the ground. A jump-initiated departure (strongly
		// upward velocity, or the jump controller already flagged it)
		// gets no coyote grace.
		jumpDeparture := player.Coyote.LeftGroundByJumping ||
			player.Ascending(s.cfg.Jump.MinTakeoffSpeed/2)
		if jumpDeparture {
			player.Coyote.Counter = 0
			player.Coyote.LeftGroundByJumping = true
			return
		}
	}

	if player.Coyote.Counter > 0 {
		player.Coyote.Counter -= dt
		if player.Coyote.Counter < 0 {
			player.Coyote.Counter = 0
		}
	}
}
