package system

import (
	"github.com/greyfall/stride/internal/domain/entity"
	"github.com/greyfall/stride/internal/infrastructure/config"
)

// WallSystem runs the wall contact state machine:
// None → Contact → Sticking → Sliding. Sliding is gated on the session
// having visited Sticking first; the gate resets only when contact is
// fully lost, so brief re-probing mid-contact does not demand a
// re-stick.
type WallSystem struct {
	prober *Prober
	cfg    *config.Tuning
}

// NewWallSystem creates a wall state machine.
func NewWallSystem(prober *Prober, cfg *config.Tuning) *WallSystem {
	return &WallSystem{prober: prober, cfg: cfg}
}

// Update advances the wall state machine for this tick. Runs after the
// grounding classifier so buffer-climb state is already known.
func (s *WallSystem) Update(player *entity.Player, input InputState, caps *entity.Capabilities) {
	probe := s.prober.WallProbe(&player.Body, player.Facing())
	player.Wall.ContactCount = probe.Hits

	// Contact fully lost, or grounded: session over.
	if probe.Hits == 0 || player.Ground.Grounded {
		player.Wall.Phase = entity.WallNone
		player.Wall.HasEverStuckThisContact = false
		return
	}

	// Without the wall-stick capability the machine never leaves None;
	// wall contact is purely blocking (the integrator zeroes horizontal
	// velocity when pressing in).
	if !caps.HasWallStick() {
		player.Wall.Phase = entity.WallNone
		player.Wall.HasEverStuckThisContact = false
		return
	}

	pressingIn := input.PressingToward(player.Facing())

	switch player.Wall.Phase {
	case entity.WallNone:
		player.Wall.Phase = entity.WallContact
		s.tryStick(player, probe, pressingIn)
	case entity.WallContact:
		s.tryStick(player, probe, pressingIn)
		s.trySlide(player, pressingIn)
	case entity.WallSticking:
		if probe.Hits < s.cfg.Wall.StickMinRays || !pressingIn {
			player.Wall.Phase = entity.WallContact
			s.trySlide(player, pressingIn)
		}
	case entity.WallSliding:
		s.tryStick(player, probe, pressingIn)
	}
}

// trySlide promotes Contact to Sliding once the body drifts downward
// past the slide threshold. Sliding is gated on the session having
// visited Sticking first.
func (s *WallSystem) trySlide(player *entity.Player, pressingIn bool) {
	if player.Wall.Phase != entity.WallContact {
		return
	}
	if player.Wall.HasEverStuckThisContact && !pressingIn &&
		player.Vel.Y() >= s.cfg.Wall.SlideStartSpeed {
		player.Wall.Phase = entity.WallSliding
	}
}

// tryStick promotes Contact (or Sliding) to Sticking when the stick
// conditions hold. Stick entry is a hard reset point: vertical velocity
// is forced to exactly zero, any variable-jump hold is terminated, the
// dash-momentum window is cancelled, and the air dash recharges.
func (s *WallSystem) tryStick(player *entity.Player, probe WallProbeResult, pressingIn bool) {
	if probe.Hits < s.cfg.Wall.StickMinRays || !pressingIn || player.Ground.BufferClimbing {
		return
	}
	wasSticking := player.Wall.Phase == entity.WallSticking
	player.Wall.Phase = entity.WallSticking
	player.Wall.HasEverStuckThisContact = true
	if wasSticking {
		return
	}

	player.Vel[1] = 0
	player.CancelJumpHold()
	player.Dash.MomentumTimer = 0
	player.Res.AirDashesRemaining = s.cfg.Dash.AirCharges
	player.Res.AirDashesUsed = 0
}
