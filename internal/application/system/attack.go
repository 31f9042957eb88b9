package system

import (
	"github.com/greyfall/stride/internal/domain/entity"
	"github.com/greyfall/stride/internal/infrastructure/config"
)

// AttackSystem runs the timed attack sessions. Attacks matter to the
// movement core because an airborne attack suppresses input-driven
// horizontal velocity in the integrator; there is no combat resolution
// here.
type AttackSystem struct {
	cfg *config.Tuning
}

// NewAttackSystem creates an attack session controller.
func NewAttackSystem(cfg *config.Tuning) *AttackSystem {
	return &AttackSystem{cfg: cfg}
}

// Update advances the active session and starts one on the attack
// edge. A session that should be transient but lives past twice its
// expected duration is force-reset: a missed transition edge must never
// leave the body stuck in an attack state.
func (s *AttackSystem) Update(player *entity.Player, input InputState, dt float64) {
	if player.Attack.Active() {
		player.Attack.Timer -= dt
		player.Attack.Elapsed += dt

		stuck := player.Attack.Elapsed >= player.Attack.Duration*2
		if player.Attack.Timer <= 0 || stuck {
			player.Attack = entity.AttackSession{}
		}
	}

	if !input.AttackPressed || player.Attack.Active() || player.Dash.Active {
		return
	}

	var phase entity.AttackPhase
	var duration float64
	switch {
	case player.Wall.Sticking() || player.Wall.Sliding():
		phase = entity.AttackWall
		duration = s.cfg.Attack.WallDuration
	case player.Ground.Grounded:
		phase = entity.AttackGround
		duration = s.cfg.Attack.GroundDuration
	default:
		phase = entity.AttackAir
		duration = s.cfg.Attack.AirDuration
	}
	if duration <= 0 {
		return
	}

	player.Attack = entity.AttackSession{
		Phase:    phase,
		Timer:    duration,
		Duration: duration,
	}
}
