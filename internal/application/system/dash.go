package system

import (
	"github.com/greyfall/stride/internal/domain/entity"
	"github.com/greyfall/stride/internal/infrastructure/config"
)

// DashSystem starts dash sessions. The session itself is applied by the
// movement integrator, which overrides velocity for its duration and
// truncates it early on wall collision.
type DashSystem struct {
	cfg *config.Tuning
	res *ResourceSystem
}

// NewDashSystem creates a dash controller.
func NewDashSystem(cfg *config.Tuning, res *ResourceSystem) *DashSystem {
	return &DashSystem{cfg: cfg, res: res}
}

// Update handles the dash-pressed edge. Dashing is blocked while in
// wall contact.
func (s *DashSystem) Update(player *entity.Player, input InputState, caps *entity.Capabilities) {
	if !input.DashPressed || player.Dash.Active {
		return
	}
	if player.Wall.ContactCount > 0 {
		return
	}

	if player.Ground.Grounded {
		if !caps.HasDash() || !s.res.SpendDash(player) {
			return
		}
	} else {
		if !caps.HasAirDash() || !s.res.SpendAirDash(player) {
			return
		}
	}

	player.Dash.Active = true
	player.Dash.Timer = s.cfg.Dash.Duration
	player.Dash.FacingAtStart = player.Facing()
	player.Dash.MomentumTimer = 0
}
