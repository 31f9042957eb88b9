// Package sim wires the per-concern systems into the deterministic
// fixed-step character simulation.
package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/greyfall/stride/internal/application/system"
	"github.com/greyfall/stride/internal/domain/entity"
	"github.com/greyfall/stride/internal/infrastructure/config"
)

// Simulator steps one player through the collision world in a strict
// system order. Identical inputs against identical config always
// produce identical state; there is no wall-clock or randomness inside
// a step.
type Simulator struct {
	cfg       *config.Tuning
	stage     *entity.Stage
	platforms []*entity.MovingPlatform
	caps      *entity.Capabilities

	player *entity.Player

	prober    *system.Prober
	grounding *system.GroundingSystem
	wall      *system.WallSystem
	attack    *system.AttackSystem
	resources *system.ResourceSystem
	jump      *system.JumpSystem
	dash      *system.DashSystem
	movement  *system.MovementSystem
	respawn   *system.RespawnSystem

	tick uint64
}

// New creates a simulator with the player at the stage spawn point.
func New(cfg *config.Tuning, stage *entity.Stage, platforms []*entity.MovingPlatform, checkpoints []mgl64.Vec2, caps *entity.Capabilities) *Simulator {
	player := entity.NewPlayer(
		stage.SpawnX, stage.SpawnY,
		cfg.Player.Width, cfg.Player.Height,
		cfg.Jump.MaxJumps, cfg.Dash.GroundCharges, cfg.Dash.AirCharges,
	)

	prober := system.NewProber(stage, platforms, cfg.Probe)
	resources := system.NewResourceSystem(cfg)

	return &Simulator{
		cfg:       cfg,
		stage:     stage,
		platforms: platforms,
		caps:      caps,
		player:    player,
		prober:    prober,
		grounding: system.NewGroundingSystem(prober, cfg),
		wall:      system.NewWallSystem(prober, cfg),
		attack:    system.NewAttackSystem(cfg),
		resources: resources,
		jump:      system.NewJumpSystem(cfg, resources),
		dash:      system.NewDashSystem(cfg, resources),
		movement:  system.NewMovementSystem(stage, platforms, cfg),
		respawn:   system.NewRespawnSystem(stage, resources, checkpoints),
	}
}

// DT returns the fixed step duration in seconds.
func (s *Simulator) DT() float64 {
	fps := s.cfg.Display.Framerate
	if fps <= 0 {
		fps = 60
	}
	return 1.0 / float64(fps)
}

// Player returns the simulated player for inspection. Mutating it
// between steps breaks determinism guarantees.
func (s *Simulator) Player() *entity.Player {
	return s.player
}

// Stage returns the collision world.
func (s *Simulator) Stage() *entity.Stage {
	return s.stage
}

// Platforms returns the moving platforms.
func (s *Simulator) Platforms() []*entity.MovingPlatform {
	return s.platforms
}

// Tick returns the number of completed steps.
func (s *Simulator) Tick() uint64 {
	return s.tick
}

// Checkpoint returns the active respawn position.
func (s *Simulator) Checkpoint() mgl64.Vec2 {
	return s.respawn.Checkpoint()
}

// SetCheckpoint activates a respawn position.
func (s *Simulator) SetCheckpoint(pos mgl64.Vec2) {
	s.respawn.SetCheckpoint(pos)
}

// Respawn teleports the player to the active checkpoint, zeroing all
// transient state.
func (s *Simulator) Respawn() {
	s.respawn.Respawn(s.player)
}

// Step advances the simulation by one fixed step:
// sanitize input, advance platforms, classify ground, run the wall
// machine, attacks, resources, jump and dash controllers, integrate
// movement, then hazard/checkpoint handling on the committed position.
func (s *Simulator) Step(input system.InputState) {
	dt := s.DT()
	input = input.Sanitize()
	s.sanitizeBody()

	for _, plat := range s.platforms {
		plat.Step(dt)
	}

	s.grounding.Update(s.player, input, dt)
	s.wall.Update(s.player, input, s.caps)
	s.attack.Update(s.player, input, dt)
	s.resources.Update(s.player, dt)
	s.jump.Update(s.player, input, s.caps, dt)
	s.dash.Update(s.player, input, s.caps)
	s.movement.Update(s.player, input, dt)
	s.respawn.Update(s.player)

	s.tick++
}

// sanitizeBody recovers from non-finite position or velocity by
// respawning rather than letting corruption propagate through the
// collision queries.
func (s *Simulator) sanitizeBody() {
	for i := 0; i < 2; i++ {
		if !finite(s.player.Pos[i]) || !finite(s.player.Vel[i]) {
			s.respawn.Respawn(s.player)
			return
		}
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Snapshot is a flat copy of the externally interesting state after a
// step, for rendering, recording, and tests.
type Snapshot struct {
	Tick uint64

	Pos         mgl64.Vec2
	Vel         mgl64.Vec2
	FacingRight bool

	Grounded      bool
	OnSlope       bool
	SlopeAngleDeg float64

	WallPhase   entity.WallContactPhase
	JumpPhase   entity.JumpPhase
	AttackPhase entity.AttackPhase
	Dashing     bool

	JumpsRemaining     int
	DashesRemaining    int
	AirDashesRemaining int

	CoyoteCounter float64
	Checkpoint    mgl64.Vec2
}

// Snapshot captures the current state.
func (s *Simulator) Snapshot() Snapshot {
	p := s.player
	return Snapshot{
		Tick:               s.tick,
		Pos:                p.Pos,
		Vel:                p.Vel,
		FacingRight:        p.FacingRight,
		Grounded:           p.Ground.Grounded,
		OnSlope:            p.Ground.OnSlope,
		SlopeAngleDeg:      p.Ground.SlopeAngleDeg,
		WallPhase:          p.Wall.Phase,
		JumpPhase:          p.Jump.Phase,
		AttackPhase:        p.Attack.Phase,
		Dashing:            p.Dash.Active,
		JumpsRemaining:     p.Res.JumpsRemaining,
		DashesRemaining:    p.Res.DashesRemaining,
		AirDashesRemaining: p.Res.AirDashesRemaining,
		CoyoteCounter:      p.Coyote.Counter,
		Checkpoint:         s.respawn.Checkpoint(),
	}
}
