package system

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/greyfall/stride/internal/domain/entity"
)

// RespawnSystem owns the active checkpoint and performs the full reset
// on hazard contact or an explicit respawn request. A respawn restores
// position exactly and returns every transient (velocity, sessions,
// timers, charge counters) to the post-landing baseline so the run
// resumes from a clean deterministic state.
type RespawnSystem struct {
	stage       *entity.Stage
	res         *ResourceSystem
	checkpoint  mgl64.Vec2
	checkpoints []mgl64.Vec2
}

// NewRespawnSystem creates a respawn controller. The initial checkpoint
// is the stage spawn point.
func NewRespawnSystem(stage *entity.Stage, res *ResourceSystem, checkpoints []mgl64.Vec2) *RespawnSystem {
	return &RespawnSystem{
		stage:       stage,
		res:         res,
		checkpoint:  mgl64.Vec2{stage.SpawnX, stage.SpawnY},
		checkpoints: checkpoints,
	}
}

// Checkpoint returns the active respawn position.
func (s *RespawnSystem) Checkpoint() mgl64.Vec2 {
	return s.checkpoint
}

// SetCheckpoint activates a new respawn position.
func (s *RespawnSystem) SetCheckpoint(pos mgl64.Vec2) {
	s.checkpoint = pos
}

// Update checks checkpoint activation and hazard overlap for one tick.
// Runs after the movement integrator so the committed position is
// tested.
func (s *RespawnSystem) Update(player *entity.Player) {
	s.activateTouchedCheckpoint(player)

	if s.touchingHazard(player) {
		log.Printf("hazard hit at (%.1f, %.1f), respawning", player.Pos.X(), player.Pos.Y())
		s.Respawn(player)
	}
}

// activateTouchedCheckpoint promotes the nearest touched checkpoint to
// the active one.
func (s *RespawnSystem) activateTouchedCheckpoint(player *entity.Player) {
	c := player.Center()
	half := float64(s.stage.TileSize)
	for _, cp := range s.checkpoints {
		if cp == s.checkpoint {
			continue
		}
		if mgl64.Abs(c.X()-cp.X()) <= half && mgl64.Abs(c.Y()-cp.Y()) <= half {
			s.checkpoint = cp
			log.Printf("checkpoint activated at (%.1f, %.1f)", cp.X(), cp.Y())
		}
	}
}

// touchingHazard samples the body box against hazard tiles. The
// fractions include the box edges so feet resting exactly on a hazard
// top still register.
func (s *RespawnSystem) touchingHazard(player *entity.Player) bool {
	left := player.Pos.X()
	top := player.Pos.Y()
	for _, fy := range [...]float64{0, 0.5, 1} {
		for _, fx := range [...]float64{0, 0.5, 1} {
			if s.stage.HazardAt(left+fx*player.Width, top+fy*player.Height) {
				return true
			}
		}
	}
	return false
}

// Respawn teleports the body to the active checkpoint and zeroes every
// transient. Charge counters come back at their post-landing maximum.
func (s *RespawnSystem) Respawn(player *entity.Player) {
	gravity := player.Jump.OriginalGravityScale
	if gravity == 0 {
		gravity = player.GravityScale
	}

	player.Pos = s.checkpoint
	player.Vel = mgl64.Vec2{}
	player.GravityScale = gravity
	player.RidingPlatform = nil

	player.Ground = entity.GroundState{}
	player.Wall = entity.WallState{}
	player.Jump = entity.JumpSession{}
	player.Coyote = entity.CoyoteTimer{}
	player.Dash = entity.DashSession{}
	player.Attack = entity.AttackSession{}
	player.SinceLastJump = 1e9

	s.res.ResetOnLanding(player)
	s.res.Reset(false)
}

// SetStage swaps the collision world and re-seats the checkpoint at the
// new spawn point.
func (s *RespawnSystem) SetStage(stage *entity.Stage, checkpoints []mgl64.Vec2) {
	s.stage = stage
	s.checkpoint = mgl64.Vec2{stage.SpawnX, stage.SpawnY}
	s.checkpoints = checkpoints
}
