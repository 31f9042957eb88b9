package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/greyfall/stride/internal/domain/entity"
	"github.com/greyfall/stride/internal/infrastructure/config"
)

// moveStep is the per-axis collision substep in pixels.
const moveStep = 0.25

// MovementSystem combines horizontal input, slope-aligned motion, the
// dash velocity override, and moving-platform inheritance into the
// final velocity, then integrates position with per-axis stepped
// collision against the stage. Last writer in the fixed step order
// wins; the pipeline is strictly sequential.
type MovementSystem struct {
	stage     *entity.Stage
	platforms []*entity.MovingPlatform
	cfg       *config.Tuning
}

// NewMovementSystem creates a movement integrator.
func NewMovementSystem(stage *entity.Stage, platforms []*entity.MovingPlatform, cfg *config.Tuning) *MovementSystem {
	return &MovementSystem{stage: stage, platforms: platforms, cfg: cfg}
}

// Update runs the fixed integration order for one tick.
func (s *MovementSystem) Update(player *entity.Player, input InputState, dt float64) {
	// 1. Moving-platform inheritance: a rigid positional translation,
	// not a velocity blend, so drift cannot accumulate.
	if player.RidingPlatform != nil {
		player.Pos = player.Pos.Add(player.RidingPlatform.Delta)
	}

	// 2. Buffer-climb assist short-circuits the rest of the pipeline:
	// a capped up-and-forward velocity carries the body onto the ledge.
	if player.Ground.BufferClimbing && input.MoveX != 0 {
		dir := math.Copysign(1, input.MoveX)
		player.Vel = mgl64.Vec2{s.cfg.Buffer.ClimbAssistForward * dir, -s.cfg.Buffer.ClimbAssistUp}
		s.integrate(player, dt)
		return
	}

	s.applyGravity(player, dt)

	// 3. Input-driven horizontal velocity, unless a wall stick, a dash,
	// an airborne attack, or the dash-momentum window owns the axis.
	if !player.Wall.Sticking() && !player.Dash.Active &&
		player.Attack.Phase != entity.AttackAir && !s.momentumHolds(player, input) {
		s.applyRun(player, input)
	}

	// 4. Wall-slide fall clamp.
	if player.Wall.Sliding() && player.Vel.Y() > s.cfg.Wall.SlideMaxFallSpeed {
		player.Vel[1] = s.cfg.Wall.SlideMaxFallSpeed
	}

	// 5. Dash override supersedes everything on both axes. Wall contact
	// truncates the dash in the same tick it is detected.
	if player.Dash.Active {
		if player.Wall.ContactCount > 0 {
			s.truncateDash(player)
		} else {
			player.Vel = mgl64.Vec2{s.cfg.Dash.Speed * player.Dash.FacingAtStart, 0}
		}
	}

	// 6. Standing on a slope with no input: counter the along-slope
	// gravity component so the body does not creep downhill.
	s.applySlopeRest(player, input, dt)

	s.integrate(player, dt)
}

func (s *MovementSystem) applyGravity(player *entity.Player, dt float64) {
	if player.Dash.Active || player.Jump.Phase == entity.JumpForcedFall {
		return
	}
	if player.Wall.Sticking() {
		// Stuck to the wall: the grip holds the body in place.
		player.Vel = mgl64.Vec2{}
		return
	}

	player.Vel[1] += s.cfg.Physics.Gravity * player.GravityScale * dt
	if player.Vel.Y() > s.cfg.Physics.MaxFallSpeed {
		player.Vel[1] = s.cfg.Physics.MaxFallSpeed
	}
}

// momentumHolds reports whether the dash-momentum window still owns
// horizontal velocity. Opposing input recaptures the axis and cancels
// the window.
func (s *MovementSystem) momentumHolds(player *entity.Player, input InputState) bool {
	if player.Dash.MomentumTimer <= 0 {
		return false
	}
	if input.MoveX != 0 && input.MoveX*player.Vel.X() < 0 {
		player.Dash.MomentumTimer = 0
		return false
	}
	return true
}

func (s *MovementSystem) applyRun(player *entity.Player, input InputState) {
	if input.MoveX != 0 {
		player.FacingRight = input.MoveX > 0
	}

	desired := input.MoveX * s.cfg.Movement.RunSpeed
	if !player.Ground.Grounded && s.cfg.Movement.AirControl > 0 {
		desired *= s.cfg.Movement.AirControl
	}

	// Pressing into a wall without a full stick zeroes horizontal
	// velocity instead of grinding against the surface.
	if desired != 0 && player.Wall.ContactCount > 0 && !player.Wall.Sticking() &&
		input.PressingToward(player.Facing()) && !player.Ground.Grounded {
		player.Vel[0] = 0
		return
	}

	if player.Ground.Grounded && player.Ground.OnSlope && !player.Ascending(s.cfg.Buffer.AscendThreshold) {
		// Project the input onto the slope tangent so motion follows
		// the surface instead of plowing into it.
		t := slopeTangent(player.Ground.SlopeNormal)
		v := t.Mul(desired)
		player.Vel[0] = v.X()
		player.Vel[1] = v.Y()
		return
	}

	player.Vel[0] = desired
}

// applySlopeRest applies the idle counter-force on slopes: equal to the
// along-slope gravity component, clamped so it can never push uphill.
func (s *MovementSystem) applySlopeRest(player *entity.Player, input InputState, dt float64) {
	if !player.Ground.Grounded || !player.Ground.OnSlope || input.MoveX != 0 ||
		player.Dash.Active || player.Ascending(s.cfg.Buffer.AscendThreshold) {
		return
	}

	down := downhillTangent(player.Ground.SlopeNormal)
	gravityVec := mgl64.Vec2{0, s.cfg.Physics.Gravity * player.GravityScale * dt}
	along := gravityVec.Dot(down)
	if along <= 0 {
		return
	}
	player.Vel = player.Vel.Sub(down.Mul(along))

	// The surface absorbs the remaining into-slope component.
	n := player.Ground.SlopeNormal
	if into := player.Vel.Dot(n); into < 0 {
		player.Vel = player.Vel.Sub(n.Mul(into))
	}

	// Safety clamp: never drift uphill while standing still.
	if residual := player.Vel.Dot(down); residual < 0 {
		player.Vel = player.Vel.Sub(down.Mul(residual))
	}
}

// slopeTangent returns the surface tangent pointing in +X for a given
// outward normal.
func slopeTangent(n mgl64.Vec2) mgl64.Vec2 {
	t := mgl64.Vec2{-n.Y(), n.X()}
	if t.X() < 0 {
		t = t.Mul(-1)
	}
	return t
}

// downhillTangent returns the surface tangent pointing downhill
// (positive Y in this Y-down world).
func downhillTangent(n mgl64.Vec2) mgl64.Vec2 {
	t := mgl64.Vec2{-n.Y(), n.X()}
	if t.Y() < 0 {
		t = t.Mul(-1)
	}
	return t
}

func (s *MovementSystem) truncateDash(player *entity.Player) {
	player.Dash.Active = false
	player.Dash.Timer = 0
	player.Dash.MomentumTimer = 0
	player.Vel[0] = 0
}

// integrate moves the body per axis in small substeps against the
// stage, slopes, one-way buffer strips, and platform tops.
func (s *MovementSystem) integrate(player *entity.Player, dt float64) {
	s.moveX(player, player.Vel.X()*dt)
	s.moveY(player, player.Vel.Y()*dt)
}

func (s *MovementSystem) moveX(player *entity.Player, dx float64) {
	if dx == 0 {
		return
	}
	step := math.Copysign(moveStep, dx)
	remaining := math.Abs(dx)
	for remaining > 0 {
		d := step
		if remaining < moveStep {
			d = math.Copysign(remaining, dx)
		}
		nx := player.Pos.X() + d
		if !s.collidesX(player, nx) {
			player.Pos[0] = nx
			remaining -= math.Abs(d)
			continue
		}
		// Blocked at the feet only: try climbing the slope surface.
		if climbed, ny := s.tryClimb(player, nx); climbed {
			player.Pos[0] = nx
			player.Pos[1] = ny
			remaining -= math.Abs(d)
			continue
		}
		// Wall hit.
		if player.Dash.Active {
			s.truncateDash(player)
		}
		player.Vel[0] = 0
		return
	}
}

// collidesX checks the leading vertical edge of the body box at the
// candidate X position. Slope tiles never block horizontally; they
// reposition the feet in the vertical pass instead, so the box corner
// dipping below a diagonal surface is not a wall.
func (s *MovementSystem) collidesX(player *entity.Player, nx float64) bool {
	lead := nx
	if player.Vel.X() > 0 || (player.Vel.X() == 0 && player.FacingRight) {
		lead = nx + player.Width
	}
	top := player.Pos.Y()
	for _, frac := range [...]float64{0.05, 0.3, 0.55, 0.8, 0.98} {
		if s.stage.TileAtPoint(lead, top+frac*player.Height).Solid() {
			return true
		}
	}
	return false
}

// tryClimb lifts the body up to 1.5 substeps so slope surfaces are
// walkable instead of blocking.
func (s *MovementSystem) tryClimb(player *entity.Player, nx float64) (bool, float64) {
	if !player.Ground.Grounded {
		return false, 0
	}
	for lift := moveStep; lift <= moveStep*6; lift += moveStep {
		ny := player.Pos.Y() - lift
		saveY := player.Pos[1]
		player.Pos[1] = ny
		blocked := s.collidesX(player, nx)
		player.Pos[1] = saveY
		if !blocked {
			return true, ny
		}
	}
	return false, 0
}

func (s *MovementSystem) moveY(player *entity.Player, dy float64) {
	if dy == 0 {
		return
	}
	down := dy > 0
	step := math.Copysign(moveStep, dy)
	remaining := math.Abs(dy)
	for remaining > 0 {
		d := step
		if remaining < moveStep {
			d = math.Copysign(remaining, dy)
		}
		ny := player.Pos.Y() + d
		if down {
			if s.landingBlocked(player, ny) {
				player.Vel[1] = 0
				return
			}
		} else if s.ceilingBlocked(player, ny) {
			player.Vel[1] = 0
			return
		}
		player.Pos[1] = ny
		remaining -= math.Abs(d)
	}
}

// landingBlocked checks the bottom edge against solids, slope surfaces,
// one-way buffer strips (from above only), and platform tops.
func (s *MovementSystem) landingBlocked(player *entity.Player, ny float64) bool {
	bottom := ny + player.Height
	left := player.Pos.X()
	for _, frac := range [...]float64{0.05, 0.5, 0.95} {
		x := left + frac*player.Width
		if s.stage.TileAtPoint(x, bottom).Solid() {
			return true
		}
		// Buffer strips carry only when entered through their top edge.
		if s.stage.BufferAt(x, bottom) {
			tileTop := math.Floor(bottom/float64(s.stage.TileSize)) * float64(s.stage.TileSize)
			if bottom-tileTop <= moveStep*2 {
				return true
			}
		}
	}
	// Slope surfaces carry the foot point only: the box corners may
	// legitimately hang below the diagonal.
	if s.stage.TileAtPoint(left+player.Width/2, bottom).Sloped() &&
		s.stage.SolidAt(left+player.Width/2, bottom) {
		return true
	}
	for _, plat := range s.platforms {
		if plat.CarriesFoot(left, left+player.Width, bottom, moveStep*2) {
			return true
		}
	}
	return false
}

// ceilingBlocked checks the top edge. Slope tiles are floor surfaces
// and never block from below.
func (s *MovementSystem) ceilingBlocked(player *entity.Player, ny float64) bool {
	left := player.Pos.X()
	for _, frac := range [...]float64{0.05, 0.5, 0.95} {
		if s.stage.TileAtPoint(left+frac*player.Width, ny).Solid() {
			return true
		}
	}
	return false
}

// SetWorld swaps the collision world, used when a new stage loads.
func (s *MovementSystem) SetWorld(stage *entity.Stage, platforms []*entity.MovingPlatform) {
	s.stage = stage
	s.platforms = platforms
}
