package entity

import "github.com/go-gl/mathgl/mgl64"

// GroundState classifies how the body touches the ground. It is
// recomputed from probe results every fixed step; only the coyote timer
// survives across steps.
type GroundState struct {
	Grounded             bool
	GroundedByPlatform   bool
	GroundedByBufferEdge bool
	OnSlope              bool
	SlopeAngleDeg        float64
	SlopeNormal          mgl64.Vec2

	// BufferClimbing is armed by the grounding classifier when the body
	// presses toward a ledge while buffer-grounded. The integrator
	// consumes it and applies the capped climb-assist velocity.
	BufferClimbing bool
}

// WallContactPhase is the wall state machine phase.
type WallContactPhase int

const (
	WallNone WallContactPhase = iota
	WallContact
	WallSticking
	WallSliding
)

// String returns the phase name.
func (p WallContactPhase) String() string {
	switch p {
	case WallContact:
		return "contact"
	case WallSticking:
		return "sticking"
	case WallSliding:
		return "sliding"
	default:
		return "none"
	}
}

// WallState tracks the wall contact session. Sliding can only become
// true after the session has visited Sticking at least once; the flag
// resets only when contact is fully lost.
type WallState struct {
	Phase                   WallContactPhase
	ContactCount            int
	HasEverStuckThisContact bool
}

// Sticking reports whether the wall phase is Sticking.
func (w *WallState) Sticking() bool { return w.Phase == WallSticking }

// Sliding reports whether the wall phase is Sliding.
func (w *WallState) Sliding() bool { return w.Phase == WallSliding }

// InContact reports whether the body touches a wall at all.
func (w *WallState) InContact() bool { return w.Phase != WallNone }

// JumpResources holds the charge counters. Counters never go negative:
// spends and external writes clamp at zero.
type JumpResources struct {
	JumpsRemaining     int
	DashesRemaining    int
	AirDashesRemaining int
	AirDashesUsed      int
}

// Clamp normalizes negative counters to zero.
func (r *JumpResources) Clamp() {
	if r.JumpsRemaining < 0 {
		r.JumpsRemaining = 0
	}
	if r.DashesRemaining < 0 {
		r.DashesRemaining = 0
	}
	if r.AirDashesRemaining < 0 {
		r.AirDashesRemaining = 0
	}
	if r.AirDashesUsed < 0 {
		r.AirDashesUsed = 0
	}
}

// JumpPhase is the variable-jump state machine phase.
type JumpPhase int

const (
	JumpIdle JumpPhase = iota
	JumpRisingHeld
	JumpReleased
	JumpForcedFall
	JumpDoubleJumpPending
)

// String returns the phase name.
func (p JumpPhase) String() string {
	switch p {
	case JumpRisingHeld:
		return "rising-held"
	case JumpReleased:
		return "released"
	case JumpForcedFall:
		return "forced-fall"
	case JumpDoubleJumpPending:
		return "double-jump-pending"
	default:
		return "idle"
	}
}

// JumpSession is the active variable-jump hold. It exists from jump
// initiation until release, timeout, apex, or wall-stick interruption.
type JumpSession struct {
	Phase                JumpPhase
	HoldTimer            float64
	ForcedFallTimer      float64
	OriginalGravityScale float64
}

// Active reports whether a hold or forced fall is in progress.
func (j *JumpSession) Active() bool { return j.Phase != JumpIdle }

// CoyoteTimer grants a late jump for a short window after walking off a
// ledge. Jump-initiated departures zero it immediately.
type CoyoteTimer struct {
	Counter             float64
	LeftGroundByJumping bool
}

// DashSession overrides horizontal velocity unconditionally for its
// duration. It ends on timer expiry or wall collision.
type DashSession struct {
	Active        bool
	Timer         float64
	FacingAtStart float64
	// MomentumTimer keeps dash speed alive after a dash-jump until it
	// expires, input recaptures movement, or wall-stick cancels it.
	MomentumTimer float64
	// Cooldown runs after the ground dash counter is exhausted; the
	// counter recharges when it reaches zero.
	Cooldown float64
}

// AttackPhase classifies the active attack session. Attacks gate the
// movement integrator (air attacks suppress input-driven horizontal
// velocity) but carry no combat payload here.
type AttackPhase int

const (
	AttackNone AttackPhase = iota
	AttackGround
	AttackAir
	AttackWall
)

// String returns the phase name.
func (p AttackPhase) String() string {
	switch p {
	case AttackGround:
		return "ground"
	case AttackAir:
		return "air"
	case AttackWall:
		return "wall"
	default:
		return "none"
	}
}

// AttackSession is a timed attack state. Elapsed tracks total session
// age so a session stuck past twice its expected duration can be
// force-reset.
type AttackSession struct {
	Phase    AttackPhase
	Timer    float64
	Duration float64
	Elapsed  float64
}

// Active reports whether an attack session is in progress.
func (a *AttackSession) Active() bool { return a.Phase != AttackNone }

// Player is the simulated character: one body plus all per-step
// classification and session state.
type Player struct {
	Body

	Ground GroundState
	Wall   WallState
	Res    JumpResources
	Jump   JumpSession
	Coyote CoyoteTimer
	Dash   DashSession
	Attack AttackSession

	// SinceLastJump is wall-clock-free time since the last executed jump,
	// gating double-jump attempts against input spikes.
	SinceLastJump float64

	// RidingPlatform is the platform the body stood on last step, if any.
	// Its Delta is applied as a rigid translation at the start of the
	// integration step.
	RidingPlatform *MovingPlatform
}

// CancelJumpHold terminates any active variable-jump session and
// restores the gravity scale it had modified. Safe to call when no
// session is active.
func (p *Player) CancelJumpHold() {
	if p.Jump.Active() {
		p.GravityScale = p.Jump.OriginalGravityScale
		p.Jump = JumpSession{}
	}
}

// NewPlayer creates a player at the given top-left position with the
// given collision box size and full resources.
func NewPlayer(x, y, w, h float64, maxJumps, maxDashes, maxAirDashes int) *Player {
	p := &Player{Body: NewBody(x, y, w, h)}
	p.Res = JumpResources{
		JumpsRemaining:     maxJumps,
		DashesRemaining:    maxDashes,
		AirDashesRemaining: maxAirDashes,
	}
	p.SinceLastJump = 1e9
	return p
}
