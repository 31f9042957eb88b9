package config

// Tuning is the root config for tuning.json. All speeds are pixels per
// second, all durations seconds, all distances pixels.
type Tuning struct {
	Display  DisplayConfig  `json:"display"`
	Physics  PhysicsConfig  `json:"physics"`
	Movement MovementConfig `json:"movement"`
	Jump     JumpConfig     `json:"jump"`
	Wall     WallConfig     `json:"wall"`
	Dash     DashConfig     `json:"dash"`
	Slope    SlopeConfig    `json:"slope"`
	Buffer   BufferConfig   `json:"buffer"`
	Attack   AttackConfig   `json:"attack"`
	Probe    ProbeConfig    `json:"probe"`
	Player   PlayerConfig   `json:"player"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

type PhysicsConfig struct {
	Gravity      float64 `json:"gravity"`
	MaxFallSpeed float64 `json:"maxFallSpeed"`
}

type MovementConfig struct {
	RunSpeed   float64 `json:"runSpeed"`
	AirControl float64 `json:"airControl"`
}

type JumpConfig struct {
	MinTakeoffSpeed float64 `json:"minTakeoffSpeed"`
	MaxTakeoffSpeed float64 `json:"maxTakeoffSpeed"`
	MaxHoldTime     float64 `json:"maxHoldTime"`
	// HoldGravityMultiplier scales gravity down during the constant-
	// velocity hold, faking hang time instead of accelerating upward.
	HoldGravityMultiplier float64 `json:"holdGravityMultiplier"`
	MaxJumps              int     `json:"maxJumps"`
	DoubleJumpSpeed       float64 `json:"doubleJumpSpeed"`
	MinDelayBetweenJumps  float64 `json:"minDelayBetweenJumps"`
	ForcedFallSpeed       float64 `json:"forcedFallSpeed"`
	ForcedFallDuration    float64 `json:"forcedFallDuration"`
	CoyoteTime            float64 `json:"coyoteTime"`
	// WallPressCompensation multiplies takeoff speed for ground jumps
	// executed while pressed into a wall. Defaults to 1.0; this
	// integrator has no collider-friction artifact to counteract.
	WallPressCompensation float64 `json:"wallPressCompensation"`
	WallJumpHorizontal    float64 `json:"wallJumpHorizontal"`
	WallJumpVertical      float64 `json:"wallJumpVertical"`
}

type WallConfig struct {
	// StickMinRays is the minimum wall-ray hit count required to enter
	// Sticking (contact needs one, sticking needs this many).
	StickMinRays      int     `json:"stickMinRays"`
	SlideStartSpeed   float64 `json:"slideStartSpeed"`
	SlideMaxFallSpeed float64 `json:"slideMaxFallSpeed"`
}

type DashConfig struct {
	Speed          float64 `json:"speed"`
	Duration       float64 `json:"duration"`
	Cooldown       float64 `json:"cooldown"`
	GroundCharges  int     `json:"groundCharges"`
	AirCharges     int     `json:"airCharges"`
	MomentumWindow float64 `json:"momentumWindow"`
}

type SlopeConfig struct {
	MinAngleDeg     float64 `json:"minAngleDeg"`
	MaxAngleDeg     float64 `json:"maxAngleDeg"`
	GroundTolerance float64 `json:"groundTolerance"`
}

type BufferConfig struct {
	// AscendThreshold suppresses buffer grounding while moving upward
	// faster than this, preventing ghost jumps through landing assists.
	AscendThreshold    float64 `json:"ascendThreshold"`
	ClimbAssistUp      float64 `json:"climbAssistUp"`
	ClimbAssistForward float64 `json:"climbAssistForward"`
	ClimbMaxSpeed      float64 `json:"climbMaxSpeed"`
}

type AttackConfig struct {
	GroundDuration float64 `json:"groundDuration"`
	AirDuration    float64 `json:"airDuration"`
	WallDuration   float64 `json:"wallDuration"`
}

type ProbeConfig struct {
	FootRadius     float64 `json:"footRadius"`
	WallRayLength  float64 `json:"wallRayLength"`
	SlopeRayLength float64 `json:"slopeRayLength"`
	// Wall ray vertical offsets from the body top, as a fraction of body
	// height (top, middle, bottom).
	WallRayOffsets [3]float64 `json:"wallRayOffsets"`
}

type PlayerConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
