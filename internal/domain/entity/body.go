package entity

import "github.com/go-gl/mathgl/mgl64"

// Up is the world up direction. The coordinate system is Y-down, so
// upward velocity is negative VY.
var Up = mgl64.Vec2{0, -1}

// Body is the single rigid body owned by the simulation step.
// Pos is the top-left corner of the collision box in world pixels.
// Velocity is in pixels per second. Both are mutated only inside the
// fixed-step update.
type Body struct {
	Pos mgl64.Vec2
	Vel mgl64.Vec2

	Width  float64
	Height float64

	// GravityScale multiplies the configured gravity. The variable-jump
	// hold lowers it temporarily and restores it on release.
	GravityScale float64

	FacingRight bool
}

// NewBody creates a body at the given top-left position.
func NewBody(x, y, w, h float64) Body {
	return Body{
		Pos:          mgl64.Vec2{x, y},
		Width:        w,
		Height:       h,
		GravityScale: 1,
		FacingRight:  true,
	}
}

// Center returns the center of the collision box.
func (b *Body) Center() mgl64.Vec2 {
	return mgl64.Vec2{b.Pos.X() + b.Width/2, b.Pos.Y() + b.Height/2}
}

// Foot returns the bottom-center point of the collision box.
func (b *Body) Foot() mgl64.Vec2 {
	return mgl64.Vec2{b.Pos.X() + b.Width/2, b.Pos.Y() + b.Height}
}

// Facing returns the horizontal facing direction as -1 or +1.
func (b *Body) Facing() float64 {
	if b.FacingRight {
		return 1
	}
	return -1
}

// Ascending reports whether the body moves upward faster than the given
// speed (pixels per second, positive).
func (b *Body) Ascending(speed float64) bool {
	return b.Vel.Y() < -speed
}

// Descending reports whether the body moves downward faster than the
// given speed (pixels per second, positive).
func (b *Body) Descending(speed float64) bool {
	return b.Vel.Y() > speed
}
