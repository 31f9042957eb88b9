package entity

import "github.com/go-gl/mathgl/mgl64"

// MovingPlatform is a kinematic body patrolling between waypoints. Its
// top face carries riders by a rigid positional delta each step; it is
// never solid from below or the sides.
type MovingPlatform struct {
	ID     int
	Pos    mgl64.Vec2 // top-left
	Width  float64
	Height float64

	Waypoints []mgl64.Vec2
	Speed     float64 // pixels per second

	// Delta is the positional change of the last Step, consumed by the
	// movement integrator for rider inheritance.
	Delta mgl64.Vec2

	target int
}

// NewMovingPlatform creates a platform at the first waypoint.
func NewMovingPlatform(id int, w, h, speed float64, waypoints []mgl64.Vec2) *MovingPlatform {
	p := &MovingPlatform{
		ID:        id,
		Width:     w,
		Height:    h,
		Speed:     speed,
		Waypoints: waypoints,
	}
	if len(waypoints) > 0 {
		p.Pos = waypoints[0]
		p.target = 1 % len(waypoints)
	}
	return p
}

// Step advances the platform toward its current waypoint and records
// the positional delta for rider inheritance.
func (p *MovingPlatform) Step(dt float64) {
	if len(p.Waypoints) < 2 || p.Speed <= 0 {
		p.Delta = mgl64.Vec2{}
		return
	}

	remaining := p.Speed * dt
	prev := p.Pos
	for remaining > 0 {
		goal := p.Waypoints[p.target]
		diff := goal.Sub(p.Pos)
		dist := diff.Len()
		if dist <= remaining {
			p.Pos = goal
			remaining -= dist
			p.target = (p.target + 1) % len(p.Waypoints)
			continue
		}
		p.Pos = p.Pos.Add(diff.Mul(remaining / dist))
		remaining = 0
	}
	p.Delta = p.Pos.Sub(prev)
}

// Top returns the Y of the platform's carrying surface.
func (p *MovingPlatform) Top() float64 {
	return p.Pos.Y()
}

// CarriesFoot reports whether a body foot segment [left,right] at footY
// rests on the platform top within the tolerance.
func (p *MovingPlatform) CarriesFoot(left, right, footY, tolerance float64) bool {
	if right < p.Pos.X() || left > p.Pos.X()+p.Width {
		return false
	}
	return footY >= p.Pos.Y()-tolerance && footY <= p.Pos.Y()+tolerance
}
