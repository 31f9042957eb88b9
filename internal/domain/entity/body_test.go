package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestNewBody(t *testing.T) {
	b := NewBody(10, 20, 12, 22)

	assert.Equal(t, mgl64.Vec2{10, 20}, b.Pos)
	assert.Equal(t, mgl64.Vec2{}, b.Vel)
	assert.Equal(t, 1.0, b.GravityScale)
	assert.True(t, b.FacingRight)
}

func TestBodyGeometry(t *testing.T) {
	b := NewBody(10, 20, 12, 22)

	assert.Equal(t, mgl64.Vec2{16, 31}, b.Center())
	assert.Equal(t, mgl64.Vec2{16, 42}, b.Foot())
}

func TestFacing(t *testing.T) {
	b := NewBody(0, 0, 12, 22)
	assert.Equal(t, 1.0, b.Facing())

	b.FacingRight = false
	assert.Equal(t, -1.0, b.Facing())
}

func TestAscendingDescending(t *testing.T) {
	b := NewBody(0, 0, 12, 22)

	// Y-down: upward motion is negative VY.
	b.Vel = mgl64.Vec2{0, -100}
	assert.True(t, b.Ascending(50))
	assert.False(t, b.Ascending(100))
	assert.False(t, b.Descending(0))

	b.Vel = mgl64.Vec2{0, 100}
	assert.True(t, b.Descending(50))
	assert.False(t, b.Descending(100))
	assert.False(t, b.Ascending(0))
}
