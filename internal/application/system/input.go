package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState holds the sampled input for one fixed step. MoveX/MoveY
// are the continuous move vector in [-1, 1]; the button fields carry
// both level and edge information.
type InputState struct {
	MoveX float64
	MoveY float64

	Jump          bool
	JumpPressed   bool
	JumpReleased  bool
	DashPressed   bool
	AttackPressed bool
}

// PressingToward reports whether the move vector pushes in the given
// horizontal direction (-1 or +1).
func (in InputState) PressingToward(dir float64) bool {
	return in.MoveX*dir > 0
}

// Sanitize clamps the move vector into [-1, 1] and zeroes non-finite
// values. Degenerate input is corrected at the boundary instead of
// propagating through the step.
func (in InputState) Sanitize() InputState {
	in.MoveX = clampAxis(in.MoveX)
	in.MoveY = clampAxis(in.MoveY)
	return in
}

func clampAxis(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// InputSystem samples the keyboard into an InputState.
type InputSystem struct{}

// NewInputSystem creates an input system.
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// GetInput reads the current keyboard state.
func (s *InputSystem) GetInput() InputState {
	var in InputState
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.MoveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.MoveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.MoveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.MoveY += 1
	}

	in.Jump = ebiten.IsKeyPressed(ebiten.KeySpace)
	in.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.JumpReleased = inpututil.IsKeyJustReleased(ebiten.KeySpace)
	in.DashPressed = inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft)
	in.AttackPressed = inpututil.IsKeyJustPressed(ebiten.KeyJ)

	return in
}
