package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/greyfall/stride/internal/domain/entity"
	"github.com/greyfall/stride/internal/infrastructure/config"
)

// rayStep is the march increment for raycasts, in pixels. Half a pixel
// keeps hits deterministic and cheap at the stage scales used here.
const rayStep = 0.5

// Hit is a raycast result. A miss reports Normal up and Dist equal to
// the ray length so downstream angle math stays well-defined.
type Hit struct {
	OK     bool
	Point  mgl64.Vec2
	Normal mgl64.Vec2
	Dist   float64
	Tile   entity.TileType
}

// AngleDeg returns the incidence angle between the hit normal and the
// world up vector, in degrees.
func (h Hit) AngleDeg() float64 {
	dot := h.Normal.Dot(entity.Up)
	if dot > 1 {
		dot = 1
	} else if dot < -1 {
		dot = -1
	}
	return math.Acos(dot) * 180 / math.Pi
}

// WallProbeResult is the outcome of the 3-ray wall probe.
type WallProbeResult struct {
	Hits    int
	HitMask [3]bool
}

// SlopeProbeResult is the outcome of the 3-direction slope fan.
type SlopeProbeResult struct {
	OK       bool
	AngleDeg float64
	Normal   mgl64.Vec2
	Dist     float64
	Tile     entity.TileType
}

// GroundOverlapResult separates the two foot-circle layers.
type GroundOverlapResult struct {
	Ground   bool
	Buffer   bool
	Platform *entity.MovingPlatform
}

// Prober answers spatial queries against the stage and the moving
// platforms. It is a pure read of world geometry: no side effects.
type Prober struct {
	stage     *entity.Stage
	platforms []*entity.MovingPlatform
	cfg       config.ProbeConfig
}

// NewProber creates a prober over the given collision world.
func NewProber(stage *entity.Stage, platforms []*entity.MovingPlatform, cfg config.ProbeConfig) *Prober {
	return &Prober{stage: stage, platforms: platforms, cfg: cfg}
}

// Raycast marches from origin along dir (unit vector) up to maxDist and
// returns the first blocking hit. No collider found reports OK=false
// with an up normal.
func (p *Prober) Raycast(origin, dir mgl64.Vec2, maxDist float64) Hit {
	prev := origin
	for t := rayStep; t <= maxDist; t += rayStep {
		pt := origin.Add(dir.Mul(t))
		if p.stage.SolidAt(pt.X(), pt.Y()) {
			tile := p.stage.TileAtPoint(pt.X(), pt.Y())
			return Hit{
				OK:     true,
				Point:  pt,
				Normal: p.surfaceNormal(tile, prev, pt, dir),
				Dist:   t,
				Tile:   tile.Type,
			}
		}
		prev = pt
	}
	return Hit{OK: false, Normal: entity.Up, Dist: maxDist}
}

// surfaceNormal derives the surface normal at a hit point. Slope tiles
// carry their diagonal normal; solid tiles get an axis normal from the
// side the ray entered through.
func (p *Prober) surfaceNormal(tile entity.Tile, prev, pt mgl64.Vec2, dir mgl64.Vec2) mgl64.Vec2 {
	if tile.Sloped() {
		return entity.SlopeNormal(tile.Type)
	}

	size := float64(p.stage.TileSize)
	prevTX := math.Floor(prev.X() / size)
	prevTY := math.Floor(prev.Y() / size)
	hitTX := math.Floor(pt.X() / size)
	hitTY := math.Floor(pt.Y() / size)

	crossedX := prevTX != hitTX
	crossedY := prevTY != hitTY
	switch {
	case crossedX && !crossedY:
		if dir.X() > 0 {
			return mgl64.Vec2{-1, 0}
		}
		return mgl64.Vec2{1, 0}
	case crossedY && !crossedX:
		if dir.Y() > 0 {
			return entity.Up
		}
		return mgl64.Vec2{0, 1}
	default:
		// Started inside the tile or crossed a corner: favor the
		// vertical answer so grounding stays stable.
		if dir.Y() >= 0 {
			return entity.Up
		}
		return mgl64.Vec2{0, 1}
	}
}

// FootOverlap tests the foot circle against the ground and buffer
// layers separately and against moving-platform tops.
func (p *Prober) FootOverlap(body *entity.Body) GroundOverlapResult {
	foot := body.Foot()
	r := p.cfg.FootRadius

	var res GroundOverlapResult
	// Sample the lower half of the foot circle plus the center. The
	// upper half would report walls, not ground.
	offsets := []mgl64.Vec2{
		{0, 0},
		{0, r},
		{-r, r * 0.5},
		{r, r * 0.5},
		{-r * 0.7, r * 0.9},
		{r * 0.7, r * 0.9},
	}
	for _, off := range offsets {
		pt := foot.Add(off)
		if !res.Ground && p.stage.SolidAt(pt.X(), pt.Y()) {
			res.Ground = true
		}
		if !res.Buffer && p.stage.BufferAt(pt.X(), pt.Y()) {
			res.Buffer = true
		}
	}

	left := body.Pos.X()
	right := body.Pos.X() + body.Width
	for _, plat := range p.platforms {
		if plat.CarriesFoot(left, right, foot.Y(), r) {
			res.Platform = plat
			break
		}
	}
	return res
}

// WallProbe casts the 3-point vertical ray fan (top, middle, bottom
// offsets) in the facing direction and counts near-vertical hits.
func (p *Prober) WallProbe(body *entity.Body, facing float64) WallProbeResult {
	dir := mgl64.Vec2{facing, 0}
	length := body.Width/2 + p.cfg.WallRayLength
	centerX := body.Pos.X() + body.Width/2

	var res WallProbeResult
	for i, frac := range p.cfg.WallRayOffsets {
		origin := mgl64.Vec2{centerX, body.Pos.Y() + frac*body.Height}
		hit := p.Raycast(origin, dir, length)
		if hit.OK && math.Abs(hit.Normal.X()) > 0.9 {
			res.Hits++
			res.HitMask[i] = true
		}
	}
	return res
}

// slope fan directions: straight down is checked first and wins ties.
var slopeFan = []mgl64.Vec2{
	{0, 1},
	{math.Sqrt2 / 2, math.Sqrt2 / 2},
	{-math.Sqrt2 / 2, math.Sqrt2 / 2},
}

// SlopeProbe casts the 3-direction fan below the foot and returns the
// steepest hit whose incidence angle falls in (minAngle, maxAngle].
func (p *Prober) SlopeProbe(body *entity.Body, minAngleDeg, maxAngleDeg float64) SlopeProbeResult {
	foot := body.Foot()

	var best SlopeProbeResult
	for _, dir := range slopeFan {
		hit := p.Raycast(foot, dir, p.cfg.SlopeRayLength)
		if !hit.OK {
			continue
		}
		angle := hit.AngleDeg()
		if angle <= minAngleDeg || angle > maxAngleDeg {
			continue
		}
		// Strictly greater: the first direction checked wins ties.
		if !best.OK || angle > best.AngleDeg {
			best = SlopeProbeResult{
				OK:       true,
				AngleDeg: angle,
				Normal:   hit.Normal,
				Dist:     hit.Dist,
				Tile:     hit.Tile,
			}
		}
	}
	return best
}

// SetPlatforms swaps the platform list, used when a new stage loads.
func (p *Prober) SetPlatforms(platforms []*entity.MovingPlatform) {
	p.platforms = platforms
}
