// Package playing provides the main gameplay scene: it drives the
// fixed-step simulation from live or replayed input and renders the
// collision world.
package playing

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/greyfall/stride/internal/application/replay"
	"github.com/greyfall/stride/internal/application/scene"
	"github.com/greyfall/stride/internal/application/sim"
	"github.com/greyfall/stride/internal/application/state"
	"github.com/greyfall/stride/internal/application/system"
	"github.com/greyfall/stride/internal/domain/entity"
	"github.com/greyfall/stride/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{26, 26, 46, 255}
	colorSolid      = color.RGBA{80, 80, 100, 255}
	colorSlope      = color.RGBA{90, 110, 90, 255}
	colorBuffer     = color.RGBA{100, 100, 160, 160}
	colorHazard     = color.RGBA{200, 50, 50, 255}
	colorPlatform   = color.RGBA{160, 130, 70, 255}
	colorPlayer     = color.RGBA{100, 200, 100, 255}
	colorPlayerWall = color.RGBA{100, 160, 220, 255}
	colorPlayerDash = color.RGBA{230, 230, 120, 255}
	colorCheckpoint = color.RGBA{120, 220, 220, 200}
)

// Playing is the main gameplay scene.
type Playing struct {
	cfg   *config.Tuning
	sim   *sim.Simulator
	state state.GameState

	inputSystem *system.InputSystem
	replayer    *replay.Replayer
	reload      <-chan *config.Tuning

	screenW  int
	screenH  int
	tileSize int

	recorder       *Recorder
	recordFilename string
}

// New creates a live-input gameplay scene. If recordPath is not empty,
// inputs are recorded for deterministic playback.
func New(cfg *config.Tuning, simulator *sim.Simulator, stageName, recordPath string, caps *entity.Capabilities) *Playing {
	p := &Playing{
		cfg:            cfg,
		sim:            simulator,
		state:          state.StatePlaying,
		inputSystem:    system.NewInputSystem(),
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		tileSize:       simulator.Stage().TileSize,
		recordFilename: recordPath,
	}
	if recordPath != "" {
		p.recorder = NewRecorder(stageName, caps)
		log.Printf("Recording enabled: %s", recordPath)
	}
	return p
}

// NewReplay creates a scene that feeds recorded inputs into the
// simulation instead of the keyboard.
func NewReplay(cfg *config.Tuning, simulator *sim.Simulator, replayer *replay.Replayer) *Playing {
	return &Playing{
		cfg:      cfg,
		sim:      simulator,
		state:    state.StatePlaying,
		replayer: replayer,
		screenW:  cfg.Display.ScreenWidth,
		screenH:  cfg.Display.ScreenHeight,
		tileSize: simulator.Stage().TileSize,
	}
}

// SetReloadChannel wires a source of hot-reloaded tuning configs. The
// scene applies them inside Update so the simulation never observes a
// config write from another goroutine. A nil channel disables reloads.
func (p *Playing) SetReloadChannel(ch <-chan *config.Tuning) {
	p.reload = ch
}

// applyPendingReload copies the newest published tuning into the shared
// config between simulation steps.
func (p *Playing) applyPendingReload() {
	if p.reload == nil {
		return
	}
	select {
	case fresh, ok := <-p.reload:
		if !ok {
			p.reload = nil
			return
		}
		*p.cfg = *fresh
		log.Printf("Tuning reloaded")
	default:
	}
}

// Update proceeds the game state (implements scene.Scene).
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	p.applyPendingReload()

	switch p.state {
	case state.StatePlaying:
		return nil, p.updatePlaying()
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePlaying
		}
	}
	return nil, nil
}

func (p *Playing) updatePlaying() error {
	if p.replayer != nil {
		input, ok := p.replayer.GetInput()
		if !ok {
			log.Printf("Replay finished at frame %d", p.replayer.CurrentFrame())
			p.state = state.StatePaused
			return nil
		}
		p.sim.Step(input)
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.state = state.StatePaused
		return nil
	}

	// F5: save recording without quitting.
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}
	// R: manual respawn at the active checkpoint.
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p.sim.Respawn()
	}

	input := p.inputSystem.GetInput()
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}
	p.sim.Step(input)
	return nil
}

func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}
	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}
	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// camera returns the camera offset clamped to stage bounds.
func (p *Playing) camera() (int, int) {
	player := p.sim.Player()
	camX := int(player.Pos.X()) - p.screenW/2
	camY := int(player.Pos.Y()) - p.screenH/2

	stage := p.sim.Stage()
	maxCamX := stage.Width*p.tileSize - p.screenW
	maxCamY := stage.Height*p.tileSize - p.screenH
	if camX > maxCamX {
		camX = maxCamX
	}
	if camY > maxCamY {
		camY = maxCamY
	}
	if camX < 0 {
		camX = 0
	}
	if camY < 0 {
		camY = 0
	}
	return camX, camY
}

// Draw renders the game screen.
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	camX, camY := p.camera()

	p.drawTiles(screen, camX, camY)
	p.drawPlatforms(screen, camX, camY)
	p.drawCheckpoint(screen, camX, camY)
	p.drawPlayer(screen, camX, camY)
	p.drawHUD(screen)

	if p.state == state.StatePaused {
		p.drawPauseOverlay(screen)
	}
}

func (p *Playing) drawTiles(screen *ebiten.Image, camX, camY int) {
	stage := p.sim.Stage()
	startTileX := camX / p.tileSize
	startTileY := camY / p.tileSize
	endTileX := (camX+p.screenW)/p.tileSize + 1
	endTileY := (camY+p.screenH)/p.tileSize + 1

	size := float64(p.tileSize)
	for ty := startTileY; ty <= endTileY && ty < stage.Height; ty++ {
		for tx := startTileX; tx <= endTileX && tx < stage.Width; tx++ {
			if tx < 0 || ty < 0 {
				continue
			}
			tile := stage.TileAt(tx, ty)
			if tile.Type == entity.TileEmpty {
				continue
			}

			x := float64(tx*p.tileSize - camX)
			y := float64(ty*p.tileSize - camY)

			switch tile.Type {
			case entity.TileSolid:
				ebitenutil.DrawRect(screen, x, y, size, size, colorSolid)
			case entity.TileHazard:
				ebitenutil.DrawRect(screen, x, y, size, size, colorHazard)
			case entity.TileBuffer:
				ebitenutil.DrawRect(screen, x, y, size, size/4, colorBuffer)
			case entity.TileSlopeUpRight:
				// Approximate the diagonal with thin column strips.
				for i := 0.0; i < size; i++ {
					ebitenutil.DrawRect(screen, x+i, y+size-i-1, 1, i+1, colorSlope)
				}
			case entity.TileSlopeUpLeft:
				for i := 0.0; i < size; i++ {
					ebitenutil.DrawRect(screen, x+i, y+i, 1, size-i, colorSlope)
				}
			}
		}
	}
}

func (p *Playing) drawPlatforms(screen *ebiten.Image, camX, camY int) {
	for _, plat := range p.sim.Platforms() {
		x := plat.Pos.X() - float64(camX)
		y := plat.Pos.Y() - float64(camY)
		ebitenutil.DrawRect(screen, x, y, plat.Width, plat.Height, colorPlatform)
	}
}

func (p *Playing) drawCheckpoint(screen *ebiten.Image, camX, camY int) {
	cp := p.sim.Checkpoint()
	x := cp.X() - float64(camX)
	y := cp.Y() - float64(camY)
	ebitenutil.DrawRect(screen, x-2, y-8, 4, 8, colorCheckpoint)
}

func (p *Playing) drawPlayer(screen *ebiten.Image, camX, camY int) {
	player := p.sim.Player()
	x := player.Pos.X() - float64(camX)
	y := player.Pos.Y() - float64(camY)

	c := colorPlayer
	switch {
	case player.Dash.Active:
		c = colorPlayerDash
	case player.Wall.Sticking() || player.Wall.Sliding():
		c = colorPlayerWall
	}
	ebitenutil.DrawRect(screen, x, y, player.Width, player.Height, c)

	// Facing marker.
	markerX := x + player.Width - 2
	if !player.FacingRight {
		markerX = x
	}
	ebitenutil.DrawRect(screen, markerX, y+2, 2, 4, color.RGBA{255, 255, 255, 255})
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	snap := p.sim.Snapshot()
	hud := fmt.Sprintf(
		"pos (%.0f, %.0f)  vel (%.0f, %.0f)\nground=%v slope=%.0f wall=%s jump=%s\njumps=%d dashes=%d airdash=%d coyote=%.2f",
		snap.Pos.X(), snap.Pos.Y(), snap.Vel.X(), snap.Vel.Y(),
		snap.Grounded, snap.SlopeAngleDeg, snap.WallPhase, snap.JumpPhase,
		snap.JumpsRemaining, snap.DashesRemaining, snap.AirDashesRemaining, snap.CoyoteCounter,
	)
	ebitenutil.DebugPrint(screen, hud)

	if p.replayer != nil {
		progress := fmt.Sprintf("REPLAY %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames())
		ebitenutil.DebugPrintAt(screen, progress, p.screenW-120, 0)
	}
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)
	ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress ESC to resume", p.screenW/2-50, p.screenH/2-20)
}

// OnEnter is called when entering this scene.
func (p *Playing) OnEnter() {
	// Scene is already initialized in New.
}

// OnExit is called when leaving this scene.
func (p *Playing) OnExit() {
	p.saveRecording()
}
