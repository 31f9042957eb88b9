package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/greyfall/stride/internal/application/game"
	"github.com/greyfall/stride/internal/application/replay"
	"github.com/greyfall/stride/internal/application/scene/playing"
	"github.com/greyfall/stride/internal/application/sim"
	"github.com/greyfall/stride/internal/domain/entity"
	"github.com/greyfall/stride/internal/infrastructure/config"
)

//go:embed configs
var embeddedConfigs embed.FS

func main() {
	var (
		stageName    = flag.String("stage", "demo", "stage name to load")
		recordPath   = flag.String("record", "", "record inputs to this file")
		replayPath   = flag.String("replay", "", "play back a recorded session")
		headless     = flag.Bool("headless", false, "run a replay without a window")
		configDir    = flag.String("configs", "", "load configs from this directory instead of the embedded set (enables hot reload)")
		noWallStick  = flag.Bool("no-wallstick", false, "disable the wall-stick ability")
		noDoubleJump = flag.Bool("no-doublejump", false, "disable the double-jump ability")
		noDash       = flag.Bool("no-dash", false, "disable the ground dash ability")
		noAirDash    = flag.Bool("no-airdash", false, "disable the air dash ability")
	)
	flag.Parse()

	loader, err := newLoader(*configDir)
	if err != nil {
		log.Fatalf("Failed to open configs: %v", err)
	}
	cfg, err := loader.LoadTuning()
	if err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}

	caps := &entity.Capabilities{
		WallStick:  !*noWallStick,
		DoubleJump: !*noDoubleJump,
		Dash:       !*noDash,
		AirDash:    !*noAirDash,
	}

	var replayer *replay.Replayer
	if *replayPath != "" {
		data, err := replay.LoadReplay(*replayPath)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		replayer = replay.NewReplayer(*data)
		// The recording fixes stage and abilities.
		*stageName = replayer.Stage()
		caps = replayer.Capabilities()
		log.Printf("Replay loaded: %s (%d frames, stage %s)", *replayPath, replayer.TotalFrames(), *stageName)
	}

	stageCfg, err := loader.LoadStage(*stageName)
	if err != nil {
		log.Fatalf("Failed to load stage %q: %v", *stageName, err)
	}
	stage, platforms, checkpoints, err := config.BuildWorld(stageCfg)
	if err != nil {
		log.Fatalf("Failed to build stage %q: %v", *stageName, err)
	}

	simulator := sim.New(cfg, stage, platforms, checkpoints, caps)

	if *headless {
		if replayer == nil {
			log.Fatal("-headless requires -replay")
		}
		runHeadless(simulator, replayer)
		return
	}

	var reload <-chan *config.Tuning
	if *configDir != "" {
		ch, stopWatch, err := watchTuning(*configDir, loader)
		if err != nil {
			log.Printf("Config hot reload disabled: %v", err)
		} else {
			defer stopWatch()
			reload = ch
		}
	}

	var sc *playing.Playing
	if replayer != nil {
		sc = playing.NewReplay(cfg, simulator, replayer)
	} else {
		sc = playing.New(cfg, simulator, *stageName, *recordPath, caps)
	}
	sc.SetReloadChannel(reload)

	g := game.New(sc, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, simulator.DT())

	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale, cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle("Stride")
	ebiten.SetTPS(cfg.Display.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}
}

// newLoader picks the embedded config set unless a directory override
// is given.
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	sub, err := fs.Sub(embeddedConfigs, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(sub), nil
}

// watchTuning parses tuning.json whenever the config directory changes
// and publishes the fresh config on the returned channel. The game loop
// applies it between simulation steps; the shared Tuning struct is
// never written from this goroutine. Stage geometry is not
// hot-reloaded; a stage edit needs a restart.
func watchTuning(dir string, loader *config.Loader) (<-chan *config.Tuning, func(), error) {
	watcher, err := config.NewWatcher(dir)
	if err != nil {
		return nil, nil, err
	}

	reload := make(chan *config.Tuning, 1)
	go func() {
		defer close(reload)
		for {
			select {
			case _, ok := <-watcher.Events:
				if !ok {
					return
				}
				fresh, err := loader.LoadTuning()
				if err != nil {
					log.Printf("Tuning reload failed: %v", err)
					continue
				}
				// Keep only the newest pending config.
				select {
				case <-reload:
				default:
				}
				reload <- fresh
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("Config watcher error: %v", err)
			}
		}
	}()

	return reload, func() { _ = watcher.Close() }, nil
}
