package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/keyframe/app"
	"github.com/milk9111/keyframe/config"
	"github.com/milk9111/keyframe/ecs"
	"github.com/milk9111/keyframe/ecs/render"
	"golang.org/x/image/colornames"
)

type Game struct {
	frames int
	debug  bool

	cfg        config.Config
	configPath string
	sceneName  string

	app     *app.App
	watcher *config.Watcher
}

func NewGame(cfg config.Config, configPath, sceneName string, debug bool) (*Game, error) {
	g := &Game{
		debug:      debug,
		cfg:        cfg,
		configPath: configPath,
		sceneName:  sceneName,
	}
	if err := g.start(cfg); err != nil {
		return nil, err
	}

	if configPath != "" {
		w, err := config.NewWatcher(configPath)
		if err != nil {
			log.Printf("config: watch %s disabled: %v", configPath, err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) start(cfg config.Config) error {
	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	a.World.AddSystem(render.NewSystem())
	g.app = a
	g.cfg = cfg
	return nil
}

// reload swaps in a world built from the config file. An invalid file
// keeps the running world; a world that cannot be rebuilt stops the game.
func (g *Game) reload() error {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		log.Printf("config: reload: %v", err)
		return nil
	}
	if g.sceneName != "" {
		cfg.Scene.Name = g.sceneName
	}

	next, err := app.Reload(g.app, cfg)
	if next == nil {
		g.app = nil
		return err
	}
	next.World.AddSystem(render.NewSystem())
	g.app = next
	g.cfg = next.Config
	if err != nil {
		log.Printf("config: kept previous config: %v", err)
		return nil
	}
	ebiten.SetTPS(cfg.Playback.TPS)
	log.Printf("config: reloaded %s", g.configPath)
	return nil
}

func (g *Game) pollWatcher() error {
	if g.watcher == nil {
		return nil
	}
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return nil
			}
			if err := g.reload(); err != nil {
				return err
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("config: watch: %v", err)
			}
			return nil
		default:
			return nil
		}
	}
}

func (g *Game) Update() error {
	g.frames++

	if err := g.pollWatcher(); err != nil {
		return err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.app.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
	}

	g.app.Step()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)
	ecs.Draw(g.app.World, screen)

	msg := fmt.Sprintf("Frames: %d    FPS: %.2f    t=%.2fs", g.frames, ebiten.ActualFPS(), g.app.Tracks.Elapsed())
	if g.debug {
		msg += fmt.Sprintf("\nscene: %s    clock: %s    finished: %d/%d    [R] restart",
			g.cfg.Scene.Name, g.cfg.Playback.Clock, g.app.Finished.Count(), len(g.app.Subjects))
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.cfg.Window.Width), float64(g.cfg.Window.Height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	if g.app == nil {
		return
	}
	if err := g.app.Close(); err != nil {
		log.Printf("app: close: %v", err)
	}
}
