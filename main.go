package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/keyframe/app"
	"github.com/milk9111/keyframe/config"
	"github.com/milk9111/keyframe/ecs/render"
	"github.com/milk9111/keyframe/scene"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (watched for changes)")
	sceneName := flag.String("scene", "", "scene to play, overrides scene.name in the config")
	debug := flag.Bool("debug", false, "enable debug overlay")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *sceneName != "" {
		cfg.Scene.Name = *sceneName
	}

	closeLog, err := app.SetupLog(cfg.Log.File)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()

	for key, path := range cfg.Scene.Images {
		if _, err := render.LoadImage(key, path); err != nil {
			log.Printf("render: %v", err)
		}
	}
	if _, err := render.Placeholder(scene.ImageIcon, 64, 64, "orange"); err != nil {
		log.Fatal(err)
	}
	if _, err := render.Placeholder(scene.ImageSquare, 48, 48, "steelblue"); err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Playback.TPS)

	game, err := NewGame(cfg, *configPath, *sceneName, *debug)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
