// Command headless plays a scene on a fixed-step clock with no window and
// publishes every frame through the configured sinks.
package main

import (
	"flag"
	"log"

	"github.com/milk9111/keyframe/app"
	"github.com/milk9111/keyframe/config"
	"github.com/milk9111/keyframe/ecs/system"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	sceneName := flag.String("scene", "", "scene to play, overrides scene.name in the config")
	frames := flag.Int("frames", -1, "number of update cycles, overrides playback.frames")
	untilDone := flag.Bool("until-done", false, "stop once every subject has finished")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	cfg.Playback.Clock = config.ClockStep
	if *sceneName != "" {
		cfg.Scene.Name = *sceneName
	}
	if *frames >= 0 {
		cfg.Playback.Frames = *frames
	}

	closeLog, err := app.SetupLog(cfg.Log.File)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()

	a, err := app.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Printf("headless: close: %v", err)
		}
	}()

	n := 0
	for ; n < cfg.Playback.Frames; n++ {
		a.Step()
		if *untilDone && a.Done() {
			n++
			break
		}
	}

	last := system.Snapshot(a.World)
	log.Printf("headless: ran %d frames to t=%.3fs, %d/%d subjects finished",
		n, a.Tracks.Elapsed(), a.Finished.Count(), len(a.Subjects))
	for _, s := range last.Subjects {
		if s.Transform != nil {
			log.Printf("headless: entity=%d position=%v rotation=%v scale=%v",
				s.Entity, s.Transform.Position, s.Transform.Rotation, s.Transform.Scale)
		}
		if s.Sprite != nil {
			log.Printf("headless: entity=%d color=%s alpha=%.3f flip=%t/%t",
				s.Entity, s.Sprite.Color, s.Sprite.Alpha, s.Sprite.FlipX, s.Sprite.FlipY)
		}
	}
}
