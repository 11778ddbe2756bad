// Package app wires a configured scene, clock and sinks into an ECS world.
// Hosts add their own render systems and drive Step once per frame.
package app

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/milk9111/keyframe/anim"
	"github.com/milk9111/keyframe/config"
	"github.com/milk9111/keyframe/ecs"
	"github.com/milk9111/keyframe/ecs/component"
	"github.com/milk9111/keyframe/ecs/system"
	"github.com/milk9111/keyframe/scene"
	"github.com/milk9111/keyframe/sink"
)

type App struct {
	Config   config.Config
	World    *ecs.World
	Clock    anim.Clock
	Tracks   *system.TrackSystem
	Finished *system.FinishedSystem
	Subjects []ecs.Entity

	sinks sink.Multi
}

// New builds the world for cfg. Extra sinks are published to alongside the
// ones the config enables.
func New(cfg config.Config, extra ...sink.Sink) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ease, err := cfg.Scene.Ease()
	if err != nil {
		return nil, err
	}

	a := &App{Config: cfg, World: ecs.NewWorld(), Clock: NewClock(cfg.Playback)}
	a.Subjects, err = scene.Build(a.World, cfg.Scene.Name, ease)
	if err != nil {
		return nil, err
	}

	a.sinks, err = OpenSinks(cfg)
	if err != nil {
		return nil, err
	}
	a.sinks = append(a.sinks, extra...)

	a.Tracks = system.NewTrackSystem(a.Clock, cfg.Playback.Workers)
	a.Finished = system.NewFinishedSystem()
	a.World.AddSystem(a.Tracks)
	a.World.AddSystem(a.Finished)
	if len(a.sinks) > 0 {
		a.World.AddSystem(system.NewPublishSystem(a.sinks, a.Tracks.Elapsed))
	}

	log.Printf("app: scene=%s subjects=%d clock=%s ease=%v sinks=%d",
		cfg.Scene.Name, len(a.Subjects), cfg.Playback.Clock, ease, len(a.sinks))
	return a, nil
}

func NewClock(cfg config.PlaybackConfig) anim.Clock {
	if cfg.Clock == config.ClockStep {
		return anim.NewStepClock(cfg.TPS)
	}
	return anim.NewWallClock()
}

// OpenSinks connects every sink the config enables. On error the sinks
// opened so far are closed.
func OpenSinks(cfg config.Config) (sink.Multi, error) {
	var sinks sink.Multi
	if cfg.Log.Every > 0 {
		sinks = append(sinks, &sink.LogSink{Every: cfg.Log.Every})
	}
	if cfg.MQTT.URL != "" {
		s, err := sink.NewMQTTSink(sink.MQTTConfig{
			URL:      cfg.MQTT.URL,
			ClientID: cfg.MQTT.ClientID,
			Username: cfg.MQTT.Username,
			Password: cfg.MQTT.Password,
			Topic:    cfg.MQTT.Topic,
			QoS:      cfg.MQTT.QoS,
		})
		if err != nil {
			_ = sinks.Close()
			return nil, err
		}
		sinks = append(sinks, s)
	}
	if cfg.WebSocket.Addr != "" {
		s := sink.NewWSSink()
		if err := s.Listen(cfg.WebSocket.Addr, cfg.WebSocket.Path); err != nil {
			_ = sinks.Close()
			return nil, err
		}
		sinks = append(sinks, s)
	}
	return sinks, nil
}

// Step runs one update cycle. A step clock advances after the update so the
// first cycle evaluates at zero.
func (a *App) Step() {
	a.World.Update()
	if c, ok := a.Clock.(*anim.StepClock); ok {
		c.Tick()
	}
}

// Done reports whether every subject has played to its end.
func (a *App) Done() bool {
	for _, e := range a.Subjects {
		pb, ok := ecs.Get(a.World, e, component.PlaybackComponent)
		if ok && !pb.Finished {
			return false
		}
	}
	return true
}

// Restart rewinds the clock and clears every subject's finished flag.
func (a *App) Restart() {
	switch c := a.Clock.(type) {
	case *anim.WallClock:
		c.Reset()
	case *anim.StepClock:
		c.Reset()
	}
	for _, e := range a.Subjects {
		if pb, ok := ecs.Get(a.World, e, component.PlaybackComponent); ok {
			pb.Finished = false
		}
	}
}

// Reload closes a and builds a world for cfg. The old sinks are closed
// first so their listeners can be re-bound. If cfg fails to start, a world
// for a's config is rebuilt and returned together with the error; a nil App
// means neither could start.
func Reload(a *App, cfg config.Config) (*App, error) {
	prev := a.Config
	if err := a.Close(); err != nil {
		log.Printf("app: close: %v", err)
	}
	next, err := New(cfg)
	if err == nil {
		return next, nil
	}
	restored, rerr := New(prev)
	if rerr != nil {
		return nil, fmt.Errorf("app: reload: %w; restore previous config: %v", err, rerr)
	}
	return restored, fmt.Errorf("app: reload: %w", err)
}

func (a *App) Close() error {
	return a.sinks.Close()
}

// SetupLog tees the standard logger into path. The returned func closes the
// file.
func SetupLog(path string) (func() error, error) {
	if path == "" {
		return func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("app: open log %s: %w", path, err)
	}
	log.SetOutput(io.MultiWriter(f, os.Stderr))
	return func() error {
		log.SetOutput(os.Stderr)
		return f.Close()
	}, nil
}
