package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/milk9111/keyframe/anim"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("config: invalid")

type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Playback  PlaybackConfig  `yaml:"playback"`
	Scene     SceneConfig     `yaml:"scene"`
	MQTT      MQTTConfig      `yaml:"mqtt"`
	WebSocket WebSocketConfig `yaml:"websocket"`
	Log       LogConfig       `yaml:"log"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type PlaybackConfig struct {
	TPS     int `yaml:"tps"`
	Frames  int `yaml:"frames"`
	Workers int `yaml:"workers"`
	// Clock is "wall" (seconds since first update) or "step" (1/TPS per
	// update).
	Clock string `yaml:"clock"`
}

type SceneConfig struct {
	Name string `yaml:"name"`
	// DefaultEase names the curve used for scene keys that do not set one,
	// e.g. "cubic-in". Empty means linear.
	DefaultEase string `yaml:"default_ease"`
	// Images maps scene image keys to PNG files. Keys left out are drawn
	// with solid placeholders.
	Images map[string]string `yaml:"images"`
}

func (s SceneConfig) Ease() (anim.Ease, error) {
	return anim.ParseEase(s.DefaultEase)
}

// MQTTConfig enables the MQTT sink when URL is set.
type MQTTConfig struct {
	URL      string `yaml:"url"`
	ClientID string `yaml:"client_id"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Topic    string `yaml:"topic"`
	QoS      byte   `yaml:"qos"`
}

// WebSocketConfig enables the websocket sink when Addr is set.
type WebSocketConfig struct {
	Addr string `yaml:"addr"`
	Path string `yaml:"path"`
}

type LogConfig struct {
	File string `yaml:"file"`
	// Every logs one published frame in Every; 0 disables frame logging.
	Every uint64 `yaml:"every"`
}

const (
	ClockWall = "wall"
	ClockStep = "step"
)

func Default() Config {
	return Config{
		Window:   WindowConfig{Width: 1280, Height: 720, Title: "keyframe"},
		Playback: PlaybackConfig{TPS: 60, Frames: 100, Workers: 1, Clock: ClockWall},
		Scene:    SceneConfig{Name: "slide"},
		MQTT:     MQTTConfig{ClientID: "keyframe", Topic: "keyframe/frames"},
		WebSocket: WebSocketConfig{
			Path: "/frames",
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Playback.TPS <= 0:
		return fmt.Errorf("%w: playback.tps %d", ErrInvalidConfig, c.Playback.TPS)
	case c.Playback.Frames < 0:
		return fmt.Errorf("%w: playback.frames %d", ErrInvalidConfig, c.Playback.Frames)
	case c.Playback.Workers < 0:
		return fmt.Errorf("%w: playback.workers %d", ErrInvalidConfig, c.Playback.Workers)
	case c.Playback.Clock != ClockWall && c.Playback.Clock != ClockStep:
		return fmt.Errorf("%w: playback.clock %q", ErrInvalidConfig, c.Playback.Clock)
	case c.MQTT.QoS > 2:
		return fmt.Errorf("%w: mqtt.qos %d", ErrInvalidConfig, c.MQTT.QoS)
	case c.MQTT.URL != "" && c.MQTT.Topic == "":
		return fmt.Errorf("%w: mqtt.topic is empty", ErrInvalidConfig)
	}
	if _, err := c.Scene.Ease(); err != nil {
		return fmt.Errorf("%w: scene.default_ease: %v", ErrInvalidConfig, err)
	}
	return nil
}
