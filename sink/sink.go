// Package sink publishes evaluated property values to collaborators outside
// the process.
package sink

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
)

// Frame is a snapshot of every animated subject after one update cycle.
type Frame struct {
	Seq      uint64    `json:"seq"`
	Elapsed  float64   `json:"elapsed"`
	Subjects []Subject `json:"subjects"`
}

type Subject struct {
	Entity    uint64          `json:"entity"`
	Transform *TransformState `json:"transform,omitempty"`
	Sprite    *SpriteState    `json:"sprite,omitempty"`
}

type TransformState struct {
	Position [3]float64 `json:"position"`
	Rotation [3]float64 `json:"rotation"`
	Scale    [3]float64 `json:"scale"`
}

type SpriteState struct {
	Color  string     `json:"color"`
	Alpha  float64    `json:"alpha"`
	FlipX  bool       `json:"flip_x"`
	FlipY  bool       `json:"flip_y"`
	Anchor [2]float64 `json:"anchor"`
}

// Encode returns the JSON payload sent for a frame.
func Encode(f Frame) ([]byte, error) {
	return json.Marshal(f)
}

// Sink receives one Frame per update cycle.
type Sink interface {
	Publish(f Frame) error
	Close() error
}

// Multi fans a frame out to several sinks, collecting every error.
type Multi []Sink

func (m Multi) Publish(f Frame) error {
	var errs []error
	for _, s := range m {
		if err := s.Publish(f); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m Multi) Close() error {
	var errs []error
	for _, s := range m {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LogSink writes a one-line summary of each frame.
type LogSink struct {
	Logger *log.Logger
	// Every logs one frame in Every; 0 or 1 logs all of them.
	Every uint64
}

func (s *LogSink) Publish(f Frame) error {
	if s.Every > 1 && f.Seq%s.Every != 0 {
		return nil
	}
	logf := log.Printf
	if s.Logger != nil {
		logf = s.Logger.Printf
	}
	for _, sub := range f.Subjects {
		switch {
		case sub.Transform != nil && sub.Sprite != nil:
			logf("frame: seq=%d t=%.3f entity=%d pos=%.2f rot=%.2f scale=%.2f color=%s alpha=%.2f flip=%v,%v",
				f.Seq, f.Elapsed, sub.Entity, sub.Transform.Position, sub.Transform.Rotation, sub.Transform.Scale,
				sub.Sprite.Color, sub.Sprite.Alpha, sub.Sprite.FlipX, sub.Sprite.FlipY)
		case sub.Transform != nil:
			logf("frame: seq=%d t=%.3f entity=%d pos=%.2f rot=%.2f scale=%.2f",
				f.Seq, f.Elapsed, sub.Entity, sub.Transform.Position, sub.Transform.Rotation, sub.Transform.Scale)
		case sub.Sprite != nil:
			logf("frame: seq=%d t=%.3f entity=%d color=%s alpha=%.2f flip=%v,%v",
				f.Seq, f.Elapsed, sub.Entity, sub.Sprite.Color, sub.Sprite.Alpha, sub.Sprite.FlipX, sub.Sprite.FlipY)
		}
	}
	return nil
}

func (s *LogSink) Close() error { return nil }

// Recorder keeps every published frame in memory.
type Recorder struct {
	mu     sync.Mutex
	frames []Frame
}

func (r *Recorder) Publish(f Frame) error {
	r.mu.Lock()
	r.frames = append(r.frames, f)
	r.mu.Unlock()
	return nil
}

func (r *Recorder) Close() error { return nil }

func (r *Recorder) Frames() []Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Frame(nil), r.frames...)
}
