package system

import (
	"log"

	"github.com/milk9111/keyframe/ecs"
	"github.com/milk9111/keyframe/ecs/component"
	"github.com/milk9111/keyframe/sink"
)

// PublishSystem hands a snapshot of every animated subject to a sink after
// the tracks have been applied. Sink errors are logged and never stop the
// update.
type PublishSystem struct {
	Sink    sink.Sink
	Elapsed func() float64

	seq uint64
}

func NewPublishSystem(s sink.Sink, elapsed func() float64) *PublishSystem {
	return &PublishSystem{Sink: s, Elapsed: elapsed}
}

func (s *PublishSystem) Update(w *ecs.World) {
	if s == nil || s.Sink == nil || w == nil {
		return
	}
	s.seq++
	f := Snapshot(w)
	f.Seq = s.seq
	if s.Elapsed != nil {
		f.Elapsed = s.Elapsed()
	}
	if err := s.Sink.Publish(f); err != nil {
		log.Printf("publish: seq=%d: %v", f.Seq, err)
	}
}

// Snapshot collects the current property values of every entity that has a
// transform or sprite track.
func Snapshot(w *ecs.World) sink.Frame {
	var f sink.Frame
	for _, e := range w.Entities() {
		if !ecs.Has(w, e, component.TransformTrackComponent) && !ecs.Has(w, e, component.SpriteTrackComponent) {
			continue
		}
		sub := sink.Subject{Entity: uint64(e)}
		if t, ok := ecs.Get(w, e, component.TransformComponent); ok {
			sub.Transform = &sink.TransformState{
				Position: [3]float64{t.X, t.Y, t.Z},
				Rotation: [3]float64{t.RotationX, t.RotationY, t.RotationZ},
				Scale:    [3]float64{t.ScaleX, t.ScaleY, t.ScaleZ},
			}
		}
		if sp, ok := ecs.Get(w, e, component.SpriteComponent); ok {
			sub.Sprite = &sink.SpriteState{
				Color:  sp.Color.Clamped().Hex(),
				Alpha:  sp.Alpha,
				FlipX:  sp.FlipX,
				FlipY:  sp.FlipY,
				Anchor: [2]float64{sp.AnchorX, sp.AnchorY},
			}
		}
		f.Subjects = append(f.Subjects, sub)
	}
	return f
}
