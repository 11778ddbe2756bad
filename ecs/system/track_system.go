package system

import (
	"log"

	"github.com/milk9111/keyframe/anim"
	"github.com/milk9111/keyframe/ecs"
	"github.com/milk9111/keyframe/ecs/component"
)

// TrackSystem reads the clock once per update and applies every
// TransformTrack and SpriteTrack in the world at that time.
type TrackSystem struct {
	Clock   anim.Clock
	Workers int

	elapsed float64
}

func NewTrackSystem(clock anim.Clock, workers int) *TrackSystem {
	return &TrackSystem{Clock: clock, Workers: workers}
}

// Elapsed returns the clock value used by the last Update.
func (s *TrackSystem) Elapsed() float64 {
	return s.elapsed
}

func (s *TrackSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.Clock == nil {
		return
	}

	elapsed := s.Clock.Elapsed()
	s.elapsed = elapsed

	var transforms []TransformBinding
	ecs.ForEach2(w, component.TransformTrackComponent, component.TransformComponent, func(e ecs.Entity, tr *component.TransformTrack, t *component.Transform) {
		transforms = append(transforms, TransformBinding{Entity: e, Track: tr, Transform: t})
	})
	if err := UpdateTransforms(elapsed, transforms, s.Workers); err != nil {
		log.Printf("track: %v", err)
	}

	var sprites []SpriteBinding
	ecs.ForEach2(w, component.SpriteTrackComponent, component.SpriteComponent, func(e ecs.Entity, tr *component.SpriteTrack, sp *component.Sprite) {
		sprites = append(sprites, SpriteBinding{Entity: e, Track: tr, Sprite: sp})
	})
	if err := UpdateSprites(elapsed, sprites, s.Workers); err != nil {
		log.Printf("track: %v", err)
	}

	ecs.ForEach(w, component.PlaybackComponent, func(e ecs.Entity, p *component.Playback) {
		if p.Finished || elapsed < subjectDuration(w, e) {
			return
		}
		p.Finished = true
		w.Events().Push(ecs.Event{
			Type: ecs.EventAnimationFinished,
			Data: ecs.AnimationFinishedEvent{Entity: e, Elapsed: elapsed},
		})
	})
}

func subjectDuration(w *ecs.World, e ecs.Entity) float64 {
	var d float64
	if tr, ok := ecs.Get(w, e, component.TransformTrackComponent); ok {
		d = tr.Duration()
	}
	if tr, ok := ecs.Get(w, e, component.SpriteTrackComponent); ok && tr.Duration() > d {
		d = tr.Duration()
	}
	return d
}

// FinishedSystem logs and counts finished subjects. It must run after
// TrackSystem in the same update.
type FinishedSystem struct {
	OnFinished func(ecs.AnimationFinishedEvent)

	count int
}

func NewFinishedSystem() *FinishedSystem {
	return &FinishedSystem{}
}

func (s *FinishedSystem) Count() int {
	return s.count
}

func (s *FinishedSystem) Update(w *ecs.World) {
	for _, evt := range w.Events().Drain() {
		if evt.Type != ecs.EventAnimationFinished {
			continue
		}
		fin, ok := evt.Data.(ecs.AnimationFinishedEvent)
		if !ok {
			continue
		}
		s.count++
		log.Printf("track: entity=%v finished at %.3fs", fin.Entity, fin.Elapsed)
		if s.OnFinished != nil {
			s.OnFinished(fin)
		}
	}
}
