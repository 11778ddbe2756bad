package system

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/milk9111/keyframe/anim"
	"github.com/milk9111/keyframe/ecs"
	"github.com/milk9111/keyframe/ecs/component"
	"golang.org/x/sync/errgroup"
)

var ErrNilBinding = errors.New("track: binding has a nil track or target")

// TransformBinding pairs a subject's transform with the track that drives it.
type TransformBinding struct {
	Entity    ecs.Entity
	Track     *component.TransformTrack
	Transform *component.Transform
}

type SpriteBinding struct {
	Entity ecs.Entity
	Track  *component.SpriteTrack
	Sprite *component.Sprite
}

// ApplyTransformTrack writes every property the track produces a value for
// and leaves the rest at their current value.
func ApplyTransformTrack(elapsed float64, track *component.TransformTrack, t *component.Transform) {
	t.X = valueOr(track.PositionX, elapsed, t.X)
	t.Y = valueOr(track.PositionY, elapsed, t.Y)
	t.Z = valueOr(track.PositionZ, elapsed, t.Z)
	t.RotationX = valueOr(track.RotationX, elapsed, t.RotationX)
	t.RotationY = valueOr(track.RotationY, elapsed, t.RotationY)
	t.RotationZ = valueOr(track.RotationZ, elapsed, t.RotationZ)
	t.ScaleX = valueOr(track.ScaleX, elapsed, t.ScaleX)
	t.ScaleY = valueOr(track.ScaleY, elapsed, t.ScaleY)
	t.ScaleZ = valueOr(track.ScaleZ, elapsed, t.ScaleZ)
}

// ApplySpriteTrack is ApplyTransformTrack for sprites. Colour channels are
// evaluated in linear RGB; the stored colour is only rebuilt when a channel
// track produced a value.
func ApplySpriteTrack(elapsed float64, track *component.SpriteTrack, s *component.Sprite) {
	r, g, b := s.Color.LinearRgb()
	changed := false
	for _, ch := range []struct {
		track anim.Track
		dst   *float64
	}{
		{track.ColorR, &r},
		{track.ColorG, &g},
		{track.ColorB, &b},
	} {
		if v, ok := ch.track.Value(elapsed); ok {
			*ch.dst = v
			changed = true
		}
	}
	if changed {
		s.Color = colorful.LinearRgb(r, g, b)
	}

	s.Alpha = valueOr(track.ColorA, elapsed, s.Alpha)
	s.FlipX = boolOr(track.FlipX, elapsed, s.FlipX)
	s.FlipY = boolOr(track.FlipY, elapsed, s.FlipY)
	s.AnchorX = valueOr(track.AnchorX, elapsed, s.AnchorX)
	s.AnchorY = valueOr(track.AnchorY, elapsed, s.AnchorY)
}

// UpdateTransforms evaluates every binding at the same elapsed time. With
// more than one worker the bindings are split into contiguous chunks; each
// binding only touches its own subject so the chunks need no locking.
func UpdateTransforms(elapsed float64, bindings []TransformBinding, workers int) error {
	return partition(len(bindings), workers, func(i int) error {
		b := bindings[i]
		if b.Track == nil || b.Transform == nil {
			return fmt.Errorf("%w: entity=%v", ErrNilBinding, b.Entity)
		}
		ApplyTransformTrack(elapsed, b.Track, b.Transform)
		return nil
	})
}

func UpdateSprites(elapsed float64, bindings []SpriteBinding, workers int) error {
	return partition(len(bindings), workers, func(i int) error {
		b := bindings[i]
		if b.Track == nil || b.Sprite == nil {
			return fmt.Errorf("%w: entity=%v", ErrNilBinding, b.Entity)
		}
		ApplySpriteTrack(elapsed, b.Track, b.Sprite)
		return nil
	})
}

func partition(n, workers int, fn func(i int) error) error {
	if workers <= 1 || n < 2 {
		var errs []error
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}

	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		g.Go(func() error {
			var errs []error
			for i := lo; i < hi; i++ {
				if err := fn(i); err != nil {
					errs = append(errs, err)
				}
			}
			return errors.Join(errs...)
		})
	}
	return g.Wait()
}

func valueOr(t anim.Track, elapsed, current float64) float64 {
	if v, ok := t.Value(elapsed); ok {
		return v
	}
	return current
}

func boolOr(t anim.BoolTrack, elapsed float64, current bool) bool {
	if v, ok := t.Value(elapsed); ok {
		return v
	}
	return current
}
