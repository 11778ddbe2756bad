// Package scene builds the demo subjects. Tracks are written as literal key
// lists; there is no file format for them.
package scene

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/milk9111/keyframe/anim"
	"github.com/milk9111/keyframe/ecs"
	"github.com/milk9111/keyframe/ecs/component"
)

var ErrUnknownScene = errors.New("scene: unknown scene")

// Image keys used by the scenes. Hosts register images for them.
const (
	ImageIcon   = "icon"
	ImageSquare = "square"
)

type builder func(w *ecs.World, ease anim.Ease) ([]ecs.Entity, error)

var scenes = map[string]builder{
	"slide": buildSlide,
	"pulse": buildPulse,
	"orbit": buildOrbit,
	"all":   buildAll,
}

// Names returns the scene names in sorted order.
func Names() []string {
	out := make([]string, 0, len(scenes))
	for name := range scenes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Build adds a camera and the named scene's subjects to w. defaultEase is
// used for every key that does not pick its own curve.
func Build(w *ecs.World, name string, defaultEase anim.Ease) ([]ecs.Entity, error) {
	b, ok := scenes[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownScene, name)
	}
	if _, ok := w.First(component.CameraComponent.Kind()); !ok {
		if err := addCamera(w); err != nil {
			return nil, err
		}
	}
	return b(w, defaultEase)
}

func addCamera(w *ecs.World) error {
	e := w.CreateEntity()
	xf := component.IdentityTransform()
	if err := ecs.Add(w, e, component.TransformComponent, &xf); err != nil {
		return err
	}
	return ecs.Add(w, e, component.CameraComponent, &component.Camera{Zoom: 1})
}

type subject struct {
	transform component.Transform
	sprite    component.Sprite
	tracks    *component.TransformTrack
	sprites   *component.SpriteTrack
}

func spawn(w *ecs.World, s subject) (ecs.Entity, error) {
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.TransformComponent, &s.transform); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.SpriteComponent, &s.sprite); err != nil {
		return 0, err
	}
	if s.tracks != nil {
		if err := ecs.Add(w, e, component.TransformTrackComponent, s.tracks); err != nil {
			return 0, err
		}
	}
	if s.sprites != nil {
		if err := ecs.Add(w, e, component.SpriteTrackComponent, s.sprites); err != nil {
			return 0, err
		}
	}
	if err := ecs.Add(w, e, component.PlaybackComponent, &component.Playback{}); err != nil {
		return 0, err
	}
	return e, nil
}

// orEase fills in the default curve for keys without one.
func orEase(e anim.Ease, keys ...anim.Key) []anim.Key {
	for i := 1; i < len(keys); i++ {
		if keys[i].Ease == anim.EaseNone {
			keys[i].Ease = e
		}
	}
	return keys
}

func buildSlide(w *ecs.World, ease anim.Ease) ([]ecs.Entity, error) {
	x, err := anim.NewTrack(orEase(ease,
		anim.Key{Value: 0, Duration: 0},
		anim.Key{Value: 500, Duration: 10},
	)...)
	if err != nil {
		return nil, err
	}

	xf := component.IdentityTransform()
	xf.Y = 200
	e, err := spawn(w, subject{
		transform: xf,
		sprite:    component.NewSprite(ImageIcon),
		tracks:    &component.TransformTrack{PositionX: x},
	})
	if err != nil {
		return nil, err
	}
	return []ecs.Entity{e}, nil
}

func buildPulse(w *ecs.World, ease anim.Ease) ([]ecs.Entity, error) {
	scale := orEase(ease,
		anim.Key{Value: 1},
		anim.Key{Value: 2, Duration: 1, Ease: anim.EaseOutBack},
		anim.Key{Value: 1, Duration: 1},
		anim.Key{Value: 1.5, Duration: 0.5, Ease: anim.EaseOutBounce},
	)
	sx, err := anim.NewTrack(scale...)
	if err != nil {
		return nil, err
	}
	sy, err := anim.NewTrack(scale...)
	if err != nil {
		return nil, err
	}

	// Fade from warm white to a teal tint in linear RGB, then back.
	start, _ := colorful.Hex("#ffd7a8")
	end, _ := colorful.Hex("#2ec4b6")
	r0, g0, b0 := start.LinearRgb()
	r1, g1, b1 := end.LinearRgb()
	channel := func(from, to float64) (anim.Track, error) {
		return anim.NewTrack(orEase(ease,
			anim.Key{Value: from},
			anim.Key{Value: to, Duration: 1.5},
			anim.Key{Value: from, Duration: 1},
		)...)
	}
	cr, err := channel(r0, r1)
	if err != nil {
		return nil, err
	}
	cg, err := channel(g0, g1)
	if err != nil {
		return nil, err
	}
	cb, err := channel(b0, b1)
	if err != nil {
		return nil, err
	}
	alpha, err := anim.NewTrack(
		anim.Key{Value: 1},
		anim.Key{Value: 0.4, Duration: 1.25, Ease: anim.EaseInOutSine},
		anim.Key{Value: 1, Duration: 1.25, Ease: anim.EaseInOutSine},
	)
	if err != nil {
		return nil, err
	}
	flip, err := anim.NewBoolTrack(
		anim.BoolKey{Value: false},
		anim.BoolKey{Value: true, Duration: 1},
		anim.BoolKey{Value: false, Duration: 1},
		anim.BoolKey{Value: true, Duration: 0.5},
	)
	if err != nil {
		return nil, err
	}

	xf := component.IdentityTransform()
	xf.X, xf.Y = 640, 360
	sp := component.NewSprite(ImageIcon)
	sp.Color = start
	e, err := spawn(w, subject{
		transform: xf,
		sprite:    sp,
		tracks:    &component.TransformTrack{ScaleX: sx, ScaleY: sy},
		sprites:   &component.SpriteTrack{ColorR: cr, ColorG: cg, ColorB: cb, ColorA: alpha, FlipX: flip},
	})
	if err != nil {
		return nil, err
	}
	return []ecs.Entity{e}, nil
}

func buildOrbit(w *ecs.World, ease anim.Ease) ([]ecs.Entity, error) {
	rot, err := anim.NewTrack(orEase(ease,
		anim.Key{Value: 0},
		anim.Key{Value: math.Pi, Duration: 2, Ease: anim.EaseInOutCubic},
		anim.Key{Value: 2 * math.Pi, Duration: 2},
	)...)
	if err != nil {
		return nil, err
	}
	// Swinging the anchor out of the image makes the square orbit its
	// position instead of spinning in place.
	anchor, err := anim.NewTrack(orEase(ease,
		anim.Key{Value: 0},
		anim.Key{Value: 1.5, Duration: 1, Ease: anim.EaseOutQuad},
		anim.Key{Value: 1.5, Duration: 2},
		anim.Key{Value: 0, Duration: 1, Ease: anim.EaseInQuad},
	)...)
	if err != nil {
		return nil, err
	}
	y, err := anim.NewTrack(
		anim.Key{Value: 520},
		anim.Key{Value: 480, Duration: 2, Ease: anim.EaseInOutSine},
		anim.Key{Value: 520, Duration: 2, Ease: anim.EaseInOutSine},
	)
	if err != nil {
		return nil, err
	}

	xf := component.IdentityTransform()
	xf.X, xf.Z = 960, 1
	e, err := spawn(w, subject{
		transform: xf,
		sprite:    component.NewSprite(ImageSquare),
		tracks:    &component.TransformTrack{RotationZ: rot, PositionY: y},
		sprites:   &component.SpriteTrack{AnchorX: anchor},
	})
	if err != nil {
		return nil, err
	}
	return []ecs.Entity{e}, nil
}

func buildAll(w *ecs.World, ease anim.Ease) ([]ecs.Entity, error) {
	var out []ecs.Entity
	for _, b := range []builder{buildSlide, buildPulse, buildOrbit} {
		ents, err := b(w, ease)
		if err != nil {
			return nil, err
		}
		out = append(out, ents...)
	}
	return out, nil
}
