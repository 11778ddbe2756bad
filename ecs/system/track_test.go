package system

import (
	"errors"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/milk9111/keyframe/anim"
	"github.com/milk9111/keyframe/ecs"
	"github.com/milk9111/keyframe/ecs/component"
)

type fixedClock float64

func (c fixedClock) Elapsed() float64 { return float64(c) }

func slide() anim.Track {
	return anim.MustTrack(anim.Key{Value: 0}, anim.Key{Value: 500, Duration: 10})
}

func TestApplyTransformTrackLeavesMissingProperties(t *testing.T) {
	tr := &component.TransformTrack{PositionX: slide()}
	xf := component.Transform{X: -1, Y: 7, RotationZ: 0.5, ScaleX: 2, ScaleY: 3, ScaleZ: 1}

	ApplyTransformTrack(5, tr, &xf)

	want := component.Transform{X: 250, Y: 7, RotationZ: 0.5, ScaleX: 2, ScaleY: 3, ScaleZ: 1}
	if xf != want {
		t.Fatalf("transform = %+v, want %+v", xf, want)
	}
}

func TestApplySpriteTrack(t *testing.T) {
	t.Run("untouched_without_values", func(t *testing.T) {
		s := component.NewSprite("icon")
		s.Color = colorful.Color{R: 0.3, G: 0.6, B: 0.9}
		before := s
		ApplySpriteTrack(3, &component.SpriteTrack{
			ColorR: anim.MustTrack(anim.Key{Value: 1}), // single key: no value
		}, &s)
		if s != before {
			t.Fatalf("sprite changed: %+v -> %+v", before, s)
		}
	})

	t.Run("channels_and_flags", func(t *testing.T) {
		s := component.NewSprite("icon")
		track := &component.SpriteTrack{
			ColorR:  anim.MustTrack(anim.Key{Value: 1}, anim.Key{Value: 0, Duration: 2}),
			ColorA:  anim.MustTrack(anim.Key{Value: 1}, anim.Key{Value: 0.5, Duration: 2}),
			FlipX:   anim.MustBoolTrack(anim.BoolKey{Value: false}, anim.BoolKey{Value: true, Duration: 1}),
			AnchorY: anim.MustTrack(anim.Key{Value: 0}, anim.Key{Value: -0.5, Duration: 1}),
		}
		ApplySpriteTrack(2, track, &s)

		r, g, b := s.Color.LinearRgb()
		if math.Abs(r) > 1e-9 || math.Abs(g-1) > 1e-9 || math.Abs(b-1) > 1e-9 {
			t.Fatalf("linear colour = %v,%v,%v, want 0,1,1", r, g, b)
		}
		if s.Alpha != 0.5 {
			t.Fatalf("alpha = %v, want 0.5", s.Alpha)
		}
		if !s.FlipX || s.FlipY {
			t.Fatalf("flip = %v,%v, want true,false", s.FlipX, s.FlipY)
		}
		if s.AnchorY != -0.5 || s.AnchorX != 0 {
			t.Fatalf("anchor = %v,%v", s.AnchorX, s.AnchorY)
		}
	})
}

func TestUpdateTransformsParallelMatchesSequential(t *testing.T) {
	const n = 37
	build := func() ([]TransformBinding, []component.Transform) {
		xfs := make([]component.Transform, n)
		bindings := make([]TransformBinding, n)
		for i := range xfs {
			xfs[i] = component.IdentityTransform()
			bindings[i] = TransformBinding{
				Track: &component.TransformTrack{
					PositionX: anim.MustTrack(anim.Key{Value: float64(i)}, anim.Key{Value: float64(i) * 10, Duration: 4, Ease: anim.EaseInOutSine}),
				},
				Transform: &xfs[i],
			}
		}
		return bindings, xfs
	}

	seqBindings, seq := build()
	parBindings, par := build()
	if err := UpdateTransforms(1.3, seqBindings, 1); err != nil {
		t.Fatal(err)
	}
	if err := UpdateTransforms(1.3, parBindings, 4); err != nil {
		t.Fatal(err)
	}
	for i := range seq {
		if seq[i] != par[i] {
			t.Fatalf("binding %d: sequential %+v != parallel %+v", i, seq[i], par[i])
		}
	}
}

func TestUpdateNilBinding(t *testing.T) {
	xf := component.IdentityTransform()
	bindings := []TransformBinding{
		{Track: &component.TransformTrack{PositionX: slide()}, Transform: &xf},
		{Track: nil, Transform: &xf},
	}
	for _, workers := range []int{1, 2} {
		err := UpdateTransforms(10, bindings, workers)
		if !errors.Is(err, ErrNilBinding) {
			t.Fatalf("workers=%d: err = %v, want ErrNilBinding", workers, err)
		}
		if xf.X != 500 {
			t.Fatalf("workers=%d: valid binding not applied, X = %v", workers, xf.X)
		}
	}
	if err := UpdateSprites(0, []SpriteBinding{{}}, 1); !errors.Is(err, ErrNilBinding) {
		t.Fatalf("sprite err = %v", err)
	}
}

func newSubject(t *testing.T, w *ecs.World) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	xf := component.IdentityTransform()
	sp := component.NewSprite("icon")
	if err := ecs.Add(w, e, component.TransformComponent, &xf); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent, &sp); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.TransformTrackComponent, &component.TransformTrack{PositionX: slide()}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.SpriteTrackComponent, &component.SpriteTrack{
		FlipY: anim.MustBoolTrack(anim.BoolKey{}, anim.BoolKey{Value: true, Duration: 12}),
	}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.PlaybackComponent, &component.Playback{}); err != nil {
		t.Fatal(err)
	}
	return e
}

func TestTrackSystem(t *testing.T) {
	w := ecs.NewWorld()
	e := newSubject(t, w)

	clock := anim.NewStepClock(2)
	ts := NewTrackSystem(clock, 2)
	fs := NewFinishedSystem()
	var finished []ecs.Entity
	fs.OnFinished = func(evt ecs.AnimationFinishedEvent) { finished = append(finished, evt.Entity) }
	w.AddSystem(ts)
	w.AddSystem(fs)

	for i := 0; i < 10; i++ { // 5 seconds
		clock.Tick()
	}
	w.Update()
	if ts.Elapsed() != 5 {
		t.Fatalf("Elapsed() = %v, want 5", ts.Elapsed())
	}
	xf, _ := ecs.Get(w, e, component.TransformComponent)
	if xf.X != 250 {
		t.Fatalf("X = %v, want 250", xf.X)
	}
	if len(finished) != 0 {
		t.Fatalf("finished too early")
	}

	// Position track ends at 10s, flip track at 12s.
	for i := 0; i < 12; i++ {
		clock.Tick()
	}
	w.Update()
	if xf.X != 500 {
		t.Fatalf("X = %v, want 500", xf.X)
	}
	if len(finished) != 0 {
		t.Fatalf("finished before longest track ended")
	}

	for i := 0; i < 4; i++ {
		clock.Tick()
	}
	w.Update()
	w.Update()
	if len(finished) != 1 || finished[0] != e || fs.Count() != 1 {
		t.Fatalf("finished = %v count = %d, want exactly [%v]", finished, fs.Count(), e)
	}
	pb, _ := ecs.Get(w, e, component.PlaybackComponent)
	if !pb.Finished {
		t.Fatalf("playback not marked finished")
	}
}

func TestTrackSystemReadsClockOncePerUpdate(t *testing.T) {
	w := ecs.NewWorld()
	newSubject(t, w)
	newSubject(t, w)
	c := &countingClock{v: 3}
	w.AddSystem(NewTrackSystem(c, 1))
	w.Update()
	if c.reads != 1 {
		t.Fatalf("clock read %d times, want 1", c.reads)
	}
}

type countingClock struct {
	v     float64
	reads int
}

func (c *countingClock) Elapsed() float64 {
	c.reads++
	return c.v
}

