package scene

import (
	"errors"
	"reflect"
	"testing"

	"github.com/milk9111/keyframe/anim"
	"github.com/milk9111/keyframe/ecs"
	"github.com/milk9111/keyframe/ecs/component"
	"github.com/milk9111/keyframe/ecs/system"
)

type fixedClock float64

func (c fixedClock) Elapsed() float64 { return float64(c) }

func TestBuildSlide(t *testing.T) {
	cases := []struct {
		name string
		ease anim.Ease
		want float64
	}{
		{"linear", anim.EaseNone, 250},
		{"cubic_in", anim.EaseInCubic, 62.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			ents, err := Build(w, "slide", c.ease)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if len(ents) != 1 {
				t.Fatalf("got %d subjects, want 1", len(ents))
			}
			w.AddSystem(system.NewTrackSystem(fixedClock(5), 1))
			w.Update()

			xf, ok := ecs.Get(w, ents[0], component.TransformComponent)
			if !ok {
				t.Fatalf("subject has no transform")
			}
			if xf.X != c.want {
				t.Fatalf("X at 5s = %v, want %v", xf.X, c.want)
			}
			if xf.Y != 200 {
				t.Fatalf("untracked Y changed to %v", xf.Y)
			}
		})
	}
}

func TestBuildAll(t *testing.T) {
	w := ecs.NewWorld()
	ents, err := Build(w, "all", anim.EaseNone)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(ents) != 3 {
		t.Fatalf("got %d subjects, want 3", len(ents))
	}
	if cams := w.Query(component.CameraComponent.Kind()); len(cams) != 1 {
		t.Fatalf("got %d cameras, want 1", len(cams))
	}
	// A second build reuses the camera.
	if _, err := Build(w, "orbit", anim.EaseNone); err != nil {
		t.Fatal(err)
	}
	if cams := w.Query(component.CameraComponent.Kind()); len(cams) != 1 {
		t.Fatalf("camera duplicated")
	}

	ts := system.NewTrackSystem(fixedClock(100), 1)
	w.AddSystem(ts)
	w.Update()
	for _, e := range ents {
		pb, ok := ecs.Get(w, e, component.PlaybackComponent)
		if !ok || !pb.Finished {
			t.Fatalf("entity %v not finished at 100s", e)
		}
	}
}

func TestBuildUnknown(t *testing.T) {
	_, err := Build(ecs.NewWorld(), "nope", anim.EaseNone)
	if !errors.Is(err, ErrUnknownScene) {
		t.Fatalf("err = %v, want ErrUnknownScene", err)
	}
}

func TestNames(t *testing.T) {
	want := []string{"all", "orbit", "pulse", "slide"}
	if got := Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
}
