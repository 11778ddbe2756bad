package render

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/keyframe/ecs"
	"github.com/milk9111/keyframe/ecs/component"
)

// System draws every entity with a Transform and a Sprite, ordered by Z.
type System struct {
	camEntity ecs.Entity
}

func NewSystem() *System {
	return &System{}
}

// Update is a no-op; drawing happens in Draw.
func (r *System) Update(w *ecs.World) {}

func (r *System) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	if !r.camEntity.Valid() || !w.IsAlive(r.camEntity) {
		if camEntity, ok := w.First(component.CameraComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}

	camX, camY := 0.0, 0.0
	zoom := 1.0
	// Fetch the camera entity's transform
	if camTransform, ok := ecs.Get(w, r.camEntity, component.TransformComponent); ok {
		camX = camTransform.X
		camY = camTransform.Y
	}
	if camComp, ok := ecs.Get(w, r.camEntity, component.CameraComponent); ok {
		if camComp.Zoom > 0 {
			zoom = camComp.Zoom
		}
	}

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	depth := make(map[ecs.Entity]float64, len(entities))
	for _, e := range entities {
		if t, ok := ecs.Get(w, e, component.TransformComponent); ok {
			depth[e] = t.Z
		}
	}
	sort.SliceStable(entities, func(i, j int) bool {
		zi, zj := depth[entities[i]], depth[entities[j]]
		if zi != zj {
			return zi < zj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		if e == r.camEntity {
			continue
		}

		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.SpriteComponent)
		if !ok {
			continue
		}
		img := GetImage(s.Image)
		if img == nil {
			continue
		}

		screen.DrawImage(img, drawOptions(t, s, img.Bounds().Dx(), img.Bounds().Dy(), camX, camY, zoom))
	}
}

func drawOptions(t *component.Transform, s *component.Sprite, imgW, imgH int, camX, camY, zoom float64) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}

	// Anchor (0,0) is the image centre with y pointing up.
	ox := (0.5 + s.AnchorX) * float64(imgW)
	oy := (0.5 - s.AnchorY) * float64(imgH)
	op.GeoM.Translate(-ox, -oy)

	sx, sy := t.ScaleX, t.ScaleY
	if s.FlipX {
		sx = -sx
	}
	if s.FlipY {
		sy = -sy
	}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Rotate(t.RotationZ)
	op.GeoM.Scale(zoom, zoom)
	op.GeoM.Translate((t.X-camX)*zoom, (t.Y-camY)*zoom)

	op.ColorScale.ScaleWithColor(s.Color.Clamped())
	op.ColorScale.ScaleAlpha(float32(s.Alpha))
	op.Filter = ebiten.FilterLinear
	return op
}
