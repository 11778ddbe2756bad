package render

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/milk9111/keyframe/ecs/component"
)

func TestDrawOptionsGeoM(t *testing.T) {
	type point struct{ x, y float64 }
	cases := []struct {
		name             string
		anchorX, anchorY float64
		flipX            bool
		camX, zoom       float64
		// image-space point -> expected screen point
		in, want point
	}{
		{"centre_anchor_origin", 0, 0, false, 0, 1, point{0, 0}, point{90, 45}},
		{"centre_anchor_lands_on_position", 0, 0, false, 0, 1, point{10, 5}, point{100, 50}},
		{"bottom_left_anchor_lands_on_position", -0.5, -0.5, false, 0, 1, point{0, 10}, point{100, 50}},
		{"bottom_left_anchor_origin", -0.5, -0.5, false, 0, 1, point{0, 0}, point{100, 40}},
		{"flip_x_mirrors_left_edge", 0, 0, true, 0, 1, point{0, 0}, point{110, 45}},
		{"flip_x_mirrors_right_edge", 0, 0, true, 0, 1, point{20, 0}, point{90, 45}},
		{"camera_and_zoom", 0, 0, false, 50, 2, point{10, 5}, point{100, 100}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			xf := component.IdentityTransform()
			xf.X, xf.Y = 100, 50
			sp := component.NewSprite("img")
			sp.AnchorX, sp.AnchorY = c.anchorX, c.anchorY
			sp.FlipX = c.flipX

			op := drawOptions(&xf, &sp, 20, 10, c.camX, 0, c.zoom)
			x, y := op.GeoM.Apply(c.in.x, c.in.y)
			if x != c.want.x || y != c.want.y {
				t.Fatalf("Apply(%v, %v) = (%v, %v), want (%v, %v)", c.in.x, c.in.y, x, y, c.want.x, c.want.y)
			}
		})
	}
}

func TestDrawOptionsColor(t *testing.T) {
	xf := component.IdentityTransform()
	sp := component.NewSprite("img")
	sp.Color = colorful.Color{R: 1}
	sp.Alpha = 0.5

	op := drawOptions(&xf, &sp, 4, 4, 0, 0, 1)
	cs := op.ColorScale
	if cs.R() != 0.5 || cs.G() != 0 || cs.B() != 0 || cs.A() != 0.5 {
		t.Fatalf("color scale = (%v, %v, %v, %v), want (0.5, 0, 0, 0.5)", cs.R(), cs.G(), cs.B(), cs.A())
	}
}
