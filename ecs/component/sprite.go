package component

import "github.com/lucasb-eyer/go-colorful"

type Sprite struct {
	// Image is a key into the render image registry.
	Image string
	Color colorful.Color
	Alpha float64
	FlipX bool
	FlipY bool
	// AnchorX and AnchorY place the origin inside the image: (0, 0) is the
	// centre, (-0.5, -0.5) the bottom-left corner.
	AnchorX float64
	AnchorY float64
}

// NewSprite returns an untinted, opaque, centred sprite.
func NewSprite(image string) Sprite {
	return Sprite{Image: image, Color: colorful.Color{R: 1, G: 1, B: 1}, Alpha: 1}
}

var SpriteComponent = NewComponent[Sprite]()
