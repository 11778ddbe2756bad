package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

// LoadImage decodes an image file and caches it under key.
func LoadImage(key, path string) (*ebiten.Image, error) {
	if key == "" {
		return nil, fmt.Errorf("render: empty image key")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("render: read %s: %w", path, err)
	}
	im, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("render: decode %s: %w", path, err)
	}
	img := ebiten.NewImageFromImage(im)
	RegisterImage(key, img)
	return img, nil
}

// Placeholder registers a solid w×h image filled with a named colour
// (see golang.org/x/image/colornames), unless key is already registered.
func Placeholder(key string, w, h int, colorName string) (*ebiten.Image, error) {
	if img := GetImage(key); img != nil {
		return img, nil
	}
	c, ok := colornames.Map[colorName]
	if !ok {
		return nil, fmt.Errorf("render: unknown colour name %q", colorName)
	}
	img := ebiten.NewImage(w, h)
	img.Fill(c)
	RegisterImage(key, img)
	return img, nil
}
