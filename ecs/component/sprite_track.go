package component

import "github.com/milk9111/keyframe/anim"

// SpriteTrack animates a Sprite. Colour channels are in linear RGB.
type SpriteTrack struct {
	ColorR  anim.Track
	ColorG  anim.Track
	ColorB  anim.Track
	ColorA  anim.Track
	FlipX   anim.BoolTrack
	FlipY   anim.BoolTrack
	AnchorX anim.Track
	AnchorY anim.Track
}

func (t *SpriteTrack) Duration() float64 {
	d := maxDuration(t.ColorR, t.ColorG, t.ColorB, t.ColorA, t.AnchorX, t.AnchorY)
	for _, b := range []anim.BoolTrack{t.FlipX, t.FlipY} {
		if b.Len() > 1 && b.Duration() > d {
			d = b.Duration()
		}
	}
	return d
}

var SpriteTrackComponent = NewComponent[SpriteTrack]()
