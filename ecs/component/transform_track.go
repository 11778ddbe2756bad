package component

import "github.com/milk9111/keyframe/anim"

// TransformTrack animates a Transform. Empty tracks leave their property
// untouched.
type TransformTrack struct {
	PositionX anim.Track
	PositionY anim.Track
	PositionZ anim.Track
	RotationX anim.Track
	RotationY anim.Track
	RotationZ anim.Track
	ScaleX    anim.Track
	ScaleY    anim.Track
	ScaleZ    anim.Track
}

// Duration returns the end of the longest track.
func (t *TransformTrack) Duration() float64 {
	return maxDuration(
		t.PositionX, t.PositionY, t.PositionZ,
		t.RotationX, t.RotationY, t.RotationZ,
		t.ScaleX, t.ScaleY, t.ScaleZ,
	)
}

var TransformTrackComponent = NewComponent[TransformTrack]()

func maxDuration(tracks ...anim.Track) float64 {
	var d float64
	for _, t := range tracks {
		if t.Len() > 1 && t.Duration() > d {
			d = t.Duration()
		}
	}
	return d
}
