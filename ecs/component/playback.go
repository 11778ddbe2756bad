package component

// Playback records host-side progress of an animated subject.
type Playback struct {
	Finished bool
}

var PlaybackComponent = NewComponent[Playback]()
