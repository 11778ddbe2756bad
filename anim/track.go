package anim

import (
	"fmt"
	"math"
)

// Track is an ordered, immutable list of Keys describing a piecewise curve
// over elapsed time. The zero value is an empty track that never produces a
// value.
type Track struct {
	keys []Key
}

// NewTrack copies keys into a Track. Every key after the first must have a
// positive duration.
func NewTrack(keys ...Key) (Track, error) {
	for i, k := range keys {
		if err := validateDuration(i, k.Duration); err != nil {
			return Track{}, err
		}
		if math.IsNaN(k.Value) {
			return Track{}, fmt.Errorf("anim: key %d: %w", i, ErrInvalidValue)
		}
	}
	if len(keys) == 0 {
		return Track{}, nil
	}
	return Track{keys: append([]Key(nil), keys...)}, nil
}

// MustTrack is like NewTrack but panics if the keys are invalid.
func MustTrack(keys ...Key) Track {
	t, err := NewTrack(keys...)
	if err != nil {
		panic(err)
	}
	return t
}

// Value evaluates the track at elapsed seconds. The first key is only ever
// the starting point, so a track with fewer than two keys reports no value.
// Past the final key the last value is held.
func (t Track) Value(elapsed float64) (float64, bool) {
	if len(t.keys) == 0 {
		return 0, false
	}

	var (
		value float64
		ok    bool
	)
	remaining := elapsed
	previous := t.keys[0]
	for _, k := range t.keys[1:] {
		if remaining > k.Duration {
			remaining -= k.Duration
			value, ok = k.Value, true
			previous = k
			continue
		}
		return k.interpolate(previous, remaining), true
	}

	return value, ok
}

// Len returns the number of keys.
func (t Track) Len() int {
	return len(t.keys)
}

// Keys returns a copy of the track's keys.
func (t Track) Keys() []Key {
	return append([]Key(nil), t.keys...)
}

// Duration returns the elapsed time at which the track reaches its last key.
func (t Track) Duration() float64 {
	var total float64
	for i := 1; i < len(t.keys); i++ {
		total += t.keys[i].Duration
	}
	return total
}
