package anim

import (
	"errors"
	"fmt"
	"math"

	"github.com/milk9111/keyframe/common"
)

var (
	ErrNonPositiveDuration = errors.New("anim: key duration must be positive")
	ErrNegativeDuration    = errors.New("anim: first key duration must not be negative")
	ErrInvalidValue        = errors.New("anim: key value is NaN")
)

// Key is one control point of a scalar Track. Duration is the span leading
// up to this key from the previous one, and Ease shapes the interpolation
// into it.
type Key struct {
	Value    float64
	Duration float64
	Ease     Ease
}

func (k Key) interpolate(previous Key, remaining float64) float64 {
	t := remaining / k.Duration
	return common.Lerp(previous.Value, k.Value, k.Ease.Apply(t))
}

// BoolKey is one control point of a BoolTrack.
type BoolKey struct {
	Value    bool
	Duration float64
}

func validateDuration(i int, d float64) error {
	if i == 0 {
		if d < 0 || math.IsNaN(d) {
			return fmt.Errorf("anim: key %d: %w", i, ErrNegativeDuration)
		}
		return nil
	}
	// NaN fails the comparison too.
	if !(d > 0) {
		return fmt.Errorf("anim: key %d: duration %v: %w", i, d, ErrNonPositiveDuration)
	}
	return nil
}
