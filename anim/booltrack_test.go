package anim

import (
	"errors"
	"testing"
)

func TestBoolTrackDelayedSwitch(t *testing.T) {
	tr, err := NewBoolTrack(
		BoolKey{Value: false},
		BoolKey{Value: true, Duration: 5},
		BoolKey{Value: false, Duration: 5},
	)
	if err != nil {
		t.Fatalf("NewBoolTrack: %v", err)
	}

	cases := []struct {
		name    string
		elapsed float64
		want    bool
	}{
		{"start", 0, false},
		{"inside_first_segment", 2, false},
		{"first_boundary", 5, false},
		{"inside_second_segment", 6, true},
		{"second_boundary", 10, true},
		// Past the end the last key crossed is reported.
		{"tail", 11, false},
		{"tail_far", 500, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := tr.Value(c.elapsed)
			if !ok {
				t.Fatalf("Value(%v) returned no value", c.elapsed)
			}
			if got != c.want {
				t.Fatalf("Value(%v) = %v, want %v", c.elapsed, got, c.want)
			}
		})
	}
}

func TestBoolTrackTwoKeys(t *testing.T) {
	tr := MustBoolTrack(BoolKey{Value: false}, BoolKey{Value: true, Duration: 1})
	if v, _ := tr.Value(0.5); v {
		t.Fatalf("Value(0.5) = true, want previous key's false")
	}
	if v, _ := tr.Value(1.5); !v {
		t.Fatalf("Value(1.5) = false, want held true")
	}
	if tr.Duration() != 1 || tr.Len() != 2 {
		t.Fatalf("Duration/Len = %v/%d", tr.Duration(), tr.Len())
	}
}

func TestBoolTrackFewerThanTwoKeys(t *testing.T) {
	for _, tr := range []BoolTrack{{}, MustBoolTrack(BoolKey{Value: true})} {
		for _, elapsed := range []float64{0, 1, 10} {
			if _, ok := tr.Value(elapsed); ok {
				t.Fatalf("Value(%v) produced a value for a %d-key track", elapsed, tr.Len())
			}
		}
	}
}

func TestNewBoolTrackRejectsZeroDuration(t *testing.T) {
	_, err := NewBoolTrack(BoolKey{}, BoolKey{Value: true})
	if !errors.Is(err, ErrNonPositiveDuration) {
		t.Fatalf("err = %v, want ErrNonPositiveDuration", err)
	}
}
