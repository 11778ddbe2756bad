package anim

import (
	"errors"
	"math"
	"testing"
)

func TestEaseEndpoints(t *testing.T) {
	for _, e := range Eases() {
		switch e {
		case EaseInElastic, EaseOutElastic, EaseInOutElastic:
			// the decaying sine does not land exactly on 0 and 1
			continue
		}
		t.Run(e.String(), func(t *testing.T) {
			if got := e.Apply(0); math.Abs(got) > 1e-9 {
				t.Errorf("Apply(0) = %v, want 0", got)
			}
			if got := e.Apply(1); math.Abs(got-1) > 1e-9 {
				t.Errorf("Apply(1) = %v, want 1", got)
			}
		})
	}
}

func TestEaseKnownValues(t *testing.T) {
	cases := []struct {
		e    Ease
		t    float64
		want float64
	}{
		{EaseNone, 0.3, 0.3},
		{EaseInQuad, 0.5, 0.25},
		{EaseOutQuad, 0.5, 0.75},
		{EaseInCubic, 0.5, 0.125},
		{EaseOutCubic, 0.5, 0.875},
		{EaseInQuart, 0.5, 0.0625},
		{EaseInQuint, 0.5, 0.03125},
		{EaseInOutCubic, 0.5, 0.5},
	}
	for _, c := range cases {
		if got := c.e.Apply(c.t); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("%v.Apply(%v) = %v, want %v", c.e, c.t, got, c.want)
		}
	}
}

func TestEaseOutOfRangeIsNotClamped(t *testing.T) {
	cases := []struct {
		e    Ease
		t    float64
		want float64
	}{
		{EaseNone, 1.5, 1.5},
		{EaseNone, -2, -2},
		{EaseInQuad, -1, 1},
		{EaseInCubic, 2, 8},
		{EaseInCubic, -1, -1},
	}
	for _, c := range cases {
		if got := c.e.Apply(c.t); got != c.want {
			t.Errorf("%v.Apply(%v) = %v, want %v", c.e, c.t, got, c.want)
		}
	}
	if got := EaseInCirc.Apply(2); !math.IsNaN(got) {
		t.Errorf("InCirc outside its domain = %v, want NaN", got)
	}
}

func TestUnknownEaseIsIdentity(t *testing.T) {
	e := Ease(200)
	if got := e.Apply(0.42); got != 0.42 {
		t.Fatalf("Apply = %v, want 0.42", got)
	}
	if e.String() != "Ease(200)" {
		t.Fatalf("String() = %q", e.String())
	}
}

func TestParseEase(t *testing.T) {
	cases := map[string]Ease{
		"cubic-in":       EaseInCubic,
		"in-cubic":       EaseInCubic,
		"InCubic":        EaseInCubic,
		"easeInOutQuad":  EaseInOutQuad,
		"bounce_in_out":  EaseInOutBounce,
		"  ELASTIC-OUT ": EaseOutElastic,
		"linear":         EaseNone,
		"none":           EaseNone,
		"":               EaseNone,
	}
	for name, want := range cases {
		got, err := ParseEase(name)
		if err != nil {
			t.Errorf("ParseEase(%q): %v", name, err)
			continue
		}
		if got != want {
			t.Errorf("ParseEase(%q) = %v, want %v", name, got, want)
		}
	}

	if _, err := ParseEase("wobble"); !errors.Is(err, ErrUnknownEase) {
		t.Fatalf("ParseEase(wobble) err = %v, want ErrUnknownEase", err)
	}
}

func TestEaseStringRoundTrip(t *testing.T) {
	for _, e := range Eases() {
		got, err := ParseEase(e.String())
		if err != nil || got != e {
			t.Errorf("ParseEase(%q) = %v, %v; want %v", e.String(), got, err, e)
		}
	}
}

func TestEaseUnmarshalText(t *testing.T) {
	var e Ease
	if err := e.UnmarshalText([]byte("sine-out")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if e != EaseOutSine {
		t.Fatalf("got %v, want sine-out", e)
	}
	if err := e.UnmarshalText([]byte("nope")); err == nil {
		t.Fatalf("expected error")
	}
}
