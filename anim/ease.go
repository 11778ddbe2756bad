package anim

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fogleman/ease"
)

var ErrUnknownEase = errors.New("anim: unknown ease")

// Ease names an easing curve applied to the normalized progress of a
// segment. The zero value is EaseNone, which leaves progress unchanged.
//
// Curves are evaluated by formula and never clamp their input. The Circ
// family takes a square root and returns NaN outside its domain: InCirc for
// |t| > 1, OutCirc for t < 0 or t > 2, InOutCirc for t outside [-0.5, 1.5].
// InExpo and OutExpo return exactly 0 and 1 at t == 0 and t == 1.
type Ease uint8

const (
	EaseNone Ease = iota
	EaseInQuad
	EaseOutQuad
	EaseInOutQuad
	EaseInCubic
	EaseOutCubic
	EaseInOutCubic
	EaseInQuart
	EaseOutQuart
	EaseInOutQuart
	EaseInQuint
	EaseOutQuint
	EaseInOutQuint
	EaseInSine
	EaseOutSine
	EaseInOutSine
	EaseInExpo
	EaseOutExpo
	EaseInOutExpo
	EaseInCirc
	EaseOutCirc
	EaseInOutCirc
	EaseInElastic
	EaseOutElastic
	EaseInOutElastic
	EaseInBack
	EaseOutBack
	EaseInOutBack
	EaseInBounce
	EaseOutBounce
	EaseInOutBounce

	easeCount
)

type easeDef struct {
	family string
	dir    string
	fn     func(float64) float64
}

var easeDefs = [easeCount]easeDef{
	EaseNone:         {"linear", "", identity},
	EaseInQuad:       {"quad", "in", ease.InQuad},
	EaseOutQuad:      {"quad", "out", ease.OutQuad},
	EaseInOutQuad:    {"quad", "in-out", ease.InOutQuad},
	EaseInCubic:      {"cubic", "in", ease.InCubic},
	EaseOutCubic:     {"cubic", "out", ease.OutCubic},
	EaseInOutCubic:   {"cubic", "in-out", ease.InOutCubic},
	EaseInQuart:      {"quart", "in", ease.InQuart},
	EaseOutQuart:     {"quart", "out", ease.OutQuart},
	EaseInOutQuart:   {"quart", "in-out", ease.InOutQuart},
	EaseInQuint:      {"quint", "in", ease.InQuint},
	EaseOutQuint:     {"quint", "out", ease.OutQuint},
	EaseInOutQuint:   {"quint", "in-out", ease.InOutQuint},
	EaseInSine:       {"sine", "in", ease.InSine},
	EaseOutSine:      {"sine", "out", ease.OutSine},
	EaseInOutSine:    {"sine", "in-out", ease.InOutSine},
	EaseInExpo:       {"expo", "in", ease.InExpo},
	EaseOutExpo:      {"expo", "out", ease.OutExpo},
	EaseInOutExpo:    {"expo", "in-out", ease.InOutExpo},
	EaseInCirc:       {"circ", "in", ease.InCirc},
	EaseOutCirc:      {"circ", "out", ease.OutCirc},
	EaseInOutCirc:    {"circ", "in-out", ease.InOutCirc},
	EaseInElastic:    {"elastic", "in", ease.InElastic},
	EaseOutElastic:   {"elastic", "out", ease.OutElastic},
	EaseInOutElastic: {"elastic", "in-out", ease.InOutElastic},
	EaseInBack:       {"back", "in", ease.InBack},
	EaseOutBack:      {"back", "out", ease.OutBack},
	EaseInOutBack:    {"back", "in-out", ease.InOutBack},
	EaseInBounce:     {"bounce", "in", ease.InBounce},
	EaseOutBounce:    {"bounce", "out", ease.OutBounce},
	EaseInOutBounce:  {"bounce", "in-out", ease.InOutBounce},
}

// easeNames maps normalized spellings ("cubicin", "incubic") to curves.
var easeNames = func() map[string]Ease {
	m := make(map[string]Ease, 2*int(easeCount)+2)
	for i := Ease(0); i < easeCount; i++ {
		d := easeDefs[i]
		dir := strings.ReplaceAll(d.dir, "-", "")
		m[d.family+dir] = i
		m[dir+d.family] = i
	}
	m["none"] = EaseNone
	m[""] = EaseNone
	return m
}()

// Apply remaps progress t through the curve. Unknown values act as
// EaseNone.
func (e Ease) Apply(t float64) float64 {
	if e == EaseNone || e >= easeCount {
		return t
	}
	return easeDefs[e].fn(t)
}

// String returns the curve's name, e.g. "cubic-in".
func (e Ease) String() string {
	if e >= easeCount {
		return fmt.Sprintf("Ease(%d)", uint8(e))
	}
	d := easeDefs[e]
	if d.dir == "" {
		return d.family
	}
	return d.family + "-" + d.dir
}

// ParseEase resolves a curve name. Case, separators and an "ease" prefix
// are ignored and the direction may come first or last, so "cubic-in",
// "in_cubic" and "easeInCubic" all name EaseInCubic.
func ParseEase(name string) (Ease, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer("-", "", "_", "", " ", "").Replace(n)
	n = strings.TrimPrefix(n, "ease")
	if e, ok := easeNames[n]; ok {
		return e, nil
	}
	return EaseNone, fmt.Errorf("%w %q", ErrUnknownEase, name)
}

// Eases returns every curve, EaseNone first.
func Eases() []Ease {
	out := make([]Ease, 0, easeCount)
	for i := Ease(0); i < easeCount; i++ {
		out = append(out, i)
	}
	return out
}

// MarshalText implements encoding.TextMarshaler.
func (e Ease) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Ease) UnmarshalText(text []byte) error {
	v, err := ParseEase(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

func identity(t float64) float64 { return t }
