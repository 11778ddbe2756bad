package anim

// BoolTrack is the stepped counterpart of Track for discrete values.
//
// A reported value lags one segment behind the keys: while inside segment i
// the value of key i-1 is returned, and the new value only shows once the
// walk has crossed into a later segment. Once every segment is consumed the
// last key's value is returned. Scalar tracks do not have this lag.
type BoolTrack struct {
	keys []BoolKey
}

func NewBoolTrack(keys ...BoolKey) (BoolTrack, error) {
	for i, k := range keys {
		if err := validateDuration(i, k.Duration); err != nil {
			return BoolTrack{}, err
		}
	}
	if len(keys) == 0 {
		return BoolTrack{}, nil
	}
	return BoolTrack{keys: append([]BoolKey(nil), keys...)}, nil
}

func MustBoolTrack(keys ...BoolKey) BoolTrack {
	t, err := NewBoolTrack(keys...)
	if err != nil {
		panic(err)
	}
	return t
}

// Value evaluates the track at elapsed seconds.
func (t BoolTrack) Value(elapsed float64) (bool, bool) {
	if len(t.keys) == 0 {
		return false, false
	}

	var value, ok bool
	remaining := elapsed
	previous := t.keys[0]
	for _, k := range t.keys[1:] {
		if remaining > k.Duration {
			remaining -= k.Duration
			value, ok = k.Value, true
			previous = k
			continue
		}
		return previous.Value, true
	}

	return value, ok
}

func (t BoolTrack) Len() int {
	return len(t.keys)
}

func (t BoolTrack) Keys() []BoolKey {
	return append([]BoolKey(nil), t.keys...)
}

func (t BoolTrack) Duration() float64 {
	var total float64
	for i := 1; i < len(t.keys); i++ {
		total += t.keys[i].Duration
	}
	return total
}
