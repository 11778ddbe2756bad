package common

// Lerp returns the point t of the way from a to b. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
