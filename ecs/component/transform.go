package component

// Transform places a subject in the world. Rotation is Euler angles in
// radians; the 2D renderer uses RotationZ and orders draws by Z.
type Transform struct {
	X         float64
	Y         float64
	Z         float64
	RotationX float64
	RotationY float64
	RotationZ float64
	ScaleX    float64
	ScaleY    float64
	ScaleZ    float64
}

// IdentityTransform returns a transform at the origin with unit scale.
func IdentityTransform() Transform {
	return Transform{ScaleX: 1, ScaleY: 1, ScaleZ: 1}
}

var TransformComponent = NewComponent[Transform]()
