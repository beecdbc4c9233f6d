// pkg/vec3/vec3.go
package vec3

import "math"

// Vec3 is a point or direction in world space. Y is the up axis.
type Vec3 struct {
	X, Y, Z float64
}

func New(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Up returns a vector pointing up by s.
func Up(s float64) Vec3 {
	return Vec3{Y: s}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vec3) Distance(o Vec3) float64 {
	return v.Sub(o).Length()
}

// Normalize returns a unit vector and true, or the zero vector and false
// when v is too short to carry a direction.
func (v Vec3) Normalize() (Vec3, bool) {
	l := v.Length()
	if l < 1e-9 {
		return Vec3{}, false
	}
	return v.Scale(1 / l), true
}
