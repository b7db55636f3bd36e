package common

import "math"

const (
	BaseWidth  = 1280
	BaseHeight = 720
)

// epsilon below which a vector is treated as degenerate.
const epsilon = 1e-6

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Vec3 is a world-space vector. Y is up; gameplay happens on the XZ plane.
type Vec3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Length() float64 { return math.Sqrt(v.Dot(v)) }
func (v Vec3) Horizontal() Vec3 { return Vec3{X: v.X, Z: v.Z} }
func (v Vec3) DistanceTo(o Vec3) float64 { return o.Sub(v).Length() }

// HorizontalDistance ignores the Y axis.
func (v Vec3) HorizontalDistance(o Vec3) float64 {
	return math.Hypot(o.X-v.X, o.Z-v.Z)
}

// Normalize returns the unit vector, or false when v is degenerate (zero
// length or non-finite).
func (v Vec3) Normalize() (Vec3, bool) {
	l := v.Length()
	if l < epsilon || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vec3{}, false
	}
	return v.Scale(1 / l), true
}

// Right is the horizontal perpendicular of a facing direction.
func (v Vec3) Right() Vec3 {
	return Vec3{X: -v.Z, Z: v.X}
}
