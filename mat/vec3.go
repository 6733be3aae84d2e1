package mat

import (
	"math"
)

type Vec3 [3]float64

func NewVec3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

func (v Vec3) NormSq() float64 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

func (v Vec3) Norm() float64 {
	return math.Sqrt(v.NormSq())
}

// Normalized returns the unit vector, or the zero vector if the length is
// below Epsilon.
func (v Vec3) Normalized() Vec3 {
	n := v.Norm()
	if n < Epsilon {
		return Vec3{}
	}
	return v.Mul(1.0 / n)
}

func (v Vec3) Mul(a float64) Vec3 {
	return Vec3{v[0] * a, v[1] * a, v[2] * a}
}

func (v Vec3) Sub(a Vec3) Vec3 {
	return Vec3{v[0] - a[0], v[1] - a[1], v[2] - a[2]}
}

func (v Vec3) Add(a Vec3) Vec3 {
	return Vec3{v[0] + a[0], v[1] + a[1], v[2] + a[2]}
}

func (v Vec3) Dot(a Vec3) float64 {
	return v[0]*a[0] + v[1]*a[1] + v[2]*a[2]
}

func (v Vec3) Cross(a Vec3) Vec3 {
	return Vec3{
		v[1]*a[2] - v[2]*a[1],
		v[2]*a[0] - v[0]*a[2],
		v[0]*a[1] - v[1]*a[0],
	}
}

func (v Vec3) Equal(a Vec3, tol float64) bool {
	return math.Abs(v[0]-a[0]) <= tol &&
		math.Abs(v[1]-a[1]) <= tol &&
		math.Abs(v[2]-a[2]) <= tol
}
