package mat

import (
	"math"
)

// Vec2 is a texture coordinate (u, v).
type Vec2 [2]float64

func (v Vec2) Add(a Vec2) Vec2 {
	return Vec2{v[0] + a[0], v[1] + a[1]}
}

func (v Vec2) Sub(a Vec2) Vec2 {
	return Vec2{v[0] - a[0], v[1] - a[1]}
}

func (v Vec2) Mul(a float64) Vec2 {
	return Vec2{v[0] * a, v[1] * a}
}

func (v Vec2) Dot(a Vec2) float64 {
	return v[0]*a[0] + v[1]*a[1]
}

// Cross returns the 2-D determinant |v a|.
func (v Vec2) Cross(a Vec2) float64 {
	return v[0]*a[1] - v[1]*a[0]
}

func (v Vec2) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vec2) Normalized() Vec2 {
	n := v.Norm()
	if n < Epsilon {
		return Vec2{}
	}
	return v.Mul(1.0 / n)
}
