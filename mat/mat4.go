package mat

import (
	"fmt"
	"math"
	"strings"
)

// Epsilon is the threshold under which a homogeneous divisor or a vector
// length is treated as zero.
const Epsilon = 1e-9

// Mat4 is a 4x4 homogeneous transform stored in row-major order.
// Element (r, c) is at index 4*r+c.
// Note that the zero value is not the identity; use Identity().
type Mat4 [16]float64

func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at row r and column c.
func (m Mat4) At(r, c int) float64 {
	return m[4*r+c]
}

// Mul returns m*a. Applied to a point, a acts first.
func (m Mat4) Mul(a Mat4) Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[4*r+k] * a[4*k+c]
			}
			out[4*r+c] = sum
		}
	}
	return out
}

// Transform multiplies the point a (w=1) and applies the perspective divide.
// A divisor smaller than Epsilon is treated as 1.
func (m Mat4) Transform(a Vec3) Vec3 {
	x := m[0]*a[0] + m[1]*a[1] + m[2]*a[2] + m[3]
	y := m[4]*a[0] + m[5]*a[1] + m[6]*a[2] + m[7]
	z := m[8]*a[0] + m[9]*a[1] + m[10]*a[2] + m[11]
	w := m[12]*a[0] + m[13]*a[1] + m[14]*a[2] + m[15]
	if math.Abs(w) < Epsilon {
		w = 1
	}
	return Vec3{x / w, y / w, z / w}
}

// Equal reports whether all elements differ by at most tol.
func (m Mat4) Equal(a Mat4, tol float64) bool {
	for i := range m {
		if math.Abs(m[i]-a[i]) > tol {
			return false
		}
	}
	return true
}

// String formats m as four indented rows followed by a blank line.
func (m Mat4) String() string {
	var b strings.Builder
	for r := 0; r < 4; r++ {
		fmt.Fprintf(&b, "  %9.4f %9.4f %9.4f %9.4f\n",
			m[4*r], m[4*r+1], m[4*r+2], m[4*r+3],
		)
	}
	b.WriteString("\n")
	return b.String()
}
