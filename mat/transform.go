package mat

import (
	"math"
)

func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func Translate(x, y, z float64) Mat4 {
	return Mat4{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	}
}

func Scale(s float64) Mat4 {
	return ScaleNonUniform(s, s, s)
}

func ScaleNonUniform(x, y, z float64) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

func RotateX(ang float64) Mat4 {
	s, c := math.Sincos(ang)
	return Mat4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

func RotateY(ang float64) Mat4 {
	s, c := math.Sincos(ang)
	return Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

func RotateZ(ang float64) Mat4 {
	s, c := math.Sincos(ang)
	return Mat4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// RotateAroundAxis builds the Rodrigues rotation about the normalized axis.
// A zero-length axis is not rejected; the result degenerates to cos(ang)
// on the 3x3 diagonal.
func RotateAroundAxis(axis Vec3, ang float64) Mat4 {
	k := axis.Normalized()
	x, y, z := k[0], k[1], k[2]
	s, c := math.Sincos(ang)
	t := 1 - c

	return Mat4{
		c + x*x*t, x*y*t - z*s, x*z*t + y*s, 0,
		y*x*t + z*s, c + y*y*t, y*z*t - x*s, 0,
		z*x*t - y*s, z*y*t + x*s, c + z*z*t, 0,
		0, 0, 0, 1,
	}
}

// Shear sets the off-diagonal elements of the 3x3 block; sxy is the
// contribution of y to x, and so on.
func Shear(sxy, sxz, syx, syz, szx, szy float64) Mat4 {
	return Mat4{
		1, sxy, sxz, 0,
		syx, 1, syz, 0,
		szx, szy, 1, 0,
		0, 0, 0, 1,
	}
}
