package mat4

import "github.com/chewxy/math32"

// Mat4 is a 4x4 float32 matrix stored column-major: elements 0-3 are the first column,
// 12-14 hold the translation. Values are never modified in place; every function returns a new matrix.
type Mat4 [16]float32

// Vec4 is a homogeneous point or direction (x, y, z, w).
type Vec4 [4]float32

// Identity returns the 4x4 identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate returns the identity with its translation column set to (tx, ty, tz).
func Translate(tx, ty, tz float32) Mat4 {
	m := Identity()
	m[12], m[13], m[14] = tx, ty, tz
	return m
}

// RotateZ returns a counter-clockwise rotation about the Z axis by radians.
func RotateZ(radians float32) Mat4 {
	c, s := math32.Cos(radians), math32.Sin(radians)
	m := Identity()
	m[0], m[1] = c, s
	m[4], m[5] = -s, c
	return m
}

// Multiply returns a*b. Applied to a point, the product applies b first and then a,
// so Multiply(Translate(...), RotateZ(...)) rotates in place before moving.
func Multiply(a, b Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[k*4+row] * b[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

// Col returns column i (0-3).
func (m Mat4) Col(i int) Vec4 {
	return Vec4{m[i*4], m[i*4+1], m[i*4+2], m[i*4+3]}
}

// Apply transforms v by m.
func (m Mat4) Apply(v Vec4) Vec4 {
	var out Vec4
	for row := 0; row < 4; row++ {
		out[row] = m[row]*v[0] + m[4+row]*v[1] + m[8+row]*v[2] + m[12+row]*v[3]
	}
	return out
}

// Point returns the homogeneous point (x, y, z, 1).
func Point(x, y, z float32) Vec4 {
	return Vec4{x, y, z, 1}
}
