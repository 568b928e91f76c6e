// Package core provides fundamental types and utilities for the cubeworld
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep simulation logic pure and testable.
package core

import "math"

// Vec3 is a 3-component float32 vector shared by the simulation (velocity)
// and the projection pipeline (points in camera space).
type Vec3 struct {
	X, Y, Z float32
}

// V3 creates a new vector from its components.
func V3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the component-wise sum of two vectors.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Sub returns the component-wise difference of two vectors.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Neg returns the negated vector.
func (v Vec3) Neg() Vec3 {
	return v.Scale(-1)
}

// Len returns the Euclidean length of the vector.
func (v Vec3) Len() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Normalized returns the unit vector in the same direction.
// The zero vector is returned unchanged.
func (v Vec3) Normalized() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Mat4 is a 4x4 row-major float32 matrix.
type Mat4 struct {
	values [16]float32
}

// Mat4Identity returns the identity matrix.
func Mat4Identity() Mat4 {
	return Mat4{values: [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// Mat4FromValues builds a matrix from 16 row-major values.
func Mat4FromValues(values [16]float32) Mat4 {
	return Mat4{values: values}
}

// At returns the element at row i, column j.
func (m Mat4) At(i, j int) float32 {
	return m.values[i*4+j]
}

// Mul returns the matrix product m * other.
func (m Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m.At(i, k) * other.At(k, j)
			}
			out.values[i*4+j] = sum
		}
	}
	return out
}

// Rotated returns the matrix rotated by the given Euler angles (radians),
// applied in x, y, z order.
func (m Mat4) Rotated(x, y, z float32) Mat4 {
	sx, cx := sincos(x)
	sy, cy := sincos(y)
	sz, cz := sincos(z)

	rx := Mat4FromValues([16]float32{
		1, 0, 0, 0,
		0, cx, -sx, 0,
		0, sx, cx, 0,
		0, 0, 0, 1,
	})
	ry := Mat4FromValues([16]float32{
		cy, 0, sy, 0,
		0, 1, 0, 0,
		-sy, 0, cy, 0,
		0, 0, 0, 1,
	})
	rz := Mat4FromValues([16]float32{
		cz, -sz, 0, 0,
		sz, cz, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})

	return m.Mul(rx).Mul(ry).Mul(rz)
}

// Translated returns the matrix translated by the given vector.
func (m Mat4) Translated(v Vec3) Mat4 {
	t := Mat4FromValues([16]float32{
		1, 0, 0, v.X,
		0, 1, 0, v.Y,
		0, 0, 1, v.Z,
		0, 0, 0, 1,
	})
	return m.Mul(t)
}

// Apply transforms a point by the matrix, performing the perspective divide
// by the resulting w component. A zero w is treated as 1 to avoid blowing up
// on degenerate matrices.
func (m Mat4) Apply(v Vec3) Vec3 {
	x := m.At(0, 0)*v.X + m.At(0, 1)*v.Y + m.At(0, 2)*v.Z + m.At(0, 3)
	y := m.At(1, 0)*v.X + m.At(1, 1)*v.Y + m.At(1, 2)*v.Z + m.At(1, 3)
	z := m.At(2, 0)*v.X + m.At(2, 1)*v.Y + m.At(2, 2)*v.Z + m.At(2, 3)
	w := m.At(3, 0)*v.X + m.At(3, 1)*v.Y + m.At(3, 2)*v.Z + m.At(3, 3)
	if w == 0 {
		w = 1
	}
	return Vec3{X: x / w, Y: y / w, Z: z / w}
}

func sincos(a float32) (sin, cos float32) {
	s, c := math.Sincos(float64(a))
	return float32(s), float32(c)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float32 value to be within [min, max].
func ClampF(val, min, max float32) float32 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
