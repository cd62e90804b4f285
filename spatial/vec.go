// Package spatial implements the spatial-algebra primitives the rest of the
// engine builds on: three-vectors and 3x3 rotations (via mathgl), spatial
// (6-component) velocities/accelerations/forces split into angular and linear
// halves, 6x6 spatial matrices viewed as a 2x2 block of 3x3s, and the shift
// operator that translates spatial quantities along a rigid offset.
package spatial

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a plain three-vector. It is the mathgl type directly: there is no
// value this package can add by wrapping it.
type Vec3 = mgl64.Vec3

// Mat33 is a 3x3 matrix, typically a rotation.
type Mat33 = mgl64.Mat3

// Identity33 is the 3x3 identity.
func Identity33() Mat33 { return mgl64.Ident3() }

// Zero33 is the 3x3 zero matrix.
func Zero33() Mat33 { return Mat33{} }

// CrossMat returns the antisymmetric cross-product matrix of v, such that
// CrossMat(v).Mul3x1(w) == v.Cross(w) for any w. mgl64.Mat3 is column-major,
// so this literal is laid out column by column.
func CrossMat(v Vec3) Mat33 {
	return Mat33{
		0, v[2], -v[1], // column 0
		-v[2], 0, v[0], // column 1
		v[1], -v[0], 0, // column 2
	}
}

// OrthoTransform computes R * M * transpose(R), the standard similarity
// transform used to re-express an inertia-like quantity under a rotation.
func OrthoTransform(m, r Mat33) Mat33 {
	return r.Mul3(m).Mul3(r.Transpose())
}

// Skew builds the skew-symmetric offDiag block used when assembling a
// spatial inertia: mass * CrossMat(comStation).
func Skew(mass float64, comStation Vec3) Mat33 {
	c := CrossMat(comStation)
	for i := range c {
		c[i] *= mass
	}
	return c
}
