package spatial

import (
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"
)

// Transform is a rigid pose: a rotation and a translation. The node and
// joint code keep the inboard joint frame's rotation and offset as separate
// fields and do not use this type.
type Transform struct {
	R Mat33
	O Vec3
}

// IdentityTransform returns the identity transform.
func IdentityTransform() Transform { return Transform{R: Identity33()} }

// NewTransform builds a transform from a rotation and an offset.
func NewTransform(r Mat33, o Vec3) Transform { return Transform{R: r, O: o} }

// Apply maps a point from the local frame into the frame this transform is
// relative to: p' = R*p + O.
func (t Transform) Apply(p Vec3) Vec3 {
	return t.R.Mul3x1(p).Add(t.O)
}

// Compose returns the transform equivalent to applying t first, then o:
// (o . t)(p) = o.R*(t.R*p + t.O) + o.O.
func (t Transform) Compose(o Transform) Transform {
	return Transform{R: o.R.Mul3(t.R), O: o.R.Mul3x1(t.O).Add(o.O)}
}

// Inverse returns the inverse transform.
func (t Transform) Inverse() Transform {
	rInv := t.R.Transpose()
	return Transform{R: rInv, O: rInv.Mul3x1(t.O).Mul(-1)}
}

// DualQuat converts the transform to a unit dual quaternion, an alternate
// pose representation convenient for composing poses and extracting deltas
// between them.
func (t Transform) DualQuat() dualquat.Number {
	m4 := mgl64.Mat4FromRows(
		mgl64.Vec4{t.R.At(0, 0), t.R.At(0, 1), t.R.At(0, 2), t.O[0]},
		mgl64.Vec4{t.R.At(1, 0), t.R.At(1, 1), t.R.At(1, 2), t.O[1]},
		mgl64.Vec4{t.R.At(2, 0), t.R.At(2, 1), t.R.At(2, 2), t.O[2]},
		mgl64.Vec4{0, 0, 0, 1},
	)
	q := mgl64.Mat4ToQuat(m4)
	qx, qy, qz := q.V.Elem()
	real := quat.Number{Real: q.W, Imag: qx, Jmag: qy, Kmag: qz}
	tv := quat.Number{Real: 0, Imag: t.O[0], Jmag: t.O[1], Kmag: t.O[2]}
	dual := quat.Scale(0.5, quat.Mul(tv, real))
	return dualquat.Number{Real: real, Dual: dual}
}
