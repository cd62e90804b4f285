package joint

import (
	"math"

	"github.com/dynbody/artibody/spatial"
)

// DiatomJoint combines Rotate2Joint's two rotational DOF with three
// translational DOF -- the free joint's equivalent for a body with no
// inertia about one axis (e.g. a two-atom "diatom" body), per
// RBNodeTranslateRotate2. theta[0:2] are the
// rotation angles (phi, psi; radians), theta[2:5] is the parent-frame
// translation.
type DiatomJoint struct {
	rBJ                    spatial.Mat33
	refOriginP             spatial.Vec3
	theta, dTheta, ddTheta [5]float64
	forceInternal          [5]float64
}

var _ Kinematics = &DiatomJoint{}

// NewDiatomJoint builds a diatom joint with the given inboard joint frame.
func NewDiatomJoint(refOriginP spatial.Vec3, rBJ spatial.Mat33) *DiatomJoint {
	return &DiatomJoint{refOriginP: refOriginP, rBJ: rBJ}
}

func (j *DiatomJoint) Type() Type { return TypeFreeLine }
func (j *DiatomJoint) Dof() int   { return 5 }
func (j *DiatomJoint) Dim() int   { return 5 }

func (j *DiatomJoint) rPB() spatial.Mat33 {
	phi, psi := j.theta[0], j.theta[1]
	sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)
	sinPsi, cosPsi := math.Sin(psi), math.Cos(psi)
	ryRx := spatial.Mat33{
		cosPsi, 0, -sinPsi,
		sinPsi * sinPhi, cosPhi, cosPsi * sinPhi,
		sinPsi * cosPhi, -sinPhi, cosPsi * cosPhi,
	}
	return spatial.OrthoTransform(ryRx, j.rBJ)
}

func (j *DiatomJoint) CalcKinematicsPos(refOriginP spatial.Vec3, rBJ spatial.Mat33, rGP spatial.Mat33) (spatial.Mat33, spatial.Vec3, HMatrix) {
	translation := spatial.Vec3{j.theta[2], j.theta[3], j.theta[4]}
	oBP := j.refOriginP.Add(translation)

	rPB := j.rPB()
	tmpRGB := rGP.Mul3(rPB)
	x := tmpRGB.Mul3x1(j.rBJ.Mul3x1(spatial.Vec3{1, 0, 0}))
	y := tmpRGB.Mul3x1(j.rBJ.Mul3x1(spatial.Vec3{0, 1, 0}))

	h := HMatrix{
		{Angular: x},
		{Angular: y},
		{Linear: rGP.Col(0)},
		{Linear: rGP.Col(1)},
		{Linear: rGP.Col(2)},
	}
	return rPB, oBP, h
}

func (j *DiatomJoint) CalcKinematicsVel(h HMatrix) spatial.Vec {
	return h.TransposeApply(j.dTheta[:])
}

func (j *DiatomJoint) SetPos(v []float64, off int) {
	for i := 0; i < 5; i++ {
		j.theta[i] = v[off+i]
	}
}
func (j *DiatomJoint) SetVel(v []float64, off int) {
	for i := 0; i < 5; i++ {
		j.dTheta[i] = v[off+i]
	}
}
func (j *DiatomJoint) GetPos(v []float64, off int) {
	for i := 0; i < 5; i++ {
		v[off+i] = j.theta[i]
	}
}
func (j *DiatomJoint) GetVel(v []float64, off int) {
	for i := 0; i < 5; i++ {
		v[off+i] = j.dTheta[i]
	}
}
func (j *DiatomJoint) GetAccel(v []float64, off int) {
	for i := 0; i < 5; i++ {
		v[off+i] = j.ddTheta[i]
	}
}
func (j *DiatomJoint) GetInternalForce(v []float64, off int) {
	for i := 0; i < 5; i++ {
		v[off+i] = j.forceInternal[i]
	}
}
func (j *DiatomJoint) SetAccel(dd []float64) { copy(j.ddTheta[:], dd) }
func (j *DiatomJoint) SetInternalForce(f []float64) { copy(j.forceInternal[:], f) }

func (j *DiatomJoint) SetVelFromSVel(h HMatrix, phi spatial.ShiftOp, sVel, parentSVel spatial.Vec) {
	rel := sVel.Sub(phi.ShiftToChild(parentSVel))
	dt := h.Apply(rel)
	copy(j.dTheta[:], dt)
}

func (j *DiatomJoint) EnforceConstraints([]float64, []float64, int) {}
