package joint

import (
	"math"

	"github.com/dynbody/artibody/spatial"
)

// Rotate2Joint ("U-joint") provides two rotational DOF about the joint's x
// and y axes -- appropriate for a diatom's bond-angle bending or, combined
// with translation, a full diatom joint. theta(0)=phi rotates about x,
// theta(1)=psi rotates about y; both in radians (no DegToRad scaling, per
// RBNodeRotate2).
type Rotate2Joint struct {
	rBJ                    spatial.Mat33
	refOriginP             spatial.Vec3
	theta, dTheta, ddTheta [2]float64
	forceInternal          [2]float64
}

var _ Kinematics = &Rotate2Joint{}

// NewRotate2Joint builds a U-joint with the given inboard joint frame.
func NewRotate2Joint(refOriginP spatial.Vec3, rBJ spatial.Mat33) *Rotate2Joint {
	return &Rotate2Joint{refOriginP: refOriginP, rBJ: rBJ}
}

func (j *Rotate2Joint) Type() Type { return TypeUJoint }
func (j *Rotate2Joint) Dof() int   { return 2 }
func (j *Rotate2Joint) Dim() int   { return 2 }

func (j *Rotate2Joint) rPB() spatial.Mat33 {
	phi, psi := j.theta[0], j.theta[1]
	sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)
	sinPsi, cosPsi := math.Sin(psi), math.Cos(psi)
	// Ry(psi) * Rx(phi), expressed column-major.
	ryRx := spatial.Mat33{
		cosPsi, 0, -sinPsi, // column 0
		sinPsi * sinPhi, cosPhi, cosPsi * sinPhi, // column 1
		sinPsi * cosPhi, -sinPhi, cosPsi * cosPhi, // column 2
	}
	return spatial.OrthoTransform(ryRx, j.rBJ)
}

func (j *Rotate2Joint) CalcKinematicsPos(refOriginP spatial.Vec3, rBJ spatial.Mat33, rGP spatial.Mat33) (spatial.Mat33, spatial.Vec3, HMatrix) {
	rPB := j.rPB()
	tmpRGB := rGP.Mul3(rPB)
	x := tmpRGB.Mul3x1(j.rBJ.Mul3x1(spatial.Vec3{1, 0, 0}))
	y := tmpRGB.Mul3x1(j.rBJ.Mul3x1(spatial.Vec3{0, 1, 0}))
	h := HMatrix{{Angular: x}, {Angular: y}}
	return rPB, j.refOriginP, h
}

func (j *Rotate2Joint) CalcKinematicsVel(h HMatrix) spatial.Vec {
	return h.TransposeApply(j.dTheta[:])
}

func (j *Rotate2Joint) SetPos(v []float64, off int) { j.theta = [2]float64{v[off], v[off+1]} }
func (j *Rotate2Joint) SetVel(v []float64, off int) { j.dTheta = [2]float64{v[off], v[off+1]} }
func (j *Rotate2Joint) GetPos(v []float64, off int) { v[off], v[off+1] = j.theta[0], j.theta[1] }
func (j *Rotate2Joint) GetVel(v []float64, off int) { v[off], v[off+1] = j.dTheta[0], j.dTheta[1] }
func (j *Rotate2Joint) GetAccel(v []float64, off int) {
	v[off], v[off+1] = j.ddTheta[0], j.ddTheta[1]
}
func (j *Rotate2Joint) GetInternalForce(v []float64, off int) {
	v[off], v[off+1] = j.forceInternal[0], j.forceInternal[1]
}
func (j *Rotate2Joint) SetAccel(dd []float64)        { j.ddTheta = [2]float64{dd[0], dd[1]} }
func (j *Rotate2Joint) SetInternalForce(f []float64) { j.forceInternal = [2]float64{f[0], f[1]} }

func (j *Rotate2Joint) SetVelFromSVel(h HMatrix, phi spatial.ShiftOp, sVel, parentSVel spatial.Vec) {
	rel := sVel.Sub(phi.ShiftToChild(parentSVel))
	dt := h.Apply(rel)
	j.dTheta = [2]float64{dt[0], dt[1]}
}

func (j *Rotate2Joint) EnforceConstraints([]float64, []float64, int) {}
