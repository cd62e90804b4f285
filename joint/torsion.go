package joint

import (
	"math"

	"github.com/dynbody/artibody/spatial"
)

// TorsionJoint ("pin" joint) provides a single rotational DOF about the
// joint's z-axis. Theta is in radians (this joint does not use DegToRad;
// as with only the ball-joint Euler path scales by
// DEG2RAD).
type TorsionJoint struct {
	rBJ                    spatial.Mat33 // inboard joint frame orientation, in body frame
	refOriginP             spatial.Vec3
	theta, dTheta, ddTheta float64
	forceInternal          float64
}

var _ Kinematics = &TorsionJoint{}

// NewTorsionJoint builds a torsion joint whose axis is expressed by rBJ's
// z-column in the body frame, at the given reference origin (measured from
// the parent origin).
func NewTorsionJoint(refOriginP spatial.Vec3, rBJ spatial.Mat33) *TorsionJoint {
	return &TorsionJoint{refOriginP: refOriginP, rBJ: rBJ}
}

func (j *TorsionJoint) Type() Type { return TypeTorsion }
func (j *TorsionJoint) Dof() int   { return 1 }
func (j *TorsionJoint) Dim() int   { return 1 }

func (j *TorsionJoint) CalcKinematicsPos(refOriginP spatial.Vec3, rBJ spatial.Mat33, rGP spatial.Mat33) (spatial.Mat33, spatial.Vec3, HMatrix) {
	sinT, cosT := math.Sin(j.theta), math.Cos(j.theta)
	rJiJ := spatial.Mat33{
		cosT, sinT, 0, // column 0
		-sinT, cosT, 0, // column 1
		0, 0, 1, // column 2
	}
	// R_PB = R_PJi * R_JiJ * R_JB; R_PJi == R_BJ for this joint family, so
	// this is orthoTransform(R_JiJ, R_BJ).
	rPB := spatial.OrthoTransform(rJiJ, j.rBJ)

	zAxis := rGP.Mul3(j.rBJ).Mul3x1(spatial.Vec3{0, 0, 1})
	h := HMatrix{{Angular: zAxis}}
	return rPB, j.refOriginP, h
}

func (j *TorsionJoint) CalcKinematicsVel(h HMatrix) spatial.Vec {
	return h.TransposeApply([]float64{j.dTheta})
}

func (j *TorsionJoint) SetPos(v []float64, off int)  { j.theta = v[off] }
func (j *TorsionJoint) SetVel(v []float64, off int)  { j.dTheta = v[off] }
func (j *TorsionJoint) GetPos(v []float64, off int)  { v[off] = j.theta }
func (j *TorsionJoint) GetVel(v []float64, off int)  { v[off] = j.dTheta }
func (j *TorsionJoint) GetAccel(v []float64, off int) { v[off] = j.ddTheta }
func (j *TorsionJoint) GetInternalForce(v []float64, off int) { v[off] = j.forceInternal }
func (j *TorsionJoint) SetAccel(dd []float64)                 { j.ddTheta = dd[0] }
func (j *TorsionJoint) SetInternalForce(f []float64)          { j.forceInternal = f[0] }

func (j *TorsionJoint) SetVelFromSVel(h HMatrix, phi spatial.ShiftOp, sVel, parentSVel spatial.Vec) {
	rel := sVel.Sub(phi.ShiftToChild(parentSVel))
	j.dTheta = h.Apply(rel)[0]
}

func (j *TorsionJoint) EnforceConstraints([]float64, []float64, int) {}
