package joint

import "github.com/dynbody/artibody/spatial"

// Rotate3Joint ("ball" joint) provides three rotational DOF: the body can
// pivot freely about its joint origin but cannot translate relative to it.
// Orientation is represented by a contained Ball component, either as three
// Euler angles or a unit quaternion, per RBNodeRotate3/ContainedBallJoint.
type Rotate3Joint struct {
	rBJ           spatial.Mat33
	refOriginP    spatial.Vec3
	ball          *Ball
	forceInternal spatial.Vec3
}

var _ Kinematics = &Rotate3Joint{}

// NewRotate3Joint builds a ball joint with the given inboard joint frame and
// orientation representation.
func NewRotate3Joint(refOriginP spatial.Vec3, rBJ spatial.Mat33, mode Orientation) *Rotate3Joint {
	return &Rotate3Joint{refOriginP: refOriginP, rBJ: rBJ, ball: NewBall(mode)}
}

func (j *Rotate3Joint) Type() Type { return TypeOrientation }
func (j *Rotate3Joint) Dof() int   { return 3 }
func (j *Rotate3Joint) Dim() int   { return j.ball.Dim() }

func (j *Rotate3Joint) CalcKinematicsPos(refOriginP spatial.Vec3, rBJ spatial.Mat33, rGP spatial.Mat33) (spatial.Mat33, spatial.Vec3, HMatrix) {
	rJiJ := j.ball.CalcR_PB()
	rPB := spatial.OrthoTransform(rJiJ, j.rBJ)

	// H = [R_GP^T | 0]; angular velocity omega is expressed in the parent
	// frame P, so each row is the corresponding column of R_GP.
	h := HMatrix{
		{Angular: rGP.Col(0)},
		{Angular: rGP.Col(1)},
		{Angular: rGP.Col(2)},
	}
	return rPB, j.refOriginP, h
}

func (j *Rotate3Joint) CalcKinematicsVel(h HMatrix) spatial.Vec {
	omega := j.ball.omega
	return h.TransposeApply([]float64{omega[0], omega[1], omega[2]})
}

func (j *Rotate3Joint) SetPos(v []float64, off int) { j.ball.SetPos(v, off) }
func (j *Rotate3Joint) SetVel(v []float64, off int) { j.ball.SetVel(v, off) }
func (j *Rotate3Joint) GetPos(v []float64, off int) { j.ball.GetPos(v, off) }
func (j *Rotate3Joint) GetVel(v []float64, off int) { j.ball.GetVel(v, off) }
func (j *Rotate3Joint) GetAccel(v []float64, off int) {
	j.ball.CalcAccel()
	j.ball.GetAccel(v, off)
}
func (j *Rotate3Joint) GetInternalForce(v []float64, off int) {
	j.ball.GetInternalForce(j.forceInternal, v, off)
}
func (j *Rotate3Joint) SetAccel(dd []float64) {
	j.ball.domega = spatial.Vec3{dd[0], dd[1], dd[2]}
}
func (j *Rotate3Joint) SetInternalForce(f []float64) {
	j.forceInternal = spatial.Vec3{f[0], f[1], f[2]}
}

func (j *Rotate3Joint) SetVelFromSVel(h HMatrix, phi spatial.ShiftOp, sVel, parentSVel spatial.Vec) {
	rel := sVel.Sub(phi.ShiftToChild(parentSVel))
	dt := h.Apply(rel)
	j.ball.SetDerivs(spatial.Vec3{dt[0], dt[1], dt[2]})
}

func (j *Rotate3Joint) EnforceConstraints(posVec, velVec []float64, offset int) {
	j.ball.EnforceConstraints(posVec, velVec, offset)
}
