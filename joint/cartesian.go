package joint

import "github.com/dynbody/artibody/spatial"

// CartesianJoint (a.k.a. "translate") provides three translational DOF: the
// body can move anywhere relative to its parent but cannot rotate. Theta is
// the parent-frame translation offset, in length units (no DegToRad
// involved: this joint has no angular component). The joint frame J is
// aligned with the body frame B.
type CartesianJoint struct {
	theta, dTheta, ddTheta spatial.Vec3
	forceInternal          spatial.Vec3
	refOriginP             spatial.Vec3
}

var _ Kinematics = &CartesianJoint{}

// NewCartesianJoint builds a Cartesian joint whose child origin sits at
// refOriginP (in the parent frame) at theta=0.
func NewCartesianJoint(refOriginP spatial.Vec3) *CartesianJoint {
	return &CartesianJoint{refOriginP: refOriginP}
}

func (j *CartesianJoint) Type() Type { return TypeCartesian }
func (j *CartesianJoint) Dof() int   { return 3 }
func (j *CartesianJoint) Dim() int   { return 3 }

func (j *CartesianJoint) CalcKinematicsPos(refOriginP spatial.Vec3, rBJ spatial.Mat33, rGP spatial.Mat33) (spatial.Mat33, spatial.Vec3, HMatrix) {
	oBP := j.refOriginP.Add(j.theta)
	// H = [0 | R_GP^T]; row i is the i-th row of R_GP^T, i.e. the i-th
	// column of R_GP.
	h := HMatrix{
		{Linear: rGP.Col(0)},
		{Linear: rGP.Col(1)},
		{Linear: rGP.Col(2)},
	}
	return spatial.Identity33(), oBP, h
}

func (j *CartesianJoint) CalcKinematicsVel(h HMatrix) spatial.Vec {
	return h.TransposeApply([]float64{j.dTheta[0], j.dTheta[1], j.dTheta[2]})
}

func (j *CartesianJoint) SetPos(v []float64, off int) {
	j.theta = spatial.Vec3{v[off], v[off+1], v[off+2]}
}
func (j *CartesianJoint) SetVel(v []float64, off int) {
	j.dTheta = spatial.Vec3{v[off], v[off+1], v[off+2]}
}
func (j *CartesianJoint) GetPos(v []float64, off int) {
	v[off], v[off+1], v[off+2] = j.theta[0], j.theta[1], j.theta[2]
}
func (j *CartesianJoint) GetVel(v []float64, off int) {
	v[off], v[off+1], v[off+2] = j.dTheta[0], j.dTheta[1], j.dTheta[2]
}
func (j *CartesianJoint) GetAccel(v []float64, off int) {
	v[off], v[off+1], v[off+2] = j.ddTheta[0], j.ddTheta[1], j.ddTheta[2]
}
func (j *CartesianJoint) GetInternalForce(v []float64, off int) {
	v[off], v[off+1], v[off+2] = j.forceInternal[0], j.forceInternal[1], j.forceInternal[2]
}
func (j *CartesianJoint) SetAccel(dd []float64)        { j.ddTheta = spatial.Vec3{dd[0], dd[1], dd[2]} }
func (j *CartesianJoint) SetInternalForce(f []float64) { j.forceInternal = spatial.Vec3{f[0], f[1], f[2]} }

func (j *CartesianJoint) SetVelFromSVel(h HMatrix, phi spatial.ShiftOp, sVel, parentSVel spatial.Vec) {
	rel := sVel.Sub(phi.ShiftToChild(parentSVel))
	dt := h.Apply(rel)
	j.dTheta = spatial.Vec3{dt[0], dt[1], dt[2]}
}

func (j *CartesianJoint) EnforceConstraints([]float64, []float64, int) {}
