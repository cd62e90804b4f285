package joint

import "github.com/dynbody/artibody/spatial"

// FreeJoint provides the full six motion DOF: three rotational (via a
// contained Ball component) plus three translational, per
// RBNodeTranslateRotate3. Generalized
// velocity orders angular first, then linear: [omega; v]. Position slots
// order the same way: [ball coordinates (3 or 4); translation (3)].
type FreeJoint struct {
	rBJ           spatial.Mat33
	refOriginP    spatial.Vec3
	ball          *Ball
	translation   spatial.Vec3
	dTranslation  spatial.Vec3
	ddTranslation spatial.Vec3
	forceInternal spatial.Vec
}

var _ Kinematics = &FreeJoint{}

// NewFreeJoint builds a free joint with the given inboard joint frame and
// orientation representation.
func NewFreeJoint(refOriginP spatial.Vec3, rBJ spatial.Mat33, mode Orientation) *FreeJoint {
	return &FreeJoint{refOriginP: refOriginP, rBJ: rBJ, ball: NewBall(mode)}
}

func (j *FreeJoint) Type() Type { return TypeFree }
func (j *FreeJoint) Dof() int   { return 6 }
func (j *FreeJoint) Dim() int   { return j.ball.Dim() + 3 }

func (j *FreeJoint) CalcKinematicsPos(refOriginP spatial.Vec3, rBJ spatial.Mat33, rGP spatial.Mat33) (spatial.Mat33, spatial.Vec3, HMatrix) {
	rJiJ := j.ball.CalcR_PB()
	rPB := spatial.OrthoTransform(rJiJ, j.rBJ)
	oBP := j.refOriginP.Add(j.translation)

	h := HMatrix{
		{Angular: rGP.Col(0)},
		{Angular: rGP.Col(1)},
		{Angular: rGP.Col(2)},
		{Linear: rGP.Col(0)},
		{Linear: rGP.Col(1)},
		{Linear: rGP.Col(2)},
	}
	return rPB, oBP, h
}

func (j *FreeJoint) CalcKinematicsVel(h HMatrix) spatial.Vec {
	omega := j.ball.omega
	theta := []float64{omega[0], omega[1], omega[2], j.dTranslation[0], j.dTranslation[1], j.dTranslation[2]}
	return h.TransposeApply(theta)
}

func (j *FreeJoint) SetPos(v []float64, off int) {
	j.ball.SetPos(v, off)
	t := off + j.ball.Dim()
	j.translation = spatial.Vec3{v[t], v[t+1], v[t+2]}
}
func (j *FreeJoint) SetVel(v []float64, off int) {
	j.ball.SetVel(v, off)
	t := off + j.ball.Dim()
	j.dTranslation = spatial.Vec3{v[t], v[t+1], v[t+2]}
}
func (j *FreeJoint) GetPos(v []float64, off int) {
	j.ball.GetPos(v, off)
	t := off + j.ball.Dim()
	v[t], v[t+1], v[t+2] = j.translation[0], j.translation[1], j.translation[2]
}
func (j *FreeJoint) GetVel(v []float64, off int) {
	j.ball.GetVel(v, off)
	t := off + j.ball.Dim()
	v[t], v[t+1], v[t+2] = j.dTranslation[0], j.dTranslation[1], j.dTranslation[2]
}
func (j *FreeJoint) GetAccel(v []float64, off int) {
	j.ball.CalcAccel()
	j.ball.GetAccel(v, off)
	t := off + j.ball.Dim()
	v[t], v[t+1], v[t+2] = j.ddTranslation[0], j.ddTranslation[1], j.ddTranslation[2]
}
func (j *FreeJoint) GetInternalForce(v []float64, off int) {
	torque := spatial.Vec3{j.forceInternal.Angular[0], j.forceInternal.Angular[1], j.forceInternal.Angular[2]}
	j.ball.GetInternalForce(torque, v, off)
	t := off + 3
	v[t], v[t+1], v[t+2] = j.forceInternal.Linear[0], j.forceInternal.Linear[1], j.forceInternal.Linear[2]
}
func (j *FreeJoint) SetAccel(dd []float64) {
	j.ball.domega = spatial.Vec3{dd[0], dd[1], dd[2]}
	j.ddTranslation = spatial.Vec3{dd[3], dd[4], dd[5]}
}
func (j *FreeJoint) SetInternalForce(f []float64) {
	j.forceInternal = spatial.Vec{
		Angular: spatial.Vec3{f[0], f[1], f[2]},
		Linear:  spatial.Vec3{f[3], f[4], f[5]},
	}
}

func (j *FreeJoint) SetVelFromSVel(h HMatrix, phi spatial.ShiftOp, sVel, parentSVel spatial.Vec) {
	rel := sVel.Sub(phi.ShiftToChild(parentSVel))
	dt := h.Apply(rel)
	j.ball.SetDerivs(spatial.Vec3{dt[0], dt[1], dt[2]})
	j.dTranslation = spatial.Vec3{dt[3], dt[4], dt[5]}
}

func (j *FreeJoint) EnforceConstraints(posVec, velVec []float64, offset int) {
	j.ball.EnforceConstraints(posVec, velVec, offset)
}
