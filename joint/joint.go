// Package joint implements the per-joint-family kinematic maps used by the
// recursive multibody algorithm: the relation between a joint's generalized
// coordinates theta and the relative spatial velocity of the child body in
// its parent, expressed through the joint transition matrix H.
//
// Each joint family owns its own generalized coordinate/velocity/acceleration
// storage and packs/unpacks it into the tree-wide state vectors at a fixed
// offset, following RigidBodyNodeSpec<dof>.
package joint

import (
	"math"

	"github.com/dynbody/artibody/spatial"
)

// DegToRad is the explicit degrees-to-radians multiplier, matching
// RigidBodyNode::DEG2RAD: only the ball-joint Euler path
// uses it; torsion and U-joint angles are radians. Each joint variant below
// states its own convention explicitly rather than relying on a shared
// silent default.
const DegToRad = math.Pi / 180.0

// Type enumerates the supported joint families. ReversedJoint is not a Type
// value: a "reversed" flag is part of the assembly interface (see the
// multibody package) and must currently be false.
type Type int

const (
	// TypeGround is the distinguished immobile root; it has no DOF.
	TypeGround Type = iota
	// TypeTorsion is a single-DOF pin joint rotating about the joint z-axis.
	TypeTorsion
	// TypeUJoint provides two rotational DOF about the joint's x and y axes.
	TypeUJoint
	// TypeOrientation (ball/rotate3) provides three rotational DOF via a
	// contained Euler-or-quaternion orientation component.
	TypeOrientation
	// TypeCartesian (translate) provides three translational DOF.
	TypeCartesian
	// TypeFreeLine (diatom) combines TypeUJoint with three translational DOF.
	TypeFreeLine
	// TypeFree combines TypeOrientation with three translational DOF.
	TypeFree
)

func (t Type) String() string {
	switch t {
	case TypeGround:
		return "ground"
	case TypeTorsion:
		return "torsion"
	case TypeUJoint:
		return "rotate2"
	case TypeOrientation:
		return "rotate3"
	case TypeCartesian:
		return "translate"
	case TypeFreeLine:
		return "diatom"
	case TypeFree:
		return "full"
	default:
		return "unknown"
	}
}

// HMatrix is the joint transition matrix H, stored as its DOF rows, each row
// a spatial covector. H maps a joint's generalized velocity theta-dot into
// the relative spatial velocity of the body in its parent: V_PB_G =
// transpose(H) * theta-dot. Equivalently, H * z projects a spatial quantity
// z onto generalized (joint-space) coordinates.
type HMatrix []spatial.Vec

// Dof returns the number of motion degrees of freedom, i.e. the number of
// rows of H.
func (h HMatrix) Dof() int { return len(h) }

// TransposeApply computes transpose(H) * theta, i.e. sum_i theta[i]*H[i].
func (h HMatrix) TransposeApply(theta []float64) spatial.Vec {
	var v spatial.Vec
	for i, row := range h {
		v = v.Add(row.Scale(theta[i]))
	}
	return v
}

// Apply computes H * z, i.e. the DOF-vector whose i-th entry is H[i].Dot(z).
func (h HMatrix) Apply(z spatial.Vec) []float64 {
	out := make([]float64, len(h))
	for i, row := range h {
		out[i] = row.Dot(z)
	}
	return out
}

// Kinematics is the pair of joint-specific recursive-algorithm hooks every
// joint family must supply, per RigidBodyNodeSpec::calcJointKinematicsPos/Vel
//.
type Kinematics interface {
	// Type reports this joint's family.
	Type() Type

	// Dof is the number of motion (velocity-level) degrees of freedom.
	Dof() int

	// Dim is the number of position-level coordinate slots; equal to Dof
	// except for quaternion ball/free joints, which occupy one extra slot
	// (4 instead of 3, 7 instead of 6).
	Dim() int

	// CalcKinematicsPos computes R_PB, OB_P and H from the joint's current
	// generalized coordinates theta and the parent-frame joint geometry
	// (refOriginP, the inboard joint frame rotation R_BJ). rGP is the
	// parent's current ground-frame orientation, needed because H is
	// expressed in ground/parent-fixed axes.
	CalcKinematicsPos(refOriginP spatial.Vec3, rBJ spatial.Mat33, rGP spatial.Mat33) (rPB spatial.Mat33, oBP spatial.Vec3, h HMatrix)

	// CalcKinematicsVel computes V_PB_G = transpose(H) * theta-dot. It may
	// assume CalcKinematicsPos has already been called for the same state.
	CalcKinematicsVel(h HMatrix) spatial.Vec

	// SetPos unpacks theta from the tree-wide position vector at offset.
	SetPos(stateVec []float64, offset int)
	// SetVel unpacks theta-dot from the tree-wide velocity vector at offset.
	SetVel(stateVec []float64, offset int)
	// GetPos packs theta into the tree-wide position vector at offset.
	GetPos(stateVec []float64, offset int)
	// GetVel packs theta-dot into the tree-wide velocity vector at offset.
	GetVel(stateVec []float64, offset int)
	// GetAccel packs theta-double-dot into the tree-wide acceleration vector.
	GetAccel(stateVec []float64, offset int)
	// GetInternalForce packs the internal generalized force into the
	// tree-wide internal-force vector.
	GetInternalForce(stateVec []float64, offset int)

	// SetAccel receives the dof-length generalized acceleration solved by
	// calcAccel, letting ball-style joints derive q-double-dot afterward.
	SetAccel(ddtheta []float64)
	// SetInternalForce receives the dof-length generalized internal force
	// accumulated by calcZ/calcInternalForce.
	SetInternalForce(forceInternal []float64)

	// SetVelFromSVel derives theta-dot from a known spatial velocity (used
	// by enforceConstraints-adjacent bookkeeping and velocity projection);
	// dtheta = H * (sVel - transpose(phi)*parentSVel).
	SetVelFromSVel(h HMatrix, phi spatial.ShiftOp, sVel, parentSVel spatial.Vec)

	// EnforceConstraints normalizes/projects this joint's state in-place in
	// the tree-wide position/velocity vectors; a no-op for non-ball joints.
	EnforceConstraints(posVec, velVec []float64, offset int)
}
