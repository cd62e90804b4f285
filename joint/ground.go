package joint

import "github.com/dynbody/artibody/spatial"

// GroundJoint is the zero-DOF joint owned by the distinguished ground node.
// Every method is a no-op; per RBGroundBody,
// ground never participates in the state vectors or the recursive passes.
type GroundJoint struct{}

var _ Kinematics = GroundJoint{}

func (GroundJoint) Type() Type { return TypeGround }
func (GroundJoint) Dof() int   { return 0 }
func (GroundJoint) Dim() int   { return 0 }

func (GroundJoint) CalcKinematicsPos(spatial.Vec3, spatial.Mat33, spatial.Mat33) (spatial.Mat33, spatial.Vec3, HMatrix) {
	return spatial.Identity33(), spatial.Vec3{}, nil
}

func (GroundJoint) CalcKinematicsVel(HMatrix) spatial.Vec { return spatial.Vec{} }

func (GroundJoint) SetPos([]float64, int)          {}
func (GroundJoint) SetVel([]float64, int)          {}
func (GroundJoint) GetPos([]float64, int)          {}
func (GroundJoint) GetVel([]float64, int)          {}
func (GroundJoint) GetAccel([]float64, int)        {}
func (GroundJoint) GetInternalForce([]float64, int) {}
func (GroundJoint) SetAccel([]float64)              {}
func (GroundJoint) SetInternalForce([]float64)      {}

func (GroundJoint) SetVelFromSVel(HMatrix, spatial.ShiftOp, spatial.Vec, spatial.Vec) {}

func (GroundJoint) EnforceConstraints([]float64, []float64, int) {}
