package multibody

import (
	"gonum.org/v1/gonum/mat"

	"github.com/dynbody/artibody/joint"
	"github.com/dynbody/artibody/massprops"
	"github.com/dynbody/artibody/spatial"
)

// Node is one member of the kinematic tree: ground (index 0, no joint) or a
// body attached to its parent through a joint.Kinematics. It owns its
// constant mass properties and inboard joint frame plus all state refreshed
// by the recursive passes, per RigidBodyNode/RigidBodyNodeSpec<dof>.
type Node struct {
	index      int
	parent     int // -1 for ground
	children   []int
	level      int // distance from ground, for diagnostics
	joint      joint.Kinematics
	massProps  massprops.MassProperties
	rBJ        spatial.Mat33 // inboard joint frame orientation, body frame
	refOriginP spatial.Vec3  // inboard joint origin, parent frame, at theta=0

	stateOffset int // offset into position/velocity/acceleration vectors (Dim-wide slots)
	forceOffset int // offset into the internal-force vector (Dof-wide slots)

	// Position state, refreshed by the position pass.
	rPB, rGB    spatial.Mat33
	oBP, oBG    spatial.Vec3
	phi         spatial.ShiftOp
	inertiaOBG  spatial.Mat33
	comG        spatial.Vec3
	mk          spatial.Mat
	h           joint.HMatrix

	// Velocity state, refreshed by the velocity pass.
	vPBG spatial.Vec
	sVel spatial.Vec
	bias spatial.Vec // gyroscopic bias b
	a    spatial.Vec // Coriolis/centripetal bias a

	// Acceleration state.
	sAcc spatial.Vec

	// Articulated-body scratch, transient within one calcP/calcZ/calcAccel
	// solve.
	p    spatial.Mat
	d    *mat.Dense
	di   *mat.Dense
	g    joint.HMatrix // DOF columns, each a spatial 6-vector
	tau  spatial.Mat
	z    spatial.Vec
	eps  []float64
	nu   []float64
	geps spatial.Vec
	y    spatial.Mat

	// calcInternalForce scratch (independent of calcP/calcZ).
	zIF spatial.Vec
}

// Index returns this node's position in the system's base-first ordering.
func (n *Node) Index() int { return n.index }

// Parent returns the parent node's index, or -1 for ground.
func (n *Node) Parent() int { return n.parent }

// Children returns this node's child indices.
func (n *Node) Children() []int { return append([]int(nil), n.children...) }

// Joint returns this node's joint kinematics; the zero-DOF GroundJoint for
// ground.
func (n *Node) Joint() joint.Kinematics { return n.joint }

// StateOffset returns this node's offset into position/velocity/acceleration
// vectors (Dim-wide slots).
func (n *Node) StateOffset() int { return n.stateOffset }

// ForceOffset returns this node's offset into the internal-force vector
// (Dof-wide slots).
func (n *Node) ForceOffset() int { return n.forceOffset }

// SpatialVelocity returns s_vel, valid after a velocity pass.
func (n *Node) SpatialVelocity() spatial.Vec { return n.sVel }

// SpatialAcceleration returns s_acc, valid after calcAccel.
func (n *Node) SpatialAcceleration() spatial.Vec { return n.sAcc }

// SpatialInertia returns M_k, valid after a position pass.
func (n *Node) SpatialInertia() spatial.Mat { return n.mk }

// KineticEnergy returns half*s_vel . (M_k * s_vel), valid after a velocity
// pass.
func (n *Node) KineticEnergy() float64 {
	return 0.5 * n.sVel.Dot(n.mk.MulVec(n.sVel))
}

// GroundOrigin returns O_BG, the body origin in ground, valid after a
// position pass.
func (n *Node) GroundOrigin() spatial.Vec3 { return n.oBG }

// GroundOrientation returns R_GB, valid after a position pass.
func (n *Node) GroundOrientation() spatial.Mat33 { return n.rGB }
