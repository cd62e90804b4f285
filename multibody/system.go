// Package multibody implements the recursive articulated-body dynamics
// engine: the kinematic tree of Nodes, the position/velocity/acceleration
// passes, and the tip-to-base/base-to-tip articulated-body recursion
// (calcP, calcZ, calcAccel, calcY, calcInternalForce), per
// RigidBodyNodeSpec/RigidBodyTree.
package multibody

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/dynbody/artibody/joint"
	"github.com/dynbody/artibody/massprops"
	"github.com/dynbody/artibody/spatial"
)

// JointType names the assembly-time joint families a caller can request,
// per the createChild assembly interface. It
// mirrors joint.Type but is kept distinct so the assembly surface does not
// leak the joint package's internal representation choices.
type JointType int

const (
	Ground JointType = iota
	Torsion
	UJoint
	OrientationJoint
	CartesianJoint
	FreeLineJoint
	FreeJoint
)

// System is the whole kinematic tree: an ordered node sequence with ground
// at index 0 and every other node's parent at a strictly lower index. It is
// created, populated via CreateChild, then frozen: recursive passes assume
// the structure is fixed for the run's lifetime.
type System struct {
	nodes  []*Node
	graph  *simple.DirectedGraph
	frozen bool

	coordWidth int // total width of position/velocity/acceleration vectors
	forceWidth int // total width of the internal-force vector
}

// NewSystem builds a system containing only the ground node at index 0.
func NewSystem() *System {
	g := simple.NewDirectedGraph()
	g.AddNode(simple.Node(0))
	ground := &Node{index: 0, parent: -1, level: 0, rBJ: spatial.Identity33(), joint: joint.GroundJoint{}}
	return &System{nodes: []*Node{ground}, graph: g}
}

// NodeCount returns the number of nodes, including ground.
func (s *System) NodeCount() int { return len(s.nodes) }

// Node returns the node at the given index.
func (s *System) Node(i int) *Node { return s.nodes[i] }

// CoordWidth returns the total width of position/velocity/acceleration
// vectors this system expects.
func (s *System) CoordWidth() int { return s.coordWidth }

// ForceWidth returns the total width of the internal-force vector this
// system expects.
func (s *System) ForceWidth() int { return s.forceWidth }

// CreateChild appends a new body to the tree, attached to parentIdx through
// a joint of the given type, and returns its index. reversed must be false;
// any other value is a precondition violation: reversed joints are not
// currently supported.
func (s *System) CreateChild(
	parentIdx int,
	mp massprops.MassProperties,
	refOriginP spatial.Vec3,
	rBJ spatial.Mat33,
	jt JointType,
	useEuler bool,
	reversed bool,
) (int, error) {
	if s.frozen {
		return 0, newPreconditionViolated("cannot create child: system is frozen")
	}
	if reversed {
		return 0, newPreconditionViolated("reversed joints are not supported")
	}
	if parentIdx < 0 || parentIdx >= len(s.nodes) {
		return 0, newPreconditionViolated("parent index %d out of range", parentIdx)
	}

	k, err := newJointKinematics(jt, refOriginP, rBJ, useEuler)
	if err != nil {
		return 0, err
	}

	idx := len(s.nodes)
	parent := s.nodes[parentIdx]
	n := &Node{
		index:      idx,
		parent:     parentIdx,
		level:      parent.level + 1,
		joint:      k,
		massProps:  mp,
		rBJ:        rBJ,
		refOriginP: refOriginP,

		stateOffset: s.coordWidth,
		forceOffset: s.forceWidth,
	}
	s.coordWidth += k.Dim()
	s.forceWidth += k.Dof()

	s.nodes = append(s.nodes, n)
	parent.children = append(parent.children, idx)

	s.graph.AddNode(simple.Node(int64(idx)))
	s.graph.SetEdge(simple.Edge{F: simple.Node(int64(parentIdx)), T: simple.Node(int64(idx))})

	return idx, nil
}

// Freeze validates the assembled tree's topology (acyclic, single parent
// per node, base-first index order) and marks the system ready for
// recursive passes. Recursive passes and state transfer must not be called
// before Freeze, and CreateChild must not be called after.
func (s *System) Freeze() error {
	if s.frozen {
		return nil
	}
	if _, err := topo.Sort(s.graph); err != nil {
		return newPreconditionViolated("kinematic tree is not acyclic: %v", err)
	}
	for i, n := range s.nodes {
		if i == 0 {
			continue
		}
		if n.parent >= i {
			return newPreconditionViolated("node %d has parent index %d, not strictly lower", i, n.parent)
		}
		indeg := indegreeOf(s.graph, int64(i))
		if indeg != 1 {
			return newPreconditionViolated("node %d has in-degree %d, expected exactly 1", i, indeg)
		}
	}
	s.frozen = true
	return nil
}

func indegreeOf(g graph.Directed, id int64) int {
	count := 0
	it := g.To(id)
	for it.Next() {
		count++
	}
	return count
}

func newJointKinematics(jt JointType, refOriginP spatial.Vec3, rBJ spatial.Mat33, useEuler bool) (joint.Kinematics, error) {
	mode := joint.QuaternionOrientation
	if useEuler {
		mode = joint.Euler3
	}
	switch jt {
	case Ground:
		return joint.GroundJoint{}, nil
	case Torsion:
		return joint.NewTorsionJoint(refOriginP, rBJ), nil
	case UJoint:
		return joint.NewRotate2Joint(refOriginP, rBJ), nil
	case OrientationJoint:
		return joint.NewRotate3Joint(refOriginP, rBJ, mode), nil
	case CartesianJoint:
		return joint.NewCartesianJoint(refOriginP), nil
	case FreeLineJoint:
		return joint.NewDiatomJoint(refOriginP, rBJ), nil
	case FreeJoint:
		return joint.NewFreeJoint(refOriginP, rBJ, mode), nil
	default:
		return nil, newPreconditionViolated("unknown joint type %d", jt)
	}
}
