package multibody

import (
	"gonum.org/v1/gonum/mat"

	"github.com/dynbody/artibody/joint"
	"github.com/dynbody/artibody/spatial"
)

// calcP computes the articulated inertia P and the DOF-space factors D, DI,
// G, tau for every node, tip to base, per RigidBodyNodeSpec::calcP. Each
// node's P accumulator starts at M_k and
// picks up its children's folded contributions as the reverse loop visits
// them, so by the time a node is processed its P already equals M_k plus
// every child's Phi*(tau*P)*Phi^t.
func (s *System) calcP() error {
	for _, n := range s.nodes {
		n.p = n.mk
	}

	for i := len(s.nodes) - 1; i >= 1; i-- {
		n := s.nodes[i]
		dof := n.h.Dof()

		d := mat.NewDense(dof, dof, nil)
		pH := make([]spatial.Vec, dof)
		for r := 0; r < dof; r++ {
			pH[r] = n.p.MulVec(n.h[r])
		}
		for r := 0; r < dof; r++ {
			for c := 0; c < dof; c++ {
				d.Set(r, c, n.h[r].Dot(pH[c]))
			}
		}

		var di mat.Dense
		if err := di.Inverse(d); err != nil {
			return newSingularConfiguration(n.index, n.level, n.h, err)
		}
		n.d, n.di = d, &di

		g := make(joint.HMatrix, dof)
		for c := 0; c < dof; c++ {
			var col spatial.Vec
			for r := 0; r < dof; r++ {
				col = col.Add(pH[r].Scale(di.At(r, c)))
			}
			g[c] = col
		}
		n.g = g

		tau := spatial.Identity()
		for i := 0; i < dof; i++ {
			tau = tau.Sub(spatial.Outer(g[i], n.h[i]))
		}
		n.tau = tau

		contribution := n.phi.Conjugate(tau.Mul(n.p))
		parent := s.nodes[n.parent]
		parent.p = parent.p.Add(contribution)
	}
	return nil
}

// calcZ computes the residual spatial force z and the DOF-space quantities
// eps, nu, Geps for every node, tip to base, given an external spatial
// force per node (nil or a short slice is treated as zero force on the
// missing entries). Must follow calcP for the same state. Per
// RigidBodyNodeSpec::calcZ.
func (s *System) calcZ(extForce []spatial.Vec) {
	for _, n := range s.nodes {
		f := extForceAt(extForce, n.index)
		n.z = n.mk.MulVec(n.a).Add(n.bias).Sub(f)
	}

	for i := len(s.nodes) - 1; i >= 1; i-- {
		n := s.nodes[i]
		dof := n.h.Dof()

		tauInt := make([]float64, dof)
		n.joint.GetInternalForce(tauInt, 0)

		hz := n.h.Apply(n.z)
		eps := make([]float64, dof)
		for k := range eps {
			eps[k] = tauInt[k] - hz[k]
		}

		var nuVD mat.VecDense
		nuVD.MulVec(n.di, mat.NewVecDense(dof, eps))
		nu := make([]float64, dof)
		for k := range nu {
			nu[k] = nuVD.AtVec(k)
		}

		n.eps, n.nu = eps, nu
		n.geps = n.g.TransposeApply(eps)

		contribution := n.phi.ShiftToParent(n.z.Add(n.geps))
		parent := s.nodes[n.parent]
		parent.z = parent.z.Add(contribution)
	}
}

// calcAccel computes s_acc and the generalized acceleration theta-double-dot
// for every node, base to tip, given calcP/calcZ results for the same
// state. Ground's s_acc is zero, per RigidBodyNodeSpec::calcAccel.
func (s *System) calcAccel() {
	s.nodes[0].sAcc = spatial.Vec{}

	for i := 1; i < len(s.nodes); i++ {
		n := s.nodes[i]
		parent := s.nodes[n.parent]
		dof := n.h.Dof()

		alphaShifted := n.phi.ShiftToChild(parent.sAcc)
		gta := n.g.Apply(alphaShifted)

		ddtheta := make([]float64, dof)
		for k := range ddtheta {
			ddtheta[k] = n.nu[k] - gta[k]
		}

		n.sAcc = alphaShifted.Add(n.h.TransposeApply(ddtheta)).Add(n.a)
		n.joint.SetAccel(ddtheta)
	}
}

// calcY computes the inverse-inertia sensitivity Y for every node, base to
// tip, given calcP results for the same state. Ground's Y is zero. Per
// RigidBodyNodeSpec::calcY.
func (s *System) calcY() {
	s.nodes[0].y = spatial.Mat{}

	for i := 1; i < len(s.nodes); i++ {
		n := s.nodes[i]
		parent := s.nodes[n.parent]
		dof := n.h.Dof()

		htDIH := spatial.Mat{}
		for r := 0; r < dof; r++ {
			for c := 0; c < dof; c++ {
				htDIH = htDIH.Add(spatial.Outer(n.h[r].Scale(n.di.At(r, c)), n.h[c]))
			}
		}

		psiT := n.tau.Transpose().Mul(n.phi.Transpose())
		n.y = htDIH.Add(psiT.Mul(parent.y).Mul(psiT.Transpose()))
	}
}

// calcInternalForce is the standalone kinematic inverse: given a per-node
// external spatial force, it back-substitutes through H to the generalized
// force that would produce it, tip to base, independent of calcP/calcZ's
// dynamics state. It only needs H and Phi from a prior position pass, not
// calcP/calcZ. Per RigidBodyNodeSpec::calcInternalForce.
func (s *System) calcInternalForce(extForce []spatial.Vec) {
	for _, n := range s.nodes {
		n.zIF = extForceAt(extForce, n.index).Neg()
	}

	for i := len(s.nodes) - 1; i >= 1; i-- {
		n := s.nodes[i]
		tauInt := n.h.Apply(n.zIF)
		n.joint.SetInternalForce(tauInt)

		contribution := n.phi.ShiftToParent(n.zIF)
		parent := s.nodes[n.parent]
		parent.zIF = parent.zIF.Add(contribution)
	}
}

// DynamicsStep runs the six-step forward-dynamics pipeline described in the
// external interfaces: position pass, velocity pass, calcP, calcZ(F),
// calcAccel, leaving generalized accelerations ready to read via GetAccel.
func (s *System) DynamicsStep(extForce []spatial.Vec) error {
	s.positionPass()
	s.velocityPass()
	if err := s.calcP(); err != nil {
		return err
	}
	s.calcZ(extForce)
	s.calcAccel()
	return nil
}

// CalcY runs the constraint-projection sensitivity pass. Requires a prior
// calcP (e.g. via DynamicsStep or PositionAndCalcP).
func (s *System) CalcY() { s.calcY() }

// CalcInternalForce runs the standalone inverse operation: given a per-node
// external spatial force, produces the generalized force that would induce
// it, readable via GetInternalForce.
func (s *System) CalcInternalForce(extForce []spatial.Vec) { s.calcInternalForce(extForce) }

// PositionAndCalcP runs just the position pass and calcP, for callers that
// only need the articulated mass matrix (e.g. to assemble M_gen for a
// kinetic-energy consistency check) without a full dynamics step.
func (s *System) PositionAndCalcP() error {
	s.positionPass()
	if err := s.calcP(); err != nil {
		return err
	}
	return nil
}

func extForceAt(f []spatial.Vec, i int) spatial.Vec {
	if i < len(f) {
		return f[i]
	}
	return spatial.Vec{}
}
