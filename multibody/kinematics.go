package multibody

import "github.com/dynbody/artibody/spatial"

// positionPass refreshes R_PB/O_BP/H (from the joint), R_GB/O_BG, Phi, and
// the spatial mass properties for every node, base to tip, per
// RigidBodyNode::calcJointIndependentKinematicsPos. Ground's frame is
// fixed at identity/origin.
func (s *System) positionPass() {
	ground := s.nodes[0]
	ground.rGB = spatial.Identity33()
	ground.oBG = spatial.Vec3{}

	for i := 1; i < len(s.nodes); i++ {
		n := s.nodes[i]
		parent := s.nodes[n.parent]

		rPB, oBP, h := n.joint.CalcKinematicsPos(n.refOriginP, n.rBJ, parent.rGB)
		oBPG := parent.rGB.Mul3x1(oBP)

		n.rPB, n.oBP, n.h = rPB, oBP, h
		n.phi = spatial.NewShiftOp(oBPG)
		n.rGB = parent.rGB.Mul3(rPB)
		n.oBG = parent.oBG.Add(oBPG)

		n.mk = n.massProps.SpatialInertia(n.rGB)
		n.inertiaOBG = n.mk.AA
		n.comG = n.massProps.ComInGround(n.rGB)
	}
}

// velocityPass refreshes V_PB_G, s_vel, the gyroscopic bias b, and the
// Coriolis/centripetal bias a for every node, base to tip, per
// RigidBodyNode::calcJointIndependentKinematicsVel. Must follow a
// positionPass for the same generalized coordinates.
func (s *System) velocityPass() {
	ground := s.nodes[0]
	ground.sVel = spatial.Vec{}

	for i := 1; i < len(s.nodes); i++ {
		n := s.nodes[i]
		parent := s.nodes[n.parent]

		vPBG := n.joint.CalcKinematicsVel(n.h)
		n.vPBG = vPBG
		n.sVel = n.phi.ShiftToChild(parent.sVel).Add(vPBG)

		omega := n.sVel.Angular
		angularBias := omega.Cross(n.inertiaOBG.Mul3x1(omega))
		linearBias := omega.Cross(omega.Cross(n.comG)).Mul(n.massProps.Mass)
		n.bias = spatial.Vec{Angular: angularBias, Linear: linearBias}

		omegaParent := parent.sVel.Angular
		aAngular := spatial.CrossMat(omegaParent).Mul3x1(vPBG.Angular)
		aLinear := spatial.CrossMat(omegaParent).Mul3x1(vPBG.Linear).
			Add(omegaParent.Cross(n.sVel.Linear.Sub(parent.sVel.Linear)))
		n.a = spatial.Vec{Angular: aAngular, Linear: aLinear}
	}
}

// KineticEnergy returns the whole system's kinetic energy, sum over nodes
// of half*s_vel . (M_k * s_vel). Valid after a velocity pass.
func (s *System) KineticEnergy() float64 {
	total := 0.0
	for i := 1; i < len(s.nodes); i++ {
		total += s.nodes[i].KineticEnergy()
	}
	return total
}
