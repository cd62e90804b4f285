package multibody

// SetPos unpacks every node's generalized coordinates from coordVec
// (CoordWidth-long), per the setPos external interface.
func (s *System) SetPos(coordVec []float64) {
	for i := 1; i < len(s.nodes); i++ {
		n := s.nodes[i]
		n.joint.SetPos(coordVec, n.stateOffset)
	}
}

// SetVel unpacks every node's generalized velocity from velVec
// (CoordWidth-long: ball/free joints in quaternion mode carry q-dot, one
// slot wider than their motion DOF), per the setVel external interface.
func (s *System) SetVel(velVec []float64) {
	for i := 1; i < len(s.nodes); i++ {
		n := s.nodes[i]
		n.joint.SetVel(velVec, n.stateOffset)
	}
}

// GetPos packs every node's generalized coordinates into coordVec.
func (s *System) GetPos(coordVec []float64) {
	for i := 1; i < len(s.nodes); i++ {
		n := s.nodes[i]
		n.joint.GetPos(coordVec, n.stateOffset)
	}
}

// GetVel packs every node's generalized velocity into velVec.
func (s *System) GetVel(velVec []float64) {
	for i := 1; i < len(s.nodes); i++ {
		n := s.nodes[i]
		n.joint.GetVel(velVec, n.stateOffset)
	}
}

// GetAccel packs every node's generalized acceleration (theta-double-dot,
// or q-double-dot for quaternion joints) into accVec, valid after
// calcAccel.
func (s *System) GetAccel(accVec []float64) {
	for i := 1; i < len(s.nodes); i++ {
		n := s.nodes[i]
		n.joint.GetAccel(accVec, n.stateOffset)
	}
}

// GetInternalForce packs every node's generalized internal force into
// forceVec (ForceWidth-long: always motion-DOF-width, even for quaternion
// ball/free joints, since a generalized force lives in the tangent/motion
// space, not the redundant coordinate space).
func (s *System) GetInternalForce(forceVec []float64) {
	for i := 1; i < len(s.nodes); i++ {
		n := s.nodes[i]
		n.joint.GetInternalForce(forceVec, n.forceOffset)
	}
}

// SetInternalForce unpacks every node's driving generalized force (e.g.
// actuator torque) from forceVec, for use as the tau_int term in a
// subsequent calcZ. Defaults to zero for any node not explicitly set.
func (s *System) SetInternalForce(forceVec []float64) {
	for i := 1; i < len(s.nodes); i++ {
		n := s.nodes[i]
		dof := n.joint.Dof()
		n.joint.SetInternalForce(forceVec[n.forceOffset : n.forceOffset+dof])
	}
}

// EnforceConstraints normalizes/projects every ball-joint node's quaternion
// state in-place in coordVec/velVec; a no-op for every other joint family.
func (s *System) EnforceConstraints(coordVec, velVec []float64) {
	for i := 1; i < len(s.nodes); i++ {
		n := s.nodes[i]
		n.joint.EnforceConstraints(coordVec, velVec, n.stateOffset)
	}
}
