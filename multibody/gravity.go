package multibody

import "github.com/dynbody/artibody/spatial"

// GravityForces builds the per-node spatial force vector for a uniform
// gravitational field g, expressed about each body's own origin: the
// applied force acts at the center of mass, so it carries an induced
// moment comG x (mass*g) about the origin, per how MassProperties'
// spatial inertia is itself expressed about the body origin (see
// massprops.SpatialInertia). Runs a position pass internally so comG is
// current for the given coordinates; safe to call immediately before
// DynamicsStep, which redoes the position pass anyway, or CalcInternalForce,
// which uses the H and Phi this position pass leaves.
func (s *System) GravityForces(g spatial.Vec3) []spatial.Vec {
	s.positionPass()
	out := make([]spatial.Vec, len(s.nodes))
	for i := 1; i < len(s.nodes); i++ {
		n := s.nodes[i]
		weight := g.Mul(n.massProps.Mass)
		out[i] = spatial.Vec{Angular: n.comG.Cross(weight), Linear: weight}
	}
	return out
}
