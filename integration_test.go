// Package artibody_test demonstrates (not implements) driving the
// multibody core with contact and gravity through a plain explicit-Euler
// stepping loop, per SPEC_FULL.md's supplemented dynamics-integration
// scenario. Time integration and contact geometry are both explicitly out
// of the core's scope; this shows the shape of an external collaborator
// that isn't.
package artibody_test

import (
	"math"
	"testing"

	"go.viam.com/test"

	"github.com/dynbody/artibody/contact"
	"github.com/dynbody/artibody/massprops"
	"github.com/dynbody/artibody/multibody"
	"github.com/dynbody/artibody/spatial"
)

// TestSphereSettlesOnGroundUnderGravityAndContact drops a unit sphere from
// above a y=0 ground plane, gravity and Hunt-Crossley contact both feeding
// into DynamicsStep as external spatial forces, and checks it settles into
// a shallow, bounded penetration rather than falling through the floor or
// diverging.
func TestSphereSettlesOnGroundUnderGravityAndContact(t *testing.T) {
	const radius = 0.8
	const dt = 0.001
	const steps = 4000

	sys := multibody.NewSystem()
	mp := massprops.New(1.0, spatial.Vec3{}, spatial.Mat33{})
	sphereIdx, err := sys.CreateChild(0, mp, spatial.Vec3{}, spatial.Identity33(), multibody.CartesianJoint, true, false)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, sys.Freeze(), test.ShouldBeNil)

	sphereMaterial := contact.Material{Stiffness: 1e5, Dissipation: 1.0, StaticMu: 0, DynamicMu: 0, ViscousMu: 0}
	groundMaterial := contact.Material{Stiffness: 1e5, Dissipation: 1.0, StaticMu: 0, DynamicMu: 0, ViscousMu: 0}
	surface := contact.Combine(sphereMaterial, groundMaterial)

	pos := []float64{0, radius + 0.2, 0}
	vel := []float64{0, 0, 0}
	sys.SetPos(pos)
	sys.SetVel(vel)

	minHeight := math.Inf(1)
	for i := 0; i < steps; i++ {
		height := pos[1]
		depth := radius - height
		closingVel := -vel[1]
		normal := surface.NormalForce(depth, closingVel)

		gravityForce := sys.GravityForces(spatial.Vec3{0, -9.8, 0})
		force := make([]spatial.Vec, sys.NodeCount())
		for n := range force {
			force[n] = gravityForce[n]
		}
		force[sphereIdx] = force[sphereIdx].Add(spatial.Vec{Linear: spatial.Vec3{0, normal, 0}})

		test.That(t, sys.DynamicsStep(force), test.ShouldBeNil)

		accel := make([]float64, sys.CoordWidth())
		sys.GetAccel(accel)

		for k := range vel {
			vel[k] += accel[k] * dt
			pos[k] += vel[k] * dt
		}
		sys.SetPos(pos)
		sys.SetVel(vel)

		if pos[1] < minHeight {
			minHeight = pos[1]
		}
	}

	test.That(t, math.IsNaN(pos[1]), test.ShouldBeFalse)
	// A very stiff contact should keep penetration shallow: the sphere
	// never gets close to falling through to the ground plane.
	test.That(t, minHeight, test.ShouldBeGreaterThan, radius-0.5)
	// It should have come down from its drop height and be resting near
	// the ground, not still in free fall or flung back up high.
	test.That(t, pos[1], test.ShouldBeLessThan, radius+0.2)
	test.That(t, pos[1], test.ShouldBeGreaterThan, -0.5)
}
