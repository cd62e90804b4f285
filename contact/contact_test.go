package contact

import (
	"math"
	"testing"

	"go.viam.com/test"
)

// materials mirrors TestHuntCrossleyForce.cpp's two ContactSurfaceIndex
// parameter sets exactly.
var (
	surface1 = Material{Stiffness: 1.0, Dissipation: 0.5, StaticMu: 1.0, DynamicMu: 0.5, ViscousMu: 0.1}
	surface2 = Material{Stiffness: 2.0, Dissipation: 1.0, StaticMu: 0.7, DynamicMu: 0.2, ViscousMu: 0.05}
)

// independentFh recomputes the no-velocity normal force the way the test
// fixture does, from first principles, independent of the package's
// internal Combine/NormalForce code path.
func independentFh(radius, depth float64) float64 {
	k1 := math.Pow(surface1.Stiffness, 2.0/3.0)
	k2 := math.Pow(surface2.Stiffness, 2.0/3.0)
	stiffness := k1 * k2 / (k1 + k2)
	if depth <= 0 {
		return 0
	}
	return (4.0 / 3.0) * stiffness * depth * math.Sqrt(radius*stiffness*depth)
}

func TestNormalForceAtRestMatchesHuntCrossleyFormula(t *testing.T) {
	const radius = 0.8
	c := Combine(surface1, surface2)

	for height := radius + 0.2; height > 0; height -= 0.1 {
		depth := radius - height
		expected := independentFh(radius, depth)
		got := c.NormalForce(depth, 0)
		test.That(t, math.Abs(got-expected), test.ShouldBeLessThan, 1e-10)
	}
}

func TestNormalForceWithClosingVelocityAddsDissipation(t *testing.T) {
	const radius = 0.8
	const height = 0.5 // depth = 0.3
	depth := radius - height
	c := Combine(surface1, surface2)

	k1 := math.Pow(surface1.Stiffness, 2.0/3.0)
	k2 := math.Pow(surface2.Stiffness, 2.0/3.0)
	dissipation := (surface1.Dissipation*k2 + surface2.Dissipation*k1) / (k1 + k2)
	fh := independentFh(radius, depth)

	for v := -1.0; v <= 1.0; v += 0.1 {
		expected := fh * (1.0 + 1.5*dissipation*v)
		if expected < 0 {
			expected = 0
		}
		got := c.NormalForce(depth, v)
		test.That(t, math.Abs(got-expected), test.ShouldBeLessThan, 1e-9)
	}
}

func TestFrictionMatchesRegularizedCoulombFormula(t *testing.T) {
	const radius = 0.8
	const height = 0.5
	depth := radius - height
	c := Combine(surface1, surface2)
	fh := c.NormalForce(depth, 0)

	us := 2 * surface1.StaticMu * surface2.StaticMu / (surface1.StaticMu + surface2.StaticMu)
	ud := 2 * surface1.DynamicMu * surface2.DynamicMu / (surface1.DynamicMu + surface2.DynamicMu)
	uv := 2 * surface1.ViscousMu * surface2.ViscousMu / (surface1.ViscousMu + surface2.ViscousMu)

	for v := -1.0; v <= 1.0; v += 0.1 {
		vrel := math.Abs(v / TransitionVelocity)
		sign := -1.0
		if v < 0 {
			sign = 1.0
		}
		expected := sign * fh * (math.Min(vrel, 1.0)*(ud+2*(us-ud)/(1+vrel*vrel)) + uv*math.Abs(v))
		got := c.Friction(fh, v)
		test.That(t, math.Abs(got-expected), test.ShouldBeLessThan, 1e-9)
	}
}

func TestNoContactWhenNotPenetrating(t *testing.T) {
	c := Combine(surface1, surface2)
	test.That(t, c.NormalForce(0, 0), test.ShouldEqual, 0.0)
	test.That(t, c.NormalForce(-0.1, 5), test.ShouldEqual, 0.0)
}

func TestZeroNormalForceProducesZeroFriction(t *testing.T) {
	c := Combine(surface1, surface2)
	test.That(t, c.Friction(0, 1.0), test.ShouldEqual, 0.0)
}

func TestContactPointSplitMatchesStiffnessRatio(t *testing.T) {
	c := Combine(surface1, surface2)
	k1 := math.Pow(surface1.Stiffness, 2.0/3.0)
	k2 := math.Pow(surface2.Stiffness, 2.0/3.0)
	expected := k1 / (k1 + k2)
	test.That(t, math.Abs(c.ContactPointSplit()-expected), test.ShouldBeLessThan, 1e-12)
}
