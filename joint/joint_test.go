package joint

import (
	"math"
	"testing"

	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"

	"github.com/dynbody/artibody/spatial"
)

func TestTorsionJointAxisIsZColumnOfRGB(t *testing.T) {
	j := NewTorsionJoint(spatial.Vec3{0, 0, 0}, spatial.Identity33())
	_, _, h := j.CalcKinematicsPos(spatial.Vec3{}, spatial.Identity33(), spatial.Identity33())
	test.That(t, h.Dof(), test.ShouldEqual, 1)
	test.That(t, h[0].Angular, test.ShouldResemble, spatial.Vec3{0, 0, 1})
}

func TestCartesianJointHRowsAreGroundAxes(t *testing.T) {
	j := NewCartesianJoint(spatial.Vec3{1, 2, 3})
	rGP := spatial.Identity33()
	_, oBP, h := j.CalcKinematicsPos(spatial.Vec3{}, spatial.Identity33(), rGP)
	test.That(t, oBP, test.ShouldResemble, spatial.Vec3{1, 2, 3})
	test.That(t, h[0].Linear, test.ShouldResemble, rGP.Col(0))
	test.That(t, h[2].Linear, test.ShouldResemble, rGP.Col(2))
}

func TestBallQuaternionStartsAtIdentityRotation(t *testing.T) {
	b := NewBall(QuaternionOrientation)
	r := b.CalcR_PB()
	test.That(t, r.ApproxEqualThreshold(spatial.Identity33(), 1e-12), test.ShouldBeTrue)
}

func TestBallQuaternionVelocityRoundTrip(t *testing.T) {
	// omega -> dq (via SetDerivs) -> omega (via SetVel) should round-trip.
	b := NewBall(QuaternionOrientation)
	omega := spatial.Vec3{0.1, -0.2, 0.3}
	b.SetDerivs(omega)

	v := make([]float64, 4)
	b.GetVel(v, 0)
	b2 := NewBall(QuaternionOrientation)
	b2.q = b.q
	b2.SetVel(v, 0)

	test.That(t, b2.omega.ApproxEqualThreshold(omega, 1e-9), test.ShouldBeTrue)
}

func TestBallEnforceConstraintsNormalizesAndProjects(t *testing.T) {
	b := NewBall(QuaternionOrientation)
	pos := []float64{2, 0, 0, 0} // unnormalized
	vel := []float64{1, 1, 0, 0} // not tangent to pos
	b.EnforceConstraints(pos, vel, 0)

	q := quat.Number{Real: pos[0], Imag: pos[1], Jmag: pos[2], Kmag: pos[3]}
	test.That(t, math.Abs(quat.Abs(q)-1) < 1e-9, test.ShouldBeTrue)

	dq := quat.Number{Real: vel[0], Imag: vel[1], Jmag: vel[2], Kmag: vel[3]}
	test.That(t, math.Abs(dot4(q, dq)) < 1e-9, test.ShouldBeTrue)
}

func TestBallEulerInternalForceUsesDegToRad(t *testing.T) {
	b := NewBall(Euler3)
	b.eTheta = spatial.Vec3{0, 0, 0}
	b.CalcR_PB() // populates cached trig at theta=0

	out := make([]float64, 3)
	b.GetInternalForce(spatial.Vec3{0, 0, 1}, out, 0)
	// at theta=0, M = [[0,0,1],[-0,1,0],[1,0,-0]]; torque (0,0,1) maps to
	// row-by-row dot products (1,0,0), scaled by DegToRad.
	test.That(t, math.Abs(out[0]-DegToRad) < 1e-12, test.ShouldBeTrue)
	test.That(t, math.Abs(out[1]) < 1e-12, test.ShouldBeTrue)
	test.That(t, math.Abs(out[2]) < 1e-12, test.ShouldBeTrue)
}

func TestBallEulerCompositionRotatesYToX(t *testing.T) {
	zero := NewBall(Euler3)
	r := zero.CalcR_PB()
	test.That(t, r.ApproxEqualThreshold(spatial.Identity33(), 1e-12), test.ShouldBeTrue)

	b := NewBall(Euler3)
	b.eTheta = spatial.Vec3{90, 0, 0}
	r = b.CalcR_PB()
	got := r.Mul3x1(spatial.Vec3{0, 1, 0})
	test.That(t, got.ApproxEqualThreshold(spatial.Vec3{1, 0, 0}, 1e-9), test.ShouldBeTrue)
}

func TestRotate3JointDelegatesDimToBall(t *testing.T) {
	jEuler := NewRotate3Joint(spatial.Vec3{}, spatial.Identity33(), Euler3)
	test.That(t, jEuler.Dim(), test.ShouldEqual, 3)
	jQuat := NewRotate3Joint(spatial.Vec3{}, spatial.Identity33(), QuaternionOrientation)
	test.That(t, jQuat.Dim(), test.ShouldEqual, 4)
	test.That(t, jQuat.Dof(), test.ShouldEqual, 3)
}

func TestFreeJointDimIsBallDimPlusThree(t *testing.T) {
	j := NewFreeJoint(spatial.Vec3{}, spatial.Identity33(), QuaternionOrientation)
	test.That(t, j.Dim(), test.ShouldEqual, 7)
	test.That(t, j.Dof(), test.ShouldEqual, 6)
}

func TestFreeJointPosRoundTrip(t *testing.T) {
	j := NewFreeJoint(spatial.Vec3{}, spatial.Identity33(), Euler3)
	in := []float64{10, 20, 30, 1, 2, 3}
	j.SetPos(in, 0)
	out := make([]float64, 6)
	j.GetPos(out, 0)
	test.That(t, out, test.ShouldResemble, in)
}
