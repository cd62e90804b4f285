package spatial

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestCrossMatMatchesCrossProduct(t *testing.T) {
	v := Vec3{1, 2, 3}
	w := Vec3{-2, 0.5, 4}
	test.That(t, CrossMat(v).Mul3x1(w), test.ShouldResemble, v.Cross(w))
}

func TestShiftRoundTrip(t *testing.T) {
	// Shifting a velocity to the child and a force back through the parent
	// must be mutually consistent: Phi is its own sort of "inverse" in the
	// sense that transpose(Phi) and Phi move motion/force vectors in
	// opposite directions along the same offset.
	s := NewShiftOp(Vec3{1, 0, 0})
	v := Vec{Angular: Vec3{0, 0, 1}, Linear: Vec3{0, 1, 0}}
	shifted := s.ShiftToChild(v)

	// angular half is unaffected by a pure translation
	test.That(t, shifted.Angular, test.ShouldResemble, v.Angular)
	// linear half picks up omega x r = (0,0,1) x (1,0,0) = (0,1,0)
	expectedLinear := v.Linear.Add(v.Angular.Cross(s.Offset))
	test.That(t, shifted.Linear.ApproxEqualThreshold(expectedLinear, 1e-12), test.ShouldBeTrue)

	// The force shifted back to the parent pairs with v exactly as f pairs
	// with the shifted velocity: (transpose(Phi)*v).f == v.(Phi*f).
	f := Vec{Angular: Vec3{0.5, -1, 2}, Linear: Vec3{3, 0, -1}}
	test.That(t, math.Abs(shifted.Dot(f)-v.Dot(s.ShiftToParent(f))) < 1e-12, test.ShouldBeTrue)
}

func TestShiftForceMomentPickup(t *testing.T) {
	s := NewShiftOp(Vec3{0, 0, 2})
	f := Vec{Angular: Vec3{0, 0, 0}, Linear: Vec3{1, 0, 0}}
	shifted := s.ShiftToParent(f)

	test.That(t, shifted.Linear, test.ShouldResemble, f.Linear)
	expectedMoment := f.Angular.Add(s.Offset.Cross(f.Linear))
	test.That(t, shifted.Angular.ApproxEqualThreshold(expectedMoment, 1e-12), test.ShouldBeTrue)
}

func TestOrthoTransformIdentity(t *testing.T) {
	m := Mat33{2, 0, 0, 0, 3, 0, 0, 0, 4}
	test.That(t, OrthoTransform(m, Identity33()).ApproxEqualThreshold(m, 1e-12), test.ShouldBeTrue)
}
