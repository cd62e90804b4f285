package massprops

import (
	"testing"

	"go.viam.com/test"

	"github.com/dynbody/artibody/spatial"
)

func TestSpatialInertiaIdentityOrientation(t *testing.T) {
	mp := New(2.0, spatial.Vec3{1, 0, 0}, spatial.Identity33())
	mk := mp.SpatialInertia(spatial.Identity33())

	test.That(t, mk.LL, test.ShouldResemble, spatial.Mat33{2, 0, 0, 0, 2, 0, 0, 0, 2})
	// off-diagonal blocks must be negatives of each other (the coupling
	// block is skew-symmetric, so the combined 6x6 is symmetric)
	for i := range mk.AL {
		test.That(t, mk.AL[i], test.ShouldEqual, -mk.LA[i])
	}
}

func TestComInGround(t *testing.T) {
	mp := New(1.0, spatial.Vec3{1, 0, 0}, spatial.Identity33())
	// rotate 90 degrees about z: x-axis maps to y-axis
	r := spatial.Mat33{0, 1, 0, -1, 0, 0, 0, 0, 1}
	com := mp.ComInGround(r)
	test.That(t, com.ApproxEqualThreshold(spatial.Vec3{0, 1, 0}, 1e-9), test.ShouldBeTrue)
}
