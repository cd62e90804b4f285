// Package massprops holds a rigid body's constant, body-frame mass
// properties and the machinery to re-express them as a spatial inertia in
// the current ground frame, per RigidBodyNode::calcJointIndependentKinematicsPos
//.
package massprops

import (
	"github.com/dynbody/artibody/spatial"
)

// MassProperties is the body-frame description of a rigid body's inertia:
// total mass, the station (position) of the center of mass in the body
// frame, and the inertia tensor about the body origin, also in the body
// frame. These never change after a body is constructed.
type MassProperties struct {
	Mass       float64
	ComStation spatial.Vec3
	InertiaOB  spatial.Mat33 // about the body origin, body frame
}

// New builds a MassProperties value. The mass is not validated.
func New(mass float64, comStation spatial.Vec3, inertiaOB spatial.Mat33) MassProperties {
	return MassProperties{Mass: mass, ComStation: comStation, InertiaOB: inertiaOB}
}

// SpatialInertia computes the spatial inertia M_k about the body origin,
// expressed in ground, given the body's current orientation R_GB:
//
//	M_k = [ R_GB*I_OB_B*R_GBt   , m*skew(s_G)  ]
//	      [ -m*skew(s_G)        , m*Identity   ]
//
// where s_G = R_GB * comStation. M_k is symmetric; the off-diagonal block is
// skew-symmetric so the lower-left block is its negation.
func (mp MassProperties) SpatialInertia(rGB spatial.Mat33) spatial.Mat {
	inertiaG := spatial.OrthoTransform(mp.InertiaOB, rGB)
	comG := rGB.Mul3x1(mp.ComStation)
	offDiag := spatial.Skew(mp.Mass, comG)

	ident := spatial.Identity33()
	massIdent := spatial.Mat33{
		mp.Mass * ident[0], mp.Mass * ident[1], mp.Mass * ident[2],
		mp.Mass * ident[3], mp.Mass * ident[4], mp.Mass * ident[5],
		mp.Mass * ident[6], mp.Mass * ident[7], mp.Mass * ident[8],
	}

	negOffDiag := spatial.Mat33{}
	for i := range offDiag {
		negOffDiag[i] = -offDiag[i]
	}

	return spatial.Mat{AA: inertiaG, AL: offDiag, LA: negOffDiag, LL: massIdent}
}

// ComInGround returns the center-of-mass station in ground, R_GB*comStation.
func (mp MassProperties) ComInGround(rGB spatial.Mat33) spatial.Vec3 {
	return rGB.Mul3x1(mp.ComStation)
}
