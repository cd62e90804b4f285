package joint

import (
	"math"

	"gonum.org/v1/gonum/num/quat"

	"github.com/dynbody/artibody/spatial"
)

// Orientation selects the parameterization a ball-style joint uses for its
// rotational degrees of freedom: three Euler angles (a minimal but
// singular representation) or a unit quaternion (nonsingular, but carrying
// a redundant fourth coordinate and a tangent-space velocity constraint).
type Orientation int

const (
	// Euler3 parameterizes orientation with three body-three (3-2-1) Euler
	// angles, in degrees.
	Euler3 Orientation = iota
	// QuaternionOrientation parameterizes orientation with a unit
	// quaternion; the associated velocity is a 4-vector q-dot subject to
	// q.q-dot = 0.
	QuaternionOrientation
)

// Ball is the contained ball-joint component shared by Rotate3Joint and
// FreeJoint, per ContainedBallJoint. It
// switches between a 3-parameter (Euler) and 4-parameter (quaternion)
// orientation representation while always exposing a 3-DOF angular
// velocity omega = w_PB_P (angular velocity of B in P, expressed in P) as
// the motion-level generalized velocity.
type Ball struct {
	mode Orientation

	// Euler-mode position state, in degrees; omega/domega below are shared
	// with quaternion mode as the motion-level state.
	eTheta spatial.Vec3

	omega, domega spatial.Vec3 // motion-level generalized velocity/accel (rad/s, rad/s^2)

	// Quaternion-mode position/velocity/acceleration state.
	q, dq, ddq quat.Number

	// Cached trig from the last calcR_PB call, needed by the Euler
	// internal-force Jacobian.
	cPhi, sPhi, cTheta, sTheta float64
}

// NewBall constructs a ball component in the given orientation mode. The
// quaternion starts at identity; the Euler angles start at zero.
func NewBall(mode Orientation) *Ball {
	b := &Ball{mode: mode}
	b.q = quat.Number{Real: 1}
	return b
}

// Dim returns 4 for quaternion mode, 3 for Euler mode: the number of
// position-level coordinate slots this component occupies.
func (b *Ball) Dim() int {
	if b.mode == QuaternionOrientation {
		return 4
	}
	return 3
}

// SetPos unpacks this component's position coordinates from stateVec at
// offset.
func (b *Ball) SetPos(stateVec []float64, offset int) {
	if b.mode == Euler3 {
		b.eTheta = spatial.Vec3{stateVec[offset], stateVec[offset+1], stateVec[offset+2]}
		return
	}
	b.q = quat.Number{Real: stateVec[offset], Imag: stateVec[offset+1], Jmag: stateVec[offset+2], Kmag: stateVec[offset+3]}
}

// GetPos packs this component's position coordinates into stateVec at offset.
func (b *Ball) GetPos(stateVec []float64, offset int) {
	if b.mode == Euler3 {
		stateVec[offset], stateVec[offset+1], stateVec[offset+2] = b.eTheta[0], b.eTheta[1], b.eTheta[2]
		return
	}
	stateVec[offset], stateVec[offset+1], stateVec[offset+2], stateVec[offset+3] = b.q.Real, b.q.Imag, b.q.Jmag, b.q.Kmag
}

// SetVel unpacks the external velocity representation: omega (3 slots) in
// Euler mode, or q-dot (4 slots) in quaternion mode, converting q-dot into
// the internal motion-level omega via omega = 2*M(q)*q-dot.
func (b *Ball) SetVel(stateVec []float64, offset int) {
	if b.mode == Euler3 {
		b.omega = spatial.Vec3{stateVec[offset], stateVec[offset+1], stateVec[offset+2]}
		return
	}
	b.dq = quat.Number{Real: stateVec[offset], Imag: stateVec[offset+1], Jmag: stateVec[offset+2], Kmag: stateVec[offset+3]}
	b.omega = applyM3x4(qMatrix3x4(b.q), b.dq).Mul(2)
}

// GetVel packs the external velocity representation: omega in Euler mode,
// q-dot in quaternion mode.
func (b *Ball) GetVel(stateVec []float64, offset int) {
	if b.mode == Euler3 {
		stateVec[offset], stateVec[offset+1], stateVec[offset+2] = b.omega[0], b.omega[1], b.omega[2]
		return
	}
	stateVec[offset], stateVec[offset+1], stateVec[offset+2], stateVec[offset+3] = b.dq.Real, b.dq.Imag, b.dq.Jmag, b.dq.Kmag
}

// CalcAccel derives q-double-dot from omega/domega in quaternion mode; a
// no-op in Euler mode, where domega already is the reported acceleration.
// Must be called after the recursive algorithm's calcAccel pass.
func (b *Ball) CalcAccel() {
	if b.mode == Euler3 {
		return
	}
	dM := applyM4x3(qMatrix4x3(b.dq), b.omega)
	m := applyM4x3(qMatrix4x3(b.q), b.domega)
	b.ddq = quat.Scale(0.5, quat.Add(dM, m))
}

// GetAccel packs the external acceleration representation.
func (b *Ball) GetAccel(stateVec []float64, offset int) {
	if b.mode == Euler3 {
		stateVec[offset], stateVec[offset+1], stateVec[offset+2] = b.domega[0], b.domega[1], b.domega[2]
		return
	}
	stateVec[offset], stateVec[offset+1], stateVec[offset+2], stateVec[offset+3] = b.ddq.Real, b.ddq.Imag, b.ddq.Jmag, b.ddq.Kmag
}

// CalcR_PB computes the rotation matrix R_PB for the current orientation
// state, per the body-three Euler formula or the quaternion-to-matrix
// formula.
func (b *Ball) CalcR_PB() spatial.Mat33 {
	if b.mode == Euler3 {
		phi := b.eTheta[0] * DegToRad
		theta := b.eTheta[1] * DegToRad
		psi := b.eTheta[2] * DegToRad
		b.cPhi, b.sPhi = math.Cos(phi), math.Sin(phi)
		b.cTheta, b.sTheta = math.Cos(theta), math.Sin(theta)
		cPsi, sPsi := math.Cos(psi), math.Sin(psi)

		// Body-three 3-2-1 sequence (rotate by Phi about z, then Theta about
		// y', then Psi about x''), transposed: R_PB carries a parent-frame
		// vector's components into the body frame's embedding in the
		// parent, so it is the transpose of the body-to-parent composition
		// Rz(Phi)*Ry(Theta)*Rx(Psi).
		return spatial.Mat33{
			// column 0
			b.cPhi * b.cTheta,
			-b.sPhi*cPsi + b.cPhi*b.sTheta*sPsi,
			b.sPhi*sPsi + b.cPhi*b.sTheta*cPsi,
			// column 1
			b.sPhi * b.cTheta,
			b.cPhi*cPsi + b.sPhi*b.sTheta*sPsi,
			-b.cPhi*sPsi + b.sPhi*b.sTheta*cPsi,
			// column 2
			-b.sTheta,
			b.cTheta * sPsi,
			b.cTheta * cPsi,
		}
	}

	w, x, y, z := b.q.Real, b.q.Imag, b.q.Jmag, b.q.Kmag
	return spatial.Mat33{
		// column 0
		w*w + x*x - y*y - z*z,
		2 * (x*y + w*z),
		2 * (x*z - w*y),
		// column 1
		2 * (x*y - w*z),
		w*w - x*x + y*y - z*z,
		2 * (y*z + w*x),
		// column 2
		2 * (x*z + w*y),
		2 * (y*z - w*x),
		w*w - x*x - y*y + z*z,
	}
}

// EnforceConstraints normalizes the quaternion and projects q-dot onto the
// tangent space (q.q-dot = 0) in-place in the external state vectors; a
// no-op in Euler mode.
func (b *Ball) EnforceConstraints(posVec, velVec []float64, offset int) {
	if b.mode == Euler3 {
		return
	}
	q := quat.Number{Real: posVec[offset], Imag: posVec[offset+1], Jmag: posVec[offset+2], Kmag: posVec[offset+3]}
	dq := quat.Number{Real: velVec[offset], Imag: velVec[offset+1], Jmag: velVec[offset+2], Kmag: velVec[offset+3]}

	n := quat.Abs(q)
	q = quat.Scale(1/n, q)
	dq = quat.Sub(dq, quat.Scale(dot4(q, dq), q))

	posVec[offset], posVec[offset+1], posVec[offset+2], posVec[offset+3] = q.Real, q.Imag, q.Jmag, q.Kmag
	velVec[offset], velVec[offset+1], velVec[offset+2], velVec[offset+3] = dq.Real, dq.Imag, dq.Jmag, dq.Kmag

	b.q, b.dq = q, dq
}

// GetInternalForce maps the generalized (angular) internal force torque
// (expressed as the H-conjugate of omega, i.e. body-frame-independent
// generalized torque) into the external representation: for Euler mode,
// through the standard body-three inverse Jacobian; for quaternion mode,
// the generalized force is already expressed in the same 3-vector space
// that omega lives in, so it is passed through unchanged: passing quaternion
// torque straight through is the natural generalization of the Euler-only
// case, since H is identical in both modes.
func (b *Ball) GetInternalForce(torque spatial.Vec3, stateVec []float64, offset int) {
	if b.mode == QuaternionOrientation {
		stateVec[offset], stateVec[offset+1], stateVec[offset+2] = torque[0], torque[1], torque[2]
		return
	}
	m := spatial.Mat33{
		// column 0
		0, -b.sPhi, b.cPhi * b.cTheta,
		// column 1
		0, b.cPhi, b.sPhi * b.cTheta,
		// column 2
		1, 0, -b.sTheta,
	}
	eTorque := m.Mul3x1(torque).Mul(DegToRad)
	stateVec[offset], stateVec[offset+1], stateVec[offset+2] = eTorque[0], eTorque[1], eTorque[2]
}

// SetDerivs computes q-dot from the current quaternion and a known angular
// velocity omega, needed after a spatial-velocity-driven state set (e.g.
// SetVelFromSVel). In Euler mode only omega is stored.
func (b *Ball) SetDerivs(omega spatial.Vec3) {
	if b.mode == Euler3 {
		b.omega = omega
		return
	}
	b.omega = omega
	b.dq = quat.Scale(0.5, applyM4x3(qMatrix4x3(b.q), omega))
}

func qMatrix4x3(q quat.Number) [4][3]float64 {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	return [4][3]float64{
		{-x, -y, -z},
		{w, z, -y},
		{-z, w, x},
		{y, -x, w},
	}
}

func applyM4x3(m [4][3]float64, v spatial.Vec3) quat.Number {
	var r [4]float64
	for i := 0; i < 4; i++ {
		r[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return quat.Number{Real: r[0], Imag: r[1], Jmag: r[2], Kmag: r[3]}
}

func qMatrix3x4(q quat.Number) [3][4]float64 {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	return [3][4]float64{
		{-x, w, -z, y},
		{-y, z, w, -x},
		{-z, -y, x, w},
	}
}

func applyM3x4(m [3][4]float64, dq quat.Number) spatial.Vec3 {
	d := [4]float64{dq.Real, dq.Imag, dq.Jmag, dq.Kmag}
	var r spatial.Vec3
	for i := 0; i < 3; i++ {
		r[i] = m[i][0]*d[0] + m[i][1]*d[1] + m[i][2]*d[2] + m[i][3]*d[3]
	}
	return r
}

func dot4(a, b quat.Number) float64 {
	return a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag
}
