// Package contact implements the Hunt-Crossley compliant normal-force model
// and a regularized Coulomb friction law, grounded on
// HuntCrossleyForce/TestHuntCrossleyForce.cpp. It is a standalone
// collaborator, not part of the multibody core: a caller drives it from
// outside, supplying penetration depth and relative surface velocity each
// step and feeding the resulting force back in as one of
// multibody.DynamicsStep's external spatial forces.
package contact

import "math"

// Material is one contact surface's Hunt-Crossley/friction parameters, per
// HuntCrossleyForce::setBodyParameters.
type Material struct {
	Stiffness   float64 // raw stiffness k; effective stiffness is k^(2/3)
	Dissipation float64
	StaticMu    float64
	DynamicMu   float64
	ViscousMu   float64
}

// effectiveStiffness is k^(2/3), the quantity HuntCrossleyForce actually
// combines across the two materials in contact.
func (m Material) effectiveStiffness() float64 {
	return math.Pow(m.Stiffness, 2.0/3.0)
}

// TransitionVelocity is the friction regularization speed below which
// dynamic friction blends toward zero and static friction takes over, per
// HuntCrossleyForce::setTransitionVelocity. TestHuntCrossleyForce.cpp fixes
// this at 1e-3.
const TransitionVelocity = 1e-3

// combined holds the two materials' properties pre-combined the way
// HuntCrossleyForce does once per contacting pair, so NormalForce/Friction
// don't recompute them on every call.
type combined struct {
	stiffness   float64 // k1k2/(k1+k2) using effective (^2/3) stiffnesses
	dissipation float64
	us, ud, uv  float64
	k1, k2      float64 // effective stiffnesses, kept for the contact-point split
}

// Combine pre-combines two materials' parameters per the Hunt-Crossley
// mixing rules: stiffnesses combine like springs in series, dissipation is a
// stiffness-weighted average, and the three friction coefficients combine
// as harmonic-mean-like blends (2*a*b/(a+b)).
func Combine(a, b Material) combined {
	k1, k2 := a.effectiveStiffness(), b.effectiveStiffness()
	return combined{
		stiffness:   k1 * k2 / (k1 + k2),
		dissipation: (a.Dissipation*k2 + b.Dissipation*k1) / (k1 + k2),
		us:          2 * a.StaticMu * b.StaticMu / (a.StaticMu + b.StaticMu),
		ud:          2 * a.DynamicMu * b.DynamicMu / (a.DynamicMu + b.DynamicMu),
		uv:          2 * a.ViscousMu * b.ViscousMu / (a.ViscousMu + b.ViscousMu),
		k1:          k1,
		k2:          k2,
	}
}

// NormalForce returns the Hunt-Crossley normal force magnitude for a contact
// at the given penetration depth (positive = interpenetrating) and closing
// velocity (positive = depth increasing, i.e. still compressing). It is
// zero when depth <= 0 (not in contact) and clamped to zero rather than
// going negative when dissipation would otherwise pull the surfaces
// together on separation.
func (c combined) NormalForce(depth, closingVel float64) float64 {
	if depth <= 0 {
		return 0
	}
	fh := (4.0 / 3.0) * c.stiffness * depth * math.Sqrt(depth*c.stiffness)
	f := fh * (1 + 1.5*c.dissipation*closingVel)
	if f < 0 {
		return 0
	}
	return f
}

// Friction returns the regularized-Coulomb tangential force opposing
// slideVel (the relative tangential speed), scaled by the current normal
// force magnitude fn. Sign is such that the returned force opposes the
// direction of slideVel.
func (c combined) Friction(fn, slideVel float64) float64 {
	if fn == 0 {
		return 0
	}
	vrel := math.Abs(slideVel / TransitionVelocity)
	magnitudeFactor := math.Min(vrel, 1)*(c.ud+2*(c.us-c.ud)/(1+vrel*vrel)) + c.uv*math.Abs(slideVel)
	// Matches HuntCrossleyForce's (v < 0 ? 1 : -1) tie-break:
	// slideVel == 0 resolves to -1, not 0.
	sign := -1.0
	if slideVel < 0 {
		sign = 1.0
	}
	return sign * fn * magnitudeFactor
}

// ContactPointSplit returns how far the contact point sits below the first
// surface's nominal position, as a fraction of the total penetration depth:
// stiffness1/(stiffness1+stiffness2), per
// sphere.findStationAtGroundPoint(..., -stiffness1*depth/(stiffness1+stiffness2) ...)
// in TestHuntCrossleyForce.cpp. Multiplied by depth, this gives the offset
// used to locate the equivalent point force on the first body.
func (c combined) ContactPointSplit() float64 {
	return c.k1 / (c.k1 + c.k2)
}
