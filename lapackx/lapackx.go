// Package lapackx is a thin dispatch layer over LAPACK/BLAS, mirroring
// LapackInterface: one small surface
// (factor, solve, decompose) that hides which scalar kind and which
// concrete routine backs it. Double precision is wired to
// gonum.org/v1/gonum/lapack/lapack64 (the routines this module actually
// exercises: Getrf/Getrs for LU, Gesdd for SVD). Single precision and the
// two complex kinds are represented as typed storage only: the gonum
// ecosystem available to this module does not ship a pure-Go LAPACK binding
// for those kinds equivalent to lapack64, so Kind is still a public,
// four-valued enum (for API shape and future wiring) but FactorLU/SolveLU
// only dispatch for KindFloat64 today; see DESIGN.md.
package lapackx

// Kind names a scalar kind a caller can request, one of the four LAPACK
// precisions (S/D/C/Z).
type Kind int

const (
	KindFloat32 Kind = iota
	KindFloat64
	KindComplex64
	KindComplex128
)

func (k Kind) String() string {
	switch k {
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindComplex64:
		return "complex64"
	case KindComplex128:
		return "complex128"
	default:
		return "unknown"
	}
}
