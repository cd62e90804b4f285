package lapackx

import (
	"gonum.org/v1/gonum/lapack/lapack64"
	netlib "gonum.org/v1/netlib/lapack/netlib"
)

// UseNetlibBackend swaps lapack64's double-precision backend from gonum's
// pure-Go implementation to the cgo-backed netlib binding, for callers that
// have linked a real FORTRAN LAPACK and want its performance/ulp behavior
// instead of the pure-Go reimplementation. The default (pure Go) backend is
// used until this is called; most callers, including this package's tests,
// never need to.
func UseNetlibBackend() {
	lapack64.Use(netlib.Implementation{})
}
