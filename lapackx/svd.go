package lapackx

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack"
	"gonum.org/v1/gonum/lapack/lapack64"
	"gonum.org/v1/gonum/mat"
)

// SVD is a thin-SVD result: A = U * diag(S) * V^T, u is m x min(m,n) and vt
// is min(m,n) x n. Grounded on LapackInterface::gesdd (jobz='S').
type SVD struct {
	U, VT *mat.Dense
	S     []float64
}

// ComputeSVD runs dgesdd with jobz='S' (the "store" job, min(m,n) singular
// vectors), using the standard two-call LAPACK workspace idiom: probe with
// lwork=-1 to get the optimal size back in work[0], then make the real call
// with a buffer of that size. dgesdd's documented workspace-size formula
// (5*mn for jobz=='N', else 5*mn^2+7*mn) is a compile-time upper bound for
// callers who want to skip the probe; this wrapper always probes instead,
// since the probe is exact and jobz is fixed here to 'S'.
func ComputeSVD(a *mat.Dense) (*SVD, error) {
	m, n := a.Dims()
	mn := min(m, n)

	raw := blas64.General{Rows: m, Cols: n, Stride: n, Data: append([]float64(nil), a.RawMatrix().Data...)}
	u := blas64.General{Rows: m, Cols: mn, Stride: mn, Data: make([]float64, m*mn)}
	vt := blas64.General{Rows: mn, Cols: n, Stride: n, Data: make([]float64, mn*n)}
	s := make([]float64, mn)
	iwork := make([]int, 8*mn)

	// Workspace query: lwork=-1 asks dgesdd to report the optimal size in
	// work[0] without doing any real work.
	work := make([]float64, 1)
	ok := lapack64.Gesdd(lapack.SVDStore, raw, s, u, vt, work, -1, iwork)
	if !ok {
		return nil, errors.New("lapackx: dgesdd workspace query failed")
	}
	lwork := int(work[0])
	if lwork < 1 {
		lwork = 1
	}
	work = make([]float64, lwork)

	// raw was left untouched by the probe call (lwork=-1 is query-only), so
	// the real call still sees the original matrix.
	ok = lapack64.Gesdd(lapack.SVDStore, raw, s, u, vt, work, lwork, iwork)
	if !ok {
		return nil, errors.New("lapackx: dgesdd failed to converge")
	}

	return &SVD{
		U:  mat.NewDense(m, mn, u.Data),
		VT: mat.NewDense(mn, n, vt.Data),
		S:  s,
	}, nil
}

// ConditionNumber returns the ratio of largest to smallest singular value,
// a measure of how close a matrix is to SingularConfiguration in
// multibody.calcP's D inversion.
func (s *SVD) ConditionNumber() float64 {
	if len(s.S) == 0 {
		return math.Inf(1)
	}
	smallest := s.S[len(s.S)-1]
	if smallest == 0 {
		return math.Inf(1)
	}
	return s.S[0] / smallest
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
