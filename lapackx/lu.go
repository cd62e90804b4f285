package lapackx

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
	"gonum.org/v1/gonum/mat"
)

// LU is a factored double-precision matrix, ready for repeated Solve calls
// against different right-hand sides without re-factoring. Grounded on
// LapackInterface::getrf/getrs: factor once,
// solve as many times as needed.
type LU struct {
	a    blas64.General // overwritten in place by Getrf: L and U packed together
	ipiv []int
	n    int
	ok   bool
}

// FactorLU runs dgetrf on a copy of a (a is not mutated). ok is false when
// a is exactly singular (a zero pivot was produced); Solve on a non-ok LU
// returns an error rather than silently producing NaNs.
func FactorLU(a *mat.Dense) (*LU, error) {
	r, c := a.Dims()
	if r != c {
		return nil, errors.Errorf("lapackx: FactorLU requires a square matrix, got %dx%d", r, c)
	}

	raw := blas64.General{
		Rows: r, Cols: c, Stride: c,
		Data: append([]float64(nil), a.RawMatrix().Data...),
	}
	ipiv := make([]int, r)
	ok := lapack64.Getrf(raw, ipiv)

	return &LU{a: raw, ipiv: ipiv, n: r, ok: ok}, nil
}

// Singular reports whether the factorization found a would-be-zero pivot.
func (lu *LU) Singular() bool { return !lu.ok }

// Solve returns x solving A*x = b via dgetrs, given the prior dgetrf
// factorization. b is not mutated.
func (lu *LU) Solve(b *mat.VecDense) (*mat.VecDense, error) {
	if lu.Singular() {
		return nil, errors.New("lapackx: Solve called on a singular factorization")
	}
	n := b.Len()
	if n != lu.n {
		return nil, errors.Errorf("lapackx: Solve dimension mismatch: LU is %dx%d, b has length %d", lu.n, lu.n, n)
	}

	x := blas64.General{Rows: n, Cols: 1, Stride: 1, Data: make([]float64, n)}
	for i := 0; i < n; i++ {
		x.Data[i] = b.AtVec(i)
	}

	lapack64.Getrs(blas.NoTrans, lu.a, x, lu.ipiv)

	out := mat.NewVecDense(n, x.Data)
	return out, nil
}

// SolveLU is the one-shot convenience form: factor a and solve A*x = b in a
// single call.
func SolveLU(a *mat.Dense, b *mat.VecDense) (*mat.VecDense, error) {
	lu, err := FactorLU(a)
	if err != nil {
		return nil, err
	}
	if lu.Singular() {
		return nil, errors.New("lapackx: SolveLU: matrix is singular")
	}
	return lu.Solve(b)
}
