package lapackx

import (
	"math"
	"testing"

	"go.viam.com/test"
	"gonum.org/v1/gonum/mat"
)

// TestSolveLURoundTrips replicates the reference scenario: a random
// positive-definite 5x5 matrix, solved for a right-hand side, then checked
// that A*(A^-1*b) recovers b to double-precision tolerance.
func TestSolveLURoundTrips(t *testing.T) {
	a := mat.NewDense(5, 5, []float64{
		9, 1, 0, 2, 0,
		1, 8, 1, 0, 1,
		0, 1, 10, 1, 0,
		2, 0, 1, 11, 2,
		0, 1, 0, 2, 9,
	})
	b := mat.NewVecDense(5, []float64{1, 2, 3, 4, 5})

	x, err := SolveLU(a, b)
	test.That(t, err, test.ShouldBeNil)

	var recovered mat.VecDense
	recovered.MulVec(a, x)

	for i := 0; i < 5; i++ {
		test.That(t, math.Abs(recovered.AtVec(i)-b.AtVec(i)), test.ShouldBeLessThan, 1e-10)
	}
}

func TestFactorLURejectsNonSquare(t *testing.T) {
	a := mat.NewDense(2, 3, make([]float64, 6))
	_, err := FactorLU(a)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestSolveLUDetectsSingularMatrix(t *testing.T) {
	a := mat.NewDense(3, 3, []float64{
		1, 2, 3,
		2, 4, 6,
		1, 1, 1,
	})
	b := mat.NewVecDense(3, []float64{1, 2, 3})

	_, err := SolveLU(a, b)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestLUFactorReusedAcrossMultipleSolves(t *testing.T) {
	a := mat.NewDense(3, 3, []float64{
		4, 0, 0,
		0, 5, 0,
		0, 0, 6,
	})
	lu, err := FactorLU(a)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, lu.Singular(), test.ShouldBeFalse)

	b1 := mat.NewVecDense(3, []float64{4, 10, 18})
	x1, err := lu.Solve(b1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, math.Abs(x1.AtVec(0)-1), test.ShouldBeLessThan, 1e-12)
	test.That(t, math.Abs(x1.AtVec(1)-2), test.ShouldBeLessThan, 1e-12)
	test.That(t, math.Abs(x1.AtVec(2)-3), test.ShouldBeLessThan, 1e-12)

	b2 := mat.NewVecDense(3, []float64{8, 5, 6})
	x2, err := lu.Solve(b2)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, math.Abs(x2.AtVec(0)-2), test.ShouldBeLessThan, 1e-12)
	test.That(t, math.Abs(x2.AtVec(1)-1), test.ShouldBeLessThan, 1e-12)
	test.That(t, math.Abs(x2.AtVec(2)-1), test.ShouldBeLessThan, 1e-12)
}

func TestComputeSVDOfIdentityHasUnitSingularValuesAndConditionOne(t *testing.T) {
	id := mat.NewDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		id.Set(i, i, 1)
	}

	svd, err := ComputeSVD(id)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(svd.S), test.ShouldEqual, 4)
	for _, sv := range svd.S {
		test.That(t, math.Abs(sv-1), test.ShouldBeLessThan, 1e-9)
	}
	test.That(t, math.Abs(svd.ConditionNumber()-1), test.ShouldBeLessThan, 1e-9)
}
