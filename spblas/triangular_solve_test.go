// SPDX-License-Identifier: MIT
// Package spblas_test contains unit tests for the TriangularSolve façade and
// the reference substitution kernel behind it.
package spblas_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlblas/spblas"
	"github.com/katalvlaran/lvlblas/tensor"
)

// denseApprox asserts elementwise |got-want| <= tol on a Dense.
func denseApprox(t *testing.T, got *tensor.Dense, want [][]float64) {
	t.Helper()
	require.Equal(t, len(want), got.Rows())
	for i := range want {
		require.Equal(t, len(want[i]), got.Cols())
		for j := range want[i] {
			v, err := got.At(i, j)
			require.NoError(t, err)
			require.InDeltaf(t, want[i][j], real(v), tol, "element (%d,%d)", i, j)
			require.Zero(t, imag(v))
		}
	}
}

// lowerA is [[2,0,0],[1,3,0],[4,5,6]] in CSR form.
func lowerA(t *testing.T) *tensor.CSR {
	t.Helper()

	return mustCSR(t, 3, 3,
		[]int{0, 1, 3, 6},
		[]int{0, 0, 1, 0, 1, 2},
		[]float64{2, 1, 3, 4, 5, 6})
}

// upperA is [[2,1,4],[0,3,5],[0,0,6]] in CSR form — the transpose of lowerA.
func upperA(t *testing.T) *tensor.CSR {
	t.Helper()

	return mustCSR(t, 3, 3,
		[]int{0, 3, 5, 6},
		[]int{0, 1, 2, 1, 2, 2},
		[]float64{2, 1, 4, 3, 5, 6})
}

func TestTriangularSolve_LowerForward(t *testing.T) {
	t.Parallel()

	// B = lowerA @ [1,2,3]ᵀ.
	B := mustDenseOf(t, [][]float64{{2}, {7}, {32}})
	X, err := spblas.TriangularSolveNew(B, lowerA(t), false, false, false)
	require.NoError(t, err)
	denseApprox(t, X, [][]float64{{1}, {2}, {3}})
}

func TestTriangularSolve_UpperBackward(t *testing.T) {
	t.Parallel()

	// B = upperA @ [1,2,3]ᵀ.
	B := mustDenseOf(t, [][]float64{{16}, {21}, {18}})
	X, err := spblas.TriangularSolveNew(B, upperA(t), true, false, false)
	require.NoError(t, err)
	denseApprox(t, X, [][]float64{{1}, {2}, {3}})
}

// TestTriangularSolve_TransposeModes: op(A)=Aᵀ flips which triangle is
// effectively active; each mode must reproduce the untransposed solve of the
// explicitly transposed matrix.
func TestTriangularSolve_TransposeModes(t *testing.T) {
	t.Parallel()

	t.Run("transpose lower is upper", func(t *testing.T) {
		t.Parallel()
		// lowerAᵀ == upperA, so lowerAᵀ @ [1,2,3]ᵀ = [16,21,18]ᵀ.
		B := mustDenseOf(t, [][]float64{{16}, {21}, {18}})
		X, err := spblas.TriangularSolveNew(B, lowerA(t), false, true, false)
		require.NoError(t, err)
		denseApprox(t, X, [][]float64{{1}, {2}, {3}})
	})

	t.Run("transpose upper is lower", func(t *testing.T) {
		t.Parallel()
		// upperAᵀ == lowerA, so upperAᵀ @ [1,2,3]ᵀ = [2,7,32]ᵀ.
		B := mustDenseOf(t, [][]float64{{2}, {7}, {32}})
		X, err := spblas.TriangularSolveNew(B, upperA(t), true, true, false)
		require.NoError(t, err)
		denseApprox(t, X, [][]float64{{1}, {2}, {3}})
	})
}

// TestTriangularSolve_Unitriangular: stored diagonal values — even exact
// zeros — are ignored when the diagonal is declared implicitly unit.
func TestTriangularSolve_Unitriangular(t *testing.T) {
	t.Parallel()

	// Effective matrix [[1,0,0],[1,1,0],[4,5,1]]; stored diagonal is garbage.
	corrupted := mustCSR(t, 3, 3,
		[]int{0, 1, 3, 6},
		[]int{0, 0, 1, 0, 1, 2},
		[]float64{0, 1, 99, 4, 5, -7})
	clean := mustCSR(t, 3, 3,
		[]int{0, 1, 3, 6},
		[]int{0, 0, 1, 0, 1, 2},
		[]float64{1, 1, 1, 4, 5, 1})

	// B = effective @ [1,2,3]ᵀ = [1,3,17]ᵀ.
	B := mustDenseOf(t, [][]float64{{1}, {3}, {17}})

	Xc, err := spblas.TriangularSolveNew(B, corrupted, false, false, true)
	require.NoError(t, err)
	Xk, err := spblas.TriangularSolveNew(B, clean, false, false, true)
	require.NoError(t, err)

	denseApprox(t, Xc, [][]float64{{1}, {2}, {3}})
	require.True(t, Xc.Equal(Xk))
}

// TestTriangularSolve_IgnoresInactiveTriangle: fully-stored matrices solve
// identically to their triangular projections.
func TestTriangularSolve_IgnoresInactiveTriangle(t *testing.T) {
	t.Parallel()

	// Full 3×3 whose lower triangle equals lowerA; the upper junk must not
	// influence the lower solve.
	full := mustCSR(t, 3, 3,
		[]int{0, 3, 6, 9},
		[]int{0, 1, 2, 0, 1, 2, 0, 1, 2},
		[]float64{2, 100, 200, 1, 3, 300, 4, 5, 6})

	B := mustDenseOf(t, [][]float64{{2}, {7}, {32}})
	X, err := spblas.TriangularSolveNew(B, full, false, false, false)
	require.NoError(t, err)
	denseApprox(t, X, [][]float64{{1}, {2}, {3}})
}

func TestTriangularSolve_MultiRHS(t *testing.T) {
	t.Parallel()

	// Columns [1,2,3]ᵀ and [-1,0,2]ᵀ: lowerA @ X gives the two B columns.
	B := mustDenseOf(t, [][]float64{{2, -2}, {7, -1}, {32, 8}})
	X, err := spblas.TriangularSolveNew(B, lowerA(t), false, false, false)
	require.NoError(t, err)
	denseApprox(t, X, [][]float64{{1, -1}, {2, 0}, {3, 2}})
}

// TestTriangularSolve_SingularAtomic: a zero pivot fails before any write, so
// X keeps its prior contents and shape.
func TestTriangularSolve_SingularAtomic(t *testing.T) {
	t.Parallel()

	// Row 1 has no stored diagonal: pivot reads as exact zero.
	singular := mustCSR(t, 3, 3,
		[]int{0, 1, 2, 3},
		[]int{0, 0, 2},
		[]float64{2, 1, 6})
	B := mustDenseOf(t, [][]float64{{1}, {1}, {1}})
	X := mustDenseOf(t, [][]float64{{41}, {42}}) // deliberately wrong shape

	_, err := spblas.TriangularSolve(B, singular, false, false, false, X)
	require.ErrorIs(t, err, spblas.ErrSingular)
	require.Contains(t, err.Error(), "zero pivot at row 1")
	denseApprox(t, X, [][]float64{{41}, {42}}) // untouched, not even resized
}

// TestTriangularSolve_Epsilon: WithEpsilon widens the singularity predicate
// from exact zero to |pivot| <= eps.
func TestTriangularSolve_Epsilon(t *testing.T) {
	t.Parallel()

	tiny := mustCSR(t, 2, 2, []int{0, 1, 2}, []int{0, 1}, []float64{1, 1e-15})
	B := mustDenseOf(t, [][]float64{{1}, {1}})

	// Default tolerance: 1e-15 is a legal (if awful) pivot.
	_, err := spblas.TriangularSolveNew(B, tiny, false, false, false)
	require.NoError(t, err)

	// Tolerance above the pivot magnitude rejects it.
	_, err = spblas.TriangularSolveNew(B, tiny, false, false, false, spblas.WithEpsilon(1e-12))
	require.ErrorIs(t, err, spblas.ErrSingular)
}

// TestTriangularSolve_SolverInjection: flags reach the backend verbatim and
// backend errors propagate without an extra wrapping layer.
func TestTriangularSolve_SolverInjection(t *testing.T) {
	t.Parallel()

	fake := &fakeSolver{}
	B := mustDenseOf(t, [][]float64{{16}, {21}, {18}})
	_, err := spblas.TriangularSolveNew(B, upperA(t), true, false, true, spblas.WithTriangularSolver(fake))
	require.NoError(t, err)
	require.Equal(t, 1, fake.calls)
	require.True(t, fake.upper)
	require.False(t, fake.transpose)
	require.True(t, fake.unitrdiag)

	failing := &fakeSolver{err: errBackend}
	_, err = spblas.TriangularSolveNew(B, upperA(t), true, false, false, spblas.WithTriangularSolver(failing))
	require.Same(t, errBackend, err) // unchanged, not merely wrapped
}

func TestTriangularSolve_PanicsOnDenseA(t *testing.T) {
	t.Parallel()

	dense := mustDenseOf(t, [][]float64{{1, 0}, {0, 1}})
	B := mustDenseOf(t, [][]float64{{1}, {2}})
	require.PanicsWithValue(t, spblas.PanicANotCSR_TestOnly, func() {
		_, _ = spblas.TriangularSolve(B, dense, false, false, false, mustDenseOf(t, [][]float64{{0}}))
	})
}

func TestTriangularSolve_ShapeErrors(t *testing.T) {
	t.Parallel()

	rect := mustCSR(t, 2, 3, []int{0, 0, 0}, []int{}, []float64{})
	B := mustDenseOf(t, [][]float64{{1}, {2}})

	_, err := spblas.TriangularSolveNew(B, rect, false, false, false)
	require.ErrorIs(t, err, spblas.ErrInvalidShape)
	require.Contains(t, err.Error(), "want square")

	shortB := mustDenseOf(t, [][]float64{{1}})
	_, err = spblas.TriangularSolveNew(shortB, lowerA(t), false, false, false)
	require.ErrorIs(t, err, spblas.ErrInvalidShape)
	require.Contains(t, err.Error(), "B has 1 rows, want 3")
}

func TestSolveLowerUpperAliases(t *testing.T) {
	t.Parallel()

	B := mustDenseOf(t, [][]float64{{2}, {7}, {32}})
	X, err := spblas.SolveLower(B, lowerA(t))
	require.NoError(t, err)
	denseApprox(t, X, [][]float64{{1}, {2}, {3}})

	Bu := mustDenseOf(t, [][]float64{{16}, {21}, {18}})
	Xu, err := spblas.SolveUpper(Bu, upperA(t))
	require.NoError(t, err)
	denseApprox(t, Xu, [][]float64{{1}, {2}, {3}})
}
