// SPDX-License-Identifier: MIT
// Package spblas_test contains test helpers.
//
// Purpose:
//   - Provide deterministic fixtures (CSR/Dense/Vector builders) and fake
//     kernel strategies that record their invocations, so façade logic is
//     verified independently of the reference arithmetic.

package spblas_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvlblas/spblas"
	"github.com/katalvlaran/lvlblas/tensor"
)

// tol is the comparison tolerance for floating-point property tests.
const tol = 1e-12

// mustCSR builds a Float64 CSR or fails the test.
func mustCSR(t *testing.T, rows, cols int, rowPtr, colInd []int, values []float64) *tensor.CSR {
	t.Helper()
	m, err := tensor.NewCSR(rows, cols, rowPtr, colInd, values, tensor.Float64)
	if err != nil {
		t.Fatalf("NewCSR: %v", err)
	}

	return m
}

// emptyCSR builds an n×n CSR with zero stored entries.
func emptyCSR(t *testing.T, n int) *tensor.CSR {
	t.Helper()
	rowPtr := make([]int, n+1)

	return mustCSR(t, n, n, rowPtr, []int{}, []float64{})
}

// mustIdentity builds the n×n CSR identity or fails the test.
func mustIdentity(t *testing.T, n int) *tensor.CSR {
	t.Helper()
	eye, err := tensor.Identity(n, tensor.Float64)
	if err != nil {
		t.Fatalf("Identity(%d): %v", n, err)
	}

	return eye
}

// mustDenseOf builds a Float64 Dense from row literals or fails the test.
func mustDenseOf(t *testing.T, rows [][]float64) *tensor.Dense {
	t.Helper()
	m, err := tensor.NewDenseOf(rows)
	if err != nil {
		t.Fatalf("NewDenseOf: %v", err)
	}

	return m
}

// mustVector allocates a zeroed Float64 vector of length n.
func mustVector(t *testing.T, n int) *tensor.Vector {
	t.Helper()
	v, err := tensor.NewVector(n, tensor.Float64)
	if err != nil {
		t.Fatalf("NewVector(%d): %v", n, err)
	}

	return v
}

// vecApprox asserts elementwise |got-want| <= tol.
func vecApprox(t *testing.T, got *tensor.Vector, want []float64) {
	t.Helper()
	if got.Len() != len(want) {
		t.Fatalf("length %d, want %d", got.Len(), len(want))
	}
	for i := 0; i < got.Len(); i++ {
		v, err := got.At(i)
		if err != nil {
			t.Fatalf("At(%d): %v", i, err)
		}
		if math.Abs(real(v)-want[i]) > tol || imag(v) != 0 {
			t.Fatalf("element %d: got %v, want %v", i, v, want[i])
		}
	}
}

// denseMatVecRef computes the dense reference β·self + α·(mat @ vec).
func denseMatVecRef(t *testing.T, mat *tensor.CSR, vec, self *tensor.Vector, beta, alpha float64) []float64 {
	t.Helper()
	d := mat.ToDense()
	out := make([]float64, mat.Rows())
	var i, j int // loop iterators
	for i = 0; i < mat.Rows(); i++ {
		acc := 0.0
		for j = 0; j < mat.Cols(); j++ {
			av, err := d.At(i, j)
			if err != nil {
				t.Fatalf("At(%d,%d): %v", i, j, err)
			}
			xv, err := vec.At(j)
			if err != nil {
				t.Fatalf("vec.At(%d): %v", j, err)
			}
			acc += real(av) * real(xv)
		}
		sv, err := self.At(i % self.Len()) // length-1 self broadcasts
		if err != nil {
			t.Fatalf("self.At: %v", err)
		}
		out[i] = beta*real(sv) + alpha*acc
	}

	return out
}

// fakeMatVec records its invocation and optionally fails.
type fakeMatVec struct {
	calls int
	mat   *tensor.CSR
	out   *tensor.Vector
	seed  []complex128 // out contents observed at call time
	err   error
}

func (f *fakeMatVec) AddMV(mat *tensor.CSR, vec *tensor.Vector, beta, alpha tensor.Scalar, out *tensor.Vector) error {
	f.calls++
	f.mat = mat
	f.out = out
	f.seed = f.seed[:0]
	for i := 0; i < out.Len(); i++ {
		v, _ := out.At(i)
		f.seed = append(f.seed, v)
	}
	if f.err != nil {
		return f.err
	}

	return spblas.CPUMatVec{}.AddMV(mat, vec, beta, alpha, out)
}

// fakeSolver records its invocation flags.
type fakeSolver struct {
	calls                       int
	upper, transpose, unitrdiag bool
	err                         error
}

// hideMatrix wraps a Matrix to mask its concrete type; façades must branch on
// the Layout tag, and the closed-set assertion after the tag check is the
// documented precondition surface this helper exercises.
type hideMatrix struct{ tensor.Matrix }

func (f *fakeSolver) Solve(A *tensor.CSR, B, X *tensor.Dense, upper, transpose, unitriangular bool) error {
	f.calls++
	f.upper, f.transpose, f.unitrdiag = upper, transpose, unitriangular
	if f.err != nil {
		return f.err
	}

	return spblas.CPUTriangularSolver{}.Solve(A, B, X, upper, transpose, unitriangular)
}

// errBackend is a sentinel used to verify pass-through propagation.
var errBackend = errors.New("backend exploded")
