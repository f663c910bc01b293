// Package spblas_test provides benchmarks for the sparse operation façades,
// using deterministic random fill so runs are comparable.
package spblas_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlblas/spblas"
	"github.com/katalvlaran/lvlblas/tensor"
)

// benchSizes are the square matrix orders to benchmark.
var benchSizes = []int{128, 512, 2048}

// sinks to defeat dead-code elimination
var (
	sinkV *tensor.Vector
	sinkD *tensor.Dense
	sinkC *tensor.CSR
)

// benchTridiag builds an n×n tridiagonal CSR with deterministic values; the
// diagonal is kept away from zero so triangular solves never hit ErrSingular.
func benchTridiag(b *testing.B, n int, seed int64) *tensor.CSR {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	rowPtr := make([]int, n+1)
	colInd := make([]int, 0, 3*n)
	values := make([]float64, 0, 3*n)
	for i := 0; i < n; i++ {
		for j := i - 1; j <= i+1; j++ {
			if j < 0 || j >= n {
				continue
			}
			colInd = append(colInd, j)
			if j == i {
				values = append(values, 2+rng.Float64()) // pivot in [2,3)
			} else {
				values = append(values, rng.Float64()-0.5)
			}
		}
		rowPtr[i+1] = len(colInd)
	}
	m, err := tensor.NewCSR(n, n, rowPtr, colInd, values, tensor.Float64)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

// benchVector builds a deterministic random vector of length n.
func benchVector(b *testing.B, n int, seed int64) *tensor.Vector {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}

	return tensor.NewVectorOf(vals...)
}

func BenchmarkAddMV(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			mat := benchTridiag(b, n, 1337)
			vec := benchVector(b, n, 4242)
			self := benchVector(b, n, 7)
			result, err := tensor.NewVector(n, tensor.Float64)
			if err != nil {
				b.Fatal(err)
			}
			beta, alpha := tensor.Real(0.5), tensor.Real(2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, mvErr := spblas.AddMV(self, mat, vec, beta, alpha, result)
				if mvErr != nil {
					b.Fatal(mvErr)
				}
				sinkV = v
			}
		})
	}
}

func BenchmarkTriangularSolve(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchTridiag(b, n, 11) // lower solve ignores the superdiagonal
			B, err := tensor.NewZeros(n, 1, tensor.Float64)
			if err != nil {
				b.Fatal(err)
			}
			rng := rand.New(rand.NewSource(22))
			for i := 0; i < n; i++ {
				if err := B.Set(i, 0, complex(rng.Float64(), 0)); err != nil {
					b.Fatal(err)
				}
			}
			X, err := tensor.NewDense(n, 1, tensor.Float64)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, solveErr := spblas.TriangularSolve(B, A, false, false, false, X)
				if solveErr != nil {
					b.Fatal(solveErr)
				}
				sinkD = d
			}
		})
	}
}

// sampledSizes stay small: the reference path is a dense O(n³) product.
var sampledSizes = []int{32, 64, 128}

func BenchmarkSampledAddMM(b *testing.B) {
	b.ReportAllocs()
	for _, n := range sampledSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			self := benchTridiag(b, n, 33)
			dense := func(seed int64) *tensor.Dense {
				rng := rand.New(rand.NewSource(seed))
				m, err := tensor.NewDense(n, n, tensor.Float64)
				if err != nil {
					b.Fatal(err)
				}
				raw := m.RawData()
				for i := range raw {
					raw[i] = rng.Float64()*2 - 1
				}

				return m
			}
			m1, m2 := dense(44), dense(55)
			result := tensor.EmptyCSR(tensor.Float64)
			beta, alpha := tensor.Real(1), tensor.Real(1)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c, mmErr := spblas.SampledAddMM(self, m1, m2, beta, alpha, result)
				if mmErr != nil {
					b.Fatal(mmErr)
				}
				sinkC = c
			}
		})
	}
}
