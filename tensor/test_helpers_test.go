// SPDX-License-Identifier: MIT
// Package tensor_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures so each test focuses on the
//     contract it exercises instead of allocation boilerplate.

package tensor_test

import (
	"testing"

	"github.com/katalvlaran/lvlblas/tensor"
)

// MustDense allocates an r×c *Dense of dtype dt or fails the test.
func MustDense(t *testing.T, r, c int, dt tensor.DType) *tensor.Dense {
	t.Helper()
	m, err := tensor.NewDense(r, c, dt)
	if err != nil {
		t.Fatalf("NewDense(%d,%d,%s): %v", r, c, dt, err)
	}

	return m
}

// MustDenseOf builds a Float64 Dense from row literals or fails the test.
func MustDenseOf(t *testing.T, rows [][]float64) *tensor.Dense {
	t.Helper()
	m, err := tensor.NewDenseOf(rows)
	if err != nil {
		t.Fatalf("NewDenseOf: %v", err)
	}

	return m
}

// MustCSR builds a CSR or fails the test.
func MustCSR(t *testing.T, rows, cols int, rowPtr, colInd []int, values []float64) *tensor.CSR {
	t.Helper()
	m, err := tensor.NewCSR(rows, cols, rowPtr, colInd, values, tensor.Float64)
	if err != nil {
		t.Fatalf("NewCSR: %v", err)
	}

	return m
}

// MustAt reads d(i,j) or fails the test.
func MustAt(t *testing.T, d *tensor.Dense, i, j int) complex128 {
	t.Helper()
	v, err := d.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet writes d(i,j) or fails the test.
func MustSet(t *testing.T, d *tensor.Dense, i, j int, v complex128) {
	t.Helper()
	if err := d.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d): %v", i, j, err)
	}
}
