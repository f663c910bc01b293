// SPDX-License-Identifier: MIT

// Package spblas - SampledAddMM: masked dense product façade.

package spblas

import (
	"fmt"

	"github.com/katalvlaran/lvlblas/tensor"
)

// SampledAddMM computes result := mask(α·(mat1 @ mat2) + β·self, pattern(self))
// where mat1 and mat2 are dense, self is sparse CSR supplying the sparsity
// pattern, and result is sparse CSR with exactly that pattern.
//
// Contract:
//   - self MUST be CSR; another layout here is a programming defect and panics.
//   - Validation sequence (each failure a distinct error naming the offending
//     field pair, all before any mutation of result):
//     1. layouts — mat1, mat2 strided; result sparse CSR;
//     2. dtypes  — mat1/mat2, mat1/self, result/self pairwise equal;
//     3. ranks   — all operands 2-D (inherent in the container types);
//     4. inner   — mat1.Cols() == mat2.Rows();
//     5. outer   — self.Rows() == mat1.Rows(), self.Cols() == mat2.Cols().
//   - result may alias self; when it does not, result adopts self's shape and
//     sparsity pattern before the write.
//
// Execution materializes self as dense, computes the dense addmm and masks the
// product back down to self's pattern: entries outside the pattern are
// dropped, not merely zeroed, so the result's non-zero set equals self's
// independent of mat1/mat2 values. The memory-for-simplicity trade is
// deliberate; a backend computing only the sampled entries must preserve this
// output contract bit-for-bit in rounding behavior relative to the dense
// computation.
//
// Errors: ErrNilArgument, ErrInvalidLayout (with the actual layout),
// ErrDTypeMismatch (with both types), ErrInvalidShape (with the dimensions).
// Complexity: O(m·k·n) dense product + O(m·n) materialization + O(nnz) mask.
func SampledAddMM(self tensor.Matrix, mat1, mat2 tensor.Matrix, beta, alpha tensor.Scalar, result tensor.Matrix, opts ...Option) (*tensor.CSR, error) {
	o := gatherOptions(opts...)

	// ---- Stage 1: validation (no output mutation before this completes) ----
	if err := ValidateNotNil("self", self); err != nil {
		return nil, opErrorf(opSampledAddMM, err)
	}
	selfCSR, ok := self.(*tensor.CSR)
	if !ok || self.Layout() != tensor.SparseCSR {
		panic(panicSelfNotCSR)
	}

	for _, arg := range []struct {
		name string
		m    tensor.Matrix
	}{{"mat1", mat1}, {"mat2", mat2}, {"result", result}} {
		if err := ValidateNotNil(arg.name, arg.m); err != nil {
			return nil, opErrorf(opSampledAddMM, err)
		}
	}
	if err := ValidateLayout("mat1", mat1, tensor.Strided); err != nil {
		return nil, opErrorf(opSampledAddMM, err)
	}
	if err := ValidateLayout("mat2", mat2, tensor.Strided); err != nil {
		return nil, opErrorf(opSampledAddMM, err)
	}
	if err := ValidateLayout("result", result, tensor.SparseCSR); err != nil {
		return nil, opErrorf(opSampledAddMM, err)
	}
	d1, ok1 := mat1.(*tensor.Dense)
	d2, ok2 := mat2.(*tensor.Dense)
	resCSR, ok3 := result.(*tensor.CSR)
	if !ok1 || !ok2 || !ok3 {
		panic(panicClosedSet)
	}

	if err := ValidateSameDType("mat1", mat1, "mat2", mat2); err != nil {
		return nil, opErrorf(opSampledAddMM, err)
	}
	if err := ValidateSameDType("mat1", mat1, "self", self); err != nil {
		return nil, opErrorf(opSampledAddMM, err)
	}
	if err := ValidateSameDType("result", result, "self", self); err != nil {
		return nil, opErrorf(opSampledAddMM, err)
	}
	if _, _, err := validateScalars(beta, alpha, self.DType()); err != nil {
		return nil, opErrorf(opSampledAddMM, err)
	}
	if err := ValidateMulCompatible("mat1", mat1, "mat2", mat2); err != nil {
		return nil, opErrorf(opSampledAddMM, err)
	}
	if self.Rows() != mat1.Rows() {
		return nil, fmt.Errorf("%s: self dim 0 (%d) must match mat1 dim 0 (%d): %w",
			opSampledAddMM, self.Rows(), mat1.Rows(), ErrInvalidShape)
	}
	if self.Cols() != mat2.Cols() {
		return nil, fmt.Errorf("%s: self dim 1 (%d) must match mat2 dim 1 (%d): %w",
			opSampledAddMM, self.Cols(), mat2.Cols(), ErrInvalidShape)
	}

	// ---- Stage 2: resolve aliasing once ----
	mode := FreshOutput
	if resCSR == selfCSR {
		mode = InPlace
	}
	if mode == FreshOutput {
		if err := resCSR.ResizeAsPattern(selfCSR); err != nil {
			return nil, opErrorf(opSampledAddMM, err)
		}
	}

	// ---- Stage 3: dense compute, then mask down to the pattern ----
	dense, err := o.matMul.AddMM(selfCSR.ToDense(), d1, d2, beta, alpha)
	if err != nil {
		return nil, opErrorf(opSampledAddMM, err)
	}
	masked, err := selfCSR.Mask(dense)
	if err != nil {
		return nil, opErrorf(opSampledAddMM, err)
	}
	if err = resCSR.CopyFrom(masked); err != nil {
		return nil, opErrorf(opSampledAddMM, err)
	}

	return resCSR, nil
}

// SampledAddMMNew is the out-of-place convenience variant: it allocates an
// empty result container of self's dtype and delegates to the in-place form,
// returning the freshly populated container.
func SampledAddMMNew(self tensor.Matrix, mat1, mat2 tensor.Matrix, beta, alpha tensor.Scalar, opts ...Option) (*tensor.CSR, error) {
	if self == nil {
		return nil, opErrorf(opSampledAddMM, fmt.Errorf("self: %w", ErrNilArgument))
	}

	return SampledAddMM(self, mat1, mat2, beta, alpha, tensor.EmptyCSR(self.DType()), opts...)
}
