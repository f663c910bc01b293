// SPDX-License-Identifier: MIT

// Package spblas - AddMV: sparse matrix × vector accumulate façade.

package spblas

import (
	"fmt"

	"github.com/katalvlaran/lvlblas/tensor"
)

// AddMV computes result := β·self + α·(mat @ vec) where mat is sparse CSR and
// self, vec, result are dense vectors.
//
// Contract:
//   - mat MUST be CSR; passing another layout is a programming defect and
//     panics (the recoverable error surface starts below this precondition).
//   - vec must have length mat.Cols(); self must be broadcast-expandable to
//     mat.Rows() (exact length or length 1); dtypes must agree across all
//     containers; β and α must fit the operand domain.
//   - result may alias self (in-place update). When it does not, result is
//     resized to the broadcast shape and, for β != 0, seeded with the
//     broadcast self values before the kernel accumulates into it.
//
// Empty-matrix shortcut: when mat stores zero entries the product term is
// mathematically zero, so the call degenerates to result := β·self. For β == 0
// that is an explicit zero-fill — NOT a multiply — so NaN/Inf in self never
// reach the output. For β != 0 it is a tensor-scalar multiply.
//
// Stage 1 (Validate): all checks above run before any mutation of result, so
// the operation is atomic on the failure path.
// Stage 2 (Resolve): aliasing is resolved once into an AliasMode; only the
// enum is branched on afterwards.
// Stage 3 (Execute): shortcut, or delegation to the MatVecKernel, which owns
// the full accumulate semantics including β scaling.
//
// Errors: ErrNilArgument, ErrInvalidShape (with the dimensions involved),
// ErrDTypeMismatch (with both types). Kernel errors propagate unchanged.
// Complexity: O(rows + nnz) plus kernel work.
func AddMV(self *tensor.Vector, mat tensor.Matrix, vec *tensor.Vector, beta, alpha tensor.Scalar, result *tensor.Vector, opts ...Option) (*tensor.Vector, error) {
	o := gatherOptions(opts...)

	// ---- Stage 1: validation (no output mutation before this completes) ----
	if err := ValidateNotNil("mat", mat); err != nil {
		return nil, opErrorf(opAddMV, err)
	}
	// Precondition, not validation: the sparse entry point on a dense matrix
	// is a defect in the caller's dispatch, not a user-recoverable condition.
	csr, ok := mat.(*tensor.CSR)
	if !ok || mat.Layout() != tensor.SparseCSR {
		panic(panicMatNotCSR)
	}

	if err := ValidateVectorNotNil("self", self); err != nil {
		return nil, opErrorf(opAddMV, err)
	}
	if err := ValidateVectorNotNil("vec", vec); err != nil {
		return nil, opErrorf(opAddMV, err)
	}
	if err := ValidateVectorNotNil("result", result); err != nil {
		return nil, opErrorf(opAddMV, err)
	}
	if err := ValidateVecLen("vec", vec, mat.Cols()); err != nil {
		return nil, opErrorf(opAddMV, err)
	}
	if err := ValidateSameDType("mat", csr, "vec", vec); err != nil {
		return nil, opErrorf(opAddMV, err)
	}
	if err := ValidateSameDType("mat", csr, "self", self); err != nil {
		return nil, opErrorf(opAddMV, err)
	}
	if err := ValidateSameDType("result", result, "self", self); err != nil {
		return nil, opErrorf(opAddMV, err)
	}
	betaC, _, err := validateScalars(beta, alpha, csr.DType())
	if err != nil {
		return nil, opErrorf(opAddMV, err)
	}

	rows := mat.Rows()
	bself, err := self.BroadcastTo(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: self length %d not broadcastable to (%d,): %w",
			opAddMV, self.Len(), rows, ErrInvalidShape)
	}

	// ---- Stage 2: resolve aliasing once ----
	mode := FreshOutput
	if result == self {
		mode = InPlace
	}
	if mode == InPlace && result.Len() != rows {
		// In-place accumulation cannot resize its own operand.
		return nil, fmt.Errorf("%s: in-place result has length %d, want (%d,): %w",
			opAddMV, result.Len(), rows, ErrInvalidShape)
	}
	if mode == FreshOutput {
		if err = result.Resize(rows); err != nil {
			return nil, opErrorf(opAddMV, err)
		}
		if betaC != 0 {
			// result will be scaled by β inside the accumulate; seed it with
			// the broadcast self values first.
			if err = result.CopyFrom(bself); err != nil {
				return nil, opErrorf(opAddMV, err)
			}
		}
	}

	// ---- Stage 3: shortcut or delegate ----
	if csr.NNZ() == 0 {
		// The product term is exactly zero; only the β branch remains.
		if betaC == 0 {
			// By definition β==0 ignores every value in self, including
			// NaN/Inf: an explicit fill, because NaN·0 ≠ 0 in floating point.
			result.Zero()

			return result, nil
		}
		if err = result.ScaleFrom(bself, beta); err != nil {
			return nil, opErrorf(opAddMV, err)
		}

		return result, nil
	}

	if err = o.matVec.AddMV(csr, vec, beta, alpha, result); err != nil {
		return nil, opErrorf(opAddMV, err)
	}

	return result, nil
}

// AddMVNew is the out-of-place convenience variant: it allocates a fresh
// result vector of mat's dtype and delegates to AddMV.
// Complexity: O(rows) allocation plus AddMV.
func AddMVNew(self *tensor.Vector, mat tensor.Matrix, vec *tensor.Vector, beta, alpha tensor.Scalar, opts ...Option) (*tensor.Vector, error) {
	if mat == nil {
		return nil, opErrorf(opAddMV, fmt.Errorf("mat: %w", ErrNilArgument))
	}
	result, err := tensor.NewVector(0, mat.DType())
	if err != nil {
		return nil, opErrorf(opAddMV, err)
	}

	return AddMV(self, mat, vec, beta, alpha, result, opts...)
}
