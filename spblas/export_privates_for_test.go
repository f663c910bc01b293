// SPDX-License-Identifier: MIT

package spblas

// Test-Bridge (White-Box) for Private Options Derivation
//
// Purpose:
//   - Expose the internal options snapshot and panic message constants to
//     spblas_test ONLY, without widening the production API.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields. If Options
//     changes, update snapshotOf accordingly (tests will catch drift).

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicMatNotCSR_TestOnly    = panicMatNotCSR
	PanicSelfNotCSR_TestOnly   = panicSelfNotCSR
	PanicANotCSR_TestOnly      = panicANotCSR
	PanicClosedSet_TestOnly    = panicClosedSet
	PanicNilKernel_TestOnly    = panicNilKernel
	PanicEpsilonInval_TestOnly = panicEpsilonInval
)

// OptionsSnapshot is a stable, test-facing copy of internal Options fields.
type OptionsSnapshot struct {
	MatVec    MatVecKernel
	TriSolver TriangularSolver
	MatMul    MatMulKernel
	Eps       float64
}

// GatherOptionsSnapshot_TestOnly returns a snapshot after internal derivation.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return snapshotOf(o)
}

// snapshotOf copies internal fields to a public struct. Keep in sync with the
// Options layout.
func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		MatVec:    o.matVec,
		TriSolver: o.triSolver,
		MatMul:    o.matMul,
		Eps:       o.eps,
	}
}
