// SPDX-License-Identifier: MIT

// Package tensor: flat storage helpers shared by Dense, Vector and CSR.
// Every container backs its elements with a flat []float64; complex dtypes
// interleave (re, im) pairs. These helpers are the single source of truth for
// the slot arithmetic so the three containers cannot drift apart.

package tensor

// getSlot reads element k from a flat buffer under dtype dt.
// Real dtypes read one slot; complex dtypes read the (re, im) pair.
// Complexity: O(1).
func getSlot(data []float64, dt DType, k int) complex128 {
	if dt.IsComplex() {
		return complex(data[2*k], data[2*k+1])
	}

	return complex(data[k], 0)
}

// putSlot writes element k into a flat buffer under dtype dt.
// Callers must have validated the domain (see Scalar.Convert and Set): for a
// real dtype only the real part is stored.
// Complexity: O(1).
func putSlot(data []float64, dt DType, k int, v complex128) {
	if dt.IsComplex() {
		data[2*k] = real(v)
		data[2*k+1] = imag(v)
		return
	}

	data[k] = real(v)
}

// zeroFill overwrites every slot with 0. This is an explicit fill, NOT a
// multiply-by-zero: a fill maps NaN/Inf slots to exact zeros, which is the
// behavior the β==0 accumulate shortcut depends on.
// Complexity: O(len(data)).
func zeroFill(data []float64) {
	for i := range data {
		data[i] = 0
	}
}
