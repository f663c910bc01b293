// Package tensor offers the layout-tagged numeric containers consumed by the
// lvlblas operation façades.
//
// The tensor package provides:
//
//   - Dense — a 2-D row-major matrix with O(1) element access and O(r·c) memory.
//   - Vector — a 1-D dense container with broadcast expansion (length-1 → n).
//   - CSR — a compressed-sparse-row matrix exposing its non-zero count, dense
//     materialization (ToDense) and pattern masking (Mask).
//   - DType / Layout tags — a closed set of runtime tags (Float64, Complex128;
//     Strided, SparseCSR) used by façades to select behavior and reject
//     incompatible operands instead of silently promoting them.
//   - Scalar — a coefficient carrying its actual numeric domain (real vs
//     complex), converted at the container boundary rather than always widened.
//
// Containers are NaN/Inf-permissive: BLAS-like accumulate semantics require
// storing non-finite values, so numeric policy belongs to the operations that
// consume these containers, not to ingestion.
//
// See the examples in this package and spblas for usage patterns.
package tensor
