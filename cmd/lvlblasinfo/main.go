// SPDX-License-Identifier: MIT

// Package main provides a diagnostic tool that prints the CPU features
// relevant to dense/sparse numeric kernels and the kernel set lvlblas selects
// by default.
package main

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/katalvlaran/lvlblas/spblas"
)

// named is the optional self-description surface reference kernels implement.
type named interface {
	Name() string
}

func kernelName(k any) string {
	if n, ok := k.(named); ok {
		return n.Name()
	}

	return fmt.Sprintf("%T", k)
}

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	ks := spblas.DefaultKernels()
	fmt.Println("=== default kernel set ===")
	fmt.Printf("  MatVecKernel:     %s\n", kernelName(ks.MatVec))
	fmt.Printf("  TriangularSolver: %s (eps=%g)\n", kernelName(ks.Solver), spblas.DefaultEpsilon)
	fmt.Printf("  MatMulKernel:     %s\n", kernelName(ks.MatMul))
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64":
		printAMD64Features()
	default:
		fmt.Println("no per-arch feature report for this GOARCH")
	}
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasASIMD: %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasFP:    %v (floating point)\n", cpu.ARM64.HasFP)
	fmt.Printf("  HasSVE:   %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
	fmt.Printf("  HasSVE2:  %v (SVE2)\n", cpu.ARM64.HasSVE2)
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasSSE2:    %v (baseline)\n", cpu.X86.HasSSE2)
	fmt.Printf("  HasAVX:     %v\n", cpu.X86.HasAVX)
	fmt.Printf("  HasAVX2:    %v\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasFMA:     %v\n", cpu.X86.HasFMA)
	fmt.Printf("  HasAVX512F: %v\n", cpu.X86.HasAVX512F)
}
