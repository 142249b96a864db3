package czt

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-czt/internal/testutil"
)

// Benchmark the Bluestein engine hot path with caller-supplied scratch.
func BenchmarkBluesteinProcess(b *testing.B) {
	sizes := []struct {
		n, m int
	}{
		{64, 64},
		{256, 256},
		{1000, 1000},
		{240, 360},
		{1023, 1023},
	}

	for _, size := range sizes {
		engine, err := NewBluestein(size.n, size.m, 1, unitW(max(size.n, size.m)), nil)
		if err != nil {
			b.Fatalf("setup: %v", err)
		}

		input := testutil.ComplexNoise(1, 1.0, size.n)
		buf := make([]complex128, max(size.n, size.m))
		scratch := make([]complex128, engine.ScratchLen())

		b.Run(fmt.Sprintf("n=%d_m=%d", size.n, size.m), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				copy(buf, input)
				if err := engine.ProcessWithScratch(buf, scratch); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// Benchmark the naive reference for scale; it is quadratic and only
// tolerable at small sizes.
func BenchmarkNaiveProcess(b *testing.B) {
	sizes := []int{64, 256}

	for _, n := range sizes {
		ref, err := NewNaive(n, n, 1, unitW(n))
		if err != nil {
			b.Fatalf("setup: %v", err)
		}

		input := testutil.ComplexNoise(1, 1.0, n)
		buf := make([]complex128, n)
		scratch := make([]complex128, ref.ScratchLen())

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				copy(buf, input)
				if err := ref.ProcessWithScratch(buf, scratch); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// Benchmark planning with a warm plan cache against a cold planner.
func BenchmarkPlanCZTForward(b *testing.B) {
	b.Run("cold", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			planner := NewPlanner()
			if _, err := planner.PlanCZTForward(240, 360, 1, unitW(360)); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("warm", func(b *testing.B) {
		planner := NewPlanner()
		if _, err := planner.PlanCZTForward(240, 360, 1, unitW(360)); err != nil {
			b.Fatal(err)
		}
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := planner.PlanCZTForward(240, 360, 1, unitW(360)); err != nil {
				b.Fatal(err)
			}
		}
	})
}
