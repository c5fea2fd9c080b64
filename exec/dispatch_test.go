package exec

import "testing"

func TestZone2DModesAgree(t *testing.T) {
	ni, nj := 20, 17
	results := make(map[Mode][]int)
	for _, mode := range []Mode{Serial, ThreadParallel, Accelerator} {
		out := make([]int, ni*nj)
		Zone2D(mode, ni, nj, func(i, j int) {
			out[i*nj+j] = i*1000 + j
		})
		results[mode] = out
	}
	for i := range results[Serial] {
		if results[Serial][i] != results[ThreadParallel][i] {
			t.Fatalf("thread-parallel diverged from serial at flat index %d", i)
		}
		if results[Serial][i] != results[Accelerator][i] {
			t.Fatalf("accelerator diverged from serial at flat index %d", i)
		}
	}
}

func TestZone1DModesAgree(t *testing.T) {
	n := 100
	results := make(map[Mode][]int)
	for _, mode := range []Mode{Serial, ThreadParallel, Accelerator} {
		out := make([]int, n)
		Zone1D(mode, n, func(i int) {
			out[i] = i * i
		})
		results[mode] = out
	}
	for i := 0; i < n; i++ {
		if results[Serial][i] != results[ThreadParallel][i] || results[Serial][i] != results[Accelerator][i] {
			t.Fatalf("mismatch at index %d", i)
		}
	}
}
