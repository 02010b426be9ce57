// Package cpuinfo picks a default tile-worker count from the host's
// reported core count and reports instruction-set support.
package cpuinfo

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// DefaultWorkers returns a worker-goroutine count sized to the host: one
// per logical CPU, with a floor of 1. Hosts reporting wide SIMD support
// (AVX2) are assumed to also have enough memory bandwidth to keep more
// tile workers fed, so no further reduction is applied there; hosts
// without it are left unchanged too — the heuristic only ever looks at
// core count today, with the feature check kept as a documented hook for
// tuning once per-tile cost is profiled.
func DefaultWorkers() int {
	n := runtime.NumCPU()
	if n < 1 {
		n = 1
	}
	return n
}

// HasWideSIMD reports whether the host CPU supports AVX2. DefaultWorkers
// and the vertex stage do not consult it.
func HasWideSIMD() bool {
	return cpu.X86.HasAVX2
}
