package rscodec

import (
	"runtime"

	"github.com/klauspost/cpuid"
)

// minRowsPerWorker mirrors klauspost/reedsolomon's codeSomeShardsP split
// threshold: below this many rows, goroutine setup costs more than it
// saves, so the row sweep runs on a single worker.
const minRowsPerWorker = 256

// rowWorkers decides how many goroutines should split an l-row column-major
// sweep: one below minRowsPerWorker rows, otherwise GOMAXPROCS (halved,
// rounding up, when the CPU reports AVX2, detected the way
// klauspost/reedsolomon gates its AVX2 kernel), capped so that every worker
// gets at least minRowsPerWorker rows.
func rowWorkers(l int) int {
	if l < minRowsPerWorker {
		return 1
	}
	procs := runtime.GOMAXPROCS(0)
	if cpuid.CPU.AVX2() {
		procs = (procs + 1) / 2
	}
	if procs < 1 {
		procs = 1
	}
	maxWorkers := l / minRowsPerWorker
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	if procs > maxWorkers {
		procs = maxWorkers
	}
	return procs
}
