// Package sysinfo isolates process-wide environmental lookups behind narrow
// accessors so the planner can stay pure and take injected values in tests.
package sysinfo

import (
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
)

// CoreCount returns the number of logical CPU cores. Falls back to the Go
// runtime's view when the platform query fails.
func CoreCount() int {
	n, err := cpu.Counts(true)
	if err != nil || n < 1 {
		return runtime.NumCPU()
	}
	return n
}
