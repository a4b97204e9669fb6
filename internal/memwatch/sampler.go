package memwatch

import (
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v4/process"
)

// Sampler reports the process's current memory footprint in bytes.
type Sampler func() (uint64, error)

// ProcessSampler samples resident set size for the current process. When
// the platform probe fails at construction time it falls back to the Go
// heap sampler so monitoring still works, just with narrower coverage.
func ProcessSampler() Sampler {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return RuntimeSampler()
	}
	return func() (uint64, error) {
		info, err := proc.MemoryInfo()
		if err != nil {
			return 0, err
		}
		return info.RSS, nil
	}
}

// RuntimeSampler samples the Go heap via runtime.MemStats. It never fails
// but only sees allocator-managed memory.
func RuntimeSampler() Sampler {
	return func() (uint64, error) {
		var stats runtime.MemStats
		runtime.ReadMemStats(&stats)
		return stats.HeapAlloc, nil
	}
}
