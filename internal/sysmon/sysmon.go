// Package sysmon provides system-wide CPU and memory usage sampling.
package sysmon

//go:generate mockgen -source=sysmon.go -destination=mock_sysmon/mock_sampler.go

import (
	"errors"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"

	apperrors "github.com/agbru/osstat/internal/errors"
)

// BytesPerMiB is the number of bytes in a mebibyte (2^20).
const BytesPerMiB = 1 << 20

// Reading holds a single snapshot of host memory and CPU usage.
type Reading struct {
	TotalMemoryMiB float64
	UsedMemoryMiB  float64
	CPUPercent     float64 // 0.0 .. 100.0, aggregate across all logical cores
}

// Sampler queries the host for a Reading.
type Sampler interface {
	Sample() (Reading, error)
}

// errNoCPUValue is returned when the CPU query succeeds but yields nothing.
var errNoCPUValue = errors.New("no aggregate value reported")

// HostSampler samples the local host through gopsutil.
// The CPU percentage is a delta since the previous call. gopsutil records
// its first baseline when the cpu package initializes, so the first call
// covers the time since process start.
type HostSampler struct {
	virtualMemory func() (*mem.VirtualMemoryStat, error)
	cpuPercent    func() ([]float64, error)
}

// NewHostSampler creates a sampler backed by the operating system.
func NewHostSampler() *HostSampler {
	return &HostSampler{
		virtualMemory: mem.VirtualMemory,
		cpuPercent: func() ([]float64, error) {
			return cpu.Percent(0, false)
		},
	}
}

// Sample queries memory first, then CPU. Either failure aborts the whole
// reading so callers never mix fresh and stale fields.
func (s *HostSampler) Sample() (Reading, error) {
	vmem, err := s.virtualMemory()
	if err != nil {
		return Reading{}, apperrors.SampleError{Source: "memory", Cause: err}
	}
	pcts, err := s.cpuPercent()
	if err != nil {
		return Reading{}, apperrors.SampleError{Source: "cpu", Cause: err}
	}
	if len(pcts) == 0 {
		return Reading{}, apperrors.SampleError{Source: "cpu", Cause: errNoCPUValue}
	}
	return Reading{
		TotalMemoryMiB: BytesToMiB(vmem.Total),
		UsedMemoryMiB:  BytesToMiB(vmem.Used),
		CPUPercent:     pcts[0],
	}, nil
}

// BytesToMiB converts a byte count to mebibytes.
func BytesToMiB(b uint64) float64 {
	return float64(b) / BytesPerMiB
}
