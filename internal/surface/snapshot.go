package surface

import (
	"math"
	"time"

	"github.com/agbru/osstat/internal/sysmon"
)

// Snapshot is the process-lifetime record of the latest readings.
type Snapshot struct {
	TotalMemoryMiB    float64
	UsedMemoryMiB     float64
	UsedMemoryPercent float64
	CPUPercent        float64
	LastSampleTime    time.Time
}

// MemoryPercent returns used/total*100. A zero total yields NaN.
func MemoryPercent(usedMiB, totalMiB float64) float64 {
	if totalMiB == 0 {
		return math.NaN()
	}
	return usedMiB / totalMiB * 100
}

// apply overwrites every reading field from r and stamps the sample time.
// The percent is derived here and nowhere else so it never goes stale.
func (s *Snapshot) apply(r sysmon.Reading, at time.Time) {
	s.TotalMemoryMiB = r.TotalMemoryMiB
	s.UsedMemoryMiB = r.UsedMemoryMiB
	s.UsedMemoryPercent = MemoryPercent(r.UsedMemoryMiB, r.TotalMemoryMiB)
	s.CPUPercent = r.CPUPercent
	s.LastSampleTime = at
}
