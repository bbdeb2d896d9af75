package surface

import (
	"time"

	"github.com/agbru/osstat/internal/logging"
	"github.com/agbru/osstat/internal/sysmon"
)

const (
	// SampleInterval is the minimum time between two host samples.
	SampleInterval = time.Second
	// RepaintInterval is the advisory lower bound between two paints.
	RepaintInterval = 100 * time.Millisecond
)

// State is the application state a host drives through Tick.
// It is not safe for concurrent use.
type State struct {
	snapshot    Snapshot
	sampler     sysmon.Sampler
	logger      logging.Logger
	lastAttempt time.Time
}

// NewState creates a State with a zeroed snapshot. The first Tick samples
// immediately.
func NewState(sampler sysmon.Sampler, logger logging.Logger) *State {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &State{sampler: sampler, logger: logger}
}

// Snapshot returns a copy of the current readings.
func (s *State) Snapshot() Snapshot {
	return s.snapshot
}

// Tick runs one paint step at now and returns the frame to draw.
func (s *State) Tick(now time.Time) Frame {
	s.refresh(now)
	return Render(s.snapshot)
}

// refresh samples the host when SampleInterval has elapsed since the last
// attempt. A failed sample keeps every previous value and is retried on the
// next interval, not on the next paint.
func (s *State) refresh(now time.Time) {
	if !s.due(now) {
		return
	}
	s.lastAttempt = now

	r, err := s.sampler.Sample()
	if err != nil {
		s.logger.Warn("sample failed, keeping previous readings", logging.Err(err))
		return
	}
	s.snapshot.apply(r, now)
	s.logger.Debug("sampled",
		logging.Float64("ram_percent", s.snapshot.UsedMemoryPercent),
		logging.Float64("cpu_percent", s.snapshot.CPUPercent),
	)
}

func (s *State) due(now time.Time) bool {
	if s.lastAttempt.IsZero() {
		return true
	}
	return now.Sub(s.lastAttempt) >= SampleInterval
}
