package pipeline

import (
	"time"

	"github.com/andresmejia3/matte/internal/types"
)

// Summary accumulates per-file outcomes across one batch run. It is an
// explicit value threaded through the loop, not ambient state, so it can be
// tested without touching the filesystem or codecs.
type Summary struct {
	Succeeded int
	Failed    int

	// TotalSuccessDuration is the sum of successful per-file durations;
	// Wall is the batch's own start-to-end time. They differ and both are
	// reported.
	TotalSuccessDuration time.Duration
	Wall                 time.Duration

	Fastest types.Extremum
	Slowest types.Extremum
}

// Record folds one outcome into the accumulator. Extrema use strict
// comparisons: a later file with an equal duration never replaces an
// earlier one.
func (s *Summary) Record(o types.Outcome) {
	if !o.OK() {
		s.Failed++
		return
	}

	s.Succeeded++
	s.TotalSuccessDuration += o.Duration

	if s.Succeeded == 1 || o.Duration < s.Fastest.Duration {
		s.Fastest = types.Extremum{Filename: o.Filename, Duration: o.Duration}
	}
	if s.Succeeded == 1 || o.Duration > s.Slowest.Duration {
		s.Slowest = types.Extremum{Filename: o.Filename, Duration: o.Duration}
	}
}

// Average returns the mean successful duration. ok is false when no file
// succeeded, in which case the report omits the average and extrema.
func (s *Summary) Average() (avg time.Duration, ok bool) {
	if s.Succeeded == 0 {
		return 0, false
	}
	return s.TotalSuccessDuration / time.Duration(s.Succeeded), true
}

// RunRecord converts the summary to its persisted form for the history store.
func (s *Summary) RunRecord(inputDir string, startedAt time.Time) types.RunRecord {
	avg, hasAvg := s.Average()
	return types.RunRecord{
		InputDir:   inputDir,
		StartedAt:  startedAt,
		Wall:       s.Wall,
		Succeeded:  s.Succeeded,
		Failed:     s.Failed,
		Average:    avg,
		HasAverage: hasAvg,
		Fastest:    s.Fastest,
		Slowest:    s.Slowest,
	}
}
