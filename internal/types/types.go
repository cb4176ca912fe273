package types

import "time"

// ImageTask represents a single source image and its resolved output path.
// Tasks are created by the batch driver and discarded after one attempt.
type ImageTask struct {
	InputPath  string
	OutputPath string
}

// Outcome is the per-file result consumed by the summary accumulator:
// a successful attempt with its elapsed wall time, or a failed one with
// the stage error attached.
type Outcome struct {
	Filename string
	Duration time.Duration
	Err      error
}

// OK reports whether the attempt succeeded.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Extremum names a file together with its elapsed duration (fastest/slowest).
type Extremum struct {
	Filename string
	Duration time.Duration
}

// RunRecord is the persisted shape of one finished batch run.
type RunRecord struct {
	InputDir   string
	StartedAt  time.Time
	Wall       time.Duration
	Succeeded  int
	Failed     int
	Average    time.Duration
	HasAverage bool
	Fastest    Extremum
	Slowest    Extremum
}
