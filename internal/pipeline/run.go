// Package pipeline is the batch driver: it turns a candidate list into
// tasks, runs the decode → geometry → composite → encode chain for each one
// sequentially, and aggregates per-file outcomes into a Summary.
package pipeline

import (
	"os"
	"path/filepath"
	"time"

	"github.com/andresmejia3/matte/internal/canvas"
	"github.com/andresmejia3/matte/internal/codec"
	"github.com/andresmejia3/matte/internal/config"
	"github.com/andresmejia3/matte/internal/geometry"
	"github.com/andresmejia3/matte/internal/types"
)

// Run processes every candidate file strictly in order, one at a time. Any
// per-file failure is recorded as an outcome and the batch continues; only
// output-directory creation can fail the whole run. onOutcome, when non-nil,
// is called after each file so the caller can drive progress display.
//
// Enumeration is the caller's concern (see Discover); files is taken as
// given so the driver can be tested against synthetic candidate lists.
func Run(cfg *config.Config, inputDir string, files []string, onOutcome func(types.Outcome)) (Summary, error) {
	start := time.Now()
	var summary Summary

	outputDir := cfg.OutputDir(inputDir)
	if cfg.SeparateFolder {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return summary, err
		}
	}

	for _, task := range BuildTasks(files, outputDir, cfg.OutputPrefix) {
		outcome := processOne(task, cfg)
		summary.Record(outcome)
		if onOutcome != nil {
			onOutcome(outcome)
		}
	}

	summary.Wall = time.Since(start)
	return summary, nil
}

// processOne runs the full per-file chain and times the attempt from decode
// through encode.
func processOne(task types.ImageTask, cfg *config.Config) types.Outcome {
	outcome := types.Outcome{Filename: filepath.Base(task.InputPath)}
	start := time.Now()

	img, err := codec.Decode(task.InputPath)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	bounds := img.Bounds()
	placement, err := geometry.Compute(bounds.Dx(), bounds.Dy(), cfg)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	composed, err := canvas.Compose(img, placement, cfg.TargetWidth, cfg.TargetHeight)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	if err := codec.Encode(task.OutputPath, composed, cfg.JPEGQuality); err != nil {
		outcome.Err = err
		return outcome
	}

	outcome.Duration = time.Since(start)
	return outcome
}
