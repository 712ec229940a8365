package metrics

import (
	"context"
	"errors"
	"time"
)

// Stage names a phase of a site rebuild.
type Stage string

const (
	StageGenerate Stage = "generate"
	StageRender   Stage = "render"
)

// OutcomeLabel enumerates rebuild outcomes for counters.
type OutcomeLabel string

const (
	OutcomeSuccess  OutcomeLabel = "success"
	OutcomeFailed   OutcomeLabel = "failed"
	OutcomeCanceled OutcomeLabel = "canceled"
)

// Recorder defines observability hooks for rebuilds.
type Recorder interface {
	ObserveStageDuration(stage Stage, d time.Duration)
	IncBuildOutcome(outcome OutcomeLabel)
}

// NoopRecorder is a Recorder that does nothing.
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(Stage, time.Duration) {}
func (NoopRecorder) IncBuildOutcome(OutcomeLabel)              {}

// TimeStage runs fn and records its duration under stage.
func TimeStage(rec Recorder, stage Stage, fn func() error) error {
	start := time.Now()
	err := fn()
	rec.ObserveStageDuration(stage, time.Since(start))
	return err
}

// Outcome classifies a rebuild error.
func Outcome(err error) OutcomeLabel {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCanceled
	default:
		return OutcomeFailed
	}
}
