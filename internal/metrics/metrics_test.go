package metrics

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecorder struct {
	stages   map[Stage]int
	outcomes map[OutcomeLabel]int
}

func (f *fakeRecorder) ObserveStageDuration(s Stage, _ time.Duration) { f.stages[s]++ }
func (f *fakeRecorder) IncBuildOutcome(o OutcomeLabel)                { f.outcomes[o]++ }

func TestTimeStage(t *testing.T) {
	rec := &fakeRecorder{stages: map[Stage]int{}, outcomes: map[OutcomeLabel]int{}}
	boom := errors.New("boom")

	assert.NoError(t, TimeStage(rec, StageGenerate, func() error { return nil }))
	assert.ErrorIs(t, TimeStage(rec, StageRender, func() error { return boom }), boom)
	assert.Equal(t, map[Stage]int{StageGenerate: 1, StageRender: 1}, rec.stages)
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, OutcomeSuccess, Outcome(nil))
	assert.Equal(t, OutcomeCanceled, Outcome(fmt.Errorf("render: %w", context.Canceled)))
	assert.Equal(t, OutcomeCanceled, Outcome(context.DeadlineExceeded))
	assert.Equal(t, OutcomeFailed, Outcome(errors.New("hugo exited 1")))
}

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	rec := NewPrometheusRecorder(reg)
	rec.ObserveStageDuration(StageGenerate, 20*time.Millisecond)
	rec.IncBuildOutcome(OutcomeSuccess)
	rec.IncBuildOutcome(OutcomeSuccess)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	byName := map[string]float64{}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			if c := m.GetCounter(); c != nil {
				byName[mf.GetName()] += c.GetValue()
			}
			if h := m.GetHistogram(); h != nil {
				byName[mf.GetName()] += float64(h.GetSampleCount())
			}
		}
	}
	assert.InDelta(t, 2, byName["docsite_build_outcomes_total"], 0)
	assert.InDelta(t, 1, byName["docsite_stage_duration_seconds"], 0)
}

func TestNilAndNoopRecorders(t *testing.T) {
	var p *PrometheusRecorder
	assert.NotPanics(t, func() {
		p.ObserveStageDuration(StageRender, time.Second)
		p.IncBuildOutcome(OutcomeFailed)
		NoopRecorder{}.IncBuildOutcome(OutcomeFailed)
	})
}
