package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/reconcile-ui/reconcile/pkg/patch"
)

func sampleReport() *Report {
	l := patch.NewLog()
	l.Append(patch.NewSetText(1, "a"))
	l.Append(patch.NewSetText(2, "b"))
	l.Append(patch.NewRemoveNode(3))
	l.Warn(patch.DuplicateKeyWarning{Parent: 1, Key: "k"})
	return NewReport(l, 2*time.Millisecond, time.Millisecond)
}

func TestNewReport(t *testing.T) {
	r := sampleReport()

	if r.Patches != 3 {
		t.Errorf("Patches = %d, want 3", r.Patches)
	}
	if r.Counts[patch.SetText] != 2 || r.Counts[patch.RemoveNode] != 1 {
		t.Errorf("Counts = %v", r.Counts)
	}
	if r.DuplicateKeys != 1 {
		t.Errorf("DuplicateKeys = %d, want 1", r.DuplicateKeys)
	}
	if r.DiffDuration != 2*time.Millisecond || r.ApplyDuration != time.Millisecond {
		t.Errorf("durations = %v, %v", r.DiffDuration, r.ApplyDuration)
	}
}

func TestMetricsObserveCycle(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()))

	m.ObserveCycle(sampleReport())
	m.ObserveCycle(sampleReport())

	if got := testutil.ToFloat64(m.cyclesTotal); got != 2 {
		t.Errorf("cycles = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.patchesTotal.WithLabelValues("SetText")); got != 4 {
		t.Errorf("SetText total = %v, want 4", got)
	}
	if got := testutil.ToFloat64(m.duplicateKeys); got != 2 {
		t.Errorf("duplicate keys = %v, want 2", got)
	}

	m.ObserveApplyFailure()
	if got := testutil.ToFloat64(m.applyFailures); got != 1 {
		t.Errorf("failures = %v, want 1", got)
	}
}

func TestNilMetricsAreInert(t *testing.T) {
	var m *Metrics
	m.ObserveCycle(sampleReport())
	m.ObserveApplyFailure()
}

func TestNilTracerIsInert(t *testing.T) {
	var tr *Tracer
	ctx := context.Background()

	ctx, finishDiff := tr.StartDiff(ctx)
	finishDiff(5)
	_, finishApply := tr.StartApply(ctx)
	finishApply(nil)
}

func TestTracerSpans(t *testing.T) {
	tr := NewTracerWithProvider(noop.NewTracerProvider())
	ctx := context.Background()

	ctx, finishDiff := tr.StartDiff(ctx)
	finishDiff(3)
	_, finishApply := tr.StartApply(ctx)
	finishApply(context.Canceled)
}
