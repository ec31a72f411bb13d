package engine

import (
	"context"
	"sync"
	"time"

	"github.com/reconcile-ui/reconcile/pkg/diff"
	"github.com/reconcile-ui/reconcile/pkg/history"
	"github.com/reconcile-ui/reconcile/pkg/intern"
	"github.com/reconcile-ui/reconcile/pkg/live"
	"github.com/reconcile-ui/reconcile/pkg/patch"
	"github.com/reconcile-ui/reconcile/pkg/telemetry"
	"github.com/reconcile-ui/reconcile/pkg/vtree"
)

// Engine drives render cycles: it retains the previously rendered virtual
// tree, diffs each new tree against it, applies the resulting patch log to
// the live tree, and records the cycle in history.
//
// The engine serializes cycles internally; Render, Flush, and Dispatch may
// be called from any goroutine but never overlap.
type Engine struct {
	mu      sync.Mutex
	prev    *vtree.Node
	pending *vtree.Node
	patcher *live.Patcher
	symbols *intern.Table
	seq     uint64

	diffOpts diff.Options
	metrics  *telemetry.Metrics
	tracer   *telemetry.Tracer
	ring     *history.Ring
	store    *history.Store
}

// Option configures an Engine.
type Option func(*Engine)

// WithParallel sets the worker count for sibling subtree diffs. Zero keeps
// the diff fully serial.
func WithParallel(workers int) Option {
	return func(e *Engine) {
		e.diffOpts.Parallel = workers
	}
}

// WithMetrics attaches Prometheus collectors.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithTracer attaches OpenTelemetry spans around each phase.
func WithTracer(t *telemetry.Tracer) Option {
	return func(e *Engine) {
		e.tracer = t
	}
}

// WithHistory attaches an in-memory patch log ring.
func WithHistory(r *history.Ring) Option {
	return func(e *Engine) {
		e.ring = r
	}
}

// WithStore attaches a persistent patch log store.
func WithStore(s *history.Store) Option {
	return func(e *Engine) {
		e.store = s
	}
}

// New creates an engine with an empty live tree.
func New(opts ...Option) *Engine {
	e := &Engine{
		patcher: live.NewPatcher(),
		symbols: intern.NewTable(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Root returns the live mount container. Its children are the rendered
// tree. Callers must treat it as read-only.
func (e *Engine) Root() *live.Node {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.patcher.Root()
}

// Tree returns the retained virtual tree from the last successful cycle.
func (e *Engine) Tree() *vtree.Node {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.prev
}

// Seq returns the sequence number of the last completed cycle.
func (e *Engine) Seq() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.seq
}

// Render runs one full cycle against next: diff, apply, record. It returns
// a per-cycle report on success.
//
// On apply failure the live tree is flagged corrupt and the error is
// returned; the next Render resynchronizes by rebuilding the live tree and
// replacing the root subtree wholesale.
func (e *Engine) Render(ctx context.Context, next *vtree.Node) (*telemetry.Report, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.render(ctx, next)
}

func (e *Engine) render(ctx context.Context, next *vtree.Node) (*telemetry.Report, error) {
	if e.patcher.Corrupt() {
		e.patcher.Reset()
		e.prev = nil
	}
	vtree.Intern(e.symbols, next)

	diffStart := time.Now()
	ctx, finishDiff := e.tracer.StartDiff(ctx)
	log := diff.DiffWith(e.prev, next, e.diffOpts)
	finishDiff(log.Len())
	diffDur := time.Since(diffStart)

	applyStart := time.Now()
	_, finishApply := e.tracer.StartApply(ctx)
	err := e.patcher.Apply(log)
	finishApply(err)
	applyDur := time.Since(applyStart)

	if err != nil {
		e.metrics.ObserveApplyFailure()
		return nil, err
	}

	vtree.Record(next)
	e.prev = next
	e.seq++
	e.record(log)

	report := telemetry.NewReport(log, diffDur, applyDur)
	e.metrics.ObserveCycle(report)
	return report, nil
}

// record stores the cycle's encoded log in the attached history sinks.
func (e *Engine) record(log *patch.Log) {
	if e.ring == nil && e.store == nil {
		return
	}
	frame := patch.EncodeLog(log)
	if e.ring != nil {
		e.ring.Add(e.seq, frame)
	}
	if e.store != nil {
		// History persistence is best effort; a full disk must not fail
		// an already-applied cycle.
		_ = e.store.Put(e.seq, frame)
	}
}

// Schedule stages a tree for the next Flush. Staging another tree before
// Flush replaces the earlier one; intermediate states are never rendered.
func (e *Engine) Schedule(next *vtree.Node) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pending = next
}

// Flush renders the staged tree, if any.
func (e *Engine) Flush(ctx context.Context) (*telemetry.Report, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pending == nil {
		return nil, nil
	}
	next := e.pending
	e.pending = nil
	return e.render(ctx, next)
}

// Cancel discards the staged tree without rendering it.
func (e *Engine) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pending = nil
}

// Dispatch delivers an event to the listener registered on the addressed
// live node. Events addressing nodes that have since been removed are
// silently dropped.
//
// The handler runs outside the engine lock, so it may call Schedule,
// Render, Flush, or Cancel to trigger the next cycle.
func (e *Engine) Dispatch(ref uint64, event, value string) {
	e.mu.Lock()
	cb := e.patcher.Listener(ref, event)
	e.mu.Unlock()
	cb.Invoke(vtree.Event{Type: event, Target: ref, Value: value})
}
