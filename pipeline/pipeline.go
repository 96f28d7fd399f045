package pipeline

import (
	"context"
	"time"

	mv "github.com/mitsval/validator"
)

// Pipeline runs validation phases over a document context in a fixed
// order. Execution is sequential and deterministic: the same document
// always produces the same messages in the same order.
type Pipeline struct {
	phases  []Phase
	metrics *mv.Metrics
	options *Options
}

// Options configures pipeline behavior.
type Options struct {
	// MaxErrors stops validation after this many errors (0 = unlimited).
	MaxErrors int

	// FailFast stops at the first error regardless of phase.
	FailFast bool

	// CollectMetrics enables per-phase timing collection.
	CollectMetrics bool
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() *Options {
	return &Options{
		MaxErrors:      0,
		FailFast:       false,
		CollectMetrics: true,
	}
}

// New creates an empty pipeline.
func New(opts *Options) *Pipeline {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Pipeline{
		phases:  make([]Phase, 0, len(Order)),
		metrics: mv.NewMetrics(),
		options: opts,
	}
}

// Register appends a phase. Phases run in registration order, so callers
// register them in the canonical Order.
func (p *Pipeline) Register(phase Phase) {
	p.phases = append(p.phases, phase)
}

// PhaseCount returns the number of registered phases.
func (p *Pipeline) PhaseCount() int {
	return len(p.phases)
}

// Metrics returns the pipeline metrics.
func (p *Pipeline) Metrics() *mv.Metrics {
	return p.metrics
}

// SetMetrics sets the metrics collector.
func (p *Pipeline) SetMetrics(m *mv.Metrics) {
	p.metrics = m
}

// Execute runs all registered phases against the context.
//
// The first phases establish that the document shape can be trusted.
// When any of them report an error the remaining phases are skipped,
// since rules downstream assume elements sit where the schema puts them.
func (p *Pipeline) Execute(ctx context.Context, pctx *Context) *mv.Result {
	start := time.Now()

	if pctx.Result == nil {
		pctx.Result = mv.AcquireResult()
	}

	for _, phase := range p.phases {
		select {
		case <-ctx.Done():
			pctx.Result.Add(mv.Warning(mv.RuleValidationCancelled).
				Text("validation cancelled: " + ctx.Err().Error()).
				Phase(string(phase.ID())).
				Build())
			return p.finish(start, pctx)
		default:
		}

		if p.options.MaxErrors > 0 && pctx.Result.ErrorCount() >= p.options.MaxErrors {
			break
		}
		if p.options.FailFast && pctx.Result.ErrorCount() > 0 {
			break
		}

		p.executePhase(ctx, pctx, phase)

		// A broken skeleton invalidates everything downstream.
		if IsStructural(phase.ID()) && pctx.Result.HasErrors() {
			break
		}
	}

	return p.finish(start, pctx)
}

func (p *Pipeline) finish(start time.Time, pctx *Context) *mv.Result {
	if p.options.CollectMetrics && p.metrics != nil {
		p.metrics.RecordValidation(time.Since(start), pctx.Result.Valid)
		p.metrics.RecordResult(pctx.Result)
	}
	return pctx.Result
}

// executePhase runs a single phase with timing.
func (p *Pipeline) executePhase(ctx context.Context, pctx *Context, phase Phase) {
	start := time.Now()
	msgs := phase.Validate(ctx, pctx)
	duration := time.Since(start)

	if p.options.CollectMetrics && p.metrics != nil {
		p.metrics.RecordPhase(string(phase.ID()), duration, len(msgs))
	}

	if p.options.MaxErrors <= 0 {
		pctx.Result.AddAll(msgs)
		return
	}

	// The error budget holds within a phase too, not just between phases.
	for _, m := range msgs {
		if m.IsError() && pctx.Result.ErrorCount() >= p.options.MaxErrors {
			break
		}
		pctx.Result.Add(m)
	}
}
