// Package engine provides the main MITS fee document validator.
package engine

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"strconv"
	"time"

	mv "github.com/mitsval/validator"
	"github.com/mitsval/validator/cache"
	"github.com/mitsval/validator/document"
	"github.com/mitsval/validator/phase"
	"github.com/mitsval/validator/pipeline"
	"github.com/mitsval/validator/pkg/logger"
	"github.com/mitsval/validator/worker"
)

// Validator is the main fee document validator. It parses XML into a
// document tree and runs the phase pipeline over it.
type Validator struct {
	version mv.SchemaVersion
	options *mv.Options

	pipe    *pipeline.Pipeline
	metrics *mv.Metrics
	log     *logger.Logger

	// results memoizes outcomes by document digest when enabled.
	results *cache.Cache[string, *mv.Result]
}

// New creates a Validator for MITS 5.0 documents.
func New(opts ...mv.Option) *Validator {
	options := mv.DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	v := &Validator{
		version: mv.MITS50,
		options: options,
		metrics: mv.NewMetrics(),
		log:     logger.Default(),
	}

	if options.CacheSize > 0 {
		v.results = cache.New[string, *mv.Result](options.CacheSize)
	}

	v.buildPipeline()

	return v
}

// buildPipeline constructs the validation pipeline.
func (v *Validator) buildPipeline() {
	v.pipe = pipeline.New(&pipeline.Options{
		MaxErrors:      v.options.MaxErrors,
		FailFast:       v.options.MaxErrors == 1,
		CollectMetrics: v.options.CollectMetrics,
	})
	v.pipe.SetMetrics(v.metrics)

	// Registration order is execution order.
	v.pipe.Register(phase.NewStructure())
	v.pipe.Register(phase.NewIdentity())
	v.pipe.Register(phase.NewPlacement())
	v.pipe.Register(phase.NewClassStructure())
	v.pipe.Register(phase.NewClassLimits())
	v.pipe.Register(phase.NewItemStructure())
	v.pipe.Register(phase.NewCharacteristics())
	v.pipe.Register(phase.NewAmountBasis())
	v.pipe.Register(phase.NewAmountFormat())
	v.pipe.Register(phase.NewFrequency())
	v.pipe.Register(phase.NewPet())
	v.pipe.Register(phase.NewParking())
	v.pipe.Register(phase.NewStorage())
	v.pipe.Register(phase.NewCrossValidation())
	v.pipe.Register(phase.NewDataQuality())
}

// SetLogger replaces the validator's logger.
func (v *Validator) SetLogger(l *logger.Logger) {
	if l != nil {
		v.log = l
	}
}

// Validate parses and validates a fee document.
func (v *Validator) Validate(ctx context.Context, data []byte) *mv.Result {
	start := time.Now()

	cacheKey := ""
	if v.results != nil {
		sum := sha256.Sum256(data)
		cacheKey = hex.EncodeToString(sum[:])
		if cached, ok := v.results.Get(cacheKey); ok {
			v.log.Debug("cache hit for document %s", cacheKey[:12])
			return cached.Clone()
		}
	}

	root, err := document.ParseReader(bytes.NewReader(data), v.options.MaxDepth)
	if err != nil {
		v.log.Debug("parse failed: %v", err)
		result := v.newResult()
		rule, _ := mv.LookupRule(mv.RuleDocParseFailed)
		result.Add(mv.Error(mv.RuleDocParseFailed).
			Text(rule.Summary).
			Detail("error", err.Error()).
			At("/").
			Phase(string(pipeline.PhaseIDStructure)).
			Build())
		if v.options.CollectMetrics {
			v.metrics.RecordValidation(time.Since(start), false)
			v.metrics.RecordResult(result)
		}
		v.memoize(cacheKey, result)
		return result
	}

	result := v.ValidateTree(ctx, root)
	v.memoize(cacheKey, result)
	return result
}

// memoize stores a copy of the result under the document digest.
func (v *Validator) memoize(key string, result *mv.Result) {
	if v.results == nil || key == "" {
		return
	}
	v.results.Set(key, result.Clone())
}

// ValidateReader reads and validates a fee document from a stream.
func (v *Validator) ValidateReader(ctx context.Context, r io.Reader) (*mv.Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return v.Validate(ctx, data), nil
}

// ValidateTree validates an already parsed document tree.
func (v *Validator) ValidateTree(ctx context.Context, root *document.Node) *mv.Result {
	pctx := pipeline.AcquireContext()
	pctx.Root = root
	pctx.SchemaVersion = v.version
	pctx.Options = v.options
	pctx.Result = v.newResult()

	v.pipe.Execute(ctx, pctx)

	result := pctx.Result
	pctx.Result = nil // the result outlives the pooled context
	pctx.Release()

	v.log.Debug("validated document: valid=%v errors=%d warnings=%d",
		result.Valid, result.ErrorCount(), result.WarningCount())

	return result
}

// ValidateBatch validates multiple documents in parallel. Results are
// returned in input order.
func (v *Validator) ValidateBatch(ctx context.Context, docs [][]byte) []*mv.Result {
	pool := worker.NewPool(ctx, v.Validate, v.options.WorkerCount)
	defer pool.Close()

	go func() {
		for i, doc := range docs {
			if !pool.Submit(worker.Job{ID: strconv.Itoa(i), Document: doc}) {
				return
			}
		}
	}()

	results := make([]*mv.Result, len(docs))
	for received := 0; received < len(docs); received++ {
		select {
		case <-ctx.Done():
			return results
		case jr := <-pool.Results():
			idx, err := strconv.Atoi(jr.ID)
			if err != nil || idx < 0 || idx >= len(results) {
				continue
			}
			results[idx] = jr.Result
		}
	}
	return results
}

// newResult returns a result honoring the pooling option.
func (v *Validator) newResult() *mv.Result {
	if v.options.EnablePooling {
		return mv.AcquireResult()
	}
	return mv.NewResult()
}

// Metrics returns the validator's metrics.
func (v *Validator) Metrics() *mv.Metrics {
	return v.metrics
}

// Version returns the schema version this validator is configured for.
func (v *Validator) Version() mv.SchemaVersion {
	return v.version
}

// Options returns the validator's options.
func (v *Validator) Options() *mv.Options {
	return v.options
}
