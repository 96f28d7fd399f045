package worker

import (
	"time"

	mv "github.com/mitsval/validator"
)

// Job is one fee document queued for validation.
type Job struct {
	// ID identifies the document, typically a file name or feed index.
	ID string

	// Document is the raw XML to validate.
	Document []byte
}

// JobResult is the outcome of one validation job.
type JobResult struct {
	// ID matches the Job.ID that produced this result.
	ID string

	// Result holds the validation messages.
	Result *mv.Result

	// Duration is the time taken to validate the document.
	Duration time.Duration
}

// BatchResult aggregates the results of a drained pool.
type BatchResult struct {
	// Results contains all job results, in completion order.
	Results []*JobResult

	// TotalJobs is the number of jobs submitted.
	TotalJobs int

	// CompletedJobs is the number of jobs completed.
	CompletedJobs int

	// TotalDuration is the summed validation time across workers.
	TotalDuration time.Duration
}

// HasErrors reports whether any document in the batch failed validation.
func (br *BatchResult) HasErrors() bool {
	for _, r := range br.Results {
		if r.Result != nil && r.Result.HasErrors() {
			return true
		}
	}
	return false
}

// ErrorCount returns the total number of errors across the batch.
func (br *BatchResult) ErrorCount() int {
	count := 0
	for _, r := range br.Results {
		if r.Result != nil {
			count += r.Result.ErrorCount()
		}
	}
	return count
}

// ByID returns the batch results keyed by job ID.
func (br *BatchResult) ByID() map[string]*JobResult {
	out := make(map[string]*JobResult, len(br.Results))
	for _, r := range br.Results {
		out[r.ID] = r
	}
	return out
}
