package mitsvalidator

import "sync"

// Result contains the outcome of validating one fee document.
// Errors, Warnings and Info keep insertion order: messages are appended in
// phase order, then rule-declaration order within a phase, so two runs over
// the same document produce identical results.
//
// Use Release() to return it to the pool when done.
type Result struct {
	// Valid is true iff no error messages were recorded.
	// Warnings and info never affect validity.
	Valid bool `json:"valid"`

	// Errors, Warnings and Info are the recorded messages grouped by severity.
	Errors   []Message `json:"errors"`
	Warnings []Message `json:"warnings"`
	Info     []Message `json:"info"`
}

var resultPool = sync.Pool{
	New: func() any {
		return &Result{
			Errors:   make([]Message, 0, 8),
			Warnings: make([]Message, 0, 4),
			Info:     make([]Message, 0, 4),
		}
	},
}

// AcquireResult gets a Result from the pool. It starts valid and empty.
func AcquireResult() *Result {
	r := resultPool.Get().(*Result)
	r.Reset()
	return r
}

// Release returns the Result to the pool.
// After calling Release, the Result must not be used.
func (r *Result) Release() {
	if r == nil {
		return
	}
	// Don't pool results that grew unusually large
	if cap(r.Errors)+cap(r.Warnings)+cap(r.Info) <= 1024 {
		resultPool.Put(r)
	}
}

// Reset clears the result for reuse.
func (r *Result) Reset() {
	r.Valid = true
	r.Errors = r.Errors[:0]
	r.Warnings = r.Warnings[:0]
	r.Info = r.Info[:0]
}

// Add records a message under its severity.
func (r *Result) Add(msg Message) {
	switch msg.Severity {
	case SeverityError:
		r.Errors = append(r.Errors, msg)
		r.Valid = false
	case SeverityWarning:
		r.Warnings = append(r.Warnings, msg)
	default:
		r.Info = append(r.Info, msg)
	}
}

// AddAll records messages in order.
func (r *Result) AddAll(msgs []Message) {
	for _, m := range msgs {
		r.Add(m)
	}
}

// AddError is a convenience method to record an error.
func (r *Result) AddError(id RuleID, text, path string) {
	r.Add(Message{RuleID: id, Severity: SeverityError, Text: text, Path: path})
}

// AddWarning is a convenience method to record a warning.
func (r *Result) AddWarning(id RuleID, text, path string) {
	r.Add(Message{RuleID: id, Severity: SeverityWarning, Text: text, Path: path})
}

// HasErrors returns true if any error was recorded.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// ErrorCount returns the number of error messages.
func (r *Result) ErrorCount() int {
	return len(r.Errors)
}

// WarningCount returns the number of warning messages.
func (r *Result) WarningCount() int {
	return len(r.Warnings)
}

// Messages returns all messages in severity-group order:
// errors first, then warnings, then info, each group in insertion order.
func (r *Result) Messages() []Message {
	out := make([]Message, 0, len(r.Errors)+len(r.Warnings)+len(r.Info))
	out = append(out, r.Errors...)
	out = append(out, r.Warnings...)
	out = append(out, r.Info...)
	return out
}

// Strings renders every message in display form "[rule_id] message at path",
// in the same order as Messages.
func (r *Result) Strings() []string {
	msgs := r.Messages()
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.String()
	}
	return out
}

// Merge appends another result's messages into this one, preserving order.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Info = append(r.Info, other.Info...)
	if !other.Valid {
		r.Valid = false
	}
}

// Clone creates an independent copy of the result (not pooled).
func (r *Result) Clone() *Result {
	clone := &Result{
		Valid:    r.Valid,
		Errors:   make([]Message, len(r.Errors)),
		Warnings: make([]Message, len(r.Warnings)),
		Info:     make([]Message, len(r.Info)),
	}
	copy(clone.Errors, r.Errors)
	copy(clone.Warnings, r.Warnings)
	copy(clone.Info, r.Info)
	return clone
}

// NewResult creates a new (non-pooled) result.
// Prefer AcquireResult() when validating many documents.
func NewResult() *Result {
	return &Result{Valid: true}
}
