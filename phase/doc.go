// Package phase contains the built-in validation phases.
//
// Each phase owns one family of rules and reports messages against the
// document tree held by the pipeline context. Phases are stateless and
// safe for reuse across validations.
package phase
