// Package mitsvalidator validates MITS 5.0 fee documents (rental options
// and fees XML) against the specification's structural and semantic rules.
//
// The engine is a pure function from a parsed document tree to a
// Result: it holds no state between runs, never performs I/O, and is
// safe to call concurrently for independent documents.
//
// # Quick Start
//
//	import (
//	    mv "github.com/mitsval/validator"
//	    "github.com/mitsval/validator/engine"
//	)
//
//	v := engine.New()
//	result := v.Validate(ctx, xmlBytes)
//	if !result.Valid {
//	    for _, line := range result.Strings() {
//	        fmt.Println(line)
//	    }
//	}
//	result.Release()
//
// # Phases
//
// Validation runs as a fixed, ordered list of phases:
//
//   - structure / identity / placement: container shape, property and
//     per-level identifier hygiene (critical; errors here stop the run)
//   - class structure and limits
//   - item structure, characteristics, amount basis, amount formats
//   - frequency alignment and the pet/parking/storage specializations
//   - cross-validation: registry build, reference and cycle checks
//   - data quality: text hygiene, window overlaps, duplicates
//
// Message order is deterministic: phase order first, rule declaration
// order within a phase.
//
// # Functional Options
//
//	v := engine.New(
//	    mv.WithReferenceTargets(true),
//	    mv.WithMaxErrors(100),
//	    mv.WithWorkerCount(runtime.NumCPU()),
//	)
package mitsvalidator
