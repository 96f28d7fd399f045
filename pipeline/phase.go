package pipeline

import (
	"context"

	mv "github.com/mitsval/validator"
)

// Phase represents a single validation phase in the pipeline.
// Each phase is responsible for one family of rules.
//
// Phases should be:
// - Stateless: All state should be in the Context
// - Deterministic: The same document always yields the same messages
// - Fast-failing: Return early if ctx is cancelled or max errors reached
type Phase interface {
	// ID returns the stable identifier for this phase.
	ID() PhaseID

	// Validate performs the validation and returns any messages found.
	// The context.Context is used for cancellation. The pipeline Context
	// holds the document tree and accumulated results.
	Validate(ctx context.Context, pctx *Context) []mv.Message
}

// PhaseFunc is a function type that implements Phase.
// Useful for simple phases that don't need a full struct.
type PhaseFunc struct {
	id PhaseID
	fn func(ctx context.Context, pctx *Context) []mv.Message
}

// NewPhaseFunc creates a Phase from a function.
func NewPhaseFunc(id PhaseID, fn func(ctx context.Context, pctx *Context) []mv.Message) Phase {
	return &PhaseFunc{id: id, fn: fn}
}

// ID returns the phase identifier.
func (p *PhaseFunc) ID() PhaseID {
	return p.id
}

// Validate calls the wrapped function.
func (p *PhaseFunc) Validate(ctx context.Context, pctx *Context) []mv.Message {
	return p.fn(ctx, pctx)
}

// PhaseID uniquely identifies a validation phase.
type PhaseID string

// Phase identifiers, in execution order.
const (
	PhaseIDStructure       PhaseID = "structure"
	PhaseIDIdentity        PhaseID = "identity"
	PhaseIDPlacement       PhaseID = "placement"
	PhaseIDClassStructure  PhaseID = "class-structure"
	PhaseIDClassLimits     PhaseID = "class-limits"
	PhaseIDItemStructure   PhaseID = "item-structure"
	PhaseIDCharacteristics PhaseID = "characteristics"
	PhaseIDAmountBasis     PhaseID = "amount-basis"
	PhaseIDAmountFormat    PhaseID = "amount-format"
	PhaseIDFrequency       PhaseID = "frequency"
	PhaseIDPet             PhaseID = "pet"
	PhaseIDParking         PhaseID = "parking"
	PhaseIDStorage         PhaseID = "storage"
	PhaseIDCrossValidation PhaseID = "cross-validation"
	PhaseIDDataQuality     PhaseID = "data-quality"
)

// Order is the fixed execution order of all phases. The pipeline runs
// phases in exactly this sequence; there is no priority scheduling.
var Order = []PhaseID{
	PhaseIDStructure,
	PhaseIDIdentity,
	PhaseIDPlacement,
	PhaseIDClassStructure,
	PhaseIDClassLimits,
	PhaseIDItemStructure,
	PhaseIDCharacteristics,
	PhaseIDAmountBasis,
	PhaseIDAmountFormat,
	PhaseIDFrequency,
	PhaseIDPet,
	PhaseIDParking,
	PhaseIDStorage,
	PhaseIDCrossValidation,
	PhaseIDDataQuality,
}

// structuralPhases form the gate at the front of the pipeline. An error
// from any of these means the document shape cannot be trusted, so the
// remaining phases are skipped.
var structuralPhases = map[PhaseID]bool{
	PhaseIDStructure: true,
	PhaseIDIdentity:  true,
	PhaseIDPlacement: true,
}

// IsStructural reports whether errors from the phase abort the pipeline.
func IsStructural(id PhaseID) bool {
	return structuralPhases[id]
}

// CompositePhase combines multiple phases into one.
type CompositePhase struct {
	id     PhaseID
	phases []Phase
}

// NewCompositePhase creates a phase that runs multiple sub-phases sequentially.
func NewCompositePhase(id PhaseID, phases ...Phase) Phase {
	return &CompositePhase{
		id:     id,
		phases: phases,
	}
}

// ID returns the composite phase identifier.
func (p *CompositePhase) ID() PhaseID {
	return p.id
}

// Validate runs all sub-phases sequentially.
func (p *CompositePhase) Validate(ctx context.Context, pctx *Context) []mv.Message {
	var all []mv.Message

	for _, phase := range p.phases {
		select {
		case <-ctx.Done():
			return all
		default:
		}

		if pctx.ShouldStop() {
			return all
		}

		all = append(all, phase.Validate(ctx, pctx)...)
	}

	return all
}
