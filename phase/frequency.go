package phase

import (
	"context"

	mv "github.com/mitsval/validator"
	"github.com/mitsval/validator/document"
	"github.com/mitsval/validator/pipeline"
	"github.com/mitsval/validator/schema"
)

// Frequency validates that payment cadence, lifecycle, amount basis, and
// per-type declarations agree with each other.
type Frequency struct{}

// NewFrequency creates the frequency alignment phase.
func NewFrequency() *Frequency {
	return &Frequency{}
}

// ID returns the phase identifier.
func (p *Frequency) ID() pipeline.PhaseID {
	return pipeline.PhaseIDFrequency
}

// Validate checks frequency coherence for every item.
func (p *Frequency) Validate(ctx context.Context, pctx *pipeline.Context) []mv.Message {
	var msgs []mv.Message

	eachItem(pctx.Root, func(item *document.Node) {
		msgs = append(msgs, p.checkItem(pctx, item)...)
	})

	return msgs
}

func (p *Frequency) checkItem(pctx *pipeline.Context, item *document.Node) []mv.Message {
	var msgs []mv.Message

	rawFreq, freq, freqOK := itemFrequency(item)
	_, basis, basisOK := itemBasis(item)

	perRaw := item.ChildText(schema.ElemAmountPerType)
	perType, perOK := schema.ParseAmountPerType(perRaw)
	if perRaw != "" && !perOK {
		msgs = append(msgs, report(mv.RuleAmountPerTypeEnum, p.ID(), item.Path()).
			Detail("value", quoted(perRaw)).
			Detail("allowed", joinValues(schema.AmountPerTypes())).
			Build())
	}
	if perOK && perType == schema.PerApplicant {
		msgs = append(msgs, report(mv.RuleAmountPerApplicantNote, p.ID(), item.Path()).Build())
	}

	if chars := item.First(schema.ElemCharacteristics); chars != nil {
		lifecycle := chars.ChildText(schema.ElemLifecycle)
		if lc, ok := schema.ParseLifecycle(lifecycle); ok && lc == schema.LifecycleDuringTerm && rawFreq == "" {
			msgs = append(msgs, report(mv.RuleDuringTermNeedsFrequency, p.ID(), chars.Path()).Build())
		}
	}

	if !freqOK {
		return msgs
	}

	if freq.IsOneTime() {
		for _, block := range amountBlocks(item) {
			if block.ChildText(schema.ElemTermBasis) != "" {
				msgs = append(msgs, report(mv.RuleOnetimeWithTermBasis, p.ID(), block.Path()).Build())
				break
			}
		}
	}

	if (freq == schema.FrequencyHourly || freq == schema.FrequencyPerOccurrence) &&
		perOK && perType == schema.PerPeriod {
		msgs = append(msgs, report(mv.RuleFreqPeriodConflict, p.ID(), item.Path()).
			Detail("frequency", rawFreq).
			Build())
	}

	if freq == schema.FrequencyMonthly && basisOK && basis == schema.BasisWithinRange {
		msgs = append(msgs, report(mv.RuleMonthlyRangeWarning, p.ID(), item.Path()).Build())
	}

	if freq.IsRecurring() {
		msgs = append(msgs, p.checkRecurringTargets(pctx, item, rawFreq)...)
	}

	return msgs
}

// checkRecurringTargets flags recurring items whose percentage basis
// points at a one-time target: the charge would repeat while its base
// is assessed once.
func (p *Frequency) checkRecurringTargets(pctx *pipeline.Context, item *document.Node, rawFreq string) []mv.Message {
	codes := pipeline.PercentageCodes(item)
	if len(codes) == 0 {
		return nil
	}

	propID := ""
	if prop := item.Ancestor(propertyTag); prop != nil {
		propID = prop.Attr(schema.AttrIDValue)
	}

	var msgs []mv.Message
	for _, code := range codes {
		for _, target := range pctx.Items().Lookup(propID, code) {
			tf, ok := schema.ParsePaymentFrequency(target.Frequency)
			if ok && tf.IsOneTime() {
				msgs = append(msgs, report(mv.RuleFrequencyBasisCoherent, p.ID(), item.Path()).
					Detail("frequency", rawFreq).
					Detail("target", code).
					Build())
			}
		}
	}
	return msgs
}
