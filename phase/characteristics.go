package phase

import (
	"context"

	mv "github.com/mitsval/validator"
	"github.com/mitsval/validator/document"
	"github.com/mitsval/validator/pipeline"
	"github.com/mitsval/validator/schema"
)

// Characteristics validates the Characteristics block of every offer
// item: the charge requirement, lifecycle, payment frequency,
// refundability, and conditional trigger codes.
type Characteristics struct{}

// NewCharacteristics creates the characteristics phase.
func NewCharacteristics() *Characteristics {
	return &Characteristics{}
}

// ID returns the phase identifier.
func (p *Characteristics) ID() pipeline.PhaseID {
	return pipeline.PhaseIDCharacteristics
}

var propertyTag = map[string]bool{schema.ElemProperty: true}

// Validate checks every Characteristics block in the document.
func (p *Characteristics) Validate(ctx context.Context, pctx *pipeline.Context) []mv.Message {
	var msgs []mv.Message

	eachItem(pctx.Root, func(item *document.Node) {
		chars := item.First(schema.ElemCharacteristics)
		if chars == nil {
			// Reported by the item structure phase.
			return
		}
		msgs = append(msgs, p.checkRequirement(pctx, item, chars)...)
		msgs = append(msgs, p.checkLifecycle(chars)...)
		msgs = append(msgs, p.checkFrequency(chars)...)
		msgs = append(msgs, p.checkRefundability(chars)...)
	})

	return msgs
}

func (p *Characteristics) checkRequirement(pctx *pipeline.Context, item, chars *document.Node) []mv.Message {
	var msgs []mv.Message

	raw := chars.ChildText(schema.ElemChargeRequirement)
	req, ok := schema.ParseChargeRequirement(raw)
	if raw == "" || !ok {
		msgs = append(msgs, report(mv.RuleCharRequirementRequired, p.ID(), chars.Path()).
			Detail("value", quoted(raw)).
			Detail("allowed", joinValues(schema.ChargeRequirements())).
			Build())
		return msgs
	}

	if desc := chars.First(schema.ElemRequirementDescription); desc != nil && desc.TrimText() == "" {
		msgs = append(msgs, report(mv.RuleCharRequirementDescNonempty, p.ID(), desc.Path()).Build())
	} else if desc == nil && (req == schema.RequirementSituational || req == schema.RequirementConditional) {
		msgs = append(msgs, report(mv.RuleCharRequirementDescNonempty, p.ID(), chars.Path()).
			Detail("requirement", raw).
			Build())
	}

	if req != schema.RequirementConditional {
		return msgs
	}

	codes := pipeline.ConditionalCodes(item)
	if len(codes) == 0 {
		msgs = append(msgs, report(mv.RuleCharConditionalHasCodes, p.ID(), chars.Path()).Build())
		return msgs
	}

	own := item.Attr(schema.AttrInternalCode)
	for _, code := range codes {
		if own != "" && code == own {
			msgs = append(msgs, report(mv.RuleCharNoSelfReference, p.ID(), chars.Path()).
				Detail("code", code).
				Build())
		}
	}

	if pctx.Options != nil && pctx.Options.CheckReferenceTargets {
		propID := ""
		if prop := item.Ancestor(propertyTag); prop != nil {
			propID = prop.Attr(schema.AttrIDValue)
		}
		for _, code := range codes {
			if code == own {
				continue
			}
			if len(pctx.Items().Lookup(propID, code)) == 0 {
				msgs = append(msgs, report(mv.RuleCharConditionalCodeExists, p.ID(), chars.Path()).
					Detail("code", code).
					Build())
			}
		}
	}

	return msgs
}

func (p *Characteristics) checkLifecycle(chars *document.Node) []mv.Message {
	raw := chars.ChildText(schema.ElemLifecycle)
	if _, ok := schema.ParseLifecycle(raw); raw == "" || !ok {
		return []mv.Message{
			report(mv.RuleCharLifecycleRequired, p.ID(), chars.Path()).
				Detail("value", quoted(raw)).
				Detail("allowed", joinValues(schema.Lifecycles())).
				Build(),
		}
	}
	return nil
}

func (p *Characteristics) checkFrequency(chars *document.Node) []mv.Message {
	raw := chars.ChildText(schema.ElemPaymentFrequency)
	if raw == "" {
		// Absence is judged by the frequency alignment phase, which knows
		// which lifecycles demand a cadence.
		return nil
	}
	if _, ok := schema.ParsePaymentFrequency(raw); !ok {
		return []mv.Message{
			report(mv.RuleCharFrequencyValid, p.ID(), chars.Path()).
				Detail("value", quoted(raw)).
				Detail("allowed", joinValues(schema.PaymentFrequencies())).
				Build(),
		}
	}
	return nil
}

func (p *Characteristics) checkRefundability(chars *document.Node) []mv.Message {
	raw := chars.ChildText(schema.ElemRefundability)
	if raw == "" {
		return nil
	}

	refund, ok := schema.ParseRefundability(raw)
	if !ok {
		return []mv.Message{
			report(mv.RuleCharRefundabilityValid, p.ID(), chars.Path()).
				Detail("value", quoted(raw)).
				Detail("allowed", joinValues(schema.Refundabilities())).
				Build(),
		}
	}

	if !refund.RequiresDetails() {
		return nil
	}

	details := chars.First(schema.ElemRefundDetails)
	if details == nil {
		return []mv.Message{
			report(mv.RuleCharRefundDetailsRequired, p.ID(), chars.Path()).
				Detail("refundability", raw).
				Build(),
		}
	}

	var msgs []mv.Message

	maxTypeRaw := details.ChildText(schema.ElemRefundMaxType)
	if _, ok := schema.ParseRefundMaxType(maxTypeRaw); !ok {
		msgs = append(msgs, report(mv.RuleCharRefundMaxTypeRequired, p.ID(), details.Path()).
			Detail("value", quoted(maxTypeRaw)).
			Detail("allowed", joinValues(schema.RefundMaxTypes())).
			Build())
	}

	// The cap is any non-negative decimal regardless of RefundMaxType;
	// percentages over 100 are legal here (fees can exceed the deposit).
	maxRaw := details.ChildText(schema.ElemRefundMax)
	if maxRaw == "" {
		msgs = append(msgs, report(mv.RuleCharRefundMaxRequired, p.ID(), details.Path()).Build())
	} else if _, err := schema.ParseNonNegativeAmount(maxRaw); err != nil {
		msgs = append(msgs, report(mv.RuleCharRefundMaxRequired, p.ID(), details.Path()).
			Detail("value", quoted(maxRaw)).
			Build())
	}

	if perRaw := details.ChildText(schema.ElemRefundPerType); perRaw != "" {
		if _, ok := schema.ParseRefundPerType(perRaw); !ok {
			msgs = append(msgs, report(mv.RuleCharRefundPerTypeValid, p.ID(), details.Path()).
				Detail("value", quoted(perRaw)).
				Detail("allowed", joinValues(schema.RefundPerTypes())).
				Build())
		}
	}

	return msgs
}
