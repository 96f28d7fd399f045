package phase

import (
	"context"
	"regexp"

	mv "github.com/mitsval/validator"
	"github.com/mitsval/validator/document"
	"github.com/mitsval/validator/pipeline"
	"github.com/mitsval/validator/schema"
)

// Pet validates PetOfferItem specifics: the allowed flag, weight limits,
// and the refund fields pet deposits carry.
type Pet struct{}

// NewPet creates the pet phase.
func NewPet() *Pet {
	return &Pet{}
}

// ID returns the phase identifier.
func (p *Pet) ID() pipeline.PhaseID {
	return pipeline.PhaseIDPet
}

// weightPattern accepts a number with an optional weight unit suffix.
var weightPattern = regexp.MustCompile(`(?i)^\d+(\.\d+)?\s*(lb|lbs|kg|kgs|pounds|kilos)?$`)

// Validate checks every PetOfferItem in the document.
func (p *Pet) Validate(ctx context.Context, pctx *pipeline.Context) []mv.Message {
	if pctx.Root == nil {
		return nil
	}

	var msgs []mv.Message
	for _, item := range pctx.Root.Descendants(schema.ElemPetOfferItem) {
		msgs = append(msgs, p.checkItem(item)...)
	}
	return msgs
}

func (p *Pet) checkItem(item *document.Node) []mv.Message {
	var msgs []mv.Message

	allowedRaw := item.ChildText(schema.ElemPetAllowed)
	allowed, allowedOK := schema.ParsePetAllowed(allowedRaw)
	if allowedRaw != "" && !allowedOK {
		msgs = append(msgs, report(mv.RulePetAllowedEnum, p.ID(), item.Path()).
			Detail("value", quoted(allowedRaw)).
			Detail("allowed", joinValues(schema.PetAllowedValues())).
			Build())
	}

	if allowedOK && allowed == schema.PetNo {
		for _, block := range amountBlocks(item) {
			if len(amountValues(block)) > 0 || percentageText(block) != "" {
				msgs = append(msgs, report(mv.RulePetNotAllowedAmountsEmpty, p.ID(), block.Path()).Build())
			}
		}
	}

	if weight := item.ChildText(schema.ElemMaximumWeight); weight != "" && !weightPattern.MatchString(weight) {
		msgs = append(msgs, report(mv.RulePetWeightFormat, p.ID(), item.Path()).
			Detail("value", quoted(weight)).
			Build())
	}

	msgs = append(msgs, p.checkDeposit(item)...)

	return msgs
}

// checkDeposit requires pet deposits to say what the refund applies per.
// A pet deposit without a per-unit scope is ambiguous across leases with
// multiple pets.
func (p *Pet) checkDeposit(item *document.Node) []mv.Message {
	chars := item.First(schema.ElemCharacteristics)
	if chars == nil {
		return nil
	}
	refund, ok := schema.ParseRefundability(chars.ChildText(schema.ElemRefundability))
	if !ok || refund != schema.Deposit {
		return nil
	}
	details := chars.First(schema.ElemRefundDetails)
	if details == nil {
		// The characteristics phase already demands the block itself.
		return nil
	}
	if details.ChildText(schema.ElemRefundPerType) == "" {
		return []mv.Message{
			report(mv.RulePetDepositRefundFields, p.ID(), details.Path()).Build(),
		}
	}
	return nil
}
