package phase

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"

	mv "github.com/mitsval/validator"
	"github.com/mitsval/validator/document"
	"github.com/mitsval/validator/pipeline"
	"github.com/mitsval/validator/schema"
)

// AmountBasis validates that each item's amount blocks agree with its
// declared basis. Every basis admits a specific combination of amount
// values and percentage, and nothing else.
type AmountBasis struct{}

// NewAmountBasis creates the amount basis phase.
func NewAmountBasis() *AmountBasis {
	return &AmountBasis{}
}

// ID returns the phase identifier.
func (p *AmountBasis) ID() pipeline.PhaseID {
	return pipeline.PhaseIDAmountBasis
}

// Validate checks the basis decision table for every item.
func (p *AmountBasis) Validate(ctx context.Context, pctx *pipeline.Context) []mv.Message {
	var msgs []mv.Message

	eachItem(pctx.Root, func(item *document.Node) {
		msgs = append(msgs, p.checkItem(item)...)
	})

	return msgs
}

func (p *AmountBasis) checkItem(item *document.Node) []mv.Message {
	var msgs []mv.Message

	raw, basis, ok := itemBasis(item)
	_, req, reqOK := itemRequirement(item)
	includedReq := reqOK && req == schema.RequirementIncluded

	if raw != "" && !ok {
		msgs = append(msgs, report(mv.RuleBasisEnumValid, p.ID(), item.Path()).
			Detail("value", quoted(raw)).
			Detail("allowed", joinValues(schema.AmountBases())).
			Build())
		return msgs
	}

	if includedReq {
		// Items priced into the rent declare nothing: no basis (not
		// even "Included"), no amounts, no percentage.
		if raw != "" {
			msgs = append(msgs, report(mv.RuleBasisIncludedEmpty, p.ID(), item.Path()).
				Detail("basis", raw).
				Build())
		}
		for _, block := range amountBlocks(item) {
			if len(amountValues(block)) > 0 {
				msgs = append(msgs, report(mv.RuleBasisIncludedAmountsEmpty, p.ID(), block.Path()).Build())
			}
			if percentageText(block) != "" {
				msgs = append(msgs, report(mv.RuleBasisIncludedPercentageEmpty, p.ID(), block.Path()).Build())
			}
		}
		return msgs
	}

	if ok && basis == schema.BasisIncluded {
		// "Included" is a requirement, not a pricing basis.
		msgs = append(msgs, report(mv.RuleBasisEnumValid, p.ID(), item.Path()).
			Detail("value", quoted(raw)).
			Detail("allowed", joinValues(schema.PricingBases())).
			Build())
		return msgs
	}

	if !ok {
		// No basis declared; the item structure phase reports it.
		return msgs
	}

	for _, block := range amountBlocks(item) {
		msgs = append(msgs, p.checkBlock(basis, block)...)
	}

	return msgs
}

func (p *AmountBasis) checkBlock(basis schema.AmountBasis, block *document.Node) []mv.Message {
	var msgs []mv.Message

	values := amountValues(block)
	pct := percentageText(block)

	switch basis {
	case schema.BasisExplicit:
		if len(values) == 0 {
			msgs = append(msgs, report(mv.RuleBasisExplicitAmountsNonempty, p.ID(), block.Path()).Build())
		}
		if pct != "" {
			msgs = append(msgs, report(mv.RuleBasisExplicitPercentageEmpty, p.ID(), block.Path()).Build())
		}

	case schema.BasisPercentageOf:
		if pct == "" {
			msgs = append(msgs, report(mv.RuleBasisPercentageHasValue, p.ID(), block.Path()).Build())
		}
		if len(values) > 0 {
			msgs = append(msgs, report(mv.RuleBasisPercentageAmountsEmpty, p.ID(), block.Path()).Build())
		}
		if block.ChildText(schema.ElemPercentageOfCode) == "" {
			msgs = append(msgs, report(mv.RuleBasisPercentageHasCode, p.ID(), block.Path()).Build())
		}

	case schema.BasisWithinRange:
		if len(values) != 1 {
			msgs = append(msgs, report(mv.RuleBasisRangeOneAmount, p.ID(), block.Path()).
				Detail("count", strconv.Itoa(len(values))).
				Build())
		}

	case schema.BasisStepped:
		if len(values) < 2 {
			msgs = append(msgs, report(mv.RuleBasisSteppedMinTwo, p.ID(), block.Path()).
				Detail("count", strconv.Itoa(len(values))).
				Build())
		}
		msgs = append(msgs, p.checkSteppedOrder(block, values)...)

	case schema.BasisVariable:
		hasValues := len(values) > 0
		hasPct := pct != ""
		if hasValues == hasPct {
			msgs = append(msgs, report(mv.RuleBasisVariableExactlyOne, p.ID(), block.Path()).Build())
		}
	}

	return msgs
}

// checkSteppedOrder verifies stepped amounts never decrease. Values that
// fail to parse are skipped here; the amount format phase reports them.
func (p *AmountBasis) checkSteppedOrder(block *document.Node, values []string) []mv.Message {
	var prev decimal.Decimal
	havePrev := false

	for _, v := range values {
		d, err := schema.ParseAmount(v)
		if err != nil {
			continue
		}
		if havePrev && d.LessThan(prev) {
			return []mv.Message{
				report(mv.RuleBasisSteppedOrder, p.ID(), block.Path()).
					Detail("value", v).
					Build(),
			}
		}
		prev, havePrev = d, true
	}
	return nil
}
