package phase

import (
	"context"
	"strconv"

	mv "github.com/mitsval/validator"
	"github.com/mitsval/validator/document"
	"github.com/mitsval/validator/pipeline"
	"github.com/mitsval/validator/schema"
)

// ItemStructure validates the shape of every offer item: its internal
// code, required text children, characteristics block, amount blocks,
// and occurrence bounds.
type ItemStructure struct{}

// NewItemStructure creates the item structure phase.
func NewItemStructure() *ItemStructure {
	return &ItemStructure{}
}

// ID returns the phase identifier.
func (p *ItemStructure) ID() pipeline.PhaseID {
	return pipeline.PhaseIDItemStructure
}

// Validate checks every offer item in the document.
func (p *ItemStructure) Validate(ctx context.Context, pctx *pipeline.Context) []mv.Message {
	var msgs []mv.Message

	// Code uniqueness is scoped to the enclosing class.
	classCodes := make(map[*document.Node]map[string]bool)

	eachItem(pctx.Root, func(item *document.Node) {
		code := item.Attr(schema.AttrInternalCode)
		if code == "" {
			msgs = append(msgs, report(mv.RuleItemHasInternalCode, p.ID(), item.Path()).
				Detail("element", item.Tag).
				Build())
		} else if parent := item.Parent(); parent != nil && parent.Tag == schema.ElemChargeOfferClass {
			codes, ok := classCodes[parent]
			if !ok {
				codes = make(map[string]bool)
				classCodes[parent] = codes
			}
			if codes[code] {
				msgs = append(msgs, report(mv.RuleItemInternalCodeUnique, p.ID(), item.Path()).
					Detail("code", code).
					Build())
			}
			codes[code] = true
		}

		msgs = append(msgs, p.checkItem(item)...)
	})

	return msgs
}

func (p *ItemStructure) checkItem(item *document.Node) []mv.Message {
	var msgs []mv.Message

	// Blank-but-present text is swept up by the data quality phase.
	if item.First(schema.ElemName) == nil {
		msgs = append(msgs, report(mv.RuleItemHasName, p.ID(), item.Path()).Build())
	}
	if item.First(schema.ElemDescription) == nil {
		msgs = append(msgs, report(mv.RuleItemHasDescription, p.ID(), item.Path()).Build())
	}

	if n := len(item.ChildrenByTag(schema.ElemCharacteristics)); n != 1 {
		msgs = append(msgs, report(mv.RuleItemHasOneCharacteristics, p.ID(), item.Path()).
			Detail("count", strconv.Itoa(n)).
			Build())
	}

	included := isIncludedItem(item)

	if len(amountBlocks(item)) == 0 && !included {
		msgs = append(msgs, report(mv.RuleItemHasAmountBlocks, p.ID(), item.Path()).Build())
	}

	if raw, _, _ := itemBasis(item); raw == "" && !included {
		msgs = append(msgs, report(mv.RuleItemAmountBasisRequired, p.ID(), item.Path()).Build())
	}

	msgs = append(msgs, p.checkOccurrences(item)...)
	msgs = append(msgs, p.checkStrayPercentageCode(item)...)

	return msgs
}

func (p *ItemStructure) checkOccurrences(item *document.Node) []mv.Message {
	var msgs []mv.Message

	minSet, maxSet := false, false
	minVal, maxVal := 0, 0

	if minNode := item.First(schema.ElemItemMinOccurrences); minNode != nil {
		if v, ok := parseIntField(minNode.Text); !ok || v < 0 {
			msgs = append(msgs, report(mv.RuleItemMinOccurrenceValid, p.ID(), minNode.Path()).
				Detail("value", quoted(minNode.TrimText())).
				Build())
		} else {
			minSet, minVal = true, v
		}
	}

	if maxNode := item.First(schema.ElemItemMaxOccurrences); maxNode != nil {
		if v, ok := parseIntField(maxNode.Text); !ok || v < 1 {
			msgs = append(msgs, report(mv.RuleItemMaxOccurrenceValid, p.ID(), maxNode.Path()).
				Detail("value", quoted(maxNode.TrimText())).
				Build())
		} else {
			maxSet, maxVal = true, v
		}
	}

	if minSet && maxSet && minVal > maxVal {
		msgs = append(msgs, report(mv.RuleItemOccurrenceRangeValid, p.ID(), item.Path()).
			Detail("min", strconv.Itoa(minVal)).
			Detail("max", strconv.Itoa(maxVal)).
			Build())
	}

	return msgs
}

// checkStrayPercentageCode flags PercentageOfCode values on items whose
// basis is not Percentage Of.
func (p *ItemStructure) checkStrayPercentageCode(item *document.Node) []mv.Message {
	_, basis, ok := itemBasis(item)
	if ok && basis == schema.BasisPercentageOf {
		return nil
	}

	var msgs []mv.Message
	for _, block := range amountBlocks(item) {
		if code := block.First(schema.ElemPercentageOfCode); code != nil && code.TrimText() != "" {
			msgs = append(msgs, report(mv.RuleItemPercentageCodeWhenNeeded, p.ID(), code.Path()).
				Detail("code", code.TrimText()).
				Build())
		}
	}
	return msgs
}
