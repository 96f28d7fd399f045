package phase

import (
	"context"

	mv "github.com/mitsval/validator"
	"github.com/mitsval/validator/document"
	"github.com/mitsval/validator/pipeline"
	"github.com/mitsval/validator/schema"
)

// ClassLimits validates the optional Limits block of a class: occurrence
// caps, amount caps, and AppliesTo code lists. Valid caps additionally
// yield informational notes, since the engine cannot enforce them against
// live lease data.
type ClassLimits struct{}

// NewClassLimits creates the class limits phase.
func NewClassLimits() *ClassLimits {
	return &ClassLimits{}
}

// ID returns the phase identifier.
func (p *ClassLimits) ID() pipeline.PhaseID {
	return pipeline.PhaseIDClassLimits
}

// Validate checks every Limits block in the document.
func (p *ClassLimits) Validate(ctx context.Context, pctx *pipeline.Context) []mv.Message {
	var msgs []mv.Message

	eachClass(pctx.Root, func(class *document.Node) {
		for _, limits := range class.ChildrenByTag(schema.ElemLimits) {
			msgs = append(msgs, p.checkLimits(class, limits)...)
		}
	})

	return msgs
}

func (p *ClassLimits) checkLimits(class, limits *document.Node) []mv.Message {
	var msgs []mv.Message

	if occ := limits.First(schema.ElemMaximumOccurences); occ != nil {
		if v, ok := parseIntField(occ.Text); !ok || v < 1 {
			msgs = append(msgs, report(mv.RuleLimitMaxOccurrencesValid, p.ID(), occ.Path()).
				Detail("value", quoted(occ.TrimText())).
				Build())
		} else {
			msgs = append(msgs, report(mv.RuleLimitOccurrenceCapRuntime, p.ID(), occ.Path()).
				Detail("cap", occ.TrimText()).
				Build())
		}
	}

	if amt := limits.First(schema.ElemMaximumAmount); amt != nil {
		if _, err := schema.ParseNonNegativeAmount(amt.Text); err != nil {
			msgs = append(msgs, report(mv.RuleLimitMaxAmountValid, p.ID(), amt.Path()).
				Detail("value", quoted(amt.TrimText())).
				Build())
		} else {
			msgs = append(msgs, report(mv.RuleLimitAmountCapRuntime, p.ID(), amt.Path()).
				Detail("cap", amt.TrimText()).
				Build())
		}
	}

	// Item codes declared directly in this class, for AppliesTo resolution.
	classCodes := make(map[string]bool)
	for _, child := range class.Children {
		if schema.IsItemTag(child.Tag) {
			if code := child.Attr(schema.AttrInternalCode); code != "" {
				classCodes[code] = true
			}
		}
	}

	for _, applies := range limits.ChildrenByTag(schema.ElemAppliesTo) {
		for _, code := range applies.ChildrenByTag(schema.ElemInternalCode) {
			v := code.TrimText()
			if v == "" {
				msgs = append(msgs, report(mv.RuleLimitAppliesToCodesNonempty, p.ID(), code.Path()).Build())
				continue
			}
			if !classCodes[v] {
				msgs = append(msgs, report(mv.RuleLimitAppliesToSameClass, p.ID(), code.Path()).
					Detail("code", v).
					Build())
			}
		}
	}

	return msgs
}
