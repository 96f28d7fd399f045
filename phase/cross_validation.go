package phase

import (
	"context"

	mv "github.com/mitsval/validator"
	"github.com/mitsval/validator/document"
	"github.com/mitsval/validator/pipeline"
	"github.com/mitsval/validator/schema"
)

// CrossValidation validates relationships that span items: code
// uniqueness across scopes, reference resolution, reference cycles, and
// the rules tying Included items to the rest of the document.
type CrossValidation struct{}

// NewCrossValidation creates the cross validation phase.
func NewCrossValidation() *CrossValidation {
	return &CrossValidation{}
}

// ID returns the phase identifier.
func (p *CrossValidation) ID() pipeline.PhaseID {
	return pipeline.PhaseIDCrossValidation
}

// Validate checks the cross-item rules.
func (p *CrossValidation) Validate(ctx context.Context, pctx *pipeline.Context) []mv.Message {
	if pctx.Root == nil {
		return nil
	}

	var msgs []mv.Message
	msgs = append(msgs, p.checkClassScopes(pctx.Root)...)
	msgs = append(msgs, p.checkItemCodes(pctx.Items())...)
	msgs = append(msgs, p.checkReferences(pctx)...)
	msgs = append(msgs, p.checkIncluded(pctx.Items())...)
	return msgs
}

var feeParentTags = map[string]bool{
	schema.ElemProperty:  true,
	schema.ElemBuilding:  true,
	schema.ElemFloorplan: true,
	schema.ElemUnit:      true,
}

// checkClassScopes extends sibling code uniqueness to whole scopes: two
// classes under the same Property, Building, Floorplan, or ILS_Unit must
// not share a code even when nested at different depths. Sibling
// duplicates are left to the class structure phase.
func (p *CrossValidation) checkClassScopes(root *document.Node) []mv.Message {
	var msgs []mv.Message

	scopes := make(map[*document.Node]map[string]*document.Node)

	eachClass(root, func(class *document.Node) {
		code := class.Attr(schema.AttrCode)
		if code == "" {
			return
		}
		scope := class.Ancestor(feeParentTags)
		if scope == nil {
			return
		}
		codes, ok := scopes[scope]
		if !ok {
			codes = make(map[string]*document.Node)
			scopes[scope] = codes
		}
		first, dup := codes[code]
		if !dup {
			codes[code] = class
			return
		}
		if first.Parent() == class.Parent() {
			return
		}
		msgs = append(msgs, report(mv.RuleClassCodeUniqueInScope, p.ID(), class.Path()).
			Detail("code", code).
			Detail("scope", scope.Tag).
			Build())
	})

	return msgs
}

// checkItemCodes warns when an internal code is declared by more than
// one class within a property. Duplicates inside a single class are
// errors reported by the item structure phase.
func (p *CrossValidation) checkItemCodes(idx *pipeline.ItemIndex) []mv.Message {
	var msgs []mv.Message

	reported := make(map[*pipeline.ItemInfo]bool)
	for _, item := range idx.Items {
		if item.Code == "" || reported[item] {
			continue
		}
		dups := idx.Lookup(item.PropertyID, item.Code)
		if len(dups) < 2 {
			continue
		}
		for _, dup := range dups[1:] {
			if dup.Node.Parent() == dups[0].Node.Parent() {
				reported[dup] = true
				continue
			}
			if !reported[dup] {
				msgs = append(msgs, report(mv.RuleItemCodeUniqueInProperty, p.ID(), dup.Path).
					Detail("code", dup.Code).
					Build())
				reported[dup] = true
			}
		}
		reported[dups[0]] = true
	}

	return msgs
}

// checkReferences resolves percentage-of references and rejects self
// references, unresolvable targets, targets priced into the rent, and
// reference cycles.
func (p *CrossValidation) checkReferences(pctx *pipeline.Context) []mv.Message {
	var msgs []mv.Message
	idx := pctx.Items()

	checkTargets := pctx.Options != nil && pctx.Options.CheckReferenceTargets

	for _, item := range idx.Items {
		for _, code := range pipeline.PercentageCodes(item.Node) {
			if item.Code != "" && code == item.Code {
				msgs = append(msgs, report(mv.RuleReferenceNoSelf, p.ID(), item.Path).
					Detail("code", code).
					Build())
				continue
			}

			targets := idx.Lookup(item.PropertyID, code)
			if len(targets) == 0 {
				if checkTargets {
					msgs = append(msgs, report(mv.RuleReferenceCodeExists, p.ID(), item.Path).
						Detail("code", code).
						Build())
				}
				continue
			}

			for _, target := range targets {
				if req, ok := schema.ParseChargeRequirement(target.Requirement); ok && req == schema.RequirementIncluded {
					msgs = append(msgs, report(mv.RuleReferenceNotIncluded, p.ID(), item.Path).
						Detail("code", code).
						Build())
					break
				}
			}
		}
	}

	msgs = append(msgs, p.checkCycles(idx)...)
	return msgs
}

// checkCycles runs a depth-first search over each property's reference
// graph. Percentage edges and conditional edges are traversed as
// separate graphs; a cycle is reported at the item that closes it.
func (p *CrossValidation) checkCycles(idx *pipeline.ItemIndex) []mv.Message {
	var msgs []mv.Message

	type graph struct {
		rule mv.RuleID
		edge func(*document.Node) []string
	}
	graphs := []graph{
		{mv.RuleBasisPercentageNoCircular, pipeline.PercentageCodes},
		{mv.RuleReferenceNoCircular, pipeline.ConditionalCodes},
	}

	byProperty := make(map[string][]*pipeline.ItemInfo)
	for _, item := range idx.Items {
		byProperty[item.PropertyID] = append(byProperty[item.PropertyID], item)
	}

	for _, g := range graphs {
		seenProps := make(map[string]bool)
		for _, item := range idx.Items {
			if seenProps[item.PropertyID] {
				continue
			}
			seenProps[item.PropertyID] = true
			msgs = append(msgs, p.detectCycles(g.rule, g.edge, byProperty[item.PropertyID])...)
		}
	}

	return msgs
}

// walk states for cycle detection.
const (
	stateUnvisited = 0
	stateVisiting  = 1
	stateDone      = 2
)

func (p *CrossValidation) detectCycles(rule mv.RuleID, edges func(*document.Node) []string, items []*pipeline.ItemInfo) []mv.Message {
	var msgs []mv.Message

	byCode := make(map[string]*pipeline.ItemInfo, len(items))
	for _, item := range items {
		if item.Code != "" {
			if _, ok := byCode[item.Code]; !ok {
				byCode[item.Code] = item
			}
		}
	}

	states := make(map[string]int, len(byCode))

	var visit func(item *pipeline.ItemInfo)
	visit = func(item *pipeline.ItemInfo) {
		states[item.Code] = stateVisiting
		for _, target := range edges(item.Node) {
			if target == item.Code {
				// Self loops are reported as self references.
				continue
			}
			next, ok := byCode[target]
			if !ok {
				// Unresolvable targets are judged elsewhere.
				continue
			}
			switch states[target] {
			case stateVisiting:
				msgs = append(msgs, report(rule, p.ID(), item.Path).
					Detail("from", item.Code).
					Detail("to", target).
					Build())
			case stateUnvisited:
				visit(next)
			}
		}
		states[item.Code] = stateDone
	}

	for _, item := range items {
		if item.Code == "" {
			continue
		}
		if states[item.Code] == stateUnvisited {
			visit(item)
		}
	}

	return msgs
}

// checkIncluded rejects Included items billed on a recurring cadence.
func (p *CrossValidation) checkIncluded(idx *pipeline.ItemIndex) []mv.Message {
	var msgs []mv.Message

	for _, item := range idx.Items {
		req, ok := schema.ParseChargeRequirement(item.Requirement)
		if !ok || req != schema.RequirementIncluded {
			continue
		}
		freq, ok := schema.ParsePaymentFrequency(item.Frequency)
		if ok && freq.IsRecurring() {
			msgs = append(msgs, report(mv.RuleIncludedNoRecurring, p.ID(), item.Path).
				Detail("frequency", item.Frequency).
				Build())
		}
	}

	return msgs
}
